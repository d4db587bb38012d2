package quartz

import "math"

// kappa is the control point distance for a quarter circle of radius 1.
const kappa = 0.5522847498307936

// BeginPath discards the current path.
func (c *Context) BeginPath() {
	c.engine.NewPath()
}

// ClosePath closes the current subpath with a line to its start.
func (c *Context) ClosePath() {
	c.engine.ClosePath()
}

// MoveTo starts a new subpath at p.
func (c *Context) MoveTo(p Point) {
	c.engine.MoveTo(p.X, p.Y)
}

// AddLineTo adds a line from the current point to p.
func (c *Context) AddLineTo(p Point) {
	c.engine.LineTo(p.X, p.Y)
}

// AddCurveTo adds a cubic Bezier curve from the current point to end.
func (c *Context) AddCurveTo(control1, control2, end Point) {
	c.engine.CurveTo(control1.X, control1.Y, control2.X, control2.Y, end.X, end.Y)
}

// AddQuadCurveTo adds a quadratic Bezier curve from the current point to end.
// The curve is stored as the equivalent cubic. Without a current point the
// curve starts at the origin.
func (c *Context) AddQuadCurveTo(control, end Point) {
	p0, ok := c.CurrentPoint()
	if !ok {
		c.engine.MoveTo(0, 0)
	}
	c1 := p0.Mul(1.0 / 3).Add(control.Mul(2.0 / 3))
	c2 := control.Mul(2.0 / 3).Add(end.Mul(1.0 / 3))
	c.AddCurveTo(c1, c2, end)
}

// AddArc adds a circular arc around center from startAngle to endAngle.
// Angles grow from the positive x axis toward the positive y axis; with
// clockwise set the arc sweeps toward decreasing angles instead. A line
// joins the current point to the start of the arc.
func (c *Context) AddArc(center Point, radius, startAngle, endAngle float64, clockwise bool) {
	if clockwise {
		c.engine.ArcNegative(center.X, center.Y, radius, startAngle, endAngle)
	} else {
		c.engine.Arc(center.X, center.Y, radius, startAngle, endAngle)
	}
}

// AddArcTo adds an arc of the given radius tangent to the line from the
// current point to p1 and to the line from p1 to p2. A line joins the
// current point to the first tangent point. When the current point equals
// p1 nothing is added; when the three points are colinear a line to p1 is
// added instead.
func (c *Context) AddArcTo(p1, p2 Point, radius float64) {
	p0, _ := c.CurrentPoint()

	dx0, dy0 := p0.X-p1.X, p0.Y-p1.Y
	dx2, dy2 := p2.X-p1.X, p2.Y-p1.Y
	xl0 := math.Hypot(dx0, dy0)
	if xl0 == 0 {
		return
	}
	xl2 := math.Hypot(dx2, dy2)

	san := dx2*dy0 - dx0*dy2
	if san == 0 {
		c.AddLineTo(p1)
		return
	}

	var n0x, n0y, n2x, n2y float64
	if san < 0 {
		n0x, n0y = -dy0/xl0, dx0/xl0
		n2x, n2y = dy2/xl2, -dx2/xl2
	} else {
		n0x, n0y = dy0/xl0, -dx0/xl0
		n2x, n2y = -dy2/xl2, dx2/xl2
	}

	t := (dx2*n2y - dx2*n0y - dy2*n2x + dy2*n0x) / san
	center := Pt(p1.X+radius*(t*dx0+n0x), p1.Y+radius*(t*dy0+n0y))
	start := math.Atan2(-n0y, -n0x)
	end := math.Atan2(-n2y, -n2x)

	c.AddArc(center, radius, start, end, san < 0)
}

// AddRect adds a closed subpath for r.
func (c *Context) AddRect(r Rect) {
	c.engine.Rectangle(r.Origin.X, r.Origin.Y, r.Size.Width, r.Size.Height)
}

// AddRects adds a closed subpath for each rectangle.
func (c *Context) AddRects(rects ...Rect) {
	for _, r := range rects {
		c.AddRect(r)
	}
}

// AddLines adds an open subpath through points.
func (c *Context) AddLines(points ...Point) {
	for i, p := range points {
		if i == 0 {
			c.MoveTo(p)
		} else {
			c.AddLineTo(p)
		}
	}
}

// AddEllipse adds a closed ellipse inscribed in r. An empty rectangle adds
// nothing.
func (c *Context) AddEllipse(r Rect) {
	if r.IsEmpty() {
		return
	}
	r = r.Standardized()
	cx, cy := r.MidX(), r.MidY()
	rx, ry := r.Size.Width/2, r.Size.Height/2
	kx, ky := rx*kappa, ry*kappa

	c.MoveTo(Pt(cx+rx, cy))
	c.AddCurveTo(Pt(cx+rx, cy+ky), Pt(cx+kx, cy+ry), Pt(cx, cy+ry))
	c.AddCurveTo(Pt(cx-kx, cy+ry), Pt(cx-rx, cy+ky), Pt(cx-rx, cy))
	c.AddCurveTo(Pt(cx-rx, cy-ky), Pt(cx-kx, cy-ry), Pt(cx, cy-ry))
	c.AddCurveTo(Pt(cx+kx, cy-ry), Pt(cx+rx, cy-ky), Pt(cx+rx, cy))
	c.ClosePath()
}

// AddPath appends the elements of p to the current path.
func (c *Context) AddPath(p Path) {
	for _, e := range p.Elements {
		switch e := e.(type) {
		case MoveTo:
			c.MoveTo(e.Point)
		case LineTo:
			c.AddLineTo(e.Point)
		case QuadCurveTo:
			c.AddQuadCurveTo(e.Control, e.Point)
		case CurveTo:
			c.AddCurveTo(e.Control1, e.Control2, e.Point)
		case ClosePath:
			c.ClosePath()
		}
	}
}

// Path returns a copy of the current path in user space.
func (c *Context) Path() Path {
	return DecodePath(c.engine.CopyPath())
}

// CurrentPoint returns the current point in user space. ok is false when
// the path has no current point.
func (c *Context) CurrentPoint() (p Point, ok bool) {
	x, y, ok := c.engine.CurrentPoint()
	return Pt(x, y), ok
}

// IsPathEmpty reports whether the current path has no elements.
func (c *Context) IsPathEmpty() bool {
	return len(c.engine.CopyPath().Data) == 0
}

// PathBoundingBox returns the user space bounds of the current path,
// control points included.
func (c *Context) PathBoundingBox() Rect {
	x1, y1, x2, y2 := c.engine.PathExtents()
	return R(x1, y1, x2-x1, y2-y1)
}
