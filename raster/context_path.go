// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import "math"

func (c *Context) toDevice(x, y float64) point {
	dx, dy := c.gs.matrix.TransformPoint(x, y)
	return point{dx, dy}
}

// NewPath clears the current path and the current point.
func (c *Context) NewPath() {
	if c.ok() {
		c.path.reset()
	}
}

// MoveTo starts a new subpath at (x, y).
func (c *Context) MoveTo(x, y float64) {
	if c.ok() {
		c.path.moveTo(c.toDevice(x, y))
	}
}

// LineTo adds a line to (x, y). Without a current point it behaves as MoveTo.
func (c *Context) LineTo(x, y float64) {
	if c.ok() {
		c.path.lineTo(c.toDevice(x, y))
	}
}

// CurveTo adds a cubic Bezier curve. Without a current point, (x1, y1)
// becomes the start of the curve.
func (c *Context) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	if c.ok() {
		c.path.curveTo(c.toDevice(x1, y1), c.toDevice(x2, y2), c.toDevice(x3, y3))
	}
}

// ClosePath closes the current subpath.
func (c *Context) ClosePath() {
	if c.ok() {
		c.path.closePath()
	}
}

// Rectangle adds a closed rectangular subpath.
func (c *Context) Rectangle(x, y, width, height float64) {
	c.MoveTo(x, y)
	c.LineTo(x+width, y)
	c.LineTo(x+width, y+height)
	c.LineTo(x, y+height)
	c.ClosePath()
}

// maxFullCircles bounds the number of full turns one arc call draws. It is
// even, and sweeps beyond it drop whole pairs of turns, so the even-odd
// parity of the arc is kept.
const maxFullCircles = 64

// Arc adds a circular arc of the given radius around (xc, yc), sweeping in
// the direction of increasing angles from angle1 to angle2. A line joins the
// current point to the start of the arc. Non-finite arguments add nothing.
func (c *Context) Arc(xc, yc, radius, angle1, angle2 float64) {
	if !c.ok() || !finiteArc(xc, yc, radius, angle1, angle2) {
		return
	}
	c.arc(xc, yc, radius, angle1, angle1+arcSweep(angle2-angle1))
}

// ArcNegative is like Arc but sweeps in the direction of decreasing angles.
func (c *Context) ArcNegative(xc, yc, radius, angle1, angle2 float64) {
	if !c.ok() || !finiteArc(xc, yc, radius, angle1, angle2) {
		return
	}
	c.arc(xc, yc, radius, angle1, angle1-arcSweep(angle1-angle2))
}

func finiteArc(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			Logger().Warn("raster: arc with non-finite argument ignored", "values", values)
			return false
		}
	}
	return true
}

// arcSweep maps the angle difference d to a non-negative sweep: negative
// differences wrap around by whole turns, and sweeps beyond maxFullCircles
// turns are reduced.
func arcSweep(d float64) float64 {
	const turn = 2 * math.Pi
	if d < 0 {
		d += turn * math.Ceil(-d/turn)
		if d < 0 {
			d += turn
		}
	}
	if extra := d - turn*maxFullCircles; extra > 0 {
		d = turn*maxFullCircles + math.Mod(extra, 2*turn)
	}
	return d
}

// arc emits Bezier segments of at most a quarter turn each.
func (c *Context) arc(xc, yc, radius, a1, a2 float64) {
	if radius <= 0 {
		c.LineTo(xc, yc)
		return
	}
	sin, cos := math.Sincos(a1)
	c.LineTo(xc+radius*cos, yc+radius*sin)

	sweep := a2 - a1
	n := int(math.Ceil(math.Abs(sweep) / (math.Pi / 2)))
	if n == 0 || math.IsNaN(sweep) {
		return
	}
	step := sweep / float64(n)
	for i := range n {
		c.arcSegment(xc, yc, radius, a1+float64(i)*step, a1+float64(i+1)*step)
	}
}

// arcSegment adds one Bezier approximation of an arc of at most 90 degrees.
func (c *Context) arcSegment(xc, yc, r, a0, a1 float64) {
	da := a1 - a0
	tan := math.Tan(da / 2)
	alpha := math.Sin(da) * (math.Sqrt(4+3*tan*tan) - 1) / 3

	sin0, cos0 := math.Sincos(a0)
	sin1, cos1 := math.Sincos(a1)

	x1, y1 := xc+r*cos0, yc+r*sin0
	x2, y2 := xc+r*cos1, yc+r*sin1

	c.CurveTo(
		x1-alpha*r*sin0, y1+alpha*r*cos0,
		x2+alpha*r*sin1, y2-alpha*r*cos1,
		x2, y2,
	)
}

// CurrentPoint returns the current point in user space.
func (c *Context) CurrentPoint() (x, y float64, ok bool) {
	if !c.path.hasCurrent {
		return 0, 0, false
	}
	x, y = c.DeviceToUser(c.path.current.X, c.path.current.Y)
	return x, y, true
}

// HasCurrentPoint reports whether the path has a current point.
func (c *Context) HasCurrentPoint() bool {
	return c.path.hasCurrent
}

// CopyPath returns the current path in user space.
func (c *Context) CopyPath() *Path {
	if !c.ok() {
		return &Path{Status: c.status}
	}
	inv, ok := c.gs.matrix.Invert()
	if !ok {
		return &Path{Status: StatusInvalidMatrix}
	}
	p := &Path{Data: make([]PathData, 0, len(c.path.ops)*2)}
	user := func(q point) (float64, float64) { return inv.TransformPoint(q.X, q.Y) }
	for _, o := range c.path.ops {
		switch o.kind {
		case PathMoveTo:
			p.MoveTo(user(o.pts[0]))
		case PathLineTo:
			p.LineTo(user(o.pts[0]))
		case PathCurveTo:
			x1, y1 := user(o.pts[0])
			x2, y2 := user(o.pts[1])
			x3, y3 := user(o.pts[2])
			p.CurveTo(x1, y1, x2, y2, x3, y3)
		case PathClosePath:
			p.ClosePath()
		}
	}
	return p
}

// AppendPath replays p, expressed in user space, onto the current path.
// A malformed p sets StatusInvalidPathData.
func (c *Context) AppendPath(p *Path) {
	if !c.ok() {
		return
	}
	if p == nil {
		c.setError(StatusNullPointer)
		return
	}
	if p.Status != StatusSuccess {
		c.setError(p.Status)
		return
	}
	d := p.Data
	for i := 0; i < len(d); {
		h := d[i]
		if h.Length < 1 || i+h.Length > len(d) {
			c.setError(StatusInvalidPathData)
			return
		}
		switch {
		case h.Type == PathMoveTo && h.Length >= 2:
			c.MoveTo(d[i+1].X, d[i+1].Y)
		case h.Type == PathLineTo && h.Length >= 2:
			c.LineTo(d[i+1].X, d[i+1].Y)
		case h.Type == PathCurveTo && h.Length >= 4:
			c.CurveTo(d[i+1].X, d[i+1].Y, d[i+2].X, d[i+2].Y, d[i+3].X, d[i+3].Y)
		case h.Type == PathClosePath:
			c.ClosePath()
		default:
			c.setError(StatusInvalidPathData)
			return
		}
		i += h.Length
	}
}

// PathExtents returns the user space bounding box of the path's points.
// All results are zero for an empty path.
func (c *Context) PathExtents() (x1, y1, x2, y2 float64) {
	inv, ok := c.gs.matrix.Invert()
	if !ok {
		return 0, 0, 0, 0
	}
	first := true
	for _, o := range c.path.ops {
		n := 1
		switch o.kind {
		case PathCurveTo:
			n = 3
		case PathClosePath:
			n = 0
		}
		for _, q := range o.pts[:n] {
			x, y := inv.TransformPoint(q.X, q.Y)
			if first {
				x1, y1, x2, y2, first = x, y, x, y, false
				continue
			}
			x1, y1 = min(x1, x), min(y1, y)
			x2, y2 = max(x2, x), max(y2, y)
		}
	}
	return x1, y1, x2, y2
}
