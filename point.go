package quartz

import "math"

// Point represents a 2D point or vector.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Applying returns the point transformed by t.
func (p Point) Applying(t AffineTransform) Point {
	return Point{
		X: t.A*p.X + t.C*p.Y + t.TX,
		Y: t.B*p.X + t.D*p.Y + t.TY,
	}
}

// Size is a width and height, also used as a displacement.
type Size struct {
	Width, Height float64
}

// Sz is a convenience function to create a Size.
func Sz(width, height float64) Size {
	return Size{Width: width, Height: height}
}

// Applying returns the size transformed by the linear part of t.
func (s Size) Applying(t AffineTransform) Size {
	return Size{
		Width:  t.A*s.Width + t.C*s.Height,
		Height: t.B*s.Width + t.D*s.Height,
	}
}

// Rect is an origin and a size. A negative size is allowed; Standardized
// returns the equivalent rectangle with non-negative size.
type Rect struct {
	Origin Point
	Size   Size
}

// R is a convenience function to create a Rect.
func R(x, y, width, height float64) Rect {
	return Rect{Origin: Point{X: x, Y: y}, Size: Size{Width: width, Height: height}}
}

// MinX returns the smallest x coordinate of the rectangle.
func (r Rect) MinX() float64 { return math.Min(r.Origin.X, r.Origin.X+r.Size.Width) }

// MaxX returns the largest x coordinate of the rectangle.
func (r Rect) MaxX() float64 { return math.Max(r.Origin.X, r.Origin.X+r.Size.Width) }

// MinY returns the smallest y coordinate of the rectangle.
func (r Rect) MinY() float64 { return math.Min(r.Origin.Y, r.Origin.Y+r.Size.Height) }

// MaxY returns the largest y coordinate of the rectangle.
func (r Rect) MaxY() float64 { return math.Max(r.Origin.Y, r.Origin.Y+r.Size.Height) }

// MidX returns the x coordinate of the center.
func (r Rect) MidX() float64 { return r.Origin.X + r.Size.Width/2 }

// MidY returns the y coordinate of the center.
func (r Rect) MidY() float64 { return r.Origin.Y + r.Size.Height/2 }

// Standardized returns r with a non-negative width and height.
func (r Rect) Standardized() Rect {
	return R(r.MinX(), r.MinY(), r.MaxX()-r.MinX(), r.MaxY()-r.MinY())
}

// IsEmpty reports whether r has zero area.
func (r Rect) IsEmpty() bool {
	return r.Size.Width == 0 || r.Size.Height == 0
}

// Contains reports whether p lies inside r. The minimum edges are inclusive
// and the maximum edges exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX() && p.X < r.MaxX() && p.Y >= r.MinY() && p.Y < r.MaxY()
}

// Intersection returns the overlap of r and s, and false when they do not
// overlap.
func (r Rect) Intersection(s Rect) (Rect, bool) {
	x0 := math.Max(r.MinX(), s.MinX())
	y0 := math.Max(r.MinY(), s.MinY())
	x1 := math.Min(r.MaxX(), s.MaxX())
	y1 := math.Min(r.MaxY(), s.MaxY())
	if x1 <= x0 || y1 <= y0 {
		return Rect{}, false
	}
	return R(x0, y0, x1-x0, y1-y0), true
}

// Union returns the smallest rectangle containing both r and s.
func (r Rect) Union(s Rect) Rect {
	x0 := math.Min(r.MinX(), s.MinX())
	y0 := math.Min(r.MinY(), s.MinY())
	x1 := math.Max(r.MaxX(), s.MaxX())
	y1 := math.Max(r.MaxY(), s.MaxY())
	return R(x0, y0, x1-x0, y1-y0)
}
