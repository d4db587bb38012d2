package quartz

import (
	"fmt"

	"github.com/gogpu/quartz/raster"
)

// PathElement represents a single element in a path.
// The set of variants is closed: MoveTo, LineTo, QuadCurveTo, CurveTo and
// ClosePath.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new subpath at a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadCurveTo draws a quadratic Bezier curve.
type QuadCurveTo struct {
	Control Point
	Point   Point
}

func (QuadCurveTo) isPathElement() {}

// CurveTo draws a cubic Bezier curve.
type CurveTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CurveTo) isPathElement() {}

// ClosePath closes the current subpath.
type ClosePath struct{}

func (ClosePath) isPathElement() {}

// Path is an ordered sequence of path elements. Order is significant: a
// MoveTo starts a subpath and ClosePath ends one.
type Path struct {
	Elements []PathElement
}

// Append adds elements to the end of the path.
func (p *Path) Append(elements ...PathElement) {
	p.Elements = append(p.Elements, elements...)
}

// Len returns the number of elements.
func (p Path) Len() int {
	return len(p.Elements)
}

// DecodePath reconstructs path elements from the engine's segment encoding.
// Engine paths hold no quadratic curves, so none are produced.
//
// DecodePath panics on a segment type it does not know, since that means
// the engine and this package disagree on the encoding.
func DecodePath(p *raster.Path) Path {
	var out Path
	d := p.Data
	for i := 0; i < len(d); {
		h := d[i]
		switch h.Type {
		case raster.PathMoveTo:
			out.Elements = append(out.Elements, MoveTo{Point: pathPoint(d, i, 1)})
		case raster.PathLineTo:
			out.Elements = append(out.Elements, LineTo{Point: pathPoint(d, i, 1)})
		case raster.PathCurveTo:
			out.Elements = append(out.Elements, CurveTo{
				Control1: pathPoint(d, i, 1),
				Control2: pathPoint(d, i, 2),
				Point:    pathPoint(d, i, 3),
			})
		case raster.PathClosePath:
			out.Elements = append(out.Elements, ClosePath{})
		default:
			panic(fmt.Sprintf("quartz: unknown path segment type %d", h.Type))
		}
		if h.Length < 1 {
			panic(fmt.Sprintf("quartz: path segment %d has length %d", i, h.Length))
		}
		i += h.Length
	}
	return out
}

// pathPoint returns the k-th point after the header at index i.
func pathPoint(d []raster.PathData, i, k int) Point {
	if i+k >= len(d) {
		panic(fmt.Sprintf("quartz: path segment %d is truncated", i))
	}
	return Point{X: d[i+k].X, Y: d[i+k].Y}
}
