// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

// PathDataType identifies a segment in a Path.
type PathDataType int

const (
	// PathMoveTo starts a new subpath. One point follows.
	PathMoveTo PathDataType = iota
	// PathLineTo adds a straight segment. One point follows.
	PathLineTo
	// PathCurveTo adds a cubic Bezier segment. Three points follow.
	PathCurveTo
	// PathClosePath closes the current subpath. No points follow.
	PathClosePath
)

// PathData is one element of a Path. A header element uses Type and Length,
// where Length counts the header plus the points that follow it. A point
// element uses X and Y.
type PathData struct {
	Type   PathDataType
	Length int
	X, Y   float64
}

// Path is a flattened segment list in the layout of cairo_path_t.
type Path struct {
	Status Status
	Data   []PathData
}

// MoveTo appends a move segment.
func (p *Path) MoveTo(x, y float64) {
	p.Data = append(p.Data, PathData{Type: PathMoveTo, Length: 2}, PathData{X: x, Y: y})
}

// LineTo appends a line segment.
func (p *Path) LineTo(x, y float64) {
	p.Data = append(p.Data, PathData{Type: PathLineTo, Length: 2}, PathData{X: x, Y: y})
}

// CurveTo appends a cubic Bezier segment.
func (p *Path) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	p.Data = append(p.Data,
		PathData{Type: PathCurveTo, Length: 4},
		PathData{X: x1, Y: y1},
		PathData{X: x2, Y: y2},
		PathData{X: x3, Y: y3},
	)
}

// ClosePath appends a close segment.
func (p *Path) ClosePath() {
	p.Data = append(p.Data, PathData{Type: PathClosePath, Length: 1})
}

// point is a device space coordinate.
type point struct {
	X, Y float64
}

func (p point) add(q point) point   { return point{p.X + q.X, p.Y + q.Y} }
func (p point) sub(q point) point   { return point{p.X - q.X, p.Y - q.Y} }
func (p point) mul(s float64) point { return point{p.X * s, p.Y * s} }
func (p point) lerp(q point, t float64) point {
	return point{p.X + (q.X-p.X)*t, p.Y + (q.Y-p.Y)*t}
}

// op is one segment of the device space path.
type op struct {
	kind PathDataType
	pts  [3]point
}

// devicePath is the current path of a Context, kept in device space so that
// later transform changes do not move it.
type devicePath struct {
	ops        []op
	current    point
	hasCurrent bool
	start      point
}

func (p *devicePath) reset() {
	p.ops = p.ops[:0]
	p.hasCurrent = false
}

func (p *devicePath) moveTo(pt point) {
	p.ops = append(p.ops, op{kind: PathMoveTo, pts: [3]point{pt}})
	p.current, p.start, p.hasCurrent = pt, pt, true
}

func (p *devicePath) lineTo(pt point) {
	if !p.hasCurrent {
		p.moveTo(pt)
		return
	}
	p.ops = append(p.ops, op{kind: PathLineTo, pts: [3]point{pt}})
	p.current = pt
}

func (p *devicePath) curveTo(c1, c2, pt point) {
	if !p.hasCurrent {
		p.moveTo(c1)
	}
	p.ops = append(p.ops, op{kind: PathCurveTo, pts: [3]point{c1, c2, pt}})
	p.current = pt
}

func (p *devicePath) closePath() {
	if !p.hasCurrent {
		return
	}
	p.ops = append(p.ops, op{kind: PathClosePath})
	p.current = p.start
}
