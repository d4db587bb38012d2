// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import "math"

// maxSubdivision bounds curve recursion for degenerate input.
const maxSubdivision = 16

// polyline is one flattened subpath in device space.
type polyline struct {
	pts    []point
	closed bool
}

// flatten converts the path into polylines, replacing curves by line
// segments that stay within tolerance of the curve.
func (p *devicePath) flatten(tolerance float64) []polyline {
	if tolerance <= 0 {
		tolerance = defaultTolerance
	}
	var (
		out   []polyline
		cur   polyline
		start point
		last  point
	)
	flush := func() {
		if len(cur.pts) > 0 {
			out = append(out, cur)
		}
		cur = polyline{}
	}
	for _, o := range p.ops {
		switch o.kind {
		case PathMoveTo:
			flush()
			start, last = o.pts[0], o.pts[0]
			cur.pts = append(cur.pts, last)
		case PathLineTo:
			if len(cur.pts) == 0 {
				cur.pts = append(cur.pts, start)
			}
			last = o.pts[0]
			cur.pts = append(cur.pts, last)
		case PathCurveTo:
			if len(cur.pts) == 0 {
				cur.pts = append(cur.pts, start)
			}
			flattenCubicRec(last, o.pts[0], o.pts[1], o.pts[2], tolerance, 0, &cur.pts)
			last = o.pts[2]
		case PathClosePath:
			if len(cur.pts) > 0 {
				cur.closed = true
				flush()
			}
			last = start
		}
	}
	flush()
	return out
}

// flattenCubicRec appends the flattened cubic (p0, p1, p2, p3) to points,
// without p0. It subdivides until both control points lie within tolerance
// of the chord.
func flattenCubicRec(p0, p1, p2, p3 point, tolerance float64, depth int, points *[]point) {
	d1 := distanceToLine(p1, p0, p3)
	d2 := distanceToLine(p2, p0, p3)
	if math.Max(d1, d2) < tolerance || depth >= maxSubdivision || math.IsNaN(d1+d2) {
		*points = append(*points, p3)
		return
	}

	// de Casteljau split at t = 0.5.
	q0 := p0.lerp(p1, 0.5)
	q1 := p1.lerp(p2, 0.5)
	q2 := p2.lerp(p3, 0.5)
	r0 := q0.lerp(q1, 0.5)
	r1 := q1.lerp(q2, 0.5)
	s := r0.lerp(r1, 0.5)

	flattenCubicRec(p0, q0, r0, s, tolerance, depth+1, points)
	flattenCubicRec(s, r1, q2, p3, tolerance, depth+1, points)
}

// distanceToLine returns the distance from p to the segment (a, b).
func distanceToLine(p, a, b point) float64 {
	ab := b.sub(a)
	abLen := math.Hypot(ab.X, ab.Y)
	if abLen < 1e-10 {
		return math.Hypot(p.X-a.X, p.Y-a.Y)
	}

	ap := p.sub(a)
	t := (ap.X*ab.X + ap.Y*ab.Y) / (abLen * abLen)
	switch {
	case t < 0:
		return math.Hypot(p.X-a.X, p.Y-a.Y)
	case t > 1:
		return math.Hypot(p.X-b.X, p.Y-b.Y)
	}
	c := a.add(ab.mul(t))
	return math.Hypot(p.X-c.X, p.Y-c.Y)
}
