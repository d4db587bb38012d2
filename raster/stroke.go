// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import "math"

// LineCap specifies the shape of open subpath endpoints.
type LineCap int

const (
	// LineCapButt ends the stroke exactly at the endpoint.
	LineCapButt LineCap = iota
	// LineCapRound ends the stroke with a half circle.
	LineCapRound
	// LineCapSquare extends the stroke by half the line width.
	LineCapSquare
)

// LineJoin specifies the shape of the corner between two segments.
type LineJoin int

const (
	// LineJoinMiter extends the outer edges until they meet, falling back to
	// a bevel when the miter limit is exceeded.
	LineJoinMiter LineJoin = iota
	// LineJoinRound fills the corner with a circular arc.
	LineJoinRound
	// LineJoinBevel cuts the corner with a straight edge.
	LineJoinBevel
)

// vec2 is a displacement, as opposed to a position.
type vec2 struct {
	X, Y float64
}

func (v vec2) scale(s float64) vec2   { return vec2{v.X * s, v.Y * s} }
func (v vec2) neg() vec2              { return vec2{-v.X, -v.Y} }
func (v vec2) dot(w vec2) float64     { return v.X*w.X + v.Y*w.Y }
func (v vec2) cross(w vec2) float64   { return v.X*w.Y - v.Y*w.X }
func (v vec2) length() float64        { return math.Hypot(v.X, v.Y) }
func (v vec2) lengthSquared() float64 { return v.X*v.X + v.Y*v.Y }
func (v vec2) angle() float64         { return math.Atan2(v.Y, v.X) }

// perp rotates v by 90 degrees toward positive angles.
func (v vec2) perp() vec2 { return vec2{-v.Y, v.X} }

// to returns the displacement from p to q.
func (p point) to(q point) vec2 { return vec2{q.X - p.X, q.Y - p.Y} }

// offset returns p displaced by v.
func (p point) offset(v vec2) point { return point{p.X + v.X, p.Y + v.Y} }

// strokeStyle holds the parameters for stroke expansion.
type strokeStyle struct {
	width      float64
	cap        LineCap
	join       LineJoin
	miterLimit float64
	// tolerance is the maximum deviation of arcs, in the space the polylines
	// are expressed in.
	tolerance float64
}

// strokePolygons expands polylines into polygons whose nonzero fill is the
// stroked area.
//
// Each subpath is offset to both sides. The side at -normal is walked
// forward and the side at +normal backward, so an open subpath becomes one
// closed outline (forward side, end cap, reversed backward side, start
// cap) and a closed subpath becomes two loops of opposite direction. Every
// outline winds the same way around the area it covers, so strokes of
// different subpaths add up instead of cancelling.
func strokePolygons(polys []polyline, st strokeStyle) []polyline {
	if !(st.width > 0) || math.IsInf(st.width, 0) {
		return nil
	}
	if st.tolerance <= 0 {
		st.tolerance = defaultTolerance
	}
	e := strokeExpander{
		style:      st,
		joinThresh: 2 * st.tolerance / st.width,
	}
	for _, pl := range polys {
		e.expand(pl)
	}
	return e.out
}

// strokeExpander holds the state of one subpath while it is expanded.
type strokeExpander struct {
	style strokeStyle

	// joinThresh is the turn, as sin of the angle, below which a join is
	// a plain connection.
	joinThresh float64

	forward  []point
	backward []point
	out      []polyline

	startPt   point
	startNorm vec2
	startTan  vec2
	lastPt    point
	lastTan   vec2
	// lastNorm is the normal at lastPt scaled to half the width; it points
	// to the backward side.
	lastNorm vec2
}

func (e *strokeExpander) expand(pl polyline) {
	pts := dedupe(pl.pts)
	if pl.closed && len(pts) > 1 && pts[0] == pts[len(pts)-1] {
		pts = pts[:len(pts)-1]
	}
	switch len(pts) {
	case 0:
		return
	case 1:
		e.dot(pts[0])
		return
	}

	e.forward, e.backward = nil, nil
	e.startPt, e.lastPt = pts[0], pts[0]
	for _, p := range pts[1:] {
		e.lineTo(p)
	}
	if pl.closed {
		e.lineTo(e.startPt)
		e.finishClosed()
		return
	}
	e.finish()
}

func (e *strokeExpander) lineTo(p point) {
	tan := e.lastPt.to(p)
	if tan.lengthSquared() == 0 {
		return
	}
	e.doJoin(tan)
	e.lastTan = tan
	e.doLine(tan, p)
}

// normal returns the normal of tan scaled to half the line width.
func (e *strokeExpander) normal(tan vec2) vec2 {
	return tan.perp().scale(0.5 * e.style.width / tan.length())
}

// doJoin connects the segment starting at lastPt with direction tan to the
// previous one.
func (e *strokeExpander) doJoin(tan vec2) {
	norm := e.normal(tan)
	p0 := e.lastPt
	if len(e.forward) == 0 {
		e.forward = append(e.forward, p0.offset(norm.neg()))
		e.backward = append(e.backward, p0.offset(norm))
		e.startTan = tan
		e.startNorm = norm
		return
	}

	ab, cd := e.lastTan, tan
	cross := ab.cross(cd)
	dot := ab.dot(cd)
	hypot := math.Hypot(cross, dot)

	// Nearly straight: connect both sides without a corner.
	if dot > 0 && math.Abs(cross) < hypot*e.joinThresh {
		e.forward = append(e.forward, p0.offset(norm.neg()))
		e.backward = append(e.backward, p0.offset(norm))
		return
	}

	// cross > 0 turns the forward side outward. The inner side always
	// passes through the pivot so the nonzero fill covers the corner.
	switch e.style.join {
	case LineJoinMiter:
		e.miterJoin(p0, norm, ab, cd, cross, dot, hypot)
	case LineJoinRound:
		e.roundJoin(p0, norm, cross, dot)
	default:
		e.bevelJoin(p0, norm, cross)
	}
}

func (e *strokeExpander) bevelJoin(p0 point, norm vec2, cross float64) {
	if cross > 0 {
		e.backward = append(e.backward, p0)
	} else {
		e.forward = append(e.forward, p0)
	}
	e.forward = append(e.forward, p0.offset(norm.neg()))
	e.backward = append(e.backward, p0.offset(norm))
}

// miterJoin adds the miter tip when 1/sin(theta/2) stays within the limit,
// which is 2*hypot < (hypot+dot)*limit^2 in terms of the turn.
func (e *strokeExpander) miterJoin(p0 point, norm, ab, cd vec2, cross, dot, hypot float64) {
	limit := e.style.miterLimit
	if !(2*hypot < (hypot+dot)*limit*limit) {
		e.bevelJoin(p0, norm, cross)
		return
	}
	lastNorm := e.normal(ab)
	if cross > 0 {
		e.forward = append(e.forward, miterPoint(p0.offset(lastNorm.neg()), p0.offset(norm.neg()), ab, cd, cross))
		e.backward = append(e.backward, p0)
	} else {
		e.backward = append(e.backward, miterPoint(p0.offset(lastNorm), p0.offset(norm), ab, cd, cross))
		e.forward = append(e.forward, p0)
	}
	e.forward = append(e.forward, p0.offset(norm.neg()))
	e.backward = append(e.backward, p0.offset(norm))
}

// miterPoint intersects the line through last with direction ab and the
// line through this with direction cd.
func miterPoint(last, this point, ab, cd vec2, cross float64) point {
	h := ab.cross(last.to(this)) / cross
	return this.offset(cd.scale(-h))
}

// roundJoin sweeps the outer side from the previous normal to the new one.
func (e *strokeExpander) roundJoin(p0 point, norm vec2, cross, dot float64) {
	lastNorm := e.normal(e.lastTan)
	angle := math.Atan2(cross, dot)
	if angle > 0 {
		e.backward = append(e.backward, p0, p0.offset(norm))
		e.forward = e.arc(e.forward, p0, lastNorm.neg(), angle)
	} else {
		e.forward = append(e.forward, p0, p0.offset(norm.neg()))
		e.backward = e.arc(e.backward, p0, lastNorm, angle)
	}
}

func (e *strokeExpander) doLine(tan vec2, p1 point) {
	norm := e.normal(tan)
	e.forward = append(e.forward, p1.offset(norm.neg()))
	e.backward = append(e.backward, p1.offset(norm))
	e.lastPt = p1
	e.lastNorm = norm
}

// finish closes an open subpath with its caps.
func (e *strokeExpander) finish() {
	if len(e.forward) == 0 {
		return
	}
	outline := append([]point(nil), e.forward...)
	outline = e.capAt(outline, e.lastPt, e.lastNorm.neg(), false)
	for i := len(e.backward) - 2; i >= 0; i-- {
		outline = append(outline, e.backward[i])
	}
	outline = e.capAt(outline, e.startPt, e.startNorm, true)
	e.out = append(e.out, polyline{pts: outline, closed: true})
}

// finishClosed joins the last segment to the first and emits both loops.
func (e *strokeExpander) finishClosed() {
	if len(e.forward) == 0 {
		return
	}
	e.doJoin(e.startTan)
	e.out = append(e.out, polyline{pts: e.forward, closed: true})

	back := make([]point, len(e.backward))
	for i, p := range e.backward {
		back[len(back)-1-i] = p
	}
	e.out = append(e.out, polyline{pts: back, closed: true})
}

// capAt appends the cap at center to outline. The outline currently ends at
// center+norm and continues at center-norm; with closing set the outline is
// about to close, so the final point is implied.
func (e *strokeExpander) capAt(outline []point, center point, norm vec2, closing bool) []point {
	switch e.style.cap {
	case LineCapRound:
		outline = e.arc(outline, center, norm, math.Pi)
		if closing {
			outline = outline[:len(outline)-1]
		}
	case LineCapSquare:
		ext := norm.perp()
		outline = append(outline,
			center.offset(norm).offset(ext),
			center.offset(norm.neg()).offset(ext),
		)
		if !closing {
			outline = append(outline, center.offset(norm.neg()))
		}
	default:
		if !closing {
			outline = append(outline, center.offset(norm.neg()))
		}
	}
	return outline
}

// arc appends chords of the circle around center from center+norm, turning
// by angle. The start point is not appended.
func (e *strokeExpander) arc(out []point, center point, norm vec2, angle float64) []point {
	radius := norm.length()
	steps := arcSteps(radius, angle, e.style.tolerance)
	a0 := norm.angle()
	for i := 1; i <= steps; i++ {
		sin, cos := math.Sincos(a0 + angle*float64(i)/float64(steps))
		out = append(out, point{center.X + radius*cos, center.Y + radius*sin})
	}
	return out
}

// dot strokes a zero length subpath, which only shows with round or square
// caps.
func (e *strokeExpander) dot(p point) {
	h := 0.5 * e.style.width
	switch e.style.cap {
	case LineCapRound:
		pts := e.arc(nil, p, vec2{h, 0}, 2*math.Pi)
		e.out = append(e.out, polyline{pts: pts, closed: true})
	case LineCapSquare:
		e.out = append(e.out, polyline{pts: []point{
			{p.X - h, p.Y - h}, {p.X + h, p.Y - h}, {p.X + h, p.Y + h}, {p.X - h, p.Y + h},
		}, closed: true})
	}
}

// arcSteps returns how many chords approximate an arc of the given radius
// and sweep within tolerance.
func arcSteps(radius, sweep, tolerance float64) int {
	least := max(int(math.Ceil(4*math.Abs(sweep)/math.Pi)), 2)
	if tolerance <= 0 || tolerance >= radius {
		return least
	}
	step := 2 * math.Acos(1-tolerance/radius)
	n := int(math.Ceil(math.Abs(sweep) / step))
	return min(max(n, least), 1024)
}

func dedupe(pts []point) []point {
	out := make([]point, 0, len(pts))
	for i, p := range pts {
		if i > 0 && p == out[len(out)-1] {
			continue
		}
		out = append(out, p)
	}
	return out
}

// signedArea returns twice the signed area of the polygon.
func signedArea(pts []point) float64 {
	var a float64
	for i := range pts {
		p, q := pts[i], pts[(i+1)%len(pts)]
		a += p.X*q.Y - q.X*p.Y
	}
	return a
}
