// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"math"
	"slices"
)

// epsilon is the minimum vertical extent of an edge.
const epsilon = 1e-9

// edge is a non-horizontal line segment normalized so that yMin < yMax.
type edge struct {
	yMin, yMax float64
	xAtYMin    float64
	dxdy       float64
	// winding is +1 for edges that went downward before normalization and
	// -1 for edges that went upward.
	winding int8
}

// newEdge returns false for horizontal segments, which never cross a scanline.
func newEdge(p0, p1 point) (edge, bool) {
	var w int8 = 1
	if p0.Y > p1.Y {
		p0, p1 = p1, p0
		w = -1
	}
	dy := p1.Y - p0.Y
	if dy < epsilon || math.IsNaN(dy) {
		return edge{}, false
	}
	return edge{
		yMin:    p0.Y,
		yMax:    p1.Y,
		xAtYMin: p0.X,
		dxdy:    (p1.X - p0.X) / dy,
		winding: w,
	}, true
}

func (e *edge) xAtY(y float64) float64 {
	return e.xAtYMin + (y-e.yMin)*e.dxdy
}

// edgeList collects the edges of a set of polygons. Every polyline is
// treated as closed.
type edgeList struct {
	edges []edge
}

func (el *edgeList) addLine(p0, p1 point) {
	if e, ok := newEdge(p0, p1); ok {
		el.edges = append(el.edges, e)
	}
}

func (el *edgeList) addPolylines(polys []polyline) {
	for _, pl := range polys {
		n := len(pl.pts)
		if n < 2 {
			continue
		}
		for i := 1; i < n; i++ {
			el.addLine(pl.pts[i-1], pl.pts[i])
		}
		el.addLine(pl.pts[n-1], pl.pts[0])
	}
}

func (el *edgeList) sortByYMin() {
	slices.SortFunc(el.edges, func(a, b edge) int {
		switch {
		case a.yMin < b.yMin:
			return -1
		case a.yMin > b.yMin:
			return 1
		default:
			return 0
		}
	})
}

// yBounds returns the vertical extent of all edges.
func (el *edgeList) yBounds() (minY, maxY float64) {
	if len(el.edges) == 0 {
		return 0, 0
	}
	minY, maxY = math.MaxFloat64, -math.MaxFloat64
	for i := range el.edges {
		minY = math.Min(minY, el.edges[i].yMin)
		maxY = math.Max(maxY, el.edges[i].yMax)
	}
	return minY, maxY
}

// crossing is the intersection of an active edge with a sample line.
type crossing struct {
	x       float64
	winding int8
}

// crossings appends the intersections of the edges with the horizontal line
// at y, sorted by x. The edge list must be sorted by yMin.
func (el *edgeList) crossings(dst []crossing, y float64) []crossing {
	for i := range el.edges {
		e := &el.edges[i]
		if e.yMin > y {
			break
		}
		if y < e.yMax {
			dst = append(dst, crossing{x: e.xAtY(y), winding: e.winding})
		}
	}
	// Insertion sort; crossing lists are short and nearly sorted.
	for i := 1; i < len(dst); i++ {
		for j := i; j > 0 && dst[j].x < dst[j-1].x; j-- {
			dst[j], dst[j-1] = dst[j-1], dst[j]
		}
	}
	return dst
}
