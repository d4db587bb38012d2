// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"math"
	"testing"
)

func TestFlattenCubicRec(t *testing.T) {
	nan := math.NaN()
	tests := []struct {
		name           string
		p1, p2         point
		tolerance      float64
		minPts, maxPts int
	}{
		{"straight", point{3, 0}, point{7, 0}, 0.1, 1, 1},
		{"arch coarse", point{0, 10}, point{10, 10}, 5, 1, 4},
		{"arch fine", point{0, 10}, point{10, 10}, 0.01, 8, 1 << maxSubdivision},
		{"nan control", point{nan, 0}, point{7, 0}, 0.1, 1, 1},
		{"tiny tolerance", point{0, 10}, point{10, 10}, 1e-300, 1, 1 << maxSubdivision},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var pts []point
			flattenCubicRec(point{0, 0}, tt.p1, tt.p2, point{10, 0}, tt.tolerance, 0, &pts)
			if len(pts) < tt.minPts || len(pts) > tt.maxPts {
				t.Errorf("got %d points, want %d..%d", len(pts), tt.minPts, tt.maxPts)
			}
			if last := pts[len(pts)-1]; last != (point{10, 0}) {
				t.Errorf("last point = %v, want (10, 0)", last)
			}
		})
	}
}

func TestFlattenKeepsSubpaths(t *testing.T) {
	c, _ := newTestContext(t, 20, 20)
	c.MoveTo(0, 0)
	c.CurveTo(0, 10, 10, 10, 10, 0)
	c.ClosePath()
	c.MoveTo(15, 15)
	c.LineTo(18, 15)
	polys := c.path.flatten(0.1)
	if len(polys) != 2 {
		t.Fatalf("got %d polylines, want 2", len(polys))
	}
	if !polys[0].closed || polys[1].closed {
		t.Errorf("closed flags = %v, %v; want true, false", polys[0].closed, polys[1].closed)
	}
	for _, p := range polys[0].pts {
		if p.Y < -1e-9 || p.Y > 7.5+1e-9 {
			t.Errorf("flattened point %v outside the curve hull", p)
		}
	}
}
