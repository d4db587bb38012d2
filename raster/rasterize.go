// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"image"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// FillRule selects how the interior of a self-intersecting path is decided.
type FillRule int

const (
	// FillRuleWinding fills regions with a non-zero winding number.
	FillRuleWinding FillRule = iota
	// FillRuleEvenOdd fills regions crossed an odd number of times.
	FillRuleEvenOdd
)

// Antialias selects edge smoothing.
type Antialias int

const (
	// AntialiasDefault smooths edges with grayscale coverage.
	AntialiasDefault Antialias = iota
	// AntialiasNone samples each pixel once at its center.
	AntialiasNone
	// AntialiasGray smooths edges with grayscale coverage.
	AntialiasGray
)

// subSamples is the number of sample lines per pixel row used by the
// scanline rasterizer when antialiasing.
const subSamples = 4

// coverage rasterizes closed polygons into a mask covering bounds.
func coverage(polys []polyline, bounds image.Rectangle, rule FillRule, aa Antialias) *image.Alpha {
	mask := image.NewAlpha(bounds)
	if len(polys) == 0 || bounds.Empty() {
		return mask
	}
	if rule == FillRuleWinding && aa != AntialiasNone {
		vectorCoverage(mask, polys)
		return mask
	}
	scanlineCoverage(mask, polys, rule, aa != AntialiasNone)
	return mask
}

// vectorCoverage accumulates signed area with x/image/vector, which yields
// nonzero winding coverage.
func vectorCoverage(mask *image.Alpha, polys []polyline) {
	b := mask.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Src
	ox, oy := float64(b.Min.X), float64(b.Min.Y)
	for _, pl := range polys {
		if len(pl.pts) < 2 {
			continue
		}
		z.MoveTo(float32(pl.pts[0].X-ox), float32(pl.pts[0].Y-oy))
		for _, p := range pl.pts[1:] {
			z.LineTo(float32(p.X-ox), float32(p.Y-oy))
		}
		z.ClosePath()
	}
	z.Draw(mask, b, image.Opaque, image.Point{})
}

// scanlineCoverage fills mask using an active edge scan. With aa set, each
// row is sampled on subSamples lines and spans contribute exact horizontal
// coverage; otherwise pixels are sampled once at their centers.
func scanlineCoverage(mask *image.Alpha, polys []polyline, rule FillRule, aa bool) {
	var el edgeList
	el.addPolylines(polys)
	if len(el.edges) == 0 {
		return
	}
	el.sortByYMin()

	b := mask.Bounds()
	minY, maxY := el.yBounds()
	y0 := max(b.Min.Y, int(math.Floor(minY)))
	y1 := min(b.Max.Y, int(math.Ceil(maxY)))

	samples := 1
	if aa {
		samples = subSamples
	}
	weight := 1 / float64(samples)
	row := make([]float64, b.Dx())
	var xs []crossing

	for y := y0; y < y1; y++ {
		clear(row)
		for s := range samples {
			sy := float64(y) + (float64(s)+0.5)*weight
			xs = el.crossings(xs[:0], sy)
			winding := 0
			var spanStart float64
			for _, c := range xs {
				wasInside := inside(winding, rule)
				winding += int(c.winding)
				isInside := inside(winding, rule)
				switch {
				case !wasInside && isInside:
					spanStart = c.x
				case wasInside && !isInside:
					if aa {
						addSpanAA(row, spanStart-float64(b.Min.X), c.x-float64(b.Min.X), weight)
					} else {
						addSpanCenter(row, spanStart-float64(b.Min.X), c.x-float64(b.Min.X))
					}
				}
			}
		}
		off := mask.PixOffset(b.Min.X, y)
		for x, v := range row {
			mask.Pix[off+x] = uint8(math.Min(v, 1)*255 + 0.5)
		}
	}
}

func inside(winding int, rule FillRule) bool {
	if rule == FillRuleEvenOdd {
		return winding&1 != 0
	}
	return winding != 0
}

// addSpanAA adds the exact coverage of [x0, x1) to row.
func addSpanAA(row []float64, x0, x1, weight float64) {
	w := float64(len(row))
	x0 = math.Max(0, x0)
	x1 = math.Min(w, x1)
	if x1 <= x0 {
		return
	}
	i0, i1 := int(x0), int(x1)
	if i0 == i1 {
		row[i0] += (x1 - x0) * weight
		return
	}
	row[i0] += (float64(i0+1) - x0) * weight
	for i := i0 + 1; i < i1; i++ {
		row[i] += weight
	}
	if i1 < len(row) {
		row[i1] += (x1 - float64(i1)) * weight
	}
}

// addSpanCenter marks pixels whose centers lie in [x0, x1).
func addSpanCenter(row []float64, x0, x1 float64) {
	i0 := max(0, int(math.Ceil(x0-0.5)))
	i1 := min(len(row), int(math.Ceil(x1-0.5)))
	for i := i0; i < i1; i++ {
		row[i] = 1
	}
}
