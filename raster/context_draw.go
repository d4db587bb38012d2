// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Fill paints the interior of the current path and clears the path.
func (c *Context) Fill() {
	c.FillPreserve()
	c.NewPath()
}

// FillPreserve paints the interior of the current path and keeps the path.
func (c *Context) FillPreserve() {
	if !c.ok() {
		return
	}
	polys := c.path.flatten(c.gs.tolerance)
	c.composite(coverage(polys, c.bounds(), c.gs.fillRule, c.gs.antialias), 1)
}

// Stroke paints the outline of the current path and clears the path.
func (c *Context) Stroke() {
	c.StrokePreserve()
	c.NewPath()
}

// StrokePreserve paints the outline of the current path and keeps the path.
func (c *Context) StrokePreserve() {
	if !c.ok() {
		return
	}
	polys := c.strokeOutline()
	c.composite(coverage(polys, c.bounds(), FillRuleWinding, c.gs.antialias), 1)
}

// strokeOutline expands the current path into device space polygons. The
// pen is built in user space so that a non-uniform transform distorts it.
func (c *Context) strokeOutline() []polyline {
	m := c.gs.matrix
	inv, ok := m.Invert()
	if !ok {
		return nil
	}
	polys := c.path.flatten(c.gs.tolerance)
	mapPolylines(polys, inv)

	polys = c.gs.dash.apply(polys)

	tol := c.gs.tolerance
	if s := m.lineScale(); s > 0 {
		tol /= s
	}
	out := strokePolygons(polys, strokeStyle{
		width:      c.gs.lineWidth,
		cap:        c.gs.lineCap,
		join:       c.gs.lineJoin,
		miterLimit: c.gs.miterLimit,
		tolerance:  tol,
	})
	mapPolylines(out, m)
	return out
}

// mapPolylines transforms every point in place.
func mapPolylines(polys []polyline, m Matrix) {
	for _, pl := range polys {
		for i, q := range pl.pts {
			x, y := m.TransformPoint(q.X, q.Y)
			pl.pts[i] = point{x, y}
		}
	}
}

// Clip intersects the clip region with the current path and clears the path.
func (c *Context) Clip() {
	c.ClipPreserve()
	c.NewPath()
}

// ClipPreserve intersects the clip region with the current path and keeps
// the path.
func (c *Context) ClipPreserve() {
	if !c.ok() {
		return
	}
	polys := c.path.flatten(c.gs.tolerance)
	mask := coverage(polys, c.bounds(), c.gs.fillRule, c.gs.antialias)
	if c.gs.clip != nil {
		mask = multiplyMasks(mask, c.gs.clip)
	}
	c.gs.clip = mask
}

// ResetClip removes any clip region.
func (c *Context) ResetClip() {
	if c.ok() {
		c.gs.clip = nil
	}
}

// Paint paints the source everywhere inside the clip region.
func (c *Context) Paint() {
	c.PaintWithAlpha(1)
}

// PaintWithAlpha paints the source everywhere inside the clip region,
// scaled by alpha.
func (c *Context) PaintWithAlpha(alpha float64) {
	if c.ok() {
		c.composite(nil, clamp01(alpha))
	}
}

// MaskSurface paints the source using the alpha channel of s, placed at
// (x, y) in user space, as the mask.
func (c *Context) MaskSurface(s *Surface, x, y float64) {
	if !c.ok() {
		return
	}
	if s == nil {
		c.setError(StatusNullPointer)
		return
	}
	if s.finished {
		c.setError(StatusSurfaceFinished)
		return
	}
	mask := image.NewAlpha(c.bounds())
	transformInto(mask, Multiply(TranslationMatrix(x, y), c.gs.matrix), s.img)
	c.composite(mask, 1)
}

// PushGroup saves the graphics state and redirects drawing to a new
// transparent surface the size of the current target.
func (c *Context) PushGroup() {
	if !c.ok() {
		return
	}
	cur := c.GroupTarget()
	s, err := NewSurface(FormatARGB32, cur.width, cur.height)
	if err != nil {
		c.setError(err.(Status))
		return
	}
	c.Save()
	c.groups = append(c.groups, group{surface: s, depth: len(c.saved)})
	Logger().Debug("raster: push group", "depth", len(c.groups), "width", s.width, "height", s.height)
}

// PopGroup ends the innermost group, restores the graphics state saved by
// PushGroup and returns the group contents as a pattern locked to the
// restored user space. It returns nil and sets StatusInvalidPopGroup when no
// group is open or a Save inside the group is still unmatched.
func (c *Context) PopGroup() *SurfacePattern {
	if !c.ok() {
		return nil
	}
	n := len(c.groups)
	if n == 0 || len(c.saved) != c.groups[n-1].depth {
		c.setError(StatusInvalidPopGroup)
		return nil
	}
	g := c.groups[n-1]
	c.groups = c.groups[:n-1]
	c.Restore()
	Logger().Debug("raster: pop group", "depth", n)
	return &SurfacePattern{Surface: g.surface, Matrix: c.gs.matrix}
}

func (c *Context) bounds() image.Rectangle {
	return c.GroupTarget().bounds()
}

// composite blends the source into the current target through the product
// of cov, the clip mask and alpha. A nil cov means full coverage.
func (c *Context) composite(cov *image.Alpha, alpha float64) {
	dst := c.GroupTarget()
	if dst.finished {
		c.setError(StatusSurfaceFinished)
		return
	}
	if alpha <= 0 {
		return
	}
	b := dst.bounds()
	src, ok := sourceImage(c.gs.source, c.gs.sourceMatrix, b)
	if !ok {
		return
	}

	var mask image.Image
	switch {
	case cov == nil && c.gs.clip == nil && alpha >= 1:
	case cov == nil && c.gs.clip == nil:
		mask = image.NewUniform(color.Alpha{A: uint8(alpha*255 + 0.5)})
	default:
		m := cov
		if m == nil {
			m = c.gs.clip
		} else if c.gs.clip != nil {
			m = multiplyMasks(m, c.gs.clip)
		}
		if alpha < 1 {
			m = scaleMask(m, alpha)
		}
		mask = m
	}
	draw.DrawMask(dst.img, b, src, b.Min, mask, b.Min, draw.Over)
}

// multiplyMasks returns a new mask holding the product of a and b.
func multiplyMasks(a, b *image.Alpha) *image.Alpha {
	out := image.NewAlpha(a.Rect)
	for i := range out.Pix {
		out.Pix[i] = uint8((uint32(a.Pix[i])*uint32(b.Pix[i]) + 127) / 255)
	}
	return out
}

// scaleMask returns a new mask with every value scaled by alpha.
func scaleMask(m *image.Alpha, alpha float64) *image.Alpha {
	out := image.NewAlpha(m.Rect)
	k := uint32(alpha*255 + 0.5)
	for i, v := range m.Pix {
		out.Pix[i] = uint8((uint32(v)*k + 127) / 255)
	}
	return out
}

// transformInto draws src onto dst mapped by the source-to-destination
// transform s2d, replacing what was there.
func transformInto(dst draw.Image, s2d Matrix, src image.Image) {
	sb := src.Bounds()
	if dx, dy, ok := s2d.integerTranslation(); ok {
		r := sb.Add(image.Pt(dx, dy))
		draw.Draw(dst, r, src, sb.Min, draw.Src)
		return
	}
	draw.BiLinear.Transform(dst, s2d.aff3(), src, sb, draw.Src, nil)
}
