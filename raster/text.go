// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

// FontFace supplies glyph outlines to ShowGlyphs.
type FontFace interface {
	// UnitsPerEm returns the size of the em square in font units.
	UnitsPerEm() float64
	// GlyphPath returns the outline of a glyph in font units with y growing
	// upward, or nil for a glyph without outline.
	GlyphPath(glyph uint16) *Path
}

// Glyph is a glyph index placed at a user space position.
type Glyph struct {
	Index uint16
	X, Y  float64
}

// SetFontFace sets the face used by ShowGlyphs.
func (c *Context) SetFontFace(f FontFace) {
	if c.ok() {
		c.gs.fontFace = f
	}
}

// FontFace returns the current face, or nil.
func (c *Context) FontFace() FontFace { return c.gs.fontFace }

// SetFontMatrix sets the transform from glyph space (one unit per em, y
// growing downward) to user space.
func (c *Context) SetFontMatrix(m Matrix) {
	if !c.ok() {
		return
	}
	if _, ok := m.Invert(); !ok {
		c.setError(StatusInvalidMatrix)
		return
	}
	c.gs.fontMatrix = m
}

// FontMatrix returns the font matrix.
func (c *Context) FontMatrix() Matrix { return c.gs.fontMatrix }

// SetFontSize sets the font matrix to a uniform scale of size.
func (c *Context) SetFontSize(size float64) {
	c.SetFontMatrix(ScalingMatrix(size, size))
}

// ShowGlyphs fills the outlines of glyphs with the current source. Each
// glyph origin is placed at its position and the outline is mapped through
// the font matrix. The current path is left untouched.
func (c *Context) ShowGlyphs(glyphs []Glyph) {
	if !c.ok() || len(glyphs) == 0 {
		return
	}
	var dp devicePath
	if !c.appendGlyphs(&dp, glyphs) {
		return
	}
	polys := dp.flatten(c.gs.tolerance)
	c.composite(coverage(polys, c.bounds(), FillRuleWinding, c.gs.antialias), 1)
}

// GlyphPath adds the outlines of glyphs to the current path, placed as
// ShowGlyphs would draw them.
func (c *Context) GlyphPath(glyphs []Glyph) {
	if !c.ok() || len(glyphs) == 0 {
		return
	}
	c.appendGlyphs(&c.path, glyphs)
}

// appendGlyphs adds device space glyph outlines to dp. It reports false
// when no usable face is set.
func (c *Context) appendGlyphs(dp *devicePath, glyphs []Glyph) bool {
	face := c.gs.fontFace
	if face == nil {
		return false
	}
	upem := face.UnitsPerEm()
	if upem <= 0 {
		return false
	}
	glyphToUser := Multiply(ScalingMatrix(1/upem, -1/upem), c.gs.fontMatrix)
	for _, g := range glyphs {
		outline := face.GlyphPath(g.Index)
		if outline == nil {
			continue
		}
		toDevice := Multiply(glyphToUser, Multiply(TranslationMatrix(g.X, g.Y), c.gs.matrix))
		appendDevicePath(dp, outline, toDevice)
	}
	return true
}

// appendDevicePath replays p through m onto dp, skipping malformed segments.
func appendDevicePath(dp *devicePath, p *Path, m Matrix) {
	at := func(d PathData) point {
		x, y := m.TransformPoint(d.X, d.Y)
		return point{x, y}
	}
	d := p.Data
	for i := 0; i < len(d); {
		h := d[i]
		if h.Length < 1 || i+h.Length > len(d) {
			return
		}
		switch {
		case h.Type == PathMoveTo && h.Length >= 2:
			dp.moveTo(at(d[i+1]))
		case h.Type == PathLineTo && h.Length >= 2:
			dp.lineTo(at(d[i+1]))
		case h.Type == PathCurveTo && h.Length >= 4:
			dp.curveTo(at(d[i+1]), at(d[i+2]), at(d[i+3]))
		case h.Type == PathClosePath:
			dp.closePath()
		}
		i += h.Length
	}
}
