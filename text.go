package quartz

import (
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/quartz/raster"
)

// Shaper is implemented by fonts that can shape text, applying kerning and
// ligatures. Advances are in text space, scaled to fontSize, before
// character spacing and the text matrix are applied.
type Shaper interface {
	Shape(text string, fontSize float64) (glyphs []uint16, advances []Size)
}

// SetFont sets the font used by the text operations.
func (c *Context) SetFont(f Font) {
	c.state().font = f
	if f != nil {
		c.engine.SetFontFace(f.ScaledFont())
	}
}

// Font returns the current font, or nil.
func (c *Context) Font() Font {
	return c.state().font
}

// FontSize returns the font size. It is 0 until set, and no text is drawn
// at a size of 0 or less.
func (c *Context) FontSize() float64 {
	return c.state().fontSize
}

// SetFontSize sets the font size in text space units.
func (c *Context) SetFontSize(size float64) {
	c.state().fontSize = size
}

// CharacterSpacing returns the extra advance added after each glyph.
func (c *Context) CharacterSpacing() float64 {
	return c.state().characterSpacing
}

// SetCharacterSpacing sets the extra advance added after each glyph.
func (c *Context) SetCharacterSpacing(spacing float64) {
	c.state().characterSpacing = spacing
}

// TextDrawingMode returns how glyphs are painted.
func (c *Context) TextDrawingMode() TextDrawingMode {
	return c.state().textMode
}

// SetTextDrawingMode sets how glyphs are painted.
func (c *Context) SetTextDrawingMode(mode TextDrawingMode) {
	c.state().textMode = mode
}

// TextMatrix returns the text matrix. It is not part of the graphics state.
func (c *Context) TextMatrix() AffineTransform {
	return c.textMatrix
}

// SetTextMatrix sets the text matrix.
func (c *Context) SetTextMatrix(t AffineTransform) {
	c.textMatrix = t
}

// TextPosition returns the translation of the text matrix.
func (c *Context) TextPosition() Point {
	return Pt(c.textMatrix.TX, c.textMatrix.TY)
}

// SetTextPosition sets the translation of the text matrix.
func (c *Context) SetTextPosition(p Point) {
	c.textMatrix.TX = p.X
	c.textMatrix.TY = p.Y
}

// canShowText reports whether a font and a positive size are set.
func (c *Context) canShowText() bool {
	st := c.state()
	return st.font != nil && st.fontSize > 0
}

// ShowText draws s at the text position and advances it. s is normalized to
// NFC before glyph lookup.
func (c *Context) ShowText(s string) error {
	if !c.canShowText() || s == "" {
		return nil
	}
	f := c.state().font
	s = norm.NFC.String(s)
	glyphs := make([]uint16, 0, len(s))
	for _, r := range s {
		glyphs = append(glyphs, f.GlyphIndex(r))
	}
	return c.ShowGlyphs(glyphs)
}

// ShowShapedText is like ShowText but shapes s when the font implements
// Shaper.
func (c *Context) ShowShapedText(s string) error {
	if !c.canShowText() || s == "" {
		return nil
	}
	st := c.state()
	shaper, ok := st.font.(Shaper)
	if !ok {
		return c.ShowText(s)
	}
	glyphs, advances := shaper.Shape(norm.NFC.String(s), st.fontSize)
	linear := c.textMatrix
	linear.TX, linear.TY = 0, 0
	for i, a := range advances {
		a.Width += st.characterSpacing
		advances[i] = a.Applying(linear)
	}
	return c.ShowGlyphsWithAdvances(glyphs, advances)
}

// ShowGlyphs draws glyphs at the text position using the font's advances
// and advances the text position.
func (c *Context) ShowGlyphs(glyphs []uint16) error {
	if !c.canShowText() || len(glyphs) == 0 {
		return nil
	}
	st := c.state()
	advances := st.font.Advances(glyphs, st.fontSize, c.textMatrix, st.characterSpacing)
	return c.ShowGlyphsWithAdvances(glyphs, advances)
}

// ShowGlyphsWithAdvances draws glyphs with explicit advances. The first
// glyph is drawn at the text position and each following glyph is offset
// by the sum of the advances before it. The text position then moves by
// the sum of all advances.
func (c *Context) ShowGlyphsWithAdvances(glyphs []uint16, advances []Size) error {
	if !c.canShowText() || len(glyphs) == 0 {
		return nil
	}
	if len(glyphs) != len(advances) {
		return ErrGlyphCountMismatch
	}

	positions := make([]Point, len(advances))
	var pen Point
	for i, a := range advances {
		positions[i] = pen
		pen.X += a.Width
		pen.Y += a.Height
	}
	if err := c.ShowGlyphsAtPositions(glyphs, positions); err != nil {
		return err
	}

	c.textMatrix.TX += pen.X
	c.textMatrix.TY += pen.Y
	return nil
}

// ShowGlyphsAtPositions draws each glyph at its position in text space.
// The text position is not changed.
func (c *Context) ShowGlyphsAtPositions(glyphs []uint16, positions []Point) error {
	if !c.canShowText() || len(glyphs) == 0 {
		return nil
	}
	if len(glyphs) != len(positions) {
		return ErrGlyphCountMismatch
	}
	st := c.state()
	if st.textMode == TextDrawingModeInvisible {
		return nil
	}

	placed := make([]raster.Glyph, len(glyphs))
	for i, g := range glyphs {
		p := positions[i].Applying(c.textMatrix)
		placed[i] = raster.Glyph{Index: g, X: p.X, Y: p.Y}
	}

	ascender := st.font.Ascent() * st.fontSize / st.font.UnitsPerEm()
	linear := c.textMatrix
	linear.TX, linear.TY = 0, ascender
	fontMatrix := ScaleTransform(st.fontSize, st.fontSize).Concat(linear)

	c.engine.SetFontFace(st.font.ScaledFont())
	c.engine.SetFontMatrix(fontMatrix.engineMatrix())

	var fill, stroke, clip bool
	switch st.textMode {
	case TextDrawingModeFill:
		fill = true
	case TextDrawingModeStroke:
		stroke = true
	case TextDrawingModeFillStroke:
		fill, stroke = true, true
	case TextDrawingModeFillClip:
		fill, clip = true, true
	case TextDrawingModeStrokeClip:
		stroke, clip = true, true
	case TextDrawingModeFillStrokeClip:
		fill, stroke, clip = true, true, true
	case TextDrawingModeClip:
		clip = true
	}

	if fill {
		c.engine.SetSource(st.fillPattern())
		c.engine.ShowGlyphs(placed)
	}
	if stroke || clip {
		// Outlines replace the current path only for the duration of the
		// stroke or clip.
		saved := c.engine.CopyPath()
		c.engine.NewPath()
		c.engine.GlyphPath(placed)
		if stroke {
			c.engine.SetSource(st.strokePattern())
			c.engine.StrokePreserve()
		}
		if clip {
			c.engine.SetFillRule(FillRuleWinding)
			c.engine.Clip()
		} else {
			c.engine.NewPath()
		}
		c.engine.AppendPath(saved)
	}
	return statusError(c.engine.Status())
}
