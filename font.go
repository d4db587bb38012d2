package quartz

import "github.com/gogpu/quartz/raster"

// Font supplies glyph metrics to the text operations of a Context.
// Package font provides the standard implementation.
type Font interface {
	// Name returns the font's full name.
	Name() string

	// GlyphIndex maps a rune to a glyph index; 0 is the missing glyph.
	GlyphIndex(r rune) uint16

	// Advances returns the advance of each glyph in user space: the glyph
	// advance scaled to fontSize plus characterSpacing, mapped through the
	// linear part of textMatrix.
	Advances(glyphs []uint16, fontSize float64, textMatrix AffineTransform, characterSpacing float64) []Size

	// Ascent returns the ascender in font units.
	Ascent() float64

	// UnitsPerEm returns the size of the em square in font units.
	UnitsPerEm() float64

	// ScaledFont returns the face the engine draws glyph outlines from.
	ScaledFont() raster.FontFace
}

// TextDrawingMode selects how glyphs are painted.
type TextDrawingMode int

const (
	// TextDrawingModeFill fills glyph outlines with the fill color.
	TextDrawingModeFill TextDrawingMode = iota
	// TextDrawingModeStroke strokes glyph outlines.
	TextDrawingModeStroke
	// TextDrawingModeFillStroke fills, then strokes.
	TextDrawingModeFillStroke
	// TextDrawingModeInvisible draws nothing but still advances.
	TextDrawingModeInvisible
	// TextDrawingModeFillClip fills and adds outlines to the clip.
	TextDrawingModeFillClip
	// TextDrawingModeStrokeClip strokes and adds outlines to the clip.
	TextDrawingModeStrokeClip
	// TextDrawingModeFillStrokeClip fills, strokes and adds to the clip.
	TextDrawingModeFillStrokeClip
	// TextDrawingModeClip adds outlines to the clip only.
	TextDrawingModeClip
)
