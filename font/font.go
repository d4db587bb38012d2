package font

import (
	"bytes"
	"fmt"

	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/shaping"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/quartz"
	"github.com/gogpu/quartz/raster"
)

// parsed holds the read-only tables of a font file. It is safe to share
// between goroutines.
type parsed struct {
	tables  *gotext.Font
	outline *opentype.Font
}

func parse(data []byte) (*parsed, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	face, err := gotext.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("font: failed to parse font tables: %w", err)
	}
	outline, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("font: failed to parse font outlines: %w", err)
	}
	return &parsed{tables: face.Font, outline: outline}, nil
}

// Font is a parsed font. It implements quartz.Font, quartz.Shaper and the
// engine's glyph outline source.
type Font struct {
	name     string
	language string
	upem     float64

	src    *parsed
	face   *gotext.Face
	buf       sfnt.Buffer
	shaper    shaping.HarfbuzzShaper
	segmenter shaping.Segmenter
}

var (
	_ quartz.Font     = (*Font)(nil)
	_ quartz.Shaper   = (*Font)(nil)
	_ raster.FontFace = (*Font)(nil)
)

// Parse parses TrueType or OpenType font data.
func Parse(data []byte, opts ...Option) (*Font, error) {
	p, err := parse(data)
	if err != nil {
		return nil, err
	}
	return newFont(p, opts...), nil
}

func newFont(p *parsed, opts ...Option) *Font {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	f := &Font{
		language: cfg.language,
		src:      p,
		face:     gotext.NewFace(p.tables),
		upem:     float64(p.tables.Upem()),
	}
	f.name = cfg.name
	if f.name == "" {
		if n, err := p.outline.Name(&f.buf, sfnt.NameIDFull); err == nil {
			f.name = n
		}
	}
	quartz.Logger().Debug("font: loaded", "name", f.name, "upem", f.upem, "glyphs", p.outline.NumGlyphs())
	return f
}

// Name returns the full name of the font.
func (f *Font) Name() string {
	return f.name
}

// UnitsPerEm returns the size of the em square in font units.
func (f *Font) UnitsPerEm() float64 {
	return f.upem
}

// GlyphIndex maps r through the character map. Runes without a glyph map
// to 0, the missing glyph.
func (f *Font) GlyphIndex(r rune) uint16 {
	gid, ok := f.face.NominalGlyph(r)
	if !ok {
		quartz.Logger().Warn("font: no glyph for rune", "font", f.name, "rune", string(r))
		return 0
	}
	return uint16(gid)
}

// Advance returns the horizontal advance of glyph in font units.
func (f *Font) Advance(glyph uint16) float64 {
	return float64(f.face.HorizontalAdvance(gotext.GID(glyph)))
}

// Advances returns the advance of each glyph scaled to fontSize, with
// characterSpacing added, mapped through the linear part of textMatrix.
func (f *Font) Advances(glyphs []uint16, fontSize float64, textMatrix quartz.AffineTransform, characterSpacing float64) []quartz.Size {
	scale := fontSize / f.upem
	out := make([]quartz.Size, len(glyphs))
	for i, g := range glyphs {
		out[i] = quartz.Sz(f.Advance(g)*scale+characterSpacing, 0).Applying(textMatrix)
	}
	return out
}

// Ascent returns the ascender in font units.
func (f *Font) Ascent() float64 {
	if ext, ok := f.face.FontHExtents(); ok {
		return float64(ext.Ascender)
	}
	m, err := f.src.outline.Metrics(&f.buf, f.ppem(), xfont.HintingNone)
	if err != nil {
		return 0
	}
	return fixedToFloat(m.Ascent)
}

// Descent returns the descender in font units, as a positive distance.
func (f *Font) Descent() float64 {
	if ext, ok := f.face.FontHExtents(); ok {
		return -float64(ext.Descender)
	}
	m, err := f.src.outline.Metrics(&f.buf, f.ppem(), xfont.HintingNone)
	if err != nil {
		return 0
	}
	return fixedToFloat(m.Descent)
}

// ScaledFont returns f, which supplies its own outlines.
func (f *Font) ScaledFont() raster.FontFace {
	return f
}

// GlyphPath returns the outline of glyph in font units with y growing
// upward, or nil for a glyph without outline.
func (f *Font) GlyphPath(glyph uint16) *raster.Path {
	segs, err := f.src.outline.LoadGlyph(&f.buf, sfnt.GlyphIndex(glyph), f.ppem(), nil)
	if err != nil || len(segs) == 0 {
		return nil
	}

	// Segments are in pixels at a size of one pixel per font unit, with y
	// growing downward.
	pt := func(p fixed.Point26_6) (float64, float64) {
		return fixedToFloat(p.X), -fixedToFloat(p.Y)
	}

	var p raster.Path
	var cx, cy float64
	open := false
	for _, s := range segs {
		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				p.ClosePath()
			}
			cx, cy = pt(s.Args[0])
			p.MoveTo(cx, cy)
			open = true
		case sfnt.SegmentOpLineTo:
			cx, cy = pt(s.Args[0])
			p.LineTo(cx, cy)
		case sfnt.SegmentOpQuadTo:
			qx, qy := pt(s.Args[0])
			x, y := pt(s.Args[1])
			p.CurveTo(
				cx+2.0/3*(qx-cx), cy+2.0/3*(qy-cy),
				x+2.0/3*(qx-x), y+2.0/3*(qy-y),
				x, y,
			)
			cx, cy = x, y
		case sfnt.SegmentOpCubeTo:
			x1, y1 := pt(s.Args[0])
			x2, y2 := pt(s.Args[1])
			cx, cy = pt(s.Args[2])
			p.CurveTo(x1, y1, x2, y2, cx, cy)
		}
	}
	if open {
		p.ClosePath()
	}
	return &p
}

// ppem is the pixel size at which sfnt reports values in font units.
func (f *Font) ppem() fixed.Int26_6 {
	return fixed.Int26_6(f.upem * 64)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
