package quartz

import "github.com/gogpu/quartz/raster"

// Engine is the rendering engine a Context draws through. It owns the
// current path, the transform, line style and clip, and reports failures
// through a sticky Status. *raster.Context implements Engine.
type Engine interface {
	Status() raster.Status
	Target() *raster.Surface

	Save()
	Restore()

	Matrix() raster.Matrix
	SetMatrix(m raster.Matrix)
	Transform(m raster.Matrix)
	Translate(tx, ty float64)
	Scale(sx, sy float64)
	Rotate(angle float64)

	NewPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CurveTo(x1, y1, x2, y2, x3, y3 float64)
	ClosePath()
	Arc(xc, yc, radius, angle1, angle2 float64)
	ArcNegative(xc, yc, radius, angle1, angle2 float64)
	Rectangle(x, y, width, height float64)
	CurrentPoint() (x, y float64, ok bool)
	CopyPath() *raster.Path
	AppendPath(p *raster.Path)
	PathExtents() (x1, y1, x2, y2 float64)

	SetSource(p raster.Pattern)
	SetFillRule(r raster.FillRule)
	FillRule() raster.FillRule
	SetLineWidth(w float64)
	LineWidth() float64
	SetLineCap(lc raster.LineCap)
	LineCap() raster.LineCap
	SetLineJoin(lj raster.LineJoin)
	LineJoin() raster.LineJoin
	SetMiterLimit(limit float64)
	MiterLimit() float64
	SetDash(dashes []float64, offset float64)
	Dash() ([]float64, float64)
	SetTolerance(t float64)
	Tolerance() float64
	SetAntialias(a raster.Antialias)
	Antialias() raster.Antialias

	Fill()
	FillPreserve()
	Stroke()
	StrokePreserve()
	Clip()
	ClipPreserve()
	ResetClip()
	Paint()
	PaintWithAlpha(alpha float64)
	MaskSurface(s *raster.Surface, x, y float64)

	PushGroup()
	PopGroup() *raster.SurfacePattern

	SetFontFace(f raster.FontFace)
	SetFontMatrix(m raster.Matrix)
	ShowGlyphs(glyphs []raster.Glyph)
	GlyphPath(glyphs []raster.Glyph)

	CopyPage()
	ShowPage()
}

var _ Engine = (*raster.Context)(nil)

// newOffscreen allocates an alpha-only surface and an engine drawing onto it.
func newOffscreen(width, height int) (*raster.Surface, Engine, error) {
	s, err := raster.NewSurface(raster.FormatA8, width, height)
	if err != nil {
		return nil, nil, err
	}
	return s, raster.NewContext(s), nil
}

// Aliases for engine enumerations used in the Context API.
type (
	// FillRule selects how the interior of a path is decided.
	FillRule = raster.FillRule
	// LineCap specifies the shape of open subpath endpoints.
	LineCap = raster.LineCap
	// LineJoin specifies the shape of corners.
	LineJoin = raster.LineJoin
)

// Fill rules.
const (
	FillRuleWinding = raster.FillRuleWinding
	FillRuleEvenOdd = raster.FillRuleEvenOdd
)

// Line caps.
const (
	LineCapButt   = raster.LineCapButt
	LineCapRound  = raster.LineCapRound
	LineCapSquare = raster.LineCapSquare
)

// Line joins.
const (
	LineJoinMiter = raster.LineJoinMiter
	LineJoinRound = raster.LineJoinRound
	LineJoinBevel = raster.LineJoinBevel
)
