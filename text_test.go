package quartz

import (
	"errors"
	"testing"

	"github.com/gogpu/quartz/raster"
)

// squareFace draws every non-zero glyph as a full em square.
type squareFace struct{}

func (squareFace) UnitsPerEm() float64 { return 1000 }

func (squareFace) GlyphPath(glyph uint16) *raster.Path {
	if glyph == 0 {
		return nil
	}
	var p raster.Path
	p.MoveTo(0, 0)
	p.LineTo(1000, 0)
	p.LineTo(1000, 1000)
	p.LineTo(0, 1000)
	p.ClosePath()
	return &p
}

// fixedFont advances every glyph by advance text units at size 10.
type fixedFont struct {
	advance float64
}

func (fixedFont) Name() string { return "Fixed" }

func (fixedFont) GlyphIndex(r rune) uint16 {
	if r == ' ' {
		return 0
	}
	return 1
}

func (f fixedFont) Advances(glyphs []uint16, fontSize float64, textMatrix AffineTransform, spacing float64) []Size {
	out := make([]Size, len(glyphs))
	for i := range out {
		out[i] = Sz(f.advance*fontSize/10+spacing, 0).Applying(textMatrix)
	}
	return out
}

func (fixedFont) Ascent() float64 { return 800 }

func (fixedFont) UnitsPerEm() float64 { return 1000 }

func (fixedFont) ScaledFont() raster.FontFace { return squareFace{} }

// shapingFont reports one glyph per call with a fixed advance.
type shapingFont struct {
	fixedFont
}

func (shapingFont) Shape(text string, fontSize float64) ([]uint16, []Size) {
	return []uint16{1}, []Size{Sz(fontSize, 0)}
}

func newTextContext(t *testing.T) *Context {
	t.Helper()
	ctx := newTestContext(t, 60, 60)
	ctx.SetFont(fixedFont{advance: 4})
	ctx.SetFontSize(10)
	return ctx
}

func TestShowTextAdvances(t *testing.T) {
	ctx := newTextContext(t)
	if err := ctx.ShowText("abc"); err != nil {
		t.Fatalf("ShowText() = %v", err)
	}
	if got := ctx.TextPosition(); !pointsEqual(got, Pt(12, 0)) {
		t.Errorf("TextPosition() = %v, want (12, 0)", got)
	}

	ctx.SetCharacterSpacing(1)
	ctx.SetTextPosition(Pt(0, 0))
	if err := ctx.ShowText("ab"); err != nil {
		t.Fatal(err)
	}
	if got := ctx.TextPosition(); !pointsEqual(got, Pt(10, 0)) {
		t.Errorf("TextPosition() with spacing = %v, want (10, 0)", got)
	}
}

func TestShowGlyphsWithAdvances(t *testing.T) {
	ctx := newTextContext(t)
	ctx.SetTextPosition(Pt(1, 2))
	err := ctx.ShowGlyphsWithAdvances([]uint16{1, 1}, []Size{Sz(3, 1), Sz(4, 0)})
	if err != nil {
		t.Fatal(err)
	}
	if got := ctx.TextPosition(); !pointsEqual(got, Pt(8, 3)) {
		t.Errorf("TextPosition() = %v, want (8, 3)", got)
	}

	err = ctx.ShowGlyphsWithAdvances([]uint16{1, 1}, []Size{Sz(3, 0)})
	if !errors.Is(err, ErrGlyphCountMismatch) {
		t.Errorf("mismatched advances = %v, want ErrGlyphCountMismatch", err)
	}
	err = ctx.ShowGlyphsAtPositions([]uint16{1}, nil)
	if !errors.Is(err, ErrGlyphCountMismatch) {
		t.Errorf("mismatched positions = %v, want ErrGlyphCountMismatch", err)
	}
}

func TestShowTextWithoutFont(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*Context)
	}{
		{"no font", func(c *Context) { c.SetFontSize(10) }},
		{"zero size", func(c *Context) { c.SetFont(fixedFont{advance: 4}) }},
		{"negative size", func(c *Context) {
			c.SetFont(fixedFont{advance: 4})
			c.SetFontSize(-1)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := newTestContext(t, 20, 20)
			tt.setup(ctx)
			if err := ctx.ShowText("abc"); err != nil {
				t.Fatal(err)
			}
			if got := ctx.TextPosition(); got != (Point{}) {
				t.Errorf("TextPosition() = %v, want origin", got)
			}
		})
	}
}

func TestShowTextPixels(t *testing.T) {
	ctx := newTextContext(t)
	ctx.SetFillColor(Red)
	ctx.SetTextPosition(Pt(20, 20))
	if err := ctx.ShowText("a"); err != nil {
		t.Fatal(err)
	}
	// The em square spans 20..30 horizontally and is shifted down by the
	// ascender: 18..28 vertically.
	if r, _, _, a := rgbaAt(ctx, 25, 25); r != 255 || a != 255 {
		t.Errorf("glyph pixel = r%d a%d, want opaque red", r, a)
	}
	if got := alphaAt(ctx, 25, 19); got != 255 {
		t.Errorf("top of glyph alpha = %d, want 255", got)
	}
	if got := alphaAt(ctx, 25, 29); got != 0 {
		t.Errorf("below glyph alpha = %d, want 0", got)
	}
	if got := alphaAt(ctx, 31, 25); got != 0 {
		t.Errorf("right of glyph alpha = %d, want 0", got)
	}
}

func TestTextDrawingModes(t *testing.T) {
	tests := []struct {
		mode               TextDrawingMode
		interior, boundary bool
		clips              bool
	}{
		{TextDrawingModeFill, true, true, false},
		{TextDrawingModeStroke, false, true, false},
		{TextDrawingModeFillStroke, true, true, false},
		{TextDrawingModeInvisible, false, false, false},
		{TextDrawingModeFillClip, true, true, true},
		{TextDrawingModeStrokeClip, false, true, true},
		{TextDrawingModeFillStrokeClip, true, true, true},
		{TextDrawingModeClip, false, false, true},
	}
	for _, tt := range tests {
		ctx := newTextContext(t)
		ctx.SetTextDrawingMode(tt.mode)
		ctx.SetTextPosition(Pt(20, 20))
		ctx.MoveTo(Pt(1, 1))

		if err := ctx.ShowText("a"); err != nil {
			t.Fatalf("mode %d: ShowText() = %v", tt.mode, err)
		}
		if got := ctx.TextPosition(); !pointsEqual(got, Pt(24, 20)) {
			t.Errorf("mode %d: TextPosition() = %v, want (24, 20)", tt.mode, got)
		}
		if p, ok := ctx.CurrentPoint(); !ok || !pointsEqual(p, Pt(1, 1)) || ctx.Path().Len() != 1 {
			t.Errorf("mode %d: current path changed to %v", tt.mode, ctx.Path().Elements)
		}
		if got := alphaAt(ctx, 25, 25) == 255; got != tt.interior {
			t.Errorf("mode %d: interior painted = %v, want %v", tt.mode, got, tt.interior)
		}
		if got := alphaAt(ctx, 20, 25) > 0; got != tt.boundary {
			t.Errorf("mode %d: boundary painted = %v, want %v", tt.mode, got, tt.boundary)
		}

		// Paint a marker outside the glyph to find out whether text clipped.
		ctx.SetFillColor(Blue)
		if err := ctx.FillRect(R(40, 40, 10, 10)); err != nil {
			t.Fatal(err)
		}
		if got := alphaAt(ctx, 45, 45) == 0; got != tt.clips {
			t.Errorf("mode %d: clipped = %v, want %v", tt.mode, got, tt.clips)
		}
	}
}

func TestShowShapedText(t *testing.T) {
	ctx := newTestContext(t, 40, 40)
	ctx.SetFont(shapingFont{fixedFont{advance: 4}})
	ctx.SetFontSize(10)
	ctx.SetCharacterSpacing(2)
	ctx.SetTextMatrix(ScaleTransform(2, 1))

	if err := ctx.ShowShapedText("ffi"); err != nil {
		t.Fatal(err)
	}
	// One shaped glyph of advance 10, plus spacing, scaled by the text matrix.
	if got := ctx.TextPosition(); !pointsEqual(got, Pt(24, 0)) {
		t.Errorf("TextPosition() = %v, want (24, 0)", got)
	}

	// Fonts without shaping fall back to one glyph per rune.
	plain := newTextContext(t)
	if err := plain.ShowShapedText("ffi"); err != nil {
		t.Fatal(err)
	}
	if got := plain.TextPosition(); !pointsEqual(got, Pt(12, 0)) {
		t.Errorf("fallback TextPosition() = %v, want (12, 0)", got)
	}
}

func TestTextStateIsSaved(t *testing.T) {
	ctx := newTextContext(t)
	if err := ctx.Save(); err != nil {
		t.Fatal(err)
	}
	ctx.SetFontSize(30)
	ctx.SetCharacterSpacing(5)
	ctx.SetTextDrawingMode(TextDrawingModeStroke)
	ctx.SetTextPosition(Pt(3, 3))
	if err := ctx.Restore(); err != nil {
		t.Fatal(err)
	}
	if ctx.FontSize() != 10 || ctx.CharacterSpacing() != 0 || ctx.TextDrawingMode() != TextDrawingModeFill {
		t.Errorf("text state not restored: size %v spacing %v mode %v",
			ctx.FontSize(), ctx.CharacterSpacing(), ctx.TextDrawingMode())
	}
	// The text matrix is not part of the graphics state.
	if got := ctx.TextPosition(); got != Pt(3, 3) {
		t.Errorf("TextPosition() = %v, want (3, 3)", got)
	}
	if ctx.Font().Name() != "Fixed" {
		t.Errorf("Font().Name() = %q", ctx.Font().Name())
	}
}
