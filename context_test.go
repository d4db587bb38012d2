package quartz

import (
	"errors"
	"fmt"
	"image"
	"reflect"
	"testing"

	"github.com/gogpu/quartz/raster"
)

func newTestContext(t *testing.T, w, h int, opts ...ContextOption) *Context {
	t.Helper()
	ctx, err := NewImageContext(w, h, opts...)
	if err != nil {
		t.Fatalf("NewImageContext(%d, %d) = %v", w, h, err)
	}
	return ctx
}

// rgbaAt returns the 8-bit premultiplied components of a target pixel.
func rgbaAt(ctx *Context, x, y int) (r, g, b, a uint8) {
	r32, g32, b32, a32 := ctx.Image().At(x, y).RGBA()
	return uint8(r32 >> 8), uint8(g32 >> 8), uint8(b32 >> 8), uint8(a32 >> 8)
}

func alphaAt(ctx *Context, x, y int) uint8 {
	_, _, _, a := rgbaAt(ctx, x, y)
	return a
}

func near(got, want, tolerance uint8) bool {
	d := int(got) - int(want)
	return d >= -int(tolerance) && d <= int(tolerance)
}

// recordingEngine wraps the raster engine and records the calls that make
// up the painting pipelines.
type recordingEngine struct {
	*raster.Context
	calls []string
}

func newRecordingContext(t *testing.T, w, h int) (*Context, *recordingEngine) {
	t.Helper()
	s, err := raster.NewSurface(raster.FormatARGB32, w, h)
	if err != nil {
		t.Fatal(err)
	}
	rec := &recordingEngine{Context: raster.NewContext(s)}
	ctx, err := NewContext(rec, Sz(float64(w), float64(h)))
	if err != nil {
		t.Fatal(err)
	}
	rec.calls = nil
	return ctx, rec
}

func (r *recordingEngine) record(format string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *recordingEngine) Save()    { r.record("Save"); r.Context.Save() }
func (r *recordingEngine) Restore() { r.record("Restore"); r.Context.Restore() }
func (r *recordingEngine) NewPath() { r.record("NewPath"); r.Context.NewPath() }
func (r *recordingEngine) Clip()    { r.record("Clip"); r.Context.Clip() }

func (r *recordingEngine) SetSource(p raster.Pattern) {
	r.record("SetSource(%T)", p)
	r.Context.SetSource(p)
}

func (r *recordingEngine) SetFillRule(rule raster.FillRule) {
	r.record("SetFillRule(%d)", rule)
	r.Context.SetFillRule(rule)
}

func (r *recordingEngine) FillPreserve() {
	r.record("FillPreserve")
	r.Context.FillPreserve()
}

func (r *recordingEngine) StrokePreserve() {
	r.record("StrokePreserve")
	r.Context.StrokePreserve()
}

func (r *recordingEngine) PushGroup() {
	r.record("PushGroup")
	r.Context.PushGroup()
}

func (r *recordingEngine) PopGroup() *raster.SurfacePattern {
	r.record("PopGroup")
	return r.Context.PopGroup()
}

func (r *recordingEngine) PaintWithAlpha(alpha float64) {
	r.record("PaintWithAlpha(%g)", alpha)
	r.Context.PaintWithAlpha(alpha)
}

func TestNewContext(t *testing.T) {
	ctx := newTestContext(t, 20, 10)
	if got := ctx.Size(); got != Sz(20, 10) {
		t.Errorf("Size() = %v, want {20 10}", got)
	}
	if got := ctx.LineWidth(); got != 1 {
		t.Errorf("LineWidth() = %v, want 1", got)
	}
	if !ctx.ShouldAntialias() {
		t.Error("ShouldAntialias() = false, want true")
	}
	if got := ctx.FillColor(); got != Black {
		t.Errorf("FillColor() = %v, want black", got)
	}
	if got := ctx.StrokeColor(); got != Black {
		t.Errorf("StrokeColor() = %v, want black", got)
	}
	if got := ctx.Alpha(); got != 1 {
		t.Errorf("Alpha() = %v, want 1", got)
	}
	if !ctx.CurrentTransform().IsIdentity() {
		t.Errorf("CurrentTransform() = %v, want identity", ctx.CurrentTransform())
	}
	if ctx.TextDrawingMode() != TextDrawingModeFill {
		t.Errorf("TextDrawingMode() = %v, want fill", ctx.TextDrawingMode())
	}
}

func TestNewContextOptions(t *testing.T) {
	tm := TranslationTransform(3, 4)
	ctx := newTestContext(t, 10, 10,
		WithLineWidth(2.5),
		WithAntialias(false),
		WithTolerance(0.25),
		WithTextMatrix(tm),
	)
	if got := ctx.LineWidth(); got != 2.5 {
		t.Errorf("LineWidth() = %v, want 2.5", got)
	}
	if ctx.ShouldAntialias() {
		t.Error("ShouldAntialias() = true, want false")
	}
	if got := ctx.Tolerance(); got != 0.25 {
		t.Errorf("Tolerance() = %v, want 0.25", got)
	}
	if got := ctx.TextPosition(); got != Pt(3, 4) {
		t.Errorf("TextPosition() = %v, want (3, 4)", got)
	}
}

func TestNewContextErrors(t *testing.T) {
	sizes := []struct{ w, h int }{
		{-1, 10},
		{raster.MaxSurfaceSize + 1, 10},
		{1 << 30, 1 << 30},
	}
	for _, sz := range sizes {
		if _, err := NewImageContext(sz.w, sz.h); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("NewImageContext(%d, %d) = %v, want ErrInvalidSize", sz.w, sz.h, err)
		}
	}

	s, _ := raster.NewSurface(raster.FormatARGB32, 4, 4)
	if _, err := NewContext(raster.NewContext(s), Sz(-4, 4)); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("NewContext(negative size) = %v, want ErrInvalidSize", err)
	}

	_, err := NewContext(raster.NewContext(nil), Sz(4, 4))
	var engineErr *EngineError
	if !errors.As(err, &engineErr) || engineErr.Status != raster.StatusNullPointer {
		t.Errorf("NewContext(nil target) = %v, want engine null pointer error", err)
	}
}

func TestSaveRestore(t *testing.T) {
	ctx, rec := newRecordingContext(t, 10, 10)

	for range 3 {
		if err := ctx.Save(); err != nil {
			t.Fatalf("Save() = %v", err)
		}
	}
	for i := range 3 {
		if err := ctx.Restore(); err != nil {
			t.Fatalf("Restore() #%d = %v", i+1, err)
		}
	}

	rec.calls = nil
	if err := ctx.Restore(); !errors.Is(err, ErrInvalidRestore) {
		t.Errorf("Restore() at root = %v, want ErrInvalidRestore", err)
	}
	if len(rec.calls) != 0 {
		t.Errorf("Restore() at root touched the engine: %v", rec.calls)
	}
	if len(ctx.states) != 1 {
		t.Errorf("state stack has %d entries, want 1", len(ctx.states))
	}
}

func TestSaveRestoreState(t *testing.T) {
	ctx := newTestContext(t, 10, 10)
	ctx.SetFillColor(Red)
	ctx.SetLineWidth(3)
	if err := ctx.Save(); err != nil {
		t.Fatal(err)
	}
	ctx.SetFillColor(Blue)
	ctx.SetLineWidth(7)
	ctx.TranslateBy(5, 5)
	if err := ctx.Restore(); err != nil {
		t.Fatal(err)
	}

	if got := ctx.FillColor(); got != Red {
		t.Errorf("FillColor() = %v, want red", got)
	}
	if got := ctx.LineWidth(); got != 3 {
		t.Errorf("LineWidth() = %v, want 3", got)
	}
	if !ctx.CurrentTransform().IsIdentity() {
		t.Errorf("CurrentTransform() = %v, want identity", ctx.CurrentTransform())
	}
}

func TestEngineErrorIs(t *testing.T) {
	err := error(&EngineError{Status: raster.StatusInvalidRestore})
	if !errors.Is(err, ErrInvalidRestore) {
		t.Error("engine restore failure does not match ErrInvalidRestore")
	}
	if !errors.Is(err, raster.StatusInvalidRestore) {
		t.Error("engine error does not unwrap to its status")
	}
	if errors.Is(&EngineError{Status: raster.StatusNoMemory}, ErrInvalidRestore) {
		t.Error("unrelated engine error matches ErrInvalidRestore")
	}
}

func TestSetLineDash(t *testing.T) {
	ctx := newTestContext(t, 10, 10)
	if err := ctx.SetLineDash(2, []float64{4, 1}); err != nil {
		t.Fatalf("SetLineDash() = %v", err)
	}
	phase, lengths := ctx.LineDash()
	if phase != 2 || !reflect.DeepEqual(lengths, []float64{4, 1}) {
		t.Errorf("LineDash() = %v, %v, want 2, [4 1]", phase, lengths)
	}

	err := ctx.SetLineDash(0, []float64{-1})
	if !errors.Is(err, raster.StatusInvalidDash) {
		t.Errorf("SetLineDash(negative) = %v, want invalid dash", err)
	}
}

func TestAlphaPropagation(t *testing.T) {
	ctx := newTestContext(t, 10, 10)
	ctx.SetFillColor(Red)
	ctx.SetStrokeColor(Red)
	if err := ctx.Save(); err != nil {
		t.Fatal(err)
	}
	ctx.SetAlpha(0.5)

	want := RGBA(1, 0, 0, 0.5)
	if got := ctx.FillColor(); got != want {
		t.Errorf("FillColor() = %v, want %v", got, want)
	}
	if got := ctx.StrokeColor(); got != want {
		t.Errorf("StrokeColor() = %v, want %v", got, want)
	}
	if p := ctx.state().fill.pattern.(*raster.SolidPattern); p.A != 0.5 {
		t.Errorf("fill pattern alpha = %v, want 0.5", p.A)
	}

	if err := ctx.Restore(); err != nil {
		t.Fatal(err)
	}
	if got := ctx.FillColor(); got != Red {
		t.Errorf("FillColor() after Restore = %v, want red", got)
	}
	if got := ctx.Alpha(); got != 1 {
		t.Errorf("Alpha() after Restore = %v, want 1", got)
	}
}

func TestSetAlphaWithoutColors(t *testing.T) {
	ctx := newTestContext(t, 10, 10)
	ctx.SetAlpha(0.5)
	if ctx.state().fill != nil || ctx.state().stroke != nil {
		t.Error("SetAlpha() created paints that were never set")
	}
	if got := ctx.FillColor(); got != Black {
		t.Errorf("FillColor() = %v, want black", got)
	}
}

func TestTransforms(t *testing.T) {
	ctx := newTestContext(t, 10, 10)
	ctx.TranslateBy(10, 20)
	ctx.ScaleBy(2, 2)
	got := Pt(1, 1).Applying(ctx.CurrentTransform())
	if !pointsEqual(got, Pt(12, 22)) {
		t.Errorf("CTM maps (1,1) to %v, want (12,22)", got)
	}

	ctx.ConcatenateTransform(RotationTransform(0))
	ctx.RotateBy(0)
	if got := Pt(1, 1).Applying(ctx.CurrentTransform()); !pointsEqual(got, Pt(12, 22)) {
		t.Errorf("identity rotation changed the CTM: %v", got)
	}
}

func TestPages(t *testing.T) {
	ctx := newTestContext(t, 4, 4)
	var pages int
	ctx.Engine().Target().SetPageFunc(func(int, image.Image) { pages++ })

	if err := ctx.FillRect(R(0, 0, 4, 4)); err != nil {
		t.Fatal(err)
	}
	if err := ctx.BeginPage(); err != nil {
		t.Fatal(err)
	}
	if err := ctx.EndPage(); err != nil {
		t.Fatal(err)
	}
	if pages != 2 {
		t.Errorf("pages emitted = %d, want 2", pages)
	}
	if got := alphaAt(ctx, 1, 1); got != 0 {
		t.Errorf("alpha after EndPage = %d, want 0", got)
	}
}
