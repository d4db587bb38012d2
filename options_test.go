package quartz

import "testing"

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.lineWidth != 1 {
		t.Errorf("lineWidth = %v, want 1", o.lineWidth)
	}
	if !o.antialias {
		t.Error("antialias = false, want true")
	}
	if o.tolerance != 0 {
		t.Errorf("tolerance = %v, want 0", o.tolerance)
	}
	if !o.textMatrix.IsIdentity() {
		t.Errorf("textMatrix = %v, want identity", o.textMatrix)
	}
}

func TestOptionsApplyInOrder(t *testing.T) {
	o := defaultOptions()
	for _, opt := range []ContextOption{WithLineWidth(3), WithLineWidth(5), WithAntialias(false)} {
		opt(&o)
	}
	if o.lineWidth != 5 {
		t.Errorf("lineWidth = %v, want the last value 5", o.lineWidth)
	}
	if o.antialias {
		t.Error("antialias = true, want false")
	}
}

func TestZeroToleranceKeepsEngineDefault(t *testing.T) {
	ctx := newTestContext(t, 4, 4, WithTolerance(0))
	if got := ctx.Tolerance(); got != 0.1 {
		t.Errorf("Tolerance() = %v, want engine default 0.1", got)
	}
}
