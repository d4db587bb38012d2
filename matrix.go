package quartz

import (
	"math"

	"github.com/gogpu/quartz/raster"
)

// AffineTransform is a 2D affine transformation in CoreGraphics layout:
//
//	| A  B  0 |
//	| C  D  0 |
//	| TX TY 1 |
//
// A point is a row vector, so the transform maps (x, y) to
//
//	x' = A*x + C*y + TX
//	y' = B*x + D*y + TY
type AffineTransform struct {
	A, B, C, D float64
	TX, TY     float64
}

// Identity is the identity transform.
var Identity = AffineTransform{A: 1, D: 1}

// TranslationTransform returns a translation by (tx, ty).
func TranslationTransform(tx, ty float64) AffineTransform {
	return AffineTransform{A: 1, D: 1, TX: tx, TY: ty}
}

// ScaleTransform returns a scale by (sx, sy).
func ScaleTransform(sx, sy float64) AffineTransform {
	return AffineTransform{A: sx, D: sy}
}

// RotationTransform returns a rotation by angle radians.
func RotationTransform(angle float64) AffineTransform {
	sin, cos := math.Sincos(angle)
	return AffineTransform{A: cos, B: sin, C: -sin, D: cos}
}

// Concat returns the transform that applies t and then u.
func (t AffineTransform) Concat(u AffineTransform) AffineTransform {
	return AffineTransform{
		A:  t.A*u.A + t.B*u.C,
		B:  t.A*u.B + t.B*u.D,
		C:  t.C*u.A + t.D*u.C,
		D:  t.C*u.B + t.D*u.D,
		TX: t.TX*u.A + t.TY*u.C + u.TX,
		TY: t.TX*u.B + t.TY*u.D + u.TY,
	}
}

// Translated returns t with a translation applied before it.
func (t AffineTransform) Translated(tx, ty float64) AffineTransform {
	return TranslationTransform(tx, ty).Concat(t)
}

// Scaled returns t with a scale applied before it.
func (t AffineTransform) Scaled(sx, sy float64) AffineTransform {
	return ScaleTransform(sx, sy).Concat(t)
}

// Rotated returns t with a rotation applied before it.
func (t AffineTransform) Rotated(angle float64) AffineTransform {
	return RotationTransform(angle).Concat(t)
}

// Inverted returns the inverse of t, and false when t is singular.
func (t AffineTransform) Inverted() (AffineTransform, bool) {
	m, ok := t.engineMatrix().Invert()
	if !ok {
		return AffineTransform{}, false
	}
	return transformFromEngine(m), true
}

// IsIdentity reports whether t is exactly the identity.
func (t AffineTransform) IsIdentity() bool {
	return t == Identity
}

// engineMatrix converts t to the engine's matrix layout.
func (t AffineTransform) engineMatrix() raster.Matrix {
	return raster.Matrix{XX: t.A, YX: t.B, XY: t.C, YY: t.D, X0: t.TX, Y0: t.TY}
}

func transformFromEngine(m raster.Matrix) AffineTransform {
	return AffineTransform{A: m.XX, B: m.YX, C: m.XY, D: m.YY, TX: m.X0, TY: m.Y0}
}
