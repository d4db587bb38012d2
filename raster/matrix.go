// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"math"

	"golang.org/x/image/math/f64"
)

// Matrix is a 2D affine transform in cairo layout:
//
//	x' = XX*x + XY*y + X0
//	y' = YX*x + YY*y + Y0
type Matrix struct {
	XX, YX float64
	XY, YY float64
	X0, Y0 float64
}

// IdentityMatrix returns the identity transform.
func IdentityMatrix() Matrix {
	return Matrix{XX: 1, YY: 1}
}

// TranslationMatrix returns a pure translation.
func TranslationMatrix(tx, ty float64) Matrix {
	return Matrix{XX: 1, YY: 1, X0: tx, Y0: ty}
}

// ScalingMatrix returns a pure scale.
func ScalingMatrix(sx, sy float64) Matrix {
	return Matrix{XX: sx, YY: sy}
}

// RotationMatrix returns a rotation by angle radians.
func RotationMatrix(angle float64) Matrix {
	s, c := math.Sincos(angle)
	return Matrix{XX: c, YX: s, XY: -s, YY: c}
}

// Multiply returns the transform that applies a first and then b.
func Multiply(a, b Matrix) Matrix {
	return Matrix{
		XX: a.XX*b.XX + a.YX*b.XY,
		YX: a.XX*b.YX + a.YX*b.YY,
		XY: a.XY*b.XX + a.YY*b.XY,
		YY: a.XY*b.YX + a.YY*b.YY,
		X0: a.X0*b.XX + a.Y0*b.XY + b.X0,
		Y0: a.X0*b.YX + a.Y0*b.YY + b.Y0,
	}
}

// Translate returns m with a translation applied before it.
func (m Matrix) Translate(tx, ty float64) Matrix {
	return Multiply(TranslationMatrix(tx, ty), m)
}

// Scale returns m with a scale applied before it.
func (m Matrix) Scale(sx, sy float64) Matrix {
	return Multiply(ScalingMatrix(sx, sy), m)
}

// Rotate returns m with a rotation applied before it.
func (m Matrix) Rotate(angle float64) Matrix {
	return Multiply(RotationMatrix(angle), m)
}

// Determinant returns the determinant of the linear part.
func (m Matrix) Determinant() float64 {
	return m.XX*m.YY - m.YX*m.XY
}

// Invert returns the inverse of m. The second result is false when m is
// singular or contains non-finite values.
func (m Matrix) Invert() (Matrix, bool) {
	det := m.Determinant()
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return Matrix{}, false
	}
	inv := 1 / det
	r := Matrix{
		XX: m.YY * inv,
		YX: -m.YX * inv,
		XY: -m.XY * inv,
		YY: m.XX * inv,
	}
	r.X0 = -(m.X0*r.XX + m.Y0*r.XY)
	r.Y0 = -(m.X0*r.YX + m.Y0*r.YY)
	return r, true
}

// TransformPoint applies the full transform to (x, y).
func (m Matrix) TransformPoint(x, y float64) (float64, float64) {
	return m.XX*x + m.XY*y + m.X0, m.YX*x + m.YY*y + m.Y0
}

// TransformDistance applies only the linear part to (dx, dy).
func (m Matrix) TransformDistance(dx, dy float64) (float64, float64) {
	return m.XX*dx + m.XY*dy, m.YX*dx + m.YY*dy
}

// IsIdentity reports whether m is exactly the identity.
func (m Matrix) IsIdentity() bool {
	return m == IdentityMatrix()
}

// integerTranslation reports whether m is a translation by whole pixels.
func (m Matrix) integerTranslation() (dx, dy int, ok bool) {
	if m.XX != 1 || m.YY != 1 || m.XY != 0 || m.YX != 0 {
		return 0, 0, false
	}
	if m.X0 != math.Trunc(m.X0) || m.Y0 != math.Trunc(m.Y0) {
		return 0, 0, false
	}
	return int(m.X0), int(m.Y0), true
}

// aff3 converts m to the source-to-destination form used by x/image/draw.
func (m Matrix) aff3() f64.Aff3 {
	return f64.Aff3{m.XX, m.XY, m.X0, m.YX, m.YY, m.Y0}
}

// lineScale returns the factor by which m scales lengths on average.
func (m Matrix) lineScale() float64 {
	return math.Sqrt(math.Abs(m.Determinant()))
}
