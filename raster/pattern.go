// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"image"
	"image/color"
)

// Pattern is a paint source. It is a closed set of variants:
// *SolidPattern and *SurfacePattern.
type Pattern interface {
	isPattern()
}

// SolidPattern paints a single color. Components are non-premultiplied and
// in [0, 1].
type SolidPattern struct {
	R, G, B, A float64
}

func (*SolidPattern) isPattern() {}

// NewSolidPattern returns a solid color source.
func NewSolidPattern(r, g, b, a float64) *SolidPattern {
	return &SolidPattern{R: clamp01(r), G: clamp01(g), B: clamp01(b), A: clamp01(a)}
}

// Color returns the premultiplied color of p.
func (p *SolidPattern) Color() color.RGBA64 {
	a := p.A
	return color.RGBA64{
		R: uint16(p.R*a*0xffff + 0.5),
		G: uint16(p.G*a*0xffff + 0.5),
		B: uint16(p.B*a*0xffff + 0.5),
		A: uint16(a*0xffff + 0.5),
	}
}

// SurfacePattern paints the contents of a surface. Matrix maps user space to
// pattern space, as in cairo.
type SurfacePattern struct {
	Surface *Surface
	Matrix  Matrix
}

func (*SurfacePattern) isPattern() {}

// NewSurfacePattern returns a source that paints s with an identity matrix.
func NewSurfacePattern(s *Surface) *SurfacePattern {
	return &SurfacePattern{Surface: s, Matrix: IdentityMatrix()}
}

// blackPattern is the default source of a new context.
var blackPattern = &SolidPattern{A: 1}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

// sourceImage renders p into an image that lines up with device pixels.
// userToDevice is the transform that was current when the source was set.
func sourceImage(p Pattern, userToDevice Matrix, bounds image.Rectangle) (image.Image, bool) {
	switch p := p.(type) {
	case *SolidPattern:
		return image.NewUniform(p.Color()), true
	case *SurfacePattern:
		if p.Surface == nil || p.Surface.img == nil {
			return nil, false
		}
		patternToUser, ok := p.Matrix.Invert()
		if !ok {
			return nil, false
		}
		s2d := Multiply(patternToUser, userToDevice)
		if dx, dy, ok := s2d.integerTranslation(); ok && dx == 0 && dy == 0 {
			return p.Surface.img, true
		}
		dst := image.NewRGBA(bounds)
		transformInto(dst, s2d, p.Surface.img)
		return dst, true
	default:
		return nil, false
	}
}
