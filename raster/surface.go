// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
)

// Format is the pixel layout of a Surface.
type Format int

const (
	// FormatARGB32 stores premultiplied RGBA, 8 bits per channel.
	FormatARGB32 Format = iota
	// FormatA8 stores coverage only, 8 bits per pixel.
	FormatA8
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatARGB32:
		return "ARGB32"
	case FormatA8:
		return "A8"
	default:
		return "unknown"
	}
}

// PageFunc receives every page emitted by ShowPage or CopyPage. The image is
// only valid for the duration of the call.
type PageFunc func(page int, img image.Image)

// Surface is a pixel buffer that a Context draws onto.
//
// Surfaces are not safe for concurrent use.
type Surface struct {
	format   Format
	img      draw.Image
	width    int
	height   int
	finished bool

	pages  int
	onPage PageFunc
}

// MaxSurfaceSize is the largest width or height of a Surface.
const MaxSurfaceSize = 32767

// bytesPerPixel returns the storage size of one pixel, or 0 for an unknown
// format.
func (f Format) bytesPerPixel() int {
	switch f {
	case FormatARGB32:
		return 4
	case FormatA8:
		return 1
	}
	return 0
}

// NewSurface allocates a transparent surface of the given format and size.
// Sizes that are negative or exceed MaxSurfaceSize fail with
// StatusInvalidSize, and buffers too large to address fail with
// StatusNoMemory.
func NewSurface(format Format, width, height int) (*Surface, error) {
	if width < 0 || height < 0 || width > MaxSurfaceSize || height > MaxSurfaceSize {
		return nil, StatusInvalidSize
	}
	bpp := format.bytesPerPixel()
	if bpp == 0 {
		return nil, StatusInvalidFormat
	}
	if uint64(width)*uint64(height)*uint64(bpp) > math.MaxInt {
		return nil, StatusNoMemory
	}
	rect := image.Rect(0, 0, width, height)
	s := &Surface{format: format, width: width, height: height}
	switch format {
	case FormatARGB32:
		s.img = image.NewRGBA(rect)
	case FormatA8:
		s.img = image.NewAlpha(rect)
	default:
		return nil, StatusInvalidFormat
	}
	return s, nil
}

// NewSurfaceForImage wraps an existing RGBA image. The image origin must be
// (0, 0).
func NewSurfaceForImage(img *image.RGBA) *Surface {
	b := img.Bounds()
	return &Surface{
		format: FormatARGB32,
		img:    img,
		width:  b.Dx(),
		height: b.Dy(),
	}
}

// Format returns the pixel format.
func (s *Surface) Format() Format { return s.format }

// Width returns the surface width in pixels.
func (s *Surface) Width() int { return s.width }

// Height returns the surface height in pixels.
func (s *Surface) Height() int { return s.height }

// Image returns the backing image: *image.RGBA for FormatARGB32 and
// *image.Alpha for FormatA8. It returns nil after Destroy.
func (s *Surface) Image() draw.Image { return s.img }

// Status reports StatusSurfaceFinished once the surface has been destroyed.
func (s *Surface) Status() Status {
	if s.finished {
		return StatusSurfaceFinished
	}
	return StatusSuccess
}

// Flush completes pending drawing. Drawing is synchronous, so this only
// exists to mirror the engine protocol.
func (s *Surface) Flush() {}

// Destroy releases the pixel buffer. It is safe to call more than once.
func (s *Surface) Destroy() {
	if s.finished {
		return
	}
	s.finished = true
	s.img = nil
	Logger().Debug("raster: surface destroyed", "format", s.format, "width", s.width, "height", s.height)
}

// SetPageFunc installs the receiver for pages emitted by ShowPage and CopyPage.
func (s *Surface) SetPageFunc(fn PageFunc) { s.onPage = fn }

// Pages returns the number of pages emitted so far.
func (s *Surface) Pages() int { return s.pages }

// At returns the color at (x, y), or transparent outside the surface.
func (s *Surface) At(x, y int) color.Color {
	if s.img == nil {
		return color.Transparent
	}
	return s.img.At(x, y)
}

func (s *Surface) bounds() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

func (s *Surface) emitPage(clear bool) {
	if s.finished {
		return
	}
	s.pages++
	if s.onPage != nil {
		s.onPage(s.pages, s.img)
	}
	if clear {
		draw.Draw(s.img, s.bounds(), image.Transparent, image.Point{}, draw.Src)
	}
}
