// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster is a CPU rendering engine with cairo drawing semantics.
//
// A Context draws onto a Surface. It keeps a stack of graphics states
// (transform, source, line style, clip, font), a current path stored in
// device space, and a sticky Status: once an operation fails, every further
// drawing call is ignored and Status reports the first failure.
//
// # Surfaces
//
// Two pixel formats are supported:
//
//   - FormatARGB32: premultiplied RGBA backed by *image.RGBA
//   - FormatA8: alpha only, backed by *image.Alpha
//
// # Paths
//
// CopyPath returns the current path in user space using the same layout as
// cairo_path_t: a flat slice where each segment is a header element
// (Type, Length) followed by its points. Move and line segments carry one
// point, curves carry three, close carries none.
//
// # Rasterization
//
// Curves are flattened with the context tolerance. Nonzero fills use
// golang.org/x/image/vector; even-odd fills and aliased fills use the
// scanline rasterizer in this package. Compositing goes through
// golang.org/x/image/draw with the Over operator.
//
// # Groups
//
// PushGroup redirects drawing to a transparent intermediate surface and
// PopGroup returns it as a *SurfacePattern, which is how transparency layers
// and shadows are built on top of this package.
package raster
