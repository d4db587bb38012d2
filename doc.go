// Package quartz provides an immediate-mode 2D graphics context with
// CoreGraphics drawing semantics.
//
// # Overview
//
// A Context is a stateful drawing surface. Callers set drawing attributes,
// build a path, and then paint it: fill, stroke, clip or show text. The
// Context keeps a stack of graphics states (fill and stroke colors, alpha,
// shadow, font), a text matrix, and forwards everything else to a rendering
// Engine. The engine owns the current path, the transform, line style and
// the clip region.
//
// The default engine is package raster, a CPU renderer with cairo semantics.
// Fonts come from package font, which parses TrueType and OpenType data and
// bundles the Go font family.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/quartz"
//	    "github.com/gogpu/quartz/font"
//	)
//
//	ctx, err := quartz.NewImageContext(256, 256)
//	if err != nil {
//	    return err
//	}
//	ctx.SetFillColor(quartz.RGB(1, 0, 0))
//	ctx.AddRect(quartz.R(16, 16, 128, 64))
//	if err := ctx.FillPath(quartz.FillRuleWinding); err != nil {
//	    return err
//	}
//
//	ctx.SetFont(font.Default())
//	ctx.SetFontSize(24)
//	ctx.SetTextPosition(quartz.Pt(16, 160))
//	ctx.ShowText("Hello")
//
// # Graphics State
//
// Save pushes a copy of the graphics state and Restore pops it. Restoring
// the root state fails with ErrInvalidRestore. Each saved state is an
// independent value: changing the alpha after Save never affects the saved
// colors.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left of the target
//   - X increases right, Y increases down
//   - Angles in radians, positive angles turn from +X toward +Y
//   - AffineTransform maps (x, y) to (A*x + C*y + TX, B*x + D*y + TY)
//
// # Errors
//
// Operations that reach the engine report its failure as *EngineError.
// Engine errors are sticky: after the first failure, drawing is ignored.
//
// # Logging
//
// Logging is silent by default. SetLogger enables it for this package, the
// raster engine and package font.
package quartz
