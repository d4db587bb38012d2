// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import "image"

const (
	defaultTolerance  = 0.1
	defaultLineWidth  = 2.0
	defaultMiterLimit = 10.0
	defaultFontSize   = 10.0
)

// Option configures a Context during creation.
type Option func(*options)

type options struct {
	tolerance float64
	antialias Antialias
}

// WithTolerance sets the initial curve flattening tolerance in device pixels.
func WithTolerance(t float64) Option {
	return func(o *options) {
		if t > 0 {
			o.tolerance = t
		}
	}
}

// WithAntialias sets the initial antialiasing mode.
func WithAntialias(a Antialias) Option {
	return func(o *options) {
		o.antialias = a
	}
}

// gstate is one entry of the graphics state stack.
type gstate struct {
	matrix Matrix

	source Pattern
	// sourceMatrix is the CTM at the time the source was set; the source
	// stays locked to that user space.
	sourceMatrix Matrix

	fillRule   FillRule
	lineWidth  float64
	lineCap    LineCap
	lineJoin   LineJoin
	miterLimit float64
	dash       *Dash
	tolerance  float64
	antialias  Antialias

	// clip is a device space coverage mask; nil means unclipped. Masks are
	// replaced, never modified, so saved states may share them.
	clip *image.Alpha

	fontFace   FontFace
	fontMatrix Matrix
}

func (g *gstate) clone() *gstate {
	c := *g
	c.dash = g.dash.Clone()
	return &c
}

// Context draws onto a Surface with cairo semantics.
//
// A Context is not safe for concurrent use.
type Context struct {
	target *Surface
	gs     *gstate
	saved  []*gstate
	path   devicePath
	status Status

	groups []group
}

// group is an intermediate surface opened by PushGroup.
type group struct {
	surface *Surface
	// depth is len(saved) right after the group's implicit Save.
	depth int
}

// NewContext returns a context drawing onto target.
func NewContext(target *Surface, opts ...Option) *Context {
	o := options{tolerance: defaultTolerance, antialias: AntialiasDefault}
	for _, opt := range opts {
		opt(&o)
	}

	c := &Context{
		target: target,
		gs: &gstate{
			matrix:       IdentityMatrix(),
			source:       blackPattern,
			sourceMatrix: IdentityMatrix(),
			fillRule:     FillRuleWinding,
			lineWidth:    defaultLineWidth,
			lineCap:      LineCapButt,
			lineJoin:     LineJoinMiter,
			miterLimit:   defaultMiterLimit,
			tolerance:    o.tolerance,
			antialias:    o.antialias,
			fontMatrix:   ScalingMatrix(defaultFontSize, defaultFontSize),
		},
	}
	switch {
	case target == nil:
		c.setError(StatusNullPointer)
	case target.finished:
		c.setError(StatusSurfaceFinished)
	}
	return c
}

// Status returns the first error that occurred on the context, or
// StatusSuccess.
func (c *Context) Status() Status {
	return c.status
}

func (c *Context) setError(s Status) {
	if c.status != StatusSuccess || s == StatusSuccess {
		return
	}
	c.status = s
	Logger().Warn("raster: context entered error status", "status", s.String())
}

func (c *Context) ok() bool {
	return c.status == StatusSuccess
}

// Target returns the surface passed to NewContext.
func (c *Context) Target() *Surface {
	return c.target
}

// GroupTarget returns the surface drawing currently goes to: the innermost
// open group, or the target.
func (c *Context) GroupTarget() *Surface {
	if n := len(c.groups); n > 0 {
		return c.groups[n-1].surface
	}
	return c.target
}

// Save pushes a copy of the graphics state.
func (c *Context) Save() {
	if !c.ok() {
		return
	}
	c.saved = append(c.saved, c.gs.clone())
}

// Restore pops the graphics state pushed by the matching Save. Restoring
// past the start of an open group or an empty stack sets
// StatusInvalidRestore.
func (c *Context) Restore() {
	if !c.ok() {
		return
	}
	floor := 0
	if n := len(c.groups); n > 0 {
		floor = c.groups[n-1].depth
	}
	if len(c.saved) <= floor {
		c.setError(StatusInvalidRestore)
		return
	}
	n := len(c.saved) - 1
	c.gs = c.saved[n]
	c.saved = c.saved[:n]
}

// Matrix returns the current transformation matrix (user to device).
func (c *Context) Matrix() Matrix {
	return c.gs.matrix
}

// SetMatrix replaces the current transformation matrix.
func (c *Context) SetMatrix(m Matrix) {
	if !c.ok() {
		return
	}
	if _, ok := m.Invert(); !ok {
		c.setError(StatusInvalidMatrix)
		return
	}
	c.gs.matrix = m
}

// Transform applies m to user space before the current transform.
func (c *Context) Transform(m Matrix) {
	c.SetMatrix(Multiply(m, c.gs.matrix))
}

// Translate moves the user space origin by (tx, ty).
func (c *Context) Translate(tx, ty float64) {
	c.Transform(TranslationMatrix(tx, ty))
}

// Scale scales user space by (sx, sy).
func (c *Context) Scale(sx, sy float64) {
	c.Transform(ScalingMatrix(sx, sy))
}

// Rotate rotates user space by angle radians.
func (c *Context) Rotate(angle float64) {
	c.Transform(RotationMatrix(angle))
}

// UserToDevice converts a point from user space to device space.
func (c *Context) UserToDevice(x, y float64) (float64, float64) {
	return c.gs.matrix.TransformPoint(x, y)
}

// DeviceToUser converts a point from device space to user space.
func (c *Context) DeviceToUser(x, y float64) (float64, float64) {
	inv, ok := c.gs.matrix.Invert()
	if !ok {
		return x, y
	}
	return inv.TransformPoint(x, y)
}

// SetSource sets the paint source. The source is locked to the current
// user space: later transform changes do not move it.
func (c *Context) SetSource(p Pattern) {
	if !c.ok() {
		return
	}
	if p == nil {
		c.setError(StatusNullPointer)
		return
	}
	c.gs.source = p
	c.gs.sourceMatrix = c.gs.matrix
}

// SetSourceRGBA sets a solid color source.
func (c *Context) SetSourceRGBA(r, g, b, a float64) {
	c.SetSource(NewSolidPattern(r, g, b, a))
}

// Source returns the current paint source.
func (c *Context) Source() Pattern {
	return c.gs.source
}

// SetFillRule sets the rule used by Fill and Clip.
func (c *Context) SetFillRule(r FillRule) {
	if c.ok() {
		c.gs.fillRule = r
	}
}

// FillRule returns the current fill rule.
func (c *Context) FillRule() FillRule { return c.gs.fillRule }

// SetLineWidth sets the stroke width in user space units.
func (c *Context) SetLineWidth(w float64) {
	if c.ok() {
		c.gs.lineWidth = max(w, 0)
	}
}

// LineWidth returns the stroke width.
func (c *Context) LineWidth() float64 { return c.gs.lineWidth }

// SetLineCap sets the cap style.
func (c *Context) SetLineCap(lc LineCap) {
	if c.ok() {
		c.gs.lineCap = lc
	}
}

// LineCap returns the cap style.
func (c *Context) LineCap() LineCap { return c.gs.lineCap }

// SetLineJoin sets the join style.
func (c *Context) SetLineJoin(lj LineJoin) {
	if c.ok() {
		c.gs.lineJoin = lj
	}
}

// LineJoin returns the join style.
func (c *Context) LineJoin() LineJoin { return c.gs.lineJoin }

// SetMiterLimit sets the miter limit ratio.
func (c *Context) SetMiterLimit(limit float64) {
	if c.ok() {
		c.gs.miterLimit = limit
	}
}

// MiterLimit returns the miter limit ratio.
func (c *Context) MiterLimit() float64 { return c.gs.miterLimit }

// SetDash sets the dash pattern. An empty dashes disables dashing. Negative
// lengths, or lengths that are all zero, set StatusInvalidDash.
func (c *Context) SetDash(dashes []float64, offset float64) {
	if !c.ok() {
		return
	}
	d, err := NewDash(offset, dashes...)
	if err != nil {
		c.setError(StatusInvalidDash)
		return
	}
	c.gs.dash = d
}

// Dash returns a copy of the dash lengths and the offset.
func (c *Context) Dash() ([]float64, float64) {
	if c.gs.dash == nil {
		return nil, 0
	}
	return append([]float64(nil), c.gs.dash.Array...), c.gs.dash.Offset
}

// SetTolerance sets the curve flattening tolerance in device pixels.
func (c *Context) SetTolerance(t float64) {
	if c.ok() && t > 0 {
		c.gs.tolerance = t
	}
}

// Tolerance returns the curve flattening tolerance.
func (c *Context) Tolerance() float64 { return c.gs.tolerance }

// SetAntialias sets the antialiasing mode.
func (c *Context) SetAntialias(a Antialias) {
	if c.ok() {
		c.gs.antialias = a
	}
}

// Antialias returns the antialiasing mode.
func (c *Context) Antialias() Antialias { return c.gs.antialias }

// CopyPage emits the current page and keeps its contents.
func (c *Context) CopyPage() {
	if c.ok() {
		c.target.emitPage(false)
	}
}

// ShowPage emits the current page and clears the target.
func (c *Context) ShowPage() {
	if c.ok() {
		c.target.emitPage(true)
	}
}
