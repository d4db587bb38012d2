package quartz

import (
	"fmt"
	"image"
	"math"

	"github.com/gogpu/quartz/raster"
)

// Context is an immediate-mode drawing context.
//
// The Context owns a stack of graphics states and the text matrix. The
// current path, transform, line style and clip live in the Engine.
//
// A Context is not safe for concurrent use.
type Context struct {
	engine Engine
	size   Size

	// states is never empty; the last entry is the current state.
	states     []graphicsState
	textMatrix AffineTransform

	layerDepth int

	offscreen func(width, height int) (*raster.Surface, Engine, error)
}

// NewContext creates a context that draws through engine onto a target of
// the given size. It fails when the size is invalid or the engine already
// reports an error.
func NewContext(engine Engine, size Size, opts ...ContextOption) (*Context, error) {
	if size.Width < 0 || size.Height < 0 || math.IsNaN(size.Width+size.Height) || math.IsInf(size.Width+size.Height, 0) {
		return nil, ErrInvalidSize
	}
	if err := statusError(engine.Status()); err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &Context{
		engine:     engine,
		size:       size,
		states:     []graphicsState{defaultState()},
		textMatrix: o.textMatrix,
		offscreen:  newOffscreen,
	}
	engine.SetLineWidth(o.lineWidth)
	c.SetShouldAntialias(o.antialias)
	if o.tolerance > 0 {
		engine.SetTolerance(o.tolerance)
	}
	return c, statusError(engine.Status())
}

// NewImageContext creates a context drawing onto a new transparent
// width x height image with the raster engine. Sizes the raster engine
// cannot allocate fail with ErrInvalidSize.
func NewImageContext(width, height int, opts ...ContextOption) (*Context, error) {
	s, err := raster.NewSurface(raster.FormatARGB32, width, height)
	if err != nil {
		return nil, fmt.Errorf("%w %dx%d: %w", ErrInvalidSize, width, height, err)
	}
	return NewContext(raster.NewContext(s), Sz(float64(width), float64(height)), opts...)
}

// Engine returns the engine the context draws through.
func (c *Context) Engine() Engine {
	return c.engine
}

// Size returns the size of the drawing target.
func (c *Context) Size() Size {
	return c.size
}

// Image returns the pixels of the drawing target.
func (c *Context) Image() image.Image {
	if t := c.engine.Target(); t != nil {
		return t.Image()
	}
	return nil
}

// state returns the current graphics state.
func (c *Context) state() *graphicsState {
	return &c.states[len(c.states)-1]
}

// BeginPage starts a new page, keeping the contents of the previous one.
func (c *Context) BeginPage() error {
	c.engine.CopyPage()
	return statusError(c.engine.Status())
}

// EndPage emits the current page and clears the target.
func (c *Context) EndPage() error {
	c.engine.ShowPage()
	return statusError(c.engine.Status())
}

// Save pushes a copy of the current graphics state, and checkpoints the
// engine state with it.
func (c *Context) Save() error {
	c.engine.Save()
	if err := statusError(c.engine.Status()); err != nil {
		return err
	}
	c.states = append(c.states, *c.state())
	return nil
}

// Restore pops the graphics state pushed by the matching Save. With only
// the root state left it returns ErrInvalidRestore and changes nothing.
func (c *Context) Restore() error {
	if len(c.states) == 1 {
		Logger().Warn("quartz: restore without matching save")
		return ErrInvalidRestore
	}
	c.engine.Restore()
	if err := statusError(c.engine.Status()); err != nil {
		return err
	}
	c.states = c.states[:len(c.states)-1]
	return nil
}

// ScaleBy scales user space. Transform errors surface on the next
// operation that reports errors.
func (c *Context) ScaleBy(sx, sy float64) {
	c.engine.Scale(sx, sy)
}

// TranslateBy moves the user space origin.
func (c *Context) TranslateBy(tx, ty float64) {
	c.engine.Translate(tx, ty)
}

// RotateBy rotates user space by angle radians.
func (c *Context) RotateBy(angle float64) {
	c.engine.Rotate(angle)
}

// ConcatenateTransform applies t to user space before the current transform.
func (c *Context) ConcatenateTransform(t AffineTransform) {
	c.engine.Transform(t.engineMatrix())
}

// CurrentTransform returns the user to device transform.
func (c *Context) CurrentTransform() AffineTransform {
	return transformFromEngine(c.engine.Matrix())
}

// LineWidth returns the stroke width.
func (c *Context) LineWidth() float64 { return c.engine.LineWidth() }

// SetLineWidth sets the stroke width in user space units.
func (c *Context) SetLineWidth(w float64) { c.engine.SetLineWidth(w) }

// LineCap returns the cap style.
func (c *Context) LineCap() LineCap { return c.engine.LineCap() }

// SetLineCap sets the cap style.
func (c *Context) SetLineCap(lc LineCap) { c.engine.SetLineCap(lc) }

// LineJoin returns the join style.
func (c *Context) LineJoin() LineJoin { return c.engine.LineJoin() }

// SetLineJoin sets the join style.
func (c *Context) SetLineJoin(lj LineJoin) { c.engine.SetLineJoin(lj) }

// MiterLimit returns the miter limit.
func (c *Context) MiterLimit() float64 { return c.engine.MiterLimit() }

// SetMiterLimit sets the miter limit.
func (c *Context) SetMiterLimit(limit float64) { c.engine.SetMiterLimit(limit) }

// LineDash returns the dash phase and lengths.
func (c *Context) LineDash() (phase float64, lengths []float64) {
	lengths, phase = c.engine.Dash()
	return phase, lengths
}

// SetLineDash sets the dash pattern. Empty lengths draw solid lines.
// Negative lengths, or lengths that are all zero, put the engine into an
// error state and the error is returned.
func (c *Context) SetLineDash(phase float64, lengths []float64) error {
	c.engine.SetDash(lengths, phase)
	return statusError(c.engine.Status())
}

// Tolerance returns the curve flattening tolerance.
func (c *Context) Tolerance() float64 { return c.engine.Tolerance() }

// SetTolerance sets the curve flattening tolerance.
func (c *Context) SetTolerance(t float64) { c.engine.SetTolerance(t) }

// ShouldAntialias reports whether edges are antialiased.
func (c *Context) ShouldAntialias() bool {
	return c.engine.Antialias() != raster.AntialiasNone
}

// SetShouldAntialias turns edge antialiasing on or off.
func (c *Context) SetShouldAntialias(on bool) {
	if on {
		c.engine.SetAntialias(raster.AntialiasDefault)
	} else {
		c.engine.SetAntialias(raster.AntialiasNone)
	}
}

// FillColor returns the fill color, black when none has been set.
func (c *Context) FillColor() Color {
	if f := c.state().fill; f != nil {
		return f.color
	}
	return Black
}

// SetFillColor sets the fill color.
func (c *Context) SetFillColor(col Color) {
	c.state().fill = newPaint(col)
}

// StrokeColor returns the stroke color, black when none has been set.
func (c *Context) StrokeColor() Color {
	if s := c.state().stroke; s != nil {
		return s.color
	}
	return Black
}

// SetStrokeColor sets the stroke color.
func (c *Context) SetStrokeColor(col Color) {
	c.state().stroke = newPaint(col)
}

// Alpha returns the global alpha.
func (c *Context) Alpha() float64 {
	return c.state().alpha
}

// SetAlpha sets the global alpha and replaces the alpha of the current fill
// and stroke colors with it. Saved states are not affected.
func (c *Context) SetAlpha(a float64) {
	st := c.state()
	st.alpha = a
	if st.stroke != nil {
		st.stroke = newPaint(st.stroke.color.WithAlpha(a))
	}
	if st.fill != nil {
		st.fill = newPaint(st.fill.color.WithAlpha(a))
	}
}
