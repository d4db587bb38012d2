package quartz

import (
	"fmt"
	"math"

	"github.com/gogpu/quartz/raster"
)

// SetShadow makes painting operations cast a shadow of color, displaced by
// offset in device space. radius enlarges the shadow buffer; the shadow is
// not blurred.
func (c *Context) SetShadow(offset Size, radius float64, col Color) {
	c.state().shadow = &shadow{
		offset:  offset,
		radius:  radius,
		color:   col,
		pattern: col.Pattern(),
	}
}

// ClearShadow turns shadows off.
func (c *Context) ClearShadow() {
	c.state().shadow = nil
}

// Shadow returns the shadow settings. ok is false when no shadow is set.
func (c *Context) Shadow() (offset Size, radius float64, col Color, ok bool) {
	s := c.state().shadow
	if s == nil {
		return Size{}, 0, Color{}, false
	}
	return s.offset, s.radius, s.color, true
}

// startShadow redirects drawing into a group so the painted shape can be
// used as the shadow mask.
func (c *Context) startShadow() {
	c.engine.PushGroup()
}

// endShadow composites the captured group: first the shadow color masked by
// the group's alpha at the shadow offset, then the group itself.
func (c *Context) endShadow() error {
	group := c.engine.PopGroup()
	if group == nil {
		return statusError(c.engine.Status())
	}
	sh := c.state().shadow

	fw := math.Ceil(c.size.Width + 2*sh.radius)
	fh := math.Ceil(c.size.Height + 2*sh.radius)
	if !(fw >= 0 && fw <= raster.MaxSurfaceSize && fh >= 0 && fh <= raster.MaxSurfaceSize) {
		return fmt.Errorf("quartz: shadow buffer %gx%g: %w", fw, fh, &EngineError{Status: raster.StatusInvalidSize})
	}
	w, h := int(fw), int(fh)
	surface, alpha, err := c.offscreen(w, h)
	if err != nil {
		return fmt.Errorf("quartz: shadow buffer %dx%d: %w", w, h, err)
	}
	defer surface.Destroy()
	Logger().Debug("quartz: shadow", "width", w, "height", h, "offset", sh.offset)

	// The group is composited in device space.
	device := raster.NewSurfacePattern(group.Surface)

	alpha.SetSource(device)
	alpha.Paint()
	surface.Flush()
	if err := statusError(alpha.Status()); err != nil {
		return err
	}

	c.engine.Save()
	c.engine.SetMatrix(raster.IdentityMatrix())
	c.engine.SetSource(sh.pattern)
	c.engine.MaskSurface(surface, sh.offset.Width, sh.offset.Height)
	c.engine.SetSource(device)
	c.engine.Paint()
	c.engine.Restore()
	return statusError(c.engine.Status())
}
