package quartz

// BeginTransparencyLayer starts a transparency layer. Drawing until the
// matching EndTransparencyLayer goes to an offscreen group that is then
// composited as a whole with the global alpha. Inside the layer the alpha
// is 1 and no shadow is set. When rect is not nil the layer is clipped to it.
//
// Layers nest.
//
// Example:
//
//	ctx.SetAlpha(0.5)
//	ctx.BeginTransparencyLayer(nil)
//	ctx.FillRect(quartz.R(10, 10, 40, 40))
//	ctx.FillRect(quartz.R(30, 30, 40, 40)) // overlap is not darker
//	ctx.EndTransparencyLayer()
func (c *Context) BeginTransparencyLayer(rect *Rect) error {
	c.engine.Save()
	if err := statusError(c.engine.Status()); err != nil {
		return err
	}
	if rect != nil {
		c.engine.NewPath()
		c.AddRect(*rect)
		c.engine.Clip()
	}

	if err := c.Save(); err != nil {
		c.engine.Restore()
		return err
	}
	c.SetAlpha(1)
	c.state().shadow = nil

	c.engine.PushGroup()
	c.layerDepth++
	Logger().Debug("quartz: begin transparency layer", "depth", c.layerDepth)
	return statusError(c.engine.Status())
}

// EndTransparencyLayer ends the innermost transparency layer and paints its
// contents with the alpha that was current when the layer began. It returns
// ErrNoTransparencyLayer when no layer is open.
func (c *Context) EndTransparencyLayer() error {
	if c.layerDepth == 0 {
		return ErrNoTransparencyLayer
	}
	group := c.engine.PopGroup()
	if group == nil {
		return statusError(c.engine.Status())
	}
	c.layerDepth--

	if err := c.Restore(); err != nil {
		return err
	}
	c.engine.SetSource(group)
	c.engine.PaintWithAlpha(c.state().alpha)
	c.engine.Restore()
	Logger().Debug("quartz: end transparency layer", "depth", c.layerDepth)
	return statusError(c.engine.Status())
}
