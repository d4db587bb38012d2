package quartz

// DrawingMode selects how DrawPath paints the current path.
type DrawingMode int

const (
	// DrawingModeFill fills with the nonzero winding rule.
	DrawingModeFill DrawingMode = iota
	// DrawingModeEOFill fills with the even-odd rule.
	DrawingModeEOFill
	// DrawingModeStroke strokes.
	DrawingModeStroke
	// DrawingModeFillStroke fills with the nonzero winding rule, then strokes.
	DrawingModeFillStroke
	// DrawingModeEOFillStroke fills with the even-odd rule, then strokes.
	DrawingModeEOFillStroke
)

func (m DrawingMode) String() string {
	switch m {
	case DrawingModeFill:
		return "Fill"
	case DrawingModeEOFill:
		return "EOFill"
	case DrawingModeStroke:
		return "Stroke"
	case DrawingModeFillStroke:
		return "FillStroke"
	case DrawingModeEOFillStroke:
		return "EOFillStroke"
	default:
		return "Unknown"
	}
}

// StrokePath strokes the current path with the stroke color and discards
// the path.
func (c *Context) StrokePath() error {
	return c.paintPath(false, FillRuleWinding, true)
}

// FillPath fills the current path with the fill color using rule and
// discards the path.
func (c *Context) FillPath(rule FillRule) error {
	return c.paintPath(true, rule, false)
}

// DrawPath paints the current path as selected by mode and discards the
// path. The fill modes leave the engine fill rule set to the rule they used.
func (c *Context) DrawPath(mode DrawingMode) error {
	switch mode {
	case DrawingModeFill:
		return c.paintPath(true, FillRuleWinding, false)
	case DrawingModeEOFill:
		return c.paintPath(true, FillRuleEvenOdd, false)
	case DrawingModeStroke:
		return c.paintPath(false, FillRuleWinding, true)
	case DrawingModeFillStroke:
		return c.paintPath(true, FillRuleWinding, true)
	case DrawingModeEOFillStroke:
		return c.paintPath(true, FillRuleEvenOdd, true)
	default:
		return c.paintPath(true, FillRuleWinding, false)
	}
}

// paintPath is the single painting pipeline. A shadow, when set, is
// captured around both the fill and the stroke.
func (c *Context) paintPath(fill bool, rule FillRule, stroke bool) error {
	st := c.state()
	shadowed := st.shadow != nil
	if shadowed {
		c.startShadow()
	}

	if fill {
		c.engine.SetSource(st.fillPattern())
		c.engine.SetFillRule(rule)
		c.engine.FillPreserve()
	}
	if stroke {
		c.engine.SetSource(st.strokePattern())
		c.engine.StrokePreserve()
	}
	c.engine.NewPath()

	if shadowed {
		if err := c.endShadow(); err != nil {
			return err
		}
	}
	return statusError(c.engine.Status())
}

// Clip intersects the clip with the current path using rule and discards
// the path. The engine fill rule is nonzero winding afterwards.
func (c *Context) Clip(rule FillRule) error {
	c.engine.SetFillRule(rule)
	c.engine.Clip()
	c.engine.SetFillRule(FillRuleWinding)
	return statusError(c.engine.Status())
}

// ClipToRect replaces the current path with r and clips to it.
func (c *Context) ClipToRect(r Rect) error {
	c.BeginPath()
	c.AddRect(r)
	return c.Clip(FillRuleWinding)
}

// ResetClip removes the clip.
func (c *Context) ResetClip() {
	c.engine.ResetClip()
}

// Clear makes the fill color the engine source and clips to the current
// path with the nonzero winding rule, consuming the path. Nothing is
// painted.
func (c *Context) Clear() error {
	c.engine.SetSource(c.state().fillPattern())
	return c.Clip(FillRuleWinding)
}

// FillRect replaces the current path with r and fills it.
func (c *Context) FillRect(r Rect) error {
	c.BeginPath()
	c.AddRect(r)
	return c.FillPath(FillRuleWinding)
}

// StrokeRect replaces the current path with r and strokes it.
func (c *Context) StrokeRect(r Rect) error {
	c.BeginPath()
	c.AddRect(r)
	return c.StrokePath()
}

// FillEllipse replaces the current path with the ellipse inscribed in r and
// fills it.
func (c *Context) FillEllipse(r Rect) error {
	c.BeginPath()
	c.AddEllipse(r)
	return c.FillPath(FillRuleWinding)
}

// StrokeEllipse replaces the current path with the ellipse inscribed in r
// and strokes it.
func (c *Context) StrokeEllipse(r Rect) error {
	c.BeginPath()
	c.AddEllipse(r)
	return c.StrokePath()
}

// StrokeLineSegments strokes a line between each pair of points. A trailing
// unpaired point is ignored.
func (c *Context) StrokeLineSegments(points ...Point) error {
	c.BeginPath()
	for i := 0; i+1 < len(points); i += 2 {
		c.MoveTo(points[i])
		c.AddLineTo(points[i+1])
	}
	return c.StrokePath()
}
