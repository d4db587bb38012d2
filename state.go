package quartz

import "github.com/gogpu/quartz/raster"

// paint is a color and the solid source derived from it. Values are never
// modified after creation, so states may share them.
type paint struct {
	color   Color
	pattern raster.Pattern
}

func newPaint(c Color) *paint {
	return &paint{color: c, pattern: c.Pattern()}
}

// shadow describes the drop shadow applied to painting operations.
type shadow struct {
	offset  Size
	radius  float64
	color   Color
	pattern raster.Pattern
}

// graphicsState is one entry of the Context state stack. Save copies it by
// value.
type graphicsState struct {
	alpha            float64
	fill             *paint
	stroke           *paint
	shadow           *shadow
	font             Font
	fontSize         float64
	characterSpacing float64
	textMode         TextDrawingMode
}

func defaultState() graphicsState {
	return graphicsState{
		alpha:    1,
		textMode: TextDrawingModeFill,
	}
}

// defaultPattern is the source used when no color has been set.
var defaultPattern raster.Pattern = Black.Pattern()

func (s *graphicsState) fillPattern() raster.Pattern {
	if s.fill == nil {
		return defaultPattern
	}
	return s.fill.pattern
}

func (s *graphicsState) strokePattern() raster.Pattern {
	if s.stroke == nil {
		return defaultPattern
	}
	return s.stroke.pattern
}
