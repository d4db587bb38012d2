package font

import (
	"github.com/go-text/typesetting/di"
	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/quartz"
)

// Shape converts text into glyphs with HarfBuzz shaping, applying kerning
// and ligatures. The text is split into runs of one script and direction,
// each shaped on its own. Runs follow each other in logical order, and the
// glyphs of a right-to-left run are in visual order. Advances are scaled to
// fontSize and are horizontal.
func (f *Font) Shape(text string, fontSize float64) ([]uint16, []quartz.Size) {
	if text == "" || fontSize <= 0 {
		return nil, nil
	}
	var (
		glyphs   []uint16
		advances []quartz.Size
	)
	for _, run := range f.runs([]rune(text), fontSize) {
		out := f.shaper.Shape(run)
		for _, g := range out.Glyphs {
			glyphs = append(glyphs, uint16(g.GlyphID))
			advances = append(advances, quartz.Sz(fixedToFloat(g.Advance), 0))
		}
	}
	return glyphs, advances
}

// runs segments text by bidi level and script. The returned inputs are only
// valid until the next call.
func (f *Font) runs(text []rune, fontSize float64) []shaping.Input {
	input := shaping.Input{
		Text:      text,
		RunStart:  0,
		RunEnd:    len(text),
		Direction: di.DirectionLTR,
		Face:      f.face,
		Size:      fixed.Int26_6(fontSize * 64),
		Script:    language.Latin,
		Language:  language.NewLanguage(f.language),
	}
	return f.segmenter.Split(input, singleFace{f.face})
}

// singleFace resolves every rune to the same face.
type singleFace struct {
	face *gotext.Face
}

func (s singleFace) ResolveFace(rune) *gotext.Face { return s.face }
