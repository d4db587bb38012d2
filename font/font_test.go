package font

import (
	"errors"
	"testing"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/language"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/quartz"
	"github.com/gogpu/quartz/raster"
)

func TestParseGoRegular(t *testing.T) {
	f, err := Parse(goregular.TTF)
	if err != nil {
		t.Fatalf("Parse() = %v", err)
	}
	if got := f.UnitsPerEm(); got != 2048 {
		t.Errorf("UnitsPerEm() = %v, want 2048", got)
	}
	if f.Name() == "" {
		t.Error("Name() is empty")
	}
	if a := f.Ascent(); a <= 0 || a > 2048 {
		t.Errorf("Ascent() = %v, want within the em", a)
	}
	if d := f.Descent(); d <= 0 {
		t.Errorf("Descent() = %v, want positive", d)
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse(nil); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("Parse(nil) = %v, want ErrEmptyFontData", err)
	}
	if _, err := Parse([]byte("not a font")); err == nil {
		t.Error("Parse(garbage) = nil, want error")
	}
}

func TestWithName(t *testing.T) {
	f, err := Parse(goregular.TTF, WithName("Body"))
	if err != nil {
		t.Fatal(err)
	}
	if f.Name() != "Body" {
		t.Errorf("Name() = %q, want %q", f.Name(), "Body")
	}
}

func TestGlyphIndex(t *testing.T) {
	f := Default()
	if f.GlyphIndex('A') == 0 {
		t.Error("GlyphIndex('A') = 0, want a real glyph")
	}
	if f.GlyphIndex('A') == f.GlyphIndex('B') {
		t.Error("'A' and 'B' map to the same glyph")
	}
	if got := f.GlyphIndex('\U0010FFFD'); got != 0 {
		t.Errorf("GlyphIndex(private use) = %d, want 0", got)
	}
}

func TestAdvancesScaleLinearly(t *testing.T) {
	f := Default()
	g := []uint16{f.GlyphIndex('A'), f.GlyphIndex('i')}

	a10 := f.Advances(g, 10, quartz.Identity, 0)
	a20 := f.Advances(g, 20, quartz.Identity, 0)
	for i := range g {
		if a10[i].Width <= 0 {
			t.Errorf("advance %d = %v, want positive", i, a10[i])
		}
		if d := a20[i].Width - 2*a10[i].Width; d > 1e-9 || d < -1e-9 {
			t.Errorf("advance %d at 20 = %v, want twice %v", i, a20[i].Width, a10[i].Width)
		}
		if a10[i].Height != 0 {
			t.Errorf("advance %d has height %v", i, a10[i].Height)
		}
	}

	spaced := f.Advances(g, 10, quartz.Identity, 3)
	if d := spaced[0].Width - a10[0].Width; d < 3-1e-9 || d > 3+1e-9 {
		t.Errorf("character spacing added %v, want 3", d)
	}

	// Spacing is added before the text matrix is applied.
	scaled := f.Advances(g, 10, quartz.ScaleTransform(2, 1), 3)
	if want := 2 * spaced[0].Width; scaled[0].Width != want {
		t.Errorf("scaled advance = %v, want %v", scaled[0].Width, want)
	}
}

func TestGlyphPath(t *testing.T) {
	f := Default()
	p := f.GlyphPath(f.GlyphIndex('H'))
	if p == nil || len(p.Data) == 0 {
		t.Fatal("GlyphPath('H') is empty")
	}

	var maxY float64
	closes := 0
	for i := 0; i < len(p.Data); i += p.Data[i].Length {
		h := p.Data[i]
		if h.Type == raster.PathClosePath {
			closes++
		}
		for k := 1; k < h.Length; k++ {
			maxY = max(maxY, p.Data[i+k].Y)
		}
	}
	// Outlines grow upward from the baseline.
	if maxY <= 0 {
		t.Errorf("highest point = %v, want above the baseline", maxY)
	}
	if closes == 0 {
		t.Error("outline has no closed contours")
	}

	if p := f.GlyphPath(f.GlyphIndex(' ')); p != nil {
		t.Errorf("GlyphPath(' ') = %d elements, want nil", len(p.Data))
	}
}

func TestShape(t *testing.T) {
	f := Default()
	glyphs, advances := f.Shape("AV", 20)
	if len(glyphs) != 2 || len(advances) != 2 {
		t.Fatalf("Shape() returned %d glyphs and %d advances, want 2", len(glyphs), len(advances))
	}
	if glyphs[0] != f.GlyphIndex('A') || glyphs[1] != f.GlyphIndex('V') {
		t.Errorf("glyphs = %v", glyphs)
	}
	if advances[0].Width <= 0 {
		t.Errorf("advance = %v, want positive", advances[0])
	}

	if g, a := f.Shape("", 20); g != nil || a != nil {
		t.Error("Shape(\"\") returned glyphs")
	}
}

func TestShapeSplitsScriptRuns(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		wantScripts []language.Script
		wantDirs    []di.Direction
	}{
		{"latin", "Hello", []language.Script{language.Latin}, []di.Direction{di.DirectionLTR}},
		{"hebrew", "\u05e9\u05dc\u05d5\u05dd", []language.Script{language.Hebrew}, []di.Direction{di.DirectionRTL}},
		{
			"latin then hebrew", "abc \u05d0\u05d1\u05d2",
			[]language.Script{language.Latin, language.Hebrew},
			[]di.Direction{di.DirectionLTR, di.DirectionRTL},
		},
		{
			"latin then greek", "abc\u03b1\u03b2",
			[]language.Script{language.Latin, language.Greek},
			[]di.Direction{di.DirectionLTR, di.DirectionLTR},
		},
	}
	f := Default()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runs := f.runs([]rune(tt.text), 12)
			if len(runs) != len(tt.wantScripts) {
				t.Fatalf("got %d runs, want %d", len(runs), len(tt.wantScripts))
			}
			for i, r := range runs {
				if r.Script != tt.wantScripts[i] || r.Direction != tt.wantDirs[i] {
					t.Errorf("run %d = %v %v, want %v %v", i, r.Script, r.Direction, tt.wantScripts[i], tt.wantDirs[i])
				}
			}

			// Every rune is shaped once.
			glyphs, advances := f.Shape(tt.text, 12)
			if n := len([]rune(tt.text)); len(glyphs) != n || len(advances) != n {
				t.Errorf("Shape() = %d glyphs, %d advances; want %d", len(glyphs), len(advances), n)
			}
		})
	}
}
