package quartz

import (
	"reflect"
	"testing"

	"github.com/gogpu/quartz/raster"
)

func TestDecodePath(t *testing.T) {
	var p raster.Path
	p.MoveTo(1, 2)
	p.LineTo(3, 4)
	p.CurveTo(5, 6, 7, 8, 9, 10)
	p.ClosePath()

	want := []PathElement{
		MoveTo{Point: Pt(1, 2)},
		LineTo{Point: Pt(3, 4)},
		CurveTo{Control1: Pt(5, 6), Control2: Pt(7, 8), Point: Pt(9, 10)},
		ClosePath{},
	}
	got := DecodePath(&p)
	if !reflect.DeepEqual(got.Elements, want) {
		t.Errorf("DecodePath() = %v, want %v", got.Elements, want)
	}
	if got.Len() != 4 {
		t.Errorf("Len() = %d, want 4", got.Len())
	}
}

func TestDecodePathPanics(t *testing.T) {
	tests := []struct {
		name string
		data []raster.PathData
	}{
		{"unknown type", []raster.PathData{{Type: raster.PathDataType(42), Length: 1}}},
		{"zero length", []raster.PathData{{Type: raster.PathClosePath, Length: 0}}},
		{"truncated", []raster.PathData{{Type: raster.PathCurveTo, Length: 4}, {X: 1, Y: 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("DecodePath() did not panic")
				}
			}()
			DecodePath(&raster.Path{Data: tt.data})
		})
	}
}

func TestPathAppend(t *testing.T) {
	var p Path
	p.Append(MoveTo{Point: Pt(0, 0)}, LineTo{Point: Pt(1, 0)})
	p.Append(ClosePath{})
	if p.Len() != 3 {
		t.Errorf("Len() = %d, want 3", p.Len())
	}
}
