// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import "math"

// Dash is a dash pattern for stroking: alternating "on" and "off" lengths
// in user space. An odd-length Array is logically repeated, so [5] means
// [5, 5].
type Dash struct {
	// Array holds the alternating on and off lengths.
	Array []float64

	// Offset is the distance into the pattern at which every subpath
	// starts.
	Offset float64
}

// NewDash creates a dash pattern. An empty lengths list means a solid line
// and yields a nil Dash. Negative or NaN lengths, or lengths that are all
// zero, are rejected with StatusInvalidDash.
func NewDash(offset float64, lengths ...float64) (*Dash, error) {
	if len(lengths) == 0 {
		return nil, nil
	}
	var total float64
	for _, l := range lengths {
		if l < 0 || math.IsNaN(l) {
			return nil, StatusInvalidDash
		}
		total += l
	}
	if total <= 0 || math.IsInf(total, 0) {
		return nil, StatusInvalidDash
	}
	return &Dash{
		Array:  append([]float64(nil), lengths...),
		Offset: offset,
	}, nil
}

// PatternLength returns the length of one full cycle, counting the repeat
// of an odd-length array.
func (d *Dash) PatternLength() float64 {
	if d == nil {
		return 0
	}
	var total float64
	for _, l := range d.Array {
		total += l
	}
	if len(d.Array)%2 != 0 {
		total *= 2
	}
	return total
}

// IsDashed reports whether d breaks lines at all.
func (d *Dash) IsDashed() bool {
	return d.PatternLength() > 0
}

// Clone returns a deep copy of d.
func (d *Dash) Clone() *Dash {
	if d == nil {
		return nil
	}
	return &Dash{
		Array:  append([]float64(nil), d.Array...),
		Offset: d.Offset,
	}
}

// NormalizedOffset returns Offset reduced to [0, PatternLength).
func (d *Dash) NormalizedOffset() float64 {
	n := d.PatternLength()
	if n <= 0 || math.IsInf(d.Offset, 0) || math.IsNaN(d.Offset) {
		return 0
	}
	off := math.Mod(d.Offset, n)
	if off < 0 {
		off += n
	}
	return off
}

// effectiveArray returns the array with an odd length doubled.
func (d *Dash) effectiveArray() []float64 {
	if len(d.Array)%2 == 0 {
		return d.Array
	}
	out := make([]float64, 2*len(d.Array))
	copy(out, d.Array)
	copy(out[len(d.Array):], d.Array)
	return out
}

// start returns the pattern entry and the length left in it at the
// normalized offset.
func (d *Dash) start(arr []float64) (idx int, remain float64) {
	off := d.NormalizedOffset()
	remain = arr[0]
	for off > 0 {
		if off < remain {
			return idx, remain - off
		}
		off -= remain
		idx = (idx + 1) % len(arr)
		remain = arr[idx]
	}
	return idx, remain
}

// apply splits polylines into the "on" pieces of the pattern. The pattern
// restarts for every subpath and the pieces are open. A nil or solid
// pattern returns polys unchanged.
func (d *Dash) apply(polys []polyline) []polyline {
	if !d.IsDashed() {
		return polys
	}
	arr := d.effectiveArray()
	startIdx, startRemain := d.start(arr)

	var out []polyline
	for _, pl := range polys {
		pts := pl.pts
		if pl.closed && len(pts) > 0 {
			pts = append(append([]point(nil), pts...), pts[0])
		}
		idx, remain := startIdx, startRemain
		on := idx%2 == 0
		var cur []point
		if on && len(pts) > 0 {
			cur = append(cur, pts[0])
		}
		for i := 1; i < len(pts); i++ {
			a, b := pts[i-1], pts[i]
			segLen := math.Hypot(b.X-a.X, b.Y-a.Y)
			pos := 0.0
			for segLen-pos > remain {
				pos += remain
				p := a.lerp(b, pos/segLen)
				if on {
					out = append(out, polyline{pts: append(cur, p)})
					cur = nil
				} else {
					cur = []point{p}
				}
				idx = (idx + 1) % len(arr)
				remain = arr[idx]
				on = idx%2 == 0
			}
			remain -= segLen - pos
			if on {
				cur = append(cur, b)
			}
		}
		if on && len(cur) > 0 {
			out = append(out, polyline{pts: cur})
		}
	}
	return out
}
