package quartz

import (
	"errors"
	"fmt"

	"github.com/gogpu/quartz/raster"
)

var (
	// ErrInvalidRestore is returned by Restore when only the root graphics
	// state is left.
	ErrInvalidRestore = errors.New("quartz: restore without matching save")

	// ErrNoTransparencyLayer is returned by EndTransparencyLayer without a
	// matching BeginTransparencyLayer.
	ErrNoTransparencyLayer = errors.New("quartz: no transparency layer to end")

	// ErrGlyphCountMismatch is returned when glyph and advance or position
	// slices differ in length.
	ErrGlyphCountMismatch = errors.New("quartz: glyph count does not match advances or positions")

	// ErrInvalidSize is returned when a context is created with a negative,
	// non-finite or unallocatable size.
	ErrInvalidSize = errors.New("quartz: invalid context size")
)

// EngineError reports a failure status of the rendering engine.
type EngineError struct {
	Status raster.Status
}

// Error implements the error interface.
func (e *EngineError) Error() string {
	return fmt.Sprintf("quartz: engine error: %s", e.Status)
}

// Unwrap returns the engine status, so errors.Is works against raster
// status values.
func (e *EngineError) Unwrap() error {
	return e.Status
}

// Is reports an engine restore failure as ErrInvalidRestore.
func (e *EngineError) Is(target error) bool {
	return target == ErrInvalidRestore && e.Status == raster.StatusInvalidRestore
}

// statusError converts an engine status to an error, or nil on success.
func statusError(s raster.Status) error {
	if s == raster.StatusSuccess {
		return nil
	}
	return &EngineError{Status: s}
}
