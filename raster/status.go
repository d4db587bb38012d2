// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

// Status reports the outcome of engine operations. The zero value is
// StatusSuccess. A non-success Status is also an error.
type Status int

const (
	// StatusSuccess means no error has occurred.
	StatusSuccess Status = iota
	// StatusNoMemory means an allocation could not be satisfied.
	StatusNoMemory
	// StatusInvalidRestore means Restore was called without a matching Save.
	StatusInvalidRestore
	// StatusInvalidPopGroup means PopGroup was called without a matching PushGroup.
	StatusInvalidPopGroup
	// StatusNoCurrentPoint means a relative operation needed a current point.
	StatusNoCurrentPoint
	// StatusInvalidMatrix means a transform was not invertible.
	StatusInvalidMatrix
	// StatusNullPointer means a required argument was nil.
	StatusNullPointer
	// StatusInvalidDash means a dash array had a negative or all-zero length.
	StatusInvalidDash
	// StatusInvalidSize means a surface was requested with a negative size or
	// one beyond MaxSurfaceSize.
	StatusInvalidSize
	// StatusInvalidFormat means an unsupported pixel format was requested.
	StatusInvalidFormat
	// StatusSurfaceFinished means the target surface was destroyed.
	StatusSurfaceFinished
	// StatusInvalidPathData means a path contained a malformed segment.
	StatusInvalidPathData
)

var statusNames = [...]string{
	StatusSuccess:         "no error has occurred",
	StatusNoMemory:        "out of memory",
	StatusInvalidRestore:  "restore without matching save",
	StatusInvalidPopGroup: "pop group without matching push group",
	StatusNoCurrentPoint:  "no current point",
	StatusInvalidMatrix:   "invalid matrix (not invertible)",
	StatusNullPointer:     "nil argument",
	StatusInvalidDash:     "invalid dash value",
	StatusInvalidSize:     "invalid surface size",
	StatusInvalidFormat:   "invalid pixel format",
	StatusSurfaceFinished: "target surface has been finished",
	StatusInvalidPathData: "invalid path data",
}

// String returns a human-readable description of the status.
func (s Status) String() string {
	if s >= 0 && int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "unknown status"
}

// Error implements the error interface.
func (s Status) Error() string {
	return "raster: " + s.String()
}
