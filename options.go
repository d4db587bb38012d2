package quartz

// ContextOption configures a Context during creation.
// Use functional options to customize Context behavior.
//
// Example:
//
//	// Default settings: line width 1, antialiasing on
//	ctx, err := quartz.NewImageContext(800, 600)
//
//	// Hairlines without antialiasing
//	ctx, err := quartz.NewImageContext(800, 600,
//	    quartz.WithLineWidth(0.5),
//	    quartz.WithAntialias(false),
//	)
type ContextOption func(*contextOptions)

// contextOptions holds optional configuration for Context creation.
type contextOptions struct {
	lineWidth  float64
	antialias  bool
	tolerance  float64
	textMatrix AffineTransform
}

// defaultOptions returns the default context options.
func defaultOptions() contextOptions {
	return contextOptions{
		lineWidth:  1.0,
		antialias:  true,
		tolerance:  0, // keep the engine default
		textMatrix: Identity,
	}
}

// WithLineWidth sets the initial line width. The engine default of 2 is
// replaced by 1 unless this option says otherwise.
func WithLineWidth(w float64) ContextOption {
	return func(o *contextOptions) {
		o.lineWidth = w
	}
}

// WithAntialias sets whether edges are antialiased.
func WithAntialias(on bool) ContextOption {
	return func(o *contextOptions) {
		o.antialias = on
	}
}

// WithTolerance sets the curve flattening tolerance in device pixels.
func WithTolerance(t float64) ContextOption {
	return func(o *contextOptions) {
		o.tolerance = t
	}
}

// WithTextMatrix sets the initial text matrix.
func WithTextMatrix(t AffineTransform) ContextOption {
	return func(o *contextOptions) {
		o.textMatrix = t
	}
}
