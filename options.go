package newton

// Option configures a Renderer during creation.
//
// Example:
//
//	r, err := newton.NewRenderer(cfg, newton.WithProgress(func(done, total int) {
//	    fmt.Printf("\r%d/%d rows", done, total)
//	}))
type Option func(*rendererOptions)

// ProgressFunc receives the number of finished rows and the row total.
// It is called from worker goroutines.
type ProgressFunc func(done, total int)

// rendererOptions holds optional configuration for Renderer creation.
type rendererOptions struct {
	progress ProgressFunc
	shading  *ShadingParams
}

// defaultOptions returns the default renderer options.
func defaultOptions() rendererOptions {
	return rendererOptions{}
}

// WithProgress installs a callback invoked after each block of rows is
// committed. The callback must be safe for concurrent use.
func WithProgress(fn ProgressFunc) Option {
	return func(o *rendererOptions) {
		o.progress = fn
	}
}

// ShadingParams tune the relief shading beyond what Config exposes.
type ShadingParams struct {
	// Relief is the z component of the surface normal before
	// normalisation. Smaller values exaggerate the relief.
	Relief float64

	// Ambient and Diffuse weight the unlit and lit parts of the shade.
	Ambient, Diffuse float64

	// Gamma and Gain shape the distance-to-edge falloff.
	Gamma, Gain float64
}

// WithShading overrides the relief shading parameters.
func WithShading(p ShadingParams) Option {
	return func(o *rendererOptions) {
		o.shading = &p
	}
}
