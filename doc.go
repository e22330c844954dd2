// Package newton renders Newton fractals.
//
// # Overview
//
// Every pixel of the output grid is mapped to a starting point in the
// complex plane. Damped Newton-Raphson iteration for the polynomial whose
// roots are Config.Roots then runs until the orbit comes within the
// convergence radius of a root or the iteration cap is reached, and the
// pixel is coloured by the root it reached.
//
// # Quick Start
//
//	cfg := newton.DefaultConfig()
//	cfg.Roots = newton.Ring(5, 1, 0)
//
//	r, err := newton.NewRenderer(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
//
//	img, err := r.Render()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = img.Save("newton.png")
//
// # Architecture
//
// The engine is organized into:
//   - poly: dense complex polynomials with scalar and 8-lane evaluation
//   - internal/wide: 8-lane complex arithmetic
//   - internal/solver: the Newton iteration and pixel viewport
//   - internal/parallel: worker pool and row scheduler filling the root-index grid
//   - internal/filter, internal/post: edge, distance, gradient and blur passes, compositing
//
// # Coordinate System
//
//   - Pixel (0,0) at top-left, x right, y down
//   - The imaginary part grows with y, like the row index
//   - Config.Scale is the half-width of the view along the larger grid dimension
//
// # Concurrency
//
// Rows are computed on a fixed-size worker pool and committed to a shared
// grid under a single lock. Post-processing starts only after every row has
// been committed. Results do not depend on the number of workers.
package newton

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
