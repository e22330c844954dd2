// Package filter provides the scalar-field passes that turn a root-index
// grid into shading inputs.
//
// The passes, in pipeline order:
//   - Edges: basin boundary detection over the 8-neighbourhood
//   - DistanceTransform: exact Euclidean distance to the nearest edge
//   - Shape: compressive remapping of distances into proximity in [0, 1)
//   - Gradient: unit-length central-difference gradient of a field
//   - Blur: separable Gaussian smoothing with partial-kernel normalisation
//
// Every pass writes disjoint rows (or columns) per band and runs its bands
// in parallel through Bands. Passes never run concurrently with each other:
// the horizontal blur pass completes before the vertical pass starts.
package filter
