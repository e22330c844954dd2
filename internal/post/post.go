// Package post turns a completed root-index grid into RGB pixels.
//
// Process runs the shading pipeline: edge detection, distance transform,
// proximity shaping, gradient, Gaussian smoothing of the gradient
// components, and per-pixel compositing against a directional light.
// Flat is the unshaded variant: basin colours with black boundaries.
package post

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/gogpu/newton/internal/color"
	"github.com/gogpu/newton/internal/filter"
	"github.com/gogpu/newton/internal/parallel"
)

// Params configure the shading pipeline.
type Params struct {
	// BlurRadius is the Gaussian radius applied to the gradient fields.
	BlurRadius int

	// Light points from the surface towards the light, in image
	// coordinates (x right, y down, z out of the screen). Need not be
	// normalised, must not be zero.
	Light mgl64.Vec3

	// Relief is the z component of the surface normal before
	// normalisation; smaller values exaggerate the shading.
	Relief float64

	// Ambient and Diffuse weight the unlit and lit parts of the shade.
	Ambient, Diffuse float64

	Shape filter.ShapeParams

	// Workers bounds the parallelism of every stage.
	Workers int
}

// DefaultParams returns the parameters used by the renderer.
func DefaultParams() Params {
	return Params{
		BlurRadius: 4,
		Light:      mgl64.Vec3{-1, -1, 1},
		Relief:     1,
		Ambient:    0.35,
		Diffuse:    0.65,
		Shape:      filter.DefaultShape(),
	}
}

// Fields are the intermediate results of the shading pipeline.
type Fields struct {
	Edges     []bool
	Distance  *filter.Field
	Proximity *filter.Field
	// GX and GY are the smoothed unit-gradient components of Proximity.
	GX, GY *filter.Field
}

// Analyze runs every field pass over g.
func Analyze(g *parallel.IndexGrid, p Params) *Fields {
	cols, rows := g.Cols(), g.Rows()

	edges := filter.Edges(g.Cells(), cols, rows, p.Workers)
	dist := filter.DistanceTransform(edges, cols, rows, p.Workers)
	prox := filter.Shape(dist, p.Shape, p.Workers)
	gx, gy := filter.Gradient(prox, p.Workers)

	return &Fields{
		Edges:     edges,
		Distance:  dist,
		Proximity: prox,
		GX:        filter.Blur(gx, p.BlurRadius, p.Workers),
		GY:        filter.Blur(gy, p.BlurRadius, p.Workers),
	}
}

// Composite writes one RGB triple per pixel of g into dst, which must hold
// 3*rows*cols bytes. Index nroots is the background.
func Composite(g *parallel.IndexGrid, f *Fields, nroots int, p Params, dst []uint8) {
	cols := g.Cols()
	cells := g.Cells()
	wheel := color.NewWheel(nroots)
	light := p.Light.Normalize()

	filter.Bands(g.Rows(), p.Workers, func(lo, hi int) {
		for i := lo * cols; i < hi*cols; i++ {
			prox := f.Proximity.Data[i]

			var c color.RGB
			if int(cells[i]) >= nroots {
				c = color.Mix(color.Edge, color.Background, prox)
			} else {
				n := mgl64.Vec3{-f.GX.Data[i], -f.GY.Data[i], p.Relief}.Normalize()
				lambert := max(0, n.Dot(light))
				c = color.Shade(wheel.Color(int(cells[i])), prox*(p.Ambient+p.Diffuse*lambert))
			}
			put(dst, i, c)
		}
	})
}

// Process runs Analyze followed by Composite.
func Process(g *parallel.IndexGrid, nroots int, p Params, dst []uint8) *Fields {
	f := Analyze(g, p)
	Composite(g, f, nroots, p, dst)
	return f
}

// Flat colours every pixel of g without shading: boundary and background
// pixels are black, the others take the flat wheel colour of their root.
func Flat(g *parallel.IndexGrid, nroots, workers int, dst []uint8) {
	cols := g.Cols()
	cells := g.Cells()
	edges := filter.Edges(cells, cols, g.Rows(), workers)
	wheel := color.NewWheel(nroots)

	filter.Bands(g.Rows(), workers, func(lo, hi int) {
		for i := lo * cols; i < hi*cols; i++ {
			c := color.Black
			if int(cells[i]) < nroots && !edges[i] {
				c = wheel.Flat(int(cells[i]))
			}
			put(dst, i, c)
		}
	})
}

func put(dst []uint8, i int, c color.RGB) {
	dst[3*i+0] = c.R
	dst[3*i+1] = c.G
	dst[3*i+2] = c.B
}
