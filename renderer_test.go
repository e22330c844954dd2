package newton

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// quartic are the roots of z^4 - 1, ordered so that multiplying root k by i
// yields root k+1.
var quartic = []complex128{1, 1i, -1, -1i}

func smallConfig() Config {
	cfg := DefaultConfig()
	cfg.Cols, cfg.Rows = 16, 16
	cfg.Scale = 2
	cfg.Roots = quartic
	cfg.BlurRadius = 2
	cfg.Workers = 2
	cfg.Vectorized = false
	return cfg
}

func renderIndices(t *testing.T, cfg Config) *IndexGrid {
	t.Helper()
	r, err := NewRenderer(cfg)
	require.NoError(t, err)
	t.Cleanup(r.Close)

	g, err := r.Indices()
	require.NoError(t, err)
	return g
}

func TestRendererQuarticBasins(t *testing.T) {
	g := renderIndices(t, smallConfig())
	require.Equal(t, 16, g.Cols())
	require.Equal(t, 16, g.Rows())

	// Pixel (12,8) starts on the root 1; its quarter turns start on i, -1
	// and -i.
	assert.EqualValues(t, 0, g.At(12, 8))
	assert.EqualValues(t, 1, g.At(8, 12))
	assert.EqualValues(t, 2, g.At(4, 8))
	assert.EqualValues(t, 3, g.At(8, 4))

	// The lines re = im and re = -im are invariant under the Newton map of
	// z^4 - 1 and contain no root.
	for i := range 16 {
		assert.EqualValues(t, 4, g.At(i, i), "pixel (%d,%d)", i, i)
	}
	for i := 1; i < 16; i++ {
		assert.EqualValues(t, 4, g.At(i, 16-i), "pixel (%d,%d)", i, 16-i)
	}

	// Corners off those lines reach a root.
	assert.Less(t, int(g.At(15, 0)), 4, "pixel (15,0)")
	assert.Less(t, int(g.At(0, 15)), 4, "pixel (0,15)")
	assert.EqualValues(t, 4, g.At(0, 0))
	assert.EqualValues(t, 4, g.At(15, 15))
}

func TestRendererQuarterTurnSymmetry(t *testing.T) {
	g := renderIndices(t, smallConfig())

	// A quarter turn about the origin moves pixel (x,y) to (16-y, x) and
	// root k to root k+1. Row 0 maps to column 16, one pixel past the grid.
	turn := func(k uint16) uint16 {
		if k >= 4 {
			return k
		}
		return (k + 1) % 4
	}
	for y := 1; y < 16; y++ {
		for x := range 16 {
			assert.Equal(t, turn(g.At(x, y)), g.At(16-y, x), "pixel (%d,%d)", x, y)
		}
	}
}

func TestRendererWorkerCountIndependent(t *testing.T) {
	cfg := smallConfig()
	cfg.Cols, cfg.Rows = 37, 23
	cfg.Center = 0.1 - 0.2i
	cfg.Roots = Spiral(5, 1.2, 0.3)

	cfg.Workers = 1
	cfg.RowsPerTask = 1
	r1, err := NewRenderer(cfg)
	require.NoError(t, err)
	defer r1.Close()

	cfg.Workers = 6
	cfg.RowsPerTask = 5
	r6, err := NewRenderer(cfg)
	require.NoError(t, err)
	defer r6.Close()

	img1, err := r1.Render()
	require.NoError(t, err)
	img6, err := r6.Render()
	require.NoError(t, err)

	assert.Equal(t, img1.Pix, img6.Pix)
}

func TestRendererVectorizedAgrees(t *testing.T) {
	cfg := smallConfig()
	cfg.Cols, cfg.Rows = 61, 40
	cfg.Roots = Ring(5, 1, 0.2)

	scalar := renderIndices(t, cfg)
	cfg.Vectorized = true
	vector := renderIndices(t, cfg)

	mismatch := 0
	for i, v := range scalar.Cells() {
		if vector.Cells()[i] != v {
			mismatch++
		}
	}
	assert.LessOrEqual(t, mismatch, len(scalar.Cells())/100)
}

func TestRendererSingleRoot(t *testing.T) {
	cfg := smallConfig()
	cfg.Roots = []complex128{0.25 - 0.5i}
	g := renderIndices(t, cfg)

	for i, v := range g.Cells() {
		require.EqualValues(t, 0, v, "cell %d", i)
	}
}

func TestRendererProgress(t *testing.T) {
	cfg := smallConfig()
	cfg.RowsPerTask = 3

	var calls, last atomic.Int64
	r, err := NewRenderer(cfg, WithProgress(func(done, total int) {
		calls.Add(1)
		assert.Equal(t, 16, total)
		for {
			prev := last.Load()
			if int64(done) <= prev || last.CompareAndSwap(prev, int64(done)) {
				break
			}
		}
	}))
	require.NoError(t, err)
	defer r.Close()

	_, err = r.Render()
	require.NoError(t, err)
	assert.EqualValues(t, 6, calls.Load())
	assert.EqualValues(t, 16, last.Load())
}

func TestRendererFlatShading(t *testing.T) {
	cfg := smallConfig()
	cfg.Shading = false
	cfg.Light = [3]float64{}

	r, err := NewRenderer(cfg)
	require.NoError(t, err)
	defer r.Close()

	img, err := r.Render()
	require.NoError(t, err)

	// Diagonal pixels are background and render black.
	red, green, blue := img.RGBAt(3, 3)
	assert.Equal(t, [3]uint8{0, 0, 0}, [3]uint8{red, green, blue})
}

func TestRendererWithShading(t *testing.T) {
	cfg := smallConfig()
	flat := ShadingParams{Relief: 1, Ambient: 1, Diffuse: 0, Gamma: 0.75, Gain: 1.5}

	r, err := NewRenderer(cfg, WithShading(flat))
	require.NoError(t, err)
	defer r.Close()

	img, err := r.Render()
	require.NoError(t, err)
	assert.Len(t, img.Pix, 3*16*16)
}

func TestRendererPolynomial(t *testing.T) {
	r, err := NewRenderer(smallConfig())
	require.NoError(t, err)
	defer r.Close()

	f := r.Polynomial()
	assert.Equal(t, 4, f.Degree())
	for _, root := range quartic {
		assert.Zero(t, f.Eval(root))
	}
}

func TestRendererConfigCopied(t *testing.T) {
	cfg := smallConfig()
	cfg.Roots = []complex128{1, -1}
	r, err := NewRenderer(cfg)
	require.NoError(t, err)
	defer r.Close()

	cfg.Roots[0] = 5
	assert.Equal(t, complex128(1), r.Config().Roots[0])
}

func TestRendererClosed(t *testing.T) {
	r, err := NewRenderer(smallConfig())
	require.NoError(t, err)
	r.Close()
	r.Close()

	_, err = r.Render()
	assert.True(t, errors.Is(err, ErrClosed))
	_, err = r.Indices()
	assert.ErrorIs(t, err, ErrClosed)
}

func TestNewRendererRejectsInvalidConfig(t *testing.T) {
	cfg := smallConfig()
	cfg.Roots = nil
	_, err := NewRenderer(cfg)
	assert.ErrorIs(t, err, ErrNoRoots)
}

func BenchmarkRender(b *testing.B) {
	cfg := DefaultConfig()
	cfg.Cols, cfg.Rows = 256, 256
	r, err := NewRenderer(cfg)
	if err != nil {
		b.Fatal(err)
	}
	defer r.Close()

	b.ReportAllocs()
	for b.Loop() {
		if _, err := r.Render(); err != nil {
			b.Fatal(err)
		}
	}
}
