package filter

import "math"

// DistanceTransform returns the Euclidean distance from every pixel to the
// nearest edge pixel, in grid units.
//
// It runs the lower-envelope squared-distance transform of Felzenszwalb and
// Huttenlocher twice: down every column, then along every row of the
// column result. A grid without edge pixels yields the grid diagonal
// everywhere.
func DistanceTransform(edges []bool, cols, rows, workers int) *Field {
	out := NewField(cols, rows)

	found := false
	for _, e := range edges {
		if e {
			found = true
			break
		}
	}
	if !found {
		diag := math.Hypot(float64(cols), float64(rows))
		for i := range out.Data {
			out.Data[i] = diag
		}
		return out
	}

	// Larger than any squared distance inside the grid.
	far := 2*float64(cols*cols+rows*rows) + 1

	// Pass 1: columns.
	Bands(cols, workers, func(lo, hi int) {
		env := newEnvelope(rows)
		for x := lo; x < hi; x++ {
			for y := range rows {
				if edges[y*cols+x] {
					env.f[y] = 0
				} else {
					env.f[y] = far
				}
			}
			env.transform(rows)
			for y := range rows {
				out.Data[y*cols+x] = env.d[y]
			}
		}
	})

	// Pass 2: rows, over the column distances.
	Bands(rows, workers, func(lo, hi int) {
		env := newEnvelope(cols)
		for y := lo; y < hi; y++ {
			row := out.Row(y)
			copy(env.f, row)
			env.transform(cols)
			for x := range row {
				row[x] = math.Sqrt(env.d[x])
			}
		}
	})

	return out
}

// envelope holds the scratch buffers of the 1-D transform.
type envelope struct {
	f, d []float64
	v    []int
	z    []float64
}

func newEnvelope(n int) *envelope {
	return &envelope{
		f: make([]float64, n),
		d: make([]float64, n),
		v: make([]int, n),
		z: make([]float64, n+1),
	}
}

// transform computes d[q] = min_p (q-p)² + f[p] for q in [0, n).
func (e *envelope) transform(n int) {
	f, v, z := e.f, e.v, e.z

	k := 0
	v[0] = 0
	z[0] = math.Inf(-1)
	z[1] = math.Inf(1)

	for q := 1; q < n; q++ {
		s := e.intersect(q, v[k])
		for s <= z[k] {
			k--
			s = e.intersect(q, v[k])
		}
		k++
		v[k] = q
		z[k] = s
		z[k+1] = math.Inf(1)
	}

	k = 0
	for q := range n {
		for z[k+1] < float64(q) {
			k++
		}
		dq := float64(q - v[k])
		e.d[q] = dq*dq + f[v[k]]
	}
}

// intersect returns the abscissa where the parabolas rooted at q and p meet.
func (e *envelope) intersect(q, p int) float64 {
	fq, fp := float64(q), float64(p)
	return ((e.f[q] + fq*fq) - (e.f[p] + fp*fp)) / (2*fq - 2*fp)
}
