package filter

import "sync"

// Blur returns f smoothed by a separable Gaussian of integer radius.
//
// The horizontal pass writes a temporary field; the vertical pass starts
// only after the horizontal pass has finished every row. Near borders the
// kernel is truncated and each output is divided by the sum of the weights
// that fell inside the grid, so a constant field stays constant.
// radius <= 0 returns a copy of f.
func Blur(f *Field, radius, workers int) *Field {
	out := NewField(f.W, f.H)
	if radius <= 0 {
		copy(out.Data, f.Data)
		return out
	}

	kernel := CachedGaussianKernel(radius)
	temp := getTempBuffer(len(f.Data))
	defer putTempBuffer(temp)

	// Pass 1: horizontal (f -> temp)
	Bands(f.H, workers, func(lo, hi int) {
		for y := lo; y < hi; y++ {
			blurLine(f.Data[y*f.W:(y+1)*f.W], 1, temp[y*f.W:], 1, f.W, kernel)
		}
	})

	// Pass 2: vertical (temp -> out)
	Bands(f.W, workers, func(lo, hi int) {
		for x := lo; x < hi; x++ {
			blurLine(temp[x:], f.W, out.Data[x:], f.W, f.H, kernel)
		}
	})

	return out
}

// blurLine convolves n samples read from src with the given stride and
// writes them to dst with the given stride.
func blurLine(src []float64, srcStride int, dst []float64, dstStride, n int, kernel []float64) {
	r := len(kernel) / 2

	for i := range n {
		var sum, weight float64
		lo := max(i-r, 0)
		hi := min(i+r, n-1)
		for j := lo; j <= hi; j++ {
			k := kernel[j-i+r]
			sum += src[j*srcStride] * k
			weight += k
		}
		dst[i*dstStride] = sum / weight
	}
}

// floatBuffer wraps a slice for sync.Pool to avoid allocation warnings.
type floatBuffer struct {
	data []float64
}

// Temporary buffer pool for blur passes.
var tempBufferPool = sync.Pool{
	New: func() any {
		return &floatBuffer{data: make([]float64, 1024*1024)}
	},
}

// getTempBuffer retrieves a temporary buffer of exactly size elements.
func getTempBuffer(size int) []float64 {
	wrapper := tempBufferPool.Get().(*floatBuffer)

	if len(wrapper.data) < size {
		// Need larger buffer - return old one and allocate new
		tempBufferPool.Put(wrapper)
		return make([]float64, size)
	}

	return wrapper.data[:size]
}

// putTempBuffer returns a temporary buffer to the pool.
func putTempBuffer(buf []float64) {
	// Only pool reasonably-sized buffers
	if cap(buf) <= 16*1024*1024 {
		tempBufferPool.Put(&floatBuffer{data: buf[:cap(buf)]})
	}
}
