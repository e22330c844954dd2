package filter

import (
	"math"
	"sync"
)

// GaussianKernel generates the 1-D Gaussian kernel of integer radius r:
// 2r+1 weights exp(-dx²/2r²) / (r√(2π)) for dx in [-r, r].
//
// The weights are not renormalised to sum to 1; Blur divides by the sum of
// the weights it actually uses, which also handles truncation at borders.
// For r <= 0, returns the identity kernel [1].
func GaussianKernel(r int) []float64 {
	if r <= 0 {
		return []float64{1}
	}

	kernel := make([]float64, 2*r+1)
	sigma := float64(r)
	norm := 1 / (math.Sqrt(2*math.Pi) * sigma)

	for i := range kernel {
		dx := float64(i - r)
		kernel[i] = math.Exp(-dx*dx/(2*sigma*sigma)) * norm
	}

	return kernel
}

// kernelCache caches computed Gaussian kernels to avoid recomputation.
type kernelCache struct {
	mu     sync.RWMutex
	cache  map[int][]float64
	maxLen int
}

var defaultKernelCache = newKernelCache(64)

// newKernelCache creates a kernel cache with the given maximum entries.
func newKernelCache(maxLen int) *kernelCache {
	return &kernelCache{
		cache:  make(map[int][]float64),
		maxLen: maxLen,
	}
}

// get retrieves a kernel from cache or generates and caches it.
func (c *kernelCache) get(r int) []float64 {
	c.mu.RLock()
	if kernel, ok := c.cache[r]; ok {
		c.mu.RUnlock()
		return kernel
	}
	c.mu.RUnlock()

	kernel := GaussianKernel(r)

	c.mu.Lock()
	if len(c.cache) >= c.maxLen {
		// Simple eviction: clear half the cache
		count := 0
		for k := range c.cache {
			delete(c.cache, k)
			count++
			if count >= c.maxLen/2 {
				break
			}
		}
	}
	c.cache[r] = kernel
	c.mu.Unlock()

	return kernel
}

// CachedGaussianKernel returns a cached Gaussian kernel for radius r.
// The returned slice is shared and must not be modified.
func CachedGaussianKernel(r int) []float64 {
	return defaultKernelCache.get(r)
}
