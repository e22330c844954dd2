package filter

import (
	"math"
	"testing"
)

func TestGaussianKernelZeroRadius(t *testing.T) {
	for _, r := range []int{0, -5} {
		kernel := GaussianKernel(r)
		if len(kernel) != 1 || kernel[0] != 1 {
			t.Errorf("GaussianKernel(%d) = %v, want [1]", r, kernel)
		}
	}
}

func TestGaussianKernelShape(t *testing.T) {
	for _, r := range []int{1, 2, 5, 10} {
		kernel := GaussianKernel(r)
		if len(kernel) != 2*r+1 {
			t.Fatalf("GaussianKernel(%d) len = %d, want %d", r, len(kernel), 2*r+1)
		}

		peak := 1 / (math.Sqrt(2*math.Pi) * float64(r))
		if math.Abs(kernel[r]-peak) > 1e-15 {
			t.Errorf("GaussianKernel(%d) centre = %v, want %v", r, kernel[r], peak)
		}
		// The outermost weight sits one sigma from the centre.
		if math.Abs(kernel[0]-peak*math.Exp(-0.5)) > 1e-15 {
			t.Errorf("GaussianKernel(%d) edge = %v, want %v", r, kernel[0], peak*math.Exp(-0.5))
		}

		for i := range r {
			if kernel[i] != kernel[len(kernel)-1-i] {
				t.Errorf("GaussianKernel(%d) not symmetric at %d", r, i)
			}
			if kernel[i] >= kernel[i+1] {
				t.Errorf("GaussianKernel(%d) not increasing towards centre at %d", r, i)
			}
		}
	}
}

func TestCachedGaussianKernel(t *testing.T) {
	a := CachedGaussianKernel(4)
	b := CachedGaussianKernel(4)

	if &a[0] != &b[0] {
		t.Error("CachedGaussianKernel returned different slices for the same radius")
	}
}

func TestKernelCacheEviction(t *testing.T) {
	c := newKernelCache(4)
	for r := 1; r <= 10; r++ {
		c.get(r)
	}

	if len(c.cache) > 4 {
		t.Errorf("cache size = %d, want <= 4", len(c.cache))
	}
}
