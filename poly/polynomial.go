package poly

import (
	"fmt"
	"strings"

	"github.com/gogpu/newton/internal/wide"
)

// Polynomial is a complex polynomial with coefficients in ascending order.
// The zero value is the empty polynomial, which evaluates to 0.
type Polynomial struct {
	coeffs []complex128
}

// New creates a polynomial from coefficients in ascending order of power.
// Trailing zero coefficients are kept; Degree ignores them.
func New(coeffs ...complex128) Polynomial {
	return Polynomial{coeffs: append([]complex128(nil), coeffs...)}
}

// Constant returns the degree-0 polynomial c.
func Constant(c complex128) Polynomial {
	return Polynomial{coeffs: []complex128{c}}
}

// FromRoots builds the monic polynomial whose roots are exactly roots.
//
// Starting from the constant 1, each root r replaces the coefficients c by
// shift(c) - r*c, i.e. multiplies the running product by (z - r).
// The result has len(roots)+1 coefficients.
func FromRoots(roots []complex128) Polynomial {
	n := len(roots)
	res := make([]complex128, n+1)
	acc := make([]complex128, n+1)
	res[0] = 1

	for _, r := range roots {
		copy(acc, res)
		// shift: res[i] = acc[i-1]
		copy(res[1:], acc[:n])
		res[0] = 0
		for i := range res {
			res[i] -= acc[i] * r
		}
	}

	return Polynomial{coeffs: res}
}

// Coefficients returns a copy of the coefficients in ascending order.
func (p Polynomial) Coefficients() []complex128 {
	return append([]complex128(nil), p.coeffs...)
}

// Len returns the number of stored coefficients, trailing zeros included.
func (p Polynomial) Len() int {
	return len(p.coeffs)
}

// Coefficient returns the coefficient of z^i, or 0 past the stored length.
func (p Polynomial) Coefficient(i int) complex128 {
	if i < 0 || i >= len(p.coeffs) {
		return 0
	}
	return p.coeffs[i]
}

// Degree returns the highest power with a non-zero coefficient.
// It returns 0 when every coefficient is zero.
func (p Polynomial) Degree() int {
	deg := 0
	for i, c := range p.coeffs {
		if real(c) != 0 || imag(c) != 0 {
			deg = i
		}
	}
	return deg
}

// Trim returns p without trailing zero coefficients.
// The all-zero polynomial trims to the single coefficient 0.
func (p Polynomial) Trim() Polynomial {
	if len(p.coeffs) == 0 {
		return Polynomial{}
	}
	return Polynomial{coeffs: append([]complex128(nil), p.coeffs[:p.Degree()+1]...)}
}

// Eval evaluates p at z.
//
// A running power accumulator starts at 1; for each coefficient in
// ascending order the result gains coefficient*accumulator, then the
// accumulator is multiplied by z.
func (p Polynomial) Eval(z complex128) complex128 {
	acc := complex(1, 0)
	var res complex128

	for _, c := range p.coeffs {
		res += acc * c
		acc *= z
	}

	return res
}

// Eval8 evaluates p at 8 points at once, in the same operation order as Eval.
func (p Polynomial) Eval8(z wide.Complex8) wide.Complex8 {
	acc := wide.SplatComplex(1)
	var res wide.Complex8

	for _, c := range p.coeffs {
		res = res.Add(acc.MulScalar(c))
		acc = acc.Mul(z)
	}

	return res
}

// Derivative returns p′. Coefficient i of p, scaled by i, becomes
// coefficient i-1 of the result. A polynomial with at most one stored
// coefficient differentiates to the empty polynomial.
func (p Polynomial) Derivative() Polynomial {
	if len(p.coeffs) <= 1 {
		return Polynomial{}
	}

	res := make([]complex128, len(p.coeffs)-1)
	for i := 1; i < len(p.coeffs); i++ {
		res[i-1] = wide.ScaleComplex(p.coeffs[i], float64(i))
	}

	return Polynomial{coeffs: res}
}

// Add returns p + q with trailing zeros trimmed.
func (p Polynomial) Add(q Polynomial) Polynomial {
	n := max(len(p.coeffs), len(q.coeffs))
	res := make([]complex128, n)
	copy(res, p.coeffs)
	for i, c := range q.coeffs {
		res[i] += c
	}
	return Polynomial{coeffs: res}.Trim()
}

// Mul returns p * q with trailing zeros trimmed.
// The product with an empty polynomial is empty.
func (p Polynomial) Mul(q Polynomial) Polynomial {
	if len(p.coeffs) == 0 || len(q.coeffs) == 0 {
		return Polynomial{}
	}

	res := make([]complex128, len(p.coeffs)+len(q.coeffs)-1)
	for i, a := range p.coeffs {
		for j, b := range q.coeffs {
			res[i+j] += a * b
		}
	}

	return Polynomial{coeffs: res}.Trim()
}

// Equal reports whether p and q have the same coefficients up to the
// larger of their degrees. Trailing zero padding does not matter.
func (p Polynomial) Equal(q Polynomial) bool {
	n := max(p.Degree(), q.Degree())
	for i := 0; i <= n; i++ {
		if p.Coefficient(i) != q.Coefficient(i) {
			return false
		}
	}
	return true
}

// String formats p as (c0) + (c1)*z^1 + ... for logging.
func (p Polynomial) String() string {
	if len(p.coeffs) == 0 {
		return "0"
	}

	var sb strings.Builder
	for i, c := range p.coeffs {
		if i > 0 {
			fmt.Fprintf(&sb, " + %v*z^%d", c, i)
		} else {
			fmt.Fprintf(&sb, "%v", c)
		}
	}
	return sb.String()
}
