package wide

// Complex8 holds 8 complex values as parallel real and imaginary lanes.
//
// Arithmetic applies the textbook complex formulas lane by lane with no
// per-lane special cases. Division does not guard against zero
// denominators: such lanes become Inf or NaN and stay that way.
type Complex8 struct {
	Re F64x8
	Im F64x8
}

// SplatComplex broadcasts c into all 8 lanes.
func SplatComplex(c complex128) Complex8 {
	return Complex8{Re: SplatF64(real(c)), Im: SplatF64(imag(c))}
}

// Pack deinterleaves 8 complex values into lane form.
// Lane i holds c[i].
func Pack(c [Lanes]complex128) Complex8 {
	var z Complex8
	for i, v := range c {
		z.Re[i] = real(v)
		z.Im[i] = imag(v)
	}
	return z
}

// Unpack interleaves the lanes back into 8 complex values, lane i to index i.
func (z Complex8) Unpack() [Lanes]complex128 {
	var c [Lanes]complex128
	for i := range c {
		c[i] = complex(z.Re[i], z.Im[i])
	}
	return c
}

// Lane returns lane i as a complex128.
func (z Complex8) Lane(i int) complex128 {
	return complex(z.Re[i], z.Im[i])
}

// Add returns z + w lane-wise.
func (z Complex8) Add(w Complex8) Complex8 {
	return Complex8{Re: z.Re.Add(w.Re), Im: z.Im.Add(w.Im)}
}

// Sub returns z - w lane-wise.
func (z Complex8) Sub(w Complex8) Complex8 {
	return Complex8{Re: z.Re.Sub(w.Re), Im: z.Im.Sub(w.Im)}
}

// Mul returns z * w lane-wise: (ac - bd) + (ad + bc)i.
func (z Complex8) Mul(w Complex8) Complex8 {
	var r Complex8
	for i := range r.Re {
		a, b := z.Re[i], z.Im[i]
		c, d := w.Re[i], w.Im[i]
		r.Re[i] = a*c - b*d
		r.Im[i] = a*d + b*c
	}
	return r
}

// Div returns z / w lane-wise: ((ac + bd) + (bc - ad)i) / (c² + d²).
func (z Complex8) Div(w Complex8) Complex8 {
	var r Complex8
	for i := range r.Re {
		a, b := z.Re[i], z.Im[i]
		c, d := w.Re[i], w.Im[i]
		den := c*c + d*d
		r.Re[i] = (a*c + b*d) / den
		r.Im[i] = (b*c - a*d) / den
	}
	return r
}

// AddScalar adds c to every lane.
func (z Complex8) AddScalar(c complex128) Complex8 {
	return z.Add(SplatComplex(c))
}

// SubScalar subtracts c from every lane.
func (z Complex8) SubScalar(c complex128) Complex8 {
	return z.Sub(SplatComplex(c))
}

// MulScalar multiplies every lane by c.
func (z Complex8) MulScalar(c complex128) Complex8 {
	return z.Mul(SplatComplex(c))
}

// DivScalar divides every lane by c.
func (z Complex8) DivScalar(c complex128) Complex8 {
	return z.Div(SplatComplex(c))
}

// Scale multiplies both components of every lane by the real s.
func (z Complex8) Scale(s float64) Complex8 {
	return Complex8{Re: z.Re.Scale(s), Im: z.Im.Scale(s)}
}

// DivReal divides both components of every lane by the real s.
func (z Complex8) DivReal(s float64) Complex8 {
	d := SplatF64(s)
	return Complex8{Re: z.Re.Div(d), Im: z.Im.Div(d)}
}

// Norm returns the squared magnitude re² + im² of every lane.
func (z Complex8) Norm() F64x8 {
	return z.Re.Mul(z.Re).Add(z.Im.Mul(z.Im))
}

// DivComplex divides a by b with the same formula as Complex8.Div.
// The builtin complex128 division uses a scaled algorithm; scalar code that
// must agree with the batched path calls this instead.
func DivComplex(a, b complex128) complex128 {
	ar, ai := real(a), imag(a)
	br, bi := real(b), imag(b)
	den := br*br + bi*bi
	return complex((ar*br+ai*bi)/den, (ai*br-ar*bi)/den)
}

// ScaleComplex multiplies both components of c by the real s.
func ScaleComplex(c complex128, s float64) complex128 {
	return complex(real(c)*s, imag(c)*s)
}

// Norm returns re² + im² of c.
func Norm(c complex128) float64 {
	return real(c)*real(c) + imag(c)*imag(c)
}
