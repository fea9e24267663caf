// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fastmath

import (
	"github.com/avdva/fastmath/internal/dfloat"
	mu "github.com/avdva/fastmath/internal/mathutil"
)

// cbrtSeedBias is (127 - 127/3 - 0.03306235651) * 2^23.
// bits(x)/3 + cbrtSeedBias reads as x^(1/3) within a few percent,
// as the bits of a float are close to a scaled and shifted log2 of it.
const cbrtSeedBias = 709958130

// Cbrt returns the cube root of x. x must be positive and finite.
func Cbrt(x float32) float32 {
	s := mu.FromBits(mu.Bits(x)/3 + cbrtSeedBias)
	s = halley(s, x)
	return halley(s, x)
}

// halley does one step of Halley's method for s^3 - x:
// s - 3s(2s^3+x)(s^3-x)/(10s^6+16s^3x+x^2), with everything divided by x^2.
func halley(s, x float32) float32 {
	r := s * s * s / x
	num := 3 * s * mu.FMA(2, r, 1) * (r - 1)
	den := mu.FMA(mu.FMA(10, r, 16), r, 1)
	return s - num/den
}

// CbrtAccurate returns the cube root of x, rounded to nearest in almost all cases.
// It refines Cbrt with one more step, where s^3 is kept as a double-float.
// x must be positive, finite and normal.
func CbrtAccurate(x float32) float32 {
	// cbrt(x * 2^-3k) * 2^k == cbrt(x), so the products below can neither
	// overflow nor underflow. Cbrt itself commutes with this scaling.
	k := mu.Exponent(x) / 3
	x *= mu.Pow2(-3 * k)
	s := Cbrt(x)

	// s' = 2s - 1.5*(2s^3)*s / (2s^3 + x), a Halley step in disguise.
	p := dfloat.TwoProd(s, s).MulScalar(2 * s)
	d := p.QuickTwoSum(x)
	n := p.MulScalar(s).MulScalar(-1.5)
	return (2*s + dfloat.Div(n, d)) * mu.Pow2(k)
}
