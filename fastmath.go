// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package fastmath implements fast single precision approximations of
// log2, exp2, sin, cos and cbrt.
// The functions trade a few ulps of accuracy for speed, and do not check their
// arguments: NaNs, infinities, subnormals, non-positive arguments of Log2
// and Cbrt, and exponents out of range in Exp2 give unspecified results.
// All functions are pure and safe for concurrent use.
package fastmath

import (
	mu "github.com/avdva/fastmath/internal/mathutil"
)

const (
	// oneBits is the representation of 1.0, its mantissa is zero.
	oneBits = mu.Bias << mu.MantBits

	// exponent fields are moved by fieldShift bits into the top of the mantissa
	// of 2^fieldShift, so that the float value becomes 2^fieldShift + field.
	fieldShift = mu.ExpBits
	scaleBits  = (mu.Bias + fieldShift) << mu.MantBits
	// expCorrection turns 2^fieldShift + field into the unbiased exponent.
	expCorrection = 1<<fieldShift + mu.Bias
)

// log2(m) for m in [1, 2) is (m-1)*(a*m^2+b*m+c)/(d*m^3+e*m^2+f*m+1).
const (
	log2A = 2.3319538
	log2B = 11.721429
	log2C = 4.8782234
	log2D = 0.40584013
	log2E = 4.984538
	log2F = 6.732012
)

// 2^f for f in [0, 1) is 1 + f*(c1 + f*(c2 + f*(c3 + f*(c4 + f*c5)))).
const (
	exp2C1 = 0.6931525
	exp2C2 = 0.2401528
	exp2C3 = 0.05583593
	exp2C4 = 0.008973379
	exp2C5 = 0.0018852974
)

// Log2 returns the binary logarithm of x.
// Log2(2^k) == k exactly. x must be positive and finite.
func Log2(x float32) float32 {
	b := mu.Bits(x)
	m := mu.FromBits(oneBits | b&mu.MantMask)
	e := mu.FromBits(scaleBits|b&mu.ExpMask>>fieldShift) - expCorrection
	return e + log2Mantissa(m)
}

func log2Mantissa(m float32) float32 {
	// the numerator is exactly zero at m == 1.
	num := mu.FMA(mu.FMA(log2A, m, log2B), m, log2C) * (m - 1)
	den := mu.FMA(mu.FMA(mu.FMA(log2D, m, log2E), m, log2F), m, 1)
	return num / den
}

// Exp2 returns 2^x.
// Valid while floor(x) is a normal exponent, roughly [-126, 127].
// Overflow and underflow are not detected.
func Exp2(x float32) float32 {
	xi := mu.Floor(x)
	// xi+expCorrection is 2^fieldShift + biased exponent, exact for integral xi.
	pow := mu.FromBits(mu.Bits(xi+expCorrection) << fieldShift & mu.ExpMask)
	return pow * exp2Frac(x-xi)
}

func exp2Frac(f float32) float32 {
	return mu.FMA(mu.FMA(mu.FMA(mu.FMA(mu.FMA(exp2C5, f, exp2C4), f, exp2C3), f, exp2C2), f, exp2C1), f, 1)
}
