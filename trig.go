// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fastmath

import (
	"math"

	mu "github.com/avdva/fastmath/internal/mathutil"
)

// Reduction constants are split into a high part, which is the constant rounded
// to single precision, and a low part holding the rounding error.
// k*hi is subtracted first, so the low part is not lost for large k.
const (
	piHi = 3.1415927410125732421875 // float32(math.Pi)
	piLo = math.Pi - piHi

	rpiHi = 0.3183098733425140380859375 // float32(1 / math.Pi)
	rpiLo = 1/math.Pi - rpiHi

	halfPiHi = piHi / 2
	halfPiLo = piLo / 2
)

// sin(y) for y in [-pi/2, pi/2] is y + y^3*(s3 + y^2*(s5 + y^2*(s7 + y^2*(s9 + y^2*s11)))),
// minimax for the relative error.
const (
	sinS3  = -0.16666667
	sinS5  = 0.008333331
	sinS7  = -0.00019840868
	sinS9  = 2.7525384e-06
	sinS11 = -2.3888909e-08
)

func sinPoly(y float32) float32 {
	y2 := y * y
	p := mu.FMA(mu.FMA(mu.FMA(mu.FMA(sinS11, y2, sinS9), y2, sinS7), y2, sinS5), y2, sinS3)
	return mu.FMA(p, y*y2, y)
}

// reduce returns x - k*(hi+lo).
func reduce(x, k, hi, lo float32) float32 {
	return mu.FMA(-k, lo, mu.FMA(-k, hi, x))
}

// Sin returns the sine of x.
func Sin(x float32) float32 {
	// the magnitude comes from y = x mod pi in [-pi/2, pi/2],
	// the sign from z, which has the sign of x mod 2pi in [-pi, pi].
	// z is derived from y and the parity of j: rounding x/2pi on its own
	// picks the wrong half period within an ulp of odd multiples of pi.
	// sin(y + j*pi) = (-1)^j * sin(y).
	j := mu.RoundToEven(x * rpiHi)
	y := reduce(x, j, piHi, piLo)
	z := mu.FromBits(mu.Bits(y) ^ uint32(mu.Parity(j))<<signShift)
	return mu.MulSign(sinPoly(abs(y)), z)
}

// Cos returns the cosine of x.
func Cos(x float32) float32 {
	// x = m*pi + pi/2 + r, cos(x) = (-1)^(m+1) * sin(r).
	m := mu.Floor(mu.FMA(x, rpiHi, float32(x*rpiLo)))
	s := float32(mu.Parity(m)*2 - 1)

	high := mu.FMA(m, piHi, halfPiHi)
	// m*piHi+halfPiHi-high is exact as long as |high| < 2^23.
	errorOfHigh := mu.FMA(m, piHi, -high) + halfPiHi
	low := mu.FMA(m, piLo, halfPiLo)

	x -= high
	x -= errorOfHigh
	x -= low
	return sinPoly(x * s)
}

const signShift = 31

func abs(x float32) float32 {
	return mu.FromBits(mu.Bits(x) &^ mu.SignMask)
}
