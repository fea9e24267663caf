// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package mathutil contains bit-level helpers for IEEE-754 single precision
// numbers shared by the approximations.
package mathutil

import (
	"math"
	"unsafe"
)

const (
	bitsInNumber = unsafe.Sizeof(uint32(0)) * 8

	// MantBits is the width of the mantissa field.
	MantBits = 23
	// ExpBits is the width of the exponent field.
	ExpBits = 8
	// Bias is the exponent bias, so that 1.0 has the exponent field equal to Bias.
	Bias = 1<<(ExpBits-1) - 1

	// SignMask selects bit 31.
	SignMask uint32 = 1 << (bitsInNumber - 1)
	// ExpMask selects bits 30..23.
	ExpMask uint32 = (1<<ExpBits - 1) << MantBits
	// MantMask selects bits 22..0.
	MantMask uint32 = 1<<MantBits - 1

	// MinExp and MaxExp bound unbiased exponents of normal numbers.
	MinExp = 1 - Bias
	MaxExp = Bias
)

// Bits returns the IEEE-754 representation of f.
func Bits(f float32) uint32 {
	return math.Float32bits(f)
}

// FromBits returns the float with the IEEE-754 representation b.
func FromBits(b uint32) float32 {
	return math.Float32frombits(b)
}

// Split decomposes f into raw sign, biased exponent and mantissa fields.
func Split(f float32) (sign, exp, mant uint32) {
	b := Bits(f)
	return b >> (bitsInNumber - 1), b & ExpMask >> MantBits, b & MantMask
}

// FromParts is the inverse of Split. Extra high bits of every field are dropped.
func FromParts(sign, exp, mant uint32) float32 {
	return FromBits(sign<<(bitsInNumber-1) | exp<<MantBits&ExpMask | mant&MantMask)
}

// Pow2 returns 2^n by writing n into the exponent field.
// n must be in [MinExp, MaxExp], otherwise the result is garbage.
func Pow2(n int32) float32 {
	return FromBits(uint32(n+Bias) << MantBits & ExpMask)
}

// Exponent returns the unbiased exponent of f.
func Exponent(f float32) int32 {
	return int32(Bits(f)&ExpMask>>MantBits) - Bias
}

// MulSign returns a value with the magnitude of x, whose sign is flipped if y is negative.
// For non-negative x it is copysign(x, y).
func MulSign(x, y float32) float32 {
	return FromBits(Bits(x) ^ Bits(y)&SignMask)
}

// Floor returns the greatest integer value less than or equal to x.
func Floor(x float32) float32 {
	return float32(math.Floor(float64(x)))
}

// RoundToEven returns the nearest integer, rounding ties to even.
func RoundToEven(x float32) float32 {
	return float32(math.RoundToEven(float64(x)))
}

// Parity returns 0 for even and 1 for odd integral values of x.
// Negative values are handled through two's complement.
func Parity(x float32) int32 {
	return int32(x) & 1
}
