// Copyright 2020 Aleksandr Demakin. All rights reserved.

package mathutil

import "math"

// FMA returns a*b+c, computed with only one rounding.
//
// Go provides no single precision fused multiply-add, so it is emulated in
// float64. The product of two float32 numbers is exact in float64. The sum
// p+c is computed together with its exact error, and rounded to odd: if the
// sum is inexact and its last bit is zero, the last bit is pushed towards the
// error. 53 bits are more than 24+2, so the final conversion to float32
// gives the correctly rounded result.
func FMA(a, b, c float32) float32 {
	p := float64(a) * float64(b)
	cc := float64(c)
	s := p + cc
	// TwoSum error of p+cc.
	bb := s - p
	e := (p - (s - bb)) + (cc - bb)
	if e != 0 {
		if u := math.Float64bits(s); u&1 == 0 {
			if (e > 0) == (s > 0) {
				u++
			} else {
				u--
			}
			s = math.Float64frombits(u)
		}
	}
	return float32(s)
}
