// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package dfloat implements double-float arithmetic, where a value is kept as
// an unevaluated sum of two float32 numbers.
package dfloat

import (
	mu "github.com/avdva/fastmath/internal/mathutil"
)

// Pair represents Hi + Lo, where |Lo| is far below the ulp of Hi.
// Hi alone is the value rounded to single precision.
type Pair struct {
	Hi, Lo float32
}

// Float32 returns the pair rounded to single precision.
func (p Pair) Float32() float32 {
	return p.Hi + p.Lo
}

// TwoProd returns a*b as an exact pair.
func TwoProd(a, b float32) Pair {
	p := a * b
	return Pair{Hi: p, Lo: mu.FMA(a, b, -p)}
}

// FastTwoSum returns a+b as an exact pair. It requires |a| >= |b|.
func FastTwoSum(a, b float32) Pair {
	s := a + b
	return Pair{Hi: s, Lo: b - (s - a)}
}

// MulScalar returns p*r.
func (p Pair) MulScalar(r float32) Pair {
	hi := p.Hi * r
	lo := mu.FMA(p.Hi, r, -hi)
	lo = mu.FMA(p.Lo, r, lo)
	return FastTwoSum(hi, lo)
}

// QuickTwoSum returns p+r. It requires |p.Hi| >= |r|.
func (p Pair) QuickTwoSum(r float32) Pair {
	s := FastTwoSum(p.Hi, r)
	return Pair{Hi: s.Hi, Lo: s.Lo + p.Lo}
}

// Div returns n/d rounded to single precision.
// The quotient of the high parts is refined by one Newton step,
// using the residuals of both pairs.
func Div(n, d Pair) float32 {
	inv := 1 / d.Hi
	q := n.Hi * inv
	r := mu.FMA(-q, d.Hi, n.Hi)
	r = mu.FMA(-q, d.Lo, r+n.Lo)
	return mu.FMA(r, inv, q)
}
