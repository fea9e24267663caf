// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package ulp measures the error of single precision results
// in units in the last place.
package ulp

import (
	"math"
	"math/big"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/constraints"

	mu "github.com/avdva/fastmath/internal/mathutil"
)

var (
	two  = big.NewInt(2)
	five = big.NewInt(5)
	half = decimal.New(5, -1)
)

// Of returns the distance from |f| to the next representable number away from zero.
func Of(f float32) float32 {
	b := mu.Bits(f) &^ mu.SignMask
	if b >= mu.ExpMask-1 { // MaxFloat32, Inf, NaN
		return mu.FromBits(mu.Bits(math.MaxFloat32)) - mu.FromBits(mu.Bits(math.MaxFloat32)-1)
	}
	return mu.FromBits(b+1) - mu.FromBits(b)
}

// ordered maps float bits onto a line, where adjacent floats differ by one.
// Both zeros map to zero.
func ordered(f float32) int64 {
	b := mu.Bits(f)
	if b&mu.SignMask != 0 {
		return -int64(b &^ mu.SignMask)
	}
	return int64(b)
}

// Distance returns the number of representable floats between a and b.
// Distance(x, x) is 0, Distance(x, nextafter(x)) is 1.
func Distance(a, b float32) uint32 {
	d := ordered(a) - ordered(b)
	if d < 0 {
		d = -d
	}
	return uint32(d)
}

// Error returns |got - want| in units of the last place of want rounded to float32.
// want is usually a higher precision reference value.
func Error[T constraints.Float](got float32, want T) float64 {
	w := float64(want)
	return math.Abs(float64(got)-w) / float64(Of(float32(w)))
}

// Exact returns the exact decimal value of a finite f.
// Every binary fraction is a finite decimal: m*2^-n == m*5^n*10^-n.
func Exact(f float32) decimal.Decimal {
	sign, exp, mant := mu.Split(f)
	e := int32(exp) - mu.Bias - mu.MantBits
	if exp == 0 { // subnormal
		e++
	} else {
		mant |= 1 << mu.MantBits
	}
	m := new(big.Int).SetUint64(uint64(mant))
	if sign != 0 {
		m.Neg(m)
	}
	if e >= 0 {
		return decimal.NewFromBigInt(m.Mul(m, new(big.Int).Exp(two, big.NewInt(int64(e)), nil)), 0)
	}
	return decimal.NewFromBigInt(m.Mul(m, new(big.Int).Exp(five, big.NewInt(int64(-e)), nil)), e)
}

// CubeResidual returns |s^3 - x| in units of the last place of x, computed exactly.
func CubeResidual(s, x float32) float64 {
	ds := Exact(s)
	r, _ := ds.Mul(ds).Mul(ds).Sub(Exact(x)).Abs().Div(Exact(Of(x))).Float64()
	return r
}

// IsNearest returns true, if no float32 is closer to want than got.
func IsNearest(got float32, want decimal.Decimal) bool {
	diff := want.Sub(Exact(got)).Abs()
	// uses the gap above |got|, which is twice the gap below for powers of two.
	return diff.Cmp(Exact(Of(got)).Mul(half)) <= 0
}
