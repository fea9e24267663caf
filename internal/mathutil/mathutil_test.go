package mathutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitFromParts(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		f               float32
		sign, exp, mant uint32
	}{
		{1, 0, 127, 0},
		{-1, 1, 127, 0},
		{2, 0, 128, 0},
		{1.5, 0, 127, 1 << 22},
		{-0.75, 1, 126, 1 << 22},
		{math.MaxFloat32, 0, 254, MantMask},
		{math.SmallestNonzeroFloat32, 0, 0, 1},
		{256, 0, 135, 0},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			sign, exp, mant := Split(test.f)
			a.Equal(test.sign, sign)
			a.Equal(test.exp, exp)
			a.Equal(test.mant, mant)
			a.Equal(Bits(test.f), Bits(FromParts(sign, exp, mant)))
		})
	}
}

func TestConstants(t *testing.T) {
	a := assert.New(t)
	a.Equal(uint32(0x80000000), SignMask)
	a.Equal(uint32(0x7f800000), ExpMask)
	a.Equal(uint32(0x007fffff), MantMask)
	a.Equal(127, Bias)
	a.Equal(uint32(0xffffffff), SignMask|ExpMask|MantMask)
	a.Equal(uint32(0x3f800000), Bits(1))
}

func TestPow2(t *testing.T) {
	a := assert.New(t)
	for n := int32(MinExp); n <= MaxExp; n++ {
		a.Equal(float32(math.Ldexp(1, int(n))), Pow2(n), "n = %d", n)
		a.Equal(n, Exponent(Pow2(n)))
	}
}

func TestExponent(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		f   float32
		exp int32
	}{
		{1, 0},
		{1.99, 0},
		{2, 1},
		{0.5, -1},
		{-1000, 9},
		{math.MaxFloat32, 127},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.exp, Exponent(test.f))
		})
	}
}

func TestMulSign(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		x, y, res float32
	}{
		{3, 1, 3},
		{3, -1, -3},
		{3, float32(math.Copysign(0, -1)), -3},
		{-3, -1, 3},
		{-3, 1, -3},
		{0, -5, float32(math.Copysign(0, -1))},
		{0.5, -1e-30, -0.5},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(Bits(test.res), Bits(MulSign(test.x, test.y)))
		})
	}
}

func TestRounding(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		x, floor, even float32
		parity         int32
	}{
		{0.5, 0, 0, 0},
		{1.5, 1, 2, 1},
		{2.5, 2, 2, 0},
		{-0.5, -1, 0, 1},
		{-1.5, -2, -2, 0},
		{-3, -3, -3, 1},
		{12345.75, 12345, 12346, 1},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.floor, Floor(test.x))
			a.Equal(test.even, RoundToEven(test.x))
			a.Equal(test.parity, Parity(Floor(test.x)))
		})
	}
}

func TestFMA(t *testing.T) {
	a := assert.New(t)
	const (
		onePlusUlp = 1 + 1.0/(1<<23)
		// 4097 * 16773121 == 2^36 + 1
		p = 4097.0 / (1 << 12)
		q = 16773121.0 / (1 << 48)
	)
	tests := []struct {
		a, b, c, res float32
	}{
		{2, 3, 4, 10},
		{-2, 3, 4, -2},
		{0, 5, -1, -1},
		// a*b has more than 24 significant bits, the tail survives.
		{onePlusUlp, onePlusUlp, -(1 + 2.0/(1<<23)), 1.0 / (1 << 46)},
		// 1 + 2^-24 + 2^-60: rounding to float64 first would give a tie and round down.
		{p, q, 1, onePlusUlp},
		{-p, q, -1, -onePlusUlp},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, FMA(test.a, test.b, test.c))
		})
	}
	// a plain multiply-add rounds twice and misses the case above.
	pf, qf := float32(p), float32(q)
	a.NotEqual(float32(onePlusUlp), float32(float64(pf)*float64(qf)+1))
}

func BenchmarkFMA(b *testing.B) {
	var dummy float32
	x, y := float32(1.0001), float32(0.9999)
	for i := 0; i < b.N; i++ {
		dummy = FMA(x, y, dummy)
	}
	// this metric is just to prevent unwanted optimisations in calculations of `dummy.`
	b.ReportMetric(float64(dummy), "dummy_metric")
}

func BenchmarkMulAdd(b *testing.B) {
	var dummy float32
	x, y := float32(1.0001), float32(0.9999)
	for i := 0; i < b.N; i++ {
		dummy = x*y + dummy
	}
	// this metric is just to prevent unwanted optimisations in calculations of `dummy.`
	b.ReportMetric(float64(dummy), "dummy_metric")
}
