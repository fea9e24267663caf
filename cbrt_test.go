// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fastmath

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/avdva/fastmath/internal/ulp"
)

func TestCbrt(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		x   float32
		res float32
	}{
		{1, 1},
		{8, 2},
		{27, 3},
		{2, 1.2599211},
		{12345, 23.111618},
		{0.001, 0.1},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.LessOrEqual(ulp.Distance(test.res, Cbrt(test.x)), uint32(1))
			a.Equal(test.res, CbrtAccurate(test.x))
		})
	}
	a.Equal(float32(3), Cbrt(27))
}

func TestCbrtGrid(t *testing.T) {
	a := assert.New(t)
	for i := 100; i < 100000; i++ {
		x := float32(i) / 100
		want := float32(math.Cbrt(float64(x)))
		d := ulp.Distance(Cbrt(x), want)
		da := ulp.Distance(CbrtAccurate(x), want)
		if !a.LessOrEqual(d, uint32(1), "cbrt(%v)", x) || !a.LessOrEqual(da, d, "cbrt(%v)", x) {
			return
		}
	}
}

func TestCbrtWideRange(t *testing.T) {
	a := assert.New(t)
	for e := -120; e <= 120; e += 3 {
		for _, m := range []float64{1, 1.1, 1.2345, 1.37, 1.5, 1.75, 1.999} {
			x := float32(math.Ldexp(m, e))
			want := float32(math.Cbrt(float64(x)))
			a.LessOrEqual(ulp.Distance(Cbrt(x), want), uint32(1), "cbrt(%v)", x)
			a.Equal(want, CbrtAccurate(x), "cbrt(%v)", x)
		}
	}
}

func TestCubeResidual(t *testing.T) {
	a := assert.New(t)
	var worst, worstAccurate float64
	for i := 100; i < 100000; i += 37 {
		x := float32(i) / 100
		r := ulp.CubeResidual(Cbrt(x), x)
		ra := ulp.CubeResidual(CbrtAccurate(x), x)
		worst = math.Max(worst, r)
		worstAccurate = math.Max(worstAccurate, ra)
		a.LessOrEqual(r, 5.0, "cbrt(%v)", x)
		a.LessOrEqual(ra, 3.0, "cbrt(%v)", x)
	}
	t.Logf("max cube residual: %.3f ulp, accurate: %.3f ulp", worst, worstAccurate)
}

func TestCbrtConcurrent(t *testing.T) {
	r := require.New(t)
	want := make([]float32, 1000)
	for i := range want {
		want[i] = CbrtAccurate(float32(i+1) / 7)
	}
	g, _ := errgroup.WithContext(context.Background())
	for w := 0; w < 8; w++ {
		g.Go(func() error {
			for i := range want {
				if got := CbrtAccurate(float32(i+1) / 7); got != want[i] {
					return fmt.Errorf("cbrt(%v): got %v, want %v", float32(i+1)/7, got, want[i])
				}
			}
			return nil
		})
	}
	r.NoError(g.Wait())
}
