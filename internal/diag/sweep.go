// Copyright 2020 Aleksandr Demakin. All rights reserved.

package diag

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/avdva/fastmath/internal/ulp"
)

// checkEvery is how often Sweep looks at the context.
const checkEvery = 4096

// Sample is a single measurement.
type Sample struct {
	X    float32
	Got  float32
	Want float64
	// ULP is the distance between Got and Want rounded to float32.
	ULP uint32
	// Err is |Got - Want| in ulps of Want, without rounding Want first.
	Err float64
	// Residual is |Got^3 - X| in ulps of X for cube roots, NaN otherwise.
	Residual float64
}

// Sweep evaluates f at every point of d.
func Sweep(ctx context.Context, f Func, d Domain) ([]Sample, error) {
	n, err := d.Len()
	if err != nil {
		return nil, err
	}
	samples := make([]Sample, n)
	for i := range samples {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("%s sweep: %w", f.Name, err)
			}
		}
		x := d.At(i)
		s := Sample{
			X:        x,
			Got:      f.Approx(x),
			Want:     f.Ref(float64(x)),
			Residual: math.NaN(),
		}
		s.ULP = ulp.Distance(s.Got, float32(s.Want))
		s.Err = ulp.Error(s.Got, s.Want)
		if f.Cube {
			s.Residual = ulp.CubeResidual(s.Got, x)
		}
		samples[i] = s
	}
	return samples, nil
}

// SweepAll sweeps every function concurrently and summarizes the results.
// A zero d means the default domain of each function.
func SweepAll(ctx context.Context, funcs []Func, d Domain) ([]Stats, error) {
	result := make([]Stats, len(funcs))
	g, ctx := errgroup.WithContext(ctx)
	for i, f := range funcs {
		dom := d.Or(f.Domain)
		g.Go(func() error {
			samples, err := Sweep(ctx, f, dom)
			if err != nil {
				return err
			}
			result[i] = Summarize(f.Name, samples)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}
