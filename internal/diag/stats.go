// Copyright 2020 Aleksandr Demakin. All rights reserved.

package diag

import (
	"math"

	"github.com/robaho/fixed"
	"golang.org/x/exp/slices"
)

// Stats summarizes the samples of one function.
type Stats struct {
	Name    string
	Count   int
	Exact   int
	MaxULP  uint32
	WorstX  float32
	MeanULP float64
	P99ULP  uint32
	// MaxErr is the largest fractional error against the unrounded reference.
	MaxErr float64
	// MaxResidual is the largest cube residual, NaN if there is none.
	MaxResidual float64
}

// Summarize computes stats over samples.
func Summarize(name string, samples []Sample) Stats {
	st := Stats{Name: name, Count: len(samples), MaxResidual: math.NaN()}
	if len(samples) == 0 {
		return st
	}
	ulps := make([]uint32, len(samples))
	var sum float64
	for i, s := range samples {
		ulps[i] = s.ULP
		sum += float64(s.ULP)
		st.MaxErr = math.Max(st.MaxErr, s.Err)
		if s.ULP == 0 {
			st.Exact++
		}
		if s.ULP > st.MaxULP || i == 0 {
			st.MaxULP, st.WorstX = s.ULP, s.X
		}
		if !math.IsNaN(s.Residual) && (math.IsNaN(st.MaxResidual) || s.Residual > st.MaxResidual) {
			st.MaxResidual = s.Residual
		}
	}
	st.MeanULP = sum / float64(len(samples))
	slices.Sort(ulps)
	st.P99ULP = ulps[(len(ulps)-1)*99/100]
	return st
}

// MeanString returns MeanULP with three decimal places.
func (st Stats) MeanString() string {
	return fixed.NewF(st.MeanULP).StringN(3)
}

// ResidualString returns MaxResidual with three decimal places, or "-".
func (st Stats) ResidualString() string {
	if math.IsNaN(st.MaxResidual) {
		return "-"
	}
	return fixed.NewF(st.MaxResidual).StringN(3)
}
