// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package diag measures the accuracy of the fastmath approximations
// against the float64 functions of the math package.
package diag

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/avdva/fastmath"
)

// maxPoints limits the number of points in a single sweep.
const maxPoints = 1 << 24

var (
	// ErrBadDomain is returned for empty domains, non-positive steps
	// and domains with more than maxPoints points.
	ErrBadDomain = errors.New("diag: bad domain")
	// ErrUnknownFunc is returned by Lookup.
	ErrUnknownFunc = errors.New("diag: unknown function")
)

// Domain is a grid of points Lo, Lo+Step, ... below Hi.
type Domain struct {
	Lo, Hi, Step float64
}

// Len returns the number of points in d.
func (d Domain) Len() (int, error) {
	if !(d.Step > 0) || !(d.Hi > d.Lo) || math.IsInf(d.Lo, 0) || math.IsInf(d.Hi, 0) {
		return 0, fmt.Errorf("%w: [%v, %v) step %v", ErrBadDomain, d.Lo, d.Hi, d.Step)
	}
	n := math.Ceil((d.Hi - d.Lo) / d.Step)
	if n > maxPoints {
		return 0, fmt.Errorf("%w: %.0f points", ErrBadDomain, n)
	}
	return int(n), nil
}

// Or returns def if d is the zero Domain, and d otherwise.
func (d Domain) Or(def Domain) Domain {
	if d == (Domain{}) {
		return def
	}
	return d
}

// At returns the i-th point of d rounded to float32.
func (d Domain) At(i int) float32 {
	return float32(d.Lo + float64(i)*d.Step)
}

// Func is an approximation paired with its reference.
type Func struct {
	Name   string
	Approx func(float32) float32
	Ref    func(float64) float64
	// Domain is the default domain of the function.
	Domain Domain
	// Cube is set for cube roots, their samples carry the exact cube residual.
	Cube bool
}

var registry = []Func{
	{Name: "log2", Approx: fastmath.Log2, Ref: math.Log2, Domain: Domain{1, 1000, 0.01}},
	{Name: "exp2", Approx: fastmath.Exp2, Ref: math.Exp2, Domain: Domain{-10, 10, 0.001}},
	{Name: "sin", Approx: fastmath.Sin, Ref: math.Sin, Domain: Domain{-100, 100, 0.1}},
	{Name: "cos", Approx: fastmath.Cos, Ref: math.Cos, Domain: Domain{-100, 100, 0.1}},
	{Name: "cbrt", Approx: fastmath.Cbrt, Ref: math.Cbrt, Domain: Domain{1, 1000, 0.01}, Cube: true},
	{Name: "cbrt-accurate", Approx: fastmath.CbrtAccurate, Ref: math.Cbrt, Domain: Domain{1, 1000, 0.01}, Cube: true},
}

// Functions returns all known functions.
func Functions() []Func {
	return append([]Func(nil), registry...)
}

// Lookup returns functions by their names, case insensitive.
func Lookup(names ...string) ([]Func, error) {
	result := make([]Func, 0, len(names))
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		i := slices.IndexFunc(registry, func(f Func) bool { return f.Name == name })
		if i < 0 {
			return nil, fmt.Errorf("%w: %q", ErrUnknownFunc, name)
		}
		result = append(result, registry[i])
	}
	return result, nil
}
