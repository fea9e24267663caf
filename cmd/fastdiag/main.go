// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Command fastdiag prints the accuracy of the fastmath approximations.
//
// Usage:
//
//	fastdiag [flags] [function ...]
//
// Without arguments it measures all functions on their default domains.
//
// Examples:
//
//	fastdiag sin cos
//	fastdiag -lo 1 -hi 1e6 -step 0.5 cbrt cbrt-accurate
//	fastdiag -csv out log2
//	fastdiag -list
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"text/tabwriter"

	"github.com/avdva/fastmath/internal/diag"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("fastdiag: ")

	list := flag.Bool("list", false, "list available functions")
	csvDir := flag.String("csv", "", "write samples of every function into `dir`/<name>.csv")
	lo := flag.Float64("lo", 0, "lower bound of the domain, overrides the default one together with -hi")
	hi := flag.Float64("hi", 0, "upper bound of the domain")
	step := flag.Float64("step", 0, "distance between points, requires -lo and -hi; if zero, a thousandth of the domain")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: fastdiag [flags] [function ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the error of fast approximations in ulps.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	funcs := diag.Functions()
	if flag.NArg() > 0 {
		var err error
		if funcs, err = diag.Lookup(flag.Args()...); err != nil {
			log.Fatalf("%v (use -list to see available)", err)
		}
	}

	d, err := domainFromFlags(*lo, *hi, *step)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.Printf("%v", diag.Hardware())
	var stats []diag.Stats
	if *csvDir != "" {
		stats, err = sweepToCSV(ctx, *csvDir, funcs, d)
	} else {
		stats, err = diag.SweepAll(ctx, funcs, d)
	}
	if err != nil {
		log.Fatal(err)
	}
	if err := printStats(stats); err != nil {
		log.Fatal(err)
	}
}

var errStepWithoutBounds = errors.New("-step requires -lo and -hi")

// domainFromFlags returns the zero Domain, meaning the default domain of every
// function, unless -lo or -hi is set.
func domainFromFlags(lo, hi, step float64) (diag.Domain, error) {
	if lo == 0 && hi == 0 {
		if step != 0 {
			return diag.Domain{}, errStepWithoutBounds
		}
		return diag.Domain{}, nil
	}
	d := diag.Domain{Lo: lo, Hi: hi, Step: step}
	if d.Step == 0 {
		d.Step = (d.Hi - d.Lo) / 1000
	}
	if _, err := d.Len(); err != nil {
		return diag.Domain{}, err
	}
	return d, nil
}

func printList() {
	for _, f := range diag.Functions() {
		fmt.Printf("%s\t[%g, %g) step %g\n", f.Name, f.Domain.Lo, f.Domain.Hi, f.Domain.Step)
	}
}

// sweepToCSV sweeps functions one by one, writes their samples into dir
// and summarizes them.
func sweepToCSV(ctx context.Context, dir string, funcs []diag.Func, d diag.Domain) ([]diag.Stats, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("csv dir: %w", err)
	}
	stats := make([]diag.Stats, 0, len(funcs))
	for _, f := range funcs {
		samples, err := diag.Sweep(ctx, f, d.Or(f.Domain))
		if err != nil {
			return nil, err
		}
		if err := writeFile(filepath.Join(dir, f.Name+".csv"), samples); err != nil {
			return nil, err
		}
		stats = append(stats, diag.Summarize(f.Name, samples))
	}
	return stats, nil
}

func writeFile(name string, samples []diag.Sample) error {
	file, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("csv: %w", err)
	}
	if err := diag.WriteCSV(file, samples); err != nil {
		file.Close()
		return fmt.Errorf("%s: %w", name, err)
	}
	return file.Close()
}

func printStats(stats []diag.Stats) error {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Function\tSamples\tExact\tMax ULP\tWorst x\tMean ULP\tP99 ULP\tMax err\tMax residual\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "--------\t-------\t-----\t-------\t-------\t--------\t-------\t-------\t------------\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	for _, st := range stats {
		if _, err := fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%g\t%s\t%d\t%.3f\t%s\n",
			st.Name,
			st.Count,
			st.Exact,
			st.MaxULP,
			st.WorstX,
			st.MeanString(),
			st.P99ULP,
			st.MaxErr,
			st.ResidualString(),
		); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}
