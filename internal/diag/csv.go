// Copyright 2020 Aleksandr Demakin. All rights reserved.

package diag

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
)

var csvHeader = []string{"x", "got", "want", "ulp", "err", "residual"}

// WriteCSV writes samples as x, got, want, ulp, err and residual columns.
// The residual column is empty for functions other than cube roots.
func WriteCSV(w io.Writer, samples []Sample) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("csv header: %w", err)
	}
	row := make([]string, len(csvHeader))
	for _, s := range samples {
		row[0] = strconv.FormatFloat(float64(s.X), 'g', -1, 32)
		row[1] = strconv.FormatFloat(float64(s.Got), 'g', -1, 32)
		row[2] = strconv.FormatFloat(s.Want, 'g', -1, 64)
		row[3] = strconv.FormatUint(uint64(s.ULP), 10)
		row[4] = strconv.FormatFloat(s.Err, 'f', 6, 64)
		row[5] = ""
		if !math.IsNaN(s.Residual) {
			row[5] = strconv.FormatFloat(s.Residual, 'f', 6, 64)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
