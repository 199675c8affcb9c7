// Package summary computes and renders descriptive statistics for derived
// score columns: count, mean, sample standard deviation, min, quartiles, and
// max, skipping missing values.
package summary

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/stat"
)

// Stats holds the descriptive statistics of one score column. With Count of
// zero every float field is NaN; with Count of one, Std is NaN.
type Stats struct {
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
}

// Describe computes Stats over vals, ignoring NaN entries. Quartiles use
// linear interpolation between order statistics.
func Describe(vals []float64) Stats {
	var present []float64
	for _, v := range vals {
		if !math.IsNaN(v) {
			present = append(present, v)
		}
	}
	nan := math.NaN()
	if len(present) == 0 {
		return Stats{Mean: nan, Std: nan, Min: nan, Q1: nan, Median: nan, Q3: nan, Max: nan}
	}
	sort.Float64s(present)
	s := Stats{
		Count:  len(present),
		Mean:   stat.Mean(present, nil),
		Std:    nan,
		Min:    present[0],
		Q1:     quantile(present, 0.25),
		Median: quantile(present, 0.5),
		Q3:     quantile(present, 0.75),
		Max:    present[len(present)-1],
	}
	if len(present) > 1 {
		s.Std = stat.StdDev(present, nil)
	}
	return s
}

// quantile linearly interpolates between the order statistics of a sorted,
// non-empty sample.
func quantile(sorted []float64, q float64) float64 {
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	w := pos - float64(lo)
	return sorted[lo]*(1-w) + sorted[hi]*w
}

var rowLabels = []string{"count", "mean", "std", "min", "25%", "50%", "75%", "max"}

func (s Stats) row(label string) float64 {
	switch label {
	case "count":
		return float64(s.Count)
	case "mean":
		return s.Mean
	case "std":
		return s.Std
	case "min":
		return s.Min
	case "25%":
		return s.Q1
	case "50%":
		return s.Median
	case "75%":
		return s.Q3
	default:
		return s.Max
	}
}

// Render writes an aligned statistics block to w, one column per score name
// and one row per statistic, values rounded to two decimals.
func Render(w io.Writer, names []string, stats []Stats) error {
	cells := make([][]string, len(rowLabels))
	widths := make([]int, len(names))
	for i, name := range names {
		if len(name) > widths[i] {
			widths[i] = len(name)
		}
	}
	for ri, label := range rowLabels {
		cells[ri] = make([]string, len(names))
		for ci := range names {
			v := stats[ci].row(label)
			cell := "NaN"
			if !math.IsNaN(v) {
				cell = fmt.Sprintf("%.2f", v)
			}
			cells[ri][ci] = cell
			if len(cell) > widths[ci] {
				widths[ci] = len(cell)
			}
		}
	}

	labelWidth := 0
	for _, label := range rowLabels {
		if len(label) > labelWidth {
			labelWidth = len(label)
		}
	}

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", labelWidth))
	for i, name := range names {
		fmt.Fprintf(&b, "  %*s", widths[i], name)
	}
	b.WriteByte('\n')
	for ri, label := range rowLabels {
		fmt.Fprintf(&b, "%-*s", labelWidth, label)
		for ci := range names {
			fmt.Fprintf(&b, "  %*s", widths[ci], cells[ri][ci])
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}
