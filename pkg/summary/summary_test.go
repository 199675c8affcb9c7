package summary

import (
	"math"
	"strings"
	"testing"
)

func TestDescribe(t *testing.T) {
	nan := math.NaN()
	s := Describe([]float64{1, 2, 3, 4, nan})
	if s.Count != 4 {
		t.Errorf("Count = %d, want 4", s.Count)
	}
	if s.Mean != 2.5 {
		t.Errorf("Mean = %v, want 2.5", s.Mean)
	}
	if s.Min != 1 || s.Max != 4 {
		t.Errorf("Min/Max = %v/%v, want 1/4", s.Min, s.Max)
	}
	// Linear interpolation between order statistics.
	if s.Q1 != 1.75 {
		t.Errorf("Q1 = %v, want 1.75", s.Q1)
	}
	if s.Median != 2.5 {
		t.Errorf("Median = %v, want 2.5", s.Median)
	}
	if s.Q3 != 3.25 {
		t.Errorf("Q3 = %v, want 3.25", s.Q3)
	}
	// Sample standard deviation of 1..4.
	want := math.Sqrt(5.0 / 3.0)
	if math.Abs(s.Std-want) > 1e-12 {
		t.Errorf("Std = %v, want %v", s.Std, want)
	}
}

func TestDescribeEmpty(t *testing.T) {
	s := Describe([]float64{math.NaN(), math.NaN()})
	if s.Count != 0 {
		t.Errorf("Count = %d, want 0", s.Count)
	}
	for name, v := range map[string]float64{
		"Mean": s.Mean, "Std": s.Std, "Min": s.Min, "Median": s.Median, "Max": s.Max,
	} {
		if !math.IsNaN(v) {
			t.Errorf("%s = %v, want NaN", name, v)
		}
	}
}

func TestDescribeSingle(t *testing.T) {
	s := Describe([]float64{28})
	if s.Count != 1 || s.Mean != 28 || s.Min != 28 || s.Max != 28 || s.Median != 28 {
		t.Errorf("single value stats = %+v", s)
	}
	if !math.IsNaN(s.Std) {
		t.Errorf("Std of a single value = %v, want NaN", s.Std)
	}
}

func TestRender(t *testing.T) {
	var b strings.Builder
	stats := []Stats{
		Describe([]float64{28, 21, math.NaN()}),
		Describe([]float64{math.NaN(), math.NaN(), math.NaN()}),
	}
	if err := Render(&b, []string{"pwb_subscale_score", "fact_g_total"}, stats); err != nil {
		t.Fatal(err)
	}
	out := b.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 9 {
		t.Fatalf("Render produced %d lines, want 9:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "pwb_subscale_score") || !strings.Contains(lines[0], "fact_g_total") {
		t.Errorf("header line = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "count") || !strings.Contains(lines[1], "2.00") {
		t.Errorf("count line = %q", lines[1])
	}
	if !strings.Contains(lines[2], "24.50") {
		t.Errorf("mean line = %q", lines[2])
	}
	if !strings.Contains(lines[2], "NaN") {
		t.Errorf("mean line should carry NaN for the empty column: %q", lines[2])
	}
}
