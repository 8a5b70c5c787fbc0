package services

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestQuantileLinearInterpolation(t *testing.T) {
	sorted := []float64{1, 2, 3, 4}

	tests := []struct {
		p    float64
		want float64
	}{
		{0, 1},
		{0.25, 1.75},
		{0.5, 2.5},
		{0.75, 3.25},
		{1, 4},
	}

	for _, tt := range tests {
		got := Quantile(sorted, tt.p)
		if !almostEqual(got, tt.want) {
			t.Errorf("Quantile(%v, %.2f) = %v; want %v", sorted, tt.p, got, tt.want)
		}
	}
}

func TestQuantileSingleValue(t *testing.T) {
	if got := Quantile([]float64{42}, 0.75); got != 42 {
		t.Errorf("Quantile single value: got %v, want 42", got)
	}
}

func TestQuantileOddLength(t *testing.T) {
	sorted := []float64{10, 20, 30, 40, 50}
	if got := Quantile(sorted, 0.5); !almostEqual(got, 30) {
		t.Errorf("median of %v: got %v, want 30", sorted, got)
	}
	// h = 0.25 * 4 = 1 — lands exactly on an element
	if got := Quantile(sorted, 0.25); !almostEqual(got, 20) {
		t.Errorf("q1 of %v: got %v, want 20", sorted, got)
	}
}

func TestSummarize(t *testing.T) {
	stats, ok := Summarize([]float64{4, 1, 3, 2})
	if !ok {
		t.Fatal("Summarize returned ok=false for non-empty input")
	}
	if stats.Min != 1 || stats.Max != 4 {
		t.Errorf("min/max: got %v/%v, want 1/4", stats.Min, stats.Max)
	}
	if !almostEqual(stats.Q1, 1.75) || !almostEqual(stats.Median, 2.5) || !almostEqual(stats.Q3, 3.25) {
		t.Errorf("quartiles: got %v/%v/%v, want 1.75/2.5/3.25", stats.Q1, stats.Median, stats.Q3)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	if _, ok := Summarize(nil); ok {
		t.Error("Summarize(nil) should return ok=false")
	}
}

func TestSummarizeDoesNotMutateInput(t *testing.T) {
	values := []float64{3, 1, 2}
	Summarize(values)
	if values[0] != 3 || values[1] != 1 || values[2] != 2 {
		t.Errorf("input was reordered: %v", values)
	}
}
