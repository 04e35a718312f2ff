package stats

import (
	"math"
	"testing"
)

func TestDescriptiveStats(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   Descriptives
	}{
		{
			name:   "empty input is all zeros",
			values: nil,
			want:   Descriptives{},
		},
		{
			name:   "single value has zero sd",
			values: []float64{4},
			want:   Descriptives{N: 1, Mean: 4, SD: 0, Min: 4, Max: 4, Median: 4},
		},
		{
			name:   "even count medians between middle values",
			values: []float64{1, 2, 3, 4},
			want:   Descriptives{N: 4, Mean: 2.5, SD: math.Sqrt(5.0 / 3.0), Min: 1, Max: 4, Median: 2.5},
		},
		{
			name:   "odd count takes middle of sorted order",
			values: []float64{7, 1, 4},
			want:   Descriptives{N: 3, Mean: 4, SD: 3, Min: 1, Max: 7, Median: 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DescriptiveStats(tt.values)
			if got.N != tt.want.N {
				t.Errorf("N = %d, want %d", got.N, tt.want.N)
			}
			approx(t, "Mean", got.Mean, tt.want.Mean)
			approx(t, "SD", got.SD, tt.want.SD)
			approx(t, "Min", got.Min, tt.want.Min)
			approx(t, "Max", got.Max, tt.want.Max)
			approx(t, "Median", got.Median, tt.want.Median)
		})
	}
}

func TestDescriptiveStatsDoesNotMutateInput(t *testing.T) {
	values := []float64{3, 1, 2}
	DescriptiveStats(values)
	if values[0] != 3 || values[1] != 1 || values[2] != 2 {
		t.Errorf("input slice was reordered: %v", values)
	}
}

func TestFrequencyDistribution(t *testing.T) {
	dist := FrequencyDistribution([]int{1, 1, 4, 7, 0, 8, -3})

	for v := 1; v <= 7; v++ {
		if _, ok := dist[v]; !ok {
			t.Errorf("bucket %d missing", v)
		}
	}
	if len(dist) != 7 {
		t.Errorf("expected exactly 7 buckets, got %d", len(dist))
	}
	if dist[1] != 2 || dist[4] != 1 || dist[7] != 1 {
		t.Errorf("unexpected counts: %v", dist)
	}
	if dist[2] != 0 || dist[3] != 0 || dist[5] != 0 || dist[6] != 0 {
		t.Errorf("empty buckets should be zero: %v", dist)
	}
}

func approx(t *testing.T, field string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("%s = %v, want %v", field, got, want)
	}
}
