package stats

import "testing"

func TestHeatmapColor(t *testing.T) {
	tests := []struct {
		name string
		mean float64
		want string
	}{
		{"scale minimum is red", 1, "rgb(220, 80, 60)"},
		{"midpoint is yellow", 4, "rgb(220, 240, 60)"},
		{"scale maximum is green", 7, "rgb(60, 240, 60)"},
		{"lower segment interpolates green channel", 2.5, "rgb(220, 160, 60)"},
		{"upper segment interpolates red channel", 5.5, "rgb(140, 220, 60)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HeatmapColor(&tt.mean); got != tt.want {
				t.Errorf("HeatmapColor(%v) = %q, want %q", tt.mean, got, tt.want)
			}
		})
	}
}

func TestHeatmapColorNilMean(t *testing.T) {
	if got := HeatmapColor(nil); got != NeutralHeatmapColor {
		t.Errorf("HeatmapColor(nil) = %q, want %q", got, NeutralHeatmapColor)
	}
}
