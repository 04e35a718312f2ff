package stats

import (
	"fmt"
	"math"
)

// NeutralHeatmapColor 无数据时的中性灰。
const NeutralHeatmapColor = "#f3f4f6"

// HeatmapColor maps a construct mean on the 1-7 scale onto the dashboard's
// two-segment ramp: red (1) to yellow (4) to green (7). Nil means no data.
func HeatmapColor(mean *float64) string {
	if mean == nil {
		return NeutralHeatmapColor
	}
	t := (*mean - 1) / 6
	if t <= 0.5 {
		r := 220
		g := int(math.Round(80 + t*2*160))
		b := 60
		return fmt.Sprintf("rgb(%d, %d, %d)", r, g, b)
	}
	r := int(math.Round(220 - (t-0.5)*2*160))
	g := int(math.Round(200 + (t-0.5)*2*40))
	b := 60
	return fmt.Sprintf("rgb(%d, %d, %d)", r, g, b)
}
