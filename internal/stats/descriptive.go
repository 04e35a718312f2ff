// Package stats is the pure statistics engine for the survey dashboard.
// All functions are stateless transformations over in-memory snapshots;
// no I/O, no persistence.
package stats

import (
	"math"
	"sort"
)

type Descriptives struct {
	N      int     `json:"n"`
	Mean   float64 `json:"mean"`
	SD     float64 `json:"sd"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Median float64 `json:"median"`
}

// DescriptiveStats 空输入返回全零；sd 为样本标准差（n-1），n<=1 时为 0。
func DescriptiveStats(values []float64) Descriptives {
	n := len(values)
	if n == 0 {
		return Descriptives{}
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(n)

	sd := 0.0
	if n > 1 {
		var ss float64
		for _, v := range values {
			d := v - mean
			ss += d * d
		}
		sd = math.Sqrt(ss / float64(n-1))
	}

	var median float64
	if n%2 == 1 {
		median = sorted[n/2]
	} else {
		median = (sorted[n/2-1] + sorted[n/2]) / 2
	}

	return Descriptives{
		N:      n,
		Mean:   mean,
		SD:     sd,
		Min:    sorted[0],
		Max:    sorted[n-1],
		Median: median,
	}
}

// FrequencyDistribution 七个桶恒存在（零填充）；[1,7] 之外的值静默忽略。
func FrequencyDistribution(values []int) map[int]int {
	dist := map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0, 6: 0, 7: 0}
	for _, v := range values {
		if v >= 1 && v <= 7 {
			dist[v]++
		}
	}
	return dist
}
