package stats

import (
	"gonum.org/v1/gonum/stat/distuv"
)

// AnovaResult F 与 P 在退化输入下为 null（JSON），用指针表达。
type AnovaResult struct {
	F         *float64 `json:"F"`
	P         *float64 `json:"p"`
	DFBetween int      `json:"dfBetween"`
	DFWithin  int      `json:"dfWithin"`
}

// OneWayANOVA compares group means across stakeholder groups.
//
// Degenerate inputs follow the dashboard contract: fewer than two non-empty
// groups, N <= k, or dfWithin <= 0 all yield null F/p with the degrees of
// freedom computed so far; zero within-group variance yields F = 0 rather
// than NaN or infinity.
func OneWayANOVA(groups map[string][]float64) AnovaResult {
	var arrays [][]float64
	for _, g := range groups {
		if len(g) > 0 {
			arrays = append(arrays, g)
		}
	}

	if len(arrays) < 2 {
		return AnovaResult{DFBetween: 0, DFWithin: 0}
	}

	k := len(arrays)
	n := 0
	for _, g := range arrays {
		n += len(g)
	}

	if n <= k {
		return AnovaResult{DFBetween: k - 1, DFWithin: 0}
	}

	var grandSum float64
	for _, g := range arrays {
		for _, v := range g {
			grandSum += v
		}
	}
	grandMean := grandSum / float64(n)

	var ssBetween, ssWithin float64
	for _, g := range arrays {
		var sum float64
		for _, v := range g {
			sum += v
		}
		gMean := sum / float64(len(g))

		d := gMean - grandMean
		ssBetween += float64(len(g)) * d * d

		for _, v := range g {
			dv := v - gMean
			ssWithin += dv * dv
		}
	}

	dfBetween := k - 1
	dfWithin := n - k

	if dfWithin <= 0 {
		return AnovaResult{DFBetween: dfBetween, DFWithin: dfWithin}
	}

	msBetween := ssBetween / float64(dfBetween)
	msWithin := ssWithin / float64(dfWithin)

	f := 0.0
	if msWithin > 0 {
		f = msBetween / msWithin
	}

	fDist := distuv.F{D1: float64(dfBetween), D2: float64(dfWithin)}
	p := 1 - fDist.CDF(f)

	return AnovaResult{F: &f, P: &p, DFBetween: dfBetween, DFWithin: dfWithin}
}
