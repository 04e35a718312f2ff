package stats

import (
	"math"
	"testing"
)

func TestOneWayANOVA(t *testing.T) {
	groups := map[string][]float64{
		"faculty":      {1, 2, 3},
		"student":      {2, 3, 4},
		"practitioner": {3, 4, 5},
	}

	got := OneWayANOVA(groups)

	if got.DFBetween != 2 || got.DFWithin != 6 {
		t.Fatalf("df = (%d, %d), want (2, 6)", got.DFBetween, got.DFWithin)
	}
	if got.F == nil || got.P == nil {
		t.Fatal("F/p should be set for a well-formed input")
	}
	// ssBetween = 6, ssWithin = 6, msBetween = 3, msWithin = 1
	if math.Abs(*got.F-3) > 1e-9 {
		t.Errorf("F = %v, want 3", *got.F)
	}
	// d1=2 时 F 分布有闭式解: p = (1 + 2F/d2)^(-d2/2) = 2^-3
	if math.Abs(*got.P-0.125) > 1e-9 {
		t.Errorf("p = %v, want 0.125", *got.P)
	}
}

func TestOneWayANOVAThreeGroups(t *testing.T) {
	got := OneWayANOVA(map[string][]float64{
		"faculty":      {6, 7, 7},
		"student":      {3, 4, 5},
		"practitioner": {5, 5, 6},
	})

	if got.DFBetween != 2 || got.DFWithin != 6 {
		t.Fatalf("df = (%d, %d), want (2, 6)", got.DFBetween, got.DFWithin)
	}
	if got.F == nil || got.P == nil {
		t.Fatal("expected non-null F/p")
	}
	if *got.F <= 0 {
		t.Errorf("F = %v, want > 0", *got.F)
	}
	if *got.P <= 0 || *got.P >= 1 {
		t.Errorf("p = %v, want in (0, 1)", *got.P)
	}
}

func TestOneWayANOVAZeroWithinVariance(t *testing.T) {
	got := OneWayANOVA(map[string][]float64{
		"a": {3, 3},
		"b": {5, 5},
	})

	if got.F == nil || got.P == nil {
		t.Fatal("expected non-null F/p")
	}
	if *got.F != 0 {
		t.Errorf("F = %v, want 0 when within-group variance is zero", *got.F)
	}
	if math.Abs(*got.P-1) > 1e-9 {
		t.Errorf("p = %v, want 1", *got.P)
	}
}

func TestOneWayANOVADegenerateInputs(t *testing.T) {
	tests := []struct {
		name          string
		groups        map[string][]float64
		wantDFBetween int
		wantDFWithin  int
	}{
		{
			name:   "no groups",
			groups: map[string][]float64{},
		},
		{
			name:   "single non-empty group",
			groups: map[string][]float64{"a": {1, 2}, "b": {}},
		},
		{
			name:          "one observation per group",
			groups:        map[string][]float64{"a": {1}, "b": {2}},
			wantDFBetween: 1,
			wantDFWithin:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OneWayANOVA(tt.groups)
			if got.F != nil || got.P != nil {
				t.Error("F/p should be null for degenerate input")
			}
			if got.DFBetween != tt.wantDFBetween || got.DFWithin != tt.wantDFWithin {
				t.Errorf("df = (%d, %d), want (%d, %d)",
					got.DFBetween, got.DFWithin, tt.wantDFBetween, tt.wantDFWithin)
			}
		})
	}
}

func TestOneWayANOVAIgnoresEmptyGroups(t *testing.T) {
	with := OneWayANOVA(map[string][]float64{
		"a": {1, 2, 3},
		"b": {4, 5, 6},
		"c": {},
	})
	without := OneWayANOVA(map[string][]float64{
		"a": {1, 2, 3},
		"b": {4, 5, 6},
	})

	if with.DFBetween != without.DFBetween || with.DFWithin != without.DFWithin {
		t.Errorf("empty group changed degrees of freedom: (%d,%d) vs (%d,%d)",
			with.DFBetween, with.DFWithin, without.DFBetween, without.DFWithin)
	}
	if *with.F != *without.F {
		t.Errorf("empty group changed F: %v vs %v", *with.F, *without.F)
	}
}
