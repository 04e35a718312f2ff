package stats

import (
	"math"
	"testing"
)

var testConstructItems = map[string]map[string][]string{
	"PU": {
		"faculty": {"F-PU-1", "F-PU-2"},
		"student": {"S-PU-1", "S-PU-2"},
	},
	"BI": {
		"faculty": {"F-BI-1"},
		"student": {"S-BI-1"},
	},
}

var testGroups = []string{"faculty", "student"}

func TestAggregateByConstruct(t *testing.T) {
	respondents := []RespondentRow{
		{ID: "r1", StakeholderType: "faculty"},
		{ID: "r2", StakeholderType: "student"},
	}
	likert := []LikertRow{
		{RespondentID: "r1", ItemCode: "F-PU-1", Value: 6},
		{RespondentID: "r1", ItemCode: "F-PU-2", Value: 4},
		{RespondentID: "r1", ItemCode: "F-BI-1", Value: 7},
		{RespondentID: "r2", ItemCode: "S-PU-1", Value: 2},
		{RespondentID: "r2", ItemCode: "S-PU-2", Value: 3},
	}

	got := AggregateByConstruct(likert, respondents, testConstructItems, testGroups)

	pu := got["PU"]
	if len(pu["faculty"]) != 1 || math.Abs(pu["faculty"][0]-5) > 1e-9 {
		t.Errorf("faculty PU means = %v, want [5]", pu["faculty"])
	}
	if len(pu["student"]) != 1 || math.Abs(pu["student"][0]-2.5) > 1e-9 {
		t.Errorf("student PU means = %v, want [2.5]", pu["student"])
	}

	bi := got["BI"]
	if len(bi["faculty"]) != 1 || bi["faculty"][0] != 7 {
		t.Errorf("faculty BI means = %v, want [7]", bi["faculty"])
	}
	// r2 未作答 BI，不产生构念均值
	if len(bi["student"]) != 0 {
		t.Errorf("student BI means = %v, want empty", bi["student"])
	}
}

func TestAggregateByConstructPartialAnswers(t *testing.T) {
	respondents := []RespondentRow{{ID: "r1", StakeholderType: "faculty"}}
	// 两题构念只答了一题：均值只算已答的，而非补零
	likert := []LikertRow{{RespondentID: "r1", ItemCode: "F-PU-1", Value: 6}}

	got := AggregateByConstruct(likert, respondents, testConstructItems, testGroups)

	pu := got["PU"]["faculty"]
	if len(pu) != 1 || pu[0] != 6 {
		t.Errorf("partial construct mean = %v, want [6]", pu)
	}
}

func TestAggregateByConstructSkipsUnknownStakeholders(t *testing.T) {
	respondents := []RespondentRow{{ID: "r1", StakeholderType: "visitor"}}
	likert := []LikertRow{{RespondentID: "r1", ItemCode: "F-PU-1", Value: 6}}

	got := AggregateByConstruct(likert, respondents, testConstructItems, testGroups)

	for cID, byGroup := range got {
		for group, means := range byGroup {
			if len(means) != 0 {
				t.Errorf("%s/%s = %v, want empty", cID, group, means)
			}
		}
	}
}

func TestAggregateByConstructEmptySlicesPreInitialized(t *testing.T) {
	got := AggregateByConstruct(nil, nil, testConstructItems, testGroups)

	for cID := range testConstructItems {
		byGroup, ok := got[cID]
		if !ok {
			t.Fatalf("construct %s missing from result", cID)
		}
		for _, group := range testGroups {
			if byGroup[group] == nil {
				t.Errorf("%s/%s should be an empty slice, not nil", cID, group)
			}
		}
	}
}
