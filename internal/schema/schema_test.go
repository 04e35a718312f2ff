package schema

import "testing"

func TestItemCountsPerGroup(t *testing.T) {
	counts := map[string]int{
		"faculty":      50,
		"student":      45,
		"practitioner": 49,
	}
	for group, want := range counts {
		if got := len(AllItemCodes(group)); got != want {
			t.Errorf("%s: %d items, want %d", group, got, want)
		}
	}
}

func TestItemCodesUniqueWithinGroup(t *testing.T) {
	for _, group := range Groups {
		seen := make(map[string]bool)
		for _, code := range AllItemCodes(group) {
			if seen[code] {
				t.Errorf("%s: duplicate item code %q", group, code)
			}
			seen[code] = true
		}
	}
}

func TestEveryItemBelongsToExactlyOneConstruct(t *testing.T) {
	constructItems := ConstructItems()
	for _, group := range Groups {
		owner := make(map[string]string)
		for cID, byGroup := range constructItems {
			for _, code := range byGroup[group] {
				if prev, ok := owner[code]; ok {
					t.Errorf("%s: item %q in both %q and %q", group, code, prev, cID)
				}
				owner[code] = cID
			}
		}
		for _, code := range AllItemCodes(group) {
			if _, ok := owner[code]; !ok {
				t.Errorf("%s: item %q not assigned to any construct", group, code)
			}
		}
	}
}

func TestSectionKeys(t *testing.T) {
	for _, group := range Groups {
		sections, ok := LikertSections(group)
		if !ok {
			t.Fatalf("no sections for %s", group)
		}
		if len(sections) != 3 {
			t.Fatalf("%s: %d sections, want 3", group, len(sections))
		}
		for i, key := range []string{"A", "B", "C"} {
			if sections[i].Key != key {
				t.Errorf("%s: section %d key = %q, want %q", group, i, sections[i].Key, key)
			}
		}
	}
}

func TestItemSectionConsistent(t *testing.T) {
	for _, group := range Groups {
		sections, _ := LikertSections(group)
		for _, sec := range sections {
			for _, construct := range sec.Constructs {
				for _, item := range construct.Items {
					got, ok := ItemSection(group, item.Code)
					if !ok || got != sec.Key {
						t.Errorf("%s: ItemSection(%q) = %q,%v, want %q", group, item.Code, got, ok, sec.Key)
					}
				}
			}
		}
	}
}

func TestLikertLabels(t *testing.T) {
	if len(LikertLabels) != 7 {
		t.Fatalf("%d labels, want 7", len(LikertLabels))
	}
	for i, l := range LikertLabels {
		if l.Value != i+1 {
			t.Errorf("label %d has value %d", i, l.Value)
		}
	}
}

func TestCategories(t *testing.T) {
	cats := Categories()
	if len(cats) != 9 {
		t.Fatalf("%d categories, want 9", len(cats))
	}
	for _, c := range cats {
		if !ValidCategory(c.ID) {
			t.Errorf("ValidCategory(%q) = false", c.ID)
		}
	}
	if ValidCategory("Quantum") {
		t.Error("ValidCategory accepted an unknown id")
	}

	// 每组每个类别都要有工具清单
	for _, group := range Groups {
		section, ok := ToolUsageSectionFor(group)
		if !ok {
			t.Fatalf("no tool usage section for %s", group)
		}
		if len(section.Categories) != 9 {
			t.Fatalf("%s: %d categories, want 9", group, len(section.Categories))
		}
		for _, cat := range section.Categories {
			if len(cat.Tools) == 0 {
				t.Errorf("%s/%s: empty tool list", group, cat.ID)
			}
		}
	}
}

func TestConstructOrderCovered(t *testing.T) {
	constructItems := ConstructItems()
	if len(ConstructOrder) != 13 {
		t.Fatalf("%d constructs, want 13", len(ConstructOrder))
	}
	for _, id := range ConstructOrder {
		if _, ok := constructItems[id]; !ok {
			t.Errorf("construct %q has no item mapping", id)
		}
		if ConstructNames[id] == "" {
			t.Errorf("construct %q has no display name", id)
		}
	}
}

func TestKnownDemographicField(t *testing.T) {
	if !KnownDemographicField("faculty", "engineering_discipline") {
		t.Error("engineering_discipline should be known for faculty")
	}
	if !KnownDemographicField("faculty", "institution_type_other") {
		t.Error("other-fields should be accepted")
	}
	if !KnownDemographicField("student", "institution_or_company") {
		t.Error("institution_or_company is shared across groups")
	}
	if KnownDemographicField("faculty", "shoe_size") {
		t.Error("unknown field accepted")
	}
	if KnownDemographicField("student", "years_in_academia") {
		t.Error("faculty-only field accepted for student")
	}
}
