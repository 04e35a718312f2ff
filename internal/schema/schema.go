// Package schema holds the immutable AI-Eng-TAM instrument definition:
// Likert sections (A, B, C) with constructs and items per stakeholder group,
// the Section D tool-usage categories with per-group tool lists, and the
// demographic field schemas. All lookups are read-only configuration tables;
// nothing here is persisted.
package schema

type Item struct {
	Code string `json:"code"`
	Text string `json:"text"`
}

type Construct struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Items []Item `json:"items"`
}

type Section struct {
	Key         string      `json:"key"`
	Title       string      `json:"title"`
	Instruction string      `json:"instruction"`
	Constructs  []Construct `json:"constructs"`
}

type LikertLabel struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

var LikertLabels = []LikertLabel{
	{1, "Strongly Disagree"},
	{2, "Disagree"},
	{3, "Slightly Disagree"},
	{4, "Neutral"},
	{5, "Slightly Agree"},
	{6, "Agree"},
	{7, "Strongly Agree"},
}

// SectionKeys 量表节的固定顺序。
var SectionKeys = []string{"A", "B", "C"}

// Groups 三个固定受访群体。
var Groups = []string{"faculty", "student", "practitioner"}

var likertByGroup = map[string][]Section{
	"faculty":      facultySections,
	"student":      studentSections,
	"practitioner": practitionerSections,
}

// LikertSections returns the ordered Likert sections (A, B, C) for a group.
func LikertSections(group string) ([]Section, bool) {
	s, ok := likertByGroup[group]
	return s, ok
}

// AllItemCodes returns every item code for a group in section/construct/item order.
func AllItemCodes(group string) []string {
	sections, ok := likertByGroup[group]
	if !ok {
		return nil
	}
	var codes []string
	for _, sec := range sections {
		for _, c := range sec.Constructs {
			for _, it := range c.Items {
				codes = append(codes, it.Code)
			}
		}
	}
	return codes
}

// ItemSection resolves an item code to its section key for a group.
func ItemSection(group, code string) (string, bool) {
	sections, ok := likertByGroup[group]
	if !ok {
		return "", false
	}
	for _, sec := range sections {
		for _, c := range sec.Constructs {
			for _, it := range c.Items {
				if it.Code == code {
					return sec.Key, true
				}
			}
		}
	}
	return "", false
}

// ConstructItems builds constructID -> group -> item codes across all groups.
// Item sets differ slightly by group even when construct ids match.
func ConstructItems() map[string]map[string][]string {
	out := make(map[string]map[string][]string)
	for group, sections := range likertByGroup {
		for _, sec := range sections {
			for _, c := range sec.Constructs {
				if out[c.ID] == nil {
					out[c.ID] = make(map[string][]string)
				}
				codes := make([]string, 0, len(c.Items))
				for _, it := range c.Items {
					codes = append(codes, it.Code)
				}
				out[c.ID][group] = codes
			}
		}
	}
	return out
}

// ConstructOrder 构念的固定展示顺序。
var ConstructOrder = []string{
	"PU-L", "PU-E", "PEU", "EJ", "BI",
	"MU", "LP", "GB", "OA", "EV", "ET",
	"AR", "CR",
}

var ConstructNames = map[string]string{
	"PU-L": "Perceived Usefulness—Learning",
	"PU-E": "Perceived Usefulness—Efficiency",
	"PEU":  "Perceived Ease of Use/Integration",
	"EJ":   "Epistemic Judgment",
	"BI":   "Behavioral Intention",
	"MU":   "Modes of AI Use",
	"LP":   "Learning/Workflow Placement",
	"GB":   "Guardrails & Boundaries",
	"OA":   "Ownership & Accountability",
	"EV":   "Evaluation & Verification",
	"ET":   "Ethics & Responsible Use",
	"AR":   "AI Readiness",
	"CR":   "Career/Workforce Readiness",
}
