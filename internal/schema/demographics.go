package schema

// DemographicField 人口学字段模式。Required 当前全部为 false（问卷为完全自愿填写），
// 但提交校验始终遵循该标志。
type DemographicField struct {
	ID         string   `json:"id"`
	Label      string   `json:"label"`
	Type       string   `json:"type"` // text | select | select-other
	Options    []string `json:"options,omitempty"`
	OtherField string   `json:"other_field,omitempty"`
	Required   bool     `json:"required"`
}

var demographicsByGroup = map[string][]DemographicField{
	"faculty": {
		{ID: "engineering_discipline", Label: "Engineering discipline(s)", Type: "text"},
		{ID: "years_in_academia", Label: "Years in academia", Type: "select", Options: []string{"0–5", "6–10", "11–20", "21+"}},
		{ID: "primary_role", Label: "Primary role", Type: "select", Options: []string{"Teaching", "Research", "Administration", "Combination"}},
		{ID: "institution_type", Label: "Institution type", Type: "select-other", Options: []string{"R1", "R2", "Teaching-focused"}, OtherField: "institution_type_other"},
		{ID: "prior_ai_experience", Label: "Prior experience with AI tools", Type: "select", Options: []string{"None", "Limited", "Moderate", "Extensive"}},
		{ID: "primary_ai_context", Label: "Primary context of AI use", Type: "select", Options: []string{"Teaching", "Research", "Assessment", "Administration", "Personal productivity"}},
	},
	"student": {
		{ID: "major_program", Label: "Major / Program", Type: "text"},
		{ID: "year_in_program", Label: "Year in program", Type: "select", Options: []string{"Freshman", "Sophomore", "Junior", "Senior", "Graduate"}},
		{ID: "prior_ai_experience", Label: "Prior experience with AI tools", Type: "select", Options: []string{"None", "Limited", "Moderate", "Extensive"}},
		{ID: "primary_ai_context", Label: "Primary context of AI use", Type: "select", Options: []string{"Coursework", "Labs", "Projects", "Internships", "Personal learning"}},
	},
	"practitioner": {
		{ID: "engineering_discipline", Label: "Engineering discipline(s)", Type: "text"},
		{ID: "years_professional_experience", Label: "Years of professional experience", Type: "select", Options: []string{"0–5", "6–10", "11–20", "21+"}},
		{ID: "practitioner_role", Label: "Primary role", Type: "select-other", Options: []string{"Engineer", "Manager", "Technical Lead", "Hiring Manager"}, OtherField: "practitioner_role_other"},
		{ID: "industry_sector", Label: "Industry sector", Type: "text"},
		{ID: "organization_size", Label: "Organization size (optional)", Type: "select", Options: []string{"<100", "100–999", "1,000–9,999", "10,000+"}},
		{ID: "prior_ai_experience", Label: "Prior experience with AI tools", Type: "select", Options: []string{"None", "Limited", "Moderate", "Extensive"}},
		{ID: "primary_ai_context", Label: "Primary context of AI use", Type: "select", Options: []string{"Engineering design", "Analysis/simulation", "Project management", "Decision support"}},
	},
}

// DemographicFields returns the demographic schema for a group.
func DemographicFields(group string) ([]DemographicField, bool) {
	f, ok := demographicsByGroup[group]
	return f, ok
}

// KnownDemographicField reports whether a field id (or its other-field
// companion) belongs to the group's schema.
func KnownDemographicField(group, id string) bool {
	fields, ok := demographicsByGroup[group]
	if !ok {
		return false
	}
	if id == "institution_or_company" {
		return true
	}
	for _, f := range fields {
		if f.ID == id || (f.OtherField != "" && f.OtherField == id) {
			return true
		}
	}
	return false
}
