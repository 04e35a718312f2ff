package model

type StakeholderType string

const (
	Faculty      StakeholderType = "faculty"
	Student      StakeholderType = "student"
	Practitioner StakeholderType = "practitioner"
)

func ValidStakeholderType(s string) bool {
	switch StakeholderType(s) {
	case Faculty, Student, Practitioner:
		return true
	}
	return false
}

// Respondent 一次问卷提交。人口学字段平铺为列，与线上库结构一致；
// 不同组只填各自模式规定的字段，其余列留空。
type Respondent struct {
	UUIDBase
	StakeholderType StakeholderType `gorm:"type:varchar(16);index" json:"stakeholder_type"`
	AccessCode      string          `gorm:"type:varchar(32)" json:"access_code"`
	RepeatFlag      bool            `gorm:"default:false" json:"repeat_flag"`

	// faculty
	EngineeringDiscipline string `gorm:"type:text" json:"engineering_discipline,omitempty"`
	YearsInAcademia       string `gorm:"type:varchar(16)" json:"years_in_academia,omitempty"`
	PrimaryRole           string `gorm:"type:varchar(32)" json:"primary_role,omitempty"`
	InstitutionType       string `gorm:"type:varchar(32)" json:"institution_type,omitempty"`
	InstitutionTypeOther  string `gorm:"type:text" json:"institution_type_other,omitempty"`

	// student
	MajorProgram  string `gorm:"type:text" json:"major_program,omitempty"`
	YearInProgram string `gorm:"type:varchar(16)" json:"year_in_program,omitempty"`

	// practitioner
	YearsProfessionalExperience string `gorm:"type:varchar(16)" json:"years_professional_experience,omitempty"`
	PractitionerRole            string `gorm:"type:varchar(32)" json:"practitioner_role,omitempty"`
	PractitionerRoleOther       string `gorm:"type:text" json:"practitioner_role_other,omitempty"`
	IndustrySector              string `gorm:"type:text" json:"industry_sector,omitempty"`
	OrganizationSize            string `gorm:"type:varchar(16)" json:"organization_size,omitempty"`

	// shared
	InstitutionOrCompany string `gorm:"type:text" json:"institution_or_company,omitempty"`
	PriorAIExperience    string `gorm:"type:varchar(16)" json:"prior_ai_experience,omitempty"`
	PrimaryAIContext     string `gorm:"type:varchar(32)" json:"primary_ai_context,omitempty"`
}

// demographicColumns 人口学字段 id 与列的对应关系。
var demographicColumns = map[string]func(r *Respondent, v string){
	"engineering_discipline":        func(r *Respondent, v string) { r.EngineeringDiscipline = v },
	"years_in_academia":             func(r *Respondent, v string) { r.YearsInAcademia = v },
	"primary_role":                  func(r *Respondent, v string) { r.PrimaryRole = v },
	"institution_type":              func(r *Respondent, v string) { r.InstitutionType = v },
	"institution_type_other":        func(r *Respondent, v string) { r.InstitutionTypeOther = v },
	"major_program":                 func(r *Respondent, v string) { r.MajorProgram = v },
	"year_in_program":               func(r *Respondent, v string) { r.YearInProgram = v },
	"years_professional_experience": func(r *Respondent, v string) { r.YearsProfessionalExperience = v },
	"practitioner_role":             func(r *Respondent, v string) { r.PractitionerRole = v },
	"practitioner_role_other":       func(r *Respondent, v string) { r.PractitionerRoleOther = v },
	"industry_sector":               func(r *Respondent, v string) { r.IndustrySector = v },
	"organization_size":             func(r *Respondent, v string) { r.OrganizationSize = v },
	"institution_or_company":        func(r *Respondent, v string) { r.InstitutionOrCompany = v },
	"prior_ai_experience":           func(r *Respondent, v string) { r.PriorAIExperience = v },
	"primary_ai_context":            func(r *Respondent, v string) { r.PrimaryAIContext = v },
}

// ApplyDemographics 将字段 id->值 写入平铺列，未知字段忽略。
func (r *Respondent) ApplyDemographics(values map[string]string) {
	for id, v := range values {
		if set, ok := demographicColumns[id]; ok {
			set(r, v)
		}
	}
}
