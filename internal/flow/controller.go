// Package flow implements the survey wizard: a fixed ordered sequence of
// sections per stakeholder group with per-section completeness checks and
// final assembly of a normalized submission bundle. A Controller holds one
// respondent's in-progress answers and nothing else; it never touches HTTP
// or storage.
package flow

import (
	"ai_eng_tam_backend/internal/model"
	"ai_eng_tam_backend/internal/schema"
	"ai_eng_tam_backend/internal/util"
)

// Step order: Likert A, B, C, then the gated tool-usage section D,
// then demographics.
const (
	StepSectionA = iota
	StepSectionB
	StepSectionC
	StepToolUsage
	StepDemographics

	StepCount
)

var stepLabels = []string{"A", "B", "C", "D", "demographics"}

// CategoryAnswer 单个类别的门控回答：未答 / 否 / 是+所选工具。
// 通过构造函数保证 "否但选了工具" 不可表达。
type CategoryAnswer struct {
	answered bool
	uses     bool
	tools    []string
	other    string
}

func CategoryNo() CategoryAnswer {
	return CategoryAnswer{answered: true}
}

func CategoryYes(tools []string, other string) CategoryAnswer {
	if tools == nil {
		tools = []string{}
	}
	return CategoryAnswer{answered: true, uses: true, tools: tools, other: other}
}

func (a CategoryAnswer) Answered() bool { return a.answered }
func (a CategoryAnswer) Uses() bool     { return a.uses }

type Controller struct {
	group      string
	accessCode string
	repeat     bool

	step   int
	likert map[string]int
	gate   map[string]CategoryAnswer
	demo   map[string]string

	sections   []schema.Section
	demoFields []schema.DemographicField
	itemSet    map[string]bool
}

func New(group, accessCode string, repeat bool) (*Controller, error) {
	sections, ok := schema.LikertSections(group)
	if !ok {
		return nil, util.ErrUnknownStakeholder
	}
	demoFields, _ := schema.DemographicFields(group)

	itemSet := make(map[string]bool)
	for _, code := range schema.AllItemCodes(group) {
		itemSet[code] = true
	}

	return &Controller{
		group:      group,
		accessCode: accessCode,
		repeat:     repeat,
		likert:     make(map[string]int),
		gate:       make(map[string]CategoryAnswer),
		demo:       make(map[string]string),
		sections:   sections,
		demoFields: demoFields,
		itemSet:    itemSet,
	}, nil
}

func (c *Controller) Group() string { return c.group }
func (c *Controller) Step() int     { return c.step }

// AnsweredCounts 进度回显用。
func (c *Controller) AnsweredCounts() (likert, categories int) {
	return len(c.likert), len(c.gate)
}

// RecordLikert stores one scale answer. Re-recording an item overwrites it.
func (c *Controller) RecordLikert(itemCode string, value int) error {
	if value < 1 || value > 7 {
		return util.ErrValueOutOfRange
	}
	if !c.itemSet[itemCode] {
		return util.ErrUnknownItemCode
	}
	c.likert[itemCode] = value
	return nil
}

// RecordCategory stores one gated tool-usage answer. When uses is false the
// tool selection and free text are discarded so the invalid combination can
// never be assembled.
func (c *Controller) RecordCategory(category string, uses bool, tools []string, other string) error {
	if !schema.ValidCategory(category) {
		return util.ErrUnknownCategory
	}
	if uses {
		c.gate[category] = CategoryYes(tools, other)
	} else {
		c.gate[category] = CategoryNo()
	}
	return nil
}

// RecordDemographics merges field values; empty values clear a field.
func (c *Controller) RecordDemographics(values map[string]string) error {
	for id := range values {
		if !schema.KnownDemographicField(c.group, id) {
			return util.ErrUnknownDemographField
		}
	}
	for id, v := range values {
		if v == "" {
			delete(c.demo, id)
		} else {
			c.demo[id] = v
		}
	}
	return nil
}

// missingForStep enumerates unanswered identifiers for a section in
// construct-then-item order, each exactly once.
func (c *Controller) missingForStep(step int) []string {
	var missing []string
	switch step {
	case StepSectionA, StepSectionB, StepSectionC:
		sec := c.sections[step]
		for _, construct := range sec.Constructs {
			for _, item := range construct.Items {
				if _, ok := c.likert[item.Code]; !ok {
					missing = append(missing, item.Code)
				}
			}
		}
	case StepToolUsage:
		for _, cat := range schema.Categories() {
			if !c.gate[cat.ID].Answered() {
				missing = append(missing, cat.ID)
			}
		}
	case StepDemographics:
		// 必填项校验推迟到 Submit：人口学是最后一步。
		for _, f := range c.demoFields {
			if f.Required && c.demo[f.ID] == "" {
				missing = append(missing, f.ID)
			}
		}
	}
	return missing
}

// Advance validates the current section and moves forward. A failed check
// returns a ValidationError listing the missing identifiers and leaves the
// step unchanged. Advancing from the terminal step is a no-op.
func (c *Controller) Advance() error {
	if c.step >= StepCount-1 {
		return nil
	}
	if missing := c.missingForStep(c.step); len(missing) > 0 {
		return &util.ValidationError{Section: stepLabels[c.step], Missing: missing}
	}
	c.step++
	return nil
}

// Retreat moves backward without clearing any recorded data.
// At step 0 it is a no-op.
func (c *Controller) Retreat() {
	if c.step > 0 {
		c.step--
	}
}

// SubmissionBundle 规范化提交载荷：一条受访者记录、固定九条类别记录、
// 仅含已作答条目的量表记录。
type SubmissionBundle struct {
	Respondent model.Respondent
	ToolUsage  []model.ToolUsageResponse
	Likert     []model.LikertResponse
}

// Submit re-validates required demographics and assembles the bundle.
// Only callable at the terminal step. The controller's state is not
// consumed: a persistence failure downstream leaves everything intact
// for a user-initiated retry.
func (c *Controller) Submit() (*SubmissionBundle, error) {
	if c.step != StepCount-1 {
		return nil, &util.InvalidStateError{Op: "submit", Step: c.step}
	}
	if missing := c.missingForStep(StepDemographics); len(missing) > 0 {
		return nil, &util.ValidationError{Section: stepLabels[StepDemographics], Missing: missing}
	}

	respondent := model.Respondent{
		StakeholderType: model.StakeholderType(c.group),
		AccessCode:      c.accessCode,
		RepeatFlag:      c.repeat,
	}
	respondent.ApplyDemographics(c.demo)

	toolUsage := make([]model.ToolUsageResponse, 0, len(schema.Categories()))
	for _, cat := range schema.Categories() {
		ans := c.gate[cat.ID]
		row := model.ToolUsageResponse{
			Category:      cat.ID,
			UsesCategory:  ans.uses,
			SelectedTools: []string{},
		}
		if ans.uses {
			row.SelectedTools = append(row.SelectedTools, ans.tools...)
			if ans.other != "" {
				other := ans.other
				row.OtherTool = &other
			}
		}
		toolUsage = append(toolUsage, row)
	}

	var likert []model.LikertResponse
	for _, sec := range c.sections {
		for _, construct := range sec.Constructs {
			for _, item := range construct.Items {
				if v, ok := c.likert[item.Code]; ok {
					likert = append(likert, model.LikertResponse{
						Section:  sec.Key,
						ItemCode: item.Code,
						Value:    v,
					})
				}
			}
		}
	}

	return &SubmissionBundle{
		Respondent: respondent,
		ToolUsage:  toolUsage,
		Likert:     likert,
	}, nil
}
