package flow

import (
	"ai_eng_tam_backend/internal/schema"
	"ai_eng_tam_backend/internal/util"
	"errors"
	"testing"
)

func newFacultyController(t *testing.T) *Controller {
	t.Helper()
	c, err := New("faculty", "FACULTY2025", false)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

// answerSection fills every item of the controller's current Likert section.
func answerSection(t *testing.T, c *Controller, sectionIdx int) {
	t.Helper()
	sections, _ := schema.LikertSections("faculty")
	for _, construct := range sections[sectionIdx].Constructs {
		for _, item := range construct.Items {
			if err := c.RecordLikert(item.Code, 4); err != nil {
				t.Fatalf("RecordLikert(%s): %v", item.Code, err)
			}
		}
	}
}

func answerAllCategories(t *testing.T, c *Controller) {
	t.Helper()
	for _, cat := range schema.Categories() {
		if err := c.RecordCategory(cat.ID, false, nil, ""); err != nil {
			t.Fatalf("RecordCategory(%s): %v", cat.ID, err)
		}
	}
}

func TestNewRejectsUnknownGroup(t *testing.T) {
	if _, err := New("visitor", "CODE", false); !errors.Is(err, util.ErrUnknownStakeholder) {
		t.Errorf("err = %v, want ErrUnknownStakeholder", err)
	}
}

func TestRecordLikertValidation(t *testing.T) {
	c := newFacultyController(t)

	if err := c.RecordLikert("PU-L1", 0); !errors.Is(err, util.ErrValueOutOfRange) {
		t.Errorf("value 0: err = %v, want ErrValueOutOfRange", err)
	}
	if err := c.RecordLikert("PU-L1", 8); !errors.Is(err, util.ErrValueOutOfRange) {
		t.Errorf("value 8: err = %v, want ErrValueOutOfRange", err)
	}
	if err := c.RecordLikert("NO-SUCH-ITEM", 4); !errors.Is(err, util.ErrUnknownItemCode) {
		t.Errorf("unknown code: err = %v, want ErrUnknownItemCode", err)
	}

	// 有效作答可覆盖重写
	if err := c.RecordLikert("PU-L1", 3); err != nil {
		t.Fatalf("RecordLikert: %v", err)
	}
	if err := c.RecordLikert("PU-L1", 6); err != nil {
		t.Fatalf("re-record: %v", err)
	}
	n, _ := c.AnsweredCounts()
	if n != 1 {
		t.Errorf("answered count = %d, want 1 after overwrite", n)
	}
}

func TestAdvanceBlocksOnIncompleteSection(t *testing.T) {
	c := newFacultyController(t)

	sections, _ := schema.LikertSections("faculty")
	var expected []string
	for _, construct := range sections[0].Constructs {
		for _, item := range construct.Items {
			expected = append(expected, item.Code)
		}
	}
	// 答掉第一题，缺失清单应当从第二题开始且保持声明顺序
	if err := c.RecordLikert(expected[0], 5); err != nil {
		t.Fatal(err)
	}

	err := c.Advance()
	var vErr *util.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	if vErr.Section != "A" {
		t.Errorf("section = %q, want A", vErr.Section)
	}
	if len(vErr.Missing) != len(expected)-1 {
		t.Fatalf("missing %d items, want %d", len(vErr.Missing), len(expected)-1)
	}
	for i, code := range vErr.Missing {
		if code != expected[i+1] {
			t.Fatalf("missing[%d] = %q, want %q", i, code, expected[i+1])
		}
	}
	if c.Step() != StepSectionA {
		t.Errorf("step advanced to %d despite validation failure", c.Step())
	}
}

func TestToolUsageStepRequiresEveryCategory(t *testing.T) {
	c := newFacultyController(t)
	for i := StepSectionA; i <= StepSectionC; i++ {
		answerSection(t, c, i)
		if err := c.Advance(); err != nil {
			t.Fatalf("advance from section %d: %v", i, err)
		}
	}

	if err := c.RecordCategory("GenAI", true, []string{"ChatGPT"}, ""); err != nil {
		t.Fatal(err)
	}

	err := c.Advance()
	var vErr *util.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	if vErr.Section != "D" {
		t.Errorf("section = %q, want D", vErr.Section)
	}
	if len(vErr.Missing) != len(schema.Categories())-1 {
		t.Errorf("missing %d categories, want %d", len(vErr.Missing), len(schema.Categories())-1)
	}
	for _, id := range vErr.Missing {
		if id == "GenAI" {
			t.Error("answered category listed as missing")
		}
	}
}

func TestRetreatKeepsAnswers(t *testing.T) {
	c := newFacultyController(t)
	answerSection(t, c, 0)
	if err := c.Advance(); err != nil {
		t.Fatal(err)
	}

	c.Retreat()
	if c.Step() != StepSectionA {
		t.Fatalf("step = %d, want %d", c.Step(), StepSectionA)
	}
	// 数据未清空，可直接再次前进
	if err := c.Advance(); err != nil {
		t.Errorf("advance after retreat: %v", err)
	}

	// 第 0 步继续后退为 no-op
	c.Retreat()
	c.Retreat()
	if c.Step() != StepSectionA {
		t.Errorf("step = %d after retreating past 0", c.Step())
	}
}

func TestSubmitRequiresTerminalStep(t *testing.T) {
	c := newFacultyController(t)

	_, err := c.Submit()
	var stateErr *util.InvalidStateError
	if !errors.As(err, &stateErr) {
		t.Fatalf("err = %v, want InvalidStateError", err)
	}
	if stateErr.Op != "submit" || stateErr.Step != StepSectionA {
		t.Errorf("unexpected state error: %+v", stateErr)
	}
}

func TestSubmitAssemblesBundle(t *testing.T) {
	c, err := New("faculty", "FACULTY2025", true)
	if err != nil {
		t.Fatal(err)
	}

	for i := StepSectionA; i <= StepSectionC; i++ {
		answerSection(t, c, i)
		if err := c.Advance(); err != nil {
			t.Fatalf("advance from section %d: %v", i, err)
		}
	}

	if err := c.RecordCategory("GenAI", true, []string{"ChatGPT", "Claude"}, "Local LLM"); err != nil {
		t.Fatal(err)
	}
	// uses=false 时提交的工具列表被丢弃
	if err := c.RecordCategory("ML", false, []string{"Scikit-learn"}, "ignored"); err != nil {
		t.Fatal(err)
	}
	answerAllCategories(t, c)
	if err := c.RecordCategory("GenAI", true, []string{"ChatGPT", "Claude"}, "Local LLM"); err != nil {
		t.Fatal(err)
	}
	if err := c.Advance(); err != nil {
		t.Fatalf("advance to demographics: %v", err)
	}

	if err := c.RecordDemographics(map[string]string{
		"engineering_discipline": "Mechanical",
		"prior_ai_experience":    "Moderate",
	}); err != nil {
		t.Fatal(err)
	}

	bundle, err := c.Submit()
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	r := bundle.Respondent
	if string(r.StakeholderType) != "faculty" || r.AccessCode != "FACULTY2025" || !r.RepeatFlag {
		t.Errorf("respondent = %+v", r)
	}
	if r.EngineeringDiscipline != "Mechanical" || r.PriorAIExperience != "Moderate" {
		t.Errorf("demographics not applied: %+v", r)
	}

	if len(bundle.ToolUsage) != len(schema.Categories()) {
		t.Fatalf("tool usage rows = %d, want %d", len(bundle.ToolUsage), len(schema.Categories()))
	}
	for _, row := range bundle.ToolUsage {
		switch row.Category {
		case "GenAI":
			if !row.UsesCategory || len(row.SelectedTools) != 2 {
				t.Errorf("GenAI row = %+v", row)
			}
			if row.OtherTool == nil || *row.OtherTool != "Local LLM" {
				t.Errorf("GenAI other tool = %v", row.OtherTool)
			}
		default:
			if row.UsesCategory {
				t.Errorf("%s should be uses=false", row.Category)
			}
			if row.SelectedTools == nil || len(row.SelectedTools) != 0 {
				t.Errorf("%s tools = %v, want empty non-nil", row.Category, row.SelectedTools)
			}
			if row.OtherTool != nil {
				t.Errorf("%s other tool should be nil", row.Category)
			}
		}
	}

	codes := schema.AllItemCodes("faculty")
	if len(bundle.Likert) != len(codes) {
		t.Fatalf("likert rows = %d, want %d", len(bundle.Likert), len(codes))
	}
	for i, row := range bundle.Likert {
		if row.ItemCode != codes[i] {
			t.Fatalf("likert[%d] = %s, want %s (canonical order)", i, row.ItemCode, codes[i])
		}
		if want, _ := schema.ItemSection("faculty", row.ItemCode); row.Section != want {
			t.Errorf("likert[%d] section = %s, want %s", i, row.Section, want)
		}
	}

	// 提交不消耗状态，可重复装配
	if _, err := c.Submit(); err != nil {
		t.Errorf("second Submit: %v", err)
	}
}

func TestRecordDemographicsValidation(t *testing.T) {
	c := newFacultyController(t)

	err := c.RecordDemographics(map[string]string{"shoe_size": "42"})
	if !errors.Is(err, util.ErrUnknownDemographField) {
		t.Errorf("err = %v, want ErrUnknownDemographField", err)
	}

	// 空值清除已填内容
	if err := c.RecordDemographics(map[string]string{"engineering_discipline": "Civil"}); err != nil {
		t.Fatal(err)
	}
	if err := c.RecordDemographics(map[string]string{"engineering_discipline": ""}); err != nil {
		t.Fatal(err)
	}
	if c.demo["engineering_discipline"] != "" {
		t.Error("empty value should clear the field")
	}
}

func TestAdvanceAtTerminalStepIsNoOp(t *testing.T) {
	c := newFacultyController(t)
	for i := StepSectionA; i <= StepSectionC; i++ {
		answerSection(t, c, i)
		if err := c.Advance(); err != nil {
			t.Fatal(err)
		}
	}
	answerAllCategories(t, c)
	if err := c.Advance(); err != nil {
		t.Fatal(err)
	}

	if c.Step() != StepDemographics {
		t.Fatalf("step = %d, want %d", c.Step(), StepDemographics)
	}
	if err := c.Advance(); err != nil {
		t.Errorf("terminal advance: %v", err)
	}
	if c.Step() != StepDemographics {
		t.Errorf("terminal advance moved step to %d", c.Step())
	}
}
