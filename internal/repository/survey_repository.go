package repository

import (
	"ai_eng_tam_backend/internal/flow"
	"ai_eng_tam_backend/internal/model"
	"ai_eng_tam_backend/internal/util"

	"gorm.io/gorm"
)

// fetchBatchSize 底层快照查询的固定分页批量。
const fetchBatchSize = 1000

type SurveyRepository struct {
	DB *gorm.DB
}

func NewSurveyRepository(db *gorm.DB) *SurveyRepository {
	return &SurveyRepository{DB: db}
}

// SubmitSurvey persists one submission bundle. The respondent id is
// generated here, before any insert, so child rows carry their foreign key
// without a read-back. The three insert groups are sequential and not
// wrapped in a transaction: on failure the error is surfaced as-is and the
// caller decides whether to resubmit the whole bundle. An orphaned
// respondent row from a partial failure is an accepted inconsistency.
func (r *SurveyRepository) SubmitSurvey(bundle *flow.SubmissionBundle) (string, error) {
	respondentID := model.GenerateUUID()
	bundle.Respondent.ID = respondentID

	if err := r.DB.Create(&bundle.Respondent).Error; err != nil {
		return "", &util.PersistenceError{Op: "insert respondent", Err: err}
	}

	if len(bundle.ToolUsage) > 0 {
		for i := range bundle.ToolUsage {
			bundle.ToolUsage[i].RespondentID = respondentID
		}
		if err := r.DB.Create(&bundle.ToolUsage).Error; err != nil {
			return "", &util.PersistenceError{Op: "insert tool usage responses", Err: err}
		}
	}

	if len(bundle.Likert) > 0 {
		for i := range bundle.Likert {
			bundle.Likert[i].RespondentID = respondentID
		}
		if err := r.DB.Create(&bundle.Likert).Error; err != nil {
			return "", &util.PersistenceError{Op: "insert likert responses", Err: err}
		}
	}

	return respondentID, nil
}

// Snapshot 仪表盘一次性读取的全量数据。
type Snapshot struct {
	Respondents []model.Respondent        `json:"respondents"`
	ToolUsage   []model.ToolUsageResponse `json:"toolUsage"`
	Likert      []model.LikertResponse    `json:"likert"`
}

// FetchAllData returns the full unpaginated snapshot. Each table is read in
// fixed batches of 1000 rows ordered by id and concatenated, so callers
// never see the store's single-request row cap.
func (r *SurveyRepository) FetchAllData() (*Snapshot, error) {
	snap := &Snapshot{}

	if err := fetchAll(r.DB, &snap.Respondents); err != nil {
		return nil, &util.PersistenceError{Op: "fetch respondents", Err: err}
	}
	if err := fetchAll(r.DB, &snap.ToolUsage); err != nil {
		return nil, &util.PersistenceError{Op: "fetch tool usage responses", Err: err}
	}
	if err := fetchAll(r.DB, &snap.Likert); err != nil {
		return nil, &util.PersistenceError{Op: "fetch likert responses", Err: err}
	}

	return snap, nil
}

func fetchAll[T any](db *gorm.DB, out *[]T) error {
	offset := 0
	for {
		var batch []T
		if err := db.Order("id").Limit(fetchBatchSize).Offset(offset).Find(&batch).Error; err != nil {
			return err
		}
		*out = append(*out, batch...)
		if len(batch) < fetchBatchSize {
			return nil
		}
		offset += fetchBatchSize
	}
}

// CountRespondents 按群体统计受访者数量。
func (r *SurveyRepository) CountRespondents() (map[string]int64, error) {
	type row struct {
		StakeholderType string
		Count           int64
	}
	var rows []row
	err := r.DB.Model(&model.Respondent{}).
		Select("stakeholder_type, count(*) as count").
		Group("stakeholder_type").
		Find(&rows).Error
	if err != nil {
		return nil, &util.PersistenceError{Op: "count respondents", Err: err}
	}
	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.StakeholderType] = r.Count
	}
	return counts, nil
}
