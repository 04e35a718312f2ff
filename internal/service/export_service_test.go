package service

import (
	"ai_eng_tam_backend/internal/model"
	"ai_eng_tam_backend/internal/repository"
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSnapshotStore struct {
	snap   repository.Snapshot
	counts map[string]int64
	err    error
}

func (f *fakeSnapshotStore) FetchAllData() (*repository.Snapshot, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &f.snap, nil
}

func (f *fakeSnapshotStore) CountRespondents() (map[string]int64, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.counts, nil
}

func exportFixture() *fakeSnapshotStore {
	createdAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	r1 := model.Respondent{StakeholderType: model.Faculty}
	r1.ID = "r1"
	r1.CreatedAt = createdAt
	r2 := model.Respondent{StakeholderType: model.Student}
	r2.ID = "r2"
	r2.CreatedAt = createdAt

	return &fakeSnapshotStore{
		snap: repository.Snapshot{
			Respondents: []model.Respondent{r1, r2},
			Likert: []model.LikertResponse{
				{RespondentID: "r1", Section: "A", ItemCode: "PU-L1", Value: 6},
				{RespondentID: "r1", Section: "B", ItemCode: "MU1", Value: 3},
				{RespondentID: "r2", Section: "A", ItemCode: "PU-L1", Value: 2},
			},
		},
		counts: map[string]int64{"faculty": 1, "student": 1},
	}
}

func TestLongCSV(t *testing.T) {
	svc := NewExportService(exportFixture())

	out, err := svc.LongCSV()
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)

	assert.Equal(t, []string{"respondent_id", "stakeholder_type", "section", "item_code", "value"}, records[0])
	assert.Equal(t, []string{"r1", "faculty", "A", "PU-L1", "6"}, records[1])
	assert.Equal(t, []string{"r1", "faculty", "B", "MU1", "3"}, records[2])
	assert.Equal(t, []string{"r2", "student", "A", "PU-L1", "2"}, records[3])
}

func TestWideCSV(t *testing.T) {
	svc := NewExportService(exportFixture())

	out, err := svc.WideCSV()
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	// 列为观测到的题目编码并排序
	assert.Equal(t, []string{"respondent_id", "stakeholder_type", "created_at", "MU1", "PU-L1"}, records[0])
	assert.Equal(t, []string{"r1", "faculty", "2026-03-01T10:00:00Z", "3", "6"}, records[1])
	// 未作答的格子留空
	assert.Equal(t, []string{"r2", "student", "2026-03-01T10:00:00Z", "", "2"}, records[2])
}

func TestExportEmptyDataset(t *testing.T) {
	svc := NewExportService(&fakeSnapshotStore{})

	long, err := svc.LongCSV()
	require.NoError(t, err)
	records, err := csv.NewReader(bytes.NewReader(long)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1, "header only")

	wide, err := svc.WideCSV()
	require.NoError(t, err)
	records, err = csv.NewReader(bytes.NewReader(wide)).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, []string{"respondent_id", "stakeholder_type", "created_at"}, records[0])
}
