package service

import (
	"bytes"
	"encoding/csv"
	"sort"
	"strconv"
	"time"
)

// ExportService renders the Likert data as CSV for offline analysis.
// Long format is one row per answer; wide format is one row per respondent
// with a column per item code observed in the data.
type ExportService struct {
	store SnapshotStore
}

func NewExportService(store SnapshotStore) *ExportService {
	return &ExportService{store: store}
}

func (s *ExportService) LongCSV() ([]byte, error) {
	snap, err := s.store.FetchAllData()
	if err != nil {
		return nil, err
	}

	types := make(map[string]string, len(snap.Respondents))
	for _, r := range snap.Respondents {
		types[r.ID] = string(r.StakeholderType)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"respondent_id", "stakeholder_type", "section", "item_code", "value"}); err != nil {
		return nil, err
	}
	for _, row := range snap.Likert {
		record := []string{
			row.RespondentID,
			types[row.RespondentID],
			row.Section,
			row.ItemCode,
			strconv.Itoa(row.Value),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *ExportService) WideCSV() ([]byte, error) {
	snap, err := s.store.FetchAllData()
	if err != nil {
		return nil, err
	}

	// 列集取数据中实际出现的题目编码，按字典序
	codeSet := make(map[string]bool)
	answers := make(map[string]map[string]int)
	for _, row := range snap.Likert {
		codeSet[row.ItemCode] = true
		m, ok := answers[row.RespondentID]
		if !ok {
			m = make(map[string]int)
			answers[row.RespondentID] = m
		}
		m[row.ItemCode] = row.Value
	}
	codes := make([]string, 0, len(codeSet))
	for code := range codeSet {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	header := append([]string{"respondent_id", "stakeholder_type", "created_at"}, codes...)
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, r := range snap.Respondents {
		record := make([]string, 0, len(header))
		record = append(record, r.ID, string(r.StakeholderType), r.CreatedAt.Format(time.RFC3339))
		for _, code := range codes {
			if v, ok := answers[r.ID][code]; ok {
				record = append(record, strconv.Itoa(v))
			} else {
				record = append(record, "")
			}
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
