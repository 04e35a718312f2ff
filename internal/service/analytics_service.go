package service

import (
	"ai_eng_tam_backend/internal/model"
	"ai_eng_tam_backend/internal/repository"
	"ai_eng_tam_backend/internal/schema"
	"ai_eng_tam_backend/internal/stats"
	"math"
)

// SnapshotStore 全量数据读取，见 repository.SurveyRepository。
type SnapshotStore interface {
	FetchAllData() (*repository.Snapshot, error)
	CountRespondents() (map[string]int64, error)
}

const constructDisplayMax = 25

// AnalyticsService computes the dashboard aggregates. All statistics are
// derived from a single snapshot per request; nothing is cached.
type AnalyticsService struct {
	store SnapshotStore
}

func NewAnalyticsService(store SnapshotStore) *AnalyticsService {
	return &AnalyticsService{store: store}
}

// ItemStat 单题描述统计与 1..7 频数分布。
type ItemStat struct {
	ItemCode     string            `json:"item_code"`
	Section      string            `json:"section"`
	Stats        stats.Descriptives `json:"stats"`
	Distribution map[int]int       `json:"distribution"`
}

// ConstructComparison is one row of the cross-group chart. Means are rounded
// to two decimals and zero when a group has no data; cell colors follow the
// red-to-green ramp with a neutral color for empty cells.
type ConstructComparison struct {
	ConstructID      string  `json:"construct_id"`
	Name             string  `json:"name"`
	DisplayName      string  `json:"display_name"`
	FacultyMean      float64 `json:"faculty_mean"`
	StudentMean      float64 `json:"student_mean"`
	PractitionerMean float64 `json:"practitioner_mean"`
	FacultyN         int     `json:"faculty_n"`
	StudentN         int     `json:"student_n"`
	PractitionerN    int     `json:"practitioner_n"`
	FacultyColor     string  `json:"faculty_color"`
	StudentColor     string  `json:"student_color"`
	PractitionerColor string `json:"practitioner_color"`
}

// ConstructAnova 某构念的跨组方差分析。
type ConstructAnova struct {
	ConstructID string            `json:"construct_id"`
	Name        string            `json:"name"`
	Result      stats.AnovaResult `json:"result"`
}

// DashboardSummary 管理端总览。
type DashboardSummary struct {
	TotalRespondents int64               `json:"total_respondents"`
	CountsByGroup    map[string]int64    `json:"counts_by_group"`
	ItemStats        map[string]ItemStat `json:"item_stats"`
	Comparisons      []ConstructComparison `json:"comparisons"`
	Anova            []ConstructAnova    `json:"anova"`
}

// RawData 原始数据透出（管理端导出前预览）。
type RawData struct {
	Respondents []model.Respondent        `json:"respondents"`
	ToolUsage   []model.ToolUsageResponse `json:"tool_usage"`
	Likert      []model.LikertResponse    `json:"likert"`
}

func (s *AnalyticsService) Raw(groupFilter string) (*RawData, error) {
	snap, err := s.store.FetchAllData()
	if err != nil {
		return nil, err
	}
	snap = filterSnapshot(snap, groupFilter)
	return &RawData{
		Respondents: snap.Respondents,
		ToolUsage:   snap.ToolUsage,
		Likert:      snap.Likert,
	}, nil
}

// Summary builds the full dashboard payload. groupFilter narrows the item
// statistics to one stakeholder type; the cross-group comparison and ANOVA
// always use the complete dataset.
func (s *AnalyticsService) Summary(groupFilter string) (*DashboardSummary, error) {
	snap, err := s.store.FetchAllData()
	if err != nil {
		return nil, err
	}
	counts, err := s.store.CountRespondents()
	if err != nil {
		return nil, err
	}

	var total int64
	for _, n := range counts {
		total += n
	}

	filtered := filterSnapshot(snap, groupFilter)

	summary := &DashboardSummary{
		TotalRespondents: total,
		CountsByGroup:    counts,
		ItemStats:        itemStats(filtered),
		Anova:            []ConstructAnova{},
	}

	grouped := aggregate(snap)
	summary.Comparisons = comparisons(grouped)
	for _, id := range schema.ConstructOrder {
		byGroup, ok := grouped[id]
		if !ok {
			continue
		}
		samples := make(map[string][]float64, len(byGroup))
		for group, means := range byGroup {
			samples[group] = means
		}
		summary.Anova = append(summary.Anova, ConstructAnova{
			ConstructID: id,
			Name:        schema.ConstructNames[id],
			Result:      stats.OneWayANOVA(samples),
		})
	}

	return summary, nil
}

// Anova returns just the per-construct tests, in canonical construct order.
func (s *AnalyticsService) Anova() ([]ConstructAnova, error) {
	snap, err := s.store.FetchAllData()
	if err != nil {
		return nil, err
	}
	grouped := aggregate(snap)
	out := make([]ConstructAnova, 0, len(schema.ConstructOrder))
	for _, id := range schema.ConstructOrder {
		byGroup, ok := grouped[id]
		if !ok {
			continue
		}
		out = append(out, ConstructAnova{
			ConstructID: id,
			Name:        schema.ConstructNames[id],
			Result:      stats.OneWayANOVA(byGroup),
		})
	}
	return out, nil
}

func filterSnapshot(snap *repository.Snapshot, group string) *repository.Snapshot {
	if group == "" || !model.ValidStakeholderType(group) {
		return snap
	}
	keep := make(map[string]bool)
	out := &repository.Snapshot{}
	for _, r := range snap.Respondents {
		if string(r.StakeholderType) == group {
			keep[r.ID] = true
			out.Respondents = append(out.Respondents, r)
		}
	}
	for _, t := range snap.ToolUsage {
		if keep[t.RespondentID] {
			out.ToolUsage = append(out.ToolUsage, t)
		}
	}
	for _, l := range snap.Likert {
		if keep[l.RespondentID] {
			out.Likert = append(out.Likert, l)
		}
	}
	return out
}

func itemStats(snap *repository.Snapshot) map[string]ItemStat {
	values := make(map[string][]int)
	sections := make(map[string]string)
	for _, row := range snap.Likert {
		values[row.ItemCode] = append(values[row.ItemCode], row.Value)
		sections[row.ItemCode] = row.Section
	}

	out := make(map[string]ItemStat, len(values))
	for code, vals := range values {
		floats := make([]float64, len(vals))
		for i, v := range vals {
			floats[i] = float64(v)
		}
		out[code] = ItemStat{
			ItemCode:     code,
			Section:      sections[code],
			Stats:        stats.DescriptiveStats(floats),
			Distribution: stats.FrequencyDistribution(vals),
		}
	}
	return out
}

// aggregate converts the gorm rows into the stats package's lightweight rows
// and runs the per-respondent construct aggregation.
func aggregate(snap *repository.Snapshot) stats.GroupedMeans {
	likert := make([]stats.LikertRow, len(snap.Likert))
	for i, l := range snap.Likert {
		likert[i] = stats.LikertRow{RespondentID: l.RespondentID, ItemCode: l.ItemCode, Value: l.Value}
	}
	respondents := make([]stats.RespondentRow, len(snap.Respondents))
	for i, r := range snap.Respondents {
		respondents[i] = stats.RespondentRow{ID: r.ID, StakeholderType: string(r.StakeholderType)}
	}
	return stats.AggregateByConstruct(likert, respondents, schema.ConstructItems(), schema.Groups)
}

func comparisons(grouped stats.GroupedMeans) []ConstructComparison {
	out := make([]ConstructComparison, 0, len(schema.ConstructOrder))
	for _, id := range schema.ConstructOrder {
		byGroup, ok := grouped[id]
		if !ok {
			continue
		}
		row := ConstructComparison{
			ConstructID: id,
			Name:        schema.ConstructNames[id],
			DisplayName: truncateName(schema.ConstructNames[id]),
		}
		row.FacultyMean, row.FacultyN, row.FacultyColor = groupCell(byGroup[string(model.Faculty)])
		row.StudentMean, row.StudentN, row.StudentColor = groupCell(byGroup[string(model.Student)])
		row.PractitionerMean, row.PractitionerN, row.PractitionerColor = groupCell(byGroup[string(model.Practitioner)])
		out = append(out, row)
	}
	return out
}

func groupCell(means []float64) (mean float64, n int, color string) {
	n = len(means)
	if n == 0 {
		return 0, 0, stats.NeutralHeatmapColor
	}
	var sum float64
	for _, m := range means {
		sum += m
	}
	m := sum / float64(n)
	return round2(m), n, stats.HeatmapColor(&m)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func truncateName(name string) string {
	runes := []rune(name)
	if len(runes) <= constructDisplayMax {
		return name
	}
	return string(runes[:constructDisplayMax]) + "…"
}
