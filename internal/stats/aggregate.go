package stats

// LikertRow / RespondentRow 与存储层解耦的最小行形状。
type LikertRow struct {
	RespondentID string
	ItemCode     string
	Value        int
}

type RespondentRow struct {
	ID              string
	StakeholderType string
}

// GroupedMeans 每构念按群体汇集的受访者构念均值列表。
type GroupedMeans map[string]map[string][]float64

// AggregateByConstruct computes each respondent's per-construct mean over the
// item codes they actually answered (no zero-filling), grouped by stakeholder
// type. constructItems is constructID -> group -> item codes. Respondents with
// an unrecognized stakeholder type are skipped.
func AggregateByConstruct(likert []LikertRow, respondents []RespondentRow, constructItems map[string]map[string][]string, groups []string) GroupedMeans {
	typeMap := make(map[string]string, len(respondents))
	for _, r := range respondents {
		typeMap[r.ID] = r.StakeholderType
	}

	byRespondent := make(map[string]map[string]int)
	for _, row := range likert {
		m, ok := byRespondent[row.RespondentID]
		if !ok {
			m = make(map[string]int)
			byRespondent[row.RespondentID] = m
		}
		m[row.ItemCode] = row.Value
	}

	known := make(map[string]bool, len(groups))
	result := make(GroupedMeans, len(constructItems))
	for cID := range constructItems {
		result[cID] = make(map[string][]float64, len(groups))
		for _, g := range groups {
			result[cID][g] = []float64{}
			known[g] = true
		}
	}

	for respID, responses := range byRespondent {
		group := typeMap[respID]
		if !known[group] {
			continue
		}

		for cID, byGroup := range constructItems {
			codes, ok := byGroup[group]
			if !ok {
				continue
			}

			var sum float64
			var count int
			for _, code := range codes {
				if v, answered := responses[code]; answered {
					sum += float64(v)
					count++
				}
			}
			if count > 0 {
				result[cID][group] = append(result[cID][group], sum/float64(count))
			}
		}
	}

	return result
}
