// SPDX-License-Identifier: MIT
package a11y

import "sort"

// Summary aggregates a batch of reports
type Summary struct {
	Total        int      `json:"total"`
	AverageScore float64  `json:"average_score"`
	Passing      int      `json:"passing"`       // score >= 70
	AACompliant  int      `json:"aa_compliant"`  // every pair passes AA
	Failed       int      `json:"failed"`        // degraded reports
	Worst        []Report `json:"worst"`
}

const (
	passingScore = 70.0
	worstCount   = 5
)

// Summarize computes totals and picks the lowest scoring combinations.
// Ties keep input order.
func Summarize(reports []Report) Summary {
	s := Summary{Total: len(reports)}
	if len(reports) == 0 {
		return s
	}

	var sum float64
	for _, r := range reports {
		sum += r.Score
		if r.Score >= passingScore {
			s.Passing++
		}
		if r.Total == 0 {
			s.Failed++
			continue
		}
		if r.Passed == r.Total {
			s.AACompliant++
		}
	}
	s.AverageScore = sum / float64(len(reports))

	sorted := make([]Report, len(reports))
	copy(sorted, reports)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Score < sorted[j].Score })
	n := worstCount
	if len(sorted) < n {
		n = len(sorted)
	}
	s.Worst = sorted[:n]
	return s
}

// Grade maps a score onto excellent, good, fair or poor
func Grade(score float64) string {
	switch {
	case score >= 90:
		return "excellent"
	case score >= 75:
		return "good"
	case score >= 60:
		return "fair"
	default:
		return "poor"
	}
}
