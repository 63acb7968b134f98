package evaluation

import (
	"math"
	"sort"

	evaluationModels "formadmin/models/evaluation"
)

// FormationAnalytics aggregates the evaluations of one formation
type FormationAnalytics struct {
	FormationID     uint    `json:"formation_id"`
	Total           int     `json:"total"`
	Pending         int     `json:"pending"`
	Approved        int     `json:"approved"`
	Rejected        int     `json:"rejected"`
	AverageScorePct float64 `json:"average_score_pct"`
}

// Aggregate groups evaluations per formation and computes status counts and
// the average score percentage. Evaluations with a broken max score still
// count in the totals but are left out of the average.
func Aggregate(evals []evaluationModels.Evaluation) []FormationAnalytics {
	type acc struct {
		FormationAnalytics
		scoreSum float64
		scored   int
	}

	byFormation := make(map[uint]*acc)
	for _, e := range evals {
		a, ok := byFormation[e.FormationID]
		if !ok {
			a = &acc{FormationAnalytics: FormationAnalytics{FormationID: e.FormationID}}
			byFormation[e.FormationID] = a
		}

		a.Total++
		switch e.Status {
		case evaluationModels.StatusApproved:
			a.Approved++
		case evaluationModels.StatusRejected:
			a.Rejected++
		default:
			a.Pending++
		}

		if e.MaxScore > 0 {
			a.scoreSum += float64(e.Score) / float64(e.MaxScore) * 100
			a.scored++
		}
	}

	result := make([]FormationAnalytics, 0, len(byFormation))
	for _, a := range byFormation {
		if a.scored > 0 {
			a.AverageScorePct = math.Round(a.scoreSum/float64(a.scored)*100) / 100
		}
		result = append(result, a.FormationAnalytics)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].FormationID < result[j].FormationID
	})
	return result
}
