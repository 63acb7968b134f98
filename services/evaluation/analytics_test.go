package evaluation

import (
	"testing"

	evaluationModels "formadmin/models/evaluation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eval(formationID uint, status string, score, maxScore int) evaluationModels.Evaluation {
	return evaluationModels.Evaluation{
		FormationID: formationID,
		Status:      status,
		Score:       score,
		MaxScore:    maxScore,
	}
}

func TestAggregateEmpty(t *testing.T) {
	result := Aggregate(nil)
	assert.Empty(t, result)
}

func TestAggregateCountsAndAverage(t *testing.T) {
	evals := []evaluationModels.Evaluation{
		eval(1, evaluationModels.StatusApproved, 80, 100),
		eval(1, evaluationModels.StatusApproved, 15, 20), // 75%
		eval(1, evaluationModels.StatusPending, 50, 100),
		eval(1, evaluationModels.StatusRejected, 20, 100),
		eval(2, evaluationModels.StatusPending, 10, 100),
	}

	result := Aggregate(evals)
	require.Len(t, result, 2)

	first := result[0]
	assert.Equal(t, uint(1), first.FormationID)
	assert.Equal(t, 4, first.Total)
	assert.Equal(t, 2, first.Approved)
	assert.Equal(t, 1, first.Pending)
	assert.Equal(t, 1, first.Rejected)
	// (80 + 75 + 50 + 20) / 4
	assert.Equal(t, 56.25, first.AverageScorePct)

	second := result[1]
	assert.Equal(t, uint(2), second.FormationID)
	assert.Equal(t, 1, second.Total)
	assert.Equal(t, 10.0, second.AverageScorePct)
}

func TestAggregateSkipsBrokenMaxScore(t *testing.T) {
	evals := []evaluationModels.Evaluation{
		eval(3, evaluationModels.StatusApproved, 90, 100),
		eval(3, evaluationModels.StatusApproved, 50, 0), // counted, not averaged
	}

	result := Aggregate(evals)
	require.Len(t, result, 1)
	assert.Equal(t, 2, result[0].Total)
	assert.Equal(t, 90.0, result[0].AverageScorePct)
}

func TestAggregateNoScorableEvaluations(t *testing.T) {
	evals := []evaluationModels.Evaluation{
		eval(4, evaluationModels.StatusPending, 10, 0),
	}

	result := Aggregate(evals)
	require.Len(t, result, 1)
	assert.Equal(t, 0.0, result[0].AverageScorePct)
}
