package duration

import (
	"errors"
	"testing"

	"formadmin/models/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeDrift(t *testing.T) {
	store := newMemStore()
	ch := chapter(1, 1, 100, true)
	store.chapters = []*catalog.Chapter{ch}
	store.courses = []*catalog.Course{
		course(1, 1, 30, true),
		course(2, 1, 45, true),
		course(3, 1, 0, true),
		course(4, 1, 1000, false),
	}

	report, err := Analyze(store, LevelChapter, ch)
	require.NoError(t, err)
	assert.Equal(t, 100, report.Stored)
	assert.Equal(t, 75, report.Computed)
	assert.Equal(t, -25, report.Delta)
	assert.True(t, report.NeedsUpdate)

	// After repair a second analysis reports consistency
	svc := NewService(store)
	stats, err := svc.UpdateNode(LevelChapter, 1)
	require.NoError(t, err)
	assert.True(t, stats.Changed)
	assert.Equal(t, 75, ch.GetDurationMinutes())

	report, err = Analyze(store, LevelChapter, ch)
	require.NoError(t, err)
	assert.False(t, report.NeedsUpdate)
	assert.Equal(t, 0, report.Delta)
}

func TestAnalyzeConsistentNode(t *testing.T) {
	store := newMemStore()
	ch := chapter(1, 1, 75, true)
	store.chapters = []*catalog.Chapter{ch}
	store.courses = []*catalog.Course{
		course(1, 1, 30, true),
		course(2, 1, 45, true),
	}

	report, err := Analyze(store, LevelChapter, ch)
	require.NoError(t, err)
	assert.False(t, report.NeedsUpdate)
	assert.Equal(t, 0, report.Delta)
}

func TestAnalyzeLevelFailOpen(t *testing.T) {
	store := newMemStore()
	store.chapters = []*catalog.Chapter{
		chapter(1, 1, 30, true),
		chapter(2, 1, 30, true),
		chapter(3, 1, 30, true),
	}
	store.courses = []*catalog.Course{
		course(1, 1, 30, true),
		course(2, 2, 30, true),
		course(3, 3, 30, true),
	}
	store.childrenErr["chapter:2"] = errors.New("corrupt row")

	svc := NewService(store)
	analysis, err := svc.AnalyzeLevel(LevelChapter)
	require.NoError(t, err)

	assert.Equal(t, 3, analysis.Total)
	assert.Len(t, analysis.Reports, 3)
	// The broken node counts as inconsistent and carries the error
	assert.Equal(t, 1, analysis.Inconsistencies)
	assert.True(t, analysis.Reports[1].NeedsUpdate)
	assert.Contains(t, analysis.Reports[1].Error, "corrupt row")
	assert.False(t, analysis.Reports[0].NeedsUpdate)
	assert.False(t, analysis.Reports[2].NeedsUpdate)
}
