package duration

import (
	"errors"
	"fmt"
	"testing"

	"formadmin/models/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeBatchSize(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want int
	}{
		{"zero falls back", 0, DefaultBatchSize},
		{"negative falls back", -5, DefaultBatchSize},
		{"too large falls back", 5000, DefaultBatchSize},
		{"lower bound kept", 1, 1},
		{"upper bound kept", 1000, 1000},
		{"normal kept", 250, 250},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeBatchSize(tt.in))
		})
	}
}

// staleTree builds a hierarchy whose container values are all wrong:
// formation 1 > modules 1,2 > chapters 1..3 > courses 1..4
func staleTree() *memStore {
	store := newMemStore()
	store.formations = []*catalog.Formation{formation(1, 999, true)}
	store.modules = []*catalog.Module{
		module(1, 1, 999, true),
		// 500 keeps module 2 drifted: its single chapter stores 999
		module(2, 1, 500, true),
	}
	store.chapters = []*catalog.Chapter{
		chapter(1, 1, 999, true),
		chapter(2, 1, 999, true),
		chapter(3, 2, 999, true),
	}
	store.courses = []*catalog.Course{
		course(1, 1, 30, true),
		course(2, 1, 45, true),
		course(3, 2, 60, true),
		course(4, 3, 120, true),
	}
	return store
}

func TestSyncAllReachesFixedPoint(t *testing.T) {
	store := staleTree()
	svc := NewService(store)

	result, err := svc.SyncAll(LevelAll, 50)
	require.NoError(t, err)
	assert.Empty(t, result.Errors)
	// 4 courses + 3 chapters + 2 modules + 1 formation
	assert.Equal(t, 10, result.Synced)

	// One bottom-up pass settles every level
	assert.Equal(t, 75, store.chapters[0].DurationMinutes)
	assert.Equal(t, 60, store.chapters[1].DurationMinutes)
	assert.Equal(t, 120, store.chapters[2].DurationMinutes)
	assert.Equal(t, 135, store.modules[0].DurationMinutes)
	assert.Equal(t, 120, store.modules[1].DurationMinutes)
	assert.Equal(t, 255, store.formations[0].DurationMinutes)

	// Course ground truth is untouched
	assert.Equal(t, 30, store.courses[0].DurationMinutes)
	assert.Equal(t, 1000, store.courses[0].DurationMinutes+970)

	// A second pass changes nothing more
	store.saveCount = 0
	result, err = svc.SyncAll(LevelAll, 50)
	require.NoError(t, err)
	assert.Equal(t, 10, result.Synced)
	assert.Equal(t, 255, store.formations[0].DurationMinutes)
}

func TestSyncAllSingleLevelFilter(t *testing.T) {
	store := staleTree()
	svc := NewService(store)

	result, err := svc.SyncAll(LevelChapter, 50)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Synced)

	assert.Equal(t, 75, store.chapters[0].DurationMinutes)
	// Other levels untouched by a chapter-only pass
	assert.Equal(t, 999, store.modules[0].DurationMinutes)
	assert.Equal(t, 999, store.formations[0].DurationMinutes)
}

func TestSyncAllBatchSizeClampEquivalence(t *testing.T) {
	run := func(batchSize int) (*memStore, SyncResult) {
		store := staleTree()
		svc := NewService(store)
		result, err := svc.SyncAll(LevelAll, batchSize)
		require.NoError(t, err)
		return store, result
	}

	clamped, clampedRes := run(5000)
	def, defRes := run(DefaultBatchSize)
	small, smallRes := run(1)

	// Same nodes synced, same final state; only transaction count differs
	assert.Equal(t, defRes.Synced, clampedRes.Synced)
	assert.Equal(t, defRes.Synced, smallRes.Synced)
	assert.Equal(t, def.persisted, clamped.persisted)
	assert.Equal(t, def.persisted, small.persisted)
	assert.Equal(t, def.txCount, clamped.txCount)
	assert.Greater(t, small.txCount, def.txCount)
}

func TestSyncAllPartialBatchTolerance(t *testing.T) {
	store := newMemStore()
	for i := uint(1); i <= 10; i++ {
		store.chapters = append(store.chapters, chapter(i, 1, 999, true))
		store.courses = append(store.courses, course(i, i, 30, true))
	}
	// Node #5's own recompute fails; its batch mates must not be affected
	store.childrenErr["chapter:5"] = errors.New("orphaned children")

	svc := NewService(store)
	result, err := svc.SyncAll(LevelChapter, 10)
	require.NoError(t, err)

	assert.Equal(t, 9, result.Synced)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "chapter 5")

	for i, ch := range store.chapters {
		if ch.ID == 5 {
			assert.Equal(t, 999, ch.DurationMinutes, "failed node keeps old value")
			continue
		}
		assert.Equal(t, 30, ch.DurationMinutes, fmt.Sprintf("chapter %d", i+1))
	}
}

func TestSyncAllBatchPersistenceFailure(t *testing.T) {
	store := newMemStore()
	for i := uint(1); i <= 4; i++ {
		store.chapters = append(store.chapters, chapter(i, 1, 999, true))
		store.courses = append(store.courses, course(i, i, 30, true))
	}
	// Saving chapter 3 fails, so the second batch's transaction must roll back
	store.saveErr["chapter:3"] = errors.New("disk full")

	svc := NewService(store)
	result, err := svc.SyncAll(LevelChapter, 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")

	// First batch stays committed, second batch fully rolled back
	assert.Equal(t, 2, result.Synced)
	assert.Equal(t, 30, store.chapters[0].DurationMinutes)
	assert.Equal(t, 30, store.chapters[1].DurationMinutes)
	assert.Equal(t, 999, store.chapters[2].DurationMinutes)
	assert.Equal(t, 999, store.chapters[3].DurationMinutes)
	_, ok := store.persisted["chapter:4"]
	assert.False(t, ok)
}

func TestUpdateNodeIdempotent(t *testing.T) {
	store := newMemStore()
	ch := chapter(1, 1, 100, true)
	store.chapters = []*catalog.Chapter{ch}
	store.courses = []*catalog.Course{
		course(1, 1, 30, true),
		course(2, 1, 45, true),
	}

	svc := NewService(store)

	first, err := svc.UpdateNode(LevelChapter, 1)
	require.NoError(t, err)
	assert.True(t, first.Changed)
	assert.Equal(t, 100, first.Previous)
	assert.Equal(t, 75, first.Computed)
	assert.Equal(t, 1, store.saveCount)

	second, err := svc.UpdateNode(LevelChapter, 1)
	require.NoError(t, err)
	assert.False(t, second.Changed)
	assert.Equal(t, 75, second.Previous)
	assert.Equal(t, 75, second.Computed)
	assert.Equal(t, 1, store.saveCount, "no write on a clean node")
}

func TestUpdateNodeNotFound(t *testing.T) {
	svc := NewService(newMemStore())
	_, err := svc.UpdateNode(LevelFormation, 42)
	assert.ErrorIs(t, err, ErrNotFound)
}
