package duration

import (
	"errors"
	"testing"

	"formadmin/models/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityStatsEmptyLevel(t *testing.T) {
	svc := NewService(newMemStore())

	stats, err := svc.EntityStats(LevelFormation)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Total)
	assert.Equal(t, 0, stats.Inconsistencies)
	assert.Equal(t, 0.0, stats.Percentage)
}

func TestEntityStatsPercentage(t *testing.T) {
	store := newMemStore()
	store.chapters = []*catalog.Chapter{
		chapter(1, 1, 30, true),  // consistent
		chapter(2, 1, 999, true), // drifted
		chapter(3, 1, 30, true),  // consistent
	}
	store.courses = []*catalog.Course{
		course(1, 1, 30, true),
		course(2, 2, 30, true),
		course(3, 3, 30, true),
	}

	svc := NewService(store)
	stats, err := svc.EntityStats(LevelChapter)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.Inconsistencies)
	assert.Equal(t, 33.33, stats.Percentage)
}

func TestEntityStatsFailOpen(t *testing.T) {
	store := newMemStore()
	for i := uint(1); i <= 4; i++ {
		store.chapters = append(store.chapters, chapter(i, 1, 30, true))
		store.courses = append(store.courses, course(i, i, 30, true))
	}
	store.childrenErr["chapter:3"] = errors.New("corrupt row")

	svc := NewService(store)
	stats, err := svc.EntityStats(LevelChapter)
	require.NoError(t, err)

	// The failed node still appears in the total and counts as inconsistent
	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 1, stats.Inconsistencies)
	assert.Equal(t, 25.0, stats.Percentage)
}

func TestEntityStatsCaching(t *testing.T) {
	store := newMemStore()
	store.chapters = []*catalog.Chapter{chapter(1, 1, 999, true)}
	store.courses = []*catalog.Course{course(1, 1, 30, true)}

	svc := NewService(store)

	stats, err := svc.EntityStats(LevelChapter)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Inconsistencies)

	// Repair behind the cache's back: the cached value survives until cleared
	store.chapters[0].DurationMinutes = 30
	stats, err = svc.EntityStats(LevelChapter)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Inconsistencies)

	svc.ClearCache()
	stats, err = svc.EntityStats(LevelChapter)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Inconsistencies)
}

func TestSyncAllInvalidatesStatsCache(t *testing.T) {
	store := newMemStore()
	store.chapters = []*catalog.Chapter{chapter(1, 1, 999, true)}
	store.courses = []*catalog.Course{course(1, 1, 30, true)}

	svc := NewService(store)

	stats, err := svc.EntityStats(LevelChapter)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Inconsistencies)

	_, err = svc.SyncAll(LevelChapter, 50)
	require.NoError(t, err)

	stats, err = svc.EntityStats(LevelChapter)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Inconsistencies)
}

func TestAllStats(t *testing.T) {
	store := staleTree()
	svc := NewService(store)

	all, err := svc.AllStats()
	require.NoError(t, err)
	require.Len(t, all, 4)

	// Courses are their own ground truth, never inconsistent
	assert.Equal(t, 0, all[LevelCourse].Inconsistencies)
	assert.Equal(t, 4, all[LevelCourse].Total)
	// Every container in the stale tree drifts
	assert.Equal(t, 3, all[LevelChapter].Inconsistencies)
	assert.Equal(t, 100.0, all[LevelChapter].Percentage)
	assert.Equal(t, 100.0, all[LevelModule].Percentage)
	assert.Equal(t, 2, all[LevelModule].Inconsistencies)
	assert.Equal(t, 1, all[LevelFormation].Inconsistencies)
}

func TestParseLevelAndFilter(t *testing.T) {
	for _, s := range []string{"course", "chapter", "module", "formation"} {
		level, ok := ParseLevel(s)
		assert.True(t, ok)
		assert.Equal(t, Level(s), level)
	}

	_, ok := ParseLevel("all")
	assert.False(t, ok, "all is not a node level")
	_, ok = ParseLevel("basket")
	assert.False(t, ok)

	filter, ok := ParseFilter("")
	assert.True(t, ok)
	assert.Equal(t, LevelAll, filter)
	filter, ok = ParseFilter("all")
	assert.True(t, ok)
	assert.Equal(t, LevelAll, filter)
	filter, ok = ParseFilter("module")
	assert.True(t, ok)
	assert.Equal(t, LevelModule, filter)
	_, ok = ParseFilter("lesson")
	assert.False(t, ok)
}
