package duration

import (
	"testing"

	"formadmin/models/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func course(id, chapterID uint, minutes int, active bool) *catalog.Course {
	return &catalog.Course{
		Model:           gorm.Model{ID: id},
		ChapterID:       chapterID,
		Title:           "course",
		DurationMinutes: minutes,
		IsActive:        active,
	}
}

func chapter(id, moduleID uint, minutes int, active bool) *catalog.Chapter {
	return &catalog.Chapter{
		Model:           gorm.Model{ID: id},
		ModuleID:        moduleID,
		Title:           "chapter",
		DurationMinutes: minutes,
		IsActive:        active,
	}
}

func module(id, formationID uint, minutes int, active bool) *catalog.Module {
	return &catalog.Module{
		Model:           gorm.Model{ID: id},
		FormationID:     formationID,
		Title:           "module",
		DurationMinutes: minutes,
		IsActive:        active,
	}
}

func formation(id uint, minutes int, active bool) *catalog.Formation {
	return &catalog.Formation{
		Model:           gorm.Model{ID: id},
		Title:           "formation",
		DurationMinutes: minutes,
		IsActive:        active,
	}
}

func TestComputeDurationLeaf(t *testing.T) {
	store := newMemStore()

	// A course is never recomputed, whatever surrounds it
	tests := []int{0, 30, 45, 1000}
	for _, minutes := range tests {
		co := course(1, 1, minutes, true)
		got, err := ComputeDuration(store, LevelCourse, co)
		require.NoError(t, err)
		assert.Equal(t, minutes, got)
	}
}

func TestComputeDurationContainerSum(t *testing.T) {
	store := newMemStore()
	ch := chapter(1, 1, 100, true)
	store.chapters = []*catalog.Chapter{ch}
	store.courses = []*catalog.Course{
		course(1, 1, 30, true),
		course(2, 1, 45, true),
		course(3, 1, 0, true),
		course(4, 1, 1000, false), // inactive, must be ignored
	}

	got, err := ComputeDuration(store, LevelChapter, ch)
	require.NoError(t, err)
	assert.Equal(t, 75, got)
}

func TestComputeDurationNoActiveChildren(t *testing.T) {
	store := newMemStore()
	mo := module(1, 1, 240, true)
	store.modules = []*catalog.Module{mo}
	store.chapters = []*catalog.Chapter{chapter(1, 1, 240, false)}

	got, err := ComputeDuration(store, LevelModule, mo)
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}

func TestComputeDurationReadsStoredChildValues(t *testing.T) {
	store := newMemStore()
	fo := formation(1, 0, true)
	store.formations = []*catalog.Formation{fo}
	// Module stored value is stale relative to its own chapters, but the
	// formation sum still reads the stored value (non-recursive by design)
	store.modules = []*catalog.Module{module(1, 1, 90, true)}
	store.chapters = []*catalog.Chapter{chapter(1, 1, 300, true)}

	got, err := ComputeDuration(store, LevelFormation, fo)
	require.NoError(t, err)
	assert.Equal(t, 90, got)
}
