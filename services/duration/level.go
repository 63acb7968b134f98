package duration

// Level identifies one tier of the Formation > Module > Chapter > Course hierarchy
type Level string

const (
	LevelCourse    Level = "course"
	LevelChapter   Level = "chapter"
	LevelModule    Level = "module"
	LevelFormation Level = "formation"
	// LevelAll is only valid as a sync filter, never as a node level
	LevelAll Level = "all"
)

// SyncOrder is the fixed bottom-up processing order for full syncs. Containers
// read their children's stored minutes, so leaves must settle first; running
// levels top-down can persist stale aggregates.
var SyncOrder = []Level{LevelCourse, LevelChapter, LevelModule, LevelFormation}

// ParseLevel maps an entity type string to a node level
func ParseLevel(s string) (Level, bool) {
	switch Level(s) {
	case LevelCourse, LevelChapter, LevelModule, LevelFormation:
		return Level(s), true
	}
	return "", false
}

// ParseFilter maps a sync filter string to a level; empty means all levels
func ParseFilter(s string) (Level, bool) {
	if s == "" || Level(s) == LevelAll {
		return LevelAll, true
	}
	return ParseLevel(s)
}

// IsLeaf reports whether nodes of this level have no children
func (l Level) IsLeaf() bool {
	return l == LevelCourse
}
