package catalog

// DurationNode is implemented by every entity of the training hierarchy
// (Formation, Module, Chapter, Course) so the duration engine can work on
// any level without reflection.
type DurationNode interface {
	NodeID() uint
	NodeTitle() string
	NodeActive() bool
	GetDurationMinutes() int
	SetDurationMinutes(minutes int)
}
