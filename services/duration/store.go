package duration

import (
	"errors"

	"formadmin/models/catalog"
)

// ErrNotFound is returned when a node id does not exist at the given level
var ErrNotFound = errors.New("node not found")

// Store abstracts persistence for the duration engine. The production
// implementation is GormStore; tests use an in-memory double.
type Store interface {
	// ActiveNodes returns all active, non-deleted nodes of a level
	ActiveNodes(level Level) ([]catalog.DurationNode, error)
	// NodeByID returns one active-or-inactive node, or ErrNotFound
	NodeByID(level Level, id uint) (catalog.DurationNode, error)
	// ActiveChildren returns the active direct children of a container node.
	// For the leaf level it returns an empty slice.
	ActiveChildren(level Level, parentID uint) ([]catalog.DurationNode, error)
	// Save persists the node's current state
	Save(node catalog.DurationNode) error
	// InTransaction runs fn against a transactional view of the store;
	// an error from fn rolls everything back
	InTransaction(fn func(tx Store) error) error
}
