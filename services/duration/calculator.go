package duration

import "formadmin/models/catalog"

// ComputeDuration returns the correct duration in minutes for a node.
// A course keeps its stored value untouched (ground truth). A container sums
// the currently stored minutes of its active direct children; this is not
// recursive, which is why bulk syncs must run bottom-up (see SyncOrder).
// Pure read, no side effects.
func ComputeDuration(store Store, level Level, node catalog.DurationNode) (int, error) {
	if level.IsLeaf() {
		return node.GetDurationMinutes(), nil
	}

	children, err := store.ActiveChildren(level, node.NodeID())
	if err != nil {
		return 0, err
	}

	total := 0
	for _, child := range children {
		total += child.GetDurationMinutes()
	}
	return total, nil
}
