package duration

import (
	"fmt"

	"formadmin/models/catalog"
)

// memStore is an in-memory Store with failure injection, used by all engine
// tests. Save mirrors a node's minutes into a persisted map; InTransaction
// restores both the map and the node objects when fn fails, emulating a
// rollback.
type memStore struct {
	formations []*catalog.Formation
	modules    []*catalog.Module
	chapters   []*catalog.Chapter
	courses    []*catalog.Course

	persisted map[string]int

	childrenErr map[string]error // keyed by level:parentID
	saveErr     map[string]error // keyed by level:nodeID

	saveCount int
	txCount   int
}

func newMemStore() *memStore {
	return &memStore{
		persisted:   make(map[string]int),
		childrenErr: make(map[string]error),
		saveErr:     make(map[string]error),
	}
}

func nodeKey(node catalog.DurationNode) string {
	switch node.(type) {
	case *catalog.Course:
		return fmt.Sprintf("course:%d", node.NodeID())
	case *catalog.Chapter:
		return fmt.Sprintf("chapter:%d", node.NodeID())
	case *catalog.Module:
		return fmt.Sprintf("module:%d", node.NodeID())
	case *catalog.Formation:
		return fmt.Sprintf("formation:%d", node.NodeID())
	}
	return fmt.Sprintf("unknown:%d", node.NodeID())
}

func (m *memStore) ActiveNodes(level Level) ([]catalog.DurationNode, error) {
	var nodes []catalog.DurationNode
	switch level {
	case LevelCourse:
		for _, c := range m.courses {
			if c.IsActive && !c.IsDeleted {
				nodes = append(nodes, c)
			}
		}
	case LevelChapter:
		for _, ch := range m.chapters {
			if ch.IsActive && !ch.IsDeleted {
				nodes = append(nodes, ch)
			}
		}
	case LevelModule:
		for _, mo := range m.modules {
			if mo.IsActive && !mo.IsDeleted {
				nodes = append(nodes, mo)
			}
		}
	case LevelFormation:
		for _, f := range m.formations {
			if f.IsActive && !f.IsDeleted {
				nodes = append(nodes, f)
			}
		}
	default:
		return nil, fmt.Errorf("unknown level %q", level)
	}
	return nodes, nil
}

func (m *memStore) NodeByID(level Level, id uint) (catalog.DurationNode, error) {
	nodes, err := m.allNodes(level)
	if err != nil {
		return nil, err
	}
	for _, n := range nodes {
		if n.NodeID() == id {
			return n, nil
		}
	}
	return nil, ErrNotFound
}

func (m *memStore) allNodes(level Level) ([]catalog.DurationNode, error) {
	var nodes []catalog.DurationNode
	switch level {
	case LevelCourse:
		for _, c := range m.courses {
			nodes = append(nodes, c)
		}
	case LevelChapter:
		for _, ch := range m.chapters {
			nodes = append(nodes, ch)
		}
	case LevelModule:
		for _, mo := range m.modules {
			nodes = append(nodes, mo)
		}
	case LevelFormation:
		for _, f := range m.formations {
			nodes = append(nodes, f)
		}
	default:
		return nil, fmt.Errorf("unknown level %q", level)
	}
	return nodes, nil
}

func (m *memStore) ActiveChildren(level Level, parentID uint) ([]catalog.DurationNode, error) {
	if err := m.childrenErr[fmt.Sprintf("%s:%d", level, parentID)]; err != nil {
		return nil, err
	}

	var nodes []catalog.DurationNode
	switch level {
	case LevelCourse:
		return []catalog.DurationNode{}, nil
	case LevelChapter:
		for _, c := range m.courses {
			if c.ChapterID == parentID && c.IsActive && !c.IsDeleted {
				nodes = append(nodes, c)
			}
		}
	case LevelModule:
		for _, ch := range m.chapters {
			if ch.ModuleID == parentID && ch.IsActive && !ch.IsDeleted {
				nodes = append(nodes, ch)
			}
		}
	case LevelFormation:
		for _, mo := range m.modules {
			if mo.FormationID == parentID && mo.IsActive && !mo.IsDeleted {
				nodes = append(nodes, mo)
			}
		}
	default:
		return nil, fmt.Errorf("unknown level %q", level)
	}
	return nodes, nil
}

func (m *memStore) Save(node catalog.DurationNode) error {
	key := nodeKey(node)
	if err := m.saveErr[key]; err != nil {
		return err
	}
	m.persisted[key] = node.GetDurationMinutes()
	m.saveCount++
	return nil
}

func (m *memStore) InTransaction(fn func(tx Store) error) error {
	m.txCount++

	backupPersisted := make(map[string]int, len(m.persisted))
	for k, v := range m.persisted {
		backupPersisted[k] = v
	}
	backupMinutes := make(map[string]int)
	for _, level := range SyncOrder {
		nodes, _ := m.allNodes(level)
		for _, n := range nodes {
			backupMinutes[nodeKey(n)] = n.GetDurationMinutes()
		}
	}

	if err := fn(m); err != nil {
		m.persisted = backupPersisted
		for _, level := range SyncOrder {
			nodes, _ := m.allNodes(level)
			for _, n := range nodes {
				n.SetDurationMinutes(backupMinutes[nodeKey(n)])
			}
		}
		return err
	}
	return nil
}
