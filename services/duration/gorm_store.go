package duration

import (
	"errors"
	"fmt"

	"formadmin/models/catalog"

	"gorm.io/gorm"
)

// GormStore is the production Store backed by the application database
type GormStore struct {
	db *gorm.DB
}

// NewGormStore wraps a gorm handle (or transaction) as a Store
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (g *GormStore) ActiveNodes(level Level) ([]catalog.DurationNode, error) {
	q := g.db.Where("is_active = ? AND is_deleted = ?", true, false).Order("id asc")

	switch level {
	case LevelCourse:
		var rows []catalog.Course
		if err := q.Find(&rows).Error; err != nil {
			return nil, err
		}
		return courseNodes(rows), nil
	case LevelChapter:
		var rows []catalog.Chapter
		if err := q.Find(&rows).Error; err != nil {
			return nil, err
		}
		return chapterNodes(rows), nil
	case LevelModule:
		var rows []catalog.Module
		if err := q.Find(&rows).Error; err != nil {
			return nil, err
		}
		return moduleNodes(rows), nil
	case LevelFormation:
		var rows []catalog.Formation
		if err := q.Find(&rows).Error; err != nil {
			return nil, err
		}
		return formationNodes(rows), nil
	}
	return nil, fmt.Errorf("unknown level %q", level)
}

func (g *GormStore) NodeByID(level Level, id uint) (catalog.DurationNode, error) {
	var (
		node catalog.DurationNode
		err  error
	)

	switch level {
	case LevelCourse:
		row := &catalog.Course{}
		err = g.db.Where("id = ? AND is_deleted = ?", id, false).First(row).Error
		node = row
	case LevelChapter:
		row := &catalog.Chapter{}
		err = g.db.Where("id = ? AND is_deleted = ?", id, false).First(row).Error
		node = row
	case LevelModule:
		row := &catalog.Module{}
		err = g.db.Where("id = ? AND is_deleted = ?", id, false).First(row).Error
		node = row
	case LevelFormation:
		row := &catalog.Formation{}
		err = g.db.Where("id = ? AND is_deleted = ?", id, false).First(row).Error
		node = row
	default:
		return nil, fmt.Errorf("unknown level %q", level)
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return node, nil
}

func (g *GormStore) ActiveChildren(level Level, parentID uint) ([]catalog.DurationNode, error) {
	q := g.db.Where("is_active = ? AND is_deleted = ?", true, false)

	switch level {
	case LevelCourse:
		// Leaf level, nothing below
		return []catalog.DurationNode{}, nil
	case LevelChapter:
		var rows []catalog.Course
		if err := q.Where("chapter_id = ?", parentID).Find(&rows).Error; err != nil {
			return nil, err
		}
		return courseNodes(rows), nil
	case LevelModule:
		var rows []catalog.Chapter
		if err := q.Where("module_id = ?", parentID).Find(&rows).Error; err != nil {
			return nil, err
		}
		return chapterNodes(rows), nil
	case LevelFormation:
		var rows []catalog.Module
		if err := q.Where("formation_id = ?", parentID).Find(&rows).Error; err != nil {
			return nil, err
		}
		return moduleNodes(rows), nil
	}
	return nil, fmt.Errorf("unknown level %q", level)
}

func (g *GormStore) Save(node catalog.DurationNode) error {
	return g.db.Save(node).Error
}

func (g *GormStore) InTransaction(fn func(tx Store) error) error {
	return g.db.Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}

func courseNodes(rows []catalog.Course) []catalog.DurationNode {
	nodes := make([]catalog.DurationNode, len(rows))
	for i := range rows {
		nodes[i] = &rows[i]
	}
	return nodes
}

func chapterNodes(rows []catalog.Chapter) []catalog.DurationNode {
	nodes := make([]catalog.DurationNode, len(rows))
	for i := range rows {
		nodes[i] = &rows[i]
	}
	return nodes
}

func moduleNodes(rows []catalog.Module) []catalog.DurationNode {
	nodes := make([]catalog.DurationNode, len(rows))
	for i := range rows {
		nodes[i] = &rows[i]
	}
	return nodes
}

func formationNodes(rows []catalog.Formation) []catalog.DurationNode {
	nodes := make([]catalog.DurationNode, len(rows))
	for i := range rows {
		nodes[i] = &rows[i]
	}
	return nodes
}
