package duration

import (
	"fmt"

	"formadmin/models/catalog"
)

// Report describes the stored-vs-computed drift of one node
type Report struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Stored      int    `json:"stored"`
	Computed    int    `json:"computed"`
	Delta       int    `json:"delta"` // computed - stored
	NeedsUpdate bool   `json:"needs_update"`
	Error       string `json:"error,omitempty"`
}

// LevelAnalysis is the drift report for every active node of one level
type LevelAnalysis struct {
	Level           Level    `json:"level"`
	Total           int      `json:"total"`
	Inconsistencies int      `json:"inconsistencies"`
	Reports         []Report `json:"reports"`
}

// Analyze compares a node's stored duration against its computed one
func Analyze(store Store, level Level, node catalog.DurationNode) (Report, error) {
	computed, err := ComputeDuration(store, level, node)
	if err != nil {
		return Report{ID: node.NodeID(), Title: node.NodeTitle()}, err
	}

	stored := node.GetDurationMinutes()
	return Report{
		ID:          node.NodeID(),
		Title:       node.NodeTitle(),
		Stored:      stored,
		Computed:    computed,
		Delta:       computed - stored,
		NeedsUpdate: stored != computed,
	}, nil
}

// AnalyzeLevel scans every active node of a level. A node whose analysis fails
// is counted as inconsistent and the scan keeps going, so one corrupt node
// cannot blank the whole dashboard.
func (s *Service) AnalyzeLevel(level Level) (LevelAnalysis, error) {
	nodes, err := s.store.ActiveNodes(level)
	if err != nil {
		return LevelAnalysis{}, err
	}

	analysis := LevelAnalysis{
		Level:   level,
		Total:   len(nodes),
		Reports: make([]Report, 0, len(nodes)),
	}

	for _, node := range nodes {
		report, err := Analyze(s.store, level, node)
		if err != nil {
			// Fail-open: unknown state is treated as inconsistent
			report.NeedsUpdate = true
			report.Error = fmt.Sprintf("analysis failed: %v", err)
		}
		if report.NeedsUpdate {
			analysis.Inconsistencies++
		}
		analysis.Reports = append(analysis.Reports, report)
	}

	return analysis, nil
}
