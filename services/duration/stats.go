package duration

import "math"

// EntityStats is the dashboard summary for one level
type EntityStats struct {
	Total           int     `json:"total"`
	Inconsistencies int     `json:"inconsistencies"`
	Percentage      float64 `json:"percentage"`
}

// EntityStats returns cached drift statistics for a level, scanning on a cache
// miss. Nodes whose analysis fails count as inconsistent (same fail-open rule
// as AnalyzeLevel). No mutation, safe to call from every dashboard load.
func (s *Service) EntityStats(level Level) (EntityStats, error) {
	s.statsMu.Lock()
	if stats, ok := s.statsCache[level]; ok {
		s.statsMu.Unlock()
		return stats, nil
	}
	s.statsMu.Unlock()

	nodes, err := s.store.ActiveNodes(level)
	if err != nil {
		return EntityStats{}, err
	}

	stats := EntityStats{Total: len(nodes)}
	for _, node := range nodes {
		report, err := Analyze(s.store, level, node)
		if err != nil || report.NeedsUpdate {
			stats.Inconsistencies++
		}
	}

	if stats.Total > 0 {
		stats.Percentage = round2(float64(stats.Inconsistencies) / float64(stats.Total) * 100)
	}

	s.statsMu.Lock()
	s.statsCache[level] = stats
	s.statsMu.Unlock()
	return stats, nil
}

// AllStats returns statistics for every node level, keyed by level name
func (s *Service) AllStats() (map[Level]EntityStats, error) {
	all := make(map[Level]EntityStats, len(SyncOrder))
	for _, level := range SyncOrder {
		stats, err := s.EntityStats(level)
		if err != nil {
			return nil, err
		}
		all[level] = stats
	}
	return all, nil
}

// ClearCache drops all cached statistics
func (s *Service) ClearCache() {
	s.statsMu.Lock()
	s.statsCache = make(map[Level]EntityStats)
	s.statsMu.Unlock()
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
