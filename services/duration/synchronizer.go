package duration

import (
	"fmt"
	"log"
	"sync"

	"formadmin/models/catalog"
)

const (
	// DefaultBatchSize is used whenever the requested size is out of range
	DefaultBatchSize = 50
	// MaxBatchSize bounds the number of rows written per transaction
	MaxBatchSize = 1000
)

// SyncResult aggregates a bulk sync run across all processed levels
type SyncResult struct {
	Synced int      `json:"count"`
	Errors []string `json:"errors,omitempty"`
}

// Service is the duration aggregation engine: recompute, drift analysis,
// bulk sync and dashboard statistics over one Store.
type Service struct {
	store Store

	statsMu    sync.Mutex
	statsCache map[Level]EntityStats
}

// NewService creates a duration engine bound to the given store
func NewService(store Store) *Service {
	return &Service{
		store:      store,
		statsCache: make(map[Level]EntityStats),
	}
}

// NormalizeBatchSize clamps an out-of-range batch size to the default.
// Bad sizes are never rejected, only replaced.
func NormalizeBatchSize(size int) int {
	if size < 1 || size > MaxBatchSize {
		return DefaultBatchSize
	}
	return size
}

// UpdateNode recomputes and persists one node. Calling it again without
// intervening child changes is a no-op.
func (s *Service) UpdateNode(level Level, id uint) (UpdateStats, error) {
	node, err := s.store.NodeByID(level, id)
	if err != nil {
		return UpdateStats{}, err
	}

	computed, err := ComputeDuration(s.store, level, node)
	if err != nil {
		return UpdateStats{}, err
	}

	stats := UpdateStats{
		Previous: node.GetDurationMinutes(),
		Computed: computed,
	}
	if stats.Previous == computed {
		return stats, nil
	}

	node.SetDurationMinutes(computed)
	if err := s.store.Save(node); err != nil {
		return UpdateStats{}, err
	}
	stats.Changed = true
	return stats, nil
}

// UpdateStats summarizes a single-node recompute
type UpdateStats struct {
	Previous int  `json:"previous"`
	Computed int  `json:"computed"`
	Changed  bool `json:"changed"`
}

// SyncAll recomputes every active node of the filtered levels in fixed-size
// batches. LevelAll walks the hierarchy bottom-up (course first); a single
// pass with a narrower filter does not guarantee global consistency when
// several levels are stale at once.
//
// Per-node compute failures are collected in the result and the run keeps
// going. A failed batch commit rolls that batch back and aborts the sync;
// previously committed batches stay committed.
func (s *Service) SyncAll(filter Level, batchSize int) (SyncResult, error) {
	size := NormalizeBatchSize(batchSize)

	levels := SyncOrder
	if filter != LevelAll {
		levels = []Level{filter}
	}

	var result SyncResult
	for _, level := range levels {
		if err := s.syncLevel(level, size, &result); err != nil {
			return result, err
		}
	}

	// Stored values changed, cached statistics are stale
	s.ClearCache()
	return result, nil
}

func (s *Service) syncLevel(level Level, size int, result *SyncResult) error {
	nodes, err := s.store.ActiveNodes(level)
	if err != nil {
		return fmt.Errorf("loading %s nodes: %w", level, err)
	}

	for start := 0; start < len(nodes); start += size {
		end := start + size
		if end > len(nodes) {
			end = len(nodes)
		}
		if err := s.syncBatch(level, nodes[start:end], result); err != nil {
			return err
		}
		log.Printf("[DURATION-SYNC] level=%s batch=%d-%d synced=%d errors=%d",
			level, start, end, result.Synced, len(result.Errors))
	}
	return nil
}

// syncBatch recomputes one batch and persists it in a single transaction.
// Compute happens outside the transaction so a bad node cannot unwind the
// writes of its batch mates; only a genuine persistence failure rolls back.
func (s *Service) syncBatch(level Level, batch []catalog.DurationNode, result *SyncResult) error {
	type pending struct {
		node    catalog.DurationNode
		minutes int
	}

	updates := make([]pending, 0, len(batch))
	for _, node := range batch {
		minutes, err := ComputeDuration(s.store, level, node)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s %d: %v", level, node.NodeID(), err))
			continue
		}
		updates = append(updates, pending{node: node, minutes: minutes})
	}

	if len(updates) == 0 {
		return nil
	}

	err := s.store.InTransaction(func(tx Store) error {
		for _, u := range updates {
			u.node.SetDurationMinutes(u.minutes)
			if err := tx.Save(u.node); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("persisting %s batch: %w", level, err)
	}

	result.Synced += len(updates)
	return nil
}
