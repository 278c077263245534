package repository

import (
	"context"
	"sync/atomic"

	"github.com/playmetrics/podium/internal/domain/model"
	"github.com/playmetrics/podium/pkg/metrics"
)

// MemoryStore implements Store with an atomic snapshot swap. Readers are
// lock-free; writers race only on the compare-and-swap, so last-writer
// by generation always wins regardless of response arrival order.
type MemoryStore struct {
	current atomic.Pointer[model.Snapshot]
}

// NewMemoryStore creates an empty in-memory snapshot store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Latest returns the current snapshot, or ErrEmpty before the first
// publish.
func (s *MemoryStore) Latest(_ context.Context) (model.Snapshot, error) {
	snap := s.current.Load()
	if snap == nil {
		return model.Snapshot{}, ErrEmpty
	}
	return *snap, nil
}

// Replace publishes snap unless a snapshot with an equal or newer
// generation is already current.
func (s *MemoryStore) Replace(_ context.Context, snap model.Snapshot) bool {
	for {
		cur := s.current.Load()
		if cur != nil && cur.Generation >= snap.Generation {
			metrics.RecordSnapshotDiscarded()
			return false
		}
		if s.current.CompareAndSwap(cur, &snap) {
			metrics.RecordSnapshotPublished()
			metrics.UpdateEntrantsTotal(len(snap.Entrants))
			metrics.UpdateSnapshotGeneration(snap.Generation)
			return true
		}
	}
}

// Count returns the entrant count of the current snapshot.
func (s *MemoryStore) Count(_ context.Context) int {
	snap := s.current.Load()
	if snap == nil {
		return 0
	}
	return len(snap.Entrants)
}
