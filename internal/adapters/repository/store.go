// Package repository defines the snapshot store interface and errors.
package repository

import (
	"context"

	"github.com/playmetrics/podium/internal/domain/model"
)

// Store provides access to the latest payload snapshot. Snapshots are
// immutable values; readers get the whole snapshot and never observe a
// partial update.
type Store interface {
	// Latest returns the current snapshot.
	// Returns ErrEmpty until the first snapshot is published.
	Latest(ctx context.Context) (model.Snapshot, error)

	// Replace publishes a snapshot if it is newer than the current one.
	// Returns false when the snapshot's generation is not newer, which
	// is how stale fetch responses are discarded.
	Replace(ctx context.Context, snap model.Snapshot) bool

	// Count returns the number of entrants in the current snapshot.
	Count(ctx context.Context) int
}
