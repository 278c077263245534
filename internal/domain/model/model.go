// Package model contains domain models passed between layers.
package model

// Entrant is one ranked participant decoded from an upstream payload.
type Entrant struct {
	// ID is an opaque stable identifier. The feed decoder uses the
	// upstream id when the payload carries one and mints a UUID
	// otherwise, so identity lookups never compare display names.
	// IDs are stable within a snapshot; cross-snapshot stability is
	// only as good as the upstream contract.
	ID         string
	Name       string
	Avatar     string
	Department string
	Team       string
	Points     int
	Revenue    float64
	NPS        float64
	// XP, when non-nil, is the upstream's precomputed value and takes
	// precedence over client-side derivation from Points.
	XP    *int
	Trend int
	// Rank is the upstream's unfiltered rank when provided, zero
	// otherwise. Ranks within a view are always reassigned.
	Rank int
}

// Subject is the viewer's own entry in the payload.
type Subject struct {
	ID         string
	Name       string
	Department string
	Team       string
	Points     int
	XP         *int
	// Rank is the unfiltered rank from the payload. It is the fallback
	// when the subject is filtered out of the current view scope.
	Rank int
}

// LevelTier is a tier row as carried by the payload's levelTiers list.
type LevelTier struct {
	Name  string
	MinXP int
}

// Snapshot is one immutable fetch result. A new snapshot replaces the
// previous one wholesale; nothing downstream mutates it.
type Snapshot struct {
	Entrants []Entrant
	Subject  Subject
	// LevelTiers overrides the configured ladder when non-empty.
	LevelTiers  []LevelTier
	LastUpdated string
	// Generation orders snapshots so a stale fetch can never replace a
	// newer one.
	Generation uint64
	// RowDefects counts payload rows that required defaulting during
	// decode. Reported once per payload, not per row.
	RowDefects int
}
