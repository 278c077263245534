// Package rank orders entrants by a sort key and assigns dense ranks.
package rank

import (
	"sort"

	"github.com/playmetrics/podium/internal/domain/model"
)

// Key names the numeric field a board sorts by.
type Key string

// Sort keys.
const (
	KeyPoints  Key = "points"
	KeyRevenue Key = "revenue"
	KeyNPS     Key = "nps"
)

// ParseKey maps a wire value to a Key, defaulting to points.
func ParseKey(s string) Key {
	switch Key(s) {
	case KeyRevenue:
		return KeyRevenue
	case KeyNPS:
		return KeyNPS
	default:
		return KeyPoints
	}
}

// Entry is an entrant with its assigned view-local rank.
type Entry struct {
	model.Entrant
	// ViewRank is dense and 1-based: no gaps, no shared ranks. Ties keep
	// input order, so equal scores never flicker rank across rebuilds.
	ViewRank int
}

// Assign stable-sorts entrants descending by key and assigns dense
// 1-based ranks. The input slice is not modified.
func Assign(entrants []model.Entrant, key Key) []Entry {
	out := make([]Entry, len(entrants))
	for i, e := range entrants {
		out[i] = Entry{Entrant: e}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return value(out[i].Entrant, key) > value(out[j].Entrant, key)
	})
	for i := range out {
		out[i].ViewRank = i + 1
	}
	return out
}

// SubjectRank locates the subject by ID within a ranked view. When the
// subject was filtered out of the current scope it returns the subject's
// unfiltered payload rank and false; a view must never show an undefined
// rank.
func SubjectRank(ranked []Entry, subject model.Subject) (int, bool) {
	for _, e := range ranked {
		if e.ID == subject.ID {
			return e.ViewRank, true
		}
	}
	return subject.Rank, false
}

func value(e model.Entrant, key Key) float64 {
	switch key {
	case KeyRevenue:
		return e.Revenue
	case KeyNPS:
		return e.NPS
	default:
		return float64(e.Points)
	}
}
