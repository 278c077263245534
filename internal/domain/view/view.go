// Package view assembles render-ready board views from payload snapshots.
//
// The Assembler composes the whole pipeline: normalize, filter, rank,
// paginate, annotate. Every board (agent leaderboard, manager leaderboard,
// team performance) runs the same pipeline, parameterized only by the
// query's sort key and scope, so no view reimplements any stage.
package view

import (
	"github.com/playmetrics/podium/internal/domain/filterset"
	"github.com/playmetrics/podium/internal/domain/model"
	"github.com/playmetrics/podium/internal/domain/page"
	"github.com/playmetrics/podium/internal/domain/rank"
	"github.com/playmetrics/podium/internal/domain/score"
	"github.com/playmetrics/podium/internal/domain/tier"
	"github.com/playmetrics/podium/internal/domain/types"
)

// Default assembly configuration constants.
const (
	defaultHeadSize   = 10
	defaultPageSize   = 10
	defaultPodiumSize = 3
)

// Option applies a configuration option to the Assembler.
type Option func(*Assembler)

// WithNormalizer sets the score normalizer.
func WithNormalizer(n *score.Normalizer) Option {
	return func(a *Assembler) {
		if n != nil {
			a.norm = n
		}
	}
}

// WithLadder sets the tier ladder used when the snapshot carries none.
func WithLadder(l tier.Ladder) Option {
	return func(a *Assembler) {
		if l.Len() > 0 {
			a.ladder = l
		}
	}
}

// WithHeadSize sets the fixed top-N section size.
func WithHeadSize(n int) Option {
	return func(a *Assembler) {
		if n >= 0 {
			a.headSize = n
		}
	}
}

// WithPageSize sets the pagination window size.
func WithPageSize(n int) Option {
	return func(a *Assembler) {
		if n > 0 {
			a.pageSize = n
		}
	}
}

// WithPodiumSize sets the maximum podium length.
func WithPodiumSize(n int) Option {
	return func(a *Assembler) {
		if n >= 0 {
			a.podiumSize = n
		}
	}
}

// Query is one immutable view request: which field to sort by, which
// filter selection applies, and which page of the remainder to show.
type Query struct {
	SortKey rank.Key
	Filter  filterset.State
	Page    int
}

// Assembler builds ViewModels from snapshots.
type Assembler struct {
	norm       *score.Normalizer
	ladder     tier.Ladder
	headSize   int
	pageSize   int
	podiumSize int
}

// New creates an Assembler with configuration options.
func New(opts ...Option) *Assembler {
	a := &Assembler{
		norm:       score.NewNormalizer(),
		ladder:     tier.Default(),
		headSize:   defaultHeadSize,
		pageSize:   defaultPageSize,
		podiumSize: defaultPodiumSize,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// PageSize reports the configured pagination window size.
func (a *Assembler) PageSize() int {
	return a.pageSize
}

// Build runs the full pipeline over a snapshot. It is pure: no I/O, no
// mutation of the snapshot, and a fresh result on every call. The
// requested page is clamped to the computed page range before windowing.
func (a *Assembler) Build(snap model.Snapshot, q Query) types.ViewModel {
	ladder := a.ladderFor(snap)
	f := filterset.New(
		filterset.WithNormalizer(a.norm),
		filterset.WithLadder(ladder),
	)

	filtered := f.Apply(snap.Entrants, q.Filter, snap.Subject)
	ranked := rank.Assign(filtered, q.SortKey)
	subjectRank, inScope := rank.SubjectRank(ranked, snap.Subject)

	remainder := len(ranked) - a.headSize
	current := page.Clamp(q.Page, page.Pages(remainder, a.pageSize))
	win := page.Split(ranked, a.headSize, a.pageSize, current)

	podiumLen := a.podiumSize
	if podiumLen > len(ranked) {
		podiumLen = len(ranked)
	}
	podium := make([]types.Row, 0, podiumLen)
	for _, e := range ranked[:podiumLen] {
		podium = append(podium, a.row(e, ladder))
	}

	rows := make([]types.Row, 0, len(win.Head)+len(win.WindowItems))
	for _, e := range win.Head {
		rows = append(rows, a.row(e, ladder))
	}
	for _, e := range win.WindowItems {
		rows = append(rows, a.row(e, ladder))
	}

	subjectXP := a.norm.Resolve(snap.Subject.Points, snap.Subject.XP)
	return types.ViewModel{
		Podium: podium,
		Rows:   rows,
		Position: types.Position{
			EntrantID: snap.Subject.ID,
			Name:      snap.Subject.Name,
			Rank:      subjectRank,
			XP:        subjectXP,
			Tier:      ladder.Classify(subjectXP).Name,
			InScope:   inScope,
		},
		Pager: types.Pager{
			CurrentPage: win.CurrentPage,
			TotalPages:  win.TotalPages,
			HasMore:     win.HasMore,
		},
		LastUpdated: snap.LastUpdated,
	}
}

// row annotates one ranked entry with its tier and trend glyph.
func (a *Assembler) row(e rank.Entry, ladder tier.Ladder) types.Row {
	xp := a.norm.Resolve(e.Points, e.XP)
	return types.Row{
		Rank:       e.ViewRank,
		EntrantID:  e.ID,
		Name:       e.Name,
		Avatar:     e.Avatar,
		Department: e.Department,
		Team:       e.Team,
		Points:     e.Points,
		Revenue:    e.Revenue,
		NPS:        e.NPS,
		XP:         xp,
		Tier:       ladder.Classify(xp).Name,
		Trend:      trendGlyph(e.Trend),
	}
}

// ladderFor prefers a valid snapshot-supplied ladder over the configured
// one. An unusable override falls back rather than failing the build.
func (a *Assembler) ladderFor(snap model.Snapshot) tier.Ladder {
	if len(snap.LevelTiers) == 0 {
		return a.ladder
	}
	tiers := make([]tier.Tier, 0, len(snap.LevelTiers))
	for _, lt := range snap.LevelTiers {
		tiers = append(tiers, tier.Tier{Name: lt.Name, MinXP: lt.MinXP})
	}
	ladder, err := tier.NewLadder(tiers)
	if err != nil {
		return a.ladder
	}
	return ladder
}

func trendGlyph(trend int) string {
	switch {
	case trend > 0:
		return "up"
	case trend < 0:
		return "down"
	default:
		return "flat"
	}
}
