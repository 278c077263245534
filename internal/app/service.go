// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"sync"
	"time"

	"github.com/playmetrics/podium/internal/adapters/feed"
	"github.com/playmetrics/podium/internal/adapters/repository"
	"github.com/playmetrics/podium/internal/domain/filterset"
	"github.com/playmetrics/podium/internal/domain/rank"
	"github.com/playmetrics/podium/internal/domain/score"
	"github.com/playmetrics/podium/internal/domain/tier"
	"github.com/playmetrics/podium/internal/domain/types"
	"github.com/playmetrics/podium/internal/domain/view"
	"github.com/playmetrics/podium/pkg/logger"
	"github.com/playmetrics/podium/pkg/metrics"
)

// Preset names a board flavor. Each observed dashboard view is a preset
// over the same pipeline: only the default sort key and scope differ.
type Preset string

// Board presets.
const (
	PresetAgent   Preset = "agent"
	PresetManager Preset = "manager"
	PresetTeam    Preset = "team"
)

// ParsePreset maps a wire value to a Preset, defaulting to agent.
func ParsePreset(s string) Preset {
	switch Preset(s) {
	case PresetManager:
		return PresetManager
	case PresetTeam:
		return PresetTeam
	default:
		return PresetAgent
	}
}

func (p Preset) defaults() (rank.Key, filterset.Scope) {
	switch p {
	case PresetManager:
		return rank.KeyRevenue, filterset.ScopeDepartments
	case PresetTeam:
		return rank.KeyNPS, filterset.ScopeCurrentTeam
	default:
		return rank.KeyPoints, filterset.ScopeAllDepartments
	}
}

// BoardQuery is one view request as it arrives from the API layer.
// Empty fields fall back to the preset's defaults.
type BoardQuery struct {
	Preset     Preset
	SortKey    string
	Search     string
	Department string
	Tier       string
	Scope      string
	Page       int
}

// Service implements the API dependencies for the board system.
type Service struct {
	mu sync.RWMutex

	// Core components
	store     repository.Store
	refresher *feed.Refresher
	assembler *view.Assembler

	// Configuration
	feedURL         string
	feedTimeout     time.Duration
	refreshInterval time.Duration
	pageSize        int
	headSize        int
	podiumSize      int
	xpRatio         int
	ladder          tier.Ladder

	// State
	started bool

	// Logging
	log logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithFeedURL sets the upstream payload endpoint. An empty URL disables
// the background refresher; snapshots then arrive only via the store.
func WithFeedURL(url string) Option {
	return func(s *Service) {
		s.feedURL = url
	}
}

// WithFeedTimeout bounds a single payload fetch.
func WithFeedTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.feedTimeout = d
		}
	}
}

// WithRefreshInterval sets the snapshot refresh cadence.
func WithRefreshInterval(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.refreshInterval = d
		}
	}
}

// WithPageSize sets the pagination window size.
func WithPageSize(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.pageSize = n
		}
	}
}

// WithHeadSize sets the fixed top-N section size.
func WithHeadSize(n int) Option {
	return func(s *Service) {
		if n >= 0 {
			s.headSize = n
		}
	}
}

// WithPodiumSize caps the podium length.
func WithPodiumSize(n int) Option {
	return func(s *Service) {
		if n >= 0 {
			s.podiumSize = n
		}
	}
}

// WithXPRatio sets the points-to-XP conversion ratio.
func WithXPRatio(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.xpRatio = n
		}
	}
}

// WithLadder sets the configured tier ladder.
func WithLadder(l tier.Ladder) Option {
	return func(s *Service) {
		if l.Len() > 0 {
			s.ladder = l
		}
	}
}

// WithStore injects a snapshot store. Used by tests and by callers that
// publish snapshots out of band.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		feedTimeout:     5 * time.Second,
		refreshInterval: 15 * time.Second,
		pageSize:        10,
		headSize:        10,
		podiumSize:      3,
		xpRatio:         10,
		ladder:          tier.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start initializes and starts the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.log == nil {
		s.log = logger.Get()
	}

	s.log.Info(ctx, "starting board service...")

	if s.store == nil {
		s.store = repository.NewMemoryStore()
	}
	s.assembler = view.New(
		view.WithNormalizer(score.NewNormalizer(score.WithRatio(s.xpRatio))),
		view.WithLadder(s.ladder),
		view.WithHeadSize(s.headSize),
		view.WithPageSize(s.pageSize),
		view.WithPodiumSize(s.podiumSize),
	)

	if s.feedURL != "" {
		client := feed.NewClient(s.feedURL, feed.WithTimeout(s.feedTimeout))
		s.refresher = feed.NewRefresher(client, s.store,
			feed.WithInterval(s.refreshInterval),
			feed.WithLogger(s.log),
		)
		s.refresher.Start(ctx)
	}

	s.started = true
	s.log.Info(ctx, "board service started",
		logger.String("feedURL", s.feedURL),
		logger.Int("pageSize", s.pageSize),
		logger.Int("headSize", s.headSize),
	)
	return nil
}

// Stop gracefully shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.log.Info(context.Background(), "stopping board service...")
	if s.refresher != nil {
		s.refresher.Stop()
	}
	s.started = false
	s.log.Info(context.Background(), "board service stopped")
}

// Board runs the view pipeline for one query over the current snapshot.
// Returns repository.ErrEmpty until the first snapshot lands.
func (s *Service) Board(ctx context.Context, q BoardQuery) (types.ViewModel, error) {
	snap, err := s.store.Latest(ctx)
	if err != nil {
		return types.ViewModel{}, err
	}

	sortKey, scope := q.Preset.defaults()
	if q.SortKey != "" {
		sortKey = rank.ParseKey(q.SortKey)
	}
	if q.Scope != "" {
		scope = filterset.Scope(q.Scope)
	}

	query := view.Query{
		SortKey: sortKey,
		Filter: filterset.State{
			Search:     q.Search,
			Department: q.Department,
			Tier:       q.Tier,
			Scope:      scope,
		},
		Page: q.Page,
	}

	start := time.Now()
	vm := s.assembler.Build(snap, query)
	metrics.RecordPipelineRun(float64(time.Since(start).Microseconds()) / 1000.0)

	// Zero rows is a valid state, not a failure; the view renders its
	// "no results" affordance. Counted for visibility only.
	if len(vm.Rows) == 0 {
		metrics.RecordEmptyResult()
	}
	return vm, nil
}

// Position returns the subject's position card for one query scope.
func (s *Service) Position(ctx context.Context, q BoardQuery) (types.Position, error) {
	vm, err := s.Board(ctx, q)
	if err != nil {
		return types.Position{}, err
	}
	return vm.Position, nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started":  s.started,
		"pageSize": s.pageSize,
		"headSize": s.headSize,
		"xpRatio":  s.xpRatio,
	}

	if s.started {
		stats["entrants"] = s.store.Count(ctx)
		if snap, err := s.store.Latest(ctx); err == nil {
			stats["generation"] = snap.Generation
			stats["lastUpdated"] = snap.LastUpdated
		}
		if s.refresher != nil {
			stats["fetchGeneration"] = s.refresher.Generation()
		}
		metrics.UpdateEntrantsTotal(s.store.Count(ctx))
	}
	return stats
}
