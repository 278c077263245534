package feed

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/playmetrics/podium/internal/adapters/repository"
	"github.com/playmetrics/podium/pkg/logger"
	"github.com/playmetrics/podium/pkg/metrics"
)

// Default refresher configuration constants.
const (
	defaultRefreshInterval = 15 * time.Second
)

// RefresherOption applies a configuration option to the Refresher.
type RefresherOption func(*Refresher)

// WithInterval sets the refresh cadence.
func WithInterval(d time.Duration) RefresherOption {
	return func(r *Refresher) {
		if d > 0 {
			r.interval = d
		}
	}
}

// WithLogger sets a custom logger for the refresher.
func WithLogger(log logger.Logger) RefresherOption {
	return func(r *Refresher) {
		if log != nil {
			r.log = log
		}
	}
}

// Refresher periodically fetches the upstream payload and publishes the
// decoded snapshot. Every fetch is stamped with a monotonically
// increasing generation before the request goes out, so a slow response
// that lands after a newer one is rejected by the store rather than
// rolling the view back.
type Refresher struct {
	client   *Client
	store    repository.Store
	interval time.Duration
	log      logger.Logger

	generation atomic.Uint64
	stopCh     chan struct{}
	wg         sync.WaitGroup
	started    bool
}

// NewRefresher creates a Refresher with configuration options.
func NewRefresher(client *Client, store repository.Store, opts ...RefresherOption) *Refresher {
	r := &Refresher{
		client:   client,
		store:    store,
		interval: defaultRefreshInterval,
		stopCh:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Start launches the refresh loop: one immediate fetch, then one per
// interval until ctx is canceled or Stop is called.
func (r *Refresher) Start(ctx context.Context) {
	if r.started {
		return
	}
	r.started = true
	if r.log == nil {
		r.log = logger.Get()
	}

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()

		r.refreshOnce(ctx)

		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-r.stopCh:
				return
			case <-ticker.C:
				r.refreshOnce(ctx)
			}
		}
	}()
}

// Stop terminates the refresh loop and waits for it to exit.
func (r *Refresher) Stop() {
	if !r.started {
		return
	}
	select {
	case <-r.stopCh:
	default:
		close(r.stopCh)
	}
	r.wg.Wait()
	r.started = false
}

// Generation reports the most recently issued fetch generation.
func (r *Refresher) Generation() uint64 {
	return r.generation.Load()
}

func (r *Refresher) refreshOnce(ctx context.Context) {
	gen := r.generation.Add(1)

	body, err := r.client.Fetch(ctx)
	if err != nil {
		metrics.RecordPayloadFetchError()
		r.log.Warn(ctx, "payload fetch failed",
			logger.Uint64("generation", gen),
			logger.Error(err),
		)
		return
	}
	metrics.RecordPayloadFetch()

	snap, err := DecodeSnapshot(body, gen)
	if err != nil {
		metrics.RecordPayloadFetchError()
		r.log.Warn(ctx, "payload decode failed",
			logger.Uint64("generation", gen),
			logger.Error(err),
		)
		return
	}

	// One report per payload regardless of how many rows were defaulted.
	if snap.RowDefects > 0 {
		metrics.RecordRowDefects(snap.RowDefects)
		r.log.Warn(ctx, "payload rows required defaulting",
			logger.Uint64("generation", gen),
			logger.Int("rows", snap.RowDefects),
		)
	}

	if !r.store.Replace(ctx, snap) {
		r.log.Debug(ctx, "stale snapshot discarded",
			logger.Uint64("generation", gen),
		)
		return
	}
	metrics.UpdateSnapshotLastUnix(time.Now().Unix())
	r.log.Debug(ctx, "snapshot published",
		logger.Uint64("generation", gen),
		logger.Int("entrants", len(snap.Entrants)),
	)
}
