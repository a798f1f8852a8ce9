package workers

import (
	"context"
	"time"

	"log/slog"

	"github.com/platanus-hack/platanus-hack-25-team-41/internal/domain"
)

type ActiveSightingSource interface {
	ListActive(ctx context.Context) ([]domain.Sighting, error)
}

type ActiveSightingSink interface {
	SetActive(ctx context.Context, sightings []domain.Sighting, ttl time.Duration) error
}

// CacheRefresher keeps the active-sightings snapshot in Redis warm so the
// map endpoints rarely fall through to Postgres. The TTL outlives the tick
// interval, so a slow refresh degrades to a cache miss, not stale data held
// forever.
type CacheRefresher struct {
	source   ActiveSightingSource
	sink     ActiveSightingSink
	logger   *slog.Logger
	interval time.Duration
	ttl      time.Duration
}

func NewCacheRefresher(source ActiveSightingSource, sink ActiveSightingSink, logger *slog.Logger, interval, ttl time.Duration) *CacheRefresher {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	if ttl <= interval {
		ttl = 2 * interval
	}
	return &CacheRefresher{
		source:   source,
		sink:     sink,
		logger:   logger,
		interval: interval,
		ttl:      ttl,
	}
}

func (w *CacheRefresher) Run(ctx context.Context) {
	w.logger.Info("cacheRefresher STARTED", slog.Duration("interval", w.interval))

	// Warm the cache immediately, then tick.
	w.refresh(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("cacheRefresher STOPPED", slog.String("reason", ctx.Err().Error()))
			return
		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}

func (w *CacheRefresher) refresh(ctx context.Context) {
	active, err := w.source.ListActive(ctx)
	if err != nil {
		w.logger.Error("refresh: ListActive failed", slog.Any("error", err))
		return
	}

	if err := w.sink.SetActive(ctx, active, w.ttl); err != nil {
		w.logger.Error("refresh: SetActive failed", slog.Any("error", err))
		return
	}

	w.logger.Debug("active sightings cache refreshed", slog.Int("count", len(active)))
}
