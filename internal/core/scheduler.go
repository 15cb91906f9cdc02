package core

// scheduler.go runs upload history maintenance in the background. Each run
// deletes history records older than the retention window. It logs failures
// and keeps going; a failed prune never stops the server.

import (
	"context"
	"log/slog"
	"time"
)

// PruneConfig holds configuration for the history pruner.
// Zero values fall back to the defaults below.
type PruneConfig struct {
	Retention     time.Duration // Age after which records are deleted (default: 30 days)
	CheckInterval time.Duration // How often to run (default: 24h)
}

const (
	DefaultHistoryRetention = 30 * 24 * time.Hour
	DefaultPruneInterval    = 24 * time.Hour
)

func (c PruneConfig) withDefaults() PruneConfig {
	if c.Retention <= 0 {
		c.Retention = DefaultHistoryRetention
	}
	if c.CheckInterval <= 0 {
		c.CheckInterval = DefaultPruneInterval
	}
	return c
}

// StartHistoryPruner prunes upload history immediately, then every
// CheckInterval, until ctx is cancelled. Run it in its own goroutine.
func (s *Service) StartHistoryPruner(ctx context.Context, cfg PruneConfig) {
	cfg = cfg.withDefaults()
	slog.Info("history pruner started",
		"retention", cfg.Retention.String(),
		"interval", cfg.CheckInterval.String(),
	)

	s.PruneHistory(ctx, cfg.Retention)

	ticker := time.NewTicker(cfg.CheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("history pruner stopped")
			return
		case <-ticker.C:
			s.PruneHistory(ctx, cfg.Retention)
		}
	}
}

// PruneHistory deletes records older than retention and returns how many
// were removed. Errors are logged and reported as zero.
func (s *Service) PruneHistory(ctx context.Context, retention time.Duration) int64 {
	start := time.Now()
	cutoff := s.now().UTC().Add(-retention)

	pruned, err := s.history.PruneBefore(ctx, cutoff)
	if err != nil {
		slog.Error("history prune failed", "error", err)
		return 0
	}

	slog.Info("pruned upload history",
		"records_pruned", pruned,
		"cutoff", cutoff.Format(time.RFC3339),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return pruned
}
