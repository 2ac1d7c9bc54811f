package workers

import (
	"context"

	"github.com/Luisfetoga2/Tyba-Backend-Engineer/internal/config"
	"github.com/Luisfetoga2/Tyba-Backend-Engineer/internal/logger"
	"github.com/Luisfetoga2/Tyba-Backend-Engineer/internal/store"
)

// Workers aggregates every background worker of the application.
type Workers struct {
	workers []Worker
}

// NewWorkers constructs all background workers: currently only the
// revocation-registry janitor.
func NewWorkers(blacklist store.TokenBlacklist, cfg config.Workers, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			NewBlacklistJanitor(blacklist, cfg.BlacklistSweepInterval, logger),
		},
	}
}

// Run launches every worker in its own goroutine. The workers stop when ctx
// is cancelled.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		go worker.Run(ctx)
	}
}
