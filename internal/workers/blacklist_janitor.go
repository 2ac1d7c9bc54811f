package workers

import (
	"context"
	"time"

	"github.com/Luisfetoga2/Tyba-Backend-Engineer/internal/logger"
	"github.com/Luisfetoga2/Tyba-Backend-Engineer/internal/store"
)

// defaultSweepInterval bounds blacklist growth even when no interval is
// configured.
const defaultSweepInterval = 10 * time.Minute

// blacklistJanitor periodically removes revocation entries whose token has
// passed its natural expiry. Such tokens are rejected by signature/expiry
// verification anyway, so dropping them never re-admits a revoked token;
// it only bounds the memory held by the registry.
type blacklistJanitor struct {
	blacklist store.TokenBlacklist
	interval  time.Duration
	logger    *logger.Logger
}

// NewBlacklistJanitor constructs a janitor sweeping the given blacklist on
// the given interval. A non-positive interval falls back to
// defaultSweepInterval.
func NewBlacklistJanitor(blacklist store.TokenBlacklist, interval time.Duration, logger *logger.Logger) Worker {
	if interval <= 0 {
		interval = defaultSweepInterval
	}

	return &blacklistJanitor{
		blacklist: blacklist,
		interval:  interval,
		logger:    logger,
	}
}

// Run sweeps the blacklist on every tick until ctx is cancelled.
func (j *blacklistJanitor) Run(ctx context.Context) {
	j.logger.Info().Dur("interval", j.interval).Msg("blacklist janitor started")

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			j.logger.Info().Msg("blacklist janitor stopped")
			return
		case now := <-ticker.C:
			j.blacklist.DeleteExpired(now)
		}
	}
}
