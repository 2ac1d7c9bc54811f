package store

import (
	"sync"
	"time"

	"github.com/Luisfetoga2/Tyba-Backend-Engineer/internal/logger"
	"github.com/Luisfetoga2/Tyba-Backend-Engineer/internal/utils"
)

// memoryTokenBlacklist is the in-memory implementation of [TokenBlacklist].
//
// It maps every revoked token string to that token's natural expiry time,
// recorded at revocation so a background sweep can drop entries that can no
// longer authenticate anyway. Membership is keyed on the exact token string:
// revoking one token leaves other tokens of the same user untouched.
//
// All methods are safe for concurrent use.
type memoryTokenBlacklist struct {
	logger *logger.Logger

	mu      sync.RWMutex
	revoked map[string]time.Time
}

// NewMemoryTokenBlacklist constructs an empty in-memory [TokenBlacklist].
func NewMemoryTokenBlacklist(logger *logger.Logger) TokenBlacklist {
	logger.Debug().Msg("creating in-memory token blacklist")
	return &memoryTokenBlacklist{
		logger:  logger,
		revoked: make(map[string]time.Time),
	}
}

// Add marks a token string as revoked. The token's expiry claim is parsed
// without signature verification purely for cleanup bookkeeping; a string
// that does not parse as a JWT is still revoked, with no recorded expiry.
// Re-adding an already revoked token is a no-op.
func (b *memoryTokenBlacklist) Add(token string) {
	expiry, err := utils.ParseTokenExpiry(token)
	if err != nil {
		expiry = time.Time{}
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.revoked[token] = expiry
}

// Contains reports whether the exact token string has been revoked.
func (b *memoryTokenBlacklist) Contains(token string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.revoked[token]
	return ok
}

// DeleteExpired removes entries whose recorded expiry is before now and
// returns the number of removed entries. Entries without a recorded expiry
// are retained for the lifetime of the process.
func (b *memoryTokenBlacklist) DeleteExpired(now time.Time) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	removed := 0
	for token, expiry := range b.revoked {
		if !expiry.IsZero() && expiry.Before(now) {
			delete(b.revoked, token)
			removed++
		}
	}

	if removed > 0 {
		b.logger.Debug().Int("removed", removed).Int("remaining", len(b.revoked)).Msg("swept expired blacklist entries")
	}

	return removed
}
