package store

import (
	"github.com/Luisfetoga2/Tyba-Backend-Engineer/internal/logger"
)

// Storages aggregates every persistence component of the application so the
// service layer can be wired from a single value.
type Storages struct {
	UserRepository        UserRepository
	TransactionRepository TransactionRepository
	TokenBlacklist        TokenBlacklist
}

// NewStorages constructs all storages backed by the given database
// connection. The token blacklist is deliberately in-memory and process-wide:
// revocation state does not survive a restart, at which point every
// outstanding token is still subject to its cryptographic expiry.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:        NewUserRepository(db, logger),
		TransactionRepository: NewTransactionRepository(db, logger),
		TokenBlacklist:        NewMemoryTokenBlacklist(logger),
	}
}
