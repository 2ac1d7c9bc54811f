package service

import (
	"github.com/Luisfetoga2/Tyba-Backend-Engineer/internal/adapter"
	"github.com/Luisfetoga2/Tyba-Backend-Engineer/internal/config"
	"github.com/Luisfetoga2/Tyba-Backend-Engineer/internal/logger"
	"github.com/Luisfetoga2/Tyba-Backend-Engineer/internal/store"
)

type Services struct {
	AuthService        AuthService
	TransactionService TransactionService
}

func NewServices(storages *store.Storages, geo adapter.GeoAPIClient, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AuthService:        NewAuthService(storages.UserRepository, storages.TokenBlacklist, cfg, logger),
		TransactionService: NewTransactionService(storages.TransactionRepository, geo, logger),
	}
}
