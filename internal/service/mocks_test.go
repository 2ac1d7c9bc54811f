package service

import (
	"context"
	"errors"

	"github.com/Luisfetoga2/Tyba-Backend-Engineer/models"
)

// mockUserRepository implements store.UserRepository with pluggable behavior
// per test.
type mockUserRepository struct {
	createUserFunc      func(ctx context.Context, user models.User) (models.User, error)
	findUserByEmailFunc func(ctx context.Context, email string) (models.User, error)
	findUserByIDFunc    func(ctx context.Context, id string) (models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createUserFunc == nil {
		return models.User{}, errors.New("CreateUser not configured")
	}
	return m.createUserFunc(ctx, user)
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if m.findUserByEmailFunc == nil {
		return models.User{}, errors.New("FindUserByEmail not configured")
	}
	return m.findUserByEmailFunc(ctx, email)
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, id string) (models.User, error) {
	if m.findUserByIDFunc == nil {
		return models.User{}, errors.New("FindUserByID not configured")
	}
	return m.findUserByIDFunc(ctx, id)
}

// mockTransactionRepository implements store.TransactionRepository.
type mockTransactionRepository struct {
	createTransactionFunc      func(ctx context.Context, transaction models.Transaction) (models.Transaction, error)
	findTransactionsByUserFunc func(ctx context.Context, userID string) ([]models.Transaction, error)
}

func (m *mockTransactionRepository) CreateTransaction(ctx context.Context, transaction models.Transaction) (models.Transaction, error) {
	if m.createTransactionFunc == nil {
		return models.Transaction{}, errors.New("CreateTransaction not configured")
	}
	return m.createTransactionFunc(ctx, transaction)
}

func (m *mockTransactionRepository) FindTransactionsByUser(ctx context.Context, userID string) ([]models.Transaction, error) {
	if m.findTransactionsByUserFunc == nil {
		return nil, errors.New("FindTransactionsByUser not configured")
	}
	return m.findTransactionsByUserFunc(ctx, userID)
}

// mockGeoAPIClient implements adapter.GeoAPIClient.
type mockGeoAPIClient struct {
	geocodeCityFunc  func(ctx context.Context, city string) (models.GeoResponse, error)
	searchPlacesFunc func(ctx context.Context, coordinates string) (models.GeoResponse, error)

	geocodeCalls []string
	placesCalls  []string
}

func (m *mockGeoAPIClient) GeocodeCity(ctx context.Context, city string) (models.GeoResponse, error) {
	m.geocodeCalls = append(m.geocodeCalls, city)
	if m.geocodeCityFunc == nil {
		return models.GeoResponse{}, errors.New("GeocodeCity not configured")
	}
	return m.geocodeCityFunc(ctx, city)
}

func (m *mockGeoAPIClient) SearchPlaces(ctx context.Context, coordinates string) (models.GeoResponse, error) {
	m.placesCalls = append(m.placesCalls, coordinates)
	if m.searchPlacesFunc == nil {
		return models.GeoResponse{}, errors.New("SearchPlaces not configured")
	}
	return m.searchPlacesFunc(ctx, coordinates)
}
