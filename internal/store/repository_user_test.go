package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Luisfetoga2/Tyba-Backend-Engineer/internal/logger"
	"github.com/Luisfetoga2/Tyba-Backend-Engineer/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUserRepo(t *testing.T) (UserRepository, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	log := logger.Nop()
	return NewUserRepository(&DB{DB: mockDB, logger: log}, log), mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestUserRepository_CreateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	createdAt := time.Now()
	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("u@example.com", "hashed-password").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "created_at"}).
			AddRow("4d1c2cb1-6d44-4f27-a6d4-6cb8f84a3a10", "u@example.com", "hashed-password", createdAt))

	created, err := repo.CreateUser(context.Background(), models.User{Email: "u@example.com", PasswordHash: "hashed-password"})
	require.NoError(t, err)

	assert.Equal(t, "4d1c2cb1-6d44-4f27-a6d4-6cb8f84a3a10", created.ID)
	assert.Equal(t, "u@example.com", created.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_CreateUser_DuplicateEmail(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("u@example.com", "hashed-password").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), models.User{Email: "u@example.com", PasswordHash: "hashed-password"})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_CreateUser_UnexpectedError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("u@example.com", "hashed-password").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.CreateUser(context.Background(), models.User{Email: "u@example.com", PasswordHash: "hashed-password"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestUserRepository_FindUserByEmail_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(`SELECT id, email, password_hash, created_at`).
		WithArgs("u@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "created_at"}).
			AddRow("4d1c2cb1-6d44-4f27-a6d4-6cb8f84a3a10", "u@example.com", "hashed-password", time.Now()))

	found, err := repo.FindUserByEmail(context.Background(), "u@example.com")
	require.NoError(t, err)

	assert.Equal(t, "u@example.com", found.Email)
	assert.Equal(t, "hashed-password", found.PasswordHash)
}

func TestUserRepository_FindUserByEmail_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(`SELECT id, email, password_hash, created_at`).
		WithArgs("missing@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "created_at"}))

	_, err := repo.FindUserByEmail(context.Background(), "missing@example.com")
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestUserRepository_FindUserByID_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(`SELECT id, email, password_hash, created_at`).
		WithArgs("4d1c2cb1-6d44-4f27-a6d4-6cb8f84a3a10").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "created_at"}))

	_, err := repo.FindUserByID(context.Background(), "4d1c2cb1-6d44-4f27-a6d4-6cb8f84a3a10")
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}
