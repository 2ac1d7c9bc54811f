package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/Luisfetoga2/Tyba-Backend-Engineer/internal/logger"
	"github.com/Luisfetoga2/Tyba-Backend-Engineer/models"
)

// psql builds queries with PostgreSQL-style $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// transactionRepository is the PostgreSQL-backed implementation of
// [TransactionRepository]. Queries are built with squirrel against the
// "transactions" table.
type transactionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTransactionRepository constructs a [TransactionRepository] backed by the
// provided database connection and logger.
func NewTransactionRepository(db *DB, logger *logger.Logger) TransactionRepository {
	logger.Debug().Msg("creating transaction repository")
	return &transactionRepository{
		db:     db,
		logger: logger,
	}
}

// CreateTransaction inserts a new transaction record and returns the
// persisted row, including the server-assigned id.
func (r *transactionRepository) CreateTransaction(ctx context.Context, transaction models.Transaction) (models.Transaction, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.
		Insert(transaction.TableName()).
		Columns("city", "coordinates", "date", "user_id").
		Values(transaction.City, transaction.Coordinates, transaction.Date, transaction.UserID).
		Suffix("RETURNING id, city, coordinates, date, user_id").
		ToSql()
	if err != nil {
		return models.Transaction{}, fmt.Errorf("error building insert transaction query: %w", err)
	}

	var created models.Transaction
	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&created.ID, &created.City, &created.Coordinates, &created.Date, &created.UserID); err != nil {
		log.Err(err).Str("func", "*transactionRepository.CreateTransaction").Str("user_id", transaction.UserID).Msg("error creating transaction")
		return models.Transaction{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// FindTransactionsByUser returns every transaction owned by userID, oldest
// first. An empty result set yields an empty (non-nil) slice so the HTTP
// layer serializes it as a JSON array rather than null.
func (r *transactionRepository) FindTransactionsByUser(ctx context.Context, userID string) ([]models.Transaction, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.
		Select("id", "city", "coordinates", "date", "user_id").
		From(models.Transaction{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building select transactions query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*transactionRepository.FindTransactionsByUser").Str("user_id", userID).Msg("error querying transactions")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	transactions := make([]models.Transaction, 0)
	for rows.Next() {
		var transaction models.Transaction
		if err = rows.Scan(&transaction.ID, &transaction.City, &transaction.Coordinates, &transaction.Date, &transaction.UserID); err != nil {
			log.Err(err).Str("func", "*transactionRepository.FindTransactionsByUser").Msg("error scanning transaction row")
			return nil, fmt.Errorf("error scanning transaction row: %w", err)
		}
		transactions = append(transactions, transaction)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}

	return transactions, nil
}
