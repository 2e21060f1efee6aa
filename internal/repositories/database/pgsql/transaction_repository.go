package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/samuelwu/wex-tag-transaction/internal/apperrors"
	"github.com/samuelwu/wex-tag-transaction/internal/core/domain"
	portsrepo "github.com/samuelwu/wex-tag-transaction/internal/core/ports/repositories"
)

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for transaction records.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

// SaveTransaction inserts a new transaction record.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	query := `
		INSERT INTO transactions (transaction_id, transaction_date, description, amount, created_at)
		VALUES ($1, $2, $3, $4, $5);
	`

	_, err := r.Pool.Exec(ctx, query,
		txn.TransactionID,
		txn.Date,
		txn.Description,
		txn.Amount,
		txn.CreatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save transaction", err)
	}
	return nil
}

// FindTransactionByID retrieves a transaction by its ID.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `
		SELECT transaction_id, transaction_date, description, amount, created_at
		FROM transactions
		WHERE transaction_id = $1;
	`
	var txn domain.Transaction
	err := r.Pool.QueryRow(ctx, query, transactionID).Scan(
		&txn.TransactionID,
		&txn.Date,
		&txn.Description,
		&txn.Amount,
		&txn.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find transaction by id", err)
	}

	return &txn, nil
}

// ListTransactions retrieves the first page of transactions in insertion order.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, limit int) ([]domain.Transaction, error) {
	query := `
		SELECT transaction_id, transaction_date, description, amount, created_at
		FROM transactions
		ORDER BY created_at, transaction_id
		LIMIT $1;
	`
	rows, err := r.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query transactions", err)
	}
	defer rows.Close()

	return collectTransactions(rows)
}

// ListTransactionsByDate retrieves the first page of transactions with the
// exact transaction date.
func (r *PgxTransactionRepository) ListTransactionsByDate(ctx context.Context, date time.Time, limit int) ([]domain.Transaction, error) {
	query := `
		SELECT transaction_id, transaction_date, description, amount, created_at
		FROM transactions
		WHERE transaction_date = $1
		ORDER BY created_at, transaction_id
		LIMIT $2;
	`
	rows, err := r.Pool.Query(ctx, query, date, limit)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query transactions by date", err)
	}
	defer rows.Close()

	return collectTransactions(rows)
}

func collectTransactions(rows pgx.Rows) ([]domain.Transaction, error) {
	txns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Transaction, error) {
		var txn domain.Transaction
		err := row.Scan(
			&txn.TransactionID,
			&txn.Date,
			&txn.Description,
			&txn.Amount,
			&txn.CreatedAt,
		)
		return txn, err
	})
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan transactions", err)
	}
	if txns == nil {
		txns = []domain.Transaction{}
	}
	return txns, nil
}
