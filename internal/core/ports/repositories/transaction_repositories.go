package repositories

import (
	"context"
	"time"

	"github.com/samuelwu/wex-tag-transaction/internal/core/domain"
)

// TransactionReader defines read operations for transaction records.
type TransactionReader interface {
	// FindTransactionByID retrieves a single transaction by its ID.
	// Returns apperrors.ErrNotFound when no record exists.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves the first page of transactions in
	// store-native order, bounded by limit.
	ListTransactions(ctx context.Context, limit int) ([]domain.Transaction, error)

	// ListTransactionsByDate retrieves the first page of transactions whose
	// date matches exactly, bounded by limit.
	ListTransactionsByDate(ctx context.Context, date time.Time, limit int) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for transaction records.
type TransactionWriter interface {
	// SaveTransaction persists a new transaction record.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error
}

// TransactionRepositoryFacade combines all transaction repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}

// RepositoryProvider bundles the repositories handed to the service layer.
type RepositoryProvider struct {
	TransactionRepo TransactionRepositoryFacade
}
