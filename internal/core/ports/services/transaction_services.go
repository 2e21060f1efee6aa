package services

import (
	"context"
	"time"

	"github.com/samuelwu/wex-tag-transaction/internal/core/domain"
	"github.com/samuelwu/wex-tag-transaction/internal/dto"
)

// TransactionReaderSvc defines read operations for transactions.
type TransactionReaderSvc interface {
	// ListTransactions retrieves the first page of transactions, optionally
	// filtered to an exact date.
	ListTransactions(ctx context.Context, date *time.Time) ([]domain.Transaction, error)

	// GetConvertedTransaction retrieves a transaction by ID and composes it
	// with the exchange rate applicable for the given currency. An empty
	// currency yields the identity U.S. dollar rate.
	GetConvertedTransaction(ctx context.Context, transactionID, currency string) (*dto.ConvertedTransactionResponse, error)
}

// TransactionWriterSvc defines write operations for transactions.
type TransactionWriterSvc interface {
	// CreateTransaction validates and persists a new transaction, returning
	// the stored record with its assigned ID.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)
}

// TransactionSvcFacade combines all transaction-related service interfaces.
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
