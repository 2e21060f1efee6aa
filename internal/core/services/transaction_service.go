package services

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/samuelwu/wex-tag-transaction/internal/apperrors"
	"github.com/samuelwu/wex-tag-transaction/internal/core/domain"
	portsrepo "github.com/samuelwu/wex-tag-transaction/internal/core/ports/repositories"
	portssvc "github.com/samuelwu/wex-tag-transaction/internal/core/ports/services"
	"github.com/samuelwu/wex-tag-transaction/internal/dto"
	"github.com/samuelwu/wex-tag-transaction/internal/platform/config"
	"github.com/shopspring/decimal"
)

// amountScale is the number of fractional digits stored and returned for
// monetary amounts.
const amountScale = 2

// TransactionService provides business logic for purchase transactions.
type TransactionService struct {
	txnRepo     portsrepo.TransactionRepositoryFacade
	rateService portssvc.ExchangeRateSvcFacade

	pageLimit              int
	descriptionLengthLimit int
	msgInvalidDescription  string
	msgInvalidAmount       string
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(txnRepo portsrepo.TransactionRepositoryFacade, rateService portssvc.ExchangeRateSvcFacade, cfg *config.Config) *TransactionService {
	return &TransactionService{
		txnRepo:                txnRepo,
		rateService:            rateService,
		pageLimit:              cfg.PageLimit,
		descriptionLengthLimit: cfg.DescriptionLengthLimit,
		msgInvalidDescription:  cfg.Messages.InvalidDescription,
		msgInvalidAmount:       cfg.Messages.InvalidAmount,
	}
}

// ListTransactions retrieves the first page of transactions, optionally
// filtered to an exact date.
func (s *TransactionService) ListTransactions(ctx context.Context, date *time.Time) ([]domain.Transaction, error) {
	var (
		txns []domain.Transaction
		err  error
	)
	if date == nil {
		txns, err = s.txnRepo.ListTransactions(ctx, s.pageLimit)
	} else {
		txns, err = s.txnRepo.ListTransactionsByDate(ctx, *date, s.pageLimit)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions in service: %w", err)
	}
	if txns == nil {
		return []domain.Transaction{}, nil
	}
	return txns, nil
}

// GetConvertedTransaction retrieves a transaction by ID and composes it with
// the exchange rate applicable for the given currency. The transaction lookup
// runs first; a missing transaction short-circuits before any rate resolution.
func (s *TransactionService) GetConvertedTransaction(ctx context.Context, transactionID, currency string) (*dto.ConvertedTransactionResponse, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction in service: %w", err)
	}

	rate, err := s.rateService.ResolveRate(ctx, currency, txn.Date)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrExchangeRateNotFound
		}
		return nil, fmt.Errorf("failed to resolve exchange rate in service: %w", err)
	}

	view := assembleConvertedTransaction(txn, rate)
	return &view, nil
}

// CreateTransaction validates and persists a new transaction. All violated
// rules are collected, description-length first, before any store access.
func (s *TransactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	var messages []string
	if utf8.RuneCountInString(req.Description) > s.descriptionLengthLimit {
		messages = append(messages, s.msgInvalidDescription)
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		messages = append(messages, s.msgInvalidAmount)
	}
	if len(messages) > 0 {
		return nil, apperrors.NewValidationMessages(messages)
	}

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Date:          req.ParsedDate(),
		Description:   req.Description,
		Amount:        req.Amount.Round(amountScale),
		CreatedAt:     time.Now(),
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to create transaction in service: %w", err)
	}
	return &txn, nil
}

// assembleConvertedTransaction merges a stored transaction with a resolved
// rate. Both inputs are already validated; there are no error paths.
func assembleConvertedTransaction(txn *domain.Transaction, rate *domain.ExchangeRate) dto.ConvertedTransactionResponse {
	return dto.ConvertedTransactionResponse{
		TransactionID:   txn.TransactionID,
		Description:     txn.Description,
		OriginalAmount:  txn.Amount,
		TransactionDate: txn.Date.Format(time.DateOnly),
		CurrencyAmount:  txn.Amount.Mul(rate.Rate).Round(amountScale),
		Currency:        rate.Currency,
		ExchangeRate:    rate.Rate,
		RateDate:        rate.RecordDate.Format(time.DateOnly),
	}
}
