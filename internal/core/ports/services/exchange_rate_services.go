package services

import (
	"context"
	"time"

	"github.com/samuelwu/wex-tag-transaction/internal/core/domain"
)

// ExchangeRateSvcFacade resolves historical exchange rates and enumerates the
// currencies a transaction may be converted into.
type ExchangeRateSvcFacade interface {
	// ResolveRate returns the most recent rate for the currency at or before
	// the transaction date, looking back at most six months. An empty
	// currency always succeeds with the identity U.S. dollar rate. Returns
	// apperrors.ErrNotFound when no rate exists in the window.
	ResolveRate(ctx context.Context, currency string, transactionDate time.Time) (*domain.ExchangeRate, error)

	// ListValidCurrencies returns the currency descriptions observed within
	// the last year. The result is memoized for the process lifetime.
	ListValidCurrencies(ctx context.Context) ([]string, error)
}
