package services

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/samuelwu/wex-tag-transaction/internal/apperrors"
	"github.com/samuelwu/wex-tag-transaction/internal/core/domain"
	portsprov "github.com/samuelwu/wex-tag-transaction/internal/core/ports/providers"
)

// rateLookbackMonths bounds how far before the transaction date a usable
// rate record may lie.
const rateLookbackMonths = 6

// currencyListingYears is the observation window for the valid-currency list.
const currencyListingYears = 1

// ExchangeRateService resolves historical exchange rates via the Treasury
// provider and memoizes the valid-currency list.
type ExchangeRateService struct {
	provider portsprov.TreasuryProvider

	// validCurrencies is populated at most once per process lifetime and
	// never invalidated. Concurrent first calls may each fetch; the first
	// store wins and all callers converge on the same slice.
	validCurrencies atomic.Pointer[[]string]
}

// NewExchangeRateService creates a new ExchangeRateService.
func NewExchangeRateService(provider portsprov.TreasuryProvider) *ExchangeRateService {
	return &ExchangeRateService{provider: provider}
}

// ResolveRate returns the most recent rate for the currency at or before the
// transaction date, looking back at most six months. An empty currency means
// no conversion was requested and yields the identity U.S. dollar rate.
func (s *ExchangeRateService) ResolveRate(ctx context.Context, currency string, transactionDate time.Time) (*domain.ExchangeRate, error) {
	if currency == "" {
		rate := domain.IdentityRate(transactionDate)
		return &rate, nil
	}

	start := transactionDate.AddDate(0, -rateLookbackMonths, 0)
	rates, err := s.provider.FetchRates(ctx, currency, start, transactionDate)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch exchange rates in service: %w", err)
	}
	if len(rates) == 0 {
		return nil, apperrors.ErrExchangeRateNotFound
	}

	// Provider sorts descending by record date; the first entry is the most
	// recent rate at or before the transaction date.
	return &rates[0], nil
}

// ListValidCurrencies returns the currency descriptions observed within the
// last year, memoized for the process lifetime.
func (s *ExchangeRateService) ListValidCurrencies(ctx context.Context) ([]string, error) {
	if cached := s.validCurrencies.Load(); cached != nil {
		return *cached, nil
	}

	since := time.Now().AddDate(-currencyListingYears, 0, 0)
	currencies, err := s.provider.FetchCurrencies(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch currencies in service: %w", err)
	}

	if !s.validCurrencies.CompareAndSwap(nil, &currencies) {
		// Lost a benign race with another first call; serve the stored list.
		return *s.validCurrencies.Load(), nil
	}
	return currencies, nil
}
