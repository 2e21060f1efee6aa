package providers

import (
	"context"
	"time"

	"github.com/samuelwu/wex-tag-transaction/internal/core/domain"
)

// TreasuryProvider is the outbound port for the historical exchange-rate data
// source. Implementations perform one network call per invocation and do not
// retry.
type TreasuryProvider interface {
	// FetchRates returns the rate records for a currency with record dates in
	// the inclusive window [start, end], sorted descending by record date.
	// An empty slice means the provider has no matching records.
	FetchRates(ctx context.Context, currency string, start, end time.Time) ([]domain.ExchangeRate, error)

	// FetchCurrencies returns the country-currency descriptions observed on
	// or after the given date, in provider order.
	FetchCurrencies(ctx context.Context, since time.Time) ([]string, error)
}
