// Package treasury implements the exchange-rate provider port against the
// U.S. Treasury fiscal data "Reporting Rates of Exchange" dataset.
package treasury

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/samuelwu/wex-tag-transaction/internal/core/domain"
	portsprov "github.com/samuelwu/wex-tag-transaction/internal/core/ports/providers"
	"github.com/shopspring/decimal"
)

const (
	// currencyPageSize bounds the currency listing; the dataset holds under
	// 200 distinct country-currency descriptions.
	currencyPageSize = 350

	fieldCurrencyDesc = "country_currency_desc"
	fieldExchangeRate = "exchange_rate"
	fieldRecordDate   = "record_date"
)

type Client struct {
	baseURL string
	cli     *http.Client
}

// NewClient creates a Treasury API client. baseURL points at the
// rates_of_exchange endpoint; timeout bounds each outbound call.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		cli:     &http.Client{Timeout: timeout},
	}
}

var _ portsprov.TreasuryProvider = (*Client)(nil)

// response mirrors the dataset's envelope; all field values are strings.
type response struct {
	Data []struct {
		CurrencyDesc string `json:"country_currency_desc"`
		ExchangeRate string `json:"exchange_rate"`
		RecordDate   string `json:"record_date"`
	} `json:"data"`
}

// FetchRates returns the rate records for a currency observed in [start, end],
// most recent first.
func (c *Client) FetchRates(ctx context.Context, currency string, start, end time.Time) ([]domain.ExchangeRate, error) {
	query := fmt.Sprintf(
		"?fields=%s,%s,%s&filter=%s:eq:%s,%s:gte:%s,%s:lte:%s&sort=-%s",
		fieldCurrencyDesc, fieldExchangeRate, fieldRecordDate,
		fieldCurrencyDesc, url.QueryEscape(currency),
		fieldRecordDate, start.Format(time.DateOnly),
		fieldRecordDate, end.Format(time.DateOnly),
		fieldRecordDate,
	)

	body, err := c.get(ctx, query)
	if err != nil {
		return nil, err
	}

	rates := make([]domain.ExchangeRate, 0, len(body.Data))
	for _, rec := range body.Data {
		rate, err := decimal.NewFromString(rec.ExchangeRate)
		if err != nil {
			return nil, fmt.Errorf("treasury: invalid exchange_rate %q: %w", rec.ExchangeRate, err)
		}
		recordDate, err := time.Parse(time.DateOnly, rec.RecordDate)
		if err != nil {
			return nil, fmt.Errorf("treasury: invalid record_date %q: %w", rec.RecordDate, err)
		}
		rates = append(rates, domain.ExchangeRate{
			Currency:   rec.CurrencyDesc,
			Rate:       rate,
			RecordDate: recordDate,
		})
	}
	return rates, nil
}

// FetchCurrencies returns the country-currency descriptions observed on or
// after the given date.
func (c *Client) FetchCurrencies(ctx context.Context, since time.Time) ([]string, error) {
	query := fmt.Sprintf(
		"?fields=%s&filter=%s:gte:%s&page[size]=%d",
		fieldCurrencyDesc,
		fieldRecordDate, since.Format(time.DateOnly),
		currencyPageSize,
	)

	body, err := c.get(ctx, query)
	if err != nil {
		return nil, err
	}

	currencies := make([]string, 0, len(body.Data))
	for _, rec := range body.Data {
		currencies = append(currencies, rec.CurrencyDesc)
	}
	return currencies, nil
}

func (c *Client) get(ctx context.Context, query string) (*response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+query, nil)
	if err != nil {
		return nil, fmt.Errorf("treasury: build request: %w", err)
	}

	resp, err := c.cli.Do(req)
	if err != nil {
		return nil, fmt.Errorf("treasury: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("treasury: unexpected status %d", resp.StatusCode)
	}

	var body response
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("treasury: decode response: %w", err)
	}
	return &body, nil
}
