package treasury_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/samuelwu/wex-tag-transaction/internal/adapters/treasury"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchRates(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"data": [
				{"country_currency_desc": "Canada-Dollar", "exchange_rate": "1.3", "record_date": "2023-06-30"},
				{"country_currency_desc": "Canada-Dollar", "exchange_rate": "1.28", "record_date": "2023-03-31"}
			]
		}`))
	}))
	defer server.Close()

	client := treasury.NewClient(server.URL, 5*time.Second)

	start := time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, 10, 1, 0, 0, 0, 0, time.UTC)
	rates, err := client.FetchRates(context.Background(), "Canada-Dollar", start, end)

	require.NoError(t, err)
	require.Len(t, rates, 2)
	assert.Equal(t, "Canada-Dollar", rates[0].Currency)
	assert.True(t, rates[0].Rate.Equal(decimal.RequireFromString("1.3")))
	assert.Equal(t, time.Date(2023, 6, 30, 0, 0, 0, 0, time.UTC), rates[0].RecordDate)
	// Provider order (most recent first) is preserved
	assert.True(t, rates[1].RecordDate.Before(rates[0].RecordDate))

	assert.Contains(t, gotQuery, "country_currency_desc:eq:Canada-Dollar")
	assert.Contains(t, gotQuery, "record_date:gte:2023-04-01")
	assert.Contains(t, gotQuery, "record_date:lte:2023-10-01")
	assert.Contains(t, gotQuery, "sort=-record_date")
}

func TestFetchRates_EmptyData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data": []}`))
	}))
	defer server.Close()

	client := treasury.NewClient(server.URL, 5*time.Second)

	rates, err := client.FetchRates(context.Background(), "Atlantis-Doubloon", time.Now().AddDate(0, -6, 0), time.Now())

	require.NoError(t, err)
	assert.Empty(t, rates)
}

func TestFetchRates_BadRate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": [{"country_currency_desc": "Canada-Dollar", "exchange_rate": "abc", "record_date": "2023-06-30"}]}`))
	}))
	defer server.Close()

	client := treasury.NewClient(server.URL, 5*time.Second)

	_, err := client.FetchRates(context.Background(), "Canada-Dollar", time.Now().AddDate(0, -6, 0), time.Now())

	assert.Error(t, err)
}

func TestFetchRates_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := treasury.NewClient(server.URL, 5*time.Second)

	_, err := client.FetchRates(context.Background(), "Canada-Dollar", time.Now().AddDate(0, -6, 0), time.Now())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 502")
}

func TestFetchCurrencies(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"data": [
				{"country_currency_desc": "Australia-Dollar"},
				{"country_currency_desc": "Canada-Dollar"},
				{"country_currency_desc": "Euro Zone-Euro"}
			]
		}`))
	}))
	defer server.Close()

	client := treasury.NewClient(server.URL, 5*time.Second)

	since := time.Date(2022, 10, 1, 0, 0, 0, 0, time.UTC)
	currencies, err := client.FetchCurrencies(context.Background(), since)

	require.NoError(t, err)
	assert.Equal(t, []string{"Australia-Dollar", "Canada-Dollar", "Euro Zone-Euro"}, currencies)
	assert.Contains(t, gotQuery, "fields=country_currency_desc")
	assert.Contains(t, gotQuery, "record_date:gte:2022-10-01")
}
