package domain_test

import (
	"testing"
	"time"

	"github.com/samuelwu/wex-tag-transaction/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestIdentityRate(t *testing.T) {
	date := time.Date(2023, 10, 1, 0, 0, 0, 0, time.UTC)

	rate := domain.IdentityRate(date)

	assert.Equal(t, domain.USDollar, rate.Currency)
	assert.True(t, rate.Rate.Equal(decimal.NewFromInt(1)))
	assert.Equal(t, date, rate.RecordDate)
}
