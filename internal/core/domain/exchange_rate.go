package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// USDollar is the label attached to the identity rate when no conversion
// currency is requested. The value matches the Treasury dataset's own
// country_currency_desc for the domestic currency.
const USDollar = "U.S.-Dollar"

// ExchangeRate is a historical quote sourced from the Treasury reporting
// rates of exchange dataset. It is never persisted locally.
type ExchangeRate struct {
	Currency   string          `json:"currency"`   // Country-currency description, e.g. "Canada-Dollar"
	Rate       decimal.Decimal `json:"rate"`       // Units of currency per one U.S. dollar
	RecordDate time.Time       `json:"recordDate"` // Date the rate was observed on
}

// IdentityRate synthesizes the fixed U.S. dollar rate for a transaction date.
func IdentityRate(date time.Time) ExchangeRate {
	return ExchangeRate{
		Currency:   USDollar,
		Rate:       decimal.NewFromInt(1),
		RecordDate: date,
	}
}
