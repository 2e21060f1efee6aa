package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a single purchase transaction record.
// Immutable once stored; there are no update or delete operations.
// Note: Amount uses a precise decimal type (github.com/shopspring/decimal).
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (UUID)
	Date          time.Time       `json:"date"`          // Calendar date, no time-of-day component
	Description   string          `json:"description"`   // Bounded-length text
	Amount        decimal.Decimal `json:"amount"`        // Strictly positive, 2 fractional digits
	CreatedAt     time.Time       `json:"createdAt"`
}
