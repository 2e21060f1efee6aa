package dto

import (
	"time"

	"github.com/samuelwu/wex-tag-transaction/internal/core/domain"
	"github.com/shopspring/decimal"
)

func init() {
	// Monetary fields serialize as plain JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// CreateTransactionRequest defines the data needed to create a transaction.
// Description and amount carry business rules (length, positivity) that are
// validated in the service so all violation messages can be reported together.
type CreateTransactionRequest struct {
	Date        string          `json:"date" binding:"required,dateonly"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// ParsedDate returns the request date as a time.Time. Binding has already
// verified the format.
func (r CreateTransactionRequest) ParsedDate() time.Time {
	d, _ := time.Parse(time.DateOnly, r.Date)
	return d
}

// TransactionResponse defines the data returned for a stored transaction.
type TransactionResponse struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          txn.TransactionID,
		Date:        txn.Date.Format(time.DateOnly),
		Description: txn.Description,
		Amount:      txn.Amount,
	}
}

// ToListTransactionResponse converts a slice of transactions to response DTOs.
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return res
}

// ConvertedTransactionResponse is the derived view of a transaction combined
// with a resolved exchange rate. It exists only for a single response cycle.
type ConvertedTransactionResponse struct {
	TransactionID   string          `json:"transaction_id"`
	Description     string          `json:"description"`
	OriginalAmount  decimal.Decimal `json:"original_amount"`
	TransactionDate string          `json:"transaction_date"`
	CurrencyAmount  decimal.Decimal `json:"currency_amount"`
	Currency        string          `json:"currency"`
	ExchangeRate    decimal.Decimal `json:"exchange_rate"`
	RateDate        string          `json:"rate_date"`
}
