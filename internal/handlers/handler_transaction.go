package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samuelwu/wex-tag-transaction/internal/apperrors"
	portssvc "github.com/samuelwu/wex-tag-transaction/internal/core/ports/services"
	"github.com/samuelwu/wex-tag-transaction/internal/dto"
	"github.com/samuelwu/wex-tag-transaction/internal/middleware"
	"github.com/samuelwu/wex-tag-transaction/internal/platform/config"
)

// transactionHandler handles HTTP requests related to purchase transactions.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
	messages           config.Messages
}

// newTransactionHandler creates a new transactionHandler.
func newTransactionHandler(ts portssvc.TransactionSvcFacade, messages config.Messages) *transactionHandler {
	return &transactionHandler{
		transactionService: ts,
		messages:           messages,
	}
}

// registerTransactionRoutes registers routes related to transactions.
func registerTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade, messages config.Messages) {
	h := newTransactionHandler(transactionService, messages)

	transactions := rg.Group("/transactions")
	{
		transactions.GET("", h.listTransactions)
		transactions.GET("/:id", h.getTransactionByID)
		transactions.POST("", h.createTransaction)
	}
}

// listTransactions godoc
// @Summary List transactions
// @Description Retrieves the first page of stored transactions, optionally filtered to an exact date
// @Tags transactions
// @Produce  json
// @Param   date query string false "Transaction date (YYYY-MM-DD)"
// @Success 200 {array} dto.TransactionResponse
// @Success 204 "No transactions"
// @Failure 400 {object} map[string]string "Invalid date format"
// @Failure 500 {object} map[string]string "System error"
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var date *time.Time
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			logger.Warn("Invalid date filter for ListTransactions", slog.String("date", dateStr))
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be in YYYY-MM-DD format"})
			return
		}
		date = &parsed
	}

	txns, err := h.transactionService.ListTransactions(c.Request.Context(), date)
	if err != nil {
		logger.Error("Failed to list transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": h.messages.SystemError})
		return
	}

	if len(txns) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, dto.ToListTransactionResponse(txns))
}

// getTransactionByID godoc
// @Summary Get a transaction with currency conversion
// @Description Retrieves a transaction by ID with its amount converted using the most recent exchange rate at or before the transaction date (six month lookback). Without a currency parameter the amount is reported in U.S. dollars at rate 1.
// @Tags transactions
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Param   currency query string false "Country-currency description, e.g. Canada-Dollar"
// @Success 200 {object} dto.ConvertedTransactionResponse
// @Failure 404 {object} map[string]string "Transaction or exchange rate not found"
// @Failure 500 {object} map[string]string "System error"
// @Router /transactions/{id} [get]
func (h *transactionHandler) getTransactionByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("id")
	currency := c.Query("currency")

	logger = logger.With(slog.String("transaction_id", transactionID))

	view, err := h.transactionService.GetConvertedTransaction(c.Request.Context(), transactionID, currency)
	if err != nil {
		// Both not-found cases share the 404 shape; the message text
		// distinguishes them.
		if errors.Is(err, apperrors.ErrExchangeRateNotFound) {
			logger.Warn("Exchange rate not found", slog.String("currency", currency))
			c.JSON(http.StatusNotFound, gin.H{"error": h.messages.ExchangeRateNotFound})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Transaction not found")
			c.JSON(http.StatusNotFound, gin.H{"error": h.messages.IDNotFound})
		} else {
			logger.Error("Failed to get transaction", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": h.messages.SystemError})
		}
		return
	}

	c.JSON(http.StatusOK, view)
}

// createTransaction godoc
// @Summary Create a new transaction
// @Description Stores a purchase transaction. The amount is rounded half-up to two decimal places before persisting.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {array} string "Ordered validation messages"
// @Failure 500 {object} map[string]string "System error"
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	txn, err := h.transactionService.CreateTransaction(c.Request.Context(), req)
	if err != nil {
		var validationErr *apperrors.ValidationMessages
		if errors.As(err, &validationErr) {
			logger.Warn("Validation failed for CreateTransaction", slog.Any("messages", validationErr.Messages))
			c.JSON(http.StatusBadRequest, validationErr.Messages)
			return
		}
		logger.Error("Failed to create transaction", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": h.messages.SystemError})
		return
	}

	logger.Info("Transaction created successfully", slog.String("transaction_id", txn.TransactionID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}
