package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/samuelwu/wex-tag-transaction/internal/core/ports/services"
	"github.com/samuelwu/wex-tag-transaction/internal/middleware"
	"github.com/samuelwu/wex-tag-transaction/internal/platform/config"
)

// exchangeRateHandler handles HTTP requests related to exchange rates.
type exchangeRateHandler struct {
	exchangeRateService portssvc.ExchangeRateSvcFacade
	messages            config.Messages
}

// newExchangeRateHandler creates a new exchangeRateHandler.
func newExchangeRateHandler(ers portssvc.ExchangeRateSvcFacade, messages config.Messages) *exchangeRateHandler {
	return &exchangeRateHandler{
		exchangeRateService: ers,
		messages:            messages,
	}
}

// registerExchangeRateRoutes registers routes related to exchange rates.
func registerExchangeRateRoutes(rg *gin.RouterGroup, exchangeRateService portssvc.ExchangeRateSvcFacade, messages config.Messages) {
	h := newExchangeRateHandler(exchangeRateService, messages)

	rg.GET("/exchange", h.listValidCurrencies)
}

// listValidCurrencies godoc
// @Summary List valid conversion currencies
// @Description Retrieves the country-currency descriptions observed by the Treasury dataset within the last year. The list is fetched once per process and memoized.
// @Tags exchange rates
// @Produce  json
// @Success 200 {array} string
// @Success 204 "No currencies"
// @Failure 500 {object} map[string]string "System error"
// @Router /exchange [get]
func (h *exchangeRateHandler) listValidCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	currencies, err := h.exchangeRateService.ListValidCurrencies(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list valid currencies", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": h.messages.SystemError})
		return
	}

	if len(currencies) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	logger.Info("Currencies listed successfully", slog.Int("count", len(currencies)))
	c.JSON(http.StatusOK, currencies)
}
