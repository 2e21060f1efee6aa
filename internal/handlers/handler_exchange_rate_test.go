package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	portssvc "github.com/samuelwu/wex-tag-transaction/internal/core/ports/services"
	"github.com/samuelwu/wex-tag-transaction/internal/handlers"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

type ExchangeRateHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockRateSvc *MockExchangeRateService
}

func (suite *ExchangeRateHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockRateSvc = new(MockExchangeRateService)

	rateLimiter := limiter.New(memory.NewStore(), limiter.Rate{Period: time.Minute, Limit: 10000})

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, testConfig(), &portssvc.ServiceContainer{
		Transaction:  new(MockTransactionService),
		ExchangeRate: suite.mockRateSvc,
	}, rateLimiter)
}

func (suite *ExchangeRateHandlerTestSuite) TestListValidCurrencies_OK() {
	currencies := []string{"Australia-Dollar", "Canada-Dollar", "Euro Zone-Euro"}
	suite.mockRateSvc.On("ListValidCurrencies", mock.Anything).Return(currencies, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/exchange", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var got []string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Equal(currencies, got)
	suite.mockRateSvc.AssertExpectations(suite.T())
}

func (suite *ExchangeRateHandlerTestSuite) TestListValidCurrencies_EmptyGivesNoContent() {
	suite.mockRateSvc.On("ListValidCurrencies", mock.Anything).Return([]string{}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/exchange", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.Empty(w.Body.Bytes())
}

func (suite *ExchangeRateHandlerTestSuite) TestListValidCurrencies_ServiceError() {
	suite.mockRateSvc.On("ListValidCurrencies", mock.Anything).Return(nil, http.ErrServerClosed).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/exchange", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Contains(w.Body.String(), "internal system error, please contact support")
}

func TestExchangeRateHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ExchangeRateHandlerTestSuite))
}
