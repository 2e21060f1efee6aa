package services

import (
	portsprov "github.com/samuelwu/wex-tag-transaction/internal/core/ports/providers"
	portsrepo "github.com/samuelwu/wex-tag-transaction/internal/core/ports/repositories"
	portssvc "github.com/samuelwu/wex-tag-transaction/internal/core/ports/services"
	"github.com/samuelwu/wex-tag-transaction/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, provider portsprov.TreasuryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Exchange rate service first since the transaction service depends on it
	container.ExchangeRate = NewExchangeRateService(provider)
	container.Transaction = NewTransactionService(repos.TransactionRepo, container.ExchangeRate, cfg)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.TransactionSvcFacade  = (*TransactionService)(nil)
	_ portssvc.ExchangeRateSvcFacade = (*ExchangeRateService)(nil)
)
