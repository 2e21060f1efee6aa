package services

// ServiceContainer bundles the service facades handed to the handlers.
type ServiceContainer struct {
	Transaction  TransactionSvcFacade
	ExchangeRate ExchangeRateSvcFacade
}
