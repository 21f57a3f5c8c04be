package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
//
// Every field is normally backed by the same services.BankService, so all of
// them share one lock and one bank.
type ServiceContainer struct {
	Customer    CustomerSvcFacade
	Account     AccountSvcFacade
	Transaction TransactionSvcFacade
	Reporting   ReportingSvc
	Persistence PersistenceSvc
}
