package services

import (
	"context"

	"github.com/SscSPs/bank_ledger_app/internal/core/domain"
	"github.com/SscSPs/bank_ledger_app/internal/dto"
)

// CustomerReaderSvc defines read operations for customer data
type CustomerReaderSvc interface {
	// GetCustomer retrieves a specific customer by its unique identifier.
	GetCustomer(ctx context.Context, customerID string) (*domain.Customer, error)

	// ListCustomers returns every customer in registration order.
	ListCustomers(ctx context.Context) ([]domain.Customer, error)

	// SearchCustomers returns customers whose name or email contains the query, ignoring case.
	SearchCustomers(ctx context.Context, query string) ([]domain.Customer, error)
}

// CustomerWriterSvc defines write operations for customer data
type CustomerWriterSvc interface {
	// RegisterCustomer creates a customer with no accounts.
	RegisterCustomer(ctx context.Context, req dto.RegisterCustomerRequest) (*domain.Customer, error)
}

// CustomerSvcFacade combines all customer-related service interfaces
type CustomerSvcFacade interface {
	CustomerReaderSvc
	CustomerWriterSvc
}
