package services

import (
	"context"

	"github.com/SscSPs/bank_ledger_app/internal/core/domain"
	"github.com/SscSPs/bank_ledger_app/internal/dto"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccount retrieves a specific account, including its history.
	GetAccount(ctx context.Context, accountID string) (*domain.Account, error)

	// ListCustomerAccounts returns the customer's accounts in opening order.
	ListCustomerAccounts(ctx context.Context, customerID string) ([]domain.Account, error)

	// GetAccountSummary aggregates the account's history by kind.
	GetAccountSummary(ctx context.Context, accountID string) (*domain.AccountSummary, error)
}

// AccountWriterSvc defines write operations for account data
type AccountWriterSvc interface {
	// OpenAccount creates an account for an existing customer.
	OpenAccount(ctx context.Context, req dto.OpenAccountRequest) (*domain.Account, error)
}

// AccountSvcFacade combines all account-related service interfaces
// This is a facade for clients that need access to all operations
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
