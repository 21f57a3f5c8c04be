package services

import (
	"context"

	"github.com/SscSPs/bank_ledger_app/internal/core/domain"
	"github.com/SscSPs/bank_ledger_app/internal/dto"
)

// TransactionReaderSvc defines read operations for transaction history
type TransactionReaderSvc interface {
	// GetTransactionHistory returns the account's transactions in commit order.
	GetTransactionHistory(ctx context.Context, accountID string) ([]domain.Transaction, error)
}

// TransactionWriterSvc defines the money movements
type TransactionWriterSvc interface {
	Deposit(ctx context.Context, req dto.AmountRequest) (*domain.Transaction, error)
	Withdraw(ctx context.Context, req dto.AmountRequest) (*domain.Transaction, error)

	// Transfer returns the TRANSFER_OUT and TRANSFER_IN legs, in that order.
	Transfer(ctx context.Context, req dto.TransferRequest) (*domain.Transaction, *domain.Transaction, error)
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
