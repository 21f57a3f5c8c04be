package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/bank_ledger_app/internal/core/domain"
	"github.com/SscSPs/bank_ledger_app/internal/dto"
)

// OpenAccount creates an account for an existing customer, recording a positive
// initial deposit as its first transaction.
func (s *BankService) OpenAccount(ctx context.Context, req dto.OpenAccountRequest) (*domain.Account, error) {
	if err := dto.Validate(req); err != nil {
		s.LogWarn(ctx, err, "Invalid open account request")
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.bank.OpenAccount(req.CustomerID, req.InitialDeposit)
	if err != nil {
		s.LogWarn(ctx, err, "Failed to open account",
			slog.String("customer_id", req.CustomerID),
			amountAttr("initial_deposit", req.InitialDeposit))
		return nil, err
	}

	s.LogInfo(ctx, "Account opened",
		slog.String("account_id", account.AccountID),
		slog.String("customer_id", account.CustomerID),
		slog.String("balance", account.Balance.String()))
	return &account, nil
}

// GetAccount returns a copy of the account including its history.
func (s *BankService) GetAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.bank.Account(accountID)
	if err != nil {
		s.LogDebug(ctx, "Account lookup failed", slog.String("account_id", accountID))
		return nil, err
	}
	return &account, nil
}

// ListCustomerAccounts returns the customer's accounts in opening order.
func (s *BankService) ListCustomerAccounts(ctx context.Context, customerID string) ([]domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.bank.CustomerAccounts(customerID)
}

// GetAccountSummary aggregates the account's history by kind.
func (s *BankService) GetAccountSummary(ctx context.Context, accountID string) (*domain.AccountSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.bank.Account(accountID)
	if err != nil {
		return nil, err
	}
	summary := account.Summary()
	return &summary, nil
}
