package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/bank_ledger_app/internal/core/domain"
	"github.com/SscSPs/bank_ledger_app/internal/dto"
)

// Deposit credits the account.
func (s *BankService) Deposit(ctx context.Context, req dto.AmountRequest) (*domain.Transaction, error) {
	if err := dto.Validate(req); err != nil {
		s.LogWarn(ctx, err, "Invalid deposit request")
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.bank.Deposit(req.AccountID, req.Amount)
	if err != nil {
		s.LogWarn(ctx, err, "Deposit rejected",
			slog.String("account_id", req.AccountID),
			amountAttr("amount", req.Amount))
		return nil, err
	}

	s.LogInfo(ctx, "Deposit committed",
		slog.String("transaction_id", tx.TransactionID),
		slog.String("account_id", req.AccountID),
		slog.String("amount", tx.Amount.String()),
		slog.String("balance_after", tx.BalanceAfter.String()))
	return &tx, nil
}

// Withdraw debits the account if its balance covers the amount.
func (s *BankService) Withdraw(ctx context.Context, req dto.AmountRequest) (*domain.Transaction, error) {
	if err := dto.Validate(req); err != nil {
		s.LogWarn(ctx, err, "Invalid withdraw request")
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.bank.Withdraw(req.AccountID, req.Amount)
	if err != nil {
		s.LogWarn(ctx, err, "Withdrawal rejected",
			slog.String("account_id", req.AccountID),
			amountAttr("amount", req.Amount))
		return nil, err
	}

	s.LogInfo(ctx, "Withdrawal committed",
		slog.String("transaction_id", tx.TransactionID),
		slog.String("account_id", req.AccountID),
		slog.String("amount", tx.Amount.String()),
		slog.String("balance_after", tx.BalanceAfter.String()))
	return &tx, nil
}

// Transfer moves money between two distinct accounts. Both legs are applied
// under one lock acquisition or neither is.
func (s *BankService) Transfer(ctx context.Context, req dto.TransferRequest) (*domain.Transaction, *domain.Transaction, error) {
	if err := dto.Validate(req); err != nil {
		s.LogWarn(ctx, err, "Invalid transfer request")
		return nil, nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out, in, err := s.bank.Transfer(req.FromAccountID, req.ToAccountID, req.Amount)
	if err != nil {
		s.LogWarn(ctx, err, "Transfer rejected",
			slog.String("from_account_id", req.FromAccountID),
			slog.String("to_account_id", req.ToAccountID),
			amountAttr("amount", req.Amount))
		return nil, nil, err
	}

	s.LogInfo(ctx, "Transfer committed",
		slog.String("transfer_id", out.TransferID),
		slog.String("from_account_id", req.FromAccountID),
		slog.String("to_account_id", req.ToAccountID),
		slog.String("amount", out.Amount.String()))
	return &out, &in, nil
}

// GetTransactionHistory returns the account's transactions in commit order.
func (s *BankService) GetTransactionHistory(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.bank.History(accountID)
}
