package dto

import "github.com/shopspring/decimal"

// AmountRequest is used for deposits and withdrawals on a single account.
type AmountRequest struct {
	AccountID string          `json:"accountID" validate:"required"`
	Amount    decimal.Decimal `json:"amount"` // Must be positive; checked by the bank
}

// TransferRequest moves Amount from FromAccountID to ToAccountID.
type TransferRequest struct {
	FromAccountID string          `json:"fromAccountID" validate:"required"`
	ToAccountID   string          `json:"toAccountID" validate:"required"`
	Amount        decimal.Decimal `json:"amount"`
}
