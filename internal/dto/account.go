package dto

import "github.com/shopspring/decimal"

// OpenAccountRequest defines the data needed to open an account.
// InitialDeposit may be zero; its sign is checked by the bank.
type OpenAccountRequest struct {
	CustomerID     string          `json:"customerID" validate:"required"`
	InitialDeposit decimal.Decimal `json:"initialDeposit"`
}
