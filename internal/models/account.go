package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is the snapshot record of one account and its full history.
type Account struct {
	AccountID  string          `json:"account_id"`
	CustomerID string          `json:"customer_id"`
	Balance    decimal.Decimal `json:"balance"`
	CreatedAt  time.Time       `json:"created_at"`
	History    []Transaction   `json:"history"` // Commit order
}
