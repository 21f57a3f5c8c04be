package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind mirrors domain.TransactionKind on the wire.
type TransactionKind string

// Transaction is the snapshot record of one committed balance change.
type Transaction struct {
	TransactionID         string          `json:"transaction_id"`
	Kind                  TransactionKind `json:"kind"`
	Amount                decimal.Decimal `json:"amount"`
	Timestamp             time.Time       `json:"timestamp"`
	CounterpartyAccountID string          `json:"counterparty_account_id,omitempty"` // Transfers only
	TransferID            string          `json:"transfer_id,omitempty"`             // Transfers only
	BalanceAfter          decimal.Decimal `json:"balance_after"`
}
