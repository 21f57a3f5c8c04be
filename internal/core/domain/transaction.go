package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/bank_ledger_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// TransactionKind identifies what a transaction record did to its account.
type TransactionKind string

const (
	Deposit     TransactionKind = "DEPOSIT"
	Withdrawal  TransactionKind = "WITHDRAWAL"
	TransferOut TransactionKind = "TRANSFER_OUT"
	TransferIn  TransactionKind = "TRANSFER_IN"
)

// IsValid reports whether k is one of the known kinds.
func (k TransactionKind) IsValid() bool {
	switch k {
	case Deposit, Withdrawal, TransferOut, TransferIn:
		return true
	}
	return false
}

// IsTransfer reports whether k is one leg of a transfer.
func (k TransactionKind) IsTransfer() bool {
	return k == TransferOut || k == TransferIn
}

// IsCredit reports whether k increases the owning account's balance.
func (k TransactionKind) IsCredit() bool {
	return k == Deposit || k == TransferIn
}

// AmountScale is the number of decimal places money is kept to.
const AmountScale = 2

// MaxAmount is the largest amount a single deposit, withdrawal or transfer may move.
var MaxAmount = decimal.New(1, 12)

// Exponents outside this range cannot come from a well-formed amount and would
// make arithmetic on the value arbitrarily expensive.
const (
	minExponent = -18
	maxExponent = 18
)

// CheckAmount rejects amounts with more than AmountScale decimal places or a
// magnitude above MaxAmount. It does not check the sign.
func CheckAmount(amount decimal.Decimal) error {
	if err := checkScale(amount); err != nil {
		return err
	}
	if amount.Abs().GreaterThan(MaxAmount) {
		return fmt.Errorf("%w: %s exceeds the limit of %s", apperrors.ErrInvalidAmount, amount, MaxAmount)
	}
	return nil
}

func checkScale(d decimal.Decimal) error {
	if exp := d.Exponent(); exp < minExponent || exp > maxExponent {
		return fmt.Errorf("%w: value is out of range", apperrors.ErrInvalidAmount)
	}
	if !d.Equal(d.Truncate(AmountScale)) {
		return fmt.Errorf("%w: %s has more than %d decimal places", apperrors.ErrInvalidAmount, d, AmountScale)
	}
	return nil
}

// Transaction is an immutable record of one committed balance change on one account.
// A transfer is recorded as two transactions, one per account, sharing TransferID and Timestamp.
type Transaction struct {
	TransactionID         string          `json:"transactionID"`
	Kind                  TransactionKind `json:"kind"`
	Amount                decimal.Decimal `json:"amount"` // Always positive
	Timestamp             time.Time       `json:"timestamp"`
	CounterpartyAccountID string          `json:"counterpartyAccountID,omitempty"` // Transfers only
	TransferID            string          `json:"transferID,omitempty"`            // Transfers only
	BalanceAfter          decimal.Decimal `json:"balanceAfter"`
}

// Validate checks that the record is internally consistent for its kind.
func (t Transaction) Validate() error {
	if t.TransactionID == "" {
		return fmt.Errorf("transaction ID is required: %w", apperrors.ErrValidation)
	}
	if !t.Kind.IsValid() {
		return fmt.Errorf("unknown transaction kind '%s': %w", t.Kind, apperrors.ErrValidation)
	}
	if err := CheckAmount(t.Amount); err != nil {
		return fmt.Errorf("transaction %s: amount: %w", t.TransactionID, err)
	}
	if !t.Amount.IsPositive() {
		return fmt.Errorf("transaction %s: amount must be positive: %w", t.TransactionID, apperrors.ErrInvalidAmount)
	}
	if err := checkScale(t.BalanceAfter); err != nil {
		return fmt.Errorf("transaction %s: balance after: %w", t.TransactionID, err)
	}
	if t.BalanceAfter.IsNegative() {
		return fmt.Errorf("transaction %s: balance after must not be negative: %w", t.TransactionID, apperrors.ErrValidation)
	}
	if t.Kind.IsTransfer() {
		if t.CounterpartyAccountID == "" || t.TransferID == "" {
			return fmt.Errorf("transaction %s: counterparty and transfer ID are required for transfers: %w", t.TransactionID, apperrors.ErrValidation)
		}
	} else if t.CounterpartyAccountID != "" || t.TransferID != "" {
		return fmt.Errorf("transaction %s: counterparty is only allowed on transfers: %w", t.TransactionID, apperrors.ErrValidation)
	}
	return nil
}
