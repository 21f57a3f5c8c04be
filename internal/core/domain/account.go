package domain

import (
	"time"

	"github.com/SscSPs/bank_ledger_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Account holds a balance and the ordered history of transactions that produced it.
type Account struct {
	AccountID  string          `json:"accountID"`
	CustomerID string          `json:"customerID"` // Owner back-reference
	Balance    decimal.Decimal `json:"balance"`    // Never negative
	History    []Transaction   `json:"history"`    // Append-only, commit order
	CreatedAt  time.Time       `json:"createdAt"`
}

// AccountSummary aggregates an account's history by kind.
type AccountSummary struct {
	AccountID         string          `json:"accountID"`
	Balance           decimal.Decimal `json:"balance"`
	TotalDeposits     decimal.Decimal `json:"totalDeposits"`
	TotalWithdrawals  decimal.Decimal `json:"totalWithdrawals"`
	TotalTransfersIn  decimal.Decimal `json:"totalTransfersIn"`
	TotalTransfersOut decimal.Decimal `json:"totalTransfersOut"`
	TransactionCount  int             `json:"transactionCount"`
}

// Clone returns a copy that shares no memory with a.
func (a Account) Clone() Account {
	cp := a
	cp.History = make([]Transaction, len(a.History))
	copy(cp.History, a.History)
	return cp
}

// TotalByKind sums the amounts of every history entry of the given kind.
func (a Account) TotalByKind(kind TransactionKind) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range a.History {
		if tx.Kind == kind {
			total = total.Add(tx.Amount)
		}
	}
	return total
}

// Summary computes the per-kind totals of the account.
func (a Account) Summary() AccountSummary {
	return AccountSummary{
		AccountID:         a.AccountID,
		Balance:           a.Balance,
		TotalDeposits:     a.TotalByKind(Deposit),
		TotalWithdrawals:  a.TotalByKind(Withdrawal),
		TotalTransfersIn:  a.TotalByKind(TransferIn),
		TotalTransfersOut: a.TotalByKind(TransferOut),
		TransactionCount:  len(a.History),
	}
}

// checkDebit returns an InsufficientFundsError when amount exceeds the balance.
func (a *Account) checkDebit(amount decimal.Decimal) error {
	if amount.GreaterThan(a.Balance) {
		return &apperrors.InsufficientFundsError{
			AccountID: a.AccountID,
			Available: a.Balance,
			Requested: amount,
		}
	}
	return nil
}

// apply moves the balance and appends the matching record. Callers must have
// validated the amount and, for debits, called checkDebit first.
func (a *Account) apply(tx Transaction) Transaction {
	if tx.Kind.IsCredit() {
		a.Balance = a.Balance.Add(tx.Amount)
	} else {
		a.Balance = a.Balance.Sub(tx.Amount)
	}
	tx.BalanceAfter = a.Balance
	a.History = append(a.History, tx)
	return tx
}
