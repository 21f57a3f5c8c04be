package domain

import (
	"fmt"
	"slices"
	"strings"

	"github.com/SscSPs/bank_ledger_app/internal/apperrors"
)

// RestoreBank rebuilds a Bank from a previously captured state. The state is
// checked against the aggregate's structural invariants first; any violation is
// reported as apperrors.ErrCorruptSnapshot and no Bank is returned.
func RestoreBank(state BankState, opts ...BankOption) (*Bank, error) {
	b := NewBank(state.Name, opts...)

	emails := make(map[string]string, len(state.Customers))
	for _, c := range state.Customers {
		if c.CustomerID == "" {
			return nil, corrupt("customer with empty ID")
		}
		if _, dup := b.customers[c.CustomerID]; dup {
			return nil, corrupt("duplicate customer ID %s", c.CustomerID)
		}
		if strings.TrimSpace(c.Name) == "" {
			return nil, corrupt("customer %s has an empty name", c.CustomerID)
		}
		if strings.TrimSpace(c.Email) == "" {
			return nil, corrupt("customer %s has an empty email", c.CustomerID)
		}
		key := strings.ToLower(c.Email)
		if other, dup := emails[key]; dup {
			return nil, corrupt("customers %s and %s share email '%s'", other, c.CustomerID, c.Email)
		}
		emails[key] = c.CustomerID
		cp := c.Clone()
		b.customers[cp.CustomerID] = &cp
		b.customerOrder = append(b.customerOrder, cp.CustomerID)
	}

	txIDs := make(map[string]string)
	for _, a := range state.Accounts {
		if a.AccountID == "" {
			return nil, corrupt("account with empty ID")
		}
		if _, dup := b.accounts[a.AccountID]; dup {
			return nil, corrupt("duplicate account ID %s", a.AccountID)
		}
		owner, ok := b.customers[a.CustomerID]
		if !ok {
			return nil, corrupt("account %s is owned by unknown customer %s", a.AccountID, a.CustomerID)
		}
		if !slices.Contains(owner.AccountIDs, a.AccountID) {
			return nil, corrupt("account %s is not listed by its owner %s", a.AccountID, a.CustomerID)
		}
		if err := checkScale(a.Balance); err != nil {
			return nil, corrupt("account %s balance: %v", a.AccountID, err)
		}
		if a.Balance.IsNegative() {
			return nil, corrupt("account %s has negative balance %s", a.AccountID, a.Balance)
		}
		for _, tx := range a.History {
			if err := tx.Validate(); err != nil {
				return nil, corrupt("account %s: %v", a.AccountID, err)
			}
			if other, dup := txIDs[tx.TransactionID]; dup {
				return nil, corrupt("transaction ID %s appears in accounts %s and %s", tx.TransactionID, other, a.AccountID)
			}
			txIDs[tx.TransactionID] = a.AccountID
		}
		cp := a.Clone()
		b.accounts[cp.AccountID] = &cp
		b.accountOrder = append(b.accountOrder, cp.AccountID)
	}

	listed := make(map[string]bool, len(b.accounts))
	for _, id := range b.customerOrder {
		for _, accID := range b.customers[id].AccountIDs {
			if listed[accID] {
				return nil, corrupt("account %s is listed more than once", accID)
			}
			listed[accID] = true
			acc, ok := b.accounts[accID]
			if !ok {
				return nil, corrupt("customer %s references missing account %s", id, accID)
			}
			if acc.CustomerID != id {
				return nil, corrupt("customer %s lists account %s owned by %s", id, accID, acc.CustomerID)
			}
		}
	}

	return b, nil
}

func corrupt(format string, args ...any) error {
	return fmt.Errorf("%w: %s", apperrors.ErrCorruptSnapshot, fmt.Sprintf(format, args...))
}
