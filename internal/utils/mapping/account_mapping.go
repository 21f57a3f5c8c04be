package mapping

import (
	"github.com/SscSPs/bank_ledger_app/internal/core/domain"
	"github.com/SscSPs/bank_ledger_app/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:  d.AccountID,
		CustomerID: d.CustomerID,
		Balance:    d.Balance,
		CreatedAt:  d.CreatedAt,
		History:    ToModelTransactionSlice(d.History),
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:  m.AccountID,
		CustomerID: m.CustomerID,
		Balance:    m.Balance,
		CreatedAt:  m.CreatedAt,
		History:    ToDomainTransactionSlice(m.History),
	}
}

// ToModelAccountSlice converts a slice of domain Accounts to a slice of model Accounts
func ToModelAccountSlice(ds []domain.Account) []models.Account {
	ms := make([]models.Account, len(ds))
	for i, d := range ds {
		ms[i] = ToModelAccount(d)
	}
	return ms
}

// ToDomainAccountSlice converts a slice of model Accounts to a slice of domain Accounts
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}
