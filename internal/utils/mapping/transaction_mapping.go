package mapping

import (
	"github.com/SscSPs/bank_ledger_app/internal/core/domain"
	"github.com/SscSPs/bank_ledger_app/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:         d.TransactionID,
		Kind:                  models.TransactionKind(d.Kind),
		Amount:                d.Amount,
		Timestamp:             d.Timestamp,
		CounterpartyAccountID: d.CounterpartyAccountID,
		TransferID:            d.TransferID,
		BalanceAfter:          d.BalanceAfter,
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:         m.TransactionID,
		Kind:                  domain.TransactionKind(m.Kind),
		Amount:                m.Amount,
		Timestamp:             m.Timestamp,
		CounterpartyAccountID: m.CounterpartyAccountID,
		TransferID:            m.TransferID,
		BalanceAfter:          m.BalanceAfter,
	}
}

// ToModelTransactionSlice converts a slice of domain Transactions to a slice of model Transactions
func ToModelTransactionSlice(ds []domain.Transaction) []models.Transaction {
	ms := make([]models.Transaction, len(ds))
	for i, d := range ds {
		ms[i] = ToModelTransaction(d)
	}
	return ms
}

// ToDomainTransactionSlice converts a slice of model Transactions to a slice of domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
