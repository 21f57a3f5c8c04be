package mapping

import (
	"time"

	"github.com/SscSPs/bank_ledger_app/internal/core/domain"
	"github.com/SscSPs/bank_ledger_app/internal/models"
)

// ToModelSnapshot converts a domain BankState to a model Snapshot stamped with the given metadata.
func ToModelSnapshot(d domain.BankState, storage string, savedAt time.Time) models.Snapshot {
	customers := make([]models.Customer, len(d.Customers))
	for i, c := range d.Customers {
		customers[i] = ToModelCustomer(c)
	}
	return models.Snapshot{
		Meta: models.SnapshotMeta{
			Storage: storage,
			Version: models.SnapshotFormatVersion,
			SavedAt: savedAt,
		},
		BankName:  d.Name,
		Customers: customers,
		Accounts:  ToModelAccountSlice(d.Accounts),
	}
}

// ToDomainBankState converts a model Snapshot to a domain BankState. Metadata is dropped.
func ToDomainBankState(m models.Snapshot) domain.BankState {
	customers := make([]domain.Customer, len(m.Customers))
	for i, c := range m.Customers {
		customers[i] = ToDomainCustomer(c)
	}
	return domain.BankState{
		Name:      m.BankName,
		Customers: customers,
		Accounts:  ToDomainAccountSlice(m.Accounts),
	}
}
