package mapping

import (
	"github.com/SscSPs/bank_ledger_app/internal/core/domain"
	"github.com/SscSPs/bank_ledger_app/internal/models"
)

// ToModelCustomer converts a domain Customer to a model Customer
func ToModelCustomer(d domain.Customer) models.Customer {
	return models.Customer{
		CustomerID:   d.CustomerID,
		Name:         d.Name,
		Email:        d.Email,
		AccountIDs:   append([]string{}, d.AccountIDs...),
		RegisteredAt: d.RegisteredAt,
	}
}

// ToDomainCustomer converts a model Customer to a domain Customer
func ToDomainCustomer(m models.Customer) domain.Customer {
	return domain.Customer{
		CustomerID:   m.CustomerID,
		Name:         m.Name,
		Email:        m.Email,
		AccountIDs:   append([]string{}, m.AccountIDs...),
		RegisteredAt: m.RegisteredAt,
	}
}
