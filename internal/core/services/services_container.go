package services

import (
	portssvc "github.com/SscSPs/bank_ledger_app/internal/core/ports/services"
)

// NewServiceContainer exposes one BankService through every service port.
func NewServiceContainer(bank *BankService) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Customer:    bank,
		Account:     bank,
		Transaction: bank,
		Reporting:   bank,
		Persistence: bank,
	}
}
