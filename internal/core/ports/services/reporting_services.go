package services

import (
	"context"

	"github.com/SscSPs/bank_ledger_app/internal/core/domain"
)

// ReportingSvc defines bank-wide reports
type ReportingSvc interface {
	// GetBankStatistics aggregates the current state of the whole bank.
	GetBankStatistics(ctx context.Context) (*domain.Statistics, error)
}
