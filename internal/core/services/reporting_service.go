package services

import (
	"context"

	"github.com/SscSPs/bank_ledger_app/internal/core/domain"
)

// GetBankStatistics aggregates the whole bank under the lock.
func (s *BankService) GetBankStatistics(ctx context.Context) (*domain.Statistics, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := s.bank.Statistics()
	return &stats, nil
}
