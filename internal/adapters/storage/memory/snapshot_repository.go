// Package memory keeps the last saved bank state in process memory.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/SscSPs/bank_ledger_app/internal/apperrors"
	"github.com/SscSPs/bank_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bank_ledger_app/internal/core/ports/repositories"
)

// SnapshotRepository stores a deep copy of the last saved state.
type SnapshotRepository struct {
	mu    sync.RWMutex
	state *domain.BankState
	saves int
}

// NewSnapshotRepository creates an empty in-memory repository.
func NewSnapshotRepository() *SnapshotRepository {
	return &SnapshotRepository{}
}

var _ portsrepo.SnapshotRepositoryFacade = (*SnapshotRepository)(nil)

// LoadSnapshot returns a copy of the last saved state.
func (r *SnapshotRepository) LoadSnapshot(ctx context.Context) (*domain.BankState, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.state == nil {
		return nil, fmt.Errorf("in-memory snapshot: %w", apperrors.ErrNotFound)
	}
	state := cloneState(*r.state)
	return &state, nil
}

// SaveSnapshot replaces the stored state with a copy of state.
func (r *SnapshotRepository) SaveSnapshot(ctx context.Context, state domain.BankState) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := cloneState(state)
	r.state = &cp
	r.saves++
	return nil
}

// Saves reports how many times SaveSnapshot succeeded.
func (r *SnapshotRepository) Saves() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.saves
}

func cloneState(s domain.BankState) domain.BankState {
	cp := domain.BankState{
		Name:      s.Name,
		Customers: make([]domain.Customer, len(s.Customers)),
		Accounts:  make([]domain.Account, len(s.Accounts)),
	}
	for i, c := range s.Customers {
		cp.Customers[i] = c.Clone()
	}
	for i, a := range s.Accounts {
		cp.Accounts[i] = a.Clone()
	}
	return cp
}
