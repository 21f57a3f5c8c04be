package repositories

import (
	"context"

	"github.com/SscSPs/bank_ledger_app/internal/core/domain"
)

// SnapshotReader defines read operations for persisted bank state
type SnapshotReader interface {
	// LoadSnapshot returns the last saved state.
	// It returns an error wrapping apperrors.ErrNotFound when nothing has been saved yet.
	LoadSnapshot(ctx context.Context) (*domain.BankState, error)
}

// SnapshotWriter defines write operations for persisted bank state
type SnapshotWriter interface {
	// SaveSnapshot replaces the persisted state with state.
	// A failed save must leave any previously saved state intact.
	SaveSnapshot(ctx context.Context, state domain.BankState) error
}

// SnapshotRepositoryFacade combines all snapshot-related repository interfaces
// This is a facade for clients that need access to all operations
type SnapshotRepositoryFacade interface {
	SnapshotReader
	SnapshotWriter
}
