package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/SscSPs/bank_ledger_app/internal/apperrors"
	"github.com/SscSPs/bank_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bank_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bank_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/bank_ledger_app/internal/utils/accounting"
)

// BankService is the shared handle on the bank. One mutex guards the whole
// aggregate: every method holds it for its full duration, so operations are
// totally ordered and a transfer is never observed half-applied.
type BankService struct {
	BaseService
	mu       sync.Mutex
	bank     *domain.Bank
	name     string
	repo     portsrepo.SnapshotRepositoryFacade
	bankOpts []domain.BankOption
}

// BankServiceOption is a functional option for configuring the bank service
type BankServiceOption func(*BankService)

// WithBankOptions passes options to every domain.Bank the service creates or restores.
func WithBankOptions(opts ...domain.BankOption) BankServiceOption {
	return func(s *BankService) {
		s.bankOpts = append(s.bankOpts, opts...)
	}
}

// NewBankService creates a service around an empty bank called name.
// Call Load to replace it with the persisted one.
func NewBankService(name string, repo portsrepo.SnapshotRepositoryFacade, options ...BankServiceOption) *BankService {
	svc := &BankService{
		name: name,
		repo: repo,
	}

	// Apply all options
	for _, option := range options {
		option(svc)
	}

	svc.bank = domain.NewBank(name, svc.bankOpts...)
	return svc
}

// Ensure BankService implements every service port
var (
	_ portssvc.CustomerSvcFacade    = (*BankService)(nil)
	_ portssvc.AccountSvcFacade     = (*BankService)(nil)
	_ portssvc.TransactionSvcFacade = (*BankService)(nil)
	_ portssvc.ReportingSvc         = (*BankService)(nil)
	_ portssvc.PersistenceSvc       = (*BankService)(nil)
)

// Load replaces the in-memory bank with the persisted one. A missing snapshot
// leaves an empty bank. A snapshot that fails reconciliation is reported as
// apperrors.ErrCorruptSnapshot and the current bank is kept.
func (s *BankService) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.repo.LoadSnapshot(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogInfo(ctx, "No saved bank found, starting empty", slog.String("bank_name", s.name))
			s.bank = domain.NewBank(s.name, s.bankOpts...)
			return nil
		}
		s.LogError(ctx, err, "Failed to load bank snapshot")
		return persistenceErr("failed to load bank", err)
	}

	if state.Name == "" {
		state.Name = s.name
	}
	bank, err := s.reconcile(*state)
	if err != nil {
		s.LogError(ctx, err, "Bank snapshot failed reconciliation")
		return persistenceErr("failed to load bank", err)
	}

	s.bank = bank
	s.LogInfo(ctx, "Bank loaded",
		slog.String("bank_name", state.Name),
		slog.Int("customers", len(state.Customers)),
		slog.Int("accounts", len(state.Accounts)))
	return nil
}

// Save writes the current state through the repository while holding the lock,
// so the snapshot is consistent.
func (s *BankService) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.bank.State()
	if err := s.repo.SaveSnapshot(ctx, state); err != nil {
		s.LogError(ctx, err, "Failed to save bank snapshot")
		return persistenceErr("failed to save bank", err)
	}

	s.LogInfo(ctx, "Bank saved",
		slog.Int("customers", len(state.Customers)),
		slog.Int("accounts", len(state.Accounts)))
	return nil
}

// reconcile restores the structural invariants, then replays every history and
// pairs every transfer.
func (s *BankService) reconcile(state domain.BankState) (*domain.Bank, error) {
	bank, err := domain.RestoreBank(state, s.bankOpts...)
	if err != nil {
		return nil, err
	}
	for _, acc := range state.Accounts {
		if err := accounting.ValidateAccountHistory(acc); err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrCorruptSnapshot, err)
		}
	}
	if err := accounting.ValidateTransferPairs(state.Accounts); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrCorruptSnapshot, err)
	}
	return bank, nil
}

func persistenceErr(msg string, err error) error {
	if errors.Is(err, apperrors.ErrPersistence) {
		return fmt.Errorf("%s: %w", msg, err)
	}
	return fmt.Errorf("%s: %w: %w", msg, apperrors.ErrPersistence, err)
}
