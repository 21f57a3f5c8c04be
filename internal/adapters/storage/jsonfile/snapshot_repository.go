// Package jsonfile persists the bank as one pretty-printed JSON document.
//
// Writes are atomic: the snapshot is written to <path>.tmp, synced, and renamed
// over the target, so an interrupted save never leaves a truncated file behind.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/SscSPs/bank_ledger_app/internal/apperrors"
	"github.com/SscSPs/bank_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bank_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/bank_ledger_app/internal/models"
	"github.com/SscSPs/bank_ledger_app/internal/utils/mapping"
)

// StorageName is recorded in the snapshot metadata.
const StorageName = "json_snapshot"

// SupportedVersions is the range of snapshot format versions this package can read.
const SupportedVersions = "^1.0.0"

var supported = mustConstraint(SupportedVersions)

type snapshotRepository struct {
	path string
	note string
	now  func() time.Time
}

// Option is a functional option for configuring the repository
type Option func(*snapshotRepository)

// WithNote sets a free-form note written into every snapshot's metadata.
func WithNote(note string) Option {
	return func(r *snapshotRepository) {
		r.note = note
	}
}

// WithClock replaces the time source used for the saved_at stamp.
func WithClock(now func() time.Time) Option {
	return func(r *snapshotRepository) {
		r.now = now
	}
}

// NewSnapshotRepository creates a repository backed by the file at path.
func NewSnapshotRepository(path string, opts ...Option) portsrepo.SnapshotRepositoryFacade {
	r := &snapshotRepository{
		path: path,
		now:  func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// LoadSnapshot reads and decodes the snapshot file.
func (r *snapshotRepository) LoadSnapshot(ctx context.Context) (*domain.BankState, error) {
	f, err := os.Open(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("snapshot file %s: %w", r.path, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to open snapshot file %s: %w: %w", r.path, apperrors.ErrPersistence, err)
	}
	defer f.Close()

	var snap models.Snapshot
	dec := json.NewDecoder(f)
	if err := dec.Decode(&snap); err != nil {
		return nil, fmt.Errorf("%w: failed to decode %s: %v", apperrors.ErrCorruptSnapshot, r.path, err)
	}
	// The file must hold exactly one JSON document.
	var trailing json.RawMessage
	if err := dec.Decode(&trailing); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after the snapshot in %s", apperrors.ErrCorruptSnapshot, r.path)
	}
	if err := checkVersion(snap.Meta.Version); err != nil {
		return nil, err
	}

	state := mapping.ToDomainBankState(snap)
	return &state, nil
}

// SaveSnapshot encodes state and atomically replaces the snapshot file.
func (r *snapshotRepository) SaveSnapshot(ctx context.Context, state domain.BankState) error {
	snap := mapping.ToModelSnapshot(state, StorageName, r.now())
	snap.Meta.Note = r.note

	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create snapshot directory %s: %w: %w", dir, apperrors.ErrPersistence, err)
		}
	}

	tmp := r.path + ".tmp"
	if err := writeFile(tmp, snap); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to write snapshot %s: %w: %w", tmp, apperrors.ErrPersistence, err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to replace snapshot %s: %w: %w", r.path, apperrors.ErrPersistence, err)
	}
	return nil
}

func writeFile(path string, snap models.Snapshot) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func checkVersion(raw string) error {
	if raw == "" {
		return fmt.Errorf("%w: snapshot has no format version", apperrors.ErrCorruptSnapshot)
	}
	v, err := semver.NewVersion(raw)
	if err != nil {
		return fmt.Errorf("%w: invalid format version '%s': %v", apperrors.ErrCorruptSnapshot, raw, err)
	}
	if !supported.Check(v) {
		return fmt.Errorf("%w: unsupported format version %s (want %s)", apperrors.ErrCorruptSnapshot, v, SupportedVersions)
	}
	return nil
}

func mustConstraint(c string) *semver.Constraints {
	constraint, err := semver.NewConstraint(c)
	if err != nil {
		panic(err)
	}
	return constraint
}
