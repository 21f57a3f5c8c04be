package services

import "context"

// PersistenceSvc moves the bank to and from its snapshot store
type PersistenceSvc interface {
	// Load replaces the in-memory bank with the saved one.
	// A missing snapshot leaves an empty bank and is not an error.
	Load(ctx context.Context) error

	// Save writes the current state to the snapshot store.
	Save(ctx context.Context) error
}
