package models

import "time"

// SnapshotFormatVersion is written into every snapshot's metadata.
// Loaders accept any 1.x version.
const SnapshotFormatVersion = "1.0.0"

// SnapshotMeta describes how and when a snapshot was produced.
type SnapshotMeta struct {
	Storage string    `json:"storage"`
	Version string    `json:"version"`
	SavedAt time.Time `json:"saved_at"`
	Note    string    `json:"note,omitempty"`
}

// Snapshot is the on-disk representation of the whole bank.
type Snapshot struct {
	Meta      SnapshotMeta `json:"_meta"`
	BankName  string       `json:"bank_name"`
	Customers []Customer   `json:"customers"`
	Accounts  []Account    `json:"accounts"`
}
