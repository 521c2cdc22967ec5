// Package journal keeps an optional record of every processed export.
package journal

import (
	"context"
	"fmt"
	"time"
)

// Backends.
const (
	BackendNone   = ""
	BackendJSONL  = "jsonl"
	BackendSQLite = "sqlite"
)

// Config selects the journal backend.
type Config struct {
	// Backend is "", "jsonl" or "sqlite". Empty disables the journal.
	Backend string `json:"backend"`
	Path    string `json:"path"`
}

// SetDefaults fills the path for the selected backend.
func (c *Config) SetDefaults() {
	if c.Path != "" {
		return
	}
	switch c.Backend {
	case BackendJSONL:
		c.Path = "flexrate-journal.jsonl"
	case BackendSQLite:
		c.Path = "flexrate-journal.db"
	}
}

// Validate checks the backend name.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendNone, BackendJSONL, BackendSQLite:
		return nil
	default:
		return fmt.Errorf("unknown journal backend %s", c.Backend)
	}
}

// Record describes the processing of one primary export.
type Record struct {
	RunID         string        `json:"run_id"`
	Input         string        `json:"input"`
	Output        string        `json:"output,omitempty"`
	Started       time.Time     `json:"started"`
	Duration      time.Duration `json:"duration"`
	RowsRead      int           `json:"rows_read"`
	RowsWritten   int           `json:"rows_written"`
	FirstBookDate string        `json:"first_book_date,omitempty"`
	Error         string        `json:"error,omitempty"`
}

// Store persists records.
type Store interface {
	Append(ctx context.Context, rec Record) error
	// Records returns records in insertion order, optionally limited to one run.
	Records(ctx context.Context, runID string) ([]Record, error)
	Close() error
}

// NopStore discards records.
type NopStore struct{}

func (NopStore) Append(context.Context, Record) error { return nil }

func (NopStore) Records(context.Context, string) ([]Record, error) { return nil, nil }

func (NopStore) Close() error { return nil }

// New opens the store selected by cfg.
func New(cfg Config) (Store, error) {
	switch cfg.Backend {
	case BackendNone:
		return NopStore{}, nil
	case BackendJSONL:
		return NewJSONLStore(cfg.Path)
	case BackendSQLite:
		return NewSQLiteStore(cfg.Path)
	default:
		return nil, fmt.Errorf("unknown journal backend %s", cfg.Backend)
	}
}
