// Package repository persists and loads ranking snapshots.
package repository

import (
	"context"

	"github.com/okian/fiprank/internal/domain/model"
)

// Column names of the canonical table.
const (
	ColumnName      = "Name"
	ColumnNameAlias = "Title"
	ColumnCountry   = "Countries"
	ColumnPoints    = "Points"
	ColumnPosition  = "Position"
)

// Store provides read/write access to snapshot tables.
type Store interface {
	// Save writes document to destination unless it already exists. It
	// returns false, and no error, when the write was skipped.
	Save(ctx context.Context, document, destination string) (bool, error)

	// Load parses every row of the table at path. Any bad row fails the
	// whole load.
	Load(ctx context.Context, path string) ([]model.Record, error)
}
