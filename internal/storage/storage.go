// Package storage defines the persistence interface for the action log. A
// document is never stored directly; its history of dispatch records is,
// and the current state is rebuilt by replay.
package storage

import (
	"context"

	"github.com/steveyegge/wbs/internal/dispatch"
)

// Storage is the interface all action log backends must implement.
type Storage interface {
	// AppendRecord adds one dispatch record to the end of the log.
	AppendRecord(ctx context.Context, rec dispatch.Record) error

	// ListRecords returns every record in append order, failures included.
	ListRecords(ctx context.Context) ([]dispatch.Record, error)

	// CountActions returns the number of records in the log.
	CountActions(ctx context.Context) (int, error)

	// Close releases the backend's resources.
	Close() error
}
