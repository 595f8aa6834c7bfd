package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/timetrack/internal/domain"
)

// EventLog is the append-only activity log. Events are never updated or
// deleted.
type EventLog interface {
	Append(ctx context.Context, e domain.Event) error
	// Last returns the most recent event by timestamp, or ErrNotFound.
	Last(ctx context.Context) (domain.Event, error)
	// First returns the earliest event by timestamp, or ErrNotFound.
	First(ctx context.Context) (domain.Event, error)
	// Between returns events with start <= At < end in ascending order.
	Between(ctx context.Context, start, end time.Time) ([]domain.Event, error)
}

// EventStore is an EventLog that can run a read-then-append sequence
// atomically.
type EventStore interface {
	EventLog
	WithinTx(ctx context.Context, fn func(ctx context.Context, log EventLog) error) error
	Close() error
}

// Backend names accepted by Open.
const (
	BackendSQLite = "sqlite"
	BackendBunt   = "buntdb"
)
