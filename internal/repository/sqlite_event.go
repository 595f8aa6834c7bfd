package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/timetrack/internal/db"
	"github.com/alexanderramin/timetrack/internal/domain"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// ts is declared TIMESTAMP; the driver would convert it to time.Time in UTC
// on read, so queries select it as text and parse it as local time.
const selectEvents = `SELECT type, CAST(ts AS TEXT) FROM times`

// SQLiteEventLog implements EventLog on the times table.
type SQLiteEventLog struct {
	db db.DBTX
}

func NewSQLiteEventLog(db db.DBTX) *SQLiteEventLog {
	return &SQLiteEventLog{db: db}
}

func (r *SQLiteEventLog) Append(ctx context.Context, e domain.Event) error {
	if !e.Type.Valid() {
		return fmt.Errorf("appending event: %w: %q", domain.ErrUnknownActivity, string(e.Type))
	}
	_, err := r.db.ExecContext(ctx, `INSERT INTO times (type, ts) VALUES (?, ?)`,
		string(e.Type), formatTimestamp(e.At))
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%s at %s: %w", e.Type, formatTimestamp(e.At), ErrDuplicateEvent)
		}
		return fmt.Errorf("inserting event: %w", err)
	}
	return nil
}

func (r *SQLiteEventLog) Last(ctx context.Context) (domain.Event, error) {
	row := r.db.QueryRowContext(ctx, selectEvents+` ORDER BY ts DESC LIMIT 1`)
	return r.scanEvent(row)
}

func (r *SQLiteEventLog) First(ctx context.Context) (domain.Event, error) {
	row := r.db.QueryRowContext(ctx, selectEvents+` ORDER BY ts ASC LIMIT 1`)
	return r.scanEvent(row)
}

func (r *SQLiteEventLog) Between(ctx context.Context, start, end time.Time) ([]domain.Event, error) {
	rows, err := r.db.QueryContext(ctx, selectEvents+` WHERE ts >= ? AND ts < ? ORDER BY ts ASC`,
		formatTimestamp(start), formatTimestamp(end))
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		var activity, ts string
		if err := rows.Scan(&activity, &ts); err != nil {
			return nil, fmt.Errorf("scanning event row: %w", err)
		}
		e, err := parseEvent(activity, ts)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating events: %w", err)
	}
	return events, nil
}

func (r *SQLiteEventLog) scanEvent(row *sql.Row) (domain.Event, error) {
	var activity, ts string
	if err := row.Scan(&activity, &ts); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Event{}, fmt.Errorf("event: %w", ErrNotFound)
		}
		return domain.Event{}, fmt.Errorf("scanning event: %w", err)
	}
	return parseEvent(activity, ts)
}

func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	switch se.Code() {
	case sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3.SQLITE_CONSTRAINT_UNIQUE:
		return true
	case sqlite3.SQLITE_CONSTRAINT:
		return strings.Contains(se.Error(), "UNIQUE constraint failed")
	}
	return false
}

// SQLiteEventStore is the SQLite backed EventStore.
type SQLiteEventStore struct {
	*SQLiteEventLog
	db  *sql.DB
	uow db.UnitOfWork
}

func NewSQLiteEventStore(database *sql.DB) *SQLiteEventStore {
	return NewSQLiteEventStoreWithUoW(database, db.NewSQLiteUnitOfWork(database))
}

// NewSQLiteEventStoreWithUoW runs WithinTx through uow instead of a plain
// SQLiteUnitOfWork.
func NewSQLiteEventStoreWithUoW(database *sql.DB, uow db.UnitOfWork) *SQLiteEventStore {
	return &SQLiteEventStore{
		SQLiteEventLog: NewSQLiteEventLog(database),
		db:             database,
		uow:            uow,
	}
}

func (s *SQLiteEventStore) WithinTx(ctx context.Context, fn func(ctx context.Context, log EventLog) error) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return fn(ctx, NewSQLiteEventLog(tx))
	})
}

func (s *SQLiteEventStore) Close() error {
	return s.db.Close()
}
