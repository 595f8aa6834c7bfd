package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alexanderramin/timetrack/internal/domain"
	"github.com/alexflint/go-filemutex"
	"github.com/tidwall/buntdb"
)

// Keys are "ev:<timestamp>|<type>". The timestamp layout is fixed width, so
// key order is chronological order.
const (
	eventKeyPrefix = "ev:"
	eventKeySep    = "|"
)

func eventKey(e domain.Event) string {
	return eventKeyPrefix + formatTimestamp(e.At) + eventKeySep + string(e.Type)
}

func eventKeyBound(t time.Time) string {
	return eventKeyPrefix + formatTimestamp(t)
}

func parseEventKey(key string) (domain.Event, error) {
	rest, ok := strings.CutPrefix(key, eventKeyPrefix)
	if !ok {
		return domain.Event{}, fmt.Errorf("%w: unexpected key %q", domain.ErrDataConsistency, key)
	}
	ts, activity, ok := strings.Cut(rest, eventKeySep)
	if !ok {
		return domain.Event{}, fmt.Errorf("%w: malformed key %q", domain.ErrDataConsistency, key)
	}
	return parseEvent(activity, ts)
}

// buntEventLog implements EventLog on a single buntdb transaction.
type buntEventLog struct {
	tx *buntdb.Tx
}

func (l *buntEventLog) Append(ctx context.Context, e domain.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !e.Type.Valid() {
		return fmt.Errorf("appending event: %w: %q", domain.ErrUnknownActivity, string(e.Type))
	}
	key := eventKey(e)
	if _, err := l.tx.Get(key); err == nil {
		return fmt.Errorf("%s at %s: %w", e.Type, formatTimestamp(e.At), ErrDuplicateEvent)
	} else if !errors.Is(err, buntdb.ErrNotFound) {
		return fmt.Errorf("checking event: %w", err)
	}
	if _, _, err := l.tx.Set(key, string(e.Type), nil); err != nil {
		return fmt.Errorf("storing event: %w", err)
	}
	return nil
}

func (l *buntEventLog) Last(ctx context.Context) (domain.Event, error) {
	return l.edge(ctx, l.tx.Descend)
}

func (l *buntEventLog) First(ctx context.Context) (domain.Event, error) {
	return l.edge(ctx, l.tx.Ascend)
}

func (l *buntEventLog) edge(ctx context.Context, iterate func(index string, fn func(key, value string) bool) error) (domain.Event, error) {
	if err := ctx.Err(); err != nil {
		return domain.Event{}, err
	}
	var (
		e     domain.Event
		found bool
		perr  error
	)
	err := iterate("", func(key, _ string) bool {
		if !strings.HasPrefix(key, eventKeyPrefix) {
			return true
		}
		e, perr = parseEventKey(key)
		found = true
		return false
	})
	if err != nil {
		return domain.Event{}, fmt.Errorf("scanning events: %w", err)
	}
	if perr != nil {
		return domain.Event{}, perr
	}
	if !found {
		return domain.Event{}, fmt.Errorf("event: %w", ErrNotFound)
	}
	return e, nil
}

func (l *buntEventLog) Between(ctx context.Context, start, end time.Time) ([]domain.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var (
		events []domain.Event
		perr   error
	)
	err := l.tx.AscendRange("", eventKeyBound(start), eventKeyBound(end), func(key, _ string) bool {
		var e domain.Event
		e, perr = parseEventKey(key)
		if perr != nil {
			return false
		}
		events = append(events, e)
		return true
	})
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}
	if perr != nil {
		return nil, perr
	}
	return events, nil
}

// BuntEventStore is the buntdb backed EventStore. A file backed store holds
// an exclusive lock on "<path>.lock" until Close.
type BuntEventStore struct {
	db   *buntdb.DB
	lock *filemutex.FileMutex
}

// OpenBuntEventStore opens or creates the store at path. ":memory:" opens a
// private in-memory store without a lock.
func OpenBuntEventStore(path string) (*BuntEventStore, error) {
	var lock *filemutex.FileMutex
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("creating store directory: %w", err)
		}
		m, err := filemutex.New(path + ".lock")
		if err != nil {
			return nil, fmt.Errorf("creating lock file: %w", err)
		}
		if err := m.Lock(); err != nil {
			m.Close()
			return nil, fmt.Errorf("locking event store: %w", err)
		}
		lock = m
	}

	bdb, err := buntdb.Open(path)
	if err != nil {
		if lock != nil {
			lock.Close()
		}
		return nil, fmt.Errorf("opening event store: %w", err)
	}

	var cfg buntdb.Config
	if err := bdb.ReadConfig(&cfg); err == nil {
		cfg.SyncPolicy = buntdb.Always
		cfg.AutoShrinkDisabled = true
		err = bdb.SetConfig(cfg)
	}
	if err != nil {
		bdb.Close()
		if lock != nil {
			lock.Close()
		}
		return nil, fmt.Errorf("configuring event store: %w", err)
	}

	return &BuntEventStore{db: bdb, lock: lock}, nil
}

func (s *BuntEventStore) Append(ctx context.Context, e domain.Event) error {
	return s.db.Update(func(tx *buntdb.Tx) error {
		return (&buntEventLog{tx: tx}).Append(ctx, e)
	})
}

func (s *BuntEventStore) Last(ctx context.Context) (e domain.Event, err error) {
	err = s.db.View(func(tx *buntdb.Tx) error {
		e, err = (&buntEventLog{tx: tx}).Last(ctx)
		return err
	})
	return e, err
}

func (s *BuntEventStore) First(ctx context.Context) (e domain.Event, err error) {
	err = s.db.View(func(tx *buntdb.Tx) error {
		e, err = (&buntEventLog{tx: tx}).First(ctx)
		return err
	})
	return e, err
}

func (s *BuntEventStore) Between(ctx context.Context, start, end time.Time) (events []domain.Event, err error) {
	err = s.db.View(func(tx *buntdb.Tx) error {
		events, err = (&buntEventLog{tx: tx}).Between(ctx, start, end)
		return err
	})
	return events, err
}

// WithinTx runs fn in a writable transaction; the writes are discarded when
// fn returns an error.
func (s *BuntEventStore) WithinTx(ctx context.Context, fn func(ctx context.Context, log EventLog) error) error {
	return s.db.Update(func(tx *buntdb.Tx) error {
		return fn(ctx, &buntEventLog{tx: tx})
	})
}

func (s *BuntEventStore) Close() error {
	err := s.db.Close()
	if s.lock != nil {
		if lerr := s.lock.Close(); lerr != nil && err == nil {
			err = lerr
		}
	}
	return err
}
