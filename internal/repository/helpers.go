package repository

import (
	"fmt"
	"time"

	"github.com/alexanderramin/timetrack/internal/domain"
)

// timestampLayout is fixed width, so lexical order of stored values is
// chronological order. It matches the layout of databases written by
// earlier releases.
const timestampLayout = "2006-01-02 15:04:05.000000"

func formatTimestamp(t time.Time) string {
	return t.In(time.Local).Format(timestampLayout)
}

// parseTimestamp reads a naive local timestamp. A missing fractional part is
// accepted.
func parseTimestamp(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02 15:04:05", s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing timestamp %q: %w", s, err)
	}
	return t, nil
}

func parseEvent(activity, ts string) (domain.Event, error) {
	a, err := domain.ParseActivityType(activity)
	if err != nil {
		return domain.Event{}, fmt.Errorf("%w: %v", domain.ErrDataConsistency, err)
	}
	at, err := parseTimestamp(ts)
	if err != nil {
		return domain.Event{}, err
	}
	return domain.Event{Type: a, At: at}, nil
}
