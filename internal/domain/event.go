package domain

import "time"

// EventPrecision is the resolution at which event timestamps are persisted.
const EventPrecision = time.Microsecond

// Event is a single entry of the append-only activity log. (Type, At) is
// the natural key of the log.
type Event struct {
	Type ActivityType
	At   time.Time
}

// NewEvent normalises the timestamp to local wall-clock time at storage
// precision so that a persisted event compares equal to the one appended.
func NewEvent(t ActivityType, at time.Time) Event {
	return Event{Type: t, At: at.Round(0).In(time.Local).Truncate(EventPrecision)}
}

// StartOfDay returns local midnight of the day containing t.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// TruncateToMinute drops seconds and sub-second parts of t.
func TruncateToMinute(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, t.Hour(), t.Minute(), 0, 0, t.Location())
}
