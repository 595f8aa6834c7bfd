package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrHaveNotLeft is returned when an arrival is requested while the
	// previous day has not been closed.
	ErrHaveNotLeft = errors.New("have not left yet")

	// ErrNotWorking is returned for a break or leave request while not at work.
	ErrNotWorking = errors.New("not working")

	// ErrNotBreaking is returned for a resume request while not on a break.
	ErrNotBreaking = errors.New("not on a break")

	// ErrNoArrivalForDate means the requested date has no logged arrival.
	// Callers aggregating several days treat it as a day off.
	ErrNoArrivalForDate = errors.New("no arrival for date")

	// ErrDataConsistency signals an event sequence the state machine cannot
	// explain. It is never swallowed.
	ErrDataConsistency = errors.New("inconsistent event data")

	ErrUnknownActivity = errors.New("unknown activity")

	// ErrOutOfOrder is returned when a new event would not be timestamped
	// strictly after the last logged one.
	ErrOutOfOrder = errors.New("event is not after the last logged event")
)

// TransitionError describes a rejected state transition. Kind is one of
// ErrHaveNotLeft, ErrNotWorking or ErrNotBreaking.
type TransitionError struct {
	Last      ActivityType
	Requested ActivityType
	Kind      error
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot record %s after %s: %v", e.Requested, e.Last, e.Kind)
}

func (e *TransitionError) Unwrap() error {
	return e.Kind
}

// DayError attaches the calendar date to an error raised for that day.
type DayError struct {
	Date time.Time
	Err  error
}

func (e *DayError) Error() string {
	return fmt.Sprintf("%s: %v", e.Date.Format(time.DateOnly), e.Err)
}

func (e *DayError) Unwrap() error {
	return e.Err
}
