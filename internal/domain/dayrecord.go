package domain

import (
	"fmt"
	"time"
)

// DayRecord is the work time of one calendar day, derived from its events.
// ArrivedAt, LeftAt, Break and Worked are minute-rounded and satisfy
// ArrivedAt + Worked + Break == LeftAt.
type DayRecord struct {
	Date      time.Time
	ArrivedAt time.Time
	LeftAt    time.Time
	Break     time.Duration
	Worked    time.Duration

	// StillPresent is set when the last span of the day is an open work
	// span; LeftAt is then the evaluation time.
	StillPresent bool
	// OnBreak is set when the day ends in an open break; LeftAt is then the
	// start of that break.
	OnBreak bool
}

type dayState int

const (
	stateWorking dayState = iota
	stateOnBreak
)

// ReconstructDay rebuilds the DayRecord from the ascending events of a
// single day. now is used as the departure time while still at work.
//
// Events before the first arrival belong to the previous shift and are
// skipped. A Leave followed by another arrival on the same day counts the
// time away as break; the day ends at the last Leave.
func ReconstructDay(events []Event, now time.Time) (DayRecord, error) {
	start := -1
	for i, e := range events {
		if e.Type == ActivityArrive {
			start = i
			break
		}
	}
	if start < 0 {
		return DayRecord{}, ErrNoArrivalForDate
	}

	arrivedAt := events[start].At
	state := stateWorking
	spanStart := arrivedAt
	var breakTotal time.Duration
	var lastStop ActivityType

	for _, e := range events[start+1:] {
		if e.At.Before(spanStart) {
			return DayRecord{}, fmt.Errorf("%w: %s at %s precedes %s",
				ErrDataConsistency, e.Type, e.At.Format(time.DateTime), spanStart.Format(time.DateTime))
		}

		switch state {
		case stateWorking:
			if !e.Type.EndsWork() {
				return DayRecord{}, fmt.Errorf("%w: expected break or leave, got %s at %s",
					ErrDataConsistency, e.Type, e.At.Format(time.DateTime))
			}
			lastStop = e.Type
			state = stateOnBreak
			spanStart = e.At
		case stateOnBreak:
			if !e.Type.StartsWork() {
				return DayRecord{}, fmt.Errorf("%w: expected arrival or resume, got %s at %s",
					ErrDataConsistency, e.Type, e.At.Format(time.DateTime))
			}
			breakTotal += e.At.Sub(spanStart)
			state = stateWorking
			spanStart = e.At
		}
	}

	rec := DayRecord{Date: StartOfDay(arrivedAt)}
	var leftAt time.Time
	switch state {
	case stateWorking:
		rec.StillPresent = true
		leftAt = now
		if leftAt.Before(spanStart) {
			leftAt = spanStart
		}
	case stateOnBreak:
		// Stopped by a Leave or an open break: the day ends where work
		// last stopped.
		rec.OnBreak = lastStop == ActivityBreak
		leftAt = spanStart
	}

	// Worked time is derived from the rounded boundaries rather than summed
	// per span, so the record stays additive at minute resolution.
	rec.ArrivedAt = TruncateToMinute(arrivedAt)
	rec.LeftAt = TruncateToMinute(leftAt)
	rec.Break = breakTotal.Truncate(time.Minute)
	rec.Worked = rec.LeftAt.Sub(rec.ArrivedAt) - rec.Break
	return rec, nil
}
