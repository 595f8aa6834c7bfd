package domain

import "fmt"

// ValidateTransition decides whether requested may follow last, the type of
// the most recent event in the whole log (ActivityNone for an empty log).
// Rejections are *TransitionError values wrapping ErrHaveNotLeft,
// ErrNotWorking or ErrNotBreaking.
func ValidateTransition(last, requested ActivityType) error {
	if !requested.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownActivity, string(requested))
	}
	if last != ActivityNone && !last.Valid() {
		return fmt.Errorf("%w: last event has unknown type %q", ErrDataConsistency, string(last))
	}

	away := last == ActivityNone || last == ActivityLeave

	var kind error
	switch requested {
	case ActivityArrive:
		if !away {
			kind = ErrHaveNotLeft
		}
	case ActivityBreak, ActivityLeave:
		if !last.StartsWork() {
			kind = ErrNotWorking
		}
	case ActivityResume:
		if last != ActivityBreak {
			kind = ErrNotBreaking
		}
	}
	if kind != nil {
		return &TransitionError{Last: last, Requested: requested, Kind: kind}
	}
	return nil
}
