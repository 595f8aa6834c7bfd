package domain

import (
	"fmt"
	"strings"
)

// ActivityType is the kind of a logged event. The string values are the
// ones persisted in the event log.
type ActivityType string

const (
	ActivityNone   ActivityType = ""
	ActivityArrive ActivityType = "arrive"
	ActivityBreak  ActivityType = "break"
	ActivityResume ActivityType = "resume"
	ActivityLeave  ActivityType = "leave"
)

// Activities lists every valid activity in the order of a typical day.
var Activities = []ActivityType{ActivityArrive, ActivityBreak, ActivityResume, ActivityLeave}

func (a ActivityType) Valid() bool {
	switch a {
	case ActivityArrive, ActivityBreak, ActivityResume, ActivityLeave:
		return true
	}
	return false
}

// StartsWork reports whether the activity opens a work span.
func (a ActivityType) StartsWork() bool {
	return a == ActivityArrive || a == ActivityResume
}

// EndsWork reports whether the activity closes a work span.
func (a ActivityType) EndsWork() bool {
	return a == ActivityBreak || a == ActivityLeave
}

func (a ActivityType) String() string {
	if a == ActivityNone {
		return "none"
	}
	return string(a)
}

// ParseActivityType converts a stored or user supplied tag into an
// ActivityType.
func ParseActivityType(s string) (ActivityType, error) {
	a := ActivityType(strings.ToLower(strings.TrimSpace(s)))
	if !a.Valid() {
		return ActivityNone, fmt.Errorf("%w: %q", ErrUnknownActivity, s)
	}
	return a, nil
}
