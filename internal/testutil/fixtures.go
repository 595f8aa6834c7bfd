package testutil

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/timetrack/internal/domain"
)

// Day returns local midnight of the given date.
func Day(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}

// At returns day at the wall-clock time "HH:MM" or "HH:MM:SS".
func At(day time.Time, clock string) time.Time {
	layout := "15:04"
	if strings.Count(clock, ":") == 2 {
		layout = "15:04:05"
	}
	tod, err := time.Parse(layout, clock)
	if err != nil {
		panic(fmt.Sprintf("testutil.At: %v", err))
	}
	y, m, d := day.Date()
	return time.Date(y, m, d, tod.Hour(), tod.Minute(), tod.Second(), 0, time.Local)
}

// Events builds a day's events from alternating (type, "HH:MM") pairs:
//
//	Events(day, domain.ActivityArrive, "08:00", domain.ActivityLeave, "16:00")
func Events(day time.Time, pairs ...any) []domain.Event {
	if len(pairs)%2 != 0 {
		panic("testutil.Events: odd number of arguments")
	}
	events := make([]domain.Event, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		activity, ok := pairs[i].(domain.ActivityType)
		if !ok {
			panic(fmt.Sprintf("testutil.Events: argument %d is %T, want domain.ActivityType", i, pairs[i]))
		}
		clock, ok := pairs[i+1].(string)
		if !ok {
			panic(fmt.Sprintf("testutil.Events: argument %d is %T, want string", i+1, pairs[i+1]))
		}
		events = append(events, domain.NewEvent(activity, At(day, clock)))
	}
	return events
}

// StandardDay is 08:00-16:30 with a 30 minute lunch break: 8h worked.
func StandardDay(day time.Time) []domain.Event {
	return Events(day,
		domain.ActivityArrive, "08:00",
		domain.ActivityBreak, "12:00",
		domain.ActivityResume, "12:30",
		domain.ActivityLeave, "16:30",
	)
}
