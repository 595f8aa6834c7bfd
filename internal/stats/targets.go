package stats

import "time"

// Targets is the expected working schedule.
type Targets struct {
	DayHours time.Duration
	WeekDays int
}

// DefaultTargets is 8 hours on Monday through Friday.
var DefaultTargets = Targets{DayHours: 8 * time.Hour, WeekDays: 5}

// Week is the expected work time of a full week.
func (t Targets) Week() time.Duration {
	return time.Duration(t.WeekDays) * t.DayHours
}

// Workday reports whether date is one of the first WeekDays days of its
// week, counting from Monday.
func (t Targets) Workday(date time.Time) bool {
	return (int(date.Weekday())+6)%7 < t.WeekDays
}

// ExpectedFor is the expected work time on date: DayHours on workdays,
// nothing otherwise.
func (t Targets) ExpectedFor(date time.Time) time.Duration {
	if !t.Workday(date) {
		return 0
	}
	return t.DayHours
}
