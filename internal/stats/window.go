package stats

import (
	"time"

	"github.com/alexanderramin/timetrack/internal/domain"
)

// Period is an inclusive range of calendar dates, each at local midnight.
// A period whose End is before its Start is empty.
type Period struct {
	Start time.Time
	End   time.Time
}

// Empty reports whether the period contains no dates.
func (p Period) Empty() bool {
	return p.End.Before(p.Start)
}

// Days returns the dates of the period in ascending order.
func (p Period) Days() []time.Time {
	var days []time.Time
	for d := p.Start; !d.After(p.End); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// MondayOf returns the Monday of the ISO week containing t, at midnight.
func MondayOf(t time.Time) time.Time {
	d := domain.StartOfDay(t)
	shift := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -shift)
}

// DayWindow is the single date today + offset days.
func DayWindow(today time.Time, offset int) time.Time {
	return domain.StartOfDay(today).AddDate(0, 0, offset)
}

// WeekWindow runs from the Monday of the week offset weeks from today to
// that Sunday, cut off at today.
func WeekWindow(today time.Time, offset int) Period {
	start := MondayOf(today).AddDate(0, 0, 7*offset)
	return Period{Start: start, End: minDate(start.AddDate(0, 0, 6), domain.StartOfDay(today))}
}

// MonthWindow runs from the first to the last day of the month offset
// months from today, cut off at today.
func MonthWindow(today time.Time, offset int) Period {
	y, m, _ := today.Date()
	start := time.Date(y, m+time.Month(offset), 1, 0, 0, 0, 0, today.Location())
	last := start.AddDate(0, 1, -1)
	return Period{Start: start, End: minDate(last, domain.StartOfDay(today))}
}

// SummaryWindow starts weeks weeks before the Monday of the current week and
// ends today.
func SummaryWindow(today time.Time, weeks int) Period {
	return Period{
		Start: MondayOf(today).AddDate(0, 0, -7*weeks),
		End:   domain.StartOfDay(today),
	}
}

// DefaultSummaryWeeks covers the whole log: the weeks since the first
// entry, or the ISO week number of today for an empty log.
func DefaultSummaryWeeks(today time.Time, first *time.Time) int {
	if first == nil {
		_, week := today.ISOWeek()
		return week
	}
	days := daysBetween(domain.StartOfDay(*first), domain.StartOfDay(today))
	if days < 0 {
		days = 0
	}
	return days/7 + 1
}

// daysBetween counts calendar days, unaffected by DST shifts.
func daysBetween(from, to time.Time) int {
	fy, fm, fd := from.Date()
	ty, tm, td := to.Date()
	a := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	b := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}

func minDate(a, b time.Time) time.Time {
	if b.Before(a) {
		return b
	}
	return a
}
