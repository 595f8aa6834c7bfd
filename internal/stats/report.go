package stats

import (
	"context"
	"time"

	"github.com/alexanderramin/timetrack/internal/domain"
)

type PeriodKind string

const (
	PeriodWeek  PeriodKind = "week"
	PeriodMonth PeriodKind = "month"
)

// PeriodReport is the week or month view.
type PeriodReport struct {
	Kind   PeriodKind
	Period Period
	Rows   []Row
	Totals Totals

	// Remaining is set while the working week is not complete:
	// fewer worked days than Targets.WeekDays, or exactly that many with
	// the last one still open.
	Remaining *time.Duration
	// RemainingPerDay spreads Remaining over the days left, when at least
	// two are left.
	RemainingPerDay *time.Duration
}

// ISOWeek is the week number of the period start.
func (r *PeriodReport) ISOWeek() int {
	_, w := r.Period.Start.ISOWeek()
	return w
}

// BuildPeriodReport aggregates p and derives the remaining time against a
// full working week.
func BuildPeriodReport(ctx context.Context, kind PeriodKind, p Period, targets Targets, day DayFunc) (*PeriodReport, error) {
	rows, totals, err := Aggregate(ctx, p, targets, day)
	if err != nil {
		return nil, err
	}
	report := &PeriodReport{Kind: kind, Period: p, Rows: rows, Totals: totals}

	done := totals.DaysWorked
	if done < targets.WeekDays || (done == targets.WeekDays && totals.StillPresent) {
		remaining := targets.Week() - totals.Worked
		report.Remaining = &remaining
		if done < targets.WeekDays-1 {
			perDay := remaining / time.Duration(targets.WeekDays-done)
			report.RemainingPerDay = &perDay
		}
	}
	return report, nil
}

// SummaryReport is the expected and worked total over many weeks.
type SummaryReport struct {
	Period Period
	Weeks  int
	Totals Totals
}

func BuildSummaryReport(ctx context.Context, p Period, weeks int, targets Targets, day DayFunc) (*SummaryReport, error) {
	_, totals, err := Aggregate(ctx, p, targets, day)
	if err != nil {
		return nil, err
	}
	return &SummaryReport{Period: p, Weeks: weeks, Totals: totals}, nil
}

// DayEntry is one event of the day view. BreakLength is set on a resume
// that closes a break.
type DayEntry struct {
	Event       domain.Event
	BreakLength *time.Duration
}

// DayReport is the single-day view.
type DayReport struct {
	Date    time.Time
	Entries []DayEntry
	Record  domain.DayRecord
	// Today is set when Date is the evaluation date; LeaveAt is only
	// meaningful then.
	Today     bool
	Remaining time.Duration
	LeaveAt   time.Time
}

// BuildDayReport reconstructs date from its events. A date without an
// arrival yields domain.ErrNoArrivalForDate.
func BuildDayReport(date time.Time, events []domain.Event, now time.Time, targets Targets) (*DayReport, error) {
	rec, err := domain.ReconstructDay(events, now)
	if err != nil {
		return nil, err
	}

	report := &DayReport{
		Date:      domain.StartOfDay(date),
		Record:    rec,
		Today:     domain.StartOfDay(now).Equal(domain.StartOfDay(date)),
		Remaining: targets.DayHours - rec.Worked,
	}
	report.LeaveAt = now.Add(report.Remaining)
	report.Entries = dayEntries(events)
	return report, nil
}

// dayEntries lists the events from the first arrival on. A resume or a
// second arrival carries the length of the break or absence it ends.
func dayEntries(events []domain.Event) []DayEntry {
	var (
		entries   []DayEntry
		stoppedAt *time.Time
		started   bool
	)
	for _, e := range events {
		if !started {
			if e.Type != domain.ActivityArrive {
				continue
			}
			started = true
		}
		entry := DayEntry{Event: e}
		switch e.Type {
		case domain.ActivityBreak, domain.ActivityLeave:
			at := e.At
			stoppedAt = &at
		case domain.ActivityResume, domain.ActivityArrive:
			if stoppedAt != nil {
				length := e.At.Sub(*stoppedAt).Truncate(time.Second)
				entry.BreakLength = &length
				stoppedAt = nil
			}
		}
		entries = append(entries, entry)
	}
	return entries
}
