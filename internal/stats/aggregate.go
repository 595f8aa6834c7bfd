package stats

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/timetrack/internal/domain"
)

// DayFunc reconstructs the record of one date. It returns
// domain.ErrNoArrivalForDate for a date without an arrival.
type DayFunc func(ctx context.Context, date time.Time) (domain.DayRecord, error)

// Row is one date of a period. Record is nil when nobody arrived that day.
type Row struct {
	Date     time.Time
	Record   *domain.DayRecord
	Expected time.Duration
	Diff     time.Duration
	// Scheduled is set when the date is a workday of the targets.
	Scheduled bool
}

// Worked reports whether the date has an arrival.
func (r Row) Worked() bool { return r.Record != nil }

// Totals accumulate the worked dates of a period. Dates without an arrival
// contribute nothing.
type Totals struct {
	DaysWorked int
	Worked     time.Duration
	Expected   time.Duration
	Diff       time.Duration
	// StillPresent is set when the last worked date is still open.
	StillPresent bool
}

func (t *Totals) add(row Row) {
	t.DaysWorked++
	t.Worked += row.Record.Worked
	t.Expected += row.Expected
	t.Diff = t.Worked - t.Expected
	t.StillPresent = row.Record.StillPresent
}

// Aggregate reconstructs every date of p. Any error other than
// ErrNoArrivalForDate aborts the aggregation.
func Aggregate(ctx context.Context, p Period, targets Targets, day DayFunc) ([]Row, Totals, error) {
	var (
		rows   []Row
		totals Totals
	)
	for _, date := range p.Days() {
		rec, err := day(ctx, date)
		if errors.Is(err, domain.ErrNoArrivalForDate) {
			rows = append(rows, Row{Date: date, Scheduled: targets.Workday(date)})
			continue
		}
		if err != nil {
			return nil, Totals{}, &domain.DayError{Date: date, Err: err}
		}

		row := Row{
			Date:      date,
			Record:    &rec,
			Expected:  targets.ExpectedFor(date),
			Scheduled: targets.Workday(date),
		}
		row.Diff = rec.Worked - row.Expected
		rows = append(rows, row)
		totals.add(row)
	}
	return rows, totals, nil
}
