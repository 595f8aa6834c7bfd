package service

import (
	"context"
	"time"

	"github.com/alexanderramin/timetrack/internal/domain"
	"github.com/alexanderramin/timetrack/internal/stats"
)

type TrackingService interface {
	// Record validates activity against the last logged event and appends
	// it at now + offset. The log is unchanged when an error is returned.
	Record(ctx context.Context, activity domain.ActivityType, offset time.Duration) (*RecordResult, error)
	Status(ctx context.Context) (*Status, error)
}

type ReportService interface {
	Day(ctx context.Context, offset int) (*stats.DayReport, error)
	Week(ctx context.Context, offset int) (*stats.PeriodReport, error)
	Month(ctx context.Context, offset int) (*stats.PeriodReport, error)
	// Summary covers weeks full weeks before the current one. A nil weeks
	// covers the whole log.
	Summary(ctx context.Context, weeks *int) (*stats.SummaryReport, error)
}

// RecordResult is the appended event and the one it followed, if any.
type RecordResult struct {
	Event    domain.Event
	Previous *domain.Event
}

// SincePrevious is the time between the previous event and the new one.
func (r *RecordResult) SincePrevious() time.Duration {
	if r.Previous == nil {
		return 0
	}
	return r.Event.At.Sub(r.Previous.At)
}

type Status struct {
	Now   time.Time
	Last  *domain.Event
	State domain.WorkState
	// Today is the reconstructed record of the current day, nil when there
	// is no arrival today.
	Today *domain.DayRecord
}
