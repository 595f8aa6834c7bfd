package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/timetrack/internal/domain"
	"github.com/alexanderramin/timetrack/internal/repository"
	"github.com/alexanderramin/timetrack/internal/stats"
)

var ErrNegativeWeeks = errors.New("number of weeks must not be negative")

type reportService struct {
	log      repository.EventLog
	clock    domain.Clock
	targets  stats.Targets
	observer UseCaseObserver
}

func NewReportService(log repository.EventLog, clock domain.Clock, targets stats.Targets, observers ...UseCaseObserver) ReportService {
	return &reportService{
		log:      log,
		clock:    clock,
		targets:  targets,
		observer: useCaseObserverOrNoop(observers),
	}
}

// dayFunc evaluates every day of one report against the same instant.
func (s *reportService) dayFunc(now time.Time) stats.DayFunc {
	return func(ctx context.Context, date time.Time) (domain.DayRecord, error) {
		return reconstruct(ctx, s.log, date, now)
	}
}

func (s *reportService) Day(ctx context.Context, offset int) (report *stats.DayReport, err error) {
	startedAt := time.Now()
	fields := map[string]any{"offset": offset}
	defer observe(ctx, s.observer, "report-day", startedAt, fields, &err)

	now := s.clock.Now()
	date := stats.DayWindow(now, offset)
	events, err := dayEvents(ctx, s.log, date)
	if err != nil {
		return nil, err
	}
	report, err = stats.BuildDayReport(date, events, now, s.targets)
	if err != nil {
		return nil, &domain.DayError{Date: date, Err: err}
	}
	fields["worked_min"] = int(report.Record.Worked / time.Minute)
	return report, nil
}

func (s *reportService) Week(ctx context.Context, offset int) (*stats.PeriodReport, error) {
	return s.period(ctx, stats.PeriodWeek, offset, stats.WeekWindow)
}

func (s *reportService) Month(ctx context.Context, offset int) (*stats.PeriodReport, error) {
	return s.period(ctx, stats.PeriodMonth, offset, stats.MonthWindow)
}

func (s *reportService) period(ctx context.Context, kind stats.PeriodKind, offset int, window func(time.Time, int) stats.Period) (report *stats.PeriodReport, err error) {
	startedAt := time.Now()
	fields := map[string]any{"offset": offset}
	defer observe(ctx, s.observer, "report-"+string(kind), startedAt, fields, &err)

	now := s.clock.Now()
	p := window(now, offset)
	fields["start"] = p.Start.Format(time.DateOnly)
	fields["end"] = p.End.Format(time.DateOnly)

	report, err = stats.BuildPeriodReport(ctx, kind, p, s.targets, s.dayFunc(now))
	if err != nil {
		return nil, err
	}
	fields["days_worked"] = report.Totals.DaysWorked
	return report, nil
}

func (s *reportService) Summary(ctx context.Context, weeks *int) (report *stats.SummaryReport, err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer observe(ctx, s.observer, "report-summary", startedAt, fields, &err)

	now := s.clock.Now()
	n := 0
	if weeks != nil {
		if *weeks < 0 {
			return nil, fmt.Errorf("%w: %d", ErrNegativeWeeks, *weeks)
		}
		n = *weeks
	} else {
		var first *time.Time
		e, ferr := s.log.First(ctx)
		switch {
		case errors.Is(ferr, repository.ErrNotFound):
		case ferr != nil:
			return nil, ferr
		default:
			first = &e.At
		}
		n = stats.DefaultSummaryWeeks(now, first)
	}
	fields["weeks"] = n

	return stats.BuildSummaryReport(ctx, stats.SummaryWindow(now, n), n, s.targets, s.dayFunc(now))
}
