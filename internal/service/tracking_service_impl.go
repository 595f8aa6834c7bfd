package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/timetrack/internal/domain"
	"github.com/alexanderramin/timetrack/internal/repository"
)

type trackingService struct {
	store    repository.EventStore
	clock    domain.Clock
	observer UseCaseObserver
}

func NewTrackingService(store repository.EventStore, clock domain.Clock, observers ...UseCaseObserver) TrackingService {
	return &trackingService{
		store:    store,
		clock:    clock,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *trackingService) Record(ctx context.Context, activity domain.ActivityType, offset time.Duration) (result *RecordResult, err error) {
	startedAt := time.Now()
	fields := map[string]any{
		"activity":   activity.String(),
		"offset_min": int(offset / time.Minute),
	}
	defer observe(ctx, s.observer, "record-"+activity.String(), startedAt, fields, &err)

	if !activity.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownActivity, string(activity))
	}
	event := domain.NewEvent(activity, s.clock.Now().Add(offset))

	var previous *domain.Event
	err = s.store.WithinTx(ctx, func(ctx context.Context, log repository.EventLog) error {
		last, err := lastEvent(ctx, log)
		if err != nil {
			return err
		}
		lastType := domain.ActivityNone
		if last != nil {
			lastType = last.Type
		}
		if err := domain.ValidateTransition(lastType, activity); err != nil {
			return err
		}
		// Equal timestamps would leave the order of the two events to the
		// storage backend.
		if last != nil && !event.At.After(last.At) {
			return fmt.Errorf("%w: %s at %s is not after %s at %s", domain.ErrOutOfOrder,
				activity, event.At.Format(time.DateTime), last.Type, last.At.Format(time.DateTime))
		}
		previous = last
		return log.Append(ctx, event)
	})
	if err != nil {
		return nil, err
	}

	fields["at"] = event.At.Format(time.DateTime)
	return &RecordResult{Event: event, Previous: previous}, nil
}

func (s *trackingService) Status(ctx context.Context) (status *Status, err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer observe(ctx, s.observer, "status", startedAt, fields, &err)

	now := s.clock.Now()
	last, err := lastEvent(ctx, s.store)
	if err != nil {
		return nil, err
	}
	status = &Status{Now: now, Last: last, State: domain.StateAway}
	if last == nil {
		return status, nil
	}
	status.State = domain.StateAfter(last.Type)
	fields["state"] = string(status.State)

	today := domain.StartOfDay(now)
	rec, err := reconstruct(ctx, s.store, today, now)
	switch {
	case errors.Is(err, domain.ErrNoArrivalForDate):
	case err != nil:
		return nil, err
	default:
		status.Today = &rec
	}
	return status, nil
}

// lastEvent returns nil for an empty log.
func lastEvent(ctx context.Context, log repository.EventLog) (*domain.Event, error) {
	last, err := log.Last(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading last event: %w", err)
	}
	return &last, nil
}

// reconstruct builds the record of date from its events.
func reconstruct(ctx context.Context, log repository.EventLog, date, now time.Time) (domain.DayRecord, error) {
	events, err := dayEvents(ctx, log, date)
	if err != nil {
		return domain.DayRecord{}, err
	}
	return domain.ReconstructDay(events, now)
}

func dayEvents(ctx context.Context, log repository.EventLog, date time.Time) ([]domain.Event, error) {
	start := domain.StartOfDay(date)
	events, err := log.Between(ctx, start, start.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("loading events for %s: %w", start.Format(time.DateOnly), err)
	}
	return events, nil
}
