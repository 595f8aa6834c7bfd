package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/timetrack/internal/domain"
	"github.com/alexanderramin/timetrack/internal/repository"
	"github.com/alexanderramin/timetrack/internal/testutil"
	"github.com/stretchr/testify/require"
)

var (
	monday    = testutil.Day(2025, 6, 16)
	tuesday   = monday.AddDate(0, 0, 1)
	wednesday = monday.AddDate(0, 0, 2)
)

func newTestStore(t *testing.T) repository.EventStore {
	t.Helper()
	return repository.NewSQLiteEventStore(testutil.NewTestDB(t))
}

func seed(t *testing.T, log repository.EventLog, events ...domain.Event) {
	t.Helper()
	for _, e := range events {
		require.NoError(t, log.Append(context.Background(), e))
	}
}

func countEvents(t *testing.T, log repository.EventLog) int {
	t.Helper()
	events, err := log.Between(context.Background(), time.Time{}, time.Date(3000, 1, 1, 0, 0, 0, 0, time.Local))
	require.NoError(t, err)
	return len(events)
}

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}
