package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexanderramin/timetrack/internal/domain"
	"github.com/alexanderramin/timetrack/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuntEventStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "timetrack.bunt")
	ctx := context.Background()

	store, err := OpenBuntEventStore(path)
	require.NoError(t, err)
	appendAll(t, store, testutil.StandardDay(monday)...)
	require.NoError(t, store.Close())

	store, err = OpenBuntEventStore(path)
	require.NoError(t, err)
	defer store.Close()

	events, err := store.Between(ctx, monday, monday.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, testutil.StandardDay(monday), events)
}

func TestBuntEventStore_LockIsExclusive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "timetrack.bunt")

	first, err := OpenBuntEventStore(path)
	require.NoError(t, err)

	opened := make(chan *BuntEventStore)
	go func() {
		second, err := OpenBuntEventStore(path)
		if err != nil {
			t.Errorf("second open: %v", err)
			close(opened)
			return
		}
		opened <- second
	}()

	select {
	case <-opened:
		t.Fatal("second store opened while the first held the lock")
	case <-time.After(100 * time.Millisecond):
	}

	require.NoError(t, first.Close())

	select {
	case second, ok := <-opened:
		require.True(t, ok)
		require.NoError(t, second.Close())
	case <-time.After(5 * time.Second):
		t.Fatal("second store did not open after the lock was released")
	}
}

func TestParseEventKey(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		want    domain.Event
		wantErr bool
	}{
		{
			name: "valid",
			key:  "ev:2025-06-16 08:00:00.000000|arrive",
			want: domain.Event{Type: domain.ActivityArrive, At: testutil.At(monday, "08:00")},
		},
		{name: "missing prefix", key: "2025-06-16 08:00:00.000000|arrive", wantErr: true},
		{name: "missing separator", key: "ev:2025-06-16 08:00:00.000000", wantErr: true},
		{name: "unknown type", key: "ev:2025-06-16 08:00:00.000000|lunch", wantErr: true},
		{name: "bad timestamp", key: "ev:yesterday|arrive", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseEventKey(tt.key)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want.Type, got.Type)
			assert.True(t, tt.want.At.Equal(got.At))
		})
	}
}
