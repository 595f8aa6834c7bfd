package stats

import (
	"testing"
	"time"

	"github.com/alexanderramin/timetrack/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMondayOf(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"monday", testutil.Day(2025, 6, 16), testutil.Day(2025, 6, 16)},
		{"wednesday afternoon", testutil.At(testutil.Day(2025, 6, 18), "15:30"), testutil.Day(2025, 6, 16)},
		{"sunday", testutil.Day(2025, 6, 22), testutil.Day(2025, 6, 16)},
		{"across month boundary", testutil.Day(2025, 7, 2), testutil.Day(2025, 6, 30)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MondayOf(tt.in))
		})
	}
}

func TestWeekWindow(t *testing.T) {
	wednesday := testutil.At(testutil.Day(2025, 6, 18), "10:00")

	tests := []struct {
		name   string
		offset int
		want   Period
	}{
		{"current week ends today", 0, Period{testutil.Day(2025, 6, 16), testutil.Day(2025, 6, 18)}},
		{"previous week is complete", -1, Period{testutil.Day(2025, 6, 9), testutil.Day(2025, 6, 15)}},
		{"two weeks back", -2, Period{testutil.Day(2025, 6, 2), testutil.Day(2025, 6, 8)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WeekWindow(wednesday, tt.offset))
		})
	}

	assert.True(t, WeekWindow(wednesday, 1).Empty(), "future week has no dates")
}

func TestMonthWindow(t *testing.T) {
	today := testutil.At(testutil.Day(2025, 3, 12), "09:00")

	tests := []struct {
		name   string
		offset int
		want   Period
	}{
		{"current month ends today", 0, Period{testutil.Day(2025, 3, 1), testutil.Day(2025, 3, 12)}},
		{"february", -1, Period{testutil.Day(2025, 2, 1), testutil.Day(2025, 2, 28)}},
		{"previous year", -3, Period{testutil.Day(2024, 12, 1), testutil.Day(2024, 12, 31)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MonthWindow(today, tt.offset))
		})
	}
}

func TestMonthWindow_EndOfMonthToday(t *testing.T) {
	// The 31st minus one month must not normalise into the current month.
	today := testutil.Day(2025, 3, 31)
	assert.Equal(t, Period{testutil.Day(2025, 2, 1), testutil.Day(2025, 2, 28)}, MonthWindow(today, -1))
}

func TestSummaryWindow(t *testing.T) {
	today := testutil.Day(2025, 6, 18)
	p := SummaryWindow(today, 2)
	assert.Equal(t, testutil.Day(2025, 6, 2), p.Start)
	assert.Equal(t, today, p.End)
	assert.Len(t, p.Days(), 17)
}

func TestDefaultSummaryWeeks(t *testing.T) {
	today := testutil.Day(2025, 6, 18)

	first := testutil.At(testutil.Day(2025, 6, 4), "08:00")
	assert.Equal(t, 3, DefaultSummaryWeeks(today, &first))

	sameDay := testutil.At(today, "08:00")
	assert.Equal(t, 1, DefaultSummaryWeeks(today, &sameDay))

	assert.Equal(t, 25, DefaultSummaryWeeks(today, nil), "empty log falls back to the ISO week number")
}

func TestPeriod_DaysAcrossDST(t *testing.T) {
	p := Period{Start: testutil.Day(2025, 3, 28), End: testutil.Day(2025, 4, 2)}
	days := p.Days()
	assert.Len(t, days, 6)
	for _, d := range days {
		assert.Equal(t, 0, d.Hour())
	}
}
