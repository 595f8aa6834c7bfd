package cli

import (
	"bytes"
	"context"
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/timetrack/internal/domain"
	"github.com/alexanderramin/timetrack/internal/repository"
	"github.com/alexanderramin/timetrack/internal/service"
	"github.com/alexanderramin/timetrack/internal/stats"
	"github.com/alexanderramin/timetrack/internal/testutil"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var monday = testutil.Day(2025, 6, 16)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

type testEnv struct {
	app   *App
	store repository.EventStore
	clock *testutil.FixedClock
}

// newTestEnv wires a full App backed by an in-memory DB, with the clock at
// Monday 08:00.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store := repository.NewSQLiteEventStore(testutil.NewTestDB(t))
	clock := testutil.NewFixedClock(testutil.At(monday, "08:00"))

	return &testEnv{
		app: &App{
			Tracking: service.NewTrackingService(store, clock),
			Reports:  service.NewReportService(store, clock, stats.DefaultTargets),
			Rand:     rand.New(rand.NewSource(1)),
		},
		store: store,
		clock: clock,
	}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(PrepareArgs(root, args))
	err := root.Execute()
	return buf.String(), err
}

func (e *testEnv) events(t *testing.T) []domain.Event {
	t.Helper()
	events, err := e.store.Between(context.Background(), time.Time{}, time.Date(3000, 1, 1, 0, 0, 0, 0, time.Local))
	require.NoError(t, err)
	return events
}

// workStandardDay records 08:00-16:30 with a 12:00-12:30 break.
func (e *testEnv) workStandardDay(t *testing.T, day time.Time) {
	t.Helper()
	steps := []struct {
		cmd   string
		clock string
	}{
		{"morning", "08:00"},
		{"break", "12:00"},
		{"resume", "12:30"},
		{"closing", "16:30"},
	}
	for _, s := range steps {
		e.clock.Set(testutil.At(day, s.clock))
		_, err := executeCmd(t, e.app, s.cmd)
		require.NoError(t, err, s.cmd)
	}
}

// --- Root command ---

func TestRootCmd_NoArgs_ShowsHelp(t *testing.T) {
	env := newTestEnv(t)

	output, err := executeCmd(t, env.app)
	require.NoError(t, err)
	assert.Contains(t, output, "timetrack")
	assert.Contains(t, output, "morning")
	assert.Contains(t, output, "summary")
}

// --- Tracking commands ---

func TestMorningCmd_RecordsArrival(t *testing.T) {
	env := newTestEnv(t)

	output, err := executeCmd(t, env.app, "morning")
	require.NoError(t, err)
	assert.Contains(t, output, "arrive at 16.06.2025 08:00")

	events := env.events(t)
	require.Len(t, events, 1)
	assert.Equal(t, domain.ActivityArrive, events[0].Type)
	assert.True(t, events[0].At.Equal(testutil.At(monday, "08:00")))
}

func TestTrackCmd_Offsets(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"positional", []string{"morning", "15"}, "08:15"},
		{"flag", []string{"morning", "--offset", "30"}, "08:30"},
		{"short flag", []string{"morning", "-o", "5"}, "08:05"},
		{"negative flag", []string{"morning", "--offset=-10"}, "07:50"},
		{"negative after separator", []string{"morning", "--", "-10"}, "07:50"},
		{"negative positional", []string{"morning", "-10"}, "07:50"},
		{"negative flag value", []string{"morning", "--offset", "-10"}, "07:50"},
		{"negative short flag value", []string{"morning", "-o", "-10"}, "07:50"},
		{"negative with yes", []string{"morning", "-10", "--yes"}, "07:50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)

			output, err := executeCmd(t, env.app, tt.args...)
			require.NoError(t, err)
			assert.Contains(t, output, "16.06.2025 "+tt.want)

			events := env.events(t)
			require.Len(t, events, 1)
			assert.True(t, events[0].At.Equal(testutil.At(monday, tt.want)))
		})
	}
}

func TestTrackCmd_InvalidOffset(t *testing.T) {
	env := newTestEnv(t)

	_, err := executeCmd(t, env.app, "morning", "soon")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid offset")
	assert.Empty(t, env.events(t))
}

func TestTrackCmd_OffsetTwice(t *testing.T) {
	env := newTestEnv(t)

	_, err := executeCmd(t, env.app, "morning", "5", "--offset", "10")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "both")
}

func TestTrackCmd_TooManyArgs(t *testing.T) {
	env := newTestEnv(t)

	_, err := executeCmd(t, env.app, "morning", "5", "10")
	assert.Error(t, err)
}

func TestBreakCmd_WithoutArrival(t *testing.T) {
	env := newTestEnv(t)

	_, err := executeCmd(t, env.app, "break")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not here in the first place")
	assert.Contains(t, err.Error(), "still at home")

	var te *domain.TransitionError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, domain.ActivityNone, te.Last)
	assert.Empty(t, env.events(t))
}

func TestMorningCmd_Twice(t *testing.T) {
	env := newTestEnv(t)

	_, err := executeCmd(t, env.app, "morning")
	require.NoError(t, err)

	env.clock.Advance(time.Minute)
	_, err = executeCmd(t, env.app, "morning")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already (or still?) here")
	assert.Len(t, env.events(t), 1)
}

func TestTrackCmd_OutOfOrder(t *testing.T) {
	env := newTestEnv(t)

	_, err := executeCmd(t, env.app, "morning")
	require.NoError(t, err)

	_, err = executeCmd(t, env.app, "break", "--offset=-30")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrOutOfOrder))
	assert.Len(t, env.events(t), 1)
}

func TestResumeCmd_ContinueAlias(t *testing.T) {
	env := newTestEnv(t)

	_, err := executeCmd(t, env.app, "morning")
	require.NoError(t, err)
	env.clock.Advance(4 * time.Hour)
	_, err = executeCmd(t, env.app, "break")
	require.NoError(t, err)
	env.clock.Advance(30 * time.Minute)

	output, err := executeCmd(t, env.app, "continue")
	require.NoError(t, err)
	assert.Contains(t, output, "resume at 16.06.2025 12:30")
}

func TestTrackCmd_PrintsMessage(t *testing.T) {
	env := newTestEnv(t)
	env.app.Messages = true

	output, err := executeCmd(t, env.app, "morning")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(output), "\n")
	require.Len(t, lines, 2)
	assert.NotEmpty(t, strings.TrimSpace(lines[1]))
}

func TestTrackCmd_ConfirmOffset(t *testing.T) {
	t.Run("declined", func(t *testing.T) {
		env := newTestEnv(t)
		var asked string
		env.app.IsInteractive = func() bool { return true }
		env.app.Confirm = func(title string) (bool, error) {
			asked = title
			return false, nil
		}

		output, err := executeCmd(t, env.app, "morning", "--offset=-15")
		require.NoError(t, err)
		assert.Equal(t, "Record arrive 15 minutes ago?", asked)
		assert.Contains(t, output, "Nothing recorded.")
		assert.Empty(t, env.events(t))
	})

	t.Run("accepted", func(t *testing.T) {
		env := newTestEnv(t)
		env.app.IsInteractive = func() bool { return true }
		env.app.Confirm = func(string) (bool, error) { return true, nil }

		_, err := executeCmd(t, env.app, "morning", "20")
		require.NoError(t, err)
		assert.Len(t, env.events(t), 1)
	})

	t.Run("skipped with --yes", func(t *testing.T) {
		env := newTestEnv(t)
		env.app.IsInteractive = func() bool { return true }
		env.app.Confirm = func(string) (bool, error) {
			t.Fatal("confirm must not be called")
			return false, nil
		}

		_, err := executeCmd(t, env.app, "morning", "--yes", "--offset", "20")
		require.NoError(t, err)
		assert.Len(t, env.events(t), 1)
	})

	t.Run("no offset", func(t *testing.T) {
		env := newTestEnv(t)
		env.app.IsInteractive = func() bool { return true }
		env.app.Confirm = func(string) (bool, error) {
			t.Fatal("confirm must not be called")
			return false, nil
		}

		_, err := executeCmd(t, env.app, "morning")
		require.NoError(t, err)
	})
}

func TestDescribeOffset(t *testing.T) {
	assert.Equal(t, "1 minute ago", describeOffset(-1))
	assert.Equal(t, "10 minutes ago", describeOffset(-10))
	assert.Equal(t, "5 minutes from now", describeOffset(5))
}

// --- Report commands ---

func TestDayCmd_NoArrival(t *testing.T) {
	env := newTestEnv(t)

	_, err := executeCmd(t, env.app, "day")
	require.Error(t, err)
	assert.Equal(t, "There is no arrival on 16.06.2025.", err.Error())
	assert.True(t, errors.Is(err, domain.ErrNoArrivalForDate))
}

func TestDayCmd_StandardDay(t *testing.T) {
	env := newTestEnv(t)
	env.workStandardDay(t, monday)
	env.clock.Set(testutil.At(monday, "17:00"))

	output, err := executeCmd(t, env.app, "day")
	require.NoError(t, err)
	assert.Contains(t, output, "ENTRIES FOR 16.06.2025")
	assert.Contains(t, output, "(0:30:00)")
	assert.Contains(t, output, "Worked: 8h 00m")
	assert.Contains(t, output, "Daily target reached.")
}

func TestDayCmd_SplitDay(t *testing.T) {
	env := newTestEnv(t)
	for _, s := range []struct{ cmd, clock string }{
		{"morning", "08:00"},
		{"closing", "12:00"},
		{"morning", "13:00"},
		{"closing", "17:00"},
	} {
		env.clock.Set(testutil.At(monday, s.clock))
		_, err := executeCmd(t, env.app, s.cmd)
		require.NoError(t, err, s.cmd)
	}

	output, err := executeCmd(t, env.app, "day")
	require.NoError(t, err)
	assert.Contains(t, output, "(1:00:00)")
	assert.Contains(t, output, "Worked: 8h 00m")
}

func TestDayCmd_Yesterday(t *testing.T) {
	env := newTestEnv(t)
	env.workStandardDay(t, monday)
	env.clock.Set(testutil.At(monday.AddDate(0, 0, 1), "09:00"))

	for _, args := range [][]string{{"day", "--", "-1"}, {"day", "-1"}} {
		output, err := executeCmd(t, env.app, args...)
		require.NoError(t, err, "%v", args)
		assert.Contains(t, output, "16.06.2025")
		assert.NotContains(t, output, "good time to leave")
	}
}

func TestDayCmd_NegativeOffsetWithOutputFlag(t *testing.T) {
	env := newTestEnv(t)
	env.workStandardDay(t, monday)
	env.clock.Set(testutil.At(monday.AddDate(0, 0, 1), "09:00"))

	output, err := executeCmd(t, env.app, "day", "-1", "--output", "csv")
	require.NoError(t, err)
	assert.Contains(t, output, "2025-06-16 08:00:00")
}

func TestDayCmd_StillWorking(t *testing.T) {
	env := newTestEnv(t)
	_, err := executeCmd(t, env.app, "morning")
	require.NoError(t, err)
	env.clock.Set(testutil.At(monday, "10:00"))

	output, err := executeCmd(t, env.app, "day")
	require.NoError(t, err)
	assert.Contains(t, output, "currently at work")
	assert.Contains(t, output, "A good time to leave would be at 16:00")
}

func TestWeekCmd(t *testing.T) {
	env := newTestEnv(t)
	env.workStandardDay(t, monday)
	env.clock.Set(testutil.At(monday.AddDate(0, 0, 2), "07:00"))

	output, err := executeCmd(t, env.app, "week")
	require.NoError(t, err)
	assert.Contains(t, output, "STATISTICS FOR WEEK 25, 2025")
	assert.Contains(t, output, "16.06.2025")
	assert.Contains(t, output, "no data")
	assert.Contains(t, output, "Remaining:  32h 00m")
	assert.Contains(t, output, "Daily:      8h 00m")
}

func TestWeekCmd_CSV(t *testing.T) {
	env := newTestEnv(t)
	env.workStandardDay(t, monday)

	output, err := executeCmd(t, env.app, "week", "--output", "csv")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(output, "Date,Worked (h)"))
	assert.Contains(t, output, "2025-06-16,")
	assert.Contains(t, output, "08:00,16:30")
}

func TestWeekCmd_Markdown(t *testing.T) {
	env := newTestEnv(t)
	env.workStandardDay(t, monday)

	output, err := executeCmd(t, env.app, "week", "--output", "markdown")
	require.NoError(t, err)
	assert.Contains(t, output, "## Statistics for Week 25, 2025")
}

func TestWeekCmd_Table(t *testing.T) {
	env := newTestEnv(t)
	env.workStandardDay(t, monday)

	output, err := executeCmd(t, env.app, "week", "--output", "table")
	require.NoError(t, err)
	assert.Contains(t, output, "╭")
	assert.Contains(t, output, "2025-06-16")
}

func TestWeekCmd_XLSX(t *testing.T) {
	env := newTestEnv(t)
	env.workStandardDay(t, monday)

	_, err := executeCmd(t, env.app, "week", "--output", "xlsx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires --file")

	path := filepath.Join(t.TempDir(), "week.xlsx")
	output, err := executeCmd(t, env.app, "week", "--output", "xlsx", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, output, "Report written to "+path)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	date, err := f.GetCellValue("Week 25, 2025", "A4")
	require.NoError(t, err)
	assert.Equal(t, "2025-06-16", date)
}

func TestReportCmd_TextToFile(t *testing.T) {
	env := newTestEnv(t)
	env.workStandardDay(t, monday)

	path := filepath.Join(t.TempDir(), "week.txt")
	_, err := executeCmd(t, env.app, "week", "--file", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "16.06.2025")
}

func TestReportCmd_UnknownOutput(t *testing.T) {
	env := newTestEnv(t)

	_, err := executeCmd(t, env.app, "week", "--output", "pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestMonthCmd(t *testing.T) {
	env := newTestEnv(t)
	env.workStandardDay(t, monday)

	output, err := executeCmd(t, env.app, "month")
	require.NoError(t, err)
	assert.Contains(t, output, "STATISTICS FOR JUNE 2025")
	assert.Contains(t, output, "16.06.2025")
	assert.Contains(t, output, "8h 00m")
}

func TestMonthCmd_PreviousMonth(t *testing.T) {
	env := newTestEnv(t)

	output, err := executeCmd(t, env.app, "month", "-1")
	require.NoError(t, err)
	assert.Contains(t, output, "STATISTICS FOR MAY 2025")
}

func TestSummaryCmd(t *testing.T) {
	env := newTestEnv(t)
	env.workStandardDay(t, monday)

	output, err := executeCmd(t, env.app, "summary", "0")
	require.NoError(t, err)
	assert.Contains(t, output, "STATISTICS FROM 2025-06-16 UNTIL 2025-06-16")
	assert.Contains(t, output, "Total:    8h 00m")
}

func TestSummaryCmd_Invalid(t *testing.T) {
	env := newTestEnv(t)

	_, err := executeCmd(t, env.app, "summary", "many")
	require.Error(t, err)

	for _, args := range [][]string{{"summary", "--", "-2"}, {"summary", "-2"}} {
		_, err = executeCmd(t, env.app, args...)
		require.Error(t, err)
		assert.True(t, errors.Is(err, service.ErrNegativeWeeks), "%v", args)
	}
}

func TestStatusCmd(t *testing.T) {
	env := newTestEnv(t)

	output, err := executeCmd(t, env.app, "status")
	require.NoError(t, err)
	assert.Contains(t, output, "AWAY")

	_, err = executeCmd(t, env.app, "morning")
	require.NoError(t, err)
	env.clock.Advance(time.Hour)

	output, err = executeCmd(t, env.app, "status")
	require.NoError(t, err)
	assert.Contains(t, output, "WORKING")
	assert.Contains(t, output, "1h 00m")
}
