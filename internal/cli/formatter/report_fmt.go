package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/timetrack/internal/domain"
	"github.com/alexanderramin/timetrack/internal/service"
	"github.com/alexanderramin/timetrack/internal/stats"
)

// FormatRecorded confirms a newly logged event.
func FormatRecorded(e domain.Event) string {
	return fmt.Sprintf("%s %s at %s\n",
		StyleGreen.Render("✔"),
		ActivityStyle(e.Type).Render(e.Type.String()),
		e.At.Format(DateLayout+" "+ClockLayout))
}

// FormatDayReport lists the events of one day and the worked time.
func FormatDayReport(r *stats.DayReport) string {
	var b strings.Builder
	b.WriteString(Header("Entries for " + r.Date.Format(DateLayout)))
	b.WriteString("\n")

	for _, e := range r.Entries {
		line := fmt.Sprintf("  %s %s", ActivityLabel(e.Event.Type), e.Event.At.Format(DateLayout+" "+ClockLayout))
		if e.BreakLength != nil {
			line += Dim(fmt.Sprintf(" (%s)", FormatSeconds(*e.BreakLength)))
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")

	rec := r.Record
	switch {
	case rec.StillPresent:
		b.WriteString(StyleGreen.Render("● You are currently at work.") + "\n")
	case rec.OnBreak:
		b.WriteString(StyleYellow.Render("◐ You are on a break.") + "\n")
	}
	fmt.Fprintf(&b, "Worked: %s   Break: %s\n", Bold(FormatDuration(rec.Worked)), FormatDuration(rec.Break))

	if r.Today {
		if r.Remaining > 0 {
			fmt.Fprintf(&b, "A good time to leave would be at %s\n", Bold(r.LeaveAt.Format(ClockLayout)))
		} else {
			b.WriteString(StyleGreen.Render("Daily target reached.") + "\n")
		}
	}
	return b.String()
}

// PeriodTitle is "Week 25, 2025" or "June 2025".
func PeriodTitle(r *stats.PeriodReport) string {
	if r.Kind == stats.PeriodWeek {
		year, week := r.Period.Start.ISOWeek()
		return fmt.Sprintf("Week %02d, %d", week, year)
	}
	return r.Period.Start.Format("January 2006")
}

// FormatPeriodReport renders the week or month table with totals.
// Days off without an arrival are omitted; workdays without one are
// marked.
func FormatPeriodReport(r *stats.PeriodReport) string {
	var b strings.Builder
	b.WriteString(Header("Statistics for " + PeriodTitle(r)))
	b.WriteString("\n")

	tbl := Table{
		Headers: []string{"DATE", "WORKED", "DIFF", "ARRIVED", "LEFT", "BREAK"},
		Align:   []Align{AlignLeft, AlignRight, AlignRight, AlignLeft, AlignLeft, AlignLeft},
	}
	for _, row := range r.Rows {
		if !row.Worked() {
			if !row.Scheduled {
				continue
			}
			tbl.Rows = append(tbl.Rows, []string{row.Date.Format(DateLayout), Dim("-"), Dim("no data")})
			continue
		}
		rec := row.Record
		left := rec.LeftAt.Format(ClockLayout)
		if rec.StillPresent {
			left = StyleGreen.Render(left + "*")
		}
		tbl.Rows = append(tbl.Rows, []string{
			row.Date.Format(DateLayout),
			FormatDuration(rec.Worked),
			DiffStyled(row.Diff),
			rec.ArrivedAt.Format(ClockLayout),
			left,
			FormatClock(rec.Break),
		})
	}
	tbl.Footer = [][]string{{
		Bold("Total"),
		Bold(FormatDuration(r.Totals.Worked)),
		DiffStyled(r.Totals.Diff),
	}}
	b.WriteString(tbl.Render())
	b.WriteString("\n")

	fmt.Fprintf(&b, "%-11s %s (%d days)\n", "Expected:", FormatDuration(r.Totals.Expected), r.Totals.DaysWorked)
	if r.Remaining != nil {
		fmt.Fprintf(&b, "%-11s %s\n", "Remaining:", Bold(FormatDuration(*r.Remaining)))
	}
	if r.RemainingPerDay != nil {
		fmt.Fprintf(&b, "%-11s %s\n", "Daily:", FormatDuration(*r.RemainingPerDay))
	}
	if r.Totals.StillPresent {
		b.WriteString(Dim("* still at work, counted until now") + "\n")
	}
	return b.String()
}

// FormatSummaryReport renders expected, worked and difference of the
// summary window.
func FormatSummaryReport(r *stats.SummaryReport) string {
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Statistics from %s until %s", r.Period.Start.Format(time.DateOnly), r.Period.End.Format(time.DateOnly))))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%-9s %s\n", "Expected:", FormatDuration(r.Totals.Expected))
	fmt.Fprintf(&b, "%-9s %s\n", "Total:", Bold(FormatDuration(r.Totals.Worked)))
	fmt.Fprintf(&b, "%-9s %s (%s h)\n", "Diff:", FormatDuration(r.Totals.Diff), DiffStyled(r.Totals.Diff))
	fmt.Fprintf(&b, "%s\n", Dim(fmt.Sprintf("%d days worked over %d weeks", r.Totals.DaysWorked, r.Weeks+1)))
	return b.String()
}

// FormatStatus shows the current state and today's progress.
func FormatStatus(st *service.Status) string {
	var lines []string
	lines = append(lines, StateIndicator(st.State))
	if st.Last == nil {
		lines = append(lines, Dim("No entries yet."))
		return RenderBox("Status", strings.Join(lines, "\n")) + "\n"
	}

	lines = append(lines, fmt.Sprintf("Last entry: %s %s",
		ActivityStyle(st.Last.Type).Render(st.Last.Type.String()),
		st.Last.At.Format(DateLayout+" "+ClockLayout)))
	if st.Today != nil {
		lines = append(lines,
			fmt.Sprintf("Arrived:    %s", st.Today.ArrivedAt.Format(ClockLayout)),
			fmt.Sprintf("Worked:     %s", Bold(FormatDuration(st.Today.Worked))),
			fmt.Sprintf("Break:      %s", FormatDuration(st.Today.Break)),
		)
	}
	return RenderBox("Status", strings.Join(lines, "\n")) + "\n"
}
