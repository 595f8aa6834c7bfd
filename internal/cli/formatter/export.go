package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/timetrack/internal/stats"
	"github.com/jedib0t/go-pretty/v6/table"
)

// Sheet is a report flattened into rows for the export formats. Durations
// are decimal hours so that spreadsheets can sum them.
type Sheet struct {
	// Name is short and free of the characters spreadsheet tabs reject.
	Name   string
	Title  string
	Header table.Row
	Rows   []table.Row
	Footer table.Row
}

func PeriodSheet(r *stats.PeriodReport) Sheet {
	s := Sheet{
		Name:   PeriodTitle(r),
		Title:  "Statistics for " + PeriodTitle(r),
		Header: table.Row{"Date", "Worked (h)", "Expected (h)", "Diff (h)", "Arrived", "Left", "Break (h)", "Note"},
	}
	for _, row := range r.Rows {
		date := row.Date.Format(time.DateOnly)
		if !row.Worked() {
			if !row.Scheduled {
				continue
			}
			s.Rows = append(s.Rows, table.Row{date, "", "", "", "", "", "", "no data"})
			continue
		}
		rec := row.Record
		note := ""
		if rec.StillPresent {
			note = "still at work"
		} else if rec.OnBreak {
			note = "on break"
		}
		s.Rows = append(s.Rows, table.Row{
			date,
			Hours(rec.Worked),
			Hours(row.Expected),
			Hours(row.Diff),
			rec.ArrivedAt.Format(ClockLayout),
			rec.LeftAt.Format(ClockLayout),
			Hours(rec.Break),
			note,
		})
	}
	s.Footer = table.Row{"Total", Hours(r.Totals.Worked), Hours(r.Totals.Expected), Hours(r.Totals.Diff), "", "", "", ""}
	return s
}

func SummarySheet(r *stats.SummaryReport) Sheet {
	return Sheet{
		Name:   "Summary",
		Title:  fmt.Sprintf("Statistics from %s until %s", r.Period.Start.Format(time.DateOnly), r.Period.End.Format(time.DateOnly)),
		Header: table.Row{"From", "Until", "Days worked", "Expected (h)", "Total (h)", "Diff (h)"},
		Rows: []table.Row{{
			r.Period.Start.Format(time.DateOnly),
			r.Period.End.Format(time.DateOnly),
			r.Totals.DaysWorked,
			Hours(r.Totals.Expected),
			Hours(r.Totals.Worked),
			Hours(r.Totals.Diff),
		}},
	}
}

func DaySheet(r *stats.DayReport) Sheet {
	s := Sheet{
		Name:   r.Date.Format(time.DateOnly),
		Title:  "Entries for " + r.Date.Format(DateLayout),
		Header: table.Row{"Activity", "Time", "Break length"},
	}
	for _, e := range r.Entries {
		length := ""
		if e.BreakLength != nil {
			length = FormatSeconds(*e.BreakLength)
		}
		s.Rows = append(s.Rows, table.Row{e.Event.Type.String(), e.Event.At.Format(time.DateTime), length})
	}
	s.Footer = table.Row{"Worked (h)", Hours(r.Record.Worked), ""}
	return s
}

func (s Sheet) writer() table.Writer {
	t := table.NewWriter()
	t.AppendHeader(s.Header)
	t.AppendRows(s.Rows)
	if len(s.Footer) > 0 {
		t.AppendFooter(s.Footer)
	}
	return t
}

// RenderCSV renders the sheet as comma separated values.
func RenderCSV(s Sheet) string {
	return s.writer().RenderCSV() + "\n"
}

// RenderMarkdown renders the sheet as a titled markdown table.
func RenderMarkdown(s Sheet) string {
	var b strings.Builder
	b.WriteString("## " + s.Title + "\n\n")
	b.WriteString(s.writer().RenderMarkdown())
	b.WriteString("\n")
	return b.String()
}

// RenderBoxed renders the sheet as a rounded box table for terminals
// without colour.
func RenderBoxed(s Sheet) string {
	t := s.writer()
	t.SetTitle(s.Title)
	t.SetStyle(table.StyleRounded)
	return t.Render() + "\n"
}
