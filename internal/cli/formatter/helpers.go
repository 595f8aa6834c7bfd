package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Layouts of dates and clock times in reports.
const (
	DateLayout  = "02.01.2006"
	ClockLayout = "15:04"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// FormatDuration renders d as "7h 05m". Negative durations get a leading
// minus sign.
func FormatDuration(d time.Duration) string {
	sign := ""
	if d < 0 {
		sign = "-"
		d = -d
	}
	d = d.Truncate(time.Minute)
	h := int(d / time.Hour)
	m := int((d % time.Hour) / time.Minute)
	return fmt.Sprintf("%s%dh %02dm", sign, h, m)
}

// FormatClock renders a break length as "HH:MM".
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	d = d.Truncate(time.Minute)
	return fmt.Sprintf("%02d:%02d", int(d/time.Hour), int((d%time.Hour)/time.Minute))
}

// Hours converts d to decimal hours rounded to two places.
func Hours(d time.Duration) float64 {
	return float64(d.Round(36*time.Second)/(36*time.Second)) / 100
}

// FormatHoursSigned renders d as signed decimal hours, e.g. "+0.50".
func FormatHoursSigned(d time.Duration) string {
	return fmt.Sprintf("%+.2f", Hours(d))
}

// FormatSeconds renders d as "H:MM:SS", the precision of break lengths in
// the day view.
func FormatSeconds(d time.Duration) string {
	d = d.Truncate(time.Second)
	h := int(d / time.Hour)
	m := int((d % time.Hour) / time.Minute)
	s := int((d % time.Minute) / time.Second)
	return fmt.Sprintf("%d:%02d:%02d", h, m, s)
}
