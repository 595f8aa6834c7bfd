package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/timetrack/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// ActivityStyle returns the style used for an activity label.
func ActivityStyle(a domain.ActivityType) lipgloss.Style {
	switch a {
	case domain.ActivityArrive:
		return StyleGreen
	case domain.ActivityBreak:
		return StyleYellow
	case domain.ActivityResume:
		return StyleBlue
	case domain.ActivityLeave:
		return StylePurple
	default:
		return StyleDim
	}
}

// ActivityLabel renders the activity name padded for column output.
func ActivityLabel(a domain.ActivityType) string {
	return ActivityStyle(a).Render(fmt.Sprintf("%-8s", a.String()))
}

// StateIndicator returns a colored state indicator such as "● WORKING".
func StateIndicator(s domain.WorkState) string {
	switch s {
	case domain.StateWorking:
		return StyleGreen.Render("● WORKING")
	case domain.StateOnBreak:
		return StyleYellow.Render("◐ ON BREAK")
	default:
		return StyleDim.Render("○ AWAY")
	}
}

// DiffStyled colors a signed difference: green when at or above target,
// red below.
func DiffStyled(d time.Duration) string {
	text := FormatHoursSigned(d)
	if d < 0 {
		return StyleRed.Render(text)
	}
	return StyleGreen.Render(text)
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
