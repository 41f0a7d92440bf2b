package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/skillpilot/internal/domain"
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

// PaceIndicator returns a colored pace label such as "● BEHIND".
func PaceIndicator(p domain.Pace) string {
	switch p {
	case domain.PaceAhead:
		return StyleGreen.Render("● AHEAD")
	case domain.PaceOnTrack:
		return StyleBlue.Render("● ON TRACK")
	case domain.PaceBehind:
		return StyleRed.Render("● BEHIND")
	default:
		return StyleDim.Render("● UNKNOWN")
	}
}

// GoalStatusPill returns a colored status indicator for a goal.
func GoalStatusPill(s domain.GoalStatus) string {
	switch s {
	case domain.GoalActive:
		return StyleGreen.Render("● Active")
	case domain.GoalArchived:
		return StyleDim.Render("✖ Archived")
	default:
		return StyleDim.Render(string(s))
	}
}

// TaskCheck renders the completion box shown in front of a roadmap day.
func TaskCheck(s domain.TaskStatus) string {
	if s == domain.TaskCompleted {
		return StyleGreen.Render("✔")
	}
	return StyleDim.Render("○")
}

// PriorityBadge colors catch-up priorities.
func PriorityBadge(p domain.Priority) string {
	switch p {
	case domain.PriorityHigh:
		return StyleRed.Render("HIGH")
	case domain.PriorityMedium:
		return StyleYellow.Render("MEDIUM")
	default:
		return StyleDim.Render(strings.ToUpper(string(p)))
	}
}

// LevelBadge returns a capitalized, purple-styled level label.
func LevelBadge(l domain.Level) string {
	if l == "" {
		return StyleDim.Render("--")
	}
	s := string(l)
	return StylePurple.Render(strings.ToUpper(s[:1]) + s[1:])
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
