package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/dayline/internal/domain"
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
	StyleGreen      = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow     = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleYellowBold = lipgloss.NewStyle().Foreground(ColorYellow).Bold(true)
	StyleRed        = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue       = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple     = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim        = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg         = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader     = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold       = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StatusIndicator returns a colored marker for a timeline entry status.
func StatusIndicator(status domain.EntryStatus) string {
	switch status {
	case domain.StatusCompleted:
		return StyleGreen.Render("✔")
	case domain.StatusCurrent:
		return StyleYellowBold.Render("▶")
	default:
		return StyleDim.Render("○")
	}
}

// KindBadge returns a short colored label for a timeline entry kind.
func KindBadge(kind domain.EntryKind) string {
	switch kind {
	case domain.EntryMeal:
		return StyleBlue.Render("食事")
	case domain.EntryWorkout:
		return StyleRed.Render("運動")
	case domain.EntryCondition:
		return StylePurple.Render("睡眠")
	default:
		return StyleDim.Render(string(kind))
	}
}

// ItemKindBadge labels a directive item kind. Advice is dimmed since it
// cannot be completed.
func ItemKindBadge(kind domain.ItemKind) string {
	switch kind {
	case domain.ItemMeal:
		return StyleBlue.Render("meal")
	case domain.ItemExercise:
		return StyleRed.Render("exercise")
	case domain.ItemCondition:
		return StylePurple.Render("condition")
	default:
		return StyleDim.Render(string(kind))
	}
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
