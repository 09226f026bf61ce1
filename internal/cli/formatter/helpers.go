package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/dayline/internal/scheduler"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// Clock renders a minute of day as HH:MM. Minutes past midnight carry a
// "+1" day marker.
func Clock(minutes int) string {
	if minutes >= 24*60 {
		return scheduler.FormatClock(minutes%(24*60)) + Dim("+1")
	}
	return scheduler.FormatClock(minutes)
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// FormatMinutes converts raw minutes into human-friendly format.
func FormatMinutes(min int) string {
	if min <= 0 {
		return "0m"
	}
	h := min / 60
	m := min % 60
	if h > 0 && m > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if h > 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dm", m)
}

// FormatKcal rounds to whole kilocalories.
func FormatKcal(kcal float64) string {
	return fmt.Sprintf("%.0fkcal", kcal)
}

// FormatGrams renders a gram amount with one decimal, dropping ".0".
func FormatGrams(g float64) string {
	s := fmt.Sprintf("%.1f", g)
	return strings.TrimSuffix(s, ".0") + "g"
}

// FormatAmount renders an amount with its unit, e.g. "150g" or "2個".
func FormatAmount(amount float64, unit string) string {
	s := strings.TrimSuffix(fmt.Sprintf("%.1f", amount), ".0")
	return s + unit
}

// Truncate shortens s to max visible runes, marking the cut with "…".
func Truncate(s string, max int) string {
	r := []rune(s)
	if max <= 0 || len(r) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return string(r[:max-1]) + "…"
}
