package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TreeItem is one node of a tree display. Index < 0 hides the index column.
type TreeItem struct {
	Title  string
	Index  int
	Level  int
	IsLast bool
	Done   bool
	Muted  bool
	Detail string
}

const (
	treeBranch = "├─ "
	treeCorner = "└─ "
	treePipe   = "│  "
)

// RenderTree renders items as an indented tree using box-drawing connectors.
// Done items get a green ✔ prefix, muted items are dimmed, and detail badges
// are right-aligned.
func RenderTree(items []TreeItem) string {
	if len(items) == 0 {
		return ""
	}

	type lineInfo struct {
		content string
		badge   string
	}

	lines := make([]lineInfo, len(items))
	maxContentWidth := 0

	// Pass 1: build each line's content and track max visible width.
	for idx, item := range items {
		var prefix string
		if item.Level > 0 {
			prefix = strings.Repeat(treePipe, item.Level-1)
			if item.IsLast {
				prefix += treeCorner
			} else {
				prefix += treeBranch
			}
		}

		title := item.Title
		statusPrefix := ""
		switch {
		case item.Done:
			statusPrefix = StyleGreen.Render("✔ ")
			title = Dim(title)
		case item.Muted:
			title = Dim(title)
		}
		if item.Index >= 0 {
			prefix += StyleDim.Render(fmt.Sprintf("[%d] ", item.Index))
		}

		content := prefix + statusPrefix + title
		lines[idx].content = content
		if item.Detail != "" {
			lines[idx].badge = StyleBlue.Render(fmt.Sprintf("[ %s ]", item.Detail))
		}
		if w := lipgloss.Width(content); w > maxContentWidth {
			maxContentWidth = w
		}
	}

	// Pass 2: render with right-aligned badges.
	var b strings.Builder
	for _, li := range lines {
		if li.badge == "" {
			b.WriteString(li.content + "\n")
			continue
		}
		pad := maxContentWidth - lipgloss.Width(li.content)
		if pad < 0 {
			pad = 0
		}
		b.WriteString(li.content + strings.Repeat(" ", pad) + "  " + li.badge + "\n")
	}
	return b.String()
}
