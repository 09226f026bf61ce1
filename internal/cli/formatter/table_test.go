package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTable_PadsColumns(t *testing.T) {
	out := stripANSI(RenderTable([]string{"A", "BB"}, [][]string{{"xxx", "y"}}))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "A    BB", lines[0])
	assert.Equal(t, "───  ──", lines[1])
	assert.Equal(t, "xxx  y", lines[2])
}

func TestRenderTableAligned_RightColumn(t *testing.T) {
	out := stripANSI(RenderTableAligned([]string{"FOOD", "KCAL"}, [][]string{{"米", "5"}, {"卵", "150"}}, []int{1}))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasSuffix(lines[2], "   5"))
	assert.True(t, strings.HasSuffix(lines[3], " 150"))
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, [][]string{{"x"}}))
}

func TestRenderTree(t *testing.T) {
	out := stripANSI(RenderTree([]TreeItem{
		{Title: "食事1", Index: 0, Done: true, Detail: "450kcal"},
		{Title: "白米 150g", Index: -1, Level: 1},
		{Title: "卵 2個", Index: -1, Level: 1, IsLast: true},
		{Title: "よく噛む", Index: 1, Muted: true},
	}))
	assert.Contains(t, out, "[0] ✔ 食事1")
	assert.Contains(t, out, "[ 450kcal ]")
	assert.Contains(t, out, "├─ 白米 150g")
	assert.Contains(t, out, "└─ 卵 2個")
	assert.Contains(t, out, "[1] よく噛む")
}
