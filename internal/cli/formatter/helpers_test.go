package formatter

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

// ansiPattern matches ANSI escape sequences.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// stripANSI removes ANSI escape codes so assertions are terminal-independent.
func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestClock(t *testing.T) {
	assert.Equal(t, "07:30", stripANSI(Clock(450)))
	assert.Equal(t, "00:00", stripANSI(Clock(0)))
	assert.Equal(t, "00:30+1", stripANSI(Clock(24*60+30)))
}

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		min  int
		want string
	}{
		{0, "0m"},
		{-5, "0m"},
		{45, "45m"},
		{60, "1h"},
		{95, "1h 35m"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatMinutes(tt.min))
	}
}

func TestFormatAmounts(t *testing.T) {
	assert.Equal(t, "150g", FormatGrams(150))
	assert.Equal(t, "12.5g", FormatGrams(12.46))
	assert.Equal(t, "2個", FormatAmount(2, "個"))
	assert.Equal(t, "1.5杯", FormatAmount(1.5, "杯"))
	assert.Equal(t, "221kcal", FormatKcal(220.6))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "鶏むね肉", Truncate("鶏むね肉", 4))
	assert.Equal(t, "鶏む…", Truncate("鶏むね肉", 3))
	assert.Equal(t, "…", Truncate("abc", 1))
	assert.Equal(t, "abc", Truncate("abc", 0))
}

func TestTruncID(t *testing.T) {
	assert.Equal(t, "12345678", stripANSI(TruncID("1234567890")))
	assert.Equal(t, "abc", stripANSI(TruncID("abc")))
}
