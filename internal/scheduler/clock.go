package scheduler

import (
	"fmt"
	"strconv"
	"strings"
)

// MinutesPerDay is the wrap-around point for display formatting.
const MinutesPerDay = 24 * 60

// ParseClock parses an "HH:MM" string into minutes after midnight.
func ParseClock(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock time %q: want HH:MM", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}
	return h*60 + m, nil
}

// WrapMinute maps any minute offset into [0, MinutesPerDay). -60 becomes
// 1380 and 1470 becomes 30.
func WrapMinute(minutes int) int {
	return ((minutes % MinutesPerDay) + MinutesPerDay) % MinutesPerDay
}

// FormatClock renders minutes as "HH:MM". Values outside a single day wrap,
// so 1470 renders as "00:30".
func FormatClock(minutes int) string {
	m := WrapMinute(minutes)
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
