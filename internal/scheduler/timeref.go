package scheduler

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/alexanderramin/dayline/internal/domain"
)

var (
	absoluteRefPattern = regexp.MustCompile(`^\d{1,2}:\d{2}$`)
	relativeRefPattern = regexp.MustCompile(`^(wake|sleep|training|meal(\d+))\s*(?:([+-])\s*(\d+))?$`)
)

// ParseTimeRef parses the textual slot time forms: "HH:MM" for an absolute
// time, or "wake+30", "sleep-30", "training-120", "meal1+240" for offsets.
// A missing offset means zero.
func ParseTimeRef(s string) (domain.TimeRef, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if absoluteRefPattern.MatchString(s) {
		m, err := ParseClock(s)
		if err != nil {
			return domain.TimeRef{}, err
		}
		return domain.AbsoluteAt(m), nil
	}

	match := relativeRefPattern.FindStringSubmatch(s)
	if match == nil {
		return domain.TimeRef{}, fmt.Errorf("invalid time reference %q", s)
	}

	var anchor domain.Anchor
	switch {
	case match[1] == "wake":
		anchor = domain.WakeAnchor
	case match[1] == "sleep":
		anchor = domain.SleepAnchor
	case match[1] == "training":
		anchor = domain.TrainingAnchor
	default:
		n, err := strconv.Atoi(match[2])
		if err != nil {
			return domain.TimeRef{}, fmt.Errorf("invalid slot number in %q: %w", s, err)
		}
		anchor = domain.SlotAnchor(n)
	}

	offset := 0
	if match[4] != "" {
		v, err := strconv.Atoi(match[4])
		if err != nil {
			return domain.TimeRef{}, fmt.Errorf("invalid offset in %q: %w", s, err)
		}
		offset = v
		if match[3] == "-" {
			offset = -v
		}
	}
	return domain.RelativeTo(anchor, offset), nil
}

// FormatTimeRef is the inverse of ParseTimeRef.
func FormatTimeRef(r domain.TimeRef) string {
	if r.Kind == domain.RefAbsolute {
		return FormatClock(r.Minutes)
	}
	var base string
	switch r.Anchor.Kind {
	case domain.AnchorSlot:
		base = fmt.Sprintf("meal%d", r.Anchor.Slot)
	default:
		base = string(r.Anchor.Kind)
	}
	if r.Offset < 0 {
		return fmt.Sprintf("%s-%d", base, -r.Offset)
	}
	return fmt.Sprintf("%s+%d", base, r.Offset)
}
