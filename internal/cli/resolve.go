package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/dayline/internal/scheduler"
)

const dateLayout = "2006-01-02"

// resolveDate returns input as a YYYY-MM-DD date, defaulting to today.
// "today", "yesterday" and "tomorrow" are accepted.
func resolveDate(app *App, input string) (string, error) {
	today := app.now()
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "", "today":
		return today.Format(dateLayout), nil
	case "yesterday":
		return today.AddDate(0, 0, -1).Format(dateLayout), nil
	case "tomorrow":
		return today.AddDate(0, 0, 1).Format(dateLayout), nil
	}
	t, err := time.Parse(dateLayout, input)
	if err != nil {
		return "", fmt.Errorf("invalid date %q (want YYYY-MM-DD)", input)
	}
	return t.Format(dateLayout), nil
}

// resolveMinute returns input as a minute of day, defaulting to now.
func resolveMinute(app *App, input string) (int, error) {
	if strings.TrimSpace(input) == "" {
		now := app.now()
		return now.Hour()*60 + now.Minute(), nil
	}
	m, err := scheduler.ParseClock(input)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q (want HH:MM): %w", input, err)
	}
	return m, nil
}

// parseIndex parses an action item index as shown by "items".
func parseIndex(input string) (int, error) {
	n, err := strconv.Atoi(strings.TrimPrefix(input, "#"))
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid item index %q", input)
	}
	return n, nil
}

// recordRef is a meal or workout picked by ID or ID prefix.
type recordRef struct {
	ID      string
	Workout bool
}

// resolveRecordID finds the meal or workout on date whose ID starts with
// prefix. The prefix must match exactly one record.
func resolveRecordID(ctx context.Context, app *App, date, prefix string) (recordRef, error) {
	meals, workouts, err := app.Activity.ListDay(ctx, date)
	if err != nil {
		return recordRef{}, err
	}

	var matches []recordRef
	for _, m := range meals {
		if strings.HasPrefix(m.ID, prefix) {
			matches = append(matches, recordRef{ID: m.ID})
		}
	}
	for _, w := range workouts {
		if strings.HasPrefix(w.ID, prefix) {
			matches = append(matches, recordRef{ID: w.ID, Workout: true})
		}
	}

	switch len(matches) {
	case 0:
		return recordRef{}, fmt.Errorf("no record on %s matches %q", date, prefix)
	case 1:
		return matches[0], nil
	default:
		return recordRef{}, fmt.Errorf("%q matches %d records; use a longer prefix", prefix, len(matches))
	}
}
