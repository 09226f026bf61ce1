package directive

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/alexanderramin/dayline/internal/domain"
)

const (
	defaultSets       = 6
	defaultReps       = 10
	minutesPerSetEach = 5
)

var (
	predictedKcal   = regexp.MustCompile(`消費予測\s*(\d+)\s*kcal`)
	headerMinutes   = regexp.MustCompile(`(\d+)\s*分`)
	setsPattern     = regexp.MustCompile(`(\d+)\s*セット`)
	repsPattern     = regexp.MustCompile(`(\d+)\s*回\s*/\s*セット`)
	durationPattern = regexp.MustCompile(`[×x]\s*(\d+)\s*分`)
)

// ParseExercises reads "・name Nセット N回/セット ×N分" continuation lines.
// Missing sets default to 6, reps to 10 and duration to five minutes a set.
func ParseExercises(lines []string) []domain.ExerciseDetail {
	var out []domain.ExerciseDetail
	for _, line := range lines {
		body := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), continuationMarker))
		fields := strings.Fields(body)
		if len(fields) == 0 {
			continue
		}
		d := domain.ExerciseDetail{
			Name: fields[0],
			Sets: intOr(setsPattern, body, defaultSets),
			Reps: intOr(repsPattern, body, defaultReps),
		}
		d.DurationMin = intOr(durationPattern, body, d.Sets*minutesPerSetEach)
		out = append(out, d)
	}
	return out
}

// workoutHeader returns the predicted calories and minutes written on an
// exercise header, zero when absent.
func workoutHeader(header string) (kcal, minutes int) {
	kcal = intOr(predictedKcal, header, 0)
	minutes = intOr(headerMinutes, predictedKcal.ReplaceAllString(header, ""), 0)
	return kcal, minutes
}

func intOr(re *regexp.Regexp, s string, fallback int) int {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return fallback
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return fallback
	}
	return n
}
