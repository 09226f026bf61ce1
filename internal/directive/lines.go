package directive

import "strings"

const continuationMarker = "・"

// MergeLines splits directive text into item lines. Blank lines are dropped
// and a leading "-" bullet is removed. Lines starting with "・" continue the
// previous line and are appended to it with a newline.
func MergeLines(text string) []string {
	var merged []string
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "-") {
			line = strings.TrimSpace(line[1:])
			if line == "" {
				continue
			}
		}
		if strings.HasPrefix(line, continuationMarker) && len(merged) > 0 {
			merged[len(merged)-1] += "\n" + line
			continue
		}
		merged = append(merged, line)
	}
	return merged
}

// splitHeader separates the first physical line from its continuations.
func splitHeader(line string) (header string, continuations []string) {
	parts := strings.Split(line, "\n")
	return parts[0], parts[1:]
}
