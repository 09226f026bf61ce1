package catalog

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/width"
)

var searchNoise = regexp.MustCompile(`[（()）\[\]【】]|\s+`)

// Normalize prepares a food name for containment matching. Full-width
// letters and digits are folded to ASCII, brackets and whitespace are
// dropped, the サイズ and 生 qualifiers are removed and case is folded.
func Normalize(s string) string {
	s = width.Fold.String(s)
	s = searchNoise.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "サイズ", "")
	s = strings.ReplaceAll(s, "生", "")
	return cases.Fold().String(s)
}
