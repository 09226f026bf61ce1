package directive

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/alexanderramin/dayline/internal/domain"
	"github.com/alexanderramin/dayline/internal/scheduler"
)

// Matcher recognizes one kind of directive line. Match receives the merged
// line (header plus any "・" continuations) and reports whether it claimed it.
type Matcher interface {
	Match(line string) (domain.ActionItem, bool)
}

// MatcherFunc adapts a plain function to Matcher.
type MatcherFunc func(line string) (domain.ActionItem, bool)

func (f MatcherFunc) Match(line string) (domain.ActionItem, bool) {
	return f(line)
}

// Parser turns directive text into action items. Matchers are tried in
// order; a line no matcher claims becomes Advice.
type Parser struct {
	matchers []Matcher
}

// NewParser builds a parser over matchers. With no arguments it uses
// DefaultMatchers.
func NewParser(matchers ...Matcher) *Parser {
	if len(matchers) == 0 {
		matchers = DefaultMatchers()
	}
	return &Parser{matchers: matchers}
}

// DefaultMatchers returns the meal, exercise and condition matchers.
func DefaultMatchers() []Matcher {
	return []Matcher{
		MatcherFunc(matchMeal),
		MatcherFunc(matchExercise),
		MatcherFunc(matchCondition),
	}
}

// Parse never fails. Each merged line yields exactly one item whose Index is
// its position among merged lines.
func (p *Parser) Parse(text string) []domain.ActionItem {
	lines := MergeLines(text)
	items := make([]domain.ActionItem, 0, len(lines))
	for i, line := range lines {
		item, ok := p.match(line)
		if !ok {
			item = advice(line)
		}
		item.Index = i
		item.Source = line
		items = append(items, item)
	}
	return items
}

func (p *Parser) match(line string) (domain.ActionItem, bool) {
	for _, m := range p.matchers {
		if item, ok := m.Match(line); ok {
			return item, true
		}
	}
	return domain.ActionItem{}, false
}

// Parse runs the default parser over text.
func Parse(text string) []domain.ActionItem {
	return NewParser().Parse(text)
}

func advice(line string) domain.ActionItem {
	return domain.ActionItem{
		Kind:    domain.ItemAdvice,
		Name:    line,
		Content: line,
	}
}

var (
	mealHeader      = regexp.MustCompile(`^【食事(\d+)】\s*(\d{1,2}:\d{2})?\s*(?:\[([^\]]+)\])?\s*(.*)$`)
	exerciseHeader  = regexp.MustCompile(`^【運動】\s*(.*)$`)
	conditionHeader = regexp.MustCompile(`^【(睡眠|コンディション)】\s*(.*)$`)

	leadingClock  = regexp.MustCompile(`^\d{1,2}:\d{2}\s*`)
	bracketClock  = regexp.MustCompile(`\[\d{1,2}:\d{2}\]\s*`)
	amountPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(g|個|杯|回|セット|時間|分)`)
)

func matchMeal(line string) (domain.ActionItem, bool) {
	header, rest := splitHeader(line)
	m := mealHeader.FindStringSubmatch(header)
	if m == nil {
		return domain.ActionItem{}, false
	}
	slot, err := strconv.Atoi(m[1])
	if err != nil {
		return domain.ActionItem{}, false
	}

	item := domain.ActionItem{
		Kind:       domain.ItemMeal,
		Label:      "食事" + m[1],
		Tag:        m[3],
		SlotNumber: slot,
		Content:    joinContent(cleanMealContent(m[4]), rest),
	}
	if m[2] != "" {
		if t, err := scheduler.ParseClock(m[2]); err == nil {
			item.Time = &t
		}
	}
	item.Foods = ExtractFoods(line)
	item.Name = mealName(item)
	item.Amount, item.Unit = firstAmount(item.Content)
	return item, true
}

func cleanMealContent(s string) string {
	s = leadingClock.ReplaceAllString(s, "")
	s = bracketClock.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

func mealName(item domain.ActionItem) string {
	if len(item.Foods) > 0 {
		return item.Foods[0].Name
	}
	if item.Content != "" {
		header, _ := splitHeader(item.Content)
		return header
	}
	return item.Label
}

func matchExercise(line string) (domain.ActionItem, bool) {
	header, rest := splitHeader(line)
	m := exerciseHeader.FindStringSubmatch(header)
	if m == nil {
		return domain.ActionItem{}, false
	}
	content := strings.TrimSpace(m[1])
	item := domain.ActionItem{
		Kind:    domain.ItemExercise,
		Label:   "運動",
		Name:    exerciseName(content),
		Content: joinContent(content, rest),
	}
	item.Amount, item.Unit = firstAmount(content)
	item.PredictedKcal, item.PredictedMinute = workoutHeader(content)
	item.Exercises = ParseExercises(rest)
	return item, true
}

func exerciseName(content string) string {
	fields := strings.Fields(content)
	if len(fields) == 0 {
		return "運動"
	}
	return fields[0]
}

func matchCondition(line string) (domain.ActionItem, bool) {
	header, rest := splitHeader(line)
	m := conditionHeader.FindStringSubmatch(header)
	if m == nil {
		return domain.ActionItem{}, false
	}
	content := strings.TrimSpace(m[2])
	name := content
	if name == "" {
		name = m[1]
	}
	item := domain.ActionItem{
		Kind:    domain.ItemCondition,
		Label:   m[1],
		Name:    name,
		Content: joinContent(content, rest),
	}
	item.Amount, item.Unit = firstAmount(content)
	return item, true
}

func firstAmount(s string) (*float64, string) {
	m := amountPattern.FindStringSubmatch(s)
	if m == nil {
		return nil, ""
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil, ""
	}
	return &v, m[2]
}

func joinContent(head string, rest []string) string {
	parts := make([]string, 0, len(rest)+1)
	if head != "" {
		parts = append(parts, head)
	}
	parts = append(parts, rest...)
	return strings.Join(parts, "\n")
}
