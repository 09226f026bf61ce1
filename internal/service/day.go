package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/dayline/internal/directive"
	"github.com/alexanderramin/dayline/internal/domain"
	"github.com/alexanderramin/dayline/internal/logger"
	"github.com/alexanderramin/dayline/internal/repository"
	"github.com/alexanderramin/dayline/internal/scheduler"
	"github.com/alexanderramin/dayline/internal/timeline"
)

// dayPlan is the planned side of a day: anchors, resolved slots and the
// parsed directive, if any.
type dayPlan struct {
	Date       string
	Profile    *domain.ScheduleProfile
	RestDay    bool
	Anchors    scheduler.Anchors
	Slots      []domain.ResolvedSlot
	Unresolved []int
	Directive  *domain.Directive
	Items      []domain.ActionItem
}

func (p *dayPlan) item(index int) (domain.ActionItem, bool) {
	if index < 0 || index >= len(p.Items) {
		return domain.ActionItem{}, false
	}
	return p.Items[index], true
}

// recordMinute is the minute a record created for item is stored at. Slots
// resolved before midnight or past the end of the day wrap into the date.
func (p *dayPlan) recordMinute(item domain.ActionItem) int {
	sleep := p.Anchors.Sleep
	return scheduler.WrapMinute(timeline.PlannedMinute(item, p.Slots, p.Anchors.Training, &sleep))
}

// dayLoader assembles a dayPlan. slotDefs, when set, replace the profile's
// default routine.
type dayLoader struct {
	profiles   repository.ProfileRepo
	directives repository.DirectiveRepo
	slotDefs   []domain.SlotDefinition
}

func (l *dayLoader) load(ctx context.Context, date string) (*dayPlan, error) {
	profile, err := l.profiles.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: loading profile: %w", ErrPersistence, err)
	}
	rest, err := l.profiles.IsRestDay(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	plan, err := buildPlan(date, profile, rest, l.slotDefs)
	if err != nil {
		return nil, err
	}

	d, err := l.directives.Get(ctx, date)
	switch {
	case errors.Is(err, repository.ErrNotFound):
	case err != nil:
		return nil, fmt.Errorf("%w: loading directive: %w", ErrPersistence, err)
	default:
		plan.Directive = d
		plan.Items = directive.Parse(d.Message)
	}
	return plan, nil
}

func buildPlan(date string, profile *domain.ScheduleProfile, rest bool, slotDefs []domain.SlotDefinition) (*dayPlan, error) {
	anchors, err := scheduler.AnchorsFor(profile, rest)
	if err != nil {
		return nil, fmt.Errorf("schedule profile: %w", err)
	}
	trainingSlot := scheduler.EffectiveTrainingSlot(profile, anchors)

	defs := slotDefs
	if len(defs) == 0 {
		defs = scheduler.DefaultRoutine(profile.MealsPerDay, trainingSlot)
	}
	slots, unresolved := scheduler.ResolveDay(defs, anchors, trainingSlot)
	for _, n := range unresolved {
		logger.Warn("slot time unresolvable", "date", date, "slot", n)
	}

	return &dayPlan{
		Date:       date,
		Profile:    profile,
		RestDay:    rest,
		Anchors:    anchors,
		Slots:      slots,
		Unresolved: unresolved,
	}, nil
}
