package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/dayline/internal/db"
	"github.com/alexanderramin/dayline/internal/domain"
	"github.com/alexanderramin/dayline/internal/repository"
	"github.com/alexanderramin/dayline/internal/timeline"
)

// DayView is everything the today screen shows for one date.
type DayView struct {
	Date         string
	RestDay      bool
	HasDirective bool
	Entries      []domain.TimelineEntry
	Items        []domain.ActionItem
	Completed    domain.CompletedSet
	Unresolved   []int
	Totals       DayTotals
}

// DayTotals sums the day's logged records.
type DayTotals struct {
	Calories       float64
	Protein        float64
	Fat            float64
	Carbs          float64
	GlycemicLoad   float64
	CaloriesBurned int
	Meals          int
	Workouts       int
}

type timelineService struct {
	loader   *dayLoader
	meals    repository.MealRepo
	workouts repository.WorkoutRepo
	observer UseCaseObserver
}

func NewTimelineService(
	profiles repository.ProfileRepo,
	directives repository.DirectiveRepo,
	meals repository.MealRepo,
	workouts repository.WorkoutRepo,
	slotDefs []domain.SlotDefinition,
	observers ...UseCaseObserver,
) TimelineService {
	return &timelineService{
		loader:   &dayLoader{profiles: profiles, directives: directives, slotDefs: slotDefs},
		meals:    meals,
		workouts: workouts,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *timelineService) Day(ctx context.Context, date string, now int) (view *DayView, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"date": date}
	defer observe(ctx, s.observer, "build-timeline", startedAt, fields, &err)

	plan, err := s.loader.load(ctx, date)
	if err != nil {
		return nil, err
	}

	meals, err := s.meals.ListByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	workouts, err := s.workouts.ListByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	in := timeline.Input{
		HasDirective: plan.Directive != nil,
		Slots:        plan.Slots,
		Items:        plan.Items,
		Meals:        derefMeals(meals),
		Workouts:     derefWorkouts(workouts),
		Now:          now,
		Training:     plan.Anchors.Training,
		Sleep:        &plan.Anchors.Sleep,
	}
	if plan.Directive != nil {
		in.Completed = plan.Directive.Completed
	}

	view = &DayView{
		Date:         date,
		RestDay:      plan.RestDay,
		HasDirective: in.HasDirective,
		Entries:      timeline.Build(in),
		Items:        plan.Items,
		Completed:    in.Completed,
		Unresolved:   plan.Unresolved,
		Totals:       sumDay(meals, workouts),
	}
	fields["entries"] = len(view.Entries)
	fields["unresolved"] = len(view.Unresolved)
	return view, nil
}

func sumDay(meals []*domain.MealRecord, workouts []*domain.WorkoutRecord) DayTotals {
	var t DayTotals
	for _, m := range meals {
		mt := m.Totals()
		t.Calories += mt.Calories
		t.Protein += mt.Protein
		t.Fat += mt.Fat
		t.Carbs += mt.Carbs
		t.GlycemicLoad += mt.GlycemicLoad
		t.Meals++
	}
	for _, w := range workouts {
		t.CaloriesBurned += w.CaloriesBurned
		t.Workouts++
	}
	return t
}

func derefMeals(in []*domain.MealRecord) []domain.MealRecord {
	out := make([]domain.MealRecord, 0, len(in))
	for _, m := range in {
		out = append(out, *m)
	}
	return out
}

func derefWorkouts(in []*domain.WorkoutRecord) []domain.WorkoutRecord {
	out := make([]domain.WorkoutRecord, 0, len(in))
	for _, w := range in {
		out = append(out, *w)
	}
	return out
}

// withTx runs fn inside uow and tags any failure as a persistence error,
// leaving domain sentinels untouched.
func withTx(ctx context.Context, uow db.UnitOfWork, fn func(ctx context.Context, tx db.DBTX) error) error {
	err := uow.WithinTx(ctx, fn)
	if err == nil || isDomainError(err) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrPersistence, err)
}

func isDomainError(err error) bool {
	for _, target := range []error{ErrPersistence, ErrNotExecutable, ErrItemNotFound, ErrNoDirective, repository.ErrNotFound} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
