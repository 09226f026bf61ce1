package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/dayline/internal/catalog"
	"github.com/alexanderramin/dayline/internal/completion"
	"github.com/alexanderramin/dayline/internal/db"
	"github.com/alexanderramin/dayline/internal/domain"
	"github.com/alexanderramin/dayline/internal/nutrition"
	"github.com/alexanderramin/dayline/internal/repository"
	"github.com/google/uuid"
)

// CompletionResult reports the state of one item after a transition.
type CompletionResult struct {
	Index     int
	Completed bool
	Changed   bool
	Meal      *domain.MealRecord
	Workout   *domain.WorkoutRecord
}

// BatchFailure is one item CompleteAll could not complete.
type BatchFailure struct {
	Index int
	Err   error
}

// BatchResult summarizes a CompleteAll run.
type BatchResult struct {
	Total     int
	Completed int
	Failures  []BatchFailure
}

func (r *BatchResult) Summary() string {
	return fmt.Sprintf("%d of %d items completed", r.Completed, r.Total)
}

type completionService struct {
	loader     *dayLoader
	directives repository.DirectiveRepo
	uow        db.UnitOfWork
	catalog    *catalog.Catalog
	reward     RewardSignal
	observer   UseCaseObserver
}

func NewCompletionService(
	profiles repository.ProfileRepo,
	directives repository.DirectiveRepo,
	uow db.UnitOfWork,
	cat *catalog.Catalog,
	reward RewardSignal,
	slotDefs []domain.SlotDefinition,
	observers ...UseCaseObserver,
) CompletionService {
	if reward == nil {
		reward = NoopRewardSignal{}
	}
	return &completionService{
		loader:     &dayLoader{profiles: profiles, directives: directives, slotDefs: slotDefs},
		directives: directives,
		uow:        uow,
		catalog:    cat,
		reward:     reward,
		observer:   useCaseObserverOrNoop(observers),
	}
}

// planFor loads the day and checks that index names an item of it.
func (s *completionService) planFor(ctx context.Context, date string, index int) (*dayPlan, domain.ActionItem, error) {
	plan, err := s.loader.load(ctx, date)
	if err != nil {
		return nil, domain.ActionItem{}, err
	}
	if plan.Directive == nil {
		return nil, domain.ActionItem{}, fmt.Errorf("%s: %w", date, ErrNoDirective)
	}
	item, ok := plan.item(index)
	if !ok {
		return nil, domain.ActionItem{}, fmt.Errorf("index %d: %w", index, ErrItemNotFound)
	}
	return plan, item, nil
}

func (s *completionService) Execute(ctx context.Context, date string, index int) (result *CompletionResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"date": date, "index": index}
	defer observe(ctx, s.observer, "execute-item", startedAt, fields, &err)

	plan, item, err := s.planFor(ctx, date, index)
	if err != nil {
		return nil, err
	}
	if !item.Executable() {
		return nil, fmt.Errorf("index %d (%s): %w", index, item.Kind, ErrNotExecutable)
	}
	fields["kind"] = string(item.Kind)

	var step completion.Step
	result = &CompletionResult{Index: index, Completed: true}
	err = withTx(ctx, s.uow, func(ctx context.Context, tx db.DBTX) error {
		txDirectives := repository.NewSQLiteDirectiveRepo(tx)
		txMeals := repository.NewSQLiteMealRepo(tx)
		txWorkouts := repository.NewSQLiteWorkoutRepo(tx)

		d, err := txDirectives.Get(ctx, date)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%s: %w", date, ErrNoDirective)
			}
			return err
		}

		step, err = completion.PlanExecute(item, d.Completed, completion.Context{
			Date:   date,
			Minute: plan.recordMinute(item),
			Foods:  nutrition.NewResolver(s.catalog),
		})
		if err != nil {
			return err
		}
		if step.Noop() {
			return nil
		}

		switch step.Create {
		case domain.RecordMeal:
			existing, err := txMeals.FindByDirectiveIndex(ctx, date, index)
			switch {
			case err == nil:
				result.Meal = existing
			case !errors.Is(err, repository.ErrNotFound):
				return err
			default:
				step.Meal.ID = uuid.New().String()
				if err := txMeals.Create(ctx, step.Meal); err != nil {
					return err
				}
				result.Meal = step.Meal
			}
		case domain.RecordWorkout:
			existing, err := txWorkouts.FindByDirectiveIndex(ctx, date, index)
			switch {
			case err == nil:
				result.Workout = existing
			case !errors.Is(err, repository.ErrNotFound):
				return err
			default:
				step.Workout.ID = uuid.New().String()
				if err := txWorkouts.Create(ctx, step.Workout); err != nil {
					return err
				}
				result.Workout = step.Workout
			}
		}
		return txDirectives.UpdateCompleted(ctx, date, step.Next)
	})
	if err != nil {
		return nil, err
	}

	result.Changed = step.Changed
	fields["changed"] = step.Changed
	if step.Reward {
		s.reward.Grant(ctx, RewardEvent{Date: date, Index: index, Kind: item.Kind, Label: rewardLabel(item)})
	}
	return result, nil
}

func (s *completionService) Undo(ctx context.Context, date string, index int) (result *CompletionResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"date": date, "index": index}
	defer observe(ctx, s.observer, "undo-item", startedAt, fields, &err)

	if _, _, err = s.planFor(ctx, date, index); err != nil {
		return nil, err
	}

	var step completion.Step
	err = withTx(ctx, s.uow, func(ctx context.Context, tx db.DBTX) error {
		txDirectives := repository.NewSQLiteDirectiveRepo(tx)
		txMeals := repository.NewSQLiteMealRepo(tx)
		txWorkouts := repository.NewSQLiteWorkoutRepo(tx)

		d, err := txDirectives.Get(ctx, date)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%s: %w", date, ErrNoDirective)
			}
			return err
		}
		if !d.Completed.Has(index) {
			step = completion.PlanUndo(index, d.Completed, nil, nil)
			return nil
		}

		meal, err := txMeals.FindByDirectiveIndex(ctx, date, index)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return err
		}
		workout, err := txWorkouts.FindByDirectiveIndex(ctx, date, index)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return err
		}

		step = completion.PlanUndo(index, d.Completed, meal, workout)
		if step.DeleteMealID != "" {
			if err := txMeals.Delete(ctx, step.DeleteMealID); err != nil && !errors.Is(err, repository.ErrNotFound) {
				return err
			}
		}
		if step.DeleteWorkoutID != "" {
			if err := txWorkouts.Delete(ctx, step.DeleteWorkoutID); err != nil && !errors.Is(err, repository.ErrNotFound) {
				return err
			}
		}
		return txDirectives.UpdateCompleted(ctx, date, step.Next)
	})
	if err != nil {
		return nil, err
	}

	fields["changed"] = step.Changed
	return &CompletionResult{Index: index, Completed: false, Changed: step.Changed}, nil
}

// Toggle undoes a completed item and executes any other.
func (s *completionService) Toggle(ctx context.Context, date string, index int) (*CompletionResult, error) {
	d, err := s.directives.Get(ctx, date)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", date, ErrNoDirective)
		}
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	if d.Completed.Has(index) {
		return s.Undo(ctx, date, index)
	}
	return s.Execute(ctx, date, index)
}

// CompleteAll executes every executable item that is not yet completed, one
// at a time. A failing item does not stop the rest.
func (s *completionService) CompleteAll(ctx context.Context, date string) (result *BatchResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"date": date}
	defer observe(ctx, s.observer, "complete-all", startedAt, fields, &err)

	plan, err := s.loader.load(ctx, date)
	if err != nil {
		return nil, err
	}
	if plan.Directive == nil {
		return nil, fmt.Errorf("%s: %w", date, ErrNoDirective)
	}

	result = &BatchResult{}
	for _, item := range plan.Items {
		if !item.Executable() || plan.Directive.Completed.Has(item.Index) {
			continue
		}
		result.Total++
		if err := ctx.Err(); err != nil {
			result.Failures = append(result.Failures, BatchFailure{Index: item.Index, Err: err})
			continue
		}
		if _, err := s.Execute(ctx, date, item.Index); err != nil {
			result.Failures = append(result.Failures, BatchFailure{Index: item.Index, Err: err})
			continue
		}
		result.Completed++
	}
	fields["total"] = result.Total
	fields["completed"] = result.Completed
	return result, nil
}

func rewardLabel(item domain.ActionItem) string {
	if item.Label != "" {
		return item.Label
	}
	return item.Name
}
