package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/dayline/internal/catalog"
	"github.com/alexanderramin/dayline/internal/db"
	"github.com/alexanderramin/dayline/internal/domain"
	"github.com/alexanderramin/dayline/internal/nutrition"
	"github.com/alexanderramin/dayline/internal/repository"
	"github.com/google/uuid"
)

type activityService struct {
	meals    repository.MealRepo
	workouts repository.WorkoutRepo
	uow      db.UnitOfWork
	catalog  *catalog.Catalog
	observer UseCaseObserver
}

func NewActivityService(
	meals repository.MealRepo,
	workouts repository.WorkoutRepo,
	uow db.UnitOfWork,
	cat *catalog.Catalog,
	observers ...UseCaseObserver,
) ActivityService {
	return &activityService{
		meals:    meals,
		workouts: workouts,
		uow:      uow,
		catalog:  cat,
		observer: useCaseObserverOrNoop(observers),
	}
}

// LogMeal resolves in.Foods against the catalog and stores the meal.
func (s *activityService) LogMeal(ctx context.Context, in MealInput) (m *domain.MealRecord, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"date": in.Date, "foods": len(in.Foods)}
	defer observe(ctx, s.observer, "log-meal", startedAt, fields, &err)

	if err := validateMinute(in.Minute); err != nil {
		return nil, err
	}
	if len(in.Foods) == 0 {
		return nil, fmt.Errorf("meal needs at least one food")
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = in.Foods[0].Name
	}
	m = &domain.MealRecord{
		ID:     uuid.New().String(),
		Date:   in.Date,
		Minute: in.Minute,
		Name:   name,
		Items:  nutrition.NewResolver(s.catalog).ResolveEntries(in.Foods),
	}
	err = withTx(ctx, s.uow, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteMealRepo(tx).Create(ctx, m)
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (s *activityService) LogWorkout(ctx context.Context, w *domain.WorkoutRecord) (err error) {
	startedAt := time.Now().UTC()
	defer observe(ctx, s.observer, "log-workout", startedAt, map[string]any{"date": w.Date}, &err)

	if err := validateMinute(w.Minute); err != nil {
		return err
	}
	if strings.TrimSpace(w.Name) == "" {
		return fmt.Errorf("workout name is required")
	}
	if w.DurationMin < 0 || w.CaloriesBurned < 0 {
		return fmt.Errorf("workout duration and calories must not be negative")
	}
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	if err := s.workouts.Create(ctx, w); err != nil {
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return nil
}

func (s *activityService) ListDay(ctx context.Context, date string) ([]*domain.MealRecord, []*domain.WorkoutRecord, error) {
	meals, err := s.meals.ListByDate(ctx, date)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	workouts, err := s.workouts.ListByDate(ctx, date)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return meals, workouts, nil
}

// EditMeal applies e to a stored meal. New foods are resolved again; the link
// to a directive item is kept.
func (s *activityService) EditMeal(ctx context.Context, id string, e RecordEdit) (m *domain.MealRecord, err error) {
	startedAt := time.Now().UTC()
	defer observe(ctx, s.observer, "edit-meal", startedAt, map[string]any{"id": id}, &err)

	if e.DurationMin != nil || e.CaloriesBurned != nil {
		return nil, fmt.Errorf("meals have no duration or calories burned")
	}
	if err := e.validate(); err != nil {
		return nil, err
	}
	err = withTx(ctx, s.uow, func(ctx context.Context, tx db.DBTX) error {
		meals := repository.NewSQLiteMealRepo(tx)
		m, err = meals.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if e.Minute != nil {
			m.Minute = *e.Minute
		}
		if e.Name != nil {
			m.Name = strings.TrimSpace(*e.Name)
		}
		if len(e.Foods) > 0 {
			m.Items = nutrition.NewResolver(s.catalog).ResolveEntries(e.Foods)
		}
		return meals.Update(ctx, m)
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (s *activityService) EditWorkout(ctx context.Context, id string, e RecordEdit) (w *domain.WorkoutRecord, err error) {
	startedAt := time.Now().UTC()
	defer observe(ctx, s.observer, "edit-workout", startedAt, map[string]any{"id": id}, &err)

	if len(e.Foods) > 0 {
		return nil, fmt.Errorf("workouts have no foods")
	}
	if err := e.validate(); err != nil {
		return nil, err
	}
	err = withTx(ctx, s.uow, func(ctx context.Context, tx db.DBTX) error {
		workouts := repository.NewSQLiteWorkoutRepo(tx)
		w, err = workouts.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if e.Minute != nil {
			w.Minute = *e.Minute
		}
		if e.Name != nil {
			w.Name = strings.TrimSpace(*e.Name)
		}
		if e.DurationMin != nil {
			w.DurationMin = *e.DurationMin
		}
		if e.CaloriesBurned != nil {
			w.CaloriesBurned = *e.CaloriesBurned
		}
		return workouts.Update(ctx, w)
	})
	if err != nil {
		return nil, err
	}
	return w, nil
}

// DeleteMeal removes a meal. A meal created by completing a directive item
// takes that item's completion with it.
func (s *activityService) DeleteMeal(ctx context.Context, id string) (err error) {
	startedAt := time.Now().UTC()
	defer observe(ctx, s.observer, "delete-meal", startedAt, map[string]any{"id": id}, &err)

	return withTx(ctx, s.uow, func(ctx context.Context, tx db.DBTX) error {
		meals := repository.NewSQLiteMealRepo(tx)
		m, err := meals.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := meals.Delete(ctx, id); err != nil {
			return err
		}
		return uncomplete(ctx, tx, m.Date, m.DirectiveIndex)
	})
}

func (s *activityService) DeleteWorkout(ctx context.Context, id string) (err error) {
	startedAt := time.Now().UTC()
	defer observe(ctx, s.observer, "delete-workout", startedAt, map[string]any{"id": id}, &err)

	return withTx(ctx, s.uow, func(ctx context.Context, tx db.DBTX) error {
		workouts := repository.NewSQLiteWorkoutRepo(tx)
		w, err := workouts.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := workouts.Delete(ctx, id); err != nil {
			return err
		}
		return uncomplete(ctx, tx, w.Date, w.DirectiveIndex)
	})
}

// uncomplete drops index from date's completed set, if both exist.
func uncomplete(ctx context.Context, tx db.DBTX, date string, index *int) error {
	if index == nil {
		return nil
	}
	directives := repository.NewSQLiteDirectiveRepo(tx)
	d, err := directives.Get(ctx, date)
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	next, changed := d.Completed.Without(*index)
	if !changed {
		return nil
	}
	return directives.UpdateCompleted(ctx, date, next)
}

func (e RecordEdit) validate() error {
	if e.Minute != nil {
		if err := validateMinute(*e.Minute); err != nil {
			return err
		}
	}
	if e.Name != nil && strings.TrimSpace(*e.Name) == "" {
		return fmt.Errorf("name must not be blank")
	}
	if (e.DurationMin != nil && *e.DurationMin < 0) || (e.CaloriesBurned != nil && *e.CaloriesBurned < 0) {
		return fmt.Errorf("workout duration and calories must not be negative")
	}
	return nil
}

func validateMinute(minute int) error {
	if minute < 0 || minute >= 24*60 {
		return fmt.Errorf("minute of day must be between 0 and 1439, got %d", minute)
	}
	return nil
}
