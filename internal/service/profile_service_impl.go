package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/dayline/internal/domain"
	"github.com/alexanderramin/dayline/internal/repository"
	"github.com/alexanderramin/dayline/internal/scheduler"
)

type profileService struct {
	profiles repository.ProfileRepo
	observer UseCaseObserver
}

func NewProfileService(profiles repository.ProfileRepo, observers ...UseCaseObserver) ProfileService {
	return &profileService{profiles: profiles, observer: useCaseObserverOrNoop(observers)}
}

func (s *profileService) Get(ctx context.Context) (*domain.ScheduleProfile, error) {
	p, err := s.profiles.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return p, nil
}

// Update validates p and stores it. TrainingTime may be empty.
func (s *profileService) Update(ctx context.Context, p *domain.ScheduleProfile) (err error) {
	startedAt := time.Now().UTC()
	defer observe(ctx, s.observer, "update-profile", startedAt, nil, &err)

	if err := p.Validate(); err != nil {
		return err
	}
	for name, v := range map[string]string{"wake time": p.WakeTime, "sleep time": p.SleepTime} {
		if _, err := scheduler.ParseClock(v); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	if p.TrainingTime != "" {
		if _, err := scheduler.ParseClock(p.TrainingTime); err != nil {
			return fmt.Errorf("training time: %w", err)
		}
	}
	if err := s.profiles.Upsert(ctx, p); err != nil {
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return nil
}

func (s *profileService) SetRestDay(ctx context.Context, date string, rest bool) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}
	if err := s.profiles.SetRestDay(ctx, date, rest); err != nil {
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return nil
}

func (s *profileService) IsRestDay(ctx context.Context, date string) (bool, error) {
	rest, err := s.profiles.IsRestDay(ctx, date)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return rest, nil
}
