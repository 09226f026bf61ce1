package repository

import (
	"context"

	"github.com/alexanderramin/dayline/internal/domain"
)

type DirectiveRepo interface {
	Get(ctx context.Context, date string) (*domain.Directive, error)
	Upsert(ctx context.Context, d *domain.Directive) error
	UpdateCompleted(ctx context.Context, date string, completed domain.CompletedSet) error
	Delete(ctx context.Context, date string) error
}

type MealRepo interface {
	Create(ctx context.Context, m *domain.MealRecord) error
	GetByID(ctx context.Context, id string) (*domain.MealRecord, error)
	ListByDate(ctx context.Context, date string) ([]*domain.MealRecord, error)
	FindByDirectiveIndex(ctx context.Context, date string, index int) (*domain.MealRecord, error)
	UnlinkDirective(ctx context.Context, date string) (int64, error)
	Update(ctx context.Context, m *domain.MealRecord) error
	Delete(ctx context.Context, id string) error
}

type WorkoutRepo interface {
	Create(ctx context.Context, w *domain.WorkoutRecord) error
	GetByID(ctx context.Context, id string) (*domain.WorkoutRecord, error)
	ListByDate(ctx context.Context, date string) ([]*domain.WorkoutRecord, error)
	FindByDirectiveIndex(ctx context.Context, date string, index int) (*domain.WorkoutRecord, error)
	UnlinkDirective(ctx context.Context, date string) (int64, error)
	Update(ctx context.Context, w *domain.WorkoutRecord) error
	Delete(ctx context.Context, id string) error
}

type ProfileRepo interface {
	Get(ctx context.Context) (*domain.ScheduleProfile, error)
	Upsert(ctx context.Context, p *domain.ScheduleProfile) error
	IsRestDay(ctx context.Context, date string) (bool, error)
	SetRestDay(ctx context.Context, date string, rest bool) error
}
