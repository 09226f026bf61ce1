package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/dayline/internal/db"
	"github.com/alexanderramin/dayline/internal/domain"
)

// SQLiteProfileRepo implements ProfileRepo using a SQLite database.
type SQLiteProfileRepo struct {
	db db.DBTX
}

// NewSQLiteProfileRepo creates a new SQLiteProfileRepo.
func NewSQLiteProfileRepo(conn db.DBTX) *SQLiteProfileRepo {
	return &SQLiteProfileRepo{db: conn}
}

func (r *SQLiteProfileRepo) Get(ctx context.Context) (*domain.ScheduleProfile, error) {
	query := `SELECT wake_time, sleep_time, training_time, meals_per_day, training_after_meal
		FROM schedule_profile WHERE id = 'default'`
	row := r.db.QueryRowContext(ctx, query)

	var p domain.ScheduleProfile
	err := row.Scan(
		&p.WakeTime,
		&p.SleepTime,
		&p.TrainingTime,
		&p.MealsPerDay,
		&p.TrainingAfterMeal,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("schedule profile: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning schedule profile: %w", err)
	}
	return &p, nil
}

func (r *SQLiteProfileRepo) Upsert(ctx context.Context, p *domain.ScheduleProfile) error {
	query := `INSERT OR REPLACE INTO schedule_profile (id, wake_time, sleep_time, training_time,
		meals_per_day, training_after_meal)
		VALUES ('default', ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.WakeTime,
		p.SleepTime,
		p.TrainingTime,
		p.MealsPerDay,
		p.TrainingAfterMeal,
	)
	if err != nil {
		return fmt.Errorf("upserting schedule profile: %w", err)
	}
	return nil
}

func (r *SQLiteProfileRepo) IsRestDay(ctx context.Context, date string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM rest_days WHERE date = ?`, date).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("checking rest day: %w", err)
	}
	return n > 0, nil
}

func (r *SQLiteProfileRepo) SetRestDay(ctx context.Context, date string, rest bool) error {
	query := `DELETE FROM rest_days WHERE date = ?`
	if rest {
		query = `INSERT OR IGNORE INTO rest_days (date) VALUES (?)`
	}
	if _, err := r.db.ExecContext(ctx, query, date); err != nil {
		return fmt.Errorf("setting rest day: %w", err)
	}
	return nil
}
