package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexanderramin/dayline/internal/db"
	"github.com/alexanderramin/dayline/internal/domain"
)

// SQLiteWorkoutRepo implements WorkoutRepo using a SQLite database.
type SQLiteWorkoutRepo struct {
	db db.DBTX
}

// NewSQLiteWorkoutRepo creates a new SQLiteWorkoutRepo.
func NewSQLiteWorkoutRepo(conn db.DBTX) *SQLiteWorkoutRepo {
	return &SQLiteWorkoutRepo{db: conn}
}

const workoutColumns = `id, date, minute, name, exercises, duration_min, calories_burned, directive_index, created_at`

// exerciseJSON is the stored shape of one exercise.
type exerciseJSON struct {
	Name        string `json:"name"`
	Sets        int    `json:"sets"`
	Reps        int    `json:"reps"`
	DurationMin int    `json:"duration_min"`
}

func (r *SQLiteWorkoutRepo) Create(ctx context.Context, w *domain.WorkoutRecord) error {
	if w.CreatedAt.IsZero() {
		w.CreatedAt = time.Now().UTC()
	}
	exercises, err := encodeExercises(w.Exercises)
	if err != nil {
		return err
	}
	query := `INSERT INTO workouts (` + workoutColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		w.ID,
		w.Date,
		w.Minute,
		w.Name,
		exercises,
		w.DurationMin,
		w.CaloriesBurned,
		nullableIntToValue(w.DirectiveIndex),
		w.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting workout: %w", err)
	}
	return nil
}

func (r *SQLiteWorkoutRepo) GetByID(ctx context.Context, id string) (*domain.WorkoutRecord, error) {
	query := `SELECT ` + workoutColumns + ` FROM workouts WHERE id = ?`
	return r.scanWorkout(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteWorkoutRepo) ListByDate(ctx context.Context, date string) ([]*domain.WorkoutRecord, error) {
	query := `SELECT ` + workoutColumns + ` FROM workouts WHERE date = ? ORDER BY minute, created_at`
	rows, err := r.db.QueryContext(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("listing workouts by date: %w", err)
	}
	defer rows.Close()
	return r.scanWorkouts(rows)
}

func (r *SQLiteWorkoutRepo) FindByDirectiveIndex(ctx context.Context, date string, index int) (*domain.WorkoutRecord, error) {
	query := `SELECT ` + workoutColumns + ` FROM workouts WHERE date = ? AND directive_index = ?`
	return r.scanWorkout(r.db.QueryRowContext(ctx, query, date, index))
}

// UnlinkDirective clears directive_index on every workout of date and
// returns how many rows changed.
func (r *SQLiteWorkoutRepo) UnlinkDirective(ctx context.Context, date string) (int64, error) {
	query := `UPDATE workouts SET directive_index = NULL WHERE date = ? AND directive_index IS NOT NULL`
	res, err := r.db.ExecContext(ctx, query, date)
	if err != nil {
		return 0, fmt.Errorf("unlinking workouts: %w", err)
	}
	return res.RowsAffected()
}

func (r *SQLiteWorkoutRepo) Update(ctx context.Context, w *domain.WorkoutRecord) error {
	exercises, err := encodeExercises(w.Exercises)
	if err != nil {
		return err
	}
	query := `UPDATE workouts SET date = ?, minute = ?, name = ?, exercises = ?, duration_min = ?,
		calories_burned = ?, directive_index = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		w.Date,
		w.Minute,
		w.Name,
		exercises,
		w.DurationMin,
		w.CaloriesBurned,
		nullableIntToValue(w.DirectiveIndex),
		w.ID,
	)
	if err != nil {
		return fmt.Errorf("updating workout: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("workout %s: %w", w.ID, ErrNotFound)
	}
	return nil
}

// Delete removes a workout. Deleting a missing workout returns ErrNotFound.
func (r *SQLiteWorkoutRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM workouts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting workout: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("workout %s: %w", id, ErrNotFound)
	}
	return nil
}

// scanWorkout scans a single workout from a *sql.Row.
func (r *SQLiteWorkoutRepo) scanWorkout(row *sql.Row) (*domain.WorkoutRecord, error) {
	var w domain.WorkoutRecord
	var exercises, createdAtStr string
	var directiveIndex sql.NullInt64

	err := row.Scan(
		&w.ID, &w.Date, &w.Minute, &w.Name, &exercises, &w.DurationMin, &w.CaloriesBurned,
		&directiveIndex, &createdAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("workout: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning workout: %w", err)
	}
	return populateWorkout(&w, exercises, directiveIndex, createdAtStr)
}

// scanWorkouts scans multiple workouts from *sql.Rows.
func (r *SQLiteWorkoutRepo) scanWorkouts(rows *sql.Rows) ([]*domain.WorkoutRecord, error) {
	var workouts []*domain.WorkoutRecord
	for rows.Next() {
		var w domain.WorkoutRecord
		var exercises, createdAtStr string
		var directiveIndex sql.NullInt64

		err := rows.Scan(
			&w.ID, &w.Date, &w.Minute, &w.Name, &exercises, &w.DurationMin, &w.CaloriesBurned,
			&directiveIndex, &createdAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning workout row: %w", err)
		}

		workout, parseErr := populateWorkout(&w, exercises, directiveIndex, createdAtStr)
		if parseErr != nil {
			return nil, parseErr
		}
		workouts = append(workouts, workout)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating workouts: %w", err)
	}
	return workouts, nil
}

func populateWorkout(w *domain.WorkoutRecord, exercises string, directiveIndex sql.NullInt64, createdAtStr string) (*domain.WorkoutRecord, error) {
	var err error
	if w.Exercises, err = decodeExercises(exercises); err != nil {
		return nil, err
	}
	w.DirectiveIndex = nullInt64ToPtr(directiveIndex)
	w.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing workout created_at: %w", err)
	}
	return w, nil
}

func encodeExercises(in []domain.ExerciseDetail) (string, error) {
	out := make([]exerciseJSON, 0, len(in))
	for _, e := range in {
		out = append(out, exerciseJSON(e))
	}
	b, err := json.Marshal(out)
	if err != nil {
		return "", fmt.Errorf("encoding exercises: %w", err)
	}
	return string(b), nil
}

func decodeExercises(raw string) ([]domain.ExerciseDetail, error) {
	if raw == "" {
		return nil, nil
	}
	var stored []exerciseJSON
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		return nil, fmt.Errorf("decoding exercises: %w", err)
	}
	if len(stored) == 0 {
		return nil, nil
	}
	out := make([]domain.ExerciseDetail, 0, len(stored))
	for _, e := range stored {
		out = append(out, domain.ExerciseDetail(e))
	}
	return out, nil
}
