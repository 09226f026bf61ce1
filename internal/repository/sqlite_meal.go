package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/dayline/internal/db"
	"github.com/alexanderramin/dayline/internal/domain"
)

// SQLiteMealRepo implements MealRepo using a SQLite database. Meal items are
// stored in meal_items, ordered by position.
type SQLiteMealRepo struct {
	db db.DBTX
}

// NewSQLiteMealRepo creates a new SQLiteMealRepo.
func NewSQLiteMealRepo(conn db.DBTX) *SQLiteMealRepo {
	return &SQLiteMealRepo{db: conn}
}

const mealColumns = `id, date, minute, name, directive_index, created_at`

func (r *SQLiteMealRepo) Create(ctx context.Context, m *domain.MealRecord) error {
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	query := `INSERT INTO meals (id, date, minute, name, directive_index, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		m.ID,
		m.Date,
		m.Minute,
		m.Name,
		nullableIntToValue(m.DirectiveIndex),
		m.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting meal: %w", err)
	}
	return r.insertItems(ctx, m.ID, m.Items)
}

func (r *SQLiteMealRepo) GetByID(ctx context.Context, id string) (*domain.MealRecord, error) {
	query := `SELECT ` + mealColumns + ` FROM meals WHERE id = ?`
	m, err := r.scanMeal(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, err
	}
	if err := r.loadItems(ctx, []*domain.MealRecord{m}); err != nil {
		return nil, err
	}
	return m, nil
}

func (r *SQLiteMealRepo) ListByDate(ctx context.Context, date string) ([]*domain.MealRecord, error) {
	query := `SELECT ` + mealColumns + ` FROM meals WHERE date = ? ORDER BY minute, created_at`
	meals, err := r.queryMeals(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("listing meals by date: %w", err)
	}
	if err := r.loadItems(ctx, meals); err != nil {
		return nil, err
	}
	return meals, nil
}

func (r *SQLiteMealRepo) FindByDirectiveIndex(ctx context.Context, date string, index int) (*domain.MealRecord, error) {
	query := `SELECT ` + mealColumns + ` FROM meals WHERE date = ? AND directive_index = ?`
	m, err := r.scanMeal(r.db.QueryRowContext(ctx, query, date, index))
	if err != nil {
		return nil, err
	}
	if err := r.loadItems(ctx, []*domain.MealRecord{m}); err != nil {
		return nil, err
	}
	return m, nil
}

// UnlinkDirective clears directive_index on every meal of date and
// returns how many rows changed.
func (r *SQLiteMealRepo) UnlinkDirective(ctx context.Context, date string) (int64, error) {
	query := `UPDATE meals SET directive_index = NULL WHERE date = ? AND directive_index IS NOT NULL`
	res, err := r.db.ExecContext(ctx, query, date)
	if err != nil {
		return 0, fmt.Errorf("unlinking meals: %w", err)
	}
	return res.RowsAffected()
}

// Update rewrites the meal row and replaces its items.
func (r *SQLiteMealRepo) Update(ctx context.Context, m *domain.MealRecord) error {
	query := `UPDATE meals SET date = ?, minute = ?, name = ?, directive_index = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		m.Date,
		m.Minute,
		m.Name,
		nullableIntToValue(m.DirectiveIndex),
		m.ID,
	)
	if err != nil {
		return fmt.Errorf("updating meal: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("meal %s: %w", m.ID, ErrNotFound)
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM meal_items WHERE meal_id = ?`, m.ID); err != nil {
		return fmt.Errorf("clearing meal items: %w", err)
	}
	return r.insertItems(ctx, m.ID, m.Items)
}

// Delete removes a meal and, through the foreign key, its items. Deleting a
// missing meal returns ErrNotFound.
func (r *SQLiteMealRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM meals WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting meal: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("meal %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteMealRepo) insertItems(ctx context.Context, mealID string, items []domain.Nutrition) error {
	query := `INSERT INTO meal_items (meal_id, position, name, amount, unit, grams, protein, fat,
		carbs, fiber, sugar, gi, diaas, vitamins, minerals, estimated, source)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for i, it := range items {
		vitamins, err := encodeNutrients(it.Vitamins)
		if err != nil {
			return err
		}
		minerals, err := encodeNutrients(it.Minerals)
		if err != nil {
			return err
		}
		_, err = r.db.ExecContext(ctx, query,
			mealID, i, it.Name, it.Amount, it.Unit, it.Grams,
			it.Protein, it.Fat, it.Carbs, it.Fiber, it.Sugar,
			it.GI, it.DIAAS, vitamins, minerals, boolToInt(it.Estimated), it.Source,
		)
		if err != nil {
			return fmt.Errorf("inserting meal item %d: %w", i, err)
		}
	}
	return nil
}

// loadItems fills Items for every meal with one query.
func (r *SQLiteMealRepo) loadItems(ctx context.Context, meals []*domain.MealRecord) error {
	if len(meals) == 0 {
		return nil
	}
	byID := make(map[string]*domain.MealRecord, len(meals))
	placeholders := make([]string, 0, len(meals))
	args := make([]any, 0, len(meals))
	for _, m := range meals {
		byID[m.ID] = m
		placeholders = append(placeholders, "?")
		args = append(args, m.ID)
	}

	query := `SELECT meal_id, name, amount, unit, grams, protein, fat, carbs, fiber, sugar,
		gi, diaas, vitamins, minerals, estimated, source
		FROM meal_items WHERE meal_id IN (` + strings.Join(placeholders, ",") + `)
		ORDER BY meal_id, position`
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("listing meal items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var mealID, vitamins, minerals string
		var estimated int
		var it domain.Nutrition
		err := rows.Scan(
			&mealID, &it.Name, &it.Amount, &it.Unit, &it.Grams, &it.Protein, &it.Fat, &it.Carbs,
			&it.Fiber, &it.Sugar, &it.GI, &it.DIAAS, &vitamins, &minerals, &estimated, &it.Source,
		)
		if err != nil {
			return fmt.Errorf("scanning meal item row: %w", err)
		}
		it.Estimated = intToBool(estimated)
		if it.Vitamins, err = decodeNutrients(vitamins); err != nil {
			return err
		}
		if it.Minerals, err = decodeNutrients(minerals); err != nil {
			return err
		}
		if m, ok := byID[mealID]; ok {
			m.Items = append(m.Items, it)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating meal items: %w", err)
	}
	return nil
}

// scanMeal scans a single meal from a *sql.Row.
func (r *SQLiteMealRepo) scanMeal(row *sql.Row) (*domain.MealRecord, error) {
	var m domain.MealRecord
	var directiveIndex sql.NullInt64
	var createdAtStr string

	err := row.Scan(&m.ID, &m.Date, &m.Minute, &m.Name, &directiveIndex, &createdAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("meal: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning meal: %w", err)
	}
	return populateMeal(&m, directiveIndex, createdAtStr)
}

// queryMeals runs query and scans every row. Rows are closed before it
// returns so callers may issue follow-up queries on a single connection.
func (r *SQLiteMealRepo) queryMeals(ctx context.Context, query string, args ...any) ([]*domain.MealRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var meals []*domain.MealRecord
	for rows.Next() {
		var m domain.MealRecord
		var directiveIndex sql.NullInt64
		var createdAtStr string
		if err := rows.Scan(&m.ID, &m.Date, &m.Minute, &m.Name, &directiveIndex, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning meal row: %w", err)
		}
		meal, err := populateMeal(&m, directiveIndex, createdAtStr)
		if err != nil {
			return nil, err
		}
		meals = append(meals, meal)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating meals: %w", err)
	}
	return meals, nil
}

func populateMeal(m *domain.MealRecord, directiveIndex sql.NullInt64, createdAtStr string) (*domain.MealRecord, error) {
	m.DirectiveIndex = nullInt64ToPtr(directiveIndex)
	t, err := time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing meal created_at: %w", err)
	}
	m.CreatedAt = t
	return m, nil
}

func encodeNutrients(v map[string]float64) (string, error) {
	if len(v) == 0 {
		return "{}", nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encoding nutrients: %w", err)
	}
	return string(b), nil
}

func decodeNutrients(raw string) (map[string]float64, error) {
	if raw == "" || raw == "{}" {
		return nil, nil
	}
	var v map[string]float64
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return nil, fmt.Errorf("decoding nutrients: %w", err)
	}
	return v, nil
}
