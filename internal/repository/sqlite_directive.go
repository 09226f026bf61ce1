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

// SQLiteDirectiveRepo implements DirectiveRepo using a SQLite database.
type SQLiteDirectiveRepo struct {
	db db.DBTX
}

// NewSQLiteDirectiveRepo creates a new SQLiteDirectiveRepo.
func NewSQLiteDirectiveRepo(conn db.DBTX) *SQLiteDirectiveRepo {
	return &SQLiteDirectiveRepo{db: conn}
}

func (r *SQLiteDirectiveRepo) Get(ctx context.Context, date string) (*domain.Directive, error) {
	query := `SELECT date, message, completed_items, updated_at FROM directives WHERE date = ?`
	row := r.db.QueryRowContext(ctx, query, date)

	var d domain.Directive
	var completedJSON, updatedAtStr string
	if err := row.Scan(&d.Date, &d.Message, &completedJSON, &updatedAtStr); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("directive %s: %w", date, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning directive: %w", err)
	}

	completed, err := decodeCompleted(completedJSON)
	if err != nil {
		return nil, err
	}
	d.Completed = completed
	d.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing directive updated_at: %w", err)
	}
	return &d, nil
}

// Upsert stores the directive for d.Date, replacing text and completed set.
func (r *SQLiteDirectiveRepo) Upsert(ctx context.Context, d *domain.Directive) error {
	completedJSON, err := encodeCompleted(d.Completed)
	if err != nil {
		return err
	}
	if d.UpdatedAt.IsZero() {
		d.UpdatedAt = time.Now().UTC()
	}
	query := `INSERT INTO directives (date, message, completed_items, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			message = excluded.message,
			completed_items = excluded.completed_items,
			updated_at = excluded.updated_at`
	_, err = r.db.ExecContext(ctx, query,
		d.Date,
		d.Message,
		completedJSON,
		d.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting directive: %w", err)
	}
	return nil
}

func (r *SQLiteDirectiveRepo) UpdateCompleted(ctx context.Context, date string, completed domain.CompletedSet) error {
	completedJSON, err := encodeCompleted(completed)
	if err != nil {
		return err
	}
	query := `UPDATE directives SET completed_items = ?, updated_at = ? WHERE date = ?`
	res, err := r.db.ExecContext(ctx, query, completedJSON, nowUTC(), date)
	if err != nil {
		return fmt.Errorf("updating completed items: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("directive %s: %w", date, ErrNotFound)
	}
	return nil
}

func (r *SQLiteDirectiveRepo) Delete(ctx context.Context, date string) error {
	query := `DELETE FROM directives WHERE date = ?`
	_, err := r.db.ExecContext(ctx, query, date)
	if err != nil {
		return fmt.Errorf("deleting directive: %w", err)
	}
	return nil
}

func encodeCompleted(s domain.CompletedSet) (string, error) {
	b, err := json.Marshal(s.Indices())
	if err != nil {
		return "", fmt.Errorf("encoding completed items: %w", err)
	}
	return string(b), nil
}

func decodeCompleted(raw string) (domain.CompletedSet, error) {
	if raw == "" {
		return domain.CompletedSet{}, nil
	}
	var indices []int
	if err := json.Unmarshal([]byte(raw), &indices); err != nil {
		return domain.CompletedSet{}, fmt.Errorf("decoding completed items: %w", err)
	}
	return domain.NewCompletedSet(indices...), nil
}
