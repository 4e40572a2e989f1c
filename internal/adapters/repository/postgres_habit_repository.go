package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"habtrack/internal/core/domain"

	_ "github.com/jackc/pgx/v5/stdlib"
)

type PostgresHabitRepository struct {
	db *sqlx.DB
}

func NewPostgresHabitRepository(db *sqlx.DB) *PostgresHabitRepository {
	return &PostgresHabitRepository{db: db}
}

// mapPqError translates the backend's machine codes into domain sentinels:
// 23505 uniqueness, 23502 not-null, 23503 foreign key.
func mapPqError(err error, onUnique error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23505":
			return onUnique
		case "23502":
			return fmt.Errorf("%w: %s", domain.ErrHabitReferenceBroken, pqErr.Column)
		case "23503":
			return domain.ErrHabitReferenceBroken
		}
	}
	return err
}

func (r *PostgresHabitRepository) Create(ctx context.Context, h *domain.Habit) error {
	query := `
        INSERT INTO habits (id, user_id, name, icon, color, category, target_days, created_at)
        VALUES (:id, :user_id, :name, :icon, :color, :category, :target_days, :created_at)`

	if _, err := r.db.NamedExecContext(ctx, query, h); err != nil {
		return mapPqError(err, domain.ErrDuplicateHabitName)
	}
	return nil
}

func (r *PostgresHabitRepository) GetByID(ctx context.Context, id string) (*domain.Habit, error) {
	var h domain.Habit
	query := `SELECT * FROM habits WHERE id = $1`

	if err := r.db.GetContext(ctx, &h, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrHabitNotFound
		}
		return nil, fmt.Errorf("habit query failed: %w", err)
	}
	return &h, nil
}

func (r *PostgresHabitRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.Habit, error) {
	habits := []*domain.Habit{}
	query := `
        SELECT * FROM habits
        WHERE user_id = $1
        ORDER BY created_at ASC`

	if err := r.db.SelectContext(ctx, &habits, query, userID); err != nil {
		return nil, fmt.Errorf("habit list query failed: %w", err)
	}
	return habits, nil
}

func (r *PostgresHabitRepository) Update(ctx context.Context, h *domain.Habit) error {
	query := `
        UPDATE habits
        SET name = :name, icon = :icon, color = :color,
            category = :category, target_days = :target_days
        WHERE id = :id AND user_id = :user_id`

	res, err := r.db.NamedExecContext(ctx, query, h)
	if err != nil {
		return mapPqError(err, domain.ErrDuplicateHabitName)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrHabitNotFound
	}
	return nil
}

// Delete removes the habit; habit_completions carries ON DELETE CASCADE, so
// its records go with it.
func (r *PostgresHabitRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM habits WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("habit delete failed: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrHabitNotFound
	}
	return nil
}

func (r *PostgresHabitRepository) DeleteByUserID(ctx context.Context, userID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM habits WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("habit bulk delete failed: %w", err)
	}
	return nil
}
