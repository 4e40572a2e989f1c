package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"habtrack/internal/core/domain"
)

type PostgresCompletionRepository struct {
	db *sqlx.DB
}

func NewPostgresCompletionRepository(db *sqlx.DB) *PostgresCompletionRepository {
	return &PostgresCompletionRepository{db: db}
}

// Create inserts one completion record. The (habit_id, completed_date)
// unique constraint backs the one-record-per-day invariant; a violation maps
// to ErrDuplicateCompletion.
func (r *PostgresCompletionRepository) Create(ctx context.Context, c *domain.Completion) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}

	query := `
		INSERT INTO habit_completions (id, habit_id, user_id, completed_date)
		VALUES (:id, :habit_id, :user_id, :completed_date)`

	if _, err := r.db.NamedExecContext(ctx, query, c); err != nil {
		return mapPqError(err, domain.ErrDuplicateCompletion)
	}
	return nil
}

func (r *PostgresCompletionRepository) Delete(ctx context.Context, id string, userID string) error {
	query := `DELETE FROM habit_completions WHERE id = $1 AND user_id = $2`

	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("completion delete failed: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrCompletionNotFound
	}
	return nil
}

func (r *PostgresCompletionRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.Completion, error) {
	completions := []*domain.Completion{}
	query := `
		SELECT * FROM habit_completions
		WHERE user_id = $1
		ORDER BY completed_date ASC`

	if err := r.db.SelectContext(ctx, &completions, query, userID); err != nil {
		return nil, fmt.Errorf("completion list query failed: %w", err)
	}
	return completions, nil
}

func (r *PostgresCompletionRepository) DeleteByHabitID(ctx context.Context, habitID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM habit_completions WHERE habit_id = $1`, habitID); err != nil {
		return fmt.Errorf("completion bulk delete failed: %w", err)
	}
	return nil
}
