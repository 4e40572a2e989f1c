package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"habtrack/internal/core/domain"
)

type PostgresProfileRepository struct {
	db *sqlx.DB
}

func NewPostgresProfileRepository(db *sqlx.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

func (r *PostgresProfileRepository) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	var p domain.Profile
	query := `SELECT * FROM user_profiles WHERE user_id = $1`

	if err := r.db.GetContext(ctx, &p, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("profile query failed: %w", err)
	}
	return &p, nil
}

func (r *PostgresProfileRepository) Upsert(ctx context.Context, p *domain.Profile) error {
	query := `
		INSERT INTO user_profiles (
			user_id, name, email, goal, avatar_url, timezone,
			week_starts_on, notifications, reminder_time, created_at
		) VALUES (
			:user_id, :name, :email, :goal, :avatar_url, :timezone,
			:week_starts_on, :notifications, :reminder_time, :created_at
		)
		ON CONFLICT (user_id) DO UPDATE SET
			name = EXCLUDED.name,
			email = EXCLUDED.email,
			goal = EXCLUDED.goal,
			avatar_url = EXCLUDED.avatar_url,
			timezone = EXCLUDED.timezone,
			week_starts_on = EXCLUDED.week_starts_on,
			notifications = EXCLUDED.notifications,
			reminder_time = EXCLUDED.reminder_time`

	if _, err := r.db.NamedExecContext(ctx, query, p); err != nil {
		return fmt.Errorf("profile upsert failed: %w", err)
	}
	return nil
}

func (r *PostgresProfileRepository) Delete(ctx context.Context, userID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM user_profiles WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("profile delete failed: %w", err)
	}
	return nil
}

func (r *PostgresProfileRepository) ListNotifiable(ctx context.Context) ([]*domain.Profile, error) {
	profiles := []*domain.Profile{}
	query := `SELECT * FROM user_profiles WHERE notifications = TRUE`

	if err := r.db.SelectContext(ctx, &profiles, query); err != nil {
		return nil, fmt.Errorf("notifiable profiles query failed: %w", err)
	}
	return profiles, nil
}
