package domain

import "context"

// HabitRepository is the habit half of the remote store boundary.
type HabitRepository interface {
	Create(ctx context.Context, habit *Habit) error

	GetByID(ctx context.Context, id string) (*Habit, error)

	// ListByUserID returns the user's habits ordered by creation time ascending.
	ListByUserID(ctx context.Context, userID string) ([]*Habit, error)

	Update(ctx context.Context, habit *Habit) error

	// Delete removes a habit and cascades to all its completion records.
	Delete(ctx context.Context, id string) error

	// DeleteByUserID removes every habit the user owns, cascading completions.
	DeleteByUserID(ctx context.Context, userID string) error
}

type CompletionRepository interface {
	// Create persists a completion record. A record for the same (habit, day)
	// already existing surfaces as ErrDuplicateCompletion.
	Create(ctx context.Context, completion *Completion) error

	// Delete removes a record by id. userID guards against deleting another
	// owner's record.
	Delete(ctx context.Context, id string, userID string) error

	// ListByUserID returns all of the user's records across habits; callers
	// filter per habit locally.
	ListByUserID(ctx context.Context, userID string) ([]*Completion, error)

	DeleteByHabitID(ctx context.Context, habitID string) error
}

type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*Profile, error)

	// Upsert inserts the profile or replaces the stored one for the same user.
	Upsert(ctx context.Context, profile *Profile) error

	Delete(ctx context.Context, userID string) error

	// ListNotifiable returns every profile with notifications enabled, for the
	// reminder worker's due-time scan.
	ListNotifiable(ctx context.Context) ([]*Profile, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
}
