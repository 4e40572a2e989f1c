package domain

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"habtrack/internal/core/dates"
)

var (
	ErrInvalidCompletion    = errors.New("invalid completion record")
	ErrCompletionNotFound   = errors.New("completion record not found")
	ErrDuplicateCompletion  = errors.New("habit is already completed for this day")
	ErrHabitReferenceBroken = errors.New("referenced habit or user does not exist")
)

// Completion marks one habit done on one calendar day. At most one record may
// exist per (habit, day); the toggle action enforces this in memory and the
// store enforces it with a unique constraint.
type Completion struct {
	ID            string `json:"id" db:"id"`
	HabitID       string `json:"habit_id" db:"habit_id"`
	UserID        string `json:"user_id" db:"user_id"`
	CompletedDate string `json:"completed_date" db:"completed_date"`
}

func NewCompletion(habitID, userID, day string) (*Completion, error) {
	c := &Completion{
		ID:            uuid.NewString(),
		HabitID:       habitID,
		UserID:        userID,
		CompletedDate: day,
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Completion) Validate() error {
	if strings.TrimSpace(c.HabitID) == "" {
		return ErrInvalidCompletion
	}
	if strings.TrimSpace(c.UserID) == "" {
		return ErrInvalidCompletion
	}
	if _, err := dates.Parse(c.CompletedDate); err != nil {
		return ErrInvalidCompletion
	}
	return nil
}
