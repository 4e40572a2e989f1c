package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrHabitNameEmpty     = errors.New("habit name cannot be empty")
	ErrHabitNameTooLong   = errors.New("habit name is too long (max 100 chars)")
	ErrHabitInvalidUserID = errors.New("invalid user id")
	ErrInvalidTargetDays  = errors.New("target days must be positive")
	ErrHabitNotFound      = errors.New("habit not found")
	ErrDuplicateHabitName = errors.New("a habit with this name already exists")
)

const (
	DefaultHabitIcon     = "✅"
	DefaultHabitColor    = "bg-green-500"
	DefaultHabitCategory = "general"
	DefaultTargetDays    = 30
	MaxHabitNameLen      = 100
)

type Habit struct {
	ID         string    `json:"id" db:"id"`
	UserID     string    `json:"user_id" db:"user_id"`
	Name       string    `json:"name" db:"name"`
	Icon       string    `json:"icon" db:"icon"`
	Color      string    `json:"color" db:"color"`
	Category   string    `json:"category" db:"category"`
	TargetDays int       `json:"target_days" db:"target_days"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

func validateHabit(name string, targetDays int) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", ErrHabitNameEmpty
	}
	if len(trimmed) > MaxHabitNameLen {
		return "", ErrHabitNameTooLong
	}
	if targetDays < 0 {
		return "", ErrInvalidTargetDays
	}
	return trimmed, nil
}

func NewHabit(userID, name, icon, color, category string, targetDays int) (*Habit, error) {
	if userID == "" {
		return nil, ErrHabitInvalidUserID
	}

	trimmed, err := validateHabit(name, targetDays)
	if err != nil {
		return nil, err
	}

	if icon == "" {
		icon = DefaultHabitIcon
	}
	if color == "" {
		color = DefaultHabitColor
	}
	if category == "" {
		category = DefaultHabitCategory
	}
	if targetDays == 0 {
		targetDays = DefaultTargetDays
	}

	return &Habit{
		ID:         uuid.NewString(),
		UserID:     userID,
		Name:       trimmed,
		Icon:       icon,
		Color:      color,
		Category:   category,
		TargetDays: targetDays,
		CreatedAt:  time.Now().UTC(),
	}, nil
}

// Update renames or restyles the habit. Zero values keep the current field.
func (h *Habit) Update(name, icon, color, category string, targetDays int) error {
	if name == "" {
		name = h.Name
	}

	trimmed, err := validateHabit(name, targetDays)
	if err != nil {
		return err
	}

	h.Name = trimmed
	if icon != "" {
		h.Icon = icon
	}
	if color != "" {
		h.Color = color
	}
	if category != "" {
		h.Category = category
	}
	if targetDays > 0 {
		h.TargetDays = targetDays
	}

	return nil
}

// SameName reports whether the habit's name matches candidate, ignoring case
// and surrounding whitespace. Names are unique per owner under this rule.
func (h *Habit) SameName(candidate string) bool {
	return strings.EqualFold(h.Name, strings.TrimSpace(candidate))
}
