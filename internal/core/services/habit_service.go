package services

import (
	"context"
	"fmt"
	"log"

	"habtrack/internal/core/domain"
)

type HabitService struct {
	repo domain.HabitRepository
}

func NewHabitService(repo domain.HabitRepository) *HabitService {
	return &HabitService{repo: repo}
}

type CreateHabitInput struct {
	Name       string
	Icon       string
	Color      string
	Category   string
	TargetDays int
}

type UpdateHabitInput struct {
	ID         string
	Name       string
	Icon       string
	Color      string
	Category   string
	TargetDays int
}

// Create validates against the session snapshot before any store call:
// duplicate names never reach the store. The new habit is appended to the
// snapshot only after the insert succeeds.
func (s *HabitService) Create(ctx context.Context, sess *Session, input CreateHabitInput) (*domain.Habit, error) {
	for _, existing := range sess.Habits {
		if existing.SameName(input.Name) {
			return nil, domain.ErrDuplicateHabitName
		}
	}

	habit, err := domain.NewHabit(sess.UserID, input.Name, input.Icon, input.Color, input.Category, input.TargetDays)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, habit); err != nil {
		return nil, err
	}

	sess.Habits = append(sess.Habits, habit)
	return habit, nil
}

func (s *HabitService) Update(ctx context.Context, sess *Session, input UpdateHabitInput) (*domain.Habit, error) {
	var habit *domain.Habit
	for _, h := range sess.Habits {
		if h.ID == input.ID {
			habit = h
			break
		}
	}
	if habit == nil {
		return nil, domain.ErrHabitNotFound
	}

	if input.Name != "" && !habit.SameName(input.Name) {
		for _, other := range sess.Habits {
			if other.ID != habit.ID && other.SameName(input.Name) {
				return nil, domain.ErrDuplicateHabitName
			}
		}
	}

	// Mutate a copy so a failed store write leaves the snapshot untouched.
	updated := *habit
	if err := updated.Update(input.Name, input.Icon, input.Color, input.Category, input.TargetDays); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, &updated); err != nil {
		return nil, err
	}

	*habit = updated
	return habit, nil
}

// Delete removes the habit from the store (cascading its completions there)
// and mirrors the cascade into the session snapshot on success.
func (s *HabitService) Delete(ctx context.Context, sess *Session, habitID string) error {
	found := false
	for _, h := range sess.Habits {
		if h.ID == habitID {
			found = true
			break
		}
	}
	if !found {
		return domain.ErrHabitNotFound
	}

	if err := s.repo.Delete(ctx, habitID); err != nil {
		return err
	}

	sess.RemoveHabit(habitID)
	return nil
}

// SeedDefaults creates the starter habits a brand-new user sees. It is a
// no-op unless the session has zero habits.
func (s *HabitService) SeedDefaults(ctx context.Context, sess *Session) error {
	if len(sess.Habits) > 0 {
		return nil
	}

	defaults := []CreateHabitInput{
		{Name: "Run 2.3 KM", Icon: "🏃", Color: "bg-orange-500", Category: "fitness", TargetDays: 21},
		{Name: "Don't Smoke", Icon: "🚭", Color: "bg-gray-600", Category: "health", TargetDays: 365},
		{Name: "Eat Healthy Meal", Icon: "🥕", Color: "bg-orange-500", Category: "nutrition", TargetDays: 21},
		{Name: "Brush Teeth", Icon: "🦷", Color: "bg-orange-500", Category: "hygiene", TargetDays: 365},
		{Name: "Walk the Dog", Icon: "🐕", Color: "bg-orange-500", Category: "care", TargetDays: 30},
	}

	for _, input := range defaults {
		if _, err := s.Create(ctx, sess, input); err != nil {
			return fmt.Errorf("seed default habit %q: %w", input.Name, err)
		}
	}

	log.Printf("Seeded %d default habits for user %s", len(defaults), sess.UserID)
	return nil
}
