package services

import (
	"context"
	"time"

	"habtrack/internal/core/dates"
	"habtrack/internal/core/domain"
)

type CompletionService struct {
	repo domain.CompletionRepository

	// now is swapped in tests to pin "today".
	now func() time.Time
}

func NewCompletionService(repo domain.CompletionRepository) *CompletionService {
	return &CompletionService{
		repo: repo,
		now:  time.Now,
	}
}

// ToggleResult reports the state the (habit, day) pair ended up in.
type ToggleResult struct {
	Day       string             `json:"day"`
	Completed bool               `json:"completed"`
	Record    *domain.Completion `json:"record,omitempty"`
}

// Toggle marks or unmarks the habit for today in the owner's timezone. The
// add-or-remove decision comes from the session log snapshot at the moment
// the action starts; the snapshot is mutated only after the store write
// succeeds, so a failed call leaves local state exactly as it was.
func (s *CompletionService) Toggle(ctx context.Context, sess *Session, habitID string) (*ToggleResult, error) {
	known := false
	for _, h := range sess.Habits {
		if h.ID == habitID {
			known = true
			break
		}
	}
	if !known {
		return nil, domain.ErrHabitNotFound
	}

	today := dates.Day(s.now(), sess.Zone())

	if existing, ok := sess.Log.Find(habitID, today); ok {
		if err := s.repo.Delete(ctx, existing.ID, sess.UserID); err != nil {
			return nil, err
		}
		sess.Log.Remove(existing.ID)
		return &ToggleResult{Day: today, Completed: false}, nil
	}

	rec, err := domain.NewCompletion(habitID, sess.UserID, today)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, err
	}

	if err := sess.Log.Add(rec); err != nil {
		return nil, err
	}
	return &ToggleResult{Day: today, Completed: true, Record: rec}, nil
}
