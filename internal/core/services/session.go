package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"habtrack/internal/core/dates"
	"habtrack/internal/core/domain"
	"habtrack/internal/core/tracker"
)

// Session is the explicit session-scoped state container: the signed-in
// owner's habits, completion log and profile, fetched wholesale after
// authentication. Derived views are always recomputed from it, never cached
// on it. It is owned by a single request-handling flow; there is no ambient
// singleton.
type Session struct {
	UserID  string
	Habits  []*domain.Habit
	Log     *tracker.Log
	Profile *domain.Profile
}

// Zone resolves the owner's configured timezone, falling back to the system
// zone for missing or invalid names.
func (s *Session) Zone() *time.Location {
	if s.Profile == nil {
		return dates.LoadZone("")
	}
	return dates.LoadZone(s.Profile.Timezone)
}

func (s *Session) WeekStart() dates.WeekStart {
	if s.Profile == nil {
		return dates.WeekStartMonday
	}
	return dates.ParseWeekStart(s.Profile.WeekStartsOn)
}

// RemoveHabit drops a habit and its records from the local snapshot, the
// in-memory half of the store's delete cascade.
func (s *Session) RemoveHabit(habitID string) {
	for i, h := range s.Habits {
		if h.ID == habitID {
			s.Habits = append(s.Habits[:i], s.Habits[i+1:]...)
			break
		}
	}
	s.Log.RemoveHabit(habitID)
}

// SessionService performs the bulk load that opens a session and the
// teardown that closes one.
type SessionService struct {
	habits      domain.HabitRepository
	completions domain.CompletionRepository
	profiles    domain.ProfileRepository

	// seeder creates the starter habits on a brand-new user's first load.
	seeder *HabitService
}

func NewSessionService(habits domain.HabitRepository, completions domain.CompletionRepository, profiles domain.ProfileRepository) *SessionService {
	return &SessionService{
		habits:      habits,
		completions: completions,
		profiles:    profiles,
		seeder:      NewHabitService(habits),
	}
}

// Load fetches the owner's habits (creation order), all completion records
// and the profile. A missing profile marks the user's first load: the default
// profile is created and, when the account has no habits yet, the starter
// habits are seeded. Later loads never reseed, so a deliberately emptied
// account stays empty.
func (s *SessionService) Load(ctx context.Context, userID string) (*Session, error) {
	habits, err := s.habits.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("session load: habits: %w", err)
	}

	records, err := s.completions.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("session load: completions: %w", err)
	}

	firstLoad := false
	profile, err := s.profiles.GetByUserID(ctx, userID)
	if errors.Is(err, domain.ErrProfileNotFound) {
		profile = domain.NewProfile(userID, "", "", "")
		if err := s.profiles.Upsert(ctx, profile); err != nil {
			return nil, fmt.Errorf("session load: create profile: %w", err)
		}
		firstLoad = true
	} else if err != nil {
		return nil, fmt.Errorf("session load: profile: %w", err)
	}

	sess := &Session{
		UserID:  userID,
		Habits:  habits,
		Log:     tracker.NewLog(records...),
		Profile: profile,
	}

	if firstLoad {
		// The session still works without the starters.
		if err := s.seeder.SeedDefaults(ctx, sess); err != nil {
			log.Printf("session load: default seed failed for %s: %v", userID, err)
		}
	}

	return sess, nil
}
