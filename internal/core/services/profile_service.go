package services

import (
	"context"
	"fmt"

	"habtrack/internal/core/domain"
	"habtrack/internal/core/tracker"
)

type ProfileService struct {
	profiles domain.ProfileRepository
	habits   domain.HabitRepository
}

func NewProfileService(profiles domain.ProfileRepository, habits domain.HabitRepository) *ProfileService {
	return &ProfileService{
		profiles: profiles,
		habits:   habits,
	}
}

type UpdateProfileInput struct {
	Name          string
	Email         string
	Goal          string
	AvatarURL     *string
	Timezone      string
	WeekStartsOn  string
	Notifications *bool
	ReminderTime  string
}

// Update upserts the profile and mirrors it into the session on success.
func (s *ProfileService) Update(ctx context.Context, sess *Session, input UpdateProfileInput) (*domain.Profile, error) {
	updated := *sess.Profile

	if input.Name != "" {
		updated.Name = input.Name
	}
	if input.Email != "" {
		updated.Email = input.Email
	}
	if input.Goal != "" {
		updated.Goal = input.Goal
	}
	if input.AvatarURL != nil {
		updated.AvatarURL = input.AvatarURL
	}
	if input.Timezone != "" {
		updated.Timezone = input.Timezone
	}
	if input.WeekStartsOn != "" {
		updated.WeekStartsOn = input.WeekStartsOn
	}
	if input.Notifications != nil {
		updated.Notifications = *input.Notifications
	}
	if input.ReminderTime != "" {
		updated.ReminderTime = input.ReminderTime
	}

	if err := updated.Validate(); err != nil {
		return nil, err
	}

	if err := s.profiles.Upsert(ctx, &updated); err != nil {
		return nil, err
	}

	*sess.Profile = updated
	return sess.Profile, nil
}

// ClearAllData deletes every habit (cascading completions) and the profile,
// then empties the session snapshot.
func (s *ProfileService) ClearAllData(ctx context.Context, sess *Session) error {
	if err := s.habits.DeleteByUserID(ctx, sess.UserID); err != nil {
		return fmt.Errorf("clear data: habits: %w", err)
	}
	if err := s.profiles.Delete(ctx, sess.UserID); err != nil {
		return fmt.Errorf("clear data: profile: %w", err)
	}

	sess.Habits = nil
	sess.Log = tracker.NewLog()
	return nil
}

// ResetApp clears everything and recreates the default profile, keeping the
// previous display identity.
func (s *ProfileService) ResetApp(ctx context.Context, sess *Session) error {
	name := sess.Profile.Name
	email := sess.Profile.Email
	timezone := sess.Profile.Timezone

	if err := s.ClearAllData(ctx, sess); err != nil {
		return err
	}

	profile := domain.NewProfile(sess.UserID, name, email, timezone)
	if err := s.profiles.Upsert(ctx, profile); err != nil {
		return fmt.Errorf("reset: recreate profile: %w", err)
	}

	sess.Profile = profile
	return nil
}
