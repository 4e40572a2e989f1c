package domain

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

var (
	ErrProfileNotFound  = errors.New("profile not found")
	ErrInvalidWeekStart = errors.New("week start must be 'sunday' or 'monday'")
	ErrInvalidReminder  = errors.New("invalid reminder time (must be HH:MM 24h)")
)

var reminderRegex = regexp.MustCompile(`^([0-1][0-9]|2[0-3]):[0-5][0-9]$`)

const (
	DefaultGoal         = "Build better habits daily"
	DefaultReminderTime = "09:00"
	DefaultWeekStartsOn = "monday"
)

// Profile holds the owner's display data and the two settings the derivation
// layer depends on: timezone and week-start convention.
type Profile struct {
	UserID        string    `json:"user_id" db:"user_id"`
	Name          string    `json:"name" db:"name"`
	Email         string    `json:"email" db:"email"`
	Goal          string    `json:"goal" db:"goal"`
	AvatarURL     *string   `json:"avatar_url,omitempty" db:"avatar_url"`
	Timezone      string    `json:"timezone" db:"timezone"`
	WeekStartsOn  string    `json:"week_starts_on" db:"week_starts_on"`
	Notifications bool      `json:"notifications" db:"notifications"`
	ReminderTime  string    `json:"reminder_time" db:"reminder_time"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// NewProfile builds the default profile created lazily on a user's first load.
// An empty timezone means the runtime's detected zone is used at derivation
// time; the stored value stays empty rather than guessing.
func NewProfile(userID, name, email, timezone string) *Profile {
	return &Profile{
		UserID:        userID,
		Name:          name,
		Email:         strings.ToLower(strings.TrimSpace(email)),
		Goal:          DefaultGoal,
		Timezone:      timezone,
		WeekStartsOn:  DefaultWeekStartsOn,
		Notifications: true,
		ReminderTime:  DefaultReminderTime,
		CreatedAt:     time.Now().UTC(),
	}
}

func (p *Profile) Validate() error {
	switch p.WeekStartsOn {
	case "sunday", "monday":
	default:
		return ErrInvalidWeekStart
	}
	if p.ReminderTime != "" && !reminderRegex.MatchString(p.ReminderTime) {
		return ErrInvalidReminder
	}
	return nil
}
