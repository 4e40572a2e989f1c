package domain_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"habtrack/internal/core/domain"
)

func TestNewHabit(t *testing.T) {
	t.Run("Success: Creates valid habit with defaults", func(t *testing.T) {
		h, err := domain.NewHabit("u1", "Drink Water", "", "", "", 0)

		require.NoError(t, err)
		require.NotNil(t, h)
		assert.NotEmpty(t, h.ID)
		assert.Equal(t, "u1", h.UserID)
		assert.Equal(t, "Drink Water", h.Name)

		assert.Equal(t, domain.DefaultHabitIcon, h.Icon)
		assert.Equal(t, domain.DefaultHabitColor, h.Color)
		assert.Equal(t, domain.DefaultHabitCategory, h.Category)
		assert.Equal(t, domain.DefaultTargetDays, h.TargetDays)

		assert.WithinDuration(t, time.Now().UTC(), h.CreatedAt, 2*time.Second)
	})

	t.Run("Success: Explicit styling overrides defaults", func(t *testing.T) {
		h, err := domain.NewHabit("u1", "Run", "🏃", "bg-blue-500", "fitness", 60)

		require.NoError(t, err)
		assert.Equal(t, "🏃", h.Icon)
		assert.Equal(t, "bg-blue-500", h.Color)
		assert.Equal(t, "fitness", h.Category)
		assert.Equal(t, 60, h.TargetDays)
	})

	t.Run("Success: Name is trimmed", func(t *testing.T) {
		h, err := domain.NewHabit("u1", "  Read  ", "", "", "", 0)
		require.NoError(t, err)
		assert.Equal(t, "Read", h.Name)
	})

	t.Run("Error: Empty name", func(t *testing.T) {
		_, err := domain.NewHabit("u1", "   ", "", "", "", 0)
		assert.ErrorIs(t, err, domain.ErrHabitNameEmpty)
	})

	t.Run("Error: Name too long", func(t *testing.T) {
		_, err := domain.NewHabit("u1", strings.Repeat("x", 101), "", "", "", 0)
		assert.ErrorIs(t, err, domain.ErrHabitNameTooLong)
	})

	t.Run("Error: Invalid user id", func(t *testing.T) {
		_, err := domain.NewHabit("", "Read", "", "", "", 0)
		assert.ErrorIs(t, err, domain.ErrHabitInvalidUserID)
	})

	t.Run("Error: Negative target days", func(t *testing.T) {
		_, err := domain.NewHabit("u1", "Read", "", "", "", -1)
		assert.ErrorIs(t, err, domain.ErrInvalidTargetDays)
	})
}

func TestHabit_Update(t *testing.T) {
	base := func(t *testing.T) *domain.Habit {
		h, err := domain.NewHabit("u1", "Read", "📚", "bg-blue-500", "mind", 30)
		require.NoError(t, err)
		return h
	}

	t.Run("Success: Zero values keep current fields", func(t *testing.T) {
		h := base(t)
		require.NoError(t, h.Update("", "", "", "", 0))

		assert.Equal(t, "Read", h.Name)
		assert.Equal(t, "📚", h.Icon)
		assert.Equal(t, "bg-blue-500", h.Color)
		assert.Equal(t, "mind", h.Category)
		assert.Equal(t, 30, h.TargetDays)
	})

	t.Run("Success: Partial update", func(t *testing.T) {
		h := base(t)
		require.NoError(t, h.Update("Read More", "", "", "", 90))

		assert.Equal(t, "Read More", h.Name)
		assert.Equal(t, "📚", h.Icon)
		assert.Equal(t, 90, h.TargetDays)
	})

	t.Run("Error: Invalid new name leaves the habit untouched", func(t *testing.T) {
		h := base(t)
		err := h.Update(strings.Repeat("x", 101), "", "", "", 0)

		assert.ErrorIs(t, err, domain.ErrHabitNameTooLong)
		assert.Equal(t, "Read", h.Name)
	})
}

func TestHabit_SameName(t *testing.T) {
	h, err := domain.NewHabit("u1", "Drink Water", "", "", "", 0)
	require.NoError(t, err)

	assert.True(t, h.SameName("drink water"))
	assert.True(t, h.SameName("  DRINK WATER  "))
	assert.False(t, h.SameName("Drink Tea"))
}

func TestNewCompletion(t *testing.T) {
	t.Run("Success: Valid record", func(t *testing.T) {
		c, err := domain.NewCompletion("h1", "u1", "2024-03-05")
		require.NoError(t, err)
		assert.NotEmpty(t, c.ID)
		assert.Equal(t, "h1", c.HabitID)
		assert.Equal(t, "u1", c.UserID)
		assert.Equal(t, "2024-03-05", c.CompletedDate)
	})

	t.Run("Error: Missing habit id", func(t *testing.T) {
		_, err := domain.NewCompletion("", "u1", "2024-03-05")
		assert.ErrorIs(t, err, domain.ErrInvalidCompletion)
	})

	t.Run("Error: Missing user id", func(t *testing.T) {
		_, err := domain.NewCompletion("h1", " ", "2024-03-05")
		assert.ErrorIs(t, err, domain.ErrInvalidCompletion)
	})

	t.Run("Error: Malformed day key", func(t *testing.T) {
		_, err := domain.NewCompletion("h1", "u1", "05/03/2024")
		assert.ErrorIs(t, err, domain.ErrInvalidCompletion)
	})
}
