package tracker

import (
	"sort"

	"habtrack/internal/core/domain"
)

// HabitView is the derived, never-persisted projection of one habit:
// completion count, the streak ending today, the ordered completed days and
// whether today's record exists. Recomputed from the raw snapshot on every
// pass.
type HabitView struct {
	*domain.Habit

	Completions    int      `json:"completions"`
	Streak         int      `json:"streak"`
	CompletedDays  []string `json:"completed_days"`
	CompletedToday bool     `json:"completed_today"`
}

// DeriveView builds the projection for a single habit.
func DeriveView(habit *domain.Habit, log *Log, today string) HabitView {
	days := log.DaySet(habit.ID)

	completed := make([]string, 0, len(days))
	for day := range days {
		completed = append(completed, day)
	}
	sort.Strings(completed)

	return HabitView{
		Habit:          habit,
		Completions:    len(days),
		Streak:         CurrentStreak(days, today),
		CompletedDays:  completed,
		CompletedToday: days[today],
	}
}

// DeriveViews projects every habit, preserving the habits' order.
func DeriveViews(habits []*domain.Habit, log *Log, today string) []HabitView {
	views := make([]HabitView, 0, len(habits))
	for _, h := range habits {
		views = append(views, DeriveView(h, log, today))
	}
	return views
}
