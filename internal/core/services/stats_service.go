package services

import (
	"time"

	"habtrack/internal/core/dates"
	"habtrack/internal/core/tracker"
)

// StatsService derives every aggregate view from a session snapshot. It
// computes "today" exactly once per call, in the owner's timezone, and hands
// the same key to each component so no two aggregates disagree about which
// day it is.
type StatsService struct {
	now func() time.Time
}

func NewStatsService() *StatsService {
	return &StatsService{now: time.Now}
}

func (s *StatsService) today(sess *Session) string {
	return dates.Day(s.now(), sess.Zone())
}

// Views returns the derived per-habit projections.
func (s *StatsService) Views(sess *Session) []tracker.HabitView {
	return tracker.DeriveViews(sess.Habits, sess.Log, s.today(sess))
}

// Summary is the global dashboard aggregation.
func (s *StatsService) Summary(sess *Session) tracker.Summary {
	return tracker.ComputeSummary(s.Views(sess))
}

// HabitWeek is one habit's grid for the current week.
type HabitWeek struct {
	HabitID   string              `json:"habit_id"`
	HabitName string              `json:"habit_name"`
	Streak    int                 `json:"streak"`
	Cells     [7]tracker.WeekCell `json:"cells"`
}

// WeeklyOverview holds every habit's grid plus the overall weekly rate.
type WeeklyOverview struct {
	WeekStart string      `json:"week_start"`
	Rate      int         `json:"rate"`
	Habits    []HabitWeek `json:"habits"`
}

func (s *StatsService) Weekly(sess *Session) (*WeeklyOverview, error) {
	today := s.today(sess)
	ws := sess.WeekStart()

	week, _, err := dates.Week(today, ws)
	if err != nil {
		return nil, err
	}

	overview := &WeeklyOverview{
		WeekStart: week[0],
		Habits:    make([]HabitWeek, 0, len(sess.Habits)),
	}

	daySets := make([]map[string]bool, 0, len(sess.Habits))
	for _, h := range sess.Habits {
		days := sess.Log.DaySet(h.ID)
		daySets = append(daySets, days)

		grid, err := tracker.WeekGrid(days, today, ws)
		if err != nil {
			return nil, err
		}

		overview.Habits = append(overview.Habits, HabitWeek{
			HabitID:   h.ID,
			HabitName: h.Name,
			Streak:    tracker.CurrentStreak(days, today),
			Cells:     grid,
		})
	}

	overview.Rate = tracker.WeeklyRate(daySets, today, ws)
	return overview, nil
}

// Monthly is the 12-month report for the current year.
func (s *StatsService) Monthly(sess *Session) (*tracker.YearReport, error) {
	return tracker.MonthlyReport(sess.Habits, sess.Log, s.today(sess))
}
