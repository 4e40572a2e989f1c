package tracker

import "math"

// nominalWindowDays is the fixed per-habit denominator of the overall
// completion rate. It deliberately ignores each habit's actual age; changing
// that is a product decision, not a bug fix.
const nominalWindowDays = 30

// Summary is the global aggregation shown on the dashboard header.
type Summary struct {
	TotalCompletions int     `json:"total_completions"`
	BestStreak       int     `json:"best_streak"`
	CompletionRate   float64 `json:"completion_rate"`
}

// ComputeSummary folds the derived habit views into global totals. It is a
// pure function of its input: recomputing from the same snapshot yields the
// same summary.
func ComputeSummary(views []HabitView) Summary {
	var s Summary

	streaks := make([]int, 0, len(views))
	for _, v := range views {
		s.TotalCompletions += v.Completions
		streaks = append(streaks, v.Streak)
	}
	s.BestStreak = BestStreak(streaks...)

	if len(views) > 0 {
		rate := float64(s.TotalCompletions) / float64(len(views)*nominalWindowDays) * 100
		s.CompletionRate = math.Round(rate*10) / 10
	}

	return s
}
