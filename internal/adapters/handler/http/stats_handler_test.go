package http_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsHandler_Summary(t *testing.T) {
	t.Run("Success: Account with no completions", func(t *testing.T) {
		env := setupEnv()

		w := env.do(t, "GET", "/api/v1/stats/summary", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"total_completions":0,"best_streak":0,"completion_rate":0}`, w.Body.String())
	})

	t.Run("Success: Reflects today's toggles", func(t *testing.T) {
		env := setupEnv()
		h := env.seedHabit(t, "Read")
		env.seedHabit(t, "Run")

		env.do(t, "POST", "/api/v1/habits/"+h.ID+"/toggle", "")

		w := env.do(t, "GET", "/api/v1/stats/summary", "")

		assert.Equal(t, http.StatusOK, w.Code)

		var summary struct {
			TotalCompletions int     `json:"total_completions"`
			BestStreak       int     `json:"best_streak"`
			CompletionRate   float64 `json:"completion_rate"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
		assert.Equal(t, 1, summary.TotalCompletions)
		assert.Equal(t, 1, summary.BestStreak)
		// 1 / (2 * 30) = 1.666..., one decimal.
		assert.Equal(t, 1.7, summary.CompletionRate)
	})
}

func TestStatsHandler_Weekly(t *testing.T) {
	t.Run("Success: One grid per habit", func(t *testing.T) {
		env := setupEnv()
		h := env.seedHabit(t, "Read")

		env.do(t, "POST", "/api/v1/habits/"+h.ID+"/toggle", "")

		w := env.do(t, "GET", "/api/v1/stats/weekly", "")

		assert.Equal(t, http.StatusOK, w.Code)

		var overview struct {
			WeekStart string `json:"week_start"`
			Rate      int    `json:"rate"`
			Habits    []struct {
				HabitID string `json:"habit_id"`
				Cells   []struct {
					Day   string `json:"day"`
					State string `json:"state"`
				} `json:"cells"`
			} `json:"habits"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &overview))

		require.Len(t, overview.Habits, 1)
		assert.Equal(t, h.ID, overview.Habits[0].HabitID)
		require.Len(t, overview.Habits[0].Cells, 7)
		assert.Equal(t, overview.WeekStart, overview.Habits[0].Cells[0].Day)
		assert.Positive(t, overview.Rate)
	})
}

func TestStatsHandler_Monthly(t *testing.T) {
	t.Run("Success: Twelve months with habit breakdowns", func(t *testing.T) {
		env := setupEnv()
		env.seedHabit(t, "Read")

		w := env.do(t, "GET", "/api/v1/stats/monthly", "")

		assert.Equal(t, http.StatusOK, w.Code)

		var report struct {
			Year   int `json:"year"`
			Months []struct {
				Month    int  `json:"month"`
				IsFuture bool `json:"is_future"`
			} `json:"months"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
		assert.NotZero(t, report.Year)
		require.Len(t, report.Months, 12)
		assert.Equal(t, 1, report.Months[0].Month)
		assert.Equal(t, 12, report.Months[11].Month)
	})
}
