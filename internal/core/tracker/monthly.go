package tracker

import (
	"math"
	"time"

	"habtrack/internal/core/dates"
	"habtrack/internal/core/domain"
)

type MonthHabitStat struct {
	HabitID   string `json:"habit_id"`
	HabitName string `json:"habit_name"`
	Completed int    `json:"completed"`
	Percent   int    `json:"percent"`
}

type MonthStat struct {
	Month     time.Month       `json:"month"`
	Completed int              `json:"completed"`
	Possible  int              `json:"possible"`
	Percent   int              `json:"percent"`
	IsFuture  bool             `json:"is_future"`
	Habits    []MonthHabitStat `json:"habits"`
}

// YearReport covers the 12 calendar months of today's year.
type YearReport struct {
	Year      int           `json:"year"`
	Months    [12]MonthStat `json:"months"`
	BestMonth time.Month    `json:"best_month"`
	Trend     int           `json:"trend"`
}

func percent(completed, possible int) int {
	if possible == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(possible) * 100))
}

// MonthlyReport projects all habits' completions onto the 12 months of the
// current year. A month strictly in the past counts its full length as
// possible days; the current month counts the elapsed day-of-month; future
// months are flagged and contribute zero to both sides of every ratio.
func MonthlyReport(habits []*domain.Habit, log *Log, today string) (*YearReport, error) {
	year, curMonth, dayOfMonth, err := dates.Month(today)
	if err != nil {
		return nil, err
	}

	// Per habit, per month completed-day counts for this year.
	counts := make(map[string][12]int, len(habits))
	for _, h := range habits {
		var perMonth [12]int
		for day := range log.DaySet(h.ID) {
			y, m, _, err := dates.Month(day)
			if err != nil || y != year {
				continue
			}
			perMonth[m-1]++
		}
		counts[h.ID] = perMonth
	}

	report := &YearReport{Year: year}

	for i := 0; i < 12; i++ {
		month := time.Month(i + 1)

		possible := 0
		future := false
		switch {
		case month < curMonth:
			possible = dates.DaysIn(year, month)
		case month == curMonth:
			possible = dayOfMonth
		default:
			future = true
		}

		stat := MonthStat{
			Month:    month,
			IsFuture: future,
			Habits:   make([]MonthHabitStat, 0, len(habits)),
		}

		for _, h := range habits {
			completed := 0
			if !future {
				completed = counts[h.ID][i]
			}
			stat.Completed += completed
			stat.Possible += possible
			stat.Habits = append(stat.Habits, MonthHabitStat{
				HabitID:   h.ID,
				HabitName: h.Name,
				Completed: completed,
				Percent:   percent(completed, possible),
			})
		}

		stat.Percent = percent(stat.Completed, stat.Possible)
		report.Months[i] = stat
	}

	// Best month: highest overall percent among non-future months, earliest
	// month winning ties.
	best := -1
	for i := 0; i < 12; i++ {
		if report.Months[i].IsFuture {
			continue
		}
		if best < 0 || report.Months[i].Percent > report.Months[best].Percent {
			best = i
		}
	}
	if best >= 0 {
		report.BestMonth = report.Months[best].Month
	}

	cur := int(curMonth) - 1
	if cur > 0 {
		report.Trend = report.Months[cur].Percent - report.Months[cur-1].Percent
	}

	return report, nil
}
