package tracker

import (
	"math"

	"habtrack/internal/core/dates"
)

// CellState classifies one day cell of the weekly grid.
type CellState int

const (
	CellMissed CellState = iota
	CellCompleted
	CellFuture
)

func (s CellState) String() string {
	switch s {
	case CellCompleted:
		return "completed"
	case CellFuture:
		return "future"
	default:
		return "not-completed"
	}
}

func (s CellState) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

type WeekCell struct {
	Day   string    `json:"day"`
	State CellState `json:"state"`
}

// WeekGrid projects one habit's completed days onto the week containing
// today. Days strictly after today are future regardless of data; days on or
// before today are completed iff a record exists.
func WeekGrid(days map[string]bool, today string, ws dates.WeekStart) ([7]WeekCell, error) {
	var grid [7]WeekCell

	week, todayIdx, err := dates.Week(today, ws)
	if err != nil {
		return grid, err
	}

	for i, day := range week {
		state := CellMissed
		switch {
		case i > todayIdx:
			state = CellFuture
		case days[day]:
			state = CellCompleted
		}
		grid[i] = WeekCell{Day: day, State: state}
	}

	return grid, nil
}

// WeeklyRate is the integer percentage of completed cells across all habits,
// counting only days up to and including today. With no habits or a bad day
// key it is 0 rather than an error; rates degrade to zero, they never fail.
func WeeklyRate(daySets []map[string]bool, today string, ws dates.WeekStart) int {
	if len(daySets) == 0 {
		return 0
	}

	week, todayIdx, err := dates.Week(today, ws)
	if err != nil {
		return 0
	}

	elapsed := todayIdx + 1
	possible := len(daySets) * elapsed
	if possible == 0 {
		return 0
	}

	completed := 0
	for _, days := range daySets {
		for i := 0; i < elapsed; i++ {
			if days[week[i]] {
				completed++
			}
		}
	}

	return int(math.Round(float64(completed) / float64(possible) * 100))
}
