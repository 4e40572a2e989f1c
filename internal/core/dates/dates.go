package dates

import (
	"fmt"
	"time"
)

// Layout is the calendar-day key format used everywhere a day is identified.
const Layout = "2006-01-02"

// LoadZone resolves an IANA timezone name. Empty or unknown names fall back
// to the system zone, mirroring the default a fresh profile gets.
func LoadZone(name string) *time.Location {
	if name == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.Local
	}
	return loc
}

// Day returns the calendar-day key of the instant t as seen in loc.
// The key is the wall-clock date in that zone, so an instant sitting on a DST
// transition still maps to exactly one key.
func Day(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(Layout)
}

// Today returns the current day key in loc.
func Today(loc *time.Location) string {
	return Day(time.Now(), loc)
}

// Parse turns a day key back into a time anchored at midnight UTC.
// Calendar arithmetic on the result (AddDate) is DST-free by construction.
func Parse(day string) (time.Time, error) {
	t, err := time.ParseInLocation(Layout, day, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day key %q: %w", day, err)
	}
	return t, nil
}

// AddDays shifts a day key by n calendar days.
func AddDays(day string, n int) (string, error) {
	t, err := Parse(day)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, n).Format(Layout), nil
}

// WeekStart is the day the 7-day grid begins on.
type WeekStart int

const (
	WeekStartMonday WeekStart = iota
	WeekStartSunday
)

// ParseWeekStart maps the stored profile value to a convention.
// Anything unrecognised defaults to monday, the profile default.
func ParseWeekStart(s string) WeekStart {
	if s == "sunday" {
		return WeekStartSunday
	}
	return WeekStartMonday
}

func (w WeekStart) String() string {
	if w == WeekStartSunday {
		return "sunday"
	}
	return "monday"
}

// Week returns the 7 day keys of the week containing day, ordered from the
// week start, plus day's 0-based index within that week.
func Week(day string, ws WeekStart) ([7]string, int, error) {
	var week [7]string

	t, err := Parse(day)
	if err != nil {
		return week, 0, err
	}

	idx := int(t.Weekday()) // Sunday = 0
	if ws == WeekStartMonday {
		idx = (idx + 6) % 7
	}

	start := t.AddDate(0, 0, -idx)
	for i := 0; i < 7; i++ {
		week[i] = start.AddDate(0, 0, i).Format(Layout)
	}

	return week, idx, nil
}

// Month splits a day key into its year, month and day-of-month.
func Month(day string) (int, time.Month, int, error) {
	t, err := Parse(day)
	if err != nil {
		return 0, 0, 0, err
	}
	return t.Year(), t.Month(), t.Day(), nil
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
