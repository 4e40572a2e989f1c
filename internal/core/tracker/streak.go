package tracker

import (
	"habtrack/internal/core/dates"
)

// maxStreakLookback bounds the backward walk. A habit completed daily for
// more than 365 days undercounts its current streak at exactly this boundary;
// the cap is generous enough to treat as unbounded for this domain.
const maxStreakLookback = 365

// CurrentStreak counts consecutive completed days ending at today. An
// incomplete today breaks the chain outright: the walk never starts from
// yesterday, so the streak is 0 the moment today's completion is missing.
func CurrentStreak(days map[string]bool, today string) int {
	t, err := dates.Parse(today)
	if err != nil {
		return 0
	}

	streak := 0
	for i := 0; i < maxStreakLookback; i++ {
		key := t.AddDate(0, 0, -i).Format(dates.Layout)
		if !days[key] {
			break
		}
		streak++
	}
	return streak
}

// BestStreak is the maximum current streak across habits, 0 when there are
// none. This is deliberately not a historical best-ever: it only ever sees
// streaks that are still alive today. A true run-length maximum over the full
// day range can replace this function without touching call sites.
func BestStreak(streaks ...int) int {
	best := 0
	for _, s := range streaks {
		if s > best {
			best = s
		}
	}
	return best
}
