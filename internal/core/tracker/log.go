// Package tracker is the derivation engine: it turns a set of habit
// definitions plus a flat list of completion records into day-aligned
// statistics (streaks, weekly grids, monthly percentages, global summary).
// Everything here is pure computation over in-memory snapshots; persistence
// lives behind the domain repositories.
package tracker

import (
	"sort"

	"habtrack/internal/core/domain"
)

// Log is the append-only collection of one owner's completion records,
// indexed for (habit, day) lookups. It is replaced wholesale on each refresh
// and mutated only after a confirmed store write.
type Log struct {
	byID    map[string]*domain.Completion
	byHabit map[string]map[string]*domain.Completion // habitID -> day -> record
}

func NewLog(records ...*domain.Completion) *Log {
	l := &Log{}
	l.Replace(records)
	return l
}

// Replace swaps the full record set, as after the initial bulk fetch.
func (l *Log) Replace(records []*domain.Completion) {
	l.byID = make(map[string]*domain.Completion, len(records))
	l.byHabit = make(map[string]map[string]*domain.Completion)
	for _, rec := range records {
		l.insert(rec)
	}
}

func (l *Log) insert(rec *domain.Completion) {
	l.byID[rec.ID] = rec
	days, ok := l.byHabit[rec.HabitID]
	if !ok {
		days = make(map[string]*domain.Completion)
		l.byHabit[rec.HabitID] = days
	}
	days[rec.CompletedDate] = rec
}

// Add appends a record, rejecting a second record for the same (habit, day).
func (l *Log) Add(rec *domain.Completion) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	if _, exists := l.Find(rec.HabitID, rec.CompletedDate); exists {
		return domain.ErrDuplicateCompletion
	}
	l.insert(rec)
	return nil
}

// Remove deletes a record by id. Removing an unknown id is a no-op.
func (l *Log) Remove(id string) {
	rec, ok := l.byID[id]
	if !ok {
		return
	}
	delete(l.byID, id)
	if days, ok := l.byHabit[rec.HabitID]; ok {
		delete(days, rec.CompletedDate)
		if len(days) == 0 {
			delete(l.byHabit, rec.HabitID)
		}
	}
}

// RemoveHabit drops every record of one habit, the local half of a habit
// delete cascade.
func (l *Log) RemoveHabit(habitID string) {
	for _, rec := range l.byHabit[habitID] {
		delete(l.byID, rec.ID)
	}
	delete(l.byHabit, habitID)
}

// Find returns the record for (habit, day) if one exists.
func (l *Log) Find(habitID, day string) (*domain.Completion, bool) {
	rec, ok := l.byHabit[habitID][day]
	return rec, ok
}

// ForHabit returns one habit's records, ordered by day for stable output.
func (l *Log) ForHabit(habitID string) []*domain.Completion {
	days := l.byHabit[habitID]
	records := make([]*domain.Completion, 0, len(days))
	for _, rec := range days {
		records = append(records, rec)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].CompletedDate < records[j].CompletedDate
	})
	return records
}

// DaySet returns the set of day keys on which the habit was completed.
func (l *Log) DaySet(habitID string) map[string]bool {
	days := l.byHabit[habitID]
	set := make(map[string]bool, len(days))
	for day := range days {
		set[day] = true
	}
	return set
}

// Len is the total number of records across habits.
func (l *Log) Len() int {
	return len(l.byID)
}
