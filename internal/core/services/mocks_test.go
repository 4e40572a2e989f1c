package services

import (
	"context"
	"sort"
	"time"

	"habtrack/internal/core/domain"
	"habtrack/internal/core/tracker"
)

// Map-backed repository doubles with per-method error injection, so tests can
// verify what happens to local state when the store says no.

type stubHabitRepo struct {
	store map[string]*domain.Habit

	failCreate error
	failUpdate error
	failDelete error
}

func newStubHabitRepo() *stubHabitRepo {
	return &stubHabitRepo{store: make(map[string]*domain.Habit)}
}

func (m *stubHabitRepo) Create(ctx context.Context, h *domain.Habit) error {
	if m.failCreate != nil {
		return m.failCreate
	}
	m.store[h.ID] = h
	return nil
}

func (m *stubHabitRepo) GetByID(ctx context.Context, id string) (*domain.Habit, error) {
	h, ok := m.store[id]
	if !ok {
		return nil, domain.ErrHabitNotFound
	}
	return h, nil
}

func (m *stubHabitRepo) ListByUserID(ctx context.Context, userID string) ([]*domain.Habit, error) {
	var list []*domain.Habit
	for _, h := range m.store {
		if h.UserID == userID {
			list = append(list, h)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.Before(list[j].CreatedAt) })
	return list, nil
}

func (m *stubHabitRepo) Update(ctx context.Context, h *domain.Habit) error {
	if m.failUpdate != nil {
		return m.failUpdate
	}
	if _, ok := m.store[h.ID]; !ok {
		return domain.ErrHabitNotFound
	}
	m.store[h.ID] = h
	return nil
}

func (m *stubHabitRepo) Delete(ctx context.Context, id string) error {
	if m.failDelete != nil {
		return m.failDelete
	}
	if _, ok := m.store[id]; !ok {
		return domain.ErrHabitNotFound
	}
	delete(m.store, id)
	return nil
}

func (m *stubHabitRepo) DeleteByUserID(ctx context.Context, userID string) error {
	for id, h := range m.store {
		if h.UserID == userID {
			delete(m.store, id)
		}
	}
	return nil
}

type stubCompletionRepo struct {
	store map[string]*domain.Completion

	failCreate error
	failDelete error
}

func newStubCompletionRepo() *stubCompletionRepo {
	return &stubCompletionRepo{store: make(map[string]*domain.Completion)}
}

func (m *stubCompletionRepo) Create(ctx context.Context, c *domain.Completion) error {
	if m.failCreate != nil {
		return m.failCreate
	}
	m.store[c.ID] = c
	return nil
}

func (m *stubCompletionRepo) Delete(ctx context.Context, id string, userID string) error {
	if m.failDelete != nil {
		return m.failDelete
	}
	if _, ok := m.store[id]; !ok {
		return domain.ErrCompletionNotFound
	}
	delete(m.store, id)
	return nil
}

func (m *stubCompletionRepo) ListByUserID(ctx context.Context, userID string) ([]*domain.Completion, error) {
	var list []*domain.Completion
	for _, c := range m.store {
		if c.UserID == userID {
			list = append(list, c)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CompletedDate < list[j].CompletedDate })
	return list, nil
}

func (m *stubCompletionRepo) DeleteByHabitID(ctx context.Context, habitID string) error {
	for id, c := range m.store {
		if c.HabitID == habitID {
			delete(m.store, id)
		}
	}
	return nil
}

type stubProfileRepo struct {
	store map[string]*domain.Profile

	failUpsert error
	failGet    error
}

func newStubProfileRepo() *stubProfileRepo {
	return &stubProfileRepo{store: make(map[string]*domain.Profile)}
}

func (m *stubProfileRepo) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	if m.failGet != nil {
		return nil, m.failGet
	}
	p, ok := m.store[userID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return p, nil
}

func (m *stubProfileRepo) Upsert(ctx context.Context, p *domain.Profile) error {
	if m.failUpsert != nil {
		return m.failUpsert
	}
	m.store[p.UserID] = p
	return nil
}

func (m *stubProfileRepo) Delete(ctx context.Context, userID string) error {
	delete(m.store, userID)
	return nil
}

func (m *stubProfileRepo) ListNotifiable(ctx context.Context) ([]*domain.Profile, error) {
	var list []*domain.Profile
	for _, p := range m.store {
		if p.Notifications {
			list = append(list, p)
		}
	}
	return list, nil
}

// fixedClock pins "today" to 2024-03-05 UTC for every service that takes a
// clock.
func fixedClock() time.Time {
	return time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)
}

func newTestSession(habits ...*domain.Habit) *Session {
	return &Session{
		UserID:  "u1",
		Habits:  habits,
		Log:     tracker.NewLog(),
		Profile: domain.NewProfile("u1", "Ada", "ada@example.com", "UTC"),
	}
}
