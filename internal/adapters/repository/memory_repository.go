package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"habtrack/internal/core/domain"
)

// In-memory implementations of the store boundary, used by handler tests and
// local development without a database. Methods return copies so callers
// cannot mutate the stored state behind the lock.

type InMemoryHabitRepository struct {
	store       map[string]*domain.Habit
	completions *InMemoryCompletionRepository

	mu sync.RWMutex
}

// NewInMemoryHabitRepository wires the completion store in so habit deletes
// can cascade the way the real backend does.
func NewInMemoryHabitRepository(completions *InMemoryCompletionRepository) *InMemoryHabitRepository {
	return &InMemoryHabitRepository{
		store:       make(map[string]*domain.Habit),
		completions: completions,
	}
}

func (r *InMemoryHabitRepository) Create(ctx context.Context, habit *domain.Habit) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, h := range r.store {
		if h.UserID == habit.UserID && strings.EqualFold(h.Name, habit.Name) {
			return domain.ErrDuplicateHabitName
		}
	}

	clone := *habit
	r.store[habit.ID] = &clone
	return nil
}

func (r *InMemoryHabitRepository) GetByID(ctx context.Context, id string) (*domain.Habit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	habit, ok := r.store[id]
	if !ok {
		return nil, domain.ErrHabitNotFound
	}
	clone := *habit
	return &clone, nil
}

func (r *InMemoryHabitRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.Habit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	habits := []*domain.Habit{}
	for _, h := range r.store {
		if h.UserID == userID {
			clone := *h
			habits = append(habits, &clone)
		}
	}

	sort.Slice(habits, func(i, j int) bool {
		return habits[i].CreatedAt.Before(habits[j].CreatedAt)
	})

	return habits, nil
}

func (r *InMemoryHabitRepository) Update(ctx context.Context, habit *domain.Habit) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[habit.ID]; !ok {
		return domain.ErrHabitNotFound
	}

	clone := *habit
	r.store[habit.ID] = &clone
	return nil
}

func (r *InMemoryHabitRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	if _, ok := r.store[id]; !ok {
		r.mu.Unlock()
		return domain.ErrHabitNotFound
	}
	delete(r.store, id)
	r.mu.Unlock()

	if r.completions != nil {
		return r.completions.DeleteByHabitID(ctx, id)
	}
	return nil
}

func (r *InMemoryHabitRepository) DeleteByUserID(ctx context.Context, userID string) error {
	r.mu.Lock()
	var ids []string
	for id, h := range r.store {
		if h.UserID == userID {
			ids = append(ids, id)
		}
	}
	for _, id := range ids {
		delete(r.store, id)
	}
	r.mu.Unlock()

	if r.completions != nil {
		for _, id := range ids {
			if err := r.completions.DeleteByHabitID(ctx, id); err != nil {
				return err
			}
		}
	}
	return nil
}

type InMemoryCompletionRepository struct {
	store map[string]*domain.Completion

	mu sync.RWMutex
}

func NewInMemoryCompletionRepository() *InMemoryCompletionRepository {
	return &InMemoryCompletionRepository{
		store: make(map[string]*domain.Completion),
	}
}

func (r *InMemoryCompletionRepository) Create(ctx context.Context, c *domain.Completion) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.store {
		if existing.HabitID == c.HabitID && existing.CompletedDate == c.CompletedDate {
			return domain.ErrDuplicateCompletion
		}
	}

	clone := *c
	r.store[c.ID] = &clone
	return nil
}

func (r *InMemoryCompletionRepository) Delete(ctx context.Context, id string, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.store[id]
	if !ok || c.UserID != userID {
		return domain.ErrCompletionNotFound
	}
	delete(r.store, id)
	return nil
}

func (r *InMemoryCompletionRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.Completion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	completions := []*domain.Completion{}
	for _, c := range r.store {
		if c.UserID == userID {
			clone := *c
			completions = append(completions, &clone)
		}
	}

	sort.Slice(completions, func(i, j int) bool {
		return completions[i].CompletedDate < completions[j].CompletedDate
	})

	return completions, nil
}

func (r *InMemoryCompletionRepository) DeleteByHabitID(ctx context.Context, habitID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, c := range r.store {
		if c.HabitID == habitID {
			delete(r.store, id)
		}
	}
	return nil
}

type InMemoryProfileRepository struct {
	store map[string]*domain.Profile

	mu sync.RWMutex
}

func NewInMemoryProfileRepository() *InMemoryProfileRepository {
	return &InMemoryProfileRepository{
		store: make(map[string]*domain.Profile),
	}
}

func (r *InMemoryProfileRepository) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.store[userID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *InMemoryProfileRepository) Upsert(ctx context.Context, p *domain.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := *p
	r.store[p.UserID] = &clone
	return nil
}

func (r *InMemoryProfileRepository) Delete(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.store, userID)
	return nil
}

func (r *InMemoryProfileRepository) ListNotifiable(ctx context.Context) ([]*domain.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	profiles := []*domain.Profile{}
	for _, p := range r.store {
		if p.Notifications {
			clone := *p
			profiles = append(profiles, &clone)
		}
	}
	return profiles, nil
}

type InMemoryUserRepository struct {
	store map[string]*domain.User

	mu sync.RWMutex
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		store: make(map[string]*domain.User),
	}
}

func (r *InMemoryUserRepository) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.store {
		if u.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}

	clone := *user
	r.store[user.ID] = &clone
	return nil
}

func (r *InMemoryUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.store {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *InMemoryUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.store[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *InMemoryUserRepository) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.store[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}
