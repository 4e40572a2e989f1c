package workers

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"habtrack/internal/core/domain"
)

type recordingNotifier struct {
	mu    sync.Mutex
	users []string
}

func (n *recordingNotifier) Notify(_ context.Context, profile *domain.Profile, _ string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.users = append(n.users, profile.UserID)
	return nil
}

func (n *recordingNotifier) notified() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.users...)
}

type stubProfileRepo struct {
	mu       sync.Mutex
	profiles map[string]*domain.Profile
}

func newStubProfileRepo() *stubProfileRepo {
	return &stubProfileRepo{profiles: make(map[string]*domain.Profile)}
}

func (r *stubProfileRepo) GetByUserID(_ context.Context, userID string) (*domain.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.profiles[userID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return p, nil
}

func (r *stubProfileRepo) Upsert(_ context.Context, p *domain.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[p.UserID] = p
	return nil
}

func (r *stubProfileRepo) Delete(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.profiles, userID)
	return nil
}

func (r *stubProfileRepo) ListNotifiable(_ context.Context) ([]*domain.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var list []*domain.Profile
	for _, p := range r.profiles {
		if p.Notifications {
			list = append(list, p)
		}
	}
	return list, nil
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func TestReminderWorker_Enqueue(t *testing.T) {
	t.Run("Success: Enqueued job notifies the user", func(t *testing.T) {
		repo := newStubProfileRepo()
		require.NoError(t, repo.Upsert(context.Background(), domain.NewProfile("u1", "Ada", "", "UTC")))

		notifier := &recordingNotifier{}
		worker := NewReminderWorker(repo, notifier)
		worker.interval = time.Hour // keep the scheduler out of this test

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		worker.Start(ctx)

		worker.Enqueue("u1")

		waitFor(t, func() bool { return len(notifier.notified()) == 1 })
		assert.Equal(t, []string{"u1"}, notifier.notified())
	})

	t.Run("Edge Case: Opted-out user is skipped even when enqueued", func(t *testing.T) {
		repo := newStubProfileRepo()
		optedOut := domain.NewProfile("u1", "Ada", "", "UTC")
		optedOut.Notifications = false
		require.NoError(t, repo.Upsert(context.Background(), optedOut))
		require.NoError(t, repo.Upsert(context.Background(), domain.NewProfile("u2", "Bea", "", "UTC")))

		notifier := &recordingNotifier{}
		worker := NewReminderWorker(repo, notifier)
		worker.interval = time.Hour

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		worker.Start(ctx)

		worker.Enqueue("u1")
		worker.Enqueue("u2")

		waitFor(t, func() bool { return len(notifier.notified()) == 1 })
		assert.Equal(t, []string{"u2"}, notifier.notified())
	})
}

func TestReminderWorker_Scan(t *testing.T) {
	t.Run("Success: Matching wall-clock minute triggers a reminder", func(t *testing.T) {
		repo := newStubProfileRepo()
		p := domain.NewProfile("u1", "Ada", "", "UTC")
		p.ReminderTime = "09:00"
		require.NoError(t, repo.Upsert(context.Background(), p))

		notifier := &recordingNotifier{}
		worker := NewReminderWorker(repo, notifier)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		worker.Start(ctx)

		worker.scan(ctx, time.Date(2024, 3, 5, 9, 0, 30, 0, time.UTC))

		waitFor(t, func() bool { return len(notifier.notified()) == 1 })
	})

	t.Run("Edge Case: Non-matching minute does nothing", func(t *testing.T) {
		repo := newStubProfileRepo()
		p := domain.NewProfile("u1", "Ada", "", "UTC")
		p.ReminderTime = "09:00"
		require.NoError(t, repo.Upsert(context.Background(), p))

		notifier := &recordingNotifier{}
		worker := NewReminderWorker(repo, notifier)

		worker.scan(context.Background(), time.Date(2024, 3, 5, 9, 1, 0, 0, time.UTC))

		time.Sleep(50 * time.Millisecond)
		assert.Empty(t, notifier.notified())
	})

	t.Run("Success: Reminder time is matched in the profile's timezone", func(t *testing.T) {
		repo := newStubProfileRepo()
		p := domain.NewProfile("u1", "Ada", "", "America/New_York")
		p.ReminderTime = "09:00"
		require.NoError(t, repo.Upsert(context.Background(), p))

		notifier := &recordingNotifier{}
		worker := NewReminderWorker(repo, notifier)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		worker.Start(ctx)

		// 14:00 UTC is 09:00 in New York (EST offset -5 on this date).
		worker.scan(ctx, time.Date(2024, 1, 15, 14, 0, 0, 0, time.UTC))

		waitFor(t, func() bool { return len(notifier.notified()) == 1 })
	})
}
