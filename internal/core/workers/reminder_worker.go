package workers

import (
	"context"
	"log"
	"time"

	"habtrack/internal/core/dates"
	"habtrack/internal/core/domain"
)

// Notifier delivers one reminder. The default implementation logs; real
// delivery (push, email) is a collaborator behind this interface.
type Notifier interface {
	Notify(ctx context.Context, profile *domain.Profile, message string) error
}

type LogNotifier struct{}

func (LogNotifier) Notify(_ context.Context, profile *domain.Profile, message string) error {
	log.Printf("[REMINDER] %s: %s", profile.UserID, message)
	return nil
}

type ReminderJob struct {
	UserID string
}

// ReminderWorker scans notifiable profiles once a minute and dispatches a
// reminder to each whose configured time-of-day matches the current
// wall-clock minute in that profile's timezone.
type ReminderWorker struct {
	profiles domain.ProfileRepository
	notifier Notifier
	jobs     chan ReminderJob

	// interval is shortened in tests.
	interval time.Duration
}

func NewReminderWorker(profiles domain.ProfileRepository, notifier Notifier) *ReminderWorker {
	return &ReminderWorker{
		profiles: profiles,
		notifier: notifier,
		jobs:     make(chan ReminderJob, 100),
		interval: time.Minute,
	}
}

func (w *ReminderWorker) Start(ctx context.Context) {
	go func() {
		log.Println("Reminder Worker started in background...")
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case now := <-ticker.C:
				w.scan(ctx, now)
			case job := <-w.jobs:
				w.processJob(ctx, job)
			case <-ctx.Done():
				log.Println("Reminder Worker shutting down...")
				return
			}
		}
	}()
}

// Enqueue requests an immediate reminder for one user, outside the schedule.
func (w *ReminderWorker) Enqueue(userID string) {
	select {
	case w.jobs <- ReminderJob{UserID: userID}:
	default:
		log.Printf("Reminder Worker queue full! Dropping job for user %s", userID)
	}
}

func (w *ReminderWorker) scan(ctx context.Context, now time.Time) {
	profiles, err := w.profiles.ListNotifiable(ctx)
	if err != nil {
		log.Printf("Worker error listing profiles: %v", err)
		return
	}

	for _, p := range profiles {
		if p.ReminderTime == "" {
			continue
		}
		wallClock := now.In(dates.LoadZone(p.Timezone)).Format("15:04")
		if wallClock == p.ReminderTime {
			w.Enqueue(p.UserID)
		}
	}
}

func (w *ReminderWorker) processJob(ctx context.Context, job ReminderJob) {
	profile, err := w.profiles.GetByUserID(ctx, job.UserID)
	if err != nil {
		log.Printf("Worker error fetching profile %s: %v", job.UserID, err)
		return
	}

	if !profile.Notifications {
		return
	}

	if err := w.notifier.Notify(ctx, profile, "Time to check in on your habits!"); err != nil {
		log.Printf("Worker failed to notify %s: %v", job.UserID, err)
	}
}
