package usecase

import (
	"context"
	"sync"
	"testing"

	"github.com/kxngzero329/Attendance-Tracker-Backend--Auth/common/email"
	"github.com/kxngzero329/Attendance-Tracker-Backend--Auth/common/logger"
	"github.com/kxngzero329/Attendance-Tracker-Backend--Auth/services/auth-lambda/models"
)

// syncNotificationStore is safe for the notifier's worker goroutine.
type syncNotificationStore struct {
	mu   sync.Mutex
	rows []models.Notification
}

func (s *syncNotificationStore) Insert(_ context.Context, n models.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = append(s.rows, n)
	return nil
}

func (s *syncNotificationStore) ListByAccount(_ context.Context, accountID, limit int) ([]models.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Notification
	for _, row := range s.rows {
		if row.AccountID == accountID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (s *syncNotificationStore) snapshot() []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Notification(nil), s.rows...)
}

func devMailService() *email.EmailService {
	// Empty credentials put the service in dev mode; Send is a no-op.
	return email.NewEmailService(&email.Config{})
}

func TestEventNotifierRecordsEvents(t *testing.T) {
	store := &syncNotificationStore{}
	notifier := NewEventNotifier(store, devMailService(), 8)

	notifier.Notify(Event{AccountID: 1, Email: "user@example.com", Name: "Test User", Type: EventWelcome, Message: "Account created"})
	notifier.Notify(Event{AccountID: 1, Email: "user@example.com", Type: EventLogin, Message: "Signed in"})
	notifier.Notify(Event{AccountID: 2, Email: "other@example.com", Type: EventUnlocked, Message: "Account unlocked"})

	// Stop drains the queue before returning, so the rows are all written.
	notifier.Stop()

	rows := store.snapshot()
	if len(rows) != 3 {
		t.Fatalf("got %d notification rows, want 3", len(rows))
	}
	for _, row := range rows {
		if row.ID == "" {
			t.Error("notification row missing an id")
		}
	}
	if rows[0].EventType != EventWelcome || rows[1].EventType != EventLogin || rows[2].EventType != EventUnlocked {
		t.Errorf("event types out of order: %s, %s, %s", rows[0].EventType, rows[1].EventType, rows[2].EventType)
	}
}

func TestEventNotifierDeliversResetEvent(t *testing.T) {
	store := &syncNotificationStore{}
	notifier := NewEventNotifier(store, devMailService(), 8)

	notifier.Notify(Event{
		AccountID: 5,
		Email:     "user@example.com",
		Type:      EventResetRequested,
		Message:   "Password reset requested",
		ResetLink: "http://localhost:5173/reset-password?token=abc&email=user%40example.com",
		DeliverTo: "backup@example.com",
	})
	notifier.Stop()

	rows := store.snapshot()
	if len(rows) != 1 {
		t.Fatalf("got %d notification rows, want 1", len(rows))
	}
	if rows[0].AccountID != 5 || rows[0].EventType != EventResetRequested {
		t.Errorf("unexpected row: %+v", rows[0])
	}
}

func TestEventNotifierOverflowDropsWithoutBlocking(t *testing.T) {
	store := &syncNotificationStore{}
	notifier := &EventNotifier{
		queue: make(chan Event, 1),
		store: store,
		mail:  devMailService(),
		log:   logger.Default(),
	}
	// No drain goroutine running, so the second Notify hits a full queue.
	notifier.Notify(Event{AccountID: 1, Type: EventLogin})
	notifier.Notify(Event{AccountID: 2, Type: EventLogin})

	if got := len(notifier.queue); got != 1 {
		t.Errorf("queue length = %d, want 1 (overflow dropped)", got)
	}
}
