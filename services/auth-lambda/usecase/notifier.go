package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kxngzero329/Attendance-Tracker-Backend--Auth/common/email"
	"github.com/kxngzero329/Attendance-Tracker-Backend--Auth/common/logger"
	"github.com/kxngzero329/Attendance-Tracker-Backend--Auth/services/auth-lambda/models"
)

// Event types recorded in the notification log.
const (
	EventWelcome        = "WELCOME"
	EventLogin          = "LOGIN"
	EventResetRequested = "PASSWORD_RESET_REQUESTED"
	EventPasswordReset  = "PASSWORD_CHANGED"
	EventUnlocked       = "ACCOUNT_UNLOCKED"
)

// Event is one user-facing auth event handed to the notifier.
type Event struct {
	AccountID int
	Email     string
	Name      string
	Type      string
	Message   string

	// ResetLink and QRDataURI are set only for EventResetRequested.
	// DeliverTo overrides Email as the mail recipient when the reset was
	// targeted at a backup address.
	ResetLink string
	QRDataURI string
	DeliverTo string
}

// Notifier records and delivers user-facing auth events. Implementations
// must never block the caller and must swallow their own failures: a
// notifier outage cannot affect the outcome of the operation that emitted
// the event.
type Notifier interface {
	Notify(event Event)
}

// NotificationStore is the slice of storage the notifier writes to.
type NotificationStore interface {
	Insert(ctx context.Context, n models.Notification) error
	ListByAccount(ctx context.Context, accountID, limit int) ([]models.Notification, error)
}

// EventNotifier is the production Notifier: a bounded queue drained by one
// goroutine that appends a notification row and sends the matching email
// template. A full queue drops the event with a warning.
type EventNotifier struct {
	queue   chan Event
	store   NotificationStore
	mail    *email.EmailService
	log     *logger.Logger
	stopped sync.WaitGroup
}

// NewEventNotifier creates and starts an EventNotifier with the given queue
// capacity.
func NewEventNotifier(store NotificationStore, mail *email.EmailService, queueSize int) *EventNotifier {
	if queueSize <= 0 {
		queueSize = 64
	}
	n := &EventNotifier{
		queue: make(chan Event, queueSize),
		store: store,
		mail:  mail,
		log:   logger.Default().With("component", "notifier"),
	}
	n.stopped.Add(1)
	go n.drain()
	return n
}

// Notify enqueues an event without blocking. Overflow drops the event.
func (n *EventNotifier) Notify(event Event) {
	select {
	case n.queue <- event:
	default:
		n.log.Warn("notification queue full, dropping event", "type", event.Type, "accountId", event.AccountID)
	}
}

// Stop drains outstanding events and shuts the worker down.
func (n *EventNotifier) Stop() {
	close(n.queue)
	n.stopped.Wait()
}

func (n *EventNotifier) drain() {
	defer n.stopped.Done()
	for event := range n.queue {
		n.process(event)
	}
}

func (n *EventNotifier) process(event Event) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	record := models.Notification{
		ID:        uuid.NewString(),
		AccountID: event.AccountID,
		EventType: event.Type,
		Message:   event.Message,
	}
	if err := n.store.Insert(ctx, record); err != nil {
		n.log.Error("failed to record notification", "type", event.Type, "accountId", event.AccountID, "error", err)
	}

	if err := n.deliver(event); err != nil {
		n.log.Error("failed to deliver notification email", "type", event.Type, "accountId", event.AccountID, "error", err)
	}
}

func (n *EventNotifier) deliver(event Event) error {
	to := event.DeliverTo
	if to == "" {
		to = event.Email
	}

	switch event.Type {
	case EventWelcome:
		return n.mail.SendWelcomeEmail(to, event.Name)
	case EventResetRequested:
		return n.mail.SendPasswordResetEmail(to, event.ResetLink, event.QRDataURI)
	case EventPasswordReset:
		return n.mail.SendPasswordChangedEmail(to)
	case EventUnlocked:
		return n.mail.SendAccountUnlockedEmail(to)
	default:
		// Login events are log-only; nothing to mail.
		return nil
	}
}
