package scheduler

import (
	"context"
	"database/sql"
	"time"

	"github.com/kxngzero329/Attendance-Tracker-Backend--Auth/common/db"
	"github.com/kxngzero329/Attendance-Tracker-Backend--Auth/common/logger"
)

// ResetTokenCleanupScheduler clears expired reset-token columns on a timer.
// Correctness never depends on it: every token check also compares expiry at
// read time. This only keeps stale digests from sitting in the table.
type ResetTokenCleanupScheduler struct {
	db       *sql.DB
	interval time.Duration
	log      *logger.Logger
	stopChan chan bool
}

// NewResetTokenCleanupScheduler creates a new scheduler
func NewResetTokenCleanupScheduler(intervalMinutes int) *ResetTokenCleanupScheduler {
	return &ResetTokenCleanupScheduler{
		db:       db.GetDB(),
		interval: time.Duration(intervalMinutes) * time.Minute,
		log:      logger.Default().With("component", "scheduler"),
		stopChan: make(chan bool),
	}
}

// Start begins the scheduled cleanup job
func (s *ResetTokenCleanupScheduler) Start() {
	s.log.Info("reset-token cleanup job started", "interval", s.interval)

	// Run immediately once at startup
	s.cleanupExpiredTokens()

	ticker := time.NewTicker(s.interval)
	go func() {
		for {
			select {
			case <-ticker.C:
				s.cleanupExpiredTokens()
			case <-s.stopChan:
				ticker.Stop()
				s.log.Info("reset-token cleanup job stopped")
				return
			}
		}
	}()
}

// Stop stops the scheduler
func (s *ResetTokenCleanupScheduler) Stop() {
	s.stopChan <- true
}

func (s *ResetTokenCleanupScheduler) cleanupExpiredTokens() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	query := `
		UPDATE accounts
		SET reset_token_hash = NULL, reset_expires = NULL
		WHERE reset_expires IS NOT NULL AND reset_expires < UTC_TIMESTAMP()
	`

	result, err := s.db.ExecContext(ctx, query)
	if err != nil {
		s.log.Error("failed to clear expired reset tokens", "error", err)
		return
	}

	if rows, err := result.RowsAffected(); err == nil && rows > 0 {
		s.log.Info("cleared expired reset tokens", "count", rows)
	}
}
