package usecase

import (
	"time"

	"github.com/kxngzero329/Attendance-Tracker-Backend--Auth/services/auth-lambda/models"
)

// LockoutPolicy is the pure decision logic over the failed-attempt counter
// and lock expiry. It holds no state and never touches storage; the use case
// persists whatever it decides.
type LockoutPolicy struct {
	MaxFailedAttempts int
	LockDuration      time.Duration
}

// OnFailure computes the state after a failed credential check: the counter
// increments, and the lock engages when the counter reaches the threshold.
func (p LockoutPolicy) OnFailure(currentAttempts int, now time.Time) (attempts int, lockUntil *time.Time) {
	attempts = currentAttempts + 1
	if attempts >= p.MaxFailedAttempts {
		until := now.Add(p.LockDuration)
		return attempts, &until
	}
	return attempts, nil
}

// OnSuccess computes the state after a successful credential check or an
// explicit unlock: counter and lock are cleared together.
func (p LockoutPolicy) OnSuccess() (attempts int, lockUntil *time.Time) {
	return 0, nil
}

// Status evaluates the lock lazily at the given instant. An expired
// lock_until means the account is Active; no write is required to clear it.
func (p LockoutPolicy) Status(lockUntil *time.Time, now time.Time) models.AuthStatus {
	return models.StatusAt(lockUntil, now)
}
