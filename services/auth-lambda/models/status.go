package models

import (
	"time"
)

// AuthStatus is the explicit auth state of an account at a point in time.
// Lock expiry is evaluated lazily: a row whose lock_until has passed is
// Active without any write having cleared it.
type AuthStatus struct {
	Locked bool
	Until  time.Time
}

// StatusAt derives the tagged auth status from the nullable lock column.
func StatusAt(lockUntil *time.Time, now time.Time) AuthStatus {
	if lockUntil != nil && lockUntil.After(now) {
		return AuthStatus{Locked: true, Until: *lockUntil}
	}
	return AuthStatus{}
}

// RemainingSeconds reports how long the lock still holds, rounded up so a
// just-locked account never reports zero.
func (s AuthStatus) RemainingSeconds(now time.Time) int {
	if !s.Locked {
		return 0
	}
	remaining := s.Until.Sub(now)
	if remaining <= 0 {
		return 0
	}
	secs := int((remaining + time.Second - 1) / time.Second)
	return secs
}

// StatusAt returns the account's auth status at the given time.
func (a *Account) StatusAt(now time.Time) AuthStatus {
	return StatusAt(a.LockUntil, now)
}

// HasPendingReset reports whether an unexpired reset token is stored.
// PendingReset overlays either auth status; it never affects login.
func (a *Account) HasPendingReset(now time.Time) bool {
	return a.ResetToken != nil && !a.ResetToken.ExpiredAt(now)
}
