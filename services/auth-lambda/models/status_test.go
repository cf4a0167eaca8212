package models

import (
	"testing"
	"time"
)

func TestStatusAt(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	future := now.Add(30 * time.Second)
	past := now.Add(-time.Second)

	tests := []struct {
		name       string
		lockUntil  *time.Time
		wantLocked bool
	}{
		{"No lock set", nil, false},
		{"Lock in the future", &future, true},
		{"Lock expired", &past, false},
		{"Lock exactly now", &now, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := StatusAt(tt.lockUntil, now)
			if status.Locked != tt.wantLocked {
				t.Errorf("StatusAt(...).Locked = %v, want %v", status.Locked, tt.wantLocked)
			}
		})
	}
}

func TestRemainingSeconds(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		until time.Time
		want  int
	}{
		{"Full window", now.Add(30 * time.Second), 30},
		{"Partial second rounds up", now.Add(500 * time.Millisecond), 1},
		{"Just over a boundary rounds up", now.Add(29*time.Second + time.Millisecond), 30},
		{"Exact seconds stay exact", now.Add(5 * time.Second), 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := StatusAt(&tt.until, now)
			if !status.Locked {
				t.Fatal("expected locked status")
			}
			if got := status.RemainingSeconds(now); got != tt.want {
				t.Errorf("RemainingSeconds = %d, want %d", got, tt.want)
			}
		})
	}

	t.Run("Unlocked status reports zero", func(t *testing.T) {
		if got := (AuthStatus{}).RemainingSeconds(now); got != 0 {
			t.Errorf("RemainingSeconds = %d, want 0", got)
		}
	})
}

func TestAccountStatusAt(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	until := now.Add(10 * time.Second)

	account := &Account{LockUntil: &until}
	if status := account.StatusAt(now); !status.Locked {
		t.Error("expected account to be locked")
	}

	// Lazy expiry: the same row becomes active once the clock passes the lock.
	later := until.Add(time.Second)
	if status := account.StatusAt(later); status.Locked {
		t.Error("expected lock to lapse without any write")
	}
}

func TestHasPendingReset(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		token *ResetToken
		want  bool
	}{
		{"No token", nil, false},
		{"Live token", &ResetToken{Hash: "abc", Expires: now.Add(30 * time.Minute)}, true},
		{"Expired token", &ResetToken{Hash: "abc", Expires: now.Add(-time.Minute)}, false},
		{"Expires exactly now", &ResetToken{Hash: "abc", Expires: now}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account := &Account{ResetToken: tt.token}
			if got := account.HasPendingReset(now); got != tt.want {
				t.Errorf("HasPendingReset = %v, want %v", got, tt.want)
			}
		})
	}
}
