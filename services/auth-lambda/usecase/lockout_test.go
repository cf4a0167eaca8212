package usecase

import (
	"testing"
	"time"
)

func TestLockoutPolicyOnFailure(t *testing.T) {
	policy := LockoutPolicy{MaxFailedAttempts: 3, LockDuration: 30 * time.Second}
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		current      int
		wantAttempts int
		wantLocked   bool
	}{
		{"First failure", 0, 1, false},
		{"Second failure", 1, 2, false},
		{"Third failure engages lock", 2, 3, true},
		{"Failure past threshold keeps lock", 3, 4, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attempts, lockUntil := policy.OnFailure(tt.current, now)
			if attempts != tt.wantAttempts {
				t.Errorf("attempts = %d, want %d", attempts, tt.wantAttempts)
			}
			if (lockUntil != nil) != tt.wantLocked {
				t.Errorf("lockUntil set = %v, want %v", lockUntil != nil, tt.wantLocked)
			}
			if lockUntil != nil {
				want := now.Add(policy.LockDuration)
				if !lockUntil.Equal(want) {
					t.Errorf("lockUntil = %v, want %v", lockUntil, want)
				}
			}
		})
	}
}

func TestLockoutPolicyOnSuccess(t *testing.T) {
	policy := LockoutPolicy{MaxFailedAttempts: 3, LockDuration: 30 * time.Second}

	attempts, lockUntil := policy.OnSuccess()
	if attempts != 0 {
		t.Errorf("attempts = %d, want 0", attempts)
	}
	if lockUntil != nil {
		t.Errorf("lockUntil = %v, want nil", lockUntil)
	}
}

func TestLockoutPolicyStatus(t *testing.T) {
	policy := LockoutPolicy{MaxFailedAttempts: 3, LockDuration: 30 * time.Second}
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Active when no lock", func(t *testing.T) {
		if status := policy.Status(nil, now); status.Locked {
			t.Error("expected active status")
		}
	})

	t.Run("Locked within window", func(t *testing.T) {
		until := now.Add(15 * time.Second)
		status := policy.Status(&until, now)
		if !status.Locked {
			t.Fatal("expected locked status")
		}
		if got := status.RemainingSeconds(now); got != 15 {
			t.Errorf("RemainingSeconds = %d, want 15", got)
		}
	})

	t.Run("Active once lock lapses", func(t *testing.T) {
		until := now.Add(-time.Second)
		if status := policy.Status(&until, now); status.Locked {
			t.Error("expected lapsed lock to read as active")
		}
	})
}
