package models

import "time"

// Account represents a registered user's credential record
type Account struct {
	ID                  int         `json:"id" db:"account_id"`
	Email               string      `json:"email" db:"email"`
	BackupEmail         string      `json:"backupEmail,omitempty" db:"backup_email"`
	FullName            string      `json:"fullName,omitempty" db:"full_name"`
	Phone               string      `json:"phone,omitempty" db:"phone"`
	PasswordHash        string      `json:"-" db:"password_hash"`
	FailedLoginAttempts int         `json:"-" db:"failed_login_attempts"`
	LockUntil           *time.Time  `json:"-" db:"lock_until"`
	ResetToken          *ResetToken `json:"-"`
	CreatedAt           time.Time   `json:"createdAt" db:"created_at"`
}

// ResetToken is the stored one-shot password-reset state. Hash and Expires
// are set together and consumed together; a nil ResetToken means no reset
// is pending.
type ResetToken struct {
	Hash    string
	Expires time.Time
}

// ExpiredAt reports whether the token is no longer valid at the given time.
func (t *ResetToken) ExpiredAt(now time.Time) bool {
	return !now.Before(t.Expires)
}

// SignupRequest represents the signup request body
type SignupRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	FullName    string `json:"name,omitempty"`
	Phone       string `json:"phone,omitempty"`
	BackupEmail string `json:"backupEmail,omitempty"`
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ForgotPasswordRequest represents the forgot-password request body
type ForgotPasswordRequest struct {
	Email       string `json:"email"`
	BackupEmail string `json:"backupEmail,omitempty"`
}

// ResetPasswordRequest represents the reset-password request body
type ResetPasswordRequest struct {
	Email       string `json:"email"`
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

// UnlockAccountRequest represents the unlock-account request body
type UnlockAccountRequest struct {
	Email string `json:"email"`
}

// LoginResponse carries the issued access token
type LoginResponse struct {
	Token string `json:"token"`
}

// Notification is one append-only record of a user-facing auth event
type Notification struct {
	ID        string    `json:"id" db:"notification_id"`
	AccountID int       `json:"accountId" db:"account_id"`
	EventType string    `json:"eventType" db:"event_type"`
	Message   string    `json:"message" db:"message"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
