package usecase

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kxngzero329/Attendance-Tracker-Backend--Auth/common/config"
	"github.com/kxngzero329/Attendance-Tracker-Backend--Auth/common/errors"
	"github.com/kxngzero329/Attendance-Tracker-Backend--Auth/common/hash"
	"github.com/kxngzero329/Attendance-Tracker-Backend--Auth/common/jwt"
	"github.com/kxngzero329/Attendance-Tracker-Backend--Auth/common/logger"
	"github.com/kxngzero329/Attendance-Tracker-Backend--Auth/common/qrcode"
	"github.com/kxngzero329/Attendance-Tracker-Backend--Auth/common/token"
	"github.com/kxngzero329/Attendance-Tracker-Backend--Auth/common/validator"
	"github.com/kxngzero329/Attendance-Tracker-Backend--Auth/services/auth-lambda/models"
	"github.com/kxngzero329/Attendance-Tracker-Backend--Auth/services/auth-lambda/repository"
)

// GenericResetMessage is returned by ForgotPassword on every non-internal
// path, whether or not the account exists or the backup email matched, so
// the endpoint cannot be used to enumerate registered addresses.
const GenericResetMessage = "If an account exists for that email, a password reset link has been sent"

// AccountStore is the credential-store surface the auth service needs.
type AccountStore interface {
	FindByEmail(ctx context.Context, email string) (*models.Account, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, account *models.Account) (int, error)
	UpdateLockState(ctx context.Context, email string, attempts int, lockUntil *time.Time) error
	ClearLockout(ctx context.Context, email string) (bool, error)
	SetResetToken(ctx context.Context, email, tokenHash string, expires time.Time) error
	UpdatePasswordAndClearResetToken(ctx context.Context, email, passwordHash string) error
}

// AuthUseCase orchestrates registration, credential verification,
// progressive lockout, token-based password reset and manual unlock.
type AuthUseCase struct {
	cfg           config.AuthConfig
	store         AccountStore
	notifications NotificationStore
	notifier      Notifier
	policy        LockoutPolicy
	log           *logger.Logger

	// now is injectable so lockout-window tests can move the clock.
	now func() time.Time
}

// NewAuthUseCase creates a new auth use case
func NewAuthUseCase(cfg config.AuthConfig, store AccountStore, notifications NotificationStore, notifier Notifier) *AuthUseCase {
	return &AuthUseCase{
		cfg:           cfg,
		store:         store,
		notifications: notifications,
		notifier:      notifier,
		policy: LockoutPolicy{
			MaxFailedAttempts: cfg.MaxFailedAttempts,
			LockDuration:      cfg.LockDuration,
		},
		log: logger.Default().With("component", "auth"),
		now: time.Now,
	}
}

// Register handles user signup
func (uc *AuthUseCase) Register(ctx context.Context, req models.SignupRequest) (*models.Account, error) {
	if msg := validator.GetEmailError(req.Email); msg != "" {
		return nil, errors.ValidationError(msg)
	}
	if msg := validator.GetPasswordError(req.Password); msg != "" {
		return nil, errors.ValidationError(msg)
	}
	// Optional profile fields are validated only when supplied
	if req.FullName != "" {
		if msg := validator.GetFullNameError(req.FullName); msg != "" {
			return nil, errors.ValidationError(msg)
		}
	}
	if req.Phone != "" {
		if msg := validator.GetPhoneError(req.Phone); msg != "" {
			return nil, errors.ValidationError(msg)
		}
	}
	if req.BackupEmail != "" {
		if msg := validator.GetEmailError(req.BackupEmail); msg != "" {
			return nil, errors.ValidationError("Backup email is not valid")
		}
	}

	exists, err := uc.store.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, errors.DatabaseError(err)
	}
	if exists {
		return nil, errors.EmailAlreadyExists()
	}

	passwordHash, err := hash.HashPassword(req.Password)
	if err != nil {
		return nil, errors.Internal("failed to hash password").WithCause(err)
	}

	account := &models.Account{
		Email:        req.Email,
		BackupEmail:  req.BackupEmail,
		FullName:     req.FullName,
		Phone:        req.Phone,
		PasswordHash: passwordHash,
	}

	accountID, err := uc.store.Create(ctx, account)
	if err != nil {
		// The exists-check races with concurrent signups; the unique index
		// is the authority.
		if stderrors.Is(err, repository.ErrDuplicateEmail) {
			return nil, errors.EmailAlreadyExists()
		}
		return nil, errors.DatabaseError(err)
	}
	account.ID = accountID

	uc.notifier.Notify(Event{
		AccountID: accountID,
		Email:     account.Email,
		Name:      account.FullName,
		Type:      EventWelcome,
		Message:   "Account created",
	})

	uc.log.Info("account registered", "accountId", accountID)
	return account, nil
}

// Login verifies credentials, applies the lockout policy and issues an
// access token.
func (uc *AuthUseCase) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	if strings.TrimSpace(req.Email) == "" {
		return nil, errors.MissingField("Email")
	}
	if req.Password == "" {
		return nil, errors.MissingField("Password")
	}

	account, err := uc.store.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, errors.DatabaseError(err)
	}
	if account == nil {
		// Same response as a wrong password; do not reveal which it was
		return nil, errors.InvalidCredentials()
	}

	now := uc.now()

	// Lock check comes strictly before password verification. A locked
	// attempt is rejected even with the correct password and never touches
	// the counter.
	if status := uc.policy.Status(account.LockUntil, now); status.Locked {
		return nil, errors.AccountLocked(status.RemainingSeconds(now))
	}

	if !hash.VerifyPassword(req.Password, account.PasswordHash) {
		attempts, lockUntil := uc.policy.OnFailure(account.FailedLoginAttempts, now)
		if err := uc.store.UpdateLockState(ctx, account.Email, attempts, lockUntil); err != nil {
			return nil, errors.DatabaseError(err)
		}
		if lockUntil != nil {
			uc.log.Warn("account locked after failed logins", "accountId", account.ID, "attempts", attempts)
			return nil, errors.AccountJustLocked(models.StatusAt(lockUntil, now).RemainingSeconds(now))
		}
		return nil, errors.InvalidCredentials()
	}

	// Success transition: clear any stale counter or expired lock
	if account.FailedLoginAttempts > 0 || account.LockUntil != nil {
		attempts, lockUntil := uc.policy.OnSuccess()
		if err := uc.store.UpdateLockState(ctx, account.Email, attempts, lockUntil); err != nil {
			return nil, errors.DatabaseError(err)
		}
	}

	accessToken, err := jwt.GenerateTokenWithTTL(account.ID, account.Email, uc.cfg.AccessTokenTTL)
	if err != nil {
		return nil, errors.Internal("failed to generate token").WithCause(err)
	}

	uc.notifier.Notify(Event{
		AccountID: account.ID,
		Email:     account.Email,
		Type:      EventLogin,
		Message:   "Signed in",
	})

	return &models.LoginResponse{Token: accessToken}, nil
}

// ForgotPassword issues a single-use reset token and mails a reset link.
// The response is identical for unknown emails, backup-email mismatches and
// delivery failures.
func (uc *AuthUseCase) ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) (string, error) {
	if msg := validator.GetEmailError(req.Email); msg != "" {
		return "", errors.ValidationError(msg)
	}

	account, err := uc.store.FindByEmail(ctx, req.Email)
	if err != nil {
		return "", errors.DatabaseError(err)
	}
	if account == nil {
		return GenericResetMessage, nil
	}

	// Target selection happens before any token state is written: a
	// mismatched backup email must not overwrite a previously issued token.
	deliverTo := account.Email
	if req.BackupEmail != "" {
		if account.BackupEmail == "" || !strings.EqualFold(req.BackupEmail, account.BackupEmail) {
			return GenericResetMessage, nil
		}
		deliverTo = account.BackupEmail
	}

	now := uc.now()
	rawToken, digest, expires, err := token.Issue(now, uc.cfg.ResetTokenTTL)
	if err != nil {
		return "", errors.Internal("failed to issue reset token").WithCause(err)
	}

	if err := uc.store.SetResetToken(ctx, account.Email, digest, expires); err != nil {
		return "", errors.DatabaseError(err)
	}

	resetLink := fmt.Sprintf("%s/reset-password?token=%s&email=%s",
		strings.TrimRight(uc.cfg.FrontendOrigin, "/"),
		url.QueryEscape(rawToken),
		url.QueryEscape(deliverTo),
	)

	qrDataURI, err := qrcode.GenerateResetLinkQRBase64(resetLink, 220)
	if err != nil {
		// The link alone is enough; the QR is a convenience
		uc.log.Warn("failed to generate reset-link QR", "accountId", account.ID, "error", err)
		qrDataURI = ""
	}

	uc.notifier.Notify(Event{
		AccountID: account.ID,
		Email:     account.Email,
		Type:      EventResetRequested,
		Message:   "Password reset requested",
		ResetLink: resetLink,
		QRDataURI: qrDataURI,
		DeliverTo: deliverTo,
	})

	uc.log.Info("reset token issued", "accountId", account.ID)
	return GenericResetMessage, nil
}

// ResetPassword consumes a reset token and stores the new password.
func (uc *AuthUseCase) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error {
	if strings.TrimSpace(req.Email) == "" {
		return errors.MissingField("Email")
	}
	if req.Token == "" {
		return errors.MissingField("Token")
	}
	if msg := validator.GetPasswordError(req.NewPassword); msg != "" {
		return errors.ValidationError(msg)
	}

	account, err := uc.store.FindByEmail(ctx, req.Email)
	if err != nil {
		return errors.DatabaseError(err)
	}
	// Missing account, missing token, digest mismatch and expiry all share
	// one response
	if account == nil || account.ResetToken == nil {
		return errors.ResetTokenInvalid()
	}
	if !token.Matches(req.Token, account.ResetToken.Hash) {
		return errors.ResetTokenInvalid()
	}
	if account.ResetToken.ExpiredAt(uc.now()) {
		return errors.ResetTokenInvalid()
	}

	passwordHash, err := hash.HashPassword(req.NewPassword)
	if err != nil {
		return errors.Internal("failed to hash password").WithCause(err)
	}

	// One statement: password update and token clearing are atomic, so the
	// token can never be replayed against the new password
	if err := uc.store.UpdatePasswordAndClearResetToken(ctx, account.Email, passwordHash); err != nil {
		return errors.DatabaseError(err)
	}

	uc.notifier.Notify(Event{
		AccountID: account.ID,
		Email:     account.Email,
		Type:      EventPasswordReset,
		Message:   "Password changed",
	})

	uc.log.Info("password reset completed", "accountId", account.ID)
	return nil
}

// UnlockAccount clears the lockout state for an account. Unknown emails are
// a silent no-op success, matching the anti-enumeration stance elsewhere.
func (uc *AuthUseCase) UnlockAccount(ctx context.Context, req models.UnlockAccountRequest) error {
	if strings.TrimSpace(req.Email) == "" {
		return errors.MissingField("Email")
	}

	account, err := uc.store.FindByEmail(ctx, req.Email)
	if err != nil {
		return errors.DatabaseError(err)
	}
	if account == nil {
		return nil
	}

	if _, err := uc.store.ClearLockout(ctx, account.Email); err != nil {
		return errors.DatabaseError(err)
	}

	uc.notifier.Notify(Event{
		AccountID: account.ID,
		Email:     account.Email,
		Type:      EventUnlocked,
		Message:   "Account unlocked",
	})

	uc.log.Info("account unlocked", "accountId", account.ID)
	return nil
}

// ListNotifications returns the account's recorded auth events, newest
// first.
func (uc *AuthUseCase) ListNotifications(ctx context.Context, accountID int) ([]models.Notification, error) {
	notifications, err := uc.notifications.ListByAccount(ctx, accountID, 50)
	if err != nil {
		return nil, errors.DatabaseError(err)
	}
	return notifications, nil
}
