package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"

	"github.com/kxngzero329/Attendance-Tracker-Backend--Auth/common/db"
	"github.com/kxngzero329/Attendance-Tracker-Backend--Auth/services/auth-lambda/models"
)

// ErrDuplicateEmail is returned when an insert violates the unique email
// index. Callers map it to a conflict response.
var ErrDuplicateEmail = errors.New("email already exists")

const mysqlDuplicateEntry = 1062

// AccountRepository handles account data access
type AccountRepository struct {
	db *sql.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		db: db.GetDB(),
	}
}

const accountColumns = `account_id, email, backup_email, full_name, phone, password_hash,
		failed_login_attempts, lock_until, reset_token_hash, reset_expires, created_at`

// FindByEmail finds an account by primary email. Returns (nil, nil) when no
// row matches.
func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	query := fmt.Sprintf(`SELECT %s FROM accounts WHERE email = ?`, accountColumns)

	row := r.db.QueryRowContext(ctx, query, email)
	return scanAccount(row)
}

func scanAccount(row *sql.Row) (*models.Account, error) {
	var (
		account        models.Account
		backupEmail    sql.NullString
		fullName       sql.NullString
		phone          sql.NullString
		lockUntil      sql.NullTime
		resetTokenHash sql.NullString
		resetExpires   sql.NullTime
	)

	err := row.Scan(
		&account.ID,
		&account.Email,
		&backupEmail,
		&fullName,
		&phone,
		&account.PasswordHash,
		&account.FailedLoginAttempts,
		&lockUntil,
		&resetTokenHash,
		&resetExpires,
		&account.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query account: %w", err)
	}

	account.BackupEmail = backupEmail.String
	account.FullName = fullName.String
	account.Phone = phone.String
	if lockUntil.Valid {
		t := lockUntil.Time
		account.LockUntil = &t
	}
	// Both columns are written together; treat a half-set pair as no token.
	if resetTokenHash.Valid && resetExpires.Valid {
		account.ResetToken = &models.ResetToken{
			Hash:    resetTokenHash.String,
			Expires: resetExpires.Time,
		}
	}

	return &account, nil
}

// ExistsByEmail checks if an account with this email already exists
func (r *AccountRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	query := `SELECT COUNT(*) FROM accounts WHERE email = ?`

	var count int
	err := r.db.QueryRowContext(ctx, query, email).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}

	return count > 0, nil
}

// Create inserts a new account. PasswordHash must already be hashed.
func (r *AccountRepository) Create(ctx context.Context, account *models.Account) (int, error) {
	query := `
		INSERT INTO accounts (email, backup_email, full_name, phone, password_hash, failed_login_attempts)
		VALUES (?, ?, ?, ?, ?, 0)
	`

	result, err := r.db.ExecContext(
		ctx,
		query,
		account.Email,
		nullable(account.BackupEmail),
		nullable(account.FullName),
		nullable(account.Phone),
		account.PasswordHash,
	)

	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
			return 0, ErrDuplicateEmail
		}
		return 0, fmt.Errorf("failed to create account: %w", err)
	}

	accountID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get last insert id: %w", err)
	}

	return int(accountID), nil
}

// UpdateLockState persists the lockout counter and lock expiry together so
// the two columns never diverge.
func (r *AccountRepository) UpdateLockState(ctx context.Context, email string, attempts int, lockUntil *time.Time) error {
	query := `UPDATE accounts SET failed_login_attempts = ?, lock_until = ? WHERE email = ?`

	_, err := r.db.ExecContext(ctx, query, attempts, lockUntil, email)
	if err != nil {
		return fmt.Errorf("failed to update lock state: %w", err)
	}

	return nil
}

// ClearLockout resets the counter and lock unconditionally. Returns whether
// a matching account existed.
func (r *AccountRepository) ClearLockout(ctx context.Context, email string) (bool, error) {
	query := `UPDATE accounts SET failed_login_attempts = 0, lock_until = NULL WHERE email = ?`

	result, err := r.db.ExecContext(ctx, query, email)
	if err != nil {
		return false, fmt.Errorf("failed to clear lockout: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}

	// RowsAffected is 0 both for a missing row and for an already-clear row;
	// callers that need the distinction look the account up first.
	return rows > 0, nil
}

// SetResetToken stores a reset-token digest and its expiry, replacing any
// previous token.
func (r *AccountRepository) SetResetToken(ctx context.Context, email, tokenHash string, expires time.Time) error {
	query := `UPDATE accounts SET reset_token_hash = ?, reset_expires = ? WHERE email = ?`

	result, err := r.db.ExecContext(ctx, query, tokenHash, expires, email)
	if err != nil {
		return fmt.Errorf("failed to set reset token: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return errors.New("account not found")
	}

	return nil
}

// UpdatePasswordAndClearResetToken writes the new password hash and clears
// both reset-token columns in one statement, keeping the token single-use.
func (r *AccountRepository) UpdatePasswordAndClearResetToken(ctx context.Context, email, passwordHash string) error {
	query := `
		UPDATE accounts
		SET password_hash = ?, reset_token_hash = NULL, reset_expires = NULL
		WHERE email = ?
	`

	result, err := r.db.ExecContext(ctx, query, passwordHash, email)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return errors.New("account not found")
	}

	return nil
}

func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
