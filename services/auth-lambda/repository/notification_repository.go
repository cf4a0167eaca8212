package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/kxngzero329/Attendance-Tracker-Backend--Auth/common/db"
	"github.com/kxngzero329/Attendance-Tracker-Backend--Auth/services/auth-lambda/models"
)

// NotificationRepository handles the append-only notification log
type NotificationRepository struct {
	db *sql.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{
		db: db.GetDB(),
	}
}

// Insert appends a notification record
func (r *NotificationRepository) Insert(ctx context.Context, n models.Notification) error {
	query := `
		INSERT INTO notifications (notification_id, account_id, event_type, message)
		VALUES (?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query, n.ID, n.AccountID, n.EventType, n.Message)
	if err != nil {
		return fmt.Errorf("failed to insert notification: %w", err)
	}

	return nil
}

// ListByAccount returns an account's notifications, newest first
func (r *NotificationRepository) ListByAccount(ctx context.Context, accountID, limit int) ([]models.Notification, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT notification_id, account_id, event_type, message, created_at
		FROM notifications
		WHERE account_id = ?
		ORDER BY created_at DESC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, accountID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications: %w", err)
	}
	defer rows.Close()

	var notifications []models.Notification
	for rows.Next() {
		var n models.Notification
		err := rows.Scan(&n.ID, &n.AccountID, &n.EventType, &n.Message, &n.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		notifications = append(notifications, n)
	}

	return notifications, rows.Err()
}
