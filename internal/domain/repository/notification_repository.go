package repository

import (
	"context"
	"errors"
	"time"

	"garage/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrNotificationNotFound is returned when a notification is not found.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository defines the notification-related database
// operations. Due selection is served by the notifications_due view, which
// filters on status = queued; rows already sent, skipped or failed are never
// selected again.
type NotificationRepository interface {
	// CreateNotification persists a new scheduled notification.
	CreateNotification(ctx context.Context, notification *entity.Notification) error

	// FindNotificationByID retrieves a notification by its unique ID.
	FindNotificationByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error)

	// FindDueNotifications retrieves up to limit queued notifications whose
	// send_at is at or before now, oldest first.
	FindDueNotifications(ctx context.Context, now time.Time, limit int) ([]*entity.Notification, error)

	// MarkSent moves a notification to the terminal sent status, recording
	// the delivery time and the rendered body.
	MarkSent(ctx context.Context, id uuid.UUID, sentAt time.Time, body string) error

	// MarkSkipped moves a notification to the terminal skipped status.
	MarkSkipped(ctx context.Context, id uuid.UUID, reason string) error

	// MarkFailed moves a notification to the terminal failed status,
	// recording the error and whatever body was rendered.
	MarkFailed(ctx context.Context, id uuid.UUID, errorDetail, body string) error
}
