package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationModel is the GORM-specific struct for the 'notifications' table.
// Status is queued until the dispatcher moves the row to exactly one of the
// terminal states (sent, skipped, failed).
type NotificationModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	TicketID    uuid.UUID `gorm:"type:uuid;not null;index"`
	CustomerID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Channel     string    `gorm:"type:text;not null"`
	Type        string    `gorm:"type:text;not null"`
	Status      string    `gorm:"type:text;not null;default:'queued';index:idx_notifications_status_send_at"`
	Destination string    `gorm:"type:text"`
	Subject     string    `gorm:"type:text"`
	Body        string    `gorm:"type:text"`
	SendAt      time.Time `gorm:"not null;index:idx_notifications_status_send_at"`
	SentAt      *time.Time
	ErrorDetail string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}

// NotificationsDueView is the name of the database view that pre-filters
// queued notifications. Terminal rows never appear in it, which is what makes
// the dispatcher idempotent across overlapping runs.
const NotificationsDueView = "notifications_due"
