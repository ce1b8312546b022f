package model

import (
	"time"

	"github.com/google/uuid"
)

// AuditLogModel is the GORM-specific struct for the 'audit_logs' table.
// Old and new values are stored as JSONB blobs.
type AuditLogModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ActorID   uuid.UUID `gorm:"type:uuid;not null;index"`
	TicketID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Action    string    `gorm:"type:text;not null"`
	OldValues []byte    `gorm:"type:jsonb"`
	NewValues []byte    `gorm:"type:jsonb"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AuditLogModel) TableName() string {
	return "audit_logs"
}
