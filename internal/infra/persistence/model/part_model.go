package model

import (
	"time"

	"github.com/google/uuid"
)

// PartModel is the GORM-specific struct for the 'parts' table. Each row is
// one priced part line on a ticket; tax applies per line.
type PartModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	TicketID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Name       string    `gorm:"type:text;not null"`
	Quantity   int       `gorm:"not null"`
	UnitPrice  float64   `gorm:"type:decimal(10,2);not null"`
	TaxPercent float64   `gorm:"type:decimal(5,2);not null;default:0"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (PartModel) TableName() string {
	return "parts"
}
