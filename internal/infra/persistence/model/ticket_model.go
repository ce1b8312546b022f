// Package model contains the GORM-specific structs mapped to database tables.
package model

import (
	"time"

	"github.com/google/uuid"
)

// TicketModel is the GORM-specific struct for the 'tickets' table.
// The notification preference blob is stored as JSONB next to the preferred
// pickup time so the dispatcher can read both in one row.
type TicketModel struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	TicketNumber        string     `gorm:"type:text;not null;uniqueIndex"`
	Description         string     `gorm:"type:text;not null"`
	Status              string     `gorm:"type:text;not null;default:'pending';index"`
	VehicleID           uuid.UUID  `gorm:"type:uuid;not null;index"`
	CustomerID          uuid.UUID  `gorm:"type:uuid;not null;index"`
	PrimaryMechanicID   *uuid.UUID `gorm:"type:uuid"`
	SecondaryMechanicID *uuid.UUID `gorm:"type:uuid"`
	RescheduleDate      *time.Time `gorm:"index"`
	PreferredPickupAt   *time.Time
	NotificationPrefs   []byte `gorm:"type:jsonb"`
	EstimatedCompletion *time.Time
	LaborHours          float64 `gorm:"type:decimal(6,2);not null;default:0"`
	LaborRate           float64 `gorm:"type:decimal(8,2);not null;default:0"`
	PartsCost           float64 `gorm:"type:decimal(10,2);not null;default:0"`
	LaborCost           float64 `gorm:"type:decimal(10,2);not null;default:0"`
	TaxAmount           float64 `gorm:"type:decimal(10,2);not null;default:0"`
	TotalCost           float64 `gorm:"type:decimal(10,2);not null;default:0"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (TicketModel) TableName() string {
	return "tickets"
}

// TicketAssignmentModel is the GORM-specific struct for the 'ticket_assignments' table.
type TicketAssignmentModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	TicketID   uuid.UUID `gorm:"type:uuid;not null;index"`
	MechanicID uuid.UUID `gorm:"type:uuid;not null;index"`
	AssignedBy uuid.UUID `gorm:"type:uuid;not null"`
	AssignedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (TicketAssignmentModel) TableName() string {
	return "ticket_assignments"
}
