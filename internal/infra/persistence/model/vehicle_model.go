package model

import (
	"time"

	"github.com/google/uuid"
)

// VehicleModel is the GORM-specific struct for the 'vehicles' table.
type VehicleModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CustomerID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Make           string    `gorm:"type:text;not null"`
	Model          string    `gorm:"type:text;not null"`
	Year           int       `gorm:"not null;default:0"`
	LicensePlate   string    `gorm:"type:text"`
	LocationStatus string    `gorm:"type:text;not null;default:'with_customer'"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (VehicleModel) TableName() string {
	return "vehicles"
}
