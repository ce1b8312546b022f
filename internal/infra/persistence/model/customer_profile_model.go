package model

import (
	"time"

	"github.com/google/uuid"
)

// CustomerProfileModel is the GORM-specific struct for the 'customer_profiles'
// table. One row per customer; preference saves upsert it by customer_id.
type CustomerProfileModel struct {
	CustomerID       uuid.UUID `gorm:"type:uuid;primary_key"`
	Email            string    `gorm:"type:text"`
	Phone            string    `gorm:"type:text"`
	WhatsAppNumber   string    `gorm:"column:whatsapp_number;type:text"`
	FCMToken         string    `gorm:"column:fcm_token;type:text"`
	Language         string    `gorm:"type:text;not null;default:'en'"`
	Timezone         string    `gorm:"type:text;not null;default:'UTC'"`
	OptIn            bool      `gorm:"not null;default:false"`
	PreferredChannel string    `gorm:"type:text;not null;default:'email'"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (CustomerProfileModel) TableName() string {
	return "customer_profiles"
}
