package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileModel is the GORM-specific struct for the 'profiles' table, which
// holds every account: customers, employees and admins.
type ProfileModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email        string    `gorm:"type:text;not null;uniqueIndex"`
	FullName     string    `gorm:"type:text;not null"`
	Phone        string    `gorm:"type:text"`
	PasswordHash string    `gorm:"type:text;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}

// UserRoleModel is the GORM-specific struct for the 'user_roles' table.
// A user may hold several roles.
type UserRoleModel struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index"`
	Role   string    `gorm:"type:text;not null"`
}

// TableName explicitly sets the table name for GORM.
func (UserRoleModel) TableName() string {
	return "user_roles"
}
