package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account in the profiles table: a customer, an employee
// (mechanic or front desk) or an admin. Roles live in user_roles.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	FullName     string    `json:"full_name"`
	Phone        string    `json:"phone"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
