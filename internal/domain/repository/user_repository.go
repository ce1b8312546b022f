package repository

import (
	"context"
	"errors"

	"garage/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines lookups against the profiles and user_roles tables.
type UserRepository interface {
	// FindUserByID retrieves a user by its unique ID.
	FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindUserByEmail retrieves a user by email address.
	FindUserByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindRolesByUserID retrieves the role names granted to a user.
	FindRolesByUserID(ctx context.Context, userID uuid.UUID) ([]string, error)
}
