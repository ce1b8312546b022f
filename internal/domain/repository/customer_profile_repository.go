package repository

import (
	"context"
	"errors"

	"garage/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProfileNotFound is returned when a customer profile is not found.
var ErrProfileNotFound = errors.New("customer profile not found")

// CustomerProfileRepository defines the customer notification profile
// operations.
type CustomerProfileRepository interface {
	// UpsertProfile inserts the profile or, if a row for the customer
	// already exists, updates the updatable fields (contact addresses,
	// locale, timezone, opt-in, preferred channel, FCM token) with
	// last-write-wins semantics. created_at is never overwritten.
	UpsertProfile(ctx context.Context, profile *entity.CustomerProfile) error

	// FindProfileByCustomerID retrieves the profile for a customer.
	FindProfileByCustomerID(ctx context.Context, customerID uuid.UUID) (*entity.CustomerProfile, error)
}
