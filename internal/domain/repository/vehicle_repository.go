package repository

import (
	"context"
	"errors"

	"garage/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrVehicleNotFound is returned when a vehicle is not found.
var ErrVehicleNotFound = errors.New("vehicle not found")

// VehicleRepository defines vehicle lookups.
type VehicleRepository interface {
	// FindVehicleByID retrieves a vehicle by its unique ID.
	FindVehicleByID(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error)
}
