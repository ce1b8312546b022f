package postgres

import (
	"context"

	"garage/internal/domain/entity"
	"garage/internal/domain/repository"
	"garage/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// vehicleRepository implements the repository.VehicleRepository interface.
type vehicleRepository struct {
	db *gorm.DB
}

// NewVehicleRepository is the constructor for vehicleRepository.
func NewVehicleRepository(db *gorm.DB) repository.VehicleRepository {
	return &vehicleRepository{
		db: db,
	}
}

// FindVehicleByID retrieves a vehicle by its unique ID.
func (repo *vehicleRepository) FindVehicleByID(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error) {
	var vehicleM model.VehicleModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&vehicleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVehicleNotFound
		}

		return nil, errors.Wrap(err, "failed to find vehicle by ID")
	}

	return toVehicleDomain(&vehicleM), nil
}

// --- Mapper Functions ---

// toVehicleDomain converts a GORM VehicleModel to a domain Vehicle entity.
func toVehicleDomain(data *model.VehicleModel) *entity.Vehicle {
	if data == nil {
		return nil
	}

	return &entity.Vehicle{
		ID:             data.ID,
		CustomerID:     data.CustomerID,
		Make:           data.Make,
		Model:          data.Model,
		Year:           data.Year,
		LicensePlate:   data.LicensePlate,
		LocationStatus: entity.VehicleLocation(data.LocationStatus),
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
