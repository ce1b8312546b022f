package postgres

import (
	"context"

	"garage/internal/domain/entity"
	domainerrors "garage/internal/domain/errors"
	"garage/internal/domain/repository"
	"garage/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// customerProfileRepository implements the repository.CustomerProfileRepository interface.
type customerProfileRepository struct {
	db *gorm.DB
}

// NewCustomerProfileRepository is the constructor for customerProfileRepository.
func NewCustomerProfileRepository(db *gorm.DB) repository.CustomerProfileRepository {
	return &customerProfileRepository{
		db: db,
	}
}

// UpsertProfile inserts the profile or updates the updatable columns when a
// row for the customer already exists. created_at is never overwritten.
func (repo *customerProfileRepository) UpsertProfile(ctx context.Context, profile *entity.CustomerProfile) error {
	profileM := fromCustomerProfileDomain(profile)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "customer_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"email",
				"phone",
				"whatsapp_number",
				"fcm_token",
				"language",
				"timezone",
				"opt_in",
				"preferred_channel",
				"updated_at",
			}),
		}).
		Create(profileM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid customer reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert customer profile")
	}

	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// FindProfileByCustomerID retrieves the profile for a customer.
func (repo *customerProfileRepository) FindProfileByCustomerID(ctx context.Context, customerID uuid.UUID) (*entity.CustomerProfile, error) {
	var profileM model.CustomerProfileModel

	if err := repo.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer profile")
	}

	return toCustomerProfileDomain(&profileM), nil
}

// --- Mapper Functions ---

// toCustomerProfileDomain converts a GORM CustomerProfileModel to a domain CustomerProfile entity.
func toCustomerProfileDomain(data *model.CustomerProfileModel) *entity.CustomerProfile {
	if data == nil {
		return nil
	}

	return &entity.CustomerProfile{
		CustomerID:       data.CustomerID,
		Email:            data.Email,
		Phone:            data.Phone,
		WhatsAppNumber:   data.WhatsAppNumber,
		FCMToken:         data.FCMToken,
		Language:         data.Language,
		Timezone:         data.Timezone,
		OptIn:            data.OptIn,
		PreferredChannel: entity.Channel(data.PreferredChannel),
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

// fromCustomerProfileDomain converts a domain CustomerProfile entity to a GORM CustomerProfileModel.
func fromCustomerProfileDomain(data *entity.CustomerProfile) *model.CustomerProfileModel {
	if data == nil {
		return nil
	}

	return &model.CustomerProfileModel{
		CustomerID:       data.CustomerID,
		Email:            data.Email,
		Phone:            data.Phone,
		WhatsAppNumber:   data.WhatsAppNumber,
		FCMToken:         data.FCMToken,
		Language:         data.Language,
		Timezone:         data.Timezone,
		OptIn:            data.OptIn,
		PreferredChannel: string(data.PreferredChannel),
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}
