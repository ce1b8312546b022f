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
)

// partRepository implements the repository.PartRepository interface.
type partRepository struct {
	db *gorm.DB
}

// NewPartRepository is the constructor for partRepository.
func NewPartRepository(db *gorm.DB) repository.PartRepository {
	return &partRepository{
		db: db,
	}
}

// CreateParts persists one row per part line in a batch.
func (repo *partRepository) CreateParts(ctx context.Context, parts []*entity.Part) error {
	if len(parts) == 0 {
		return nil
	}

	partModels := make([]*model.PartModel, 0, len(parts))
	for _, part := range parts {
		partModels = append(partModels, fromPartDomain(part))
	}

	if err := repo.db.WithContext(ctx).CreateInBatches(partModels, 100).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid ticket reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create part lines")
	}

	for i, partM := range partModels {
		parts[i].ID = partM.ID
		parts[i].CreatedAt = partM.CreatedAt
	}

	return nil
}

// FindPartsByTicket retrieves all part lines attached to a ticket.
func (repo *partRepository) FindPartsByTicket(ctx context.Context, ticketID uuid.UUID) ([]*entity.Part, error) {
	var partModels []*model.PartModel

	if err := repo.db.WithContext(ctx).
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC").
		Find(&partModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find parts by ticket")
	}

	parts := make([]*entity.Part, 0, len(partModels))
	for _, partM := range partModels {
		parts = append(parts, toPartDomain(partM))
	}

	return parts, nil
}

// --- Mapper Functions ---

// toPartDomain converts a GORM PartModel to a domain Part entity.
func toPartDomain(data *model.PartModel) *entity.Part {
	if data == nil {
		return nil
	}

	return &entity.Part{
		ID:         data.ID,
		TicketID:   data.TicketID,
		Name:       data.Name,
		Quantity:   data.Quantity,
		UnitPrice:  data.UnitPrice,
		TaxPercent: data.TaxPercent,
		CreatedAt:  data.CreatedAt,
	}
}

// fromPartDomain converts a domain Part entity to a GORM PartModel.
func fromPartDomain(data *entity.Part) *model.PartModel {
	if data == nil {
		return nil
	}

	return &model.PartModel{
		ID:         data.ID,
		TicketID:   data.TicketID,
		Name:       data.Name,
		Quantity:   data.Quantity,
		UnitPrice:  data.UnitPrice,
		TaxPercent: data.TaxPercent,
		CreatedAt:  data.CreatedAt,
	}
}
