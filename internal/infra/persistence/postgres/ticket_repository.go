// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"
	"time"

	"garage/internal/domain/entity"
	domainerrors "garage/internal/domain/errors"
	"garage/internal/domain/repository"
	"garage/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ticketRepository implements the repository.TicketRepository interface.
type ticketRepository struct {
	db *gorm.DB
}

// NewTicketRepository is the constructor for ticketRepository.
func NewTicketRepository(db *gorm.DB) repository.TicketRepository {
	return &ticketRepository{
		db: db,
	}
}

// CreateTicket persists a new repair ticket.
func (repo *ticketRepository) CreateTicket(ctx context.Context, ticket *entity.Ticket) error {
	ticketM, err := fromTicketDomain(ticket)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(ticketM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid vehicle or customer reference")
		}
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("ticket number already in use")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create ticket")
	}

	ticket.ID = ticketM.ID
	ticket.CreatedAt = ticketM.CreatedAt
	ticket.UpdatedAt = ticketM.UpdatedAt

	return nil
}

// FindTicketByID retrieves a ticket by its unique ID.
func (repo *ticketRepository) FindTicketByID(ctx context.Context, id uuid.UUID) (*entity.Ticket, error) {
	var ticketM model.TicketModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&ticketM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTicketNotFound
		}

		return nil, errors.Wrap(err, "failed to find ticket by ID")
	}

	return toTicketDomain(&ticketM)
}

// SavePreferences writes the preference blob and the preferred pickup time
// onto the ticket, leaving every other column untouched.
func (repo *ticketRepository) SavePreferences(ctx context.Context, id uuid.UUID, prefs *entity.NotificationPrefs, pickupAt time.Time) error {
	blob, err := json.Marshal(prefs)
	if err != nil {
		return errors.Wrap(err, "failed to encode notification prefs")
	}

	result := repo.db.WithContext(ctx).
		Model(&model.TicketModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"notification_prefs":  blob,
			"preferred_pickup_at": pickupAt,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to save ticket preferences")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTicketNotFound
	}

	return nil
}

// UpdateTicket patches the mutable workorder fields. Nil patch fields are
// left unchanged.
func (repo *ticketRepository) UpdateTicket(ctx context.Context, id uuid.UUID, patch repository.TicketPatch) error {
	updates := map[string]interface{}{}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Status != nil {
		updates["status"] = string(*patch.Status)
	}
	if patch.EstimatedCompletion != nil {
		updates["estimated_completion"] = *patch.EstimatedCompletion
	}
	if patch.PrimaryMechanicID != nil {
		updates["primary_mechanic_id"] = *patch.PrimaryMechanicID
	}
	if patch.SecondaryMechanicID != nil {
		updates["secondary_mechanic_id"] = *patch.SecondaryMechanicID
	}
	if patch.LaborHours != nil {
		updates["labor_hours"] = *patch.LaborHours
	}
	if patch.LaborRate != nil {
		updates["labor_rate"] = *patch.LaborRate
	}
	if len(updates) == 0 {
		return nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.TicketModel{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update ticket")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTicketNotFound
	}

	return nil
}

// UpdateStatus transitions the ticket status.
func (repo *ticketRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.TicketStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.TicketModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update ticket status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTicketNotFound
	}

	return nil
}

// UpdateRescheduleDate moves the reschedule date.
func (repo *ticketRepository) UpdateRescheduleDate(ctx context.Context, id uuid.UUID, date time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.TicketModel{}).
		Where("id = ?", id).
		Update("reschedule_date", date)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update reschedule date")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTicketNotFound
	}

	return nil
}

// UpdateTotals persists a recomputed cost breakdown.
func (repo *ticketRepository) UpdateTotals(ctx context.Context, id uuid.UUID, totals repository.TicketTotals) error {
	result := repo.db.WithContext(ctx).
		Model(&model.TicketModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"parts_cost": totals.PartsCost,
			"tax_amount": totals.TaxAmount,
			"labor_cost": totals.LaborCost,
			"total_cost": totals.TotalCost,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update ticket totals")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTicketNotFound
	}

	return nil
}

// FindDueForReschedule retrieves tickets whose reschedule date falls in
// [from, to) and whose status still allows a missed-appointment move.
func (repo *ticketRepository) FindDueForReschedule(ctx context.Context, from, to time.Time) ([]*entity.Ticket, error) {
	var ticketModels []*model.TicketModel

	if err := repo.db.WithContext(ctx).
		Where("reschedule_date >= ? AND reschedule_date < ?", from, to).
		Where("status NOT IN ?", []string{
			string(entity.TicketStatusCompleted),
			string(entity.TicketStatusReadyForPickup),
		}).
		Order("reschedule_date ASC").
		Find(&ticketModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find tickets due for reschedule")
	}

	tickets := make([]*entity.Ticket, 0, len(ticketModels))
	for _, ticketM := range ticketModels {
		ticket, err := toTicketDomain(ticketM)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, ticket)
	}

	return tickets, nil
}

// CreateAssignment records a mechanic assignment.
func (repo *ticketRepository) CreateAssignment(ctx context.Context, assignment *entity.TicketAssignment) error {
	assignmentM := &model.TicketAssignmentModel{
		ID:         assignment.ID,
		TicketID:   assignment.TicketID,
		MechanicID: assignment.MechanicID,
		AssignedBy: assignment.AssignedBy,
		AssignedAt: assignment.AssignedAt,
	}

	if err := repo.db.WithContext(ctx).Create(assignmentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid ticket or mechanic reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create assignment")
	}

	assignment.ID = assignmentM.ID

	return nil
}

// --- Mapper Functions ---

// toTicketDomain converts a GORM TicketModel to a domain Ticket entity.
func toTicketDomain(data *model.TicketModel) (*entity.Ticket, error) {
	if data == nil {
		return nil, nil
	}

	ticket := &entity.Ticket{
		ID:                  data.ID,
		TicketNumber:        data.TicketNumber,
		Description:         data.Description,
		Status:              entity.TicketStatus(data.Status),
		VehicleID:           data.VehicleID,
		CustomerID:          data.CustomerID,
		PrimaryMechanicID:   data.PrimaryMechanicID,
		SecondaryMechanicID: data.SecondaryMechanicID,
		RescheduleDate:      data.RescheduleDate,
		PreferredPickupAt:   data.PreferredPickupAt,
		EstimatedCompletion: data.EstimatedCompletion,
		LaborHours:          data.LaborHours,
		LaborRate:           data.LaborRate,
		PartsCost:           data.PartsCost,
		LaborCost:           data.LaborCost,
		TaxAmount:           data.TaxAmount,
		TotalCost:           data.TotalCost,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}

	if len(data.NotificationPrefs) > 0 {
		var prefs entity.NotificationPrefs
		if err := json.Unmarshal(data.NotificationPrefs, &prefs); err != nil {
			return nil, errors.Wrap(err, "failed to decode notification prefs")
		}
		ticket.NotificationPrefs = &prefs
	}

	return ticket, nil
}

// fromTicketDomain converts a domain Ticket entity to a GORM TicketModel.
func fromTicketDomain(data *entity.Ticket) (*model.TicketModel, error) {
	if data == nil {
		return nil, nil
	}

	ticketM := &model.TicketModel{
		ID:                  data.ID,
		TicketNumber:        data.TicketNumber,
		Description:         data.Description,
		Status:              string(data.Status),
		VehicleID:           data.VehicleID,
		CustomerID:          data.CustomerID,
		PrimaryMechanicID:   data.PrimaryMechanicID,
		SecondaryMechanicID: data.SecondaryMechanicID,
		RescheduleDate:      data.RescheduleDate,
		PreferredPickupAt:   data.PreferredPickupAt,
		EstimatedCompletion: data.EstimatedCompletion,
		LaborHours:          data.LaborHours,
		LaborRate:           data.LaborRate,
		PartsCost:           data.PartsCost,
		LaborCost:           data.LaborCost,
		TaxAmount:           data.TaxAmount,
		TotalCost:           data.TotalCost,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}

	if data.NotificationPrefs != nil {
		blob, err := json.Marshal(data.NotificationPrefs)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode notification prefs")
		}
		ticketM.NotificationPrefs = blob
	}

	return ticketM, nil
}
