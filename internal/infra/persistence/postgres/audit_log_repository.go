package postgres

import (
	"context"
	"encoding/json"

	"garage/internal/domain/entity"
	domainerrors "garage/internal/domain/errors"
	"garage/internal/domain/repository"
	"garage/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// auditLogRepository implements the repository.AuditLogRepository interface.
type auditLogRepository struct {
	db *gorm.DB
}

// NewAuditLogRepository is the constructor for auditLogRepository.
func NewAuditLogRepository(db *gorm.DB) repository.AuditLogRepository {
	return &auditLogRepository{
		db: db,
	}
}

// CreateAuditLog records who changed what on a ticket.
func (repo *auditLogRepository) CreateAuditLog(ctx context.Context, log *entity.AuditLog) error {
	logM, err := fromAuditLogDomain(log)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create audit log")
	}

	log.ID = logM.ID
	log.CreatedAt = logM.CreatedAt

	return nil
}

// fromAuditLogDomain converts a domain AuditLog entity to a GORM AuditLogModel.
func fromAuditLogDomain(data *entity.AuditLog) (*model.AuditLogModel, error) {
	if data == nil {
		return nil, nil
	}

	logM := &model.AuditLogModel{
		ID:        data.ID,
		ActorID:   data.ActorID,
		TicketID:  data.TicketID,
		Action:    data.Action,
		CreatedAt: data.CreatedAt,
	}

	if data.OldValues != nil {
		blob, err := json.Marshal(data.OldValues)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode audit old values")
		}
		logM.OldValues = blob
	}
	if data.NewValues != nil {
		blob, err := json.Marshal(data.NewValues)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode audit new values")
		}
		logM.NewValues = blob
	}

	return logM, nil
}
