package postgres

import (
	"context"
	"time"

	"garage/internal/domain/entity"
	domainerrors "garage/internal/domain/errors"
	"garage/internal/domain/repository"
	"garage/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// CreateNotification persists a new notification row.
func (repo *notificationRepository) CreateNotification(ctx context.Context, notification *entity.Notification) error {
	notificationM := fromNotificationDomain(notification)

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid ticket or customer reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	notification.ID = notificationM.ID
	notification.CreatedAt = notificationM.CreatedAt
	notification.UpdatedAt = notificationM.UpdatedAt

	return nil
}

// FindNotificationByID retrieves a notification by its unique ID.
func (repo *notificationRepository) FindNotificationByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error) {
	var notificationM model.NotificationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&notificationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotificationNotFound
		}

		return nil, errors.Wrap(err, "failed to find notification by ID")
	}

	return toNotificationDomain(&notificationM), nil
}

// FindDueNotifications reads the notifications_due view, which only contains
// queued rows, so terminal rows can never be picked up twice.
func (repo *notificationRepository) FindDueNotifications(ctx context.Context, now time.Time, limit int) ([]*entity.Notification, error) {
	var notificationModels []*model.NotificationModel

	if err := repo.db.WithContext(ctx).
		Table(model.NotificationsDueView).
		Where("send_at <= ?", now).
		Order("send_at ASC").
		Limit(limit).
		Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find due notifications")
	}

	notifications := make([]*entity.Notification, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		notifications = append(notifications, toNotificationDomain(notificationM))
	}

	return notifications, nil
}

// MarkSent moves a queued notification to sent, recording the rendered body.
func (repo *notificationRepository) MarkSent(ctx context.Context, id uuid.UUID, sentAt time.Time, body string) error {
	return repo.markTerminal(ctx, id, map[string]interface{}{
		"status":  string(entity.NotificationStatusSent),
		"sent_at": sentAt,
		"body":    body,
	})
}

// MarkSkipped moves a queued notification to skipped with the reason it was
// not delivered.
func (repo *notificationRepository) MarkSkipped(ctx context.Context, id uuid.UUID, reason string) error {
	return repo.markTerminal(ctx, id, map[string]interface{}{
		"status":       string(entity.NotificationStatusSkipped),
		"error_detail": reason,
	})
}

// MarkFailed moves a queued notification to failed with the provider error.
func (repo *notificationRepository) MarkFailed(ctx context.Context, id uuid.UUID, errorDetail, body string) error {
	updates := map[string]interface{}{
		"status":       string(entity.NotificationStatusFailed),
		"error_detail": errorDetail,
	}
	if body != "" {
		updates["body"] = body
	}

	return repo.markTerminal(ctx, id, updates)
}

func (repo *notificationRepository) markTerminal(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update notification status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toNotificationDomain converts a GORM NotificationModel to a domain Notification entity.
func toNotificationDomain(data *model.NotificationModel) *entity.Notification {
	if data == nil {
		return nil
	}

	return &entity.Notification{
		ID:          data.ID,
		TicketID:    data.TicketID,
		CustomerID:  data.CustomerID,
		Channel:     entity.Channel(data.Channel),
		Type:        entity.NotificationType(data.Type),
		Status:      entity.NotificationStatus(data.Status),
		Destination: data.Destination,
		Subject:     data.Subject,
		Body:        data.Body,
		SendAt:      data.SendAt,
		SentAt:      data.SentAt,
		ErrorDetail: data.ErrorDetail,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromNotificationDomain converts a domain Notification entity to a GORM NotificationModel.
func fromNotificationDomain(data *entity.Notification) *model.NotificationModel {
	if data == nil {
		return nil
	}

	return &model.NotificationModel{
		ID:          data.ID,
		TicketID:    data.TicketID,
		CustomerID:  data.CustomerID,
		Channel:     string(data.Channel),
		Type:        string(data.Type),
		Status:      string(data.Status),
		Destination: data.Destination,
		Subject:     data.Subject,
		Body:        data.Body,
		SendAt:      data.SendAt,
		SentAt:      data.SentAt,
		ErrorDetail: data.ErrorDetail,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
