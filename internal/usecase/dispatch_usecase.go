package usecase

import (
	"context"

	"garage/internal/domain/entity"

	"github.com/google/uuid"
)

// DispatchItemResult records the outcome for one processed notification.
type DispatchItemResult struct {
	NotificationID uuid.UUID                 `json:"notification_id"`
	Channel        entity.Channel            `json:"channel"`
	Status         entity.NotificationStatus `json:"status"`
	Detail         string                    `json:"detail,omitempty"` // Skip reason or error text.
}

// DispatchResult aggregates one dispatcher invocation.
type DispatchResult struct {
	Processed int                  `json:"processed"`
	Sent      int                  `json:"sent"`
	Skipped   int                  `json:"skipped"`
	Failed    int                  `json:"failed"`
	Results   []DispatchItemResult `json:"results"`
}

// DispatchUsecase delivers due notifications through their channel providers.
type DispatchUsecase interface {
	// DispatchDue processes up to the configured batch of queued
	// notifications whose send time has arrived. Items are processed
	// independently: a failure on one never aborts its siblings, and every
	// processed item ends in a terminal status. There is no automatic
	// retry; a failed notification stays failed.
	DispatchDue(ctx context.Context) (*DispatchResult, error)

	// SendTest sends one immediate test message for a ticket and records it
	// as a notification row with a terminal status. The actor must hold the
	// admin role.
	SendTest(ctx context.Context, actor *Actor, ticketID uuid.UUID, channel entity.Channel, toAddress string) (*entity.Notification, error)
}
