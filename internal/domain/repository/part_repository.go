package repository

import (
	"context"

	"garage/internal/domain/entity"

	"github.com/google/uuid"
)

// PartRepository defines the part-line operations used by the workorder
// orchestrator.
type PartRepository interface {
	// CreateParts persists one row per part line in a batch.
	CreateParts(ctx context.Context, parts []*entity.Part) error

	// FindPartsByTicket retrieves all part lines attached to a ticket.
	FindPartsByTicket(ctx context.Context, ticketID uuid.UUID) ([]*entity.Part, error)
}
