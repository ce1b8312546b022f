package repository

import (
	"context"

	"garage/internal/domain/entity"
)

// AuditLogRepository records who changed what on a ticket.
type AuditLogRepository interface {
	CreateAuditLog(ctx context.Context, log *entity.AuditLog) error
}
