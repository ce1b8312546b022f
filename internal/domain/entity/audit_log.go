package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuditLog records who changed what on a ticket.
type AuditLog struct {
	ID        uuid.UUID      `json:"id"`
	ActorID   uuid.UUID      `json:"actor_id"`
	TicketID  uuid.UUID      `json:"ticket_id"`
	Action    string         `json:"action"` // e.g. "workorder.create", "workorder.update".
	OldValues map[string]any `json:"old_values,omitempty"`
	NewValues map[string]any `json:"new_values,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}
