// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// TicketStatus represents the lifecycle state of a repair ticket.
type TicketStatus string

// Ticket lifecycle states. Tickets are never hard-deleted; they end in
// completed or cancelled.
const (
	TicketStatusPending        TicketStatus = "pending"
	TicketStatusApproved       TicketStatus = "approved"
	TicketStatusDeclined       TicketStatus = "declined"
	TicketStatusAssigned       TicketStatus = "assigned"
	TicketStatusInProgress     TicketStatus = "in_progress"
	TicketStatusAwaitingParts  TicketStatus = "awaiting_parts"
	TicketStatusReadyForPickup TicketStatus = "ready_for_pickup"
	TicketStatusCompleted      TicketStatus = "completed"
	TicketStatusCancelled      TicketStatus = "cancelled"
)

// NotificationPrefs is the per-ticket notification preference blob saved by
// the customer together with the preferred pickup time.
type NotificationPrefs struct {
	Channels       []Channel `json:"channels"`        // Requested delivery channels (non-empty).
	PrimaryChannel Channel   `json:"primary_channel"` // Must be a member of Channels.
	OptIn          bool      `json:"opt_in"`          // Master switch; false means nothing is sent.
	Language       string    `json:"language"`        // BCP-47-ish language tag, e.g. "en", "es".
	Timezone       string    `json:"timezone"`        // IANA timezone used to format pickup times.
}

// Ticket represents a repair job tracked through a fixed status lifecycle.
type Ticket struct {
	ID                 uuid.UUID          `json:"id"`
	TicketNumber       string             `json:"ticket_number"` // Human-readable, e.g. "WO-2024-0042".
	Description        string             `json:"description"`
	Status             TicketStatus       `json:"status"`
	VehicleID          uuid.UUID          `json:"vehicle_id"`
	CustomerID         uuid.UUID          `json:"customer_id"`
	PrimaryMechanicID  *uuid.UUID         `json:"primary_mechanic_id,omitempty"`
	SecondaryMechanicID *uuid.UUID        `json:"secondary_mechanic_id,omitempty"`
	RescheduleDate     *time.Time         `json:"reschedule_date,omitempty"`
	PreferredPickupAt  *time.Time         `json:"preferred_pickup_at,omitempty"`
	NotificationPrefs  *NotificationPrefs `json:"notification_prefs,omitempty"`
	EstimatedCompletion *time.Time        `json:"estimated_completion,omitempty"`
	LaborHours         float64            `json:"labor_hours"`
	LaborRate          float64            `json:"labor_rate"`
	PartsCost          float64            `json:"parts_cost"`
	LaborCost          float64            `json:"labor_cost"`
	TaxAmount          float64            `json:"tax_amount"`
	TotalCost          float64            `json:"total_cost"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

// IsClosedForReschedule reports whether the ticket is past the point where a
// missed-appointment sweep should touch it.
func (t *Ticket) IsClosedForReschedule() bool {
	return t.Status == TicketStatusCompleted || t.Status == TicketStatusReadyForPickup
}

// TicketAssignment records a mechanic being assigned to a ticket.
type TicketAssignment struct {
	ID         uuid.UUID `json:"id"`
	TicketID   uuid.UUID `json:"ticket_id"`
	MechanicID uuid.UUID `json:"mechanic_id"`
	AssignedBy uuid.UUID `json:"assigned_by"`
	AssignedAt time.Time `json:"assigned_at"`
}
