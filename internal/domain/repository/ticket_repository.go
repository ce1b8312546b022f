// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"garage/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTicketNotFound is returned when a ticket is not found.
var ErrTicketNotFound = errors.New("ticket not found")

// TicketPatch carries the mutable workorder fields. Nil pointers mean
// "leave unchanged".
type TicketPatch struct {
	Description         *string
	Status              *entity.TicketStatus
	EstimatedCompletion *time.Time
	PrimaryMechanicID   *uuid.UUID
	SecondaryMechanicID *uuid.UUID
	LaborHours          *float64
	LaborRate           *float64
}

// TicketTotals is the recomputed cost breakdown persisted onto a ticket.
type TicketTotals struct {
	PartsCost float64
	TaxAmount float64
	LaborCost float64
	TotalCost float64
}

// TicketRepository defines the ticket-related database operations the
// notification pipeline and the workorder orchestrator need.
type TicketRepository interface {
	// CreateTicket persists a new repair ticket.
	CreateTicket(ctx context.Context, ticket *entity.Ticket) error

	// FindTicketByID retrieves a ticket by its unique ID.
	FindTicketByID(ctx context.Context, id uuid.UUID) (*entity.Ticket, error)

	// SavePreferences writes the notification preference blob and the
	// preferred pickup time onto the ticket, leaving other fields untouched.
	SavePreferences(ctx context.Context, id uuid.UUID, prefs *entity.NotificationPrefs, pickupAt time.Time) error

	// UpdateTicket patches the mutable workorder fields.
	UpdateTicket(ctx context.Context, id uuid.UUID, patch TicketPatch) error

	// UpdateStatus transitions the ticket status.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.TicketStatus) error

	// UpdateRescheduleDate moves the reschedule date.
	UpdateRescheduleDate(ctx context.Context, id uuid.UUID, date time.Time) error

	// UpdateTotals persists a recomputed cost breakdown.
	UpdateTotals(ctx context.Context, id uuid.UUID, totals TicketTotals) error

	// FindDueForReschedule retrieves tickets whose reschedule date falls in
	// [from, to) and whose status is neither completed nor ready_for_pickup.
	FindDueForReschedule(ctx context.Context, from, to time.Time) ([]*entity.Ticket, error)

	// CreateAssignment records a mechanic assignment.
	CreateAssignment(ctx context.Context, assignment *entity.TicketAssignment) error
}
