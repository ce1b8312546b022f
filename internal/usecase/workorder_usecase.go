package usecase

import (
	"context"
	"time"

	"garage/internal/domain/entity"

	"github.com/google/uuid"
)

// Workorder actions accepted by the orchestrator.
const (
	WorkorderActionCreate         = "create"
	WorkorderActionUpdate         = "update"
	WorkorderActionAssign         = "assign"
	WorkorderActionAddParts       = "add_parts"
	WorkorderActionCalculateTotal = "calculate_total"
)

// Actor identifies the authenticated caller.
type Actor struct {
	ID    uuid.UUID
	Roles []string
}

// PartInput is one priced part line supplied with add_parts.
type PartInput struct {
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	TaxPercent float64 `json:"tax_percent"`
}

// WorkorderRequest is the single request envelope keyed by Action.
type WorkorderRequest struct {
	Action              string               `json:"action"`
	WorkorderID         *uuid.UUID           `json:"workorder_id,omitempty"`
	VehicleID           *uuid.UUID           `json:"vehicle_id,omitempty"`
	CustomerID          *uuid.UUID           `json:"customer_id,omitempty"`
	Description         string               `json:"description,omitempty"`
	PrimaryMechanicID   *uuid.UUID           `json:"primary_mechanic_id,omitempty"`
	SecondaryMechanicID *uuid.UUID           `json:"secondary_mechanic_id,omitempty"`
	MechanicID          *uuid.UUID           `json:"mechanic_id,omitempty"` // Target of assign.
	Status              *entity.TicketStatus `json:"status,omitempty"`
	EstimatedCompletion *time.Time           `json:"estimated_completion,omitempty"`
	Parts               []PartInput          `json:"parts,omitempty"`
	LaborHours          *float64             `json:"labor_hours,omitempty"`
	LaborRate           *float64             `json:"labor_rate,omitempty"`
}

// CostBreakdown is the result of a total recalculation. Parts are taxed per
// line; labor is never taxed.
type CostBreakdown struct {
	PartsSubtotal float64 `json:"parts_subtotal"`
	PartsTax      float64 `json:"parts_tax"`
	LaborCost     float64 `json:"labor_cost"`
	Total         float64 `json:"total"`
}

// WorkorderResult is returned from a dispatched workorder action. Fields not
// relevant to the action are nil.
type WorkorderResult struct {
	Ticket     *entity.Ticket           `json:"ticket,omitempty"`
	Breakdown  *CostBreakdown           `json:"breakdown,omitempty"`
	Assignment *entity.TicketAssignment `json:"assignment,omitempty"`
}

// WorkorderUsecase is the request-dispatch entry point for ticket management.
// Callers must hold the employee or admin role; assign additionally requires
// admin. Actions are independent; there is no cross-action transactionality.
type WorkorderUsecase interface {
	Dispatch(ctx context.Context, actor *Actor, req *WorkorderRequest) (*WorkorderResult, error)
}
