package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Sweep item actions.
const (
	SweepActionRescheduled = "rescheduled"
	SweepActionSkipped     = "skipped"
	SweepActionFailed      = "failed"
)

// SweepItemResult records the outcome for one ticket visited by the sweep.
type SweepItemResult struct {
	TicketID uuid.UUID  `json:"ticket_id"`
	Action   string     `json:"action"`
	Reason   string     `json:"reason,omitempty"`
	NewDate  *time.Time `json:"new_date,omitempty"`
}

// SweepResult aggregates one reschedule sweep.
type SweepResult struct {
	Processed   int               `json:"processed"`
	Rescheduled int               `json:"rescheduled"`
	Skipped     int               `json:"skipped"`
	Failed      int               `json:"failed"`
	Results     []SweepItemResult `json:"results"`
}

// RescheduleUsecase advances missed appointments.
type RescheduleUsecase interface {
	// SweepMissed finds tickets whose reschedule date falls within the
	// current UTC day and whose vehicle never arrived, pushes each date
	// forward by exactly one day and queues a reschedule notification.
	// Per-ticket failures are recorded and do not abort the sweep.
	SweepMissed(ctx context.Context) (*SweepResult, error)
}
