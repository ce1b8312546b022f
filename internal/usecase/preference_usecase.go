// Package usecase defines the application use case interfaces.
package usecase

import (
	"context"
	"time"

	"garage/internal/domain/entity"

	"github.com/google/uuid"
)

// SavePreferencesInput carries a customer's requested notification setup for
// one ticket.
type SavePreferencesInput struct {
	TicketID          uuid.UUID        `json:"ticket_id"`
	Channels          []entity.Channel `json:"channels"`
	Primary           entity.Channel   `json:"primary"`
	CommsOptIn        bool             `json:"comms_opt_in"`
	Language          string           `json:"language,omitempty"`
	Timezone          string           `json:"timezone,omitempty"`
	PreferredPickupAt time.Time        `json:"preferred_pickup_at"`
	Email             string           `json:"email,omitempty"`
	Phone             string           `json:"phone,omitempty"`
	WhatsAppNumber    string           `json:"whatsapp_number,omitempty"`
	FCMToken          string           `json:"fcm_token,omitempty"`
}

// SavePreferencesResult is returned after a successful preference save.
type SavePreferencesResult struct {
	Profile      *entity.CustomerProfile `json:"profile"`
	Confirmation *entity.Notification    `json:"confirmation"`
}

// PreferenceUsecase records a customer's contact preferences for a ticket and
// schedules the confirmation and reminder notifications.
type PreferenceUsecase interface {
	// SavePreferences validates the input, upserts the customer notification
	// profile, writes the preference blob onto the ticket, and creates two
	// notification rows: an immediate confirmation and a reminder scheduled
	// two hours before the preferred pickup time. The two inserts are
	// best-effort; one failing does not roll back the other.
	SavePreferences(ctx context.Context, input *SavePreferencesInput) (*SavePreferencesResult, error)
}
