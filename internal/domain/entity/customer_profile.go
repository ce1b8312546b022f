package entity

import (
	"time"

	"github.com/google/uuid"
)

// CustomerProfile holds one customer's notification contact details and
// opt-in state. There is exactly one profile per customer; preference saves
// upsert it (insert-or-update by customer ID, last-write-wins on updatable
// fields only).
type CustomerProfile struct {
	CustomerID       uuid.UUID `json:"customer_id"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	WhatsAppNumber   string    `json:"whatsapp_number"`
	FCMToken         string    `json:"fcm_token,omitempty"` // Device token for the push channel.
	Language         string    `json:"language"`
	Timezone         string    `json:"timezone"`
	OptIn            bool      `json:"opt_in"`
	PreferredChannel Channel   `json:"preferred_channel"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// DestinationFor resolves the delivery address for a channel. An empty
// return value means the profile has no usable address for that channel.
func (p *CustomerProfile) DestinationFor(channel Channel) string {
	switch channel {
	case ChannelEmail:
		return p.Email
	case ChannelSMS:
		return p.Phone
	case ChannelWhatsApp:
		if p.WhatsAppNumber != "" {
			return p.WhatsAppNumber
		}

		return p.Phone
	case ChannelPush:
		return p.FCMToken
	}

	return ""
}
