package entity

import (
	"time"

	"github.com/google/uuid"
)

// Part is a priced part line attached to a ticket. Parts are taxed per line;
// labor is never taxed.
type Part struct {
	ID         uuid.UUID `json:"id"`
	TicketID   uuid.UUID `json:"ticket_id"`
	Name       string    `json:"name"`
	Quantity   int       `json:"quantity"`
	UnitPrice  float64   `json:"unit_price"`
	TaxPercent float64   `json:"tax_percent"`
	CreatedAt  time.Time `json:"created_at"`
}

// Subtotal is quantity times unit price, before tax.
func (p *Part) Subtotal() float64 {
	return float64(p.Quantity) * p.UnitPrice
}

// Tax is the per-line tax amount.
func (p *Part) Tax() float64 {
	return p.Subtotal() * p.TaxPercent / 100
}
