package service

import (
	"github.com/google/uuid"
)

// QRCodeService generates pickup-pass QR codes for tickets.
type QRCodeService interface {
	// GeneratePickupPass returns a PNG QR code encoding the ticket's public
	// pickup URL.
	GeneratePickupPass(ticketID uuid.UUID) ([]byte, error)
}
