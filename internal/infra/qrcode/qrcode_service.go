// Package qrcode generates the pickup-pass images handed to customers at
// the counter.
package qrcode

import (
	"fmt"
	"strings"

	"garage/config"
	"garage/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const defaultQRSize = 256

type qrcodeService struct {
	baseURL              string
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size := defaultQRSize
	correction := ""
	if cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		correction = cfg.QRCode.ErrorCorrectionLevel
	}

	var level qrcode.RecoveryLevel
	switch correction {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	baseURL := ""
	if cfg.App != nil {
		baseURL = strings.TrimRight(cfg.App.BaseURL, "/")
	}

	return &qrcodeService{
		baseURL:              baseURL,
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GeneratePickupPass generates a PNG QR code encoding the ticket's public
// pickup URL. Scanning it at the counter opens the ticket's pickup page.
func (s *qrcodeService) GeneratePickupPass(ticketID uuid.UUID) ([]byte, error) {
	pickupURL := s.baseURL + "/tickets/" + ticketID.String()

	qrCode, err := qrcode.New(pickupURL, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
