package handler

import (
	"log/slog"
	"net/http"

	"garage/internal/delivery/http/response"
	"garage/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TicketHandler holds dependencies for ticket-facing handlers.
type TicketHandler struct {
	qrcodeSvc service.QRCodeService
	logger    *slog.Logger
}

// NewTicketHandler is the constructor for TicketHandler, injected by Fx.
func NewTicketHandler(qrcodeSvc service.QRCodeService, logger *slog.Logger) *TicketHandler {
	return &TicketHandler{
		qrcodeSvc: qrcodeSvc,
		logger:    logger,
	}
}

// PickupPass handles GET /tickets/:id/pickup-pass and returns a PNG QR code
// encoding the ticket's pickup URL.
func (h *TicketHandler) PickupPass(c echo.Context) error {
	ticketID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid ticket ID")
	}

	pngBytes, err := h.qrcodeSvc.GeneratePickupPass(ticketID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", pngBytes)
}
