package handler

import (
	"log/slog"
	"net/http"

	"garage/internal/delivery/http/response"
	"garage/internal/domain/entity"
	"garage/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// NotificationHandler holds dependencies for notification handlers.
type NotificationHandler struct {
	dispatchUC   usecase.DispatchUsecase
	rescheduleUC usecase.RescheduleUsecase
	logger       *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler, injected by Fx.
func NewNotificationHandler(dispatchUC usecase.DispatchUsecase, rescheduleUC usecase.RescheduleUsecase, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{
		dispatchUC:   dispatchUC,
		rescheduleUC: rescheduleUC,
		logger:       logger,
	}
}

// SendTestRequest is the test notification request body.
type SendTestRequest struct {
	Channel   entity.Channel `json:"channel" validate:"required"`
	ToAddress string         `json:"to_address" validate:"required"`
}

// SendTest handles POST /tickets/:id/notifications/test. Admin only; the role
// check lives in the use case. The result row is returned with its terminal
// status; a provider failure is recorded on the row, not surfaced as an HTTP
// error.
func (h *NotificationHandler) SendTest(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	ticketID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid ticket ID")
	}

	var req SendTestRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid test notification input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	notification, err := h.dispatchUC.SendTest(c.Request().Context(), actor, ticketID, req.Channel, req.ToAddress)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, notification, "Test notification processed")
}

// DispatchDue handles POST /internal/notifications/dispatch. It drives one
// dispatcher pass; the cron scheduler calls the same use case.
func (h *NotificationHandler) DispatchDue(c echo.Context) error {
	result, err := h.dispatchUC.DispatchDue(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Dispatch pass completed")
}

// SweepMissed handles POST /internal/reschedules/sweep.
func (h *NotificationHandler) SweepMissed(c echo.Context) error {
	result, err := h.rescheduleUC.SweepMissed(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Reschedule sweep completed")
}
