package handler

import (
	"log/slog"
	"net/http"
	"time"

	"garage/internal/delivery/http/response"
	"garage/internal/domain/entity"
	"garage/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PreferenceHandler holds dependencies for notification preference handlers.
type PreferenceHandler struct {
	uc     usecase.PreferenceUsecase
	logger *slog.Logger
}

// NewPreferenceHandler is the constructor for PreferenceHandler, injected by Fx.
func NewPreferenceHandler(uc usecase.PreferenceUsecase, logger *slog.Logger) *PreferenceHandler {
	return &PreferenceHandler{
		uc:     uc,
		logger: logger,
	}
}

// SavePreferencesRequest is the preference save request body. The ticket ID
// comes from the path.
type SavePreferencesRequest struct {
	Channels          []entity.Channel `json:"channels" validate:"required,min=1"`
	Primary           entity.Channel   `json:"primary" validate:"required"`
	CommsOptIn        bool             `json:"comms_opt_in"`
	Language          string           `json:"language,omitempty"`
	Timezone          string           `json:"timezone,omitempty"`
	PreferredPickupAt time.Time        `json:"preferred_pickup_at" validate:"required"`
	Email             string           `json:"email,omitempty" validate:"omitempty,email"`
	Phone             string           `json:"phone,omitempty"`
	WhatsAppNumber    string           `json:"whatsapp_number,omitempty"`
	FCMToken          string           `json:"fcm_token,omitempty"`
}

// SavePreferences handles PUT /tickets/:id/preferences.
func (h *PreferenceHandler) SavePreferences(c echo.Context) error {
	ticketID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid ticket ID")
	}

	var req SavePreferencesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid preferences input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := &usecase.SavePreferencesInput{
		TicketID:          ticketID,
		Channels:          req.Channels,
		Primary:           req.Primary,
		CommsOptIn:        req.CommsOptIn,
		Language:          req.Language,
		Timezone:          req.Timezone,
		PreferredPickupAt: req.PreferredPickupAt,
		Email:             req.Email,
		Phone:             req.Phone,
		WhatsAppNumber:    req.WhatsAppNumber,
		FCMToken:          req.FCMToken,
	}

	output, err := h.uc.SavePreferences(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Preferences saved")
}
