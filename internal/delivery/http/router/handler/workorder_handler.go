package handler

import (
	"log/slog"
	"net/http"

	"garage/internal/delivery/http/response"
	"garage/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// WorkorderHandler holds dependencies for workorder handlers.
type WorkorderHandler struct {
	uc     usecase.WorkorderUsecase
	logger *slog.Logger
}

// NewWorkorderHandler is the constructor for WorkorderHandler, injected by Fx.
func NewWorkorderHandler(uc usecase.WorkorderUsecase, logger *slog.Logger) *WorkorderHandler {
	return &WorkorderHandler{
		uc:     uc,
		logger: logger,
	}
}

// Dispatch handles POST /workorders. The whole workorder surface is one
// action-keyed envelope; role checks live in the use case.
func (h *WorkorderHandler) Dispatch(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req usecase.WorkorderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid workorder input")
	}

	output, err := h.uc.Dispatch(c.Request().Context(), actor, &req)
	if err != nil {
		return errors.WithStack(err)
	}

	status := http.StatusOK
	if req.Action == usecase.WorkorderActionCreate {
		status = http.StatusCreated
	}

	return response.Success(c, status, output, "Workorder action completed")
}
