package handler

import (
	"log/slog"
	"net/http"

	"fixtrack/internal/delivery/http/middleware"
	"fixtrack/internal/delivery/http/response"
	"fixtrack/internal/domain/entity"
	"fixtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RepairHandler exposes the status transition surface: what an actor may do
// to a device right now, and executing one validated transition.
type RepairHandler struct {
	uc     usecase.RepairUsecase
	logger *slog.Logger
}

// NewRepairHandler is the constructor for RepairHandler, injected by Fx.
func NewRepairHandler(uc usecase.RepairUsecase, logger *slog.Logger) *RepairHandler {
	return &RepairHandler{
		uc:     uc,
		logger: logger,
	}
}

// AvailableTransitions returns the edges the authenticated staff member may
// take from the device's current status. Pure read; clients poll it to
// render their action buttons.
func (h *RepairHandler) AvailableTransitions(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	deviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid device ID")
	}

	transitions, err := h.uc.AvailableTransitions(c.Request().Context(), deviceID, actor)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, transitions, "Available transitions retrieved successfully")
}

type executeTransitionInput struct {
	To entity.DeviceStatus `json:"to"`
	usecase.TransitionRequest
}

// ExecuteTransition applies one status change. The body carries the target
// status plus whatever the confirmation dialog collected: notes, selected
// parts, checklist confirmation.
func (h *RepairHandler) ExecuteTransition(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	deviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid device ID")
	}

	var input *executeTransitionInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid transition input")
	}

	device, err := h.uc.ExecuteTransition(c.Request().Context(), deviceID, input.To, actor, &input.TransitionRequest)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, device, "Status updated successfully")
}
