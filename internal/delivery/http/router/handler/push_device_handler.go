package handler

import (
	"log/slog"
	"net/http"

	"fixtrack/internal/delivery/http/middleware"
	"fixtrack/internal/delivery/http/response"
	"fixtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PushDeviceHandler manages staff phone registrations for push notifications.
type PushDeviceHandler struct {
	uc     usecase.PushDeviceUsecase
	logger *slog.Logger
}

// NewPushDeviceHandler is the constructor for PushDeviceHandler, injected by Fx.
func NewPushDeviceHandler(uc usecase.PushDeviceUsecase, logger *slog.Logger) *PushDeviceHandler {
	return &PushDeviceHandler{
		uc:     uc,
		logger: logger,
	}
}

// RegisterDevice registers the caller's phone or refreshes an existing registration.
func (h *PushDeviceHandler) RegisterDevice(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	var info *usecase.PushDeviceInfo
	if err := c.Bind(&info); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	device, err := h.uc.RegisterDevice(c.Request().Context(), actor.ID, info)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, device, "Device registered successfully")
}

// GetDevices lists the caller's active registrations.
func (h *PushDeviceHandler) GetDevices(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	devices, err := h.uc.GetStaffDevices(c.Request().Context(), actor.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, devices, "Devices retrieved successfully")
}

type updatePushTokenInput struct {
	PushToken string `json:"push_token"`
}

// UpdatePushToken refreshes the push token of one registration.
func (h *PushDeviceHandler) UpdatePushToken(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	deviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid device ID")
	}

	var input *updatePushTokenInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid push token input")
	}

	if err := h.uc.UpdatePushToken(c.Request().Context(), actor.ID, deviceID, input.PushToken); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Push token updated successfully")
}

// DeactivateDevice removes one of the caller's registrations.
func (h *PushDeviceHandler) DeactivateDevice(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	deviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid device ID")
	}

	if err := h.uc.DeactivateDevice(c.Request().Context(), actor.ID, deviceID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Device deactivated successfully")
}
