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

// PartHandler holds dependencies for spare-part handlers.
type PartHandler struct {
	uc     usecase.PartUsecase
	logger *slog.Logger
}

// NewPartHandler is the constructor for PartHandler, injected by Fx.
func NewPartHandler(uc usecase.PartUsecase, logger *slog.Logger) *PartHandler {
	return &PartHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListParts returns all parts requested for a device.
func (h *PartHandler) ListParts(c echo.Context) error {
	deviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid device ID")
	}

	parts, err := h.uc.ListParts(c.Request().Context(), deviceID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, parts, "Parts retrieved successfully")
}

type requestPartsInput struct {
	Parts []usecase.PartSelection `json:"parts"`
}

// RequestParts records additional part requests outside a status transition.
func (h *PartHandler) RequestParts(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	deviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid device ID")
	}

	var input *requestPartsInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid parts input")
	}

	parts, err := h.uc.RequestParts(c.Request().Context(), actor, deviceID, input.Parts)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, parts, "Parts requested successfully")
}

type updatePartStatusInput struct {
	Status entity.PartStatus `json:"status"`
}

// UpdatePartStatus advances one part through its lifecycle.
func (h *PartHandler) UpdatePartStatus(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	partID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid part ID")
	}

	var input *updatePartStatusInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid part status input")
	}

	if err := h.uc.UpdatePartStatus(c.Request().Context(), actor, partID, input.Status); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Part status updated successfully")
}

// ReceiveAllPending marks every pending part of a device as received.
func (h *PartHandler) ReceiveAllPending(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	deviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid device ID")
	}

	updated, err := h.uc.ReceiveAllPending(c.Request().Context(), actor, deviceID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int{"updated": updated}, "Pending parts marked as received")
}

// RemovePart deletes a part request. Admin-only correction.
func (h *PartHandler) RemovePart(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	partID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid part ID")
	}

	if err := h.uc.RemovePart(c.Request().Context(), actor, partID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Part removed successfully")
}
