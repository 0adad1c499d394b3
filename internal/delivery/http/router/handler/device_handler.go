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

// DeviceHandler holds dependencies for device intake and bookkeeping handlers.
type DeviceHandler struct {
	uc     usecase.DeviceUsecase
	logger *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler, injected by Fx.
func NewDeviceHandler(uc usecase.DeviceUsecase, logger *slog.Logger) *DeviceHandler {
	return &DeviceHandler{
		uc:     uc,
		logger: logger,
	}
}

// RegisterDevice handles the device intake request.
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	var intake *usecase.DeviceIntake
	if err := c.Bind(&intake); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device intake input")
	}

	device, err := h.uc.RegisterDevice(c.Request().Context(), actor, intake)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, device, "Device registered successfully")
}

// GetDevice returns one device.
func (h *DeviceHandler) GetDevice(c echo.Context) error {
	deviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid device ID")
	}

	device, err := h.uc.GetDevice(c.Request().Context(), deviceID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, device, "Device retrieved successfully")
}

// ListDevices returns devices filtered by status or assigned technician.
func (h *DeviceHandler) ListDevices(c echo.Context) error {
	ctx := c.Request().Context()

	if technicianParam := c.QueryParam("technician"); technicianParam != "" {
		technicianID, err := uuid.Parse(technicianParam)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid technician ID")
		}

		devices, err := h.uc.ListDevicesByTechnician(ctx, technicianID)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, devices, "Devices retrieved successfully")
	}

	status := entity.DeviceStatus(c.QueryParam("status"))
	devices, err := h.uc.ListDevicesByStatus(ctx, status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, devices, "Devices retrieved successfully")
}

// UpdateDevice applies field corrections to a device.
func (h *DeviceHandler) UpdateDevice(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	deviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid device ID")
	}

	var update *usecase.DeviceUpdate
	if err := c.Bind(&update); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device update input")
	}

	device, err := h.uc.UpdateDevice(c.Request().Context(), actor, deviceID, update)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, device, "Device updated successfully")
}

type assignTechnicianInput struct {
	TechnicianID *uuid.UUID `json:"technician_id"` // null clears the assignment
}

// AssignTechnician sets or clears the technician responsible for a device.
func (h *DeviceHandler) AssignTechnician(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	deviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid device ID")
	}

	var input *assignTechnicianInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid assignment input")
	}

	if err := h.uc.AssignTechnician(c.Request().Context(), actor, deviceID, input.TechnicianID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Technician assignment updated")
}

type appendRemarkInput struct {
	Content string `json:"content"`
}

// AppendRemark adds a free-text note to the device's trail.
func (h *DeviceHandler) AppendRemark(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	deviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid device ID")
	}

	var input *appendRemarkInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid remark input")
	}

	remark, err := h.uc.AppendRemark(c.Request().Context(), actor, deviceID, input.Content)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, remark, "Remark added successfully")
}

// ListRemarks returns the device's notes trail in creation order.
func (h *DeviceHandler) ListRemarks(c echo.Context) error {
	deviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid device ID")
	}

	remarks, err := h.uc.ListRemarks(c.Request().Context(), deviceID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, remarks, "Remarks retrieved successfully")
}

// GenerateDeviceTag renders the QR code printed on the physical intake tag.
func (h *DeviceHandler) GenerateDeviceTag(c echo.Context) error {
	deviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid device ID")
	}

	png, err := h.uc.GenerateDeviceTag(c.Request().Context(), deviceID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
