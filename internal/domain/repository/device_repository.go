// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"fixtrack/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDuplicateDevice is returned when trying to create a device that already exists.
	ErrDuplicateDevice = errors.New("device already exists")
)

// DeviceRepository defines the interface for device-related database operations.
type DeviceRepository interface {
	// CreateDevice persists a new device recorded at intake.
	CreateDevice(ctx context.Context, device *entity.Device) error

	// FindDeviceByID retrieves a device by its unique ID.
	FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.Device, error)

	// FindDevicesByStatus retrieves all devices currently in the given status.
	FindDevicesByStatus(ctx context.Context, status entity.DeviceStatus) ([]*entity.Device, error)

	// FindDevicesByTechnician retrieves all devices assigned to a technician.
	FindDevicesByTechnician(ctx context.Context, technicianID uuid.UUID) ([]*entity.Device, error)

	// UpdateDevice persists field corrections (brand, model, serial, costs).
	UpdateDevice(ctx context.Context, device *entity.Device) error

	// UpdateDeviceStatus moves the device to a new status only if it is still
	// in expectedFrom, appending an optional remark in the same transaction.
	// Returns ErrDeviceNotFound when the guard does not match, which signals a
	// concurrent transition.
	UpdateDeviceStatus(ctx context.Context, id uuid.UUID, expectedFrom, to entity.DeviceStatus, remark *entity.DeviceRemark) error

	// AssignTechnician sets or clears the technician responsible for a device.
	AssignTechnician(ctx context.Context, id uuid.UUID, technicianID *uuid.UUID) error

	// AppendRemark adds one entry to the device's ordered notes trail.
	AppendRemark(ctx context.Context, remark *entity.DeviceRemark) error

	// ListRemarks returns the device's notes trail in creation order.
	ListRemarks(ctx context.Context, deviceID uuid.UUID) ([]*entity.DeviceRemark, error)
}
