package usecase

import (
	"context"
	"time"

	"fixtrack/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceIntake represents the data recorded when a customer drops a device off.
type DeviceIntake struct {
	Brand            string     `json:"brand"`
	Model            string     `json:"model"`
	SerialNumber     string     `json:"serial_number"`
	Issue            string     `json:"issue"`
	CustomerName     string     `json:"customer_name"`
	CustomerPhone    string     `json:"customer_phone"`
	AssignedTo       *uuid.UUID `json:"assigned_to,omitempty"`
	RepairCost       int64      `json:"repair_cost"`
	DepositAmount    int64      `json:"deposit_amount"`
	ExpectedReturnAt *time.Time `json:"expected_return_at,omitempty"`
}

// DeviceUpdate carries incidental field corrections (typos in model or
// serial, revised quote). Status never changes through this path.
type DeviceUpdate struct {
	Brand         *string `json:"brand,omitempty"`
	Model         *string `json:"model,omitempty"`
	SerialNumber  *string `json:"serial_number,omitempty"`
	Issue         *string `json:"issue,omitempty"`
	RepairCost    *int64  `json:"repair_cost,omitempty"`
	DepositAmount *int64  `json:"deposit_amount,omitempty"`
}

// DeviceUsecase defines the interface for device intake and bookkeeping use cases
type DeviceUsecase interface {
	// RegisterDevice records a new device at intake with status "assigned".
	RegisterDevice(ctx context.Context, actor entity.Actor, intake *DeviceIntake) (*entity.Device, error)

	// GetDevice retrieves one device.
	GetDevice(ctx context.Context, id uuid.UUID) (*entity.Device, error)

	// ListDevicesByStatus retrieves all devices in one lifecycle state.
	ListDevicesByStatus(ctx context.Context, status entity.DeviceStatus) ([]*entity.Device, error)

	// ListDevicesByTechnician retrieves a technician's current workload.
	ListDevicesByTechnician(ctx context.Context, technicianID uuid.UUID) ([]*entity.Device, error)

	// UpdateDevice applies field corrections and returns the updated device.
	UpdateDevice(ctx context.Context, actor entity.Actor, id uuid.UUID, update *DeviceUpdate) (*entity.Device, error)

	// AssignTechnician sets or clears the responsible technician.
	AssignTechnician(ctx context.Context, actor entity.Actor, deviceID uuid.UUID, technicianID *uuid.UUID) error

	// AppendRemark adds a free-text note to the device's trail.
	AppendRemark(ctx context.Context, actor entity.Actor, deviceID uuid.UUID, content string) (*entity.DeviceRemark, error)

	// ListRemarks returns the device's notes trail in creation order.
	ListRemarks(ctx context.Context, deviceID uuid.UUID) ([]*entity.DeviceRemark, error)

	// GenerateDeviceTag renders the QR code printed on the physical intake tag.
	GenerateDeviceTag(ctx context.Context, deviceID uuid.UUID) ([]byte, error)
}
