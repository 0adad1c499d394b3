// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"fixtrack/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for staff persistence.
var (
	// ErrStaffNotFound is returned when a staff member is not found.
	ErrStaffNotFound = errors.New("staff member not found")
	// ErrDuplicateStaff is returned when the email is already registered.
	ErrDuplicateStaff = errors.New("staff member already exists")
	// ErrStaffDeviceNotFound is returned when a push registration is not found.
	ErrStaffDeviceNotFound = errors.New("staff device not found")
)

// StaffRepository defines the interface for staff-account database operations.
type StaffRepository interface {
	// CreateStaff persists a new staff account.
	CreateStaff(ctx context.Context, staff *entity.StaffUser) error

	// FindStaffByID retrieves a staff member by ID.
	FindStaffByID(ctx context.Context, id uuid.UUID) (*entity.StaffUser, error)

	// FindStaffByEmail retrieves a staff member by login email.
	FindStaffByEmail(ctx context.Context, email string) (*entity.StaffUser, error)
}

// StaffDeviceRepository defines the interface for push-token registrations.
type StaffDeviceRepository interface {
	// CreateDevice persists a new push registration for a staff member.
	CreateDevice(ctx context.Context, device *entity.StaffDevice) error

	// FindDevicesByStaff retrieves all registrations for a staff member.
	FindDevicesByStaff(ctx context.Context, staffID uuid.UUID) ([]*entity.StaffDevice, error)

	// FindActiveDevicesByStaff retrieves active registrations for a staff member.
	FindActiveDevicesByStaff(ctx context.Context, staffID uuid.UUID) ([]*entity.StaffDevice, error)

	// UpdatePushToken updates the push token for a specific registration.
	UpdatePushToken(ctx context.Context, id uuid.UUID, pushToken string) error

	// DeleteDevice removes a registration (soft delete).
	DeleteDevice(ctx context.Context, id uuid.UUID) error
}
