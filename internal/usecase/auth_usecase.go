package usecase

import (
	"context"

	"fixtrack/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterStaffInput is the payload for creating a staff account.
type RegisterStaffInput struct {
	Email    string      `json:"email"`
	Name     string      `json:"name"`
	Password string      `json:"password"`
	Role     entity.Role `json:"role"`
}

// AuthTokens bundles the issued token pair with the authenticated account.
type AuthTokens struct {
	AccessToken  string            `json:"access_token"`
	RefreshToken string            `json:"refresh_token"`
	Staff        *entity.StaffUser `json:"staff"`
}

// AuthUsecase defines the interface for staff identity use cases
type AuthUsecase interface {
	// RegisterStaff creates a new staff account.
	RegisterStaff(ctx context.Context, input *RegisterStaffInput) (*entity.StaffUser, error)

	// Login verifies credentials and issues a JWT pair carrying the role claim.
	Login(ctx context.Context, email, password string) (*AuthTokens, error)

	// GetStaff retrieves one staff account.
	GetStaff(ctx context.Context, id uuid.UUID) (*entity.StaffUser, error)
}

// PushDeviceInfo represents a staff phone registration for push notifications.
type PushDeviceInfo struct {
	PushToken string `json:"push_token"`
	DeviceID  string `json:"device_id"`
	Platform  string `json:"platform"`
}

// PushDeviceUsecase defines the interface for staff push-token management
type PushDeviceUsecase interface {
	// RegisterDevice registers a new staff phone or refreshes an existing one.
	RegisterDevice(ctx context.Context, staffID uuid.UUID, info *PushDeviceInfo) (*entity.StaffDevice, error)

	// UpdatePushToken updates the push token for a specific registration.
	UpdatePushToken(ctx context.Context, staffID, deviceID uuid.UUID, pushToken string) error

	// GetStaffDevices retrieves all active registrations for a staff member.
	GetStaffDevices(ctx context.Context, staffID uuid.UUID) ([]*entity.StaffDevice, error)

	// DeactivateDevice deactivates a registration (soft delete).
	DeactivateDevice(ctx context.Context, staffID, deviceID uuid.UUID) error
}
