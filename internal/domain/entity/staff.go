// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// StaffUser is a shop employee account: the identity behind every Actor.
type StaffUser struct {
	ID           uuid.UUID `json:"id"`         // The unique identifier for the staff member.
	Email        string    `json:"email"`      // Login identifier.
	Name         string    `json:"name"`       // Display name.
	PasswordHash string    `json:"-"`          // Bcrypt hash, never serialized.
	Role         Role      `json:"role"`       // technician, admin or customer-care.
	IsActive     bool      `json:"is_active"`  // Deactivated accounts cannot log in.
	CreatedAt    time.Time `json:"created_at"` // Timestamp of account creation.
	UpdatedAt    time.Time `json:"updated_at"` // Timestamp of the last modification.
}

// StaffDevice represents a staff member's phone registered for push
// notifications about the repair jobs they are involved in.
type StaffDevice struct {
	ID        uuid.UUID `json:"id"`         // The unique identifier for the registration.
	StaffID   uuid.UUID `json:"staff_id"`   // The staff member who owns this phone.
	PushToken string    `json:"push_token"` // Firebase Cloud Messaging token.
	DeviceID  string    `json:"device_id"`  // Unique device identifier from the client.
	Platform  string    `json:"platform"`   // Device platform (ios, android).
	IsActive  bool      `json:"is_active"`  // Indicates if this device receives notifications.
	CreatedAt time.Time `json:"created_at"` // Timestamp of registration.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last modification.
}
