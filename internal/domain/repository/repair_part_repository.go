// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"fixtrack/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrPartNotFound is returned when a spare part is not found.
var ErrPartNotFound = errors.New("spare part not found")

// RepairPartRepository defines the interface for spare-part database operations.
type RepairPartRepository interface {
	// CreateParts persists a batch of part requests for one device.
	CreateParts(ctx context.Context, parts []*entity.RepairPart) error

	// FindPartsByDevice retrieves all parts requested for a device in
	// creation order.
	FindPartsByDevice(ctx context.Context, deviceID uuid.UUID) ([]*entity.RepairPart, error)

	// UpdatePartStatus advances one part through its lifecycle.
	UpdatePartStatus(ctx context.Context, partID uuid.UUID, status entity.PartStatus) error

	// DeletePart removes a part request (admin correction only).
	DeletePart(ctx context.Context, partID uuid.UUID) error
}
