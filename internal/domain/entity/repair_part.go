// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// PartStatus tracks a requested spare part from request to installation.
type PartStatus string

const (
	// PartNeeded means the part has been requested but not yet ordered.
	PartNeeded PartStatus = "needed"
	// PartOrdered means the part has been ordered from a supplier.
	PartOrdered PartStatus = "ordered"
	// PartReceived means the part has arrived at the shop.
	PartReceived PartStatus = "received"
	// PartUsed means the part has been installed in the device.
	PartUsed PartStatus = "used"
)

// String returns the string representation of the PartStatus.
func (s PartStatus) String() string {
	return string(s)
}

// IsValid checks if the PartStatus is a valid value.
func (s PartStatus) IsValid() bool {
	switch s {
	case PartNeeded, PartOrdered, PartReceived, PartUsed:
		return true
	default:
		return false
	}
}

// IsPending reports whether the part has not yet arrived.
func (s PartStatus) IsPending() bool {
	return s == PartNeeded || s == PartOrdered
}

// RepairPart is a spare part requested for one device's repair.
type RepairPart struct {
	ID          uuid.UUID  `json:"id"`            // The unique identifier for the part request.
	DeviceID    uuid.UUID  `json:"device_id"`     // The device this part was requested for.
	Name        string     `json:"name"`          // Human-readable part name, e.g. "iPhone 12 screen".
	PartRef     string     `json:"part_ref"`      // Supplier or catalogue reference.
	Quantity    int        `json:"quantity"`      // Number of units needed.
	CostPerUnit int64      `json:"cost_per_unit"` // Cost per unit in minor currency units.
	Status      PartStatus `json:"status"`        // Where the part sits in its own lifecycle.
	Notes       string     `json:"notes"`         // Optional free-text notes from the technician.
	CreatedAt   time.Time  `json:"created_at"`    // When the request was recorded.
	UpdatedAt   time.Time  `json:"updated_at"`    // Timestamp of the last modification.
}
