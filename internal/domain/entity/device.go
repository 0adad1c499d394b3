// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DeviceStatus represents where a device currently sits in the repair lifecycle.
type DeviceStatus string

const (
	// StatusAssigned is the intake state: the device has been handed to a technician.
	StatusAssigned DeviceStatus = "assigned"
	// StatusDiagnosisStarted means the technician has begun diagnosing the fault.
	StatusDiagnosisStarted DeviceStatus = "diagnosis-started"
	// StatusAwaitingParts means spare parts have been requested and not yet arrived.
	StatusAwaitingParts DeviceStatus = "awaiting-parts"
	// StatusPartsArrived means every requested spare part has been received.
	StatusPartsArrived DeviceStatus = "parts-arrived"
	// StatusInRepair means repair work is in progress.
	StatusInRepair DeviceStatus = "in-repair"
	// StatusReassembledTesting means the device is reassembled and under test.
	StatusReassembledTesting DeviceStatus = "reassembled-testing"
	// StatusRepairComplete means testing passed and the device is ready to hand back.
	StatusRepairComplete DeviceStatus = "repair-complete"
	// StatusReturnedToCustomerCare means the device is with customer care awaiting pickup.
	StatusReturnedToCustomerCare DeviceStatus = "returned-to-customer-care"
	// StatusDone means the customer has collected the device.
	StatusDone DeviceStatus = "done"
	// StatusFailed means the repair could not be completed.
	StatusFailed DeviceStatus = "failed"
)

// String returns the string representation of the DeviceStatus.
func (s DeviceStatus) String() string {
	return string(s)
}

// IsValid checks if the DeviceStatus is one of the known lifecycle states.
func (s DeviceStatus) IsValid() bool {
	switch s {
	case StatusAssigned, StatusDiagnosisStarted, StatusAwaitingParts,
		StatusPartsArrived, StatusInRepair, StatusReassembledTesting,
		StatusRepairComplete, StatusReturnedToCustomerCare, StatusDone,
		StatusFailed:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transitions leave this status.
func (s DeviceStatus) IsTerminal() bool {
	return s == StatusDone
}

// Device represents a customer's item undergoing repair tracking.
type Device struct {
	ID               uuid.UUID    `json:"id"`                           // The unique identifier for the device.
	Brand            string       `json:"brand"`                        // Manufacturer, e.g. "Samsung".
	Model            string       `json:"model"`                        // Model name or number.
	SerialNumber     string       `json:"serial_number"`                // Serial or IMEI number.
	Issue            string       `json:"issue"`                        // Free-text fault description recorded at intake.
	CustomerName     string       `json:"customer_name"`                // Name of the owning customer.
	CustomerPhone    string       `json:"customer_phone"`               // Phone number for status notifications.
	AssignedTo       *uuid.UUID   `json:"assigned_to,omitempty"`        // Technician currently responsible, nil if unassigned.
	Status           DeviceStatus `json:"status"`                       // Current lifecycle state.
	RepairCost       int64        `json:"repair_cost"`                  // Quoted repair cost in minor currency units.
	DepositAmount    int64        `json:"deposit_amount"`               // Deposit collected at intake.
	ExpectedReturnAt *time.Time   `json:"expected_return_at,omitempty"` // Promised pickup date, if any.
	CreatedAt        time.Time    `json:"created_at"`                   // Timestamp of intake.
	UpdatedAt        time.Time    `json:"updated_at"`                   // Timestamp of the last modification.
}

// DeviceRemark is one entry in a device's ordered trail of operator notes.
type DeviceRemark struct {
	ID        uuid.UUID `json:"id"`         // The unique identifier for the remark.
	DeviceID  uuid.UUID `json:"device_id"`  // The device this remark belongs to.
	Content   string    `json:"content"`    // The note text.
	CreatedBy uuid.UUID `json:"created_by"` // Staff member who wrote the note.
	CreatedAt time.Time `json:"created_at"` // When the note was recorded.
}
