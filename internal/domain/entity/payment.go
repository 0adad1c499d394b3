// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// PaymentStatus represents the settlement state of a single payment record.
type PaymentStatus string

const (
	// PaymentCompleted means the payment was received and confirmed.
	PaymentCompleted PaymentStatus = "completed"
	// PaymentPending means the payment was initiated but not yet confirmed.
	PaymentPending PaymentStatus = "pending"
	// PaymentFailed means the payment attempt did not go through.
	PaymentFailed PaymentStatus = "failed"
)

// String returns the string representation of the PaymentStatus.
func (s PaymentStatus) String() string {
	return string(s)
}

// PaymentRecord is one payment made against a device's repair, recorded by the
// point-of-sale system. This service only reads these rows.
type PaymentRecord struct {
	ID        uuid.UUID     `json:"id"`         // The unique identifier for the payment.
	DeviceID  uuid.UUID     `json:"device_id"`  // The device the payment applies to.
	Amount    int64         `json:"amount"`     // Amount in minor currency units.
	Method    string        `json:"method"`     // Payment method, e.g. "cash", "mobile-money".
	Status    PaymentStatus `json:"status"`     // Settlement state.
	CreatedAt time.Time     `json:"created_at"` // When the payment was recorded.
}

// PaymentAggregate is the settlement snapshot the transition preconditions
// consume. It is computed fresh from payment rows at evaluation time and is
// never cached on the Device record.
type PaymentAggregate struct {
	TotalPaid    int64 `json:"total_paid"`    // Sum of completed payments.
	TotalPending int64 `json:"total_pending"` // Sum of pending payments.
	TotalFailed  int64 `json:"total_failed"`  // Sum of failed payments.
}
