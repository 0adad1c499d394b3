// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"fixtrack/internal/domain/entity"

	"github.com/google/uuid"
)

// PaymentRepository reads payment rows recorded by the point-of-sale system.
// This service never writes payments.
type PaymentRepository interface {
	// GetPaymentAggregate sums a device's payments per settlement state.
	// Called fresh at every evaluation; the result must not be cached.
	GetPaymentAggregate(ctx context.Context, deviceID uuid.UUID) (*entity.PaymentAggregate, error)

	// ListPayments returns a device's individual payment records, newest first.
	ListPayments(ctx context.Context, deviceID uuid.UUID) ([]*entity.PaymentRecord, error)
}
