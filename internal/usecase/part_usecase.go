package usecase

import (
	"context"

	"fixtrack/internal/domain/entity"

	"github.com/google/uuid"
)

// PartUsecase defines the interface for spare-part management use cases
type PartUsecase interface {
	// ListParts returns all parts requested for a device.
	ListParts(ctx context.Context, deviceID uuid.UUID) ([]*entity.RepairPart, error)

	// RequestParts records additional part requests outside the awaiting-parts
	// transition (e.g. a part broke during repair).
	RequestParts(ctx context.Context, actor entity.Actor, deviceID uuid.UUID, selections []PartSelection) ([]*entity.RepairPart, error)

	// UpdatePartStatus advances one part through needed -> ordered -> received -> used.
	UpdatePartStatus(ctx context.Context, actor entity.Actor, partID uuid.UUID, status entity.PartStatus) error

	// ReceiveAllPending marks every needed/ordered part of a device as
	// received in a single transaction and returns how many were updated.
	ReceiveAllPending(ctx context.Context, actor entity.Actor, deviceID uuid.UUID) (int, error)

	// RemovePart deletes a part request. Admin-only correction.
	RemovePart(ctx context.Context, actor entity.Actor, partID uuid.UUID) error
}

// PaymentUsecase exposes the read-only payment view. Payments are recorded by
// the point-of-sale system; this service only aggregates them for settlement
// checks and display.
type PaymentUsecase interface {
	// GetPaymentAggregate sums a device's payments per settlement state.
	GetPaymentAggregate(ctx context.Context, deviceID uuid.UUID) (*entity.PaymentAggregate, error)

	// ListPayments returns a device's payment records, newest first.
	ListPayments(ctx context.Context, deviceID uuid.UUID) ([]*entity.PaymentRecord, error)
}
