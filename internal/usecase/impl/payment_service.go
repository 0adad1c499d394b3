package impl

import (
	"context"

	"fixtrack/internal/domain/entity"
	domainerrors "fixtrack/internal/domain/errors"
	"fixtrack/internal/domain/repository"
	"fixtrack/internal/usecase"

	"github.com/google/uuid"
)

type paymentService struct {
	paymentRepo repository.PaymentRepository
}

// NewPaymentService creates the read-only payment view service.
func NewPaymentService(paymentRepo repository.PaymentRepository) usecase.PaymentUsecase {
	return &paymentService{paymentRepo: paymentRepo}
}

func (s *paymentService) GetPaymentAggregate(ctx context.Context, deviceID uuid.UUID) (*entity.PaymentAggregate, error) {
	aggregate, err := s.paymentRepo.GetPaymentAggregate(ctx, deviceID)
	if err != nil {
		return nil, domainerrors.ErrPersistenceFailure.WithDetails(err.Error())
	}

	return aggregate, nil
}

func (s *paymentService) ListPayments(ctx context.Context, deviceID uuid.UUID) ([]*entity.PaymentRecord, error) {
	payments, err := s.paymentRepo.ListPayments(ctx, deviceID)
	if err != nil {
		return nil, domainerrors.ErrPersistenceFailure.WithDetails(err.Error())
	}

	return payments, nil
}
