package postgres

import (
	"context"

	"fixtrack/internal/domain/entity"
	"fixtrack/internal/domain/repository"
	"fixtrack/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// paymentRepository implements the repository.PaymentRepository interface.
// Payments are written by the point-of-sale system; this repository is read-only.
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository is the constructor for paymentRepository.
func NewPaymentRepository(db *gorm.DB) repository.PaymentRepository {
	return &paymentRepository{
		db: db,
	}
}

// GetPaymentAggregate sums a device's payments per settlement state in a
// single query. Handover preconditions read this fresh on every evaluation,
// so the totals are never cached.
func (repo *paymentRepository) GetPaymentAggregate(ctx context.Context, deviceID uuid.UUID) (*entity.PaymentAggregate, error) {
	var aggregate entity.PaymentAggregate

	if err := repo.db.WithContext(ctx).
		Model(&model.PaymentModel{}).
		Select(
			"COALESCE(SUM(CASE WHEN status = ? THEN amount ELSE 0 END), 0) AS total_paid, "+
				"COALESCE(SUM(CASE WHEN status = ? THEN amount ELSE 0 END), 0) AS total_pending, "+
				"COALESCE(SUM(CASE WHEN status = ? THEN amount ELSE 0 END), 0) AS total_failed",
			entity.PaymentCompleted.String(),
			entity.PaymentPending.String(),
			entity.PaymentFailed.String(),
		).
		Where("device_id = ?", deviceID).
		Scan(&aggregate).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate payments")
	}

	return &aggregate, nil
}

// ListPayments returns a device's individual payment records, newest first.
func (repo *paymentRepository) ListPayments(ctx context.Context, deviceID uuid.UUID) ([]*entity.PaymentRecord, error) {
	var paymentModels []*model.PaymentModel

	if err := repo.db.WithContext(ctx).
		Where("device_id = ?", deviceID).
		Order("created_at DESC").
		Find(&paymentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list payments")
	}

	payments := make([]*entity.PaymentRecord, 0, len(paymentModels))
	for _, paymentM := range paymentModels {
		payments = append(payments, toPaymentDomain(paymentM))
	}

	return payments, nil
}

func toPaymentDomain(paymentM *model.PaymentModel) *entity.PaymentRecord {
	return &entity.PaymentRecord{
		ID:        paymentM.ID,
		DeviceID:  paymentM.DeviceID,
		Amount:    paymentM.Amount,
		Method:    paymentM.Method,
		Status:    entity.PaymentStatus(paymentM.Status),
		CreatedAt: paymentM.CreatedAt,
	}
}
