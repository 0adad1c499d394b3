package postgres

import (
	"context"

	"fixtrack/internal/domain/entity"
	domainerrors "fixtrack/internal/domain/errors"
	"fixtrack/internal/domain/repository"
	"fixtrack/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// repairPartRepository implements the repository.RepairPartRepository interface.
type repairPartRepository struct {
	db *gorm.DB
}

// NewRepairPartRepository is the constructor for repairPartRepository.
func NewRepairPartRepository(db *gorm.DB) repository.RepairPartRepository {
	return &repairPartRepository{
		db: db,
	}
}

// CreateParts persists a batch of part requests for one device. The batch is
// written atomically: either every row lands or none do.
func (repo *repairPartRepository) CreateParts(ctx context.Context, parts []*entity.RepairPart) error {
	if len(parts) == 0 {
		return nil
	}

	partModels := make([]*model.RepairPartModel, 0, len(parts))
	for _, part := range parts {
		partModels = append(partModels, fromPartDomain(part))
	}

	if err := repo.db.WithContext(ctx).Create(&partModels).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrDeviceNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required part information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create parts")
	}

	for i, partM := range partModels {
		parts[i].ID = partM.ID
		parts[i].CreatedAt = partM.CreatedAt
		parts[i].UpdatedAt = partM.UpdatedAt
	}

	return nil
}

// FindPartsByDevice retrieves all parts requested for a device in creation order.
func (repo *repairPartRepository) FindPartsByDevice(ctx context.Context, deviceID uuid.UUID) ([]*entity.RepairPart, error) {
	var partModels []*model.RepairPartModel

	if err := repo.db.WithContext(ctx).
		Where("device_id = ?", deviceID).
		Order("created_at ASC").
		Find(&partModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find parts by device")
	}

	parts := make([]*entity.RepairPart, 0, len(partModels))
	for _, partM := range partModels {
		parts = append(parts, toPartDomain(partM))
	}

	return parts, nil
}

// UpdatePartStatus advances one part through its lifecycle.
func (repo *repairPartRepository) UpdatePartStatus(ctx context.Context, partID uuid.UUID, status entity.PartStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RepairPartModel{}).
		Where("id = ?", partID).
		Update("status", status.String())

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update part status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPartNotFound
	}

	return nil
}

// DeletePart removes a part request (admin correction only).
func (repo *repairPartRepository) DeletePart(ctx context.Context, partID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", partID).
		Delete(&model.RepairPartModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete part")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPartNotFound
	}

	return nil
}

func toPartDomain(partM *model.RepairPartModel) *entity.RepairPart {
	return &entity.RepairPart{
		ID:          partM.ID,
		DeviceID:    partM.DeviceID,
		Name:        partM.Name,
		PartRef:     partM.PartRef,
		Quantity:    partM.Quantity,
		CostPerUnit: partM.CostPerUnit,
		Status:      entity.PartStatus(partM.Status),
		Notes:       partM.Notes,
		CreatedAt:   partM.CreatedAt,
		UpdatedAt:   partM.UpdatedAt,
	}
}

func fromPartDomain(part *entity.RepairPart) *model.RepairPartModel {
	return &model.RepairPartModel{
		ID:          part.ID,
		DeviceID:    part.DeviceID,
		Name:        part.Name,
		PartRef:     part.PartRef,
		Quantity:    part.Quantity,
		CostPerUnit: part.CostPerUnit,
		Status:      part.Status.String(),
		Notes:       part.Notes,
		CreatedAt:   part.CreatedAt,
		UpdatedAt:   part.UpdatedAt,
	}
}
