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

// staffDeviceRepository implements the repository.StaffDeviceRepository interface.
type staffDeviceRepository struct {
	db *gorm.DB
}

// NewStaffDeviceRepository is the constructor for staffDeviceRepository.
func NewStaffDeviceRepository(db *gorm.DB) repository.StaffDeviceRepository {
	return &staffDeviceRepository{
		db: db,
	}
}

// CreateDevice persists a new push registration for a staff member.
func (repo *staffDeviceRepository) CreateDevice(ctx context.Context, device *entity.StaffDevice) error {
	deviceM := fromStaffDeviceDomain(device)

	if err := repo.db.WithContext(ctx).Create(deviceM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrStaffNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required registration information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create push registration")
	}

	device.ID = deviceM.ID
	device.CreatedAt = deviceM.CreatedAt
	device.UpdatedAt = deviceM.UpdatedAt

	return nil
}

// FindDevicesByStaff retrieves all registrations for a staff member,
// including deactivated ones.
func (repo *staffDeviceRepository) FindDevicesByStaff(ctx context.Context, staffID uuid.UUID) ([]*entity.StaffDevice, error) {
	var deviceModels []*model.StaffDeviceModel

	if err := repo.db.WithContext(ctx).
		Where("staff_id = ?", staffID).
		Order("created_at DESC").
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find staff devices")
	}

	devices := make([]*entity.StaffDevice, 0, len(deviceModels))
	for _, deviceM := range deviceModels {
		devices = append(devices, toStaffDeviceDomain(deviceM))
	}

	return devices, nil
}

// FindActiveDevicesByStaff retrieves active registrations for a staff member.
func (repo *staffDeviceRepository) FindActiveDevicesByStaff(ctx context.Context, staffID uuid.UUID) ([]*entity.StaffDevice, error) {
	var deviceModels []*model.StaffDeviceModel

	if err := repo.db.WithContext(ctx).
		Where("staff_id = ? AND is_active = ?", staffID, true).
		Order("created_at DESC").
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active staff devices")
	}

	devices := make([]*entity.StaffDevice, 0, len(deviceModels))
	for _, deviceM := range deviceModels {
		devices = append(devices, toStaffDeviceDomain(deviceM))
	}

	return devices, nil
}

// UpdatePushToken updates the push token for a specific registration.
func (repo *staffDeviceRepository) UpdatePushToken(ctx context.Context, id uuid.UUID, pushToken string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.StaffDeviceModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"push_token": pushToken,
			"is_active":  true,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update push token")
	}

	if result.RowsAffected == 0 {
		return repository.ErrStaffDeviceNotFound
	}

	return nil
}

// DeleteDevice removes a registration (soft delete).
func (repo *staffDeviceRepository) DeleteDevice(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.StaffDeviceModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete push registration")
	}

	if result.RowsAffected == 0 {
		return repository.ErrStaffDeviceNotFound
	}

	return nil
}

func toStaffDeviceDomain(deviceM *model.StaffDeviceModel) *entity.StaffDevice {
	return &entity.StaffDevice{
		ID:        deviceM.ID,
		StaffID:   deviceM.StaffID,
		PushToken: deviceM.PushToken,
		DeviceID:  deviceM.DeviceID,
		Platform:  deviceM.Platform,
		IsActive:  deviceM.IsActive,
		CreatedAt: deviceM.CreatedAt,
		UpdatedAt: deviceM.UpdatedAt,
	}
}

func fromStaffDeviceDomain(device *entity.StaffDevice) *model.StaffDeviceModel {
	return &model.StaffDeviceModel{
		ID:        device.ID,
		StaffID:   device.StaffID,
		PushToken: device.PushToken,
		DeviceID:  device.DeviceID,
		Platform:  device.Platform,
		IsActive:  device.IsActive,
		CreatedAt: device.CreatedAt,
		UpdatedAt: device.UpdatedAt,
	}
}
