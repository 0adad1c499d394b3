// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

// CreateDevice persists a new device recorded at intake.
func (repo *deviceRepository) CreateDevice(ctx context.Context, device *entity.Device) error {
	deviceM := fromDeviceDomain(device)

	if err := repo.db.WithContext(ctx).Create(deviceM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateDevice
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required device information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create device")
	}

	// Update the entity with generated values
	device.ID = deviceM.ID
	device.CreatedAt = deviceM.CreatedAt
	device.UpdatedAt = deviceM.UpdatedAt

	return nil
}

// FindDeviceByID retrieves a device by its unique ID.
func (repo *deviceRepository) FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.Device, error) {
	var deviceM model.DeviceModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by ID")
	}

	return toDeviceDomain(&deviceM), nil
}

// FindDevicesByStatus retrieves all devices currently in the given status.
func (repo *deviceRepository) FindDevicesByStatus(ctx context.Context, status entity.DeviceStatus) ([]*entity.Device, error) {
	var deviceModels []*model.DeviceModel

	if err := repo.db.WithContext(ctx).
		Where("status = ?", status.String()).
		Order("created_at DESC").
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find devices by status")
	}

	devices := make([]*entity.Device, 0, len(deviceModels))
	for _, deviceM := range deviceModels {
		devices = append(devices, toDeviceDomain(deviceM))
	}

	return devices, nil
}

// FindDevicesByTechnician retrieves all devices assigned to a technician.
func (repo *deviceRepository) FindDevicesByTechnician(ctx context.Context, technicianID uuid.UUID) ([]*entity.Device, error) {
	var deviceModels []*model.DeviceModel

	if err := repo.db.WithContext(ctx).
		Where("assigned_to = ?", technicianID).
		Order("created_at DESC").
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find devices by technician")
	}

	devices := make([]*entity.Device, 0, len(deviceModels))
	for _, deviceM := range deviceModels {
		devices = append(devices, toDeviceDomain(deviceM))
	}

	return devices, nil
}

// UpdateDevice persists field corrections captured after intake.
func (repo *deviceRepository) UpdateDevice(ctx context.Context, device *entity.Device) error {
	deviceM := fromDeviceDomain(device)

	result := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("id = ?", device.ID).
		Updates(map[string]any{
			"brand":              deviceM.Brand,
			"model":              deviceM.Model,
			"serial_number":      deviceM.SerialNumber,
			"issue":              deviceM.Issue,
			"customer_name":      deviceM.CustomerName,
			"customer_phone":     deviceM.CustomerPhone,
			"repair_cost":        deviceM.RepairCost,
			"deposit_amount":     deviceM.DepositAmount,
			"expected_return_at": deviceM.ExpectedReturnAt,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateDevice
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update device")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// UpdateDeviceStatus moves the device to its next status only while it is
// still in expectedFrom. The guard in the WHERE clause is what detects a
// concurrent transition: zero affected rows means someone else moved the
// device first (or it never existed). The optional remark is written in the
// same transaction so the notes trail never references a status change that
// was not committed.
func (repo *deviceRepository) UpdateDeviceStatus(ctx context.Context, id uuid.UUID, expectedFrom, to entity.DeviceStatus, remark *entity.DeviceRemark) error {
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.
			Model(&model.DeviceModel{}).
			Where("id = ? AND status = ?", id, expectedFrom.String()).
			Update("status", to.String())
		if result.Error != nil {
			return errors.Wrap(result.Error, "failed to update device status")
		}
		if result.RowsAffected == 0 {
			return repository.ErrDeviceNotFound
		}

		if remark != nil {
			remarkM := fromRemarkDomain(remark)
			if err := tx.Create(remarkM).Error; err != nil {
				return errors.Wrap(err, "failed to record transition remark")
			}
			remark.ID = remarkM.ID
			remark.CreatedAt = remarkM.CreatedAt
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return repository.ErrDeviceNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to execute status transition")
	}

	return nil
}

// AssignTechnician sets or clears the technician responsible for a device.
func (repo *deviceRepository) AssignTechnician(ctx context.Context, id uuid.UUID, technicianID *uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("id = ?", id).
		Update("assigned_to", technicianID)

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrStaffNotFound
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to assign technician")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// AppendRemark adds one entry to the device's ordered notes trail.
func (repo *deviceRepository) AppendRemark(ctx context.Context, remark *entity.DeviceRemark) error {
	remarkM := fromRemarkDomain(remark)

	if err := repo.db.WithContext(ctx).Create(remarkM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrDeviceNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to append remark")
	}

	remark.ID = remarkM.ID
	remark.CreatedAt = remarkM.CreatedAt

	return nil
}

// ListRemarks returns the device's notes trail in creation order.
func (repo *deviceRepository) ListRemarks(ctx context.Context, deviceID uuid.UUID) ([]*entity.DeviceRemark, error) {
	var remarkModels []*model.DeviceRemarkModel

	if err := repo.db.WithContext(ctx).
		Where("device_id = ?", deviceID).
		Order("created_at ASC").
		Find(&remarkModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list remarks")
	}

	remarks := make([]*entity.DeviceRemark, 0, len(remarkModels))
	for _, remarkM := range remarkModels {
		remarks = append(remarks, toRemarkDomain(remarkM))
	}

	return remarks, nil
}

// toDeviceDomain converts a GORM model to a domain entity.
func toDeviceDomain(deviceM *model.DeviceModel) *entity.Device {
	return &entity.Device{
		ID:               deviceM.ID,
		Brand:            deviceM.Brand,
		Model:            deviceM.Model,
		SerialNumber:     deviceM.SerialNumber,
		Issue:            deviceM.Issue,
		CustomerName:     deviceM.CustomerName,
		CustomerPhone:    deviceM.CustomerPhone,
		AssignedTo:       deviceM.AssignedTo,
		Status:           entity.DeviceStatus(deviceM.Status),
		RepairCost:       deviceM.RepairCost,
		DepositAmount:    deviceM.DepositAmount,
		ExpectedReturnAt: deviceM.ExpectedReturnAt,
		CreatedAt:        deviceM.CreatedAt,
		UpdatedAt:        deviceM.UpdatedAt,
	}
}

// fromDeviceDomain converts a domain entity to a GORM model.
func fromDeviceDomain(device *entity.Device) *model.DeviceModel {
	return &model.DeviceModel{
		ID:               device.ID,
		Brand:            device.Brand,
		Model:            device.Model,
		SerialNumber:     device.SerialNumber,
		Issue:            device.Issue,
		CustomerName:     device.CustomerName,
		CustomerPhone:    device.CustomerPhone,
		AssignedTo:       device.AssignedTo,
		Status:           device.Status.String(),
		RepairCost:       device.RepairCost,
		DepositAmount:    device.DepositAmount,
		ExpectedReturnAt: device.ExpectedReturnAt,
		CreatedAt:        device.CreatedAt,
		UpdatedAt:        device.UpdatedAt,
	}
}

func toRemarkDomain(remarkM *model.DeviceRemarkModel) *entity.DeviceRemark {
	return &entity.DeviceRemark{
		ID:        remarkM.ID,
		DeviceID:  remarkM.DeviceID,
		Content:   remarkM.Content,
		CreatedBy: remarkM.CreatedBy,
		CreatedAt: remarkM.CreatedAt,
	}
}

func fromRemarkDomain(remark *entity.DeviceRemark) *model.DeviceRemarkModel {
	return &model.DeviceRemarkModel{
		ID:        remark.ID,
		DeviceID:  remark.DeviceID,
		Content:   remark.Content,
		CreatedBy: remark.CreatedBy,
		CreatedAt: remark.CreatedAt,
	}
}
