package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"fixtrack/internal/domain/entity"
	domainerrors "fixtrack/internal/domain/errors"
	"fixtrack/internal/domain/repository"
	"fixtrack/internal/domain/service"
	"fixtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
	qrService  service.QRCodeService
	logger     *slog.Logger
}

// NewDeviceService creates a new device intake and bookkeeping service.
func NewDeviceService(
	deviceRepo repository.DeviceRepository,
	qrService service.QRCodeService,
	logger *slog.Logger,
) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: deviceRepo,
		qrService:  qrService,
		logger:     logger,
	}
}

func (s *deviceService) RegisterDevice(ctx context.Context, actor entity.Actor, intake *usecase.DeviceIntake) (*entity.Device, error) {
	if actor.Role != entity.RoleCustomerCare && actor.Role != entity.RoleAdmin {
		return nil, domainerrors.ErrPermissionDenied
	}
	if strings.TrimSpace(intake.Brand) == "" || strings.TrimSpace(intake.Model) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("brand and model are required")
	}
	if strings.TrimSpace(intake.CustomerName) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("customer name is required")
	}
	if intake.RepairCost < 0 || intake.DepositAmount < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("amounts cannot be negative")
	}

	now := time.Now()
	device := &entity.Device{
		ID:               uuid.New(),
		Brand:            strings.TrimSpace(intake.Brand),
		Model:            strings.TrimSpace(intake.Model),
		SerialNumber:     strings.TrimSpace(intake.SerialNumber),
		Issue:            strings.TrimSpace(intake.Issue),
		CustomerName:     strings.TrimSpace(intake.CustomerName),
		CustomerPhone:    strings.TrimSpace(intake.CustomerPhone),
		AssignedTo:       intake.AssignedTo,
		Status:           entity.StatusAssigned,
		RepairCost:       intake.RepairCost,
		DepositAmount:    intake.DepositAmount,
		ExpectedReturnAt: intake.ExpectedReturnAt,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.deviceRepo.CreateDevice(ctx, device); err != nil {
		if errors.Is(err, repository.ErrDuplicateDevice) {
			return nil, domainerrors.ErrValidationFailed.WithDetails("a device with this serial number is already in service")
		}

		return nil, domainerrors.ErrPersistenceFailure.WithDetails(err.Error())
	}

	s.logger.Info("Device registered",
		slog.String("deviceID", device.ID.String()),
		slog.String("brand", device.Brand),
		slog.String("model", device.Model),
	)

	return device, nil
}

func (s *deviceService) GetDevice(ctx context.Context, id uuid.UUID) (*entity.Device, error) {
	device, err := s.deviceRepo.FindDeviceByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, domainerrors.ErrDeviceNotFound
		}

		return nil, domainerrors.ErrPersistenceFailure.WithDetails(err.Error())
	}

	return device, nil
}

func (s *deviceService) ListDevicesByStatus(ctx context.Context, status entity.DeviceStatus) ([]*entity.Device, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown device status: " + status.String())
	}

	devices, err := s.deviceRepo.FindDevicesByStatus(ctx, status)
	if err != nil {
		return nil, domainerrors.ErrPersistenceFailure.WithDetails(err.Error())
	}

	return devices, nil
}

func (s *deviceService) ListDevicesByTechnician(ctx context.Context, technicianID uuid.UUID) ([]*entity.Device, error) {
	devices, err := s.deviceRepo.FindDevicesByTechnician(ctx, technicianID)
	if err != nil {
		return nil, domainerrors.ErrPersistenceFailure.WithDetails(err.Error())
	}

	return devices, nil
}

func (s *deviceService) UpdateDevice(ctx context.Context, actor entity.Actor, id uuid.UUID, update *usecase.DeviceUpdate) (*entity.Device, error) {
	if actor.Role != entity.RoleCustomerCare && actor.Role != entity.RoleAdmin {
		return nil, domainerrors.ErrPermissionDenied
	}

	device, err := s.GetDevice(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Brand != nil {
		device.Brand = strings.TrimSpace(*update.Brand)
	}
	if update.Model != nil {
		device.Model = strings.TrimSpace(*update.Model)
	}
	if update.SerialNumber != nil {
		device.SerialNumber = strings.TrimSpace(*update.SerialNumber)
	}
	if update.Issue != nil {
		device.Issue = strings.TrimSpace(*update.Issue)
	}
	if update.RepairCost != nil {
		if *update.RepairCost < 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("repair cost cannot be negative")
		}
		device.RepairCost = *update.RepairCost
	}
	if update.DepositAmount != nil {
		if *update.DepositAmount < 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("deposit amount cannot be negative")
		}
		device.DepositAmount = *update.DepositAmount
	}
	device.UpdatedAt = time.Now()

	if err := s.deviceRepo.UpdateDevice(ctx, device); err != nil {
		return nil, domainerrors.ErrPersistenceFailure.WithDetails(err.Error())
	}

	return device, nil
}

func (s *deviceService) AssignTechnician(ctx context.Context, actor entity.Actor, deviceID uuid.UUID, technicianID *uuid.UUID) error {
	if actor.Role != entity.RoleAdmin {
		return domainerrors.ErrPermissionDenied
	}

	if err := s.deviceRepo.AssignTechnician(ctx, deviceID, technicianID); err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return domainerrors.ErrDeviceNotFound
		}

		return domainerrors.ErrPersistenceFailure.WithDetails(err.Error())
	}

	return nil
}

func (s *deviceService) AppendRemark(ctx context.Context, actor entity.Actor, deviceID uuid.UUID, content string) (*entity.DeviceRemark, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("remark content cannot be empty")
	}

	if _, err := s.GetDevice(ctx, deviceID); err != nil {
		return nil, err
	}

	remark := &entity.DeviceRemark{
		ID:        uuid.New(),
		DeviceID:  deviceID,
		Content:   content,
		CreatedBy: actor.ID,
		CreatedAt: time.Now(),
	}
	if err := s.deviceRepo.AppendRemark(ctx, remark); err != nil {
		return nil, domainerrors.ErrPersistenceFailure.WithDetails(err.Error())
	}

	return remark, nil
}

func (s *deviceService) ListRemarks(ctx context.Context, deviceID uuid.UUID) ([]*entity.DeviceRemark, error) {
	remarks, err := s.deviceRepo.ListRemarks(ctx, deviceID)
	if err != nil {
		return nil, domainerrors.ErrPersistenceFailure.WithDetails(err.Error())
	}

	return remarks, nil
}

func (s *deviceService) GenerateDeviceTag(ctx context.Context, deviceID uuid.UUID) ([]byte, error) {
	if _, err := s.GetDevice(ctx, deviceID); err != nil {
		return nil, err
	}

	png, err := s.qrService.GenerateDeviceTag(deviceID)
	if err != nil {
		return nil, domainerrors.ErrInternalError.WithDetails(err.Error())
	}

	return png, nil
}
