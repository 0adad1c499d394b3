package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"fixtrack/internal/domain/entity"
	domainerrors "fixtrack/internal/domain/errors"
	"fixtrack/internal/domain/repository"
	"fixtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type pushDeviceService struct {
	staffDeviceRepo repository.StaffDeviceRepository
	logger          *slog.Logger
}

// NewPushDeviceService creates a new staff push-token management service.
func NewPushDeviceService(
	staffDeviceRepo repository.StaffDeviceRepository,
	logger *slog.Logger,
) usecase.PushDeviceUsecase {
	return &pushDeviceService{
		staffDeviceRepo: staffDeviceRepo,
		logger:          logger,
	}
}

// RegisterDevice registers a staff phone. Registering the same client device
// again refreshes its token instead of creating a duplicate row.
func (s *pushDeviceService) RegisterDevice(ctx context.Context, staffID uuid.UUID, info *usecase.PushDeviceInfo) (*entity.StaffDevice, error) {
	if strings.TrimSpace(info.PushToken) == "" || strings.TrimSpace(info.DeviceID) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("push token and device id are required")
	}

	existing, err := s.staffDeviceRepo.FindDevicesByStaff(ctx, staffID)
	if err != nil {
		return nil, domainerrors.ErrPersistenceFailure.WithDetails(err.Error())
	}
	for _, device := range existing {
		if device.DeviceID == info.DeviceID {
			if err := s.staffDeviceRepo.UpdatePushToken(ctx, device.ID, info.PushToken); err != nil {
				return nil, domainerrors.ErrPersistenceFailure.WithDetails(err.Error())
			}
			device.PushToken = info.PushToken
			device.IsActive = true
			device.UpdatedAt = time.Now()

			return device, nil
		}
	}

	now := time.Now()
	device := &entity.StaffDevice{
		ID:        uuid.New(),
		StaffID:   staffID,
		PushToken: info.PushToken,
		DeviceID:  info.DeviceID,
		Platform:  info.Platform,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.staffDeviceRepo.CreateDevice(ctx, device); err != nil {
		return nil, domainerrors.ErrPersistenceFailure.WithDetails(err.Error())
	}

	s.logger.Info("Staff device registered",
		slog.String("staffID", staffID.String()),
		slog.String("platform", device.Platform),
	)

	return device, nil
}

func (s *pushDeviceService) UpdatePushToken(ctx context.Context, staffID, deviceID uuid.UUID, pushToken string) error {
	if strings.TrimSpace(pushToken) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("push token is required")
	}

	device, err := s.findOwnedDevice(ctx, staffID, deviceID)
	if err != nil {
		return err
	}

	if err := s.staffDeviceRepo.UpdatePushToken(ctx, device.ID, pushToken); err != nil {
		return domainerrors.ErrPersistenceFailure.WithDetails(err.Error())
	}

	return nil
}

func (s *pushDeviceService) GetStaffDevices(ctx context.Context, staffID uuid.UUID) ([]*entity.StaffDevice, error) {
	devices, err := s.staffDeviceRepo.FindActiveDevicesByStaff(ctx, staffID)
	if err != nil {
		return nil, domainerrors.ErrPersistenceFailure.WithDetails(err.Error())
	}

	return devices, nil
}

func (s *pushDeviceService) DeactivateDevice(ctx context.Context, staffID, deviceID uuid.UUID) error {
	device, err := s.findOwnedDevice(ctx, staffID, deviceID)
	if err != nil {
		return err
	}

	if err := s.staffDeviceRepo.DeleteDevice(ctx, device.ID); err != nil {
		return domainerrors.ErrPersistenceFailure.WithDetails(err.Error())
	}

	return nil
}

// findOwnedDevice loads one registration and checks it belongs to the caller,
// so staff cannot touch each other's phones.
func (s *pushDeviceService) findOwnedDevice(ctx context.Context, staffID, deviceID uuid.UUID) (*entity.StaffDevice, error) {
	devices, err := s.staffDeviceRepo.FindDevicesByStaff(ctx, staffID)
	if err != nil {
		if errors.Is(err, repository.ErrStaffDeviceNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, domainerrors.ErrPersistenceFailure.WithDetails(err.Error())
	}

	for _, device := range devices {
		if device.ID == deviceID {
			return device, nil
		}
	}

	return nil, domainerrors.ErrNotFound
}
