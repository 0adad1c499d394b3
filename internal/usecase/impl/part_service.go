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

type partService struct {
	partRepo   repository.RepairPartRepository
	deviceRepo repository.DeviceRepository
	txManager  repository.TransactionManager
	logger     *slog.Logger
}

// NewPartService creates a new spare-part management service.
func NewPartService(
	partRepo repository.RepairPartRepository,
	deviceRepo repository.DeviceRepository,
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.PartUsecase {
	return &partService{
		partRepo:   partRepo,
		deviceRepo: deviceRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

func (s *partService) ListParts(ctx context.Context, deviceID uuid.UUID) ([]*entity.RepairPart, error) {
	parts, err := s.partRepo.FindPartsByDevice(ctx, deviceID)
	if err != nil {
		return nil, domainerrors.ErrPersistenceFailure.WithDetails(err.Error())
	}

	return parts, nil
}

func (s *partService) RequestParts(ctx context.Context, actor entity.Actor, deviceID uuid.UUID, selections []usecase.PartSelection) ([]*entity.RepairPart, error) {
	if actor.Role != entity.RoleTechnician && actor.Role != entity.RoleAdmin {
		return nil, domainerrors.ErrPermissionDenied
	}
	if len(selections) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("at least one spare part must be given")
	}
	for _, sel := range selections {
		if strings.TrimSpace(sel.Name) == "" {
			return nil, domainerrors.ErrValidationFailed.WithDetails("part name cannot be empty")
		}
	}

	if _, err := s.deviceRepo.FindDeviceByID(ctx, deviceID); err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, domainerrors.ErrDeviceNotFound
		}

		return nil, domainerrors.ErrPersistenceFailure.WithDetails(err.Error())
	}

	now := time.Now()
	parts := make([]*entity.RepairPart, 0, len(selections))
	for _, sel := range selections {
		quantity := sel.Quantity
		if quantity <= 0 {
			quantity = 1
		}
		parts = append(parts, &entity.RepairPart{
			ID:          uuid.New(),
			DeviceID:    deviceID,
			Name:        strings.TrimSpace(sel.Name),
			PartRef:     strings.TrimSpace(sel.PartRef),
			Quantity:    quantity,
			CostPerUnit: sel.CostPerUnit,
			Status:      entity.PartNeeded,
			Notes:       sel.Notes,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	if err := s.partRepo.CreateParts(ctx, parts); err != nil {
		return nil, domainerrors.ErrPersistenceFailure.WithDetails(err.Error())
	}

	return parts, nil
}

func (s *partService) UpdatePartStatus(ctx context.Context, actor entity.Actor, partID uuid.UUID, status entity.PartStatus) error {
	if !status.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown part status: " + status.String())
	}

	if err := s.partRepo.UpdatePartStatus(ctx, partID, status); err != nil {
		if errors.Is(err, repository.ErrPartNotFound) {
			return domainerrors.ErrPartNotFound
		}

		return domainerrors.ErrPersistenceFailure.WithDetails(err.Error())
	}

	return nil
}

// ReceiveAllPending marks every needed/ordered part of a device as received.
// The updates run in one transaction so a delivery is never half-recorded.
func (s *partService) ReceiveAllPending(ctx context.Context, actor entity.Actor, deviceID uuid.UUID) (int, error) {
	if actor.Role != entity.RoleCustomerCare && actor.Role != entity.RoleAdmin {
		return 0, domainerrors.ErrPermissionDenied
	}

	updated := 0
	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		partRepo := factory.NewRepairPartRepository()
		parts, err := partRepo.FindPartsByDevice(ctx, deviceID)
		if err != nil {
			return err
		}

		for _, part := range parts {
			if !part.Status.IsPending() {
				continue
			}
			if err := partRepo.UpdatePartStatus(ctx, part.ID, entity.PartReceived); err != nil {
				return err
			}
			updated++
		}

		return nil
	})
	if err != nil {
		return 0, domainerrors.ErrPersistenceFailure.WithDetails(err.Error())
	}

	s.logger.Info("Pending parts received",
		slog.String("deviceID", deviceID.String()),
		slog.Int("count", updated),
	)

	return updated, nil
}

func (s *partService) RemovePart(ctx context.Context, actor entity.Actor, partID uuid.UUID) error {
	if actor.Role != entity.RoleAdmin {
		return domainerrors.ErrPermissionDenied
	}

	if err := s.partRepo.DeletePart(ctx, partID); err != nil {
		if errors.Is(err, repository.ErrPartNotFound) {
			return domainerrors.ErrPartNotFound
		}

		return domainerrors.ErrPersistenceFailure.WithDetails(err.Error())
	}

	return nil
}
