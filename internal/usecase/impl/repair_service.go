package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "fixtrack/internal/delivery/context"
	"fixtrack/internal/domain/entity"
	domainerrors "fixtrack/internal/domain/errors"
	"fixtrack/internal/domain/repository"
	"fixtrack/internal/domain/service"
	"fixtrack/internal/domain/transition"
	"fixtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type repairService struct {
	deviceRepo      repository.DeviceRepository
	partRepo        repository.RepairPartRepository
	paymentRepo     repository.PaymentRepository
	staffDeviceRepo repository.StaffDeviceRepository
	evaluator       *transition.Evaluator
	publisher       service.EventPublisher
	notifier        service.NotificationService
	logger          *slog.Logger
}

// RepairServiceParams holds dependencies for RepairService, injected by Fx.
type RepairServiceParams struct {
	fx.In

	DeviceRepo      repository.DeviceRepository
	PartRepo        repository.RepairPartRepository
	PaymentRepo     repository.PaymentRepository
	StaffDeviceRepo repository.StaffDeviceRepository
	Evaluator       *transition.Evaluator
	Publisher       service.EventPublisher
	Notifier        service.NotificationService `optional:"true"`
	Logger          *slog.Logger
}

// NewRepairService creates the transition executor. The notifier is optional:
// without push credentials the technician simply gets no phone notification.
func NewRepairService(params RepairServiceParams) usecase.RepairUsecase {
	return &repairService{
		deviceRepo:      params.DeviceRepo,
		partRepo:        params.PartRepo,
		paymentRepo:     params.PaymentRepo,
		staffDeviceRepo: params.StaffDeviceRepo,
		evaluator:       params.Evaluator,
		publisher:       params.Publisher,
		notifier:        params.Notifier,
		logger:          params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *repairService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// AvailableTransitions evaluates the registry against freshly fetched state.
func (s *repairService) AvailableTransitions(ctx context.Context, deviceID uuid.UUID, actor entity.Actor) ([]usecase.AvailableTransition, error) {
	device, snap, err := s.loadDeviceState(ctx, deviceID)
	if err != nil {
		return nil, err
	}

	available := s.evaluator.AvailableTransitions(device, actor, snap)
	out := make([]usecase.AvailableTransition, 0, len(available))
	for _, t := range available {
		out = append(out, usecase.AvailableTransition{
			To:             t.To,
			Label:          t.Label,
			Description:    t.Description,
			RequiresNotes:  t.RequiresNotes,
			NeedsParts:     needsPartsSelection(t),
			NeedsChecklist: needsChecklist(t),
		})
	}

	return out, nil
}

// ExecuteTransition applies one status change. Preconditions are re-validated
// against freshly fetched state: the evaluation that rendered the button may
// be stale, and a concurrent actor may have moved parts or payments since.
func (s *repairService) ExecuteTransition(ctx context.Context, deviceID uuid.UUID, to entity.DeviceStatus, actor entity.Actor, req *usecase.TransitionRequest) (*entity.Device, error) {
	if req == nil {
		req = &usecase.TransitionRequest{}
	}

	device, snap, err := s.loadDeviceState(ctx, deviceID)
	if err != nil {
		return nil, err
	}

	tr, ok := s.evaluator.Registry().Find(device.Status, to)
	if !ok {
		return nil, domainerrors.ErrInvalidTransition.WithDetails(
			"no transition from " + device.Status.String() + " to " + to.String())
	}

	if !s.evaluator.Authorize(device, actor, tr) {
		return nil, domainerrors.ErrPermissionDenied
	}

	if res := tr.Check(device, snap); !res.Valid {
		return nil, domainerrors.ErrValidationFailed.WithDetails(res.Reason)
	}

	notes := strings.TrimSpace(req.Notes)
	if tr.RequiresNotes && notes == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("operator notes are required for this status change")
	}

	if needsChecklist(tr) && !req.ChecklistComplete {
		return nil, domainerrors.ErrValidationFailed.WithDetails("the diagnostic checklist must be completed before diagnosis can start")
	}

	// Parts sub-flow: the part rows are written before the status change, and
	// a failure there aborts the transition entirely. The reverse failure -
	// parts saved but status not - has its own error code because the two
	// writes are separate calls with no shared transaction.
	partsCreated := false
	if needsPartsSelection(tr) {
		if len(req.Parts) == 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("at least one spare part must be selected")
		}
		if err := s.createRequestedParts(ctx, device.ID, req.Parts); err != nil {
			return nil, domainerrors.ErrPersistenceFailure.WithDetails(err.Error())
		}
		partsCreated = true
	}

	var remark *entity.DeviceRemark
	if notes != "" {
		remark = &entity.DeviceRemark{
			ID:        uuid.New(),
			DeviceID:  device.ID,
			Content:   notes,
			CreatedBy: actor.ID,
			CreatedAt: time.Now(),
		}
	}

	if err := s.deviceRepo.UpdateDeviceStatus(ctx, device.ID, device.Status, to, remark); err != nil {
		if partsCreated {
			s.log(ctx).Error("Status update failed after parts were created",
				slog.String("deviceID", device.ID.String()),
				slog.Any("error", err),
			)

			return nil, domainerrors.ErrPartsSavedStatusFailed.WithDetails(err.Error())
		}
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, domainerrors.ErrInvalidTransition.WithDetails("the device status changed concurrently, refresh and try again")
		}

		return nil, domainerrors.ErrPersistenceFailure.WithDetails(err.Error())
	}

	from := device.Status
	device.Status = to
	device.UpdatedAt = time.Now()

	s.notifyStatusChange(ctx, device, from, actor)

	return device, nil
}

// loadDeviceState fetches the device and rebuilds the precondition snapshot.
// Every evaluation and every final gate goes through here so the data is
// always fresh from the persistence layer.
func (s *repairService) loadDeviceState(ctx context.Context, deviceID uuid.UUID) (*entity.Device, transition.Snapshot, error) {
	device, err := s.deviceRepo.FindDeviceByID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, transition.Snapshot{}, domainerrors.ErrDeviceNotFound
		}

		return nil, transition.Snapshot{}, domainerrors.ErrPersistenceFailure.WithDetails(err.Error())
	}

	parts, err := s.partRepo.FindPartsByDevice(ctx, deviceID)
	if err != nil {
		return nil, transition.Snapshot{}, domainerrors.ErrPersistenceFailure.WithDetails(err.Error())
	}

	aggregate, err := s.paymentRepo.GetPaymentAggregate(ctx, deviceID)
	if err != nil {
		return nil, transition.Snapshot{}, domainerrors.ErrPersistenceFailure.WithDetails(err.Error())
	}

	snap := transition.Snapshot{Parts: parts}
	if aggregate != nil {
		snap.Payments = *aggregate
	}

	return device, snap, nil
}

func (s *repairService) createRequestedParts(ctx context.Context, deviceID uuid.UUID, selections []usecase.PartSelection) error {
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
			Name:        sel.Name,
			PartRef:     sel.PartRef,
			Quantity:    quantity,
			CostPerUnit: sel.CostPerUnit,
			Status:      entity.PartNeeded,
			Notes:       sel.Notes,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	return s.partRepo.CreateParts(ctx, parts)
}

// notifyStatusChange emits the status-change event and pushes to the assigned
// technician's phones. Both are best-effort: the transition already
// succeeded, so failures are logged and swallowed.
func (s *repairService) notifyStatusChange(ctx context.Context, device *entity.Device, from entity.DeviceStatus, actor entity.Actor) {
	if s.publisher != nil {
		event := &service.StatusChangeEvent{
			RequestID:     deliverycontext.GetRequestIDFromContext(ctx),
			DeviceID:      device.ID.String(),
			FromStatus:    from.String(),
			ToStatus:      device.Status.String(),
			ActorID:       actor.ID.String(),
			ActorRole:     actor.Role.String(),
			CustomerName:  device.CustomerName,
			CustomerPhone: device.CustomerPhone,
			Message:       customerStatusMessage(device),
		}
		if err := s.publisher.PublishStatusChange(ctx, event); err != nil {
			s.log(ctx).Error("Failed to publish status-change event",
				slog.String("deviceID", device.ID.String()),
				slog.Any("error", err),
			)
		}
	}

	if s.notifier == nil || s.staffDeviceRepo == nil || device.AssignedTo == nil {
		return
	}

	phones, err := s.staffDeviceRepo.FindActiveDevicesByStaff(ctx, *device.AssignedTo)
	if err != nil {
		s.log(ctx).Warn("Failed to load technician push registrations",
			slog.String("technicianID", device.AssignedTo.String()),
			slog.Any("error", err),
		)

		return
	}

	tokens := make([]string, 0, len(phones))
	for _, p := range phones {
		tokens = append(tokens, p.PushToken)
	}
	if len(tokens) == 0 {
		return
	}

	title := device.Brand + " " + device.Model
	body := staffStatusMessage(device.Status)
	data := map[string]string{
		"device_id": device.ID.String(),
		"status":    device.Status.String(),
	}
	if _, _, _, err := s.notifier.SendBatchNotification(ctx, tokens, title, body, data); err != nil {
		s.log(ctx).Warn("Failed to push status notification",
			slog.String("deviceID", device.ID.String()),
			slog.Any("error", err),
		)
	}
}

// needsPartsSelection marks the one edge whose confirmation must carry the
// parts-selection sub-flow result.
func needsPartsSelection(t transition.StatusTransition) bool {
	return t.From == entity.StatusDiagnosisStarted && t.To == entity.StatusAwaitingParts
}

// needsChecklist marks the edge gated on the diagnostic checklist sub-flow.
func needsChecklist(t transition.StatusTransition) bool {
	return t.From == entity.StatusAssigned && t.To == entity.StatusDiagnosisStarted
}
