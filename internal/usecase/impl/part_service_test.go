package impl

import (
	"context"
	"testing"

	"fixtrack/internal/domain/entity"
	"fixtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// partServiceFixtures holds all test dependencies for part service tests.
type partServiceFixtures struct {
	service    usecase.PartUsecase
	partRepo   *mockRepairPartRepository
	deviceRepo *mockDeviceRepository
}

func createTestPartService(t *testing.T) partServiceFixtures {
	t.Helper()

	partRepo := &mockRepairPartRepository{}
	deviceRepo := &mockDeviceRepository{}
	txManager := &mockTransactionManager{
		factory: &mockRepositoryFactory{deviceRepo: deviceRepo, partRepo: partRepo},
	}
	service := NewPartService(partRepo, deviceRepo, txManager, discardLogger())

	return partServiceFixtures{
		service:    service,
		partRepo:   partRepo,
		deviceRepo: deviceRepo,
	}
}

func TestPartService_RequestParts(t *testing.T) {
	f := createTestPartService(t)

	ctx := context.Background()
	techID := uuid.New()
	device := testDevice(entity.StatusInRepair, &techID)
	f.deviceRepo.On("FindDeviceByID", ctx, device.ID).Return(device, nil)
	f.partRepo.On("CreateParts", ctx, mock.AnythingOfType("[]*entity.RepairPart")).Return(nil)

	parts, err := f.service.RequestParts(ctx, entity.Actor{ID: techID, Role: entity.RoleTechnician}, device.ID, []usecase.PartSelection{
		{Name: "Charging port", Quantity: 0, CostPerUnit: 8000},
	})
	require.NoError(t, err)
	require.Len(t, parts, 1)
	assert.Equal(t, entity.PartNeeded, parts[0].Status)
	// Zero quantity defaults to one unit.
	assert.Equal(t, 1, parts[0].Quantity)
}

func TestPartService_RequestParts_CustomerCareForbidden(t *testing.T) {
	f := createTestPartService(t)

	_, err := f.service.RequestParts(context.Background(), entity.Actor{ID: uuid.New(), Role: entity.RoleCustomerCare}, uuid.New(), []usecase.PartSelection{
		{Name: "Charging port"},
	})
	assertErrorCode(t, err, "PERMISSION_DENIED")
}

func TestPartService_RequestParts_EmptySelection(t *testing.T) {
	f := createTestPartService(t)

	_, err := f.service.RequestParts(context.Background(), entity.Actor{ID: uuid.New(), Role: entity.RoleAdmin}, uuid.New(), nil)
	assertErrorCode(t, err, "VALIDATION_FAILED")
}

func TestPartService_UpdatePartStatus_UnknownStatus(t *testing.T) {
	f := createTestPartService(t)

	err := f.service.UpdatePartStatus(context.Background(), entity.Actor{ID: uuid.New(), Role: entity.RoleAdmin}, uuid.New(), entity.PartStatus("vaporized"))
	assertErrorCode(t, err, "VALIDATION_FAILED")
}

func TestPartService_ReceiveAllPending(t *testing.T) {
	f := createTestPartService(t)

	ctx := context.Background()
	deviceID := uuid.New()
	pendingOne := uuid.New()
	pendingTwo := uuid.New()
	parts := []*entity.RepairPart{
		{ID: pendingOne, DeviceID: deviceID, Name: "screen", Status: entity.PartNeeded},
		{ID: pendingTwo, DeviceID: deviceID, Name: "battery", Status: entity.PartOrdered},
		{ID: uuid.New(), DeviceID: deviceID, Name: "frame", Status: entity.PartReceived},
	}
	f.partRepo.On("FindPartsByDevice", ctx, deviceID).Return(parts, nil)
	f.partRepo.On("UpdatePartStatus", ctx, pendingOne, entity.PartReceived).Return(nil)
	f.partRepo.On("UpdatePartStatus", ctx, pendingTwo, entity.PartReceived).Return(nil)

	count, err := f.service.ReceiveAllPending(ctx, entity.Actor{ID: uuid.New(), Role: entity.RoleCustomerCare}, deviceID)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	f.partRepo.AssertExpectations(t)
}

func TestPartService_ReceiveAllPending_TechnicianForbidden(t *testing.T) {
	f := createTestPartService(t)

	_, err := f.service.ReceiveAllPending(context.Background(), entity.Actor{ID: uuid.New(), Role: entity.RoleTechnician}, uuid.New())
	assertErrorCode(t, err, "PERMISSION_DENIED")
}

func TestPartService_RemovePart_AdminOnly(t *testing.T) {
	f := createTestPartService(t)

	ctx := context.Background()
	partID := uuid.New()

	err := f.service.RemovePart(ctx, entity.Actor{ID: uuid.New(), Role: entity.RoleTechnician}, partID)
	assertErrorCode(t, err, "PERMISSION_DENIED")

	f.partRepo.On("DeletePart", ctx, partID).Return(nil)
	err = f.service.RemovePart(ctx, entity.Actor{ID: uuid.New(), Role: entity.RoleAdmin}, partID)
	require.NoError(t, err)
}
