package impl

import (
	"context"
	"testing"

	"fixtrack/internal/domain/entity"
	"fixtrack/internal/domain/repository"
	"fixtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	deviceRepo *mockDeviceRepository
	qrService  *mockQRCodeService
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	t.Helper()

	deviceRepo := &mockDeviceRepository{}
	qrService := &mockQRCodeService{}
	service := NewDeviceService(deviceRepo, qrService, discardLogger())

	return deviceServiceFixtures{
		service:    service,
		deviceRepo: deviceRepo,
		qrService:  qrService,
	}
}

func TestDeviceService_RegisterDevice(t *testing.T) {
	f := createTestDeviceService(t)

	ctx := context.Background()
	f.deviceRepo.On("CreateDevice", ctx, mock.AnythingOfType("*entity.Device")).Return(nil)

	device, err := f.service.RegisterDevice(ctx, entity.Actor{ID: uuid.New(), Role: entity.RoleCustomerCare}, &usecase.DeviceIntake{
		Brand:         "Apple",
		Model:         "iPhone 12",
		SerialNumber:  "SN-1",
		Issue:         "Won't charge",
		CustomerName:  "John Doe",
		CustomerPhone: "+255700000002",
		RepairCost:    80000,
		DepositAmount: 20000,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusAssigned, device.Status)
	assert.Equal(t, "Apple", device.Brand)
	assert.NotEqual(t, uuid.Nil, device.ID)
}

func TestDeviceService_RegisterDevice_TechnicianForbidden(t *testing.T) {
	f := createTestDeviceService(t)

	_, err := f.service.RegisterDevice(context.Background(), entity.Actor{ID: uuid.New(), Role: entity.RoleTechnician}, &usecase.DeviceIntake{
		Brand:        "Apple",
		Model:        "iPhone 12",
		CustomerName: "John Doe",
	})
	assertErrorCode(t, err, "PERMISSION_DENIED")
	f.deviceRepo.AssertNotCalled(t, "CreateDevice", mock.Anything, mock.Anything)
}

func TestDeviceService_RegisterDevice_MissingFields(t *testing.T) {
	f := createTestDeviceService(t)

	_, err := f.service.RegisterDevice(context.Background(), entity.Actor{ID: uuid.New(), Role: entity.RoleAdmin}, &usecase.DeviceIntake{
		Brand: "Apple",
	})
	assertErrorCode(t, err, "VALIDATION_FAILED")
}

func TestDeviceService_RegisterDevice_DuplicateSerial(t *testing.T) {
	f := createTestDeviceService(t)

	ctx := context.Background()
	f.deviceRepo.On("CreateDevice", ctx, mock.AnythingOfType("*entity.Device")).
		Return(repository.ErrDuplicateDevice)

	_, err := f.service.RegisterDevice(ctx, entity.Actor{ID: uuid.New(), Role: entity.RoleAdmin}, &usecase.DeviceIntake{
		Brand:        "Apple",
		Model:        "iPhone 12",
		SerialNumber: "SN-1",
		CustomerName: "John Doe",
	})
	assertErrorCode(t, err, "VALIDATION_FAILED")
}

func TestDeviceService_GetDevice_NotFound(t *testing.T) {
	f := createTestDeviceService(t)

	ctx := context.Background()
	deviceID := uuid.New()
	f.deviceRepo.On("FindDeviceByID", ctx, deviceID).Return(nil, repository.ErrDeviceNotFound)

	_, err := f.service.GetDevice(ctx, deviceID)
	assertErrorCode(t, err, "DEVICE_NOT_FOUND")
}

func TestDeviceService_ListDevicesByStatus_UnknownStatus(t *testing.T) {
	f := createTestDeviceService(t)

	_, err := f.service.ListDevicesByStatus(context.Background(), entity.DeviceStatus("melted"))
	assertErrorCode(t, err, "VALIDATION_FAILED")
}

func TestDeviceService_UpdateDevice(t *testing.T) {
	f := createTestDeviceService(t)

	ctx := context.Background()
	techID := uuid.New()
	device := testDevice(entity.StatusInRepair, &techID)
	f.deviceRepo.On("FindDeviceByID", ctx, device.ID).Return(device, nil)
	f.deviceRepo.On("UpdateDevice", ctx, device).Return(nil)

	newCost := int64(60000)
	newModel := "Galaxy S21 Ultra"
	updated, err := f.service.UpdateDevice(ctx, entity.Actor{ID: uuid.New(), Role: entity.RoleAdmin}, device.ID, &usecase.DeviceUpdate{
		Model:      &newModel,
		RepairCost: &newCost,
	})
	require.NoError(t, err)
	assert.Equal(t, "Galaxy S21 Ultra", updated.Model)
	assert.Equal(t, int64(60000), updated.RepairCost)
	// Untouched fields keep their values.
	assert.Equal(t, "Samsung", updated.Brand)
}

func TestDeviceService_UpdateDevice_NegativeCost(t *testing.T) {
	f := createTestDeviceService(t)

	ctx := context.Background()
	techID := uuid.New()
	device := testDevice(entity.StatusInRepair, &techID)
	f.deviceRepo.On("FindDeviceByID", ctx, device.ID).Return(device, nil)

	badCost := int64(-1)
	_, err := f.service.UpdateDevice(ctx, entity.Actor{ID: uuid.New(), Role: entity.RoleAdmin}, device.ID, &usecase.DeviceUpdate{
		RepairCost: &badCost,
	})
	assertErrorCode(t, err, "VALIDATION_FAILED")
	f.deviceRepo.AssertNotCalled(t, "UpdateDevice", mock.Anything, mock.Anything)
}

func TestDeviceService_AssignTechnician_AdminOnly(t *testing.T) {
	f := createTestDeviceService(t)

	ctx := context.Background()
	deviceID := uuid.New()
	techID := uuid.New()

	err := f.service.AssignTechnician(ctx, entity.Actor{ID: uuid.New(), Role: entity.RoleCustomerCare}, deviceID, &techID)
	assertErrorCode(t, err, "PERMISSION_DENIED")

	f.deviceRepo.On("AssignTechnician", ctx, deviceID, &techID).Return(nil)
	err = f.service.AssignTechnician(ctx, entity.Actor{ID: uuid.New(), Role: entity.RoleAdmin}, deviceID, &techID)
	require.NoError(t, err)
}

func TestDeviceService_AppendRemark(t *testing.T) {
	f := createTestDeviceService(t)

	ctx := context.Background()
	actorID := uuid.New()
	techID := uuid.New()
	device := testDevice(entity.StatusInRepair, &techID)
	f.deviceRepo.On("FindDeviceByID", ctx, device.ID).Return(device, nil)
	f.deviceRepo.On("AppendRemark", ctx, mock.AnythingOfType("*entity.DeviceRemark")).Return(nil)

	remark, err := f.service.AppendRemark(ctx, entity.Actor{ID: actorID, Role: entity.RoleTechnician}, device.ID, "  Waiting on customer approval  ")
	require.NoError(t, err)
	assert.Equal(t, "Waiting on customer approval", remark.Content)
	assert.Equal(t, actorID, remark.CreatedBy)
}

func TestDeviceService_AppendRemark_Empty(t *testing.T) {
	f := createTestDeviceService(t)

	_, err := f.service.AppendRemark(context.Background(), entity.Actor{ID: uuid.New(), Role: entity.RoleAdmin}, uuid.New(), "   ")
	assertErrorCode(t, err, "VALIDATION_FAILED")
}

func TestDeviceService_GenerateDeviceTag(t *testing.T) {
	f := createTestDeviceService(t)

	ctx := context.Background()
	techID := uuid.New()
	device := testDevice(entity.StatusAssigned, &techID)
	f.deviceRepo.On("FindDeviceByID", ctx, device.ID).Return(device, nil)
	f.qrService.On("GenerateDeviceTag", device.ID).Return([]byte("png-bytes"), nil)

	png, err := f.service.GenerateDeviceTag(ctx, device.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), png)
}

func TestDeviceService_GenerateDeviceTag_QRFailure(t *testing.T) {
	f := createTestDeviceService(t)

	ctx := context.Background()
	techID := uuid.New()
	device := testDevice(entity.StatusAssigned, &techID)
	f.deviceRepo.On("FindDeviceByID", ctx, device.ID).Return(device, nil)
	f.qrService.On("GenerateDeviceTag", device.ID).Return(nil, errors.New("encode failed"))

	_, err := f.service.GenerateDeviceTag(ctx, device.ID)
	assertErrorCode(t, err, "INTERNAL_ERROR")
}
