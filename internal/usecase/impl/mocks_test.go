package impl

import (
	"context"
	"time"

	"fixtrack/internal/domain/entity"
	"fixtrack/internal/domain/repository"
	"fixtrack/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// Hand-written testify doubles for the repository and service interfaces the
// use cases depend on.

type mockDeviceRepository struct {
	mock.Mock
}

func (m *mockDeviceRepository) CreateDevice(ctx context.Context, device *entity.Device) error {
	args := m.Called(ctx, device)

	return args.Error(0)
}

func (m *mockDeviceRepository) FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.Device, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Device), args.Error(1)
}

func (m *mockDeviceRepository) FindDevicesByStatus(ctx context.Context, status entity.DeviceStatus) ([]*entity.Device, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Device), args.Error(1)
}

func (m *mockDeviceRepository) FindDevicesByTechnician(ctx context.Context, technicianID uuid.UUID) ([]*entity.Device, error) {
	args := m.Called(ctx, technicianID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Device), args.Error(1)
}

func (m *mockDeviceRepository) UpdateDevice(ctx context.Context, device *entity.Device) error {
	args := m.Called(ctx, device)

	return args.Error(0)
}

func (m *mockDeviceRepository) UpdateDeviceStatus(ctx context.Context, id uuid.UUID, expectedFrom, to entity.DeviceStatus, remark *entity.DeviceRemark) error {
	args := m.Called(ctx, id, expectedFrom, to, remark)

	return args.Error(0)
}

func (m *mockDeviceRepository) AssignTechnician(ctx context.Context, id uuid.UUID, technicianID *uuid.UUID) error {
	args := m.Called(ctx, id, technicianID)

	return args.Error(0)
}

func (m *mockDeviceRepository) AppendRemark(ctx context.Context, remark *entity.DeviceRemark) error {
	args := m.Called(ctx, remark)

	return args.Error(0)
}

func (m *mockDeviceRepository) ListRemarks(ctx context.Context, deviceID uuid.UUID) ([]*entity.DeviceRemark, error) {
	args := m.Called(ctx, deviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.DeviceRemark), args.Error(1)
}

type mockRepairPartRepository struct {
	mock.Mock
}

func (m *mockRepairPartRepository) CreateParts(ctx context.Context, parts []*entity.RepairPart) error {
	args := m.Called(ctx, parts)

	return args.Error(0)
}

func (m *mockRepairPartRepository) FindPartsByDevice(ctx context.Context, deviceID uuid.UUID) ([]*entity.RepairPart, error) {
	args := m.Called(ctx, deviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.RepairPart), args.Error(1)
}

func (m *mockRepairPartRepository) UpdatePartStatus(ctx context.Context, partID uuid.UUID, status entity.PartStatus) error {
	args := m.Called(ctx, partID, status)

	return args.Error(0)
}

func (m *mockRepairPartRepository) DeletePart(ctx context.Context, partID uuid.UUID) error {
	args := m.Called(ctx, partID)

	return args.Error(0)
}

type mockPaymentRepository struct {
	mock.Mock
}

func (m *mockPaymentRepository) GetPaymentAggregate(ctx context.Context, deviceID uuid.UUID) (*entity.PaymentAggregate, error) {
	args := m.Called(ctx, deviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.PaymentAggregate), args.Error(1)
}

func (m *mockPaymentRepository) ListPayments(ctx context.Context, deviceID uuid.UUID) ([]*entity.PaymentRecord, error) {
	args := m.Called(ctx, deviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.PaymentRecord), args.Error(1)
}

type mockStaffRepository struct {
	mock.Mock
}

func (m *mockStaffRepository) CreateStaff(ctx context.Context, staff *entity.StaffUser) error {
	args := m.Called(ctx, staff)

	return args.Error(0)
}

func (m *mockStaffRepository) FindStaffByID(ctx context.Context, id uuid.UUID) (*entity.StaffUser, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.StaffUser), args.Error(1)
}

func (m *mockStaffRepository) FindStaffByEmail(ctx context.Context, email string) (*entity.StaffUser, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.StaffUser), args.Error(1)
}

type mockStaffDeviceRepository struct {
	mock.Mock
}

func (m *mockStaffDeviceRepository) CreateDevice(ctx context.Context, device *entity.StaffDevice) error {
	args := m.Called(ctx, device)

	return args.Error(0)
}

func (m *mockStaffDeviceRepository) FindDevicesByStaff(ctx context.Context, staffID uuid.UUID) ([]*entity.StaffDevice, error) {
	args := m.Called(ctx, staffID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.StaffDevice), args.Error(1)
}

func (m *mockStaffDeviceRepository) FindActiveDevicesByStaff(ctx context.Context, staffID uuid.UUID) ([]*entity.StaffDevice, error) {
	args := m.Called(ctx, staffID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.StaffDevice), args.Error(1)
}

func (m *mockStaffDeviceRepository) UpdatePushToken(ctx context.Context, id uuid.UUID, pushToken string) error {
	args := m.Called(ctx, id, pushToken)

	return args.Error(0)
}

func (m *mockStaffDeviceRepository) DeleteDevice(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

type mockEventPublisher struct {
	mock.Mock
}

func (m *mockEventPublisher) PublishStatusChange(ctx context.Context, event *service.StatusChangeEvent) error {
	args := m.Called(ctx, event)

	return args.Error(0)
}

func (m *mockEventPublisher) Close() error {
	args := m.Called()

	return args.Error(0)
}

type mockNotificationService struct {
	mock.Mock
}

func (m *mockNotificationService) SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (int, int, []string, error) {
	args := m.Called(ctx, tokens, title, body, data)
	var invalid []string
	if args.Get(2) != nil {
		invalid = args.Get(2).([]string)
	}

	return args.Int(0), args.Int(1), invalid, args.Error(3)
}

func (m *mockNotificationService) SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error {
	args := m.Called(ctx, token, title, body, data)

	return args.Error(0)
}

type mockPasswordHasher struct {
	mock.Mock
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *mockPasswordHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) GenerateTokens(staffID uuid.UUID, roles []string) (string, string, error) {
	args := m.Called(staffID, roles)

	return args.String(0), args.String(1), args.Error(2)
}

func (m *mockTokenService) ValidateToken(tokenString string, secret string) (*jwt.Token, error) {
	args := m.Called(tokenString, secret)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*jwt.Token), args.Error(1)
}

func (m *mockTokenService) GetRefreshTokenDuration() time.Duration {
	args := m.Called()

	return args.Get(0).(time.Duration)
}

type mockQRCodeService struct {
	mock.Mock
}

func (m *mockQRCodeService) GenerateDeviceTag(deviceID uuid.UUID) ([]byte, error) {
	args := m.Called(deviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]byte), args.Error(1)
}

func (m *mockQRCodeService) ParseDeviceTag(qrData string) (uuid.UUID, error) {
	args := m.Called(qrData)

	return args.Get(0).(uuid.UUID), args.Error(1)
}

// mockTransactionManager runs the given function against a factory built from
// the same mocks the test configured, without any real transaction.
type mockTransactionManager struct {
	factory repository.RepositoryFactory
}

func (m *mockTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.factory)
}

type mockRepositoryFactory struct {
	deviceRepo repository.DeviceRepository
	partRepo   repository.RepairPartRepository
}

func (f *mockRepositoryFactory) NewDeviceRepository() repository.DeviceRepository {
	return f.deviceRepo
}

func (f *mockRepositoryFactory) NewRepairPartRepository() repository.RepairPartRepository {
	return f.partRepo
}
