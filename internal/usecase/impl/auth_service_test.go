package impl

import (
	"context"
	"testing"

	"fixtrack/internal/domain/entity"
	"fixtrack/internal/domain/repository"
	"fixtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	staffRepo    *mockStaffRepository
	hasher       *mockPasswordHasher
	tokenService *mockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	t.Helper()

	staffRepo := &mockStaffRepository{}
	hasher := &mockPasswordHasher{}
	tokenService := &mockTokenService{}
	service := NewAuthService(staffRepo, hasher, tokenService, discardLogger())

	return authServiceFixtures{
		service:      service,
		staffRepo:    staffRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAuthService_RegisterStaff(t *testing.T) {
	f := createTestAuthService(t)

	ctx := context.Background()
	f.hasher.On("Hash", "s3cret-pass").Return("hashed", nil)
	f.staffRepo.On("CreateStaff", ctx, mock.AnythingOfType("*entity.StaffUser")).Return(nil)

	staff, err := f.service.RegisterStaff(ctx, &usecase.RegisterStaffInput{
		Email:    "Tech@Example.COM",
		Name:     "Asha",
		Password: "s3cret-pass",
		Role:     entity.RoleTechnician,
	})
	require.NoError(t, err)
	assert.Equal(t, "tech@example.com", staff.Email)
	assert.Equal(t, "hashed", staff.PasswordHash)
	assert.True(t, staff.IsActive)
}

func TestAuthService_RegisterStaff_ShortPassword(t *testing.T) {
	f := createTestAuthService(t)

	_, err := f.service.RegisterStaff(context.Background(), &usecase.RegisterStaffInput{
		Email:    "tech@example.com",
		Name:     "Asha",
		Password: "short",
		Role:     entity.RoleTechnician,
	})
	assertErrorCode(t, err, "VALIDATION_FAILED")
}

func TestAuthService_RegisterStaff_UnknownRole(t *testing.T) {
	f := createTestAuthService(t)

	_, err := f.service.RegisterStaff(context.Background(), &usecase.RegisterStaffInput{
		Email:    "tech@example.com",
		Name:     "Asha",
		Password: "s3cret-pass",
		Role:     entity.Role("janitor"),
	})
	assertErrorCode(t, err, "VALIDATION_FAILED")
}

func TestAuthService_RegisterStaff_DuplicateEmail(t *testing.T) {
	f := createTestAuthService(t)

	ctx := context.Background()
	f.hasher.On("Hash", "s3cret-pass").Return("hashed", nil)
	f.staffRepo.On("CreateStaff", ctx, mock.AnythingOfType("*entity.StaffUser")).
		Return(repository.ErrDuplicateStaff)

	_, err := f.service.RegisterStaff(ctx, &usecase.RegisterStaffInput{
		Email:    "tech@example.com",
		Name:     "Asha",
		Password: "s3cret-pass",
		Role:     entity.RoleTechnician,
	})
	assertErrorCode(t, err, "STAFF_ALREADY_EXISTS")
}

func TestAuthService_Login(t *testing.T) {
	f := createTestAuthService(t)

	ctx := context.Background()
	staffID := uuid.New()
	staff := &entity.StaffUser{
		ID:           staffID,
		Email:        "tech@example.com",
		Name:         "Asha",
		PasswordHash: "hashed",
		Role:         entity.RoleTechnician,
		IsActive:     true,
	}
	f.staffRepo.On("FindStaffByEmail", ctx, "tech@example.com").Return(staff, nil)
	f.hasher.On("Check", "s3cret-pass", "hashed").Return(true)
	f.tokenService.On("GenerateTokens", staffID, []string{"technician"}).
		Return("access-token", "refresh-token", nil)

	tokens, err := f.service.Login(ctx, "  Tech@Example.com ", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, "access-token", tokens.AccessToken)
	assert.Equal(t, "refresh-token", tokens.RefreshToken)
	assert.Equal(t, staffID, tokens.Staff.ID)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	f := createTestAuthService(t)

	ctx := context.Background()
	staff := &entity.StaffUser{
		ID:           uuid.New(),
		Email:        "tech@example.com",
		PasswordHash: "hashed",
		Role:         entity.RoleTechnician,
		IsActive:     true,
	}
	f.staffRepo.On("FindStaffByEmail", ctx, "tech@example.com").Return(staff, nil)
	f.hasher.On("Check", "wrong", "hashed").Return(false)

	_, err := f.service.Login(ctx, "tech@example.com", "wrong")
	assertErrorCode(t, err, "INVALID_CREDENTIALS")
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	f := createTestAuthService(t)

	ctx := context.Background()
	f.staffRepo.On("FindStaffByEmail", ctx, "nobody@example.com").
		Return(nil, repository.ErrStaffNotFound)

	_, err := f.service.Login(ctx, "nobody@example.com", "whatever")
	// Unknown email and wrong password are indistinguishable to the caller.
	assertErrorCode(t, err, "INVALID_CREDENTIALS")
}

func TestAuthService_Login_DeactivatedAccount(t *testing.T) {
	f := createTestAuthService(t)

	ctx := context.Background()
	staff := &entity.StaffUser{
		ID:           uuid.New(),
		Email:        "tech@example.com",
		PasswordHash: "hashed",
		Role:         entity.RoleTechnician,
		IsActive:     false,
	}
	f.staffRepo.On("FindStaffByEmail", ctx, "tech@example.com").Return(staff, nil)

	_, err := f.service.Login(ctx, "tech@example.com", "s3cret-pass")
	assertErrorCode(t, err, "INVALID_CREDENTIALS")
	f.hasher.AssertNotCalled(t, "Check", mock.Anything, mock.Anything)
}
