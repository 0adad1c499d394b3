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

// authService implements the AuthUsecase interface.
type authService struct {
	staffRepo    repository.StaffRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewAuthService creates a new staff identity service.
func NewAuthService(
	staffRepo repository.StaffRepository,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		staffRepo:    staffRepo,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
	}
}

func (s *authService) RegisterStaff(ctx context.Context, input *usecase.RegisterStaffInput) (*entity.StaffUser, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || strings.TrimSpace(input.Name) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name and email are required")
	}
	if len(input.Password) < 8 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("password must be at least 8 characters")
	}
	if !input.Role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown role: " + input.Role.String())
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrInternalError.WithDetails(err.Error())
	}

	now := time.Now()
	staff := &entity.StaffUser{
		ID:           uuid.New(),
		Email:        email,
		Name:         strings.TrimSpace(input.Name),
		PasswordHash: hash,
		Role:         input.Role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.staffRepo.CreateStaff(ctx, staff); err != nil {
		if errors.Is(err, repository.ErrDuplicateStaff) {
			return nil, domainerrors.ErrStaffAlreadyExists
		}

		return nil, domainerrors.ErrPersistenceFailure.WithDetails(err.Error())
	}

	s.logger.Info("Staff account created",
		slog.String("staffID", staff.ID.String()),
		slog.String("role", staff.Role.String()),
	)

	return staff, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*usecase.AuthTokens, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	staff, err := s.staffRepo.FindStaffByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrStaffNotFound) {
			// Same error as a wrong password so login probes cannot tell
			// which accounts exist.
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, domainerrors.ErrPersistenceFailure.WithDetails(err.Error())
	}

	if !staff.IsActive {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if !s.hasher.Check(password, staff.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	access, refresh, err := s.tokenService.GenerateTokens(staff.ID, []string{staff.Role.String()})
	if err != nil {
		return nil, domainerrors.ErrInternalError.WithDetails(err.Error())
	}

	return &usecase.AuthTokens{
		AccessToken:  access,
		RefreshToken: refresh,
		Staff:        staff,
	}, nil
}

func (s *authService) GetStaff(ctx context.Context, id uuid.UUID) (*entity.StaffUser, error) {
	staff, err := s.staffRepo.FindStaffByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrStaffNotFound) {
			return nil, domainerrors.ErrStaffNotFound
		}

		return nil, domainerrors.ErrPersistenceFailure.WithDetails(err.Error())
	}

	return staff, nil
}
