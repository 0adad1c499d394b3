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

// staffRepository implements the repository.StaffRepository interface.
type staffRepository struct {
	db *gorm.DB
}

// NewStaffRepository is the constructor for staffRepository.
func NewStaffRepository(db *gorm.DB) repository.StaffRepository {
	return &staffRepository{
		db: db,
	}
}

// CreateStaff persists a new staff account.
func (repo *staffRepository) CreateStaff(ctx context.Context, staff *entity.StaffUser) error {
	staffM := fromStaffDomain(staff)

	if err := repo.db.WithContext(ctx).Create(staffM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateStaff
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required staff information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create staff account")
	}

	staff.ID = staffM.ID
	staff.CreatedAt = staffM.CreatedAt
	staff.UpdatedAt = staffM.UpdatedAt

	return nil
}

// FindStaffByID retrieves a staff member by ID.
func (repo *staffRepository) FindStaffByID(ctx context.Context, id uuid.UUID) (*entity.StaffUser, error) {
	var staffM model.StaffUserModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&staffM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStaffNotFound
		}

		return nil, errors.Wrap(err, "failed to find staff by ID")
	}

	return toStaffDomain(&staffM), nil
}

// FindStaffByEmail retrieves a staff member by login email.
func (repo *staffRepository) FindStaffByEmail(ctx context.Context, email string) (*entity.StaffUser, error) {
	var staffM model.StaffUserModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&staffM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStaffNotFound
		}

		return nil, errors.Wrap(err, "failed to find staff by email")
	}

	return toStaffDomain(&staffM), nil
}

func toStaffDomain(staffM *model.StaffUserModel) *entity.StaffUser {
	return &entity.StaffUser{
		ID:           staffM.ID,
		Email:        staffM.Email,
		Name:         staffM.Name,
		PasswordHash: staffM.PasswordHash,
		Role:         entity.Role(staffM.Role),
		IsActive:     staffM.IsActive,
		CreatedAt:    staffM.CreatedAt,
		UpdatedAt:    staffM.UpdatedAt,
	}
}

func fromStaffDomain(staff *entity.StaffUser) *model.StaffUserModel {
	return &model.StaffUserModel{
		ID:           staff.ID,
		Email:        staff.Email,
		Name:         staff.Name,
		PasswordHash: staff.PasswordHash,
		Role:         staff.Role.String(),
		IsActive:     staff.IsActive,
		CreatedAt:    staff.CreatedAt,
		UpdatedAt:    staff.UpdatedAt,
	}
}
