package postgres

import (
	"context"

	"garage/internal/domain/entity"
	"garage/internal/domain/repository"
	"garage/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindUserByID retrieves a user by its unique ID.
func (repo *userRepository) FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var profileM model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return toUserDomain(&profileM), nil
}

// FindUserByEmail retrieves a user by email address.
func (repo *userRepository) FindUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	var profileM model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&profileM), nil
}

// FindRolesByUserID retrieves the role names granted to a user.
func (repo *userRepository) FindRolesByUserID(ctx context.Context, userID uuid.UUID) ([]string, error) {
	var roles []string

	if err := repo.db.WithContext(ctx).
		Model(&model.UserRoleModel{}).
		Where("user_id = ?", userID).
		Pluck("role", &roles).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find roles by user ID")
	}

	return roles, nil
}

// toUserDomain converts a GORM ProfileModel to a domain User entity.
func toUserDomain(data *model.ProfileModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID,
		Email:        data.Email,
		FullName:     data.FullName,
		Phone:        data.Phone,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
