package impl

import (
	"context"
	"testing"

	"garage/internal/domain/entity"
	domainerrors "garage/internal/domain/errors"
	"garage/internal/domain/repository"
	mockRepo "garage/internal/mocks/repository"
	mockSvc "garage/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Login_Success(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokens := mockSvc.NewMockTokenService(t)
	svc := NewAuthService(userRepo, hasher, tokens, testLogger())

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "admin@example.com", PasswordHash: "$2a$10$hash"}
	roles := []string{entity.RoleAdmin, entity.RoleEmployee}

	userRepo.EXPECT().FindUserByEmail(ctx, "admin@example.com").Return(user, nil)
	hasher.EXPECT().Check("hunter2", user.PasswordHash).Return(true)
	userRepo.EXPECT().FindRolesByUserID(ctx, user.ID).Return(roles, nil)
	tokens.EXPECT().GenerateTokens(user.ID, roles).Return("access", "refresh", nil)

	result, err := svc.Login(ctx, "admin@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "access", result.AccessToken)
	assert.Equal(t, "refresh", result.RefreshToken)
	assert.Equal(t, roles, result.Roles)
	assert.Equal(t, user, result.User)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokens := mockSvc.NewMockTokenService(t)
	svc := NewAuthService(userRepo, hasher, tokens, testLogger())

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "admin@example.com", PasswordHash: "$2a$10$hash"}

	userRepo.EXPECT().FindUserByEmail(ctx, "admin@example.com").Return(user, nil)
	hasher.EXPECT().Check("wrong", user.PasswordHash).Return(false)

	_, err := svc.Login(ctx, "admin@example.com", "wrong")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_UnknownEmailLooksLikeWrongPassword(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokens := mockSvc.NewMockTokenService(t)
	svc := NewAuthService(userRepo, hasher, tokens, testLogger())

	ctx := context.Background()
	userRepo.EXPECT().
		FindUserByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrUserNotFound)

	_, err := svc.Login(ctx, "nobody@example.com", "hunter2")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}
