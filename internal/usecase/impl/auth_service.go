package impl

import (
	"context"
	"log/slog"

	domainerrors "garage/internal/domain/errors"
	"garage/internal/domain/repository"
	"garage/internal/domain/service"
	"garage/internal/usecase"

	"github.com/pkg/errors"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	tokens   service.TokenService
	logger   *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
	tokens service.TokenService,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

// Login verifies the email/password pair and issues role-bearing tokens.
// Unknown emails and wrong passwords produce the same error.
func (srv *authService) Login(ctx context.Context, email, password string) (*usecase.LoginResult, error) {
	user, err := srv.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login rejected")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Check(password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login rejected")
	}

	roles, err := srv.userRepo.FindRolesByUserID(ctx, user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user roles")
	}

	accessToken, refreshToken, err := srv.tokens.GenerateTokens(user.ID, roles)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	srv.logger.Info("user logged in", "userID", user.ID, "roles", roles)

	return &usecase.LoginResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
		Roles:        roles,
	}, nil
}
