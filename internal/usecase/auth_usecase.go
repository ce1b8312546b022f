package usecase

import (
	"context"

	"garage/internal/domain/entity"
)

// LoginResult carries the issued tokens and the authenticated user.
type LoginResult struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         *entity.User `json:"user"`
	Roles        []string     `json:"roles"`
}

// AuthUsecase authenticates portal users.
type AuthUsecase interface {
	// Login verifies the email/password pair and issues role-bearing tokens.
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}
