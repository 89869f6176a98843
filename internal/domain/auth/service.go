package auth

import (
	"context"

	"github.com/karyahr/ess-backend-go/internal/domain/user"
)

// AuthService handles credential checks and token lifecycles.
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (RefreshResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	Me(ctx context.Context) (user.UserResponse, error)

	// Register creates a new user account (admin only).
	Register(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error)
}
