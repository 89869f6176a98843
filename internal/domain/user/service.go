package user

import (
	"context"
)

// UserService is the admin-facing account management surface.
type UserService interface {
	Get(ctx context.Context, id string) (UserResponse, error)
	List(ctx context.Context, activeOnly bool) ([]UserResponse, error)
	Update(ctx context.Context, req UpdateUserRequest) (UserResponse, error)
}
