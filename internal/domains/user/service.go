package user

import "context"

// Service is the business-logic contract for registration, login and the
// current-user endpoints.
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*UserResponse, error)
	Login(ctx context.Context, req LoginRequest) (*UserResponse, error)
	CurrentUser(ctx context.Context, userID int64) (*UserResponse, error)
	UpdateUser(ctx context.Context, userID int64, req UpdateUserRequest) (*UserResponse, error)
}
