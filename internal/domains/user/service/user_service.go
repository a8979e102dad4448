package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"conduit-backend/internal/domains/user"
	"conduit-backend/pkg/jwt"
)

// bcrypt cost 12: slower than the default on purpose.
const bcryptCost = 12

type userService struct {
	repo   user.Repository
	tokens *jwt.Manager
}

func NewUserService(repo user.Repository, tokens *jwt.Manager) user.Service {
	return &userService{
		repo:   repo,
		tokens: tokens,
	}
}

func (s *userService) Register(ctx context.Context, req user.RegisterRequest) (*user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	newUser := &user.User{
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: string(passwordHash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// The unique indexes are the source of truth for duplicates; a
	// pre-check would race with concurrent registrations.
	if err := s.repo.Create(ctx, newUser); err != nil {
		return nil, err
	}

	return s.respond(newUser)
}

func (s *userService) Login(ctx context.Context, req user.LoginRequest) (*user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		// Unknown email and wrong password are indistinguishable.
		return nil, user.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, user.ErrInvalidCredentials
	}

	return s.respond(u)
}

func (s *userService) CurrentUser(ctx context.Context, userID int64) (*user.UserResponse, error) {
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.respond(u)
}

func (s *userService) UpdateUser(ctx context.Context, userID int64, req user.UpdateUserRequest) (*user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Absent fields mean "leave unchanged".
	if req.Email != nil {
		u.Email = *req.Email
	}
	if req.Username != nil {
		u.Username = *req.Username
	}
	if req.Bio != nil {
		u.Bio = *req.Bio
	}
	if req.Image != nil {
		u.Image = *req.Image
	}
	if req.Password != nil {
		passwordHash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		u.PasswordHash = string(passwordHash)
	}

	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}

	return s.respond(u)
}

func (s *userService) respond(u *user.User) (*user.UserResponse, error) {
	token, err := s.tokens.GenerateToken(u.ID)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	resp := user.NewUserResponse(u, token)
	return &resp, nil
}
