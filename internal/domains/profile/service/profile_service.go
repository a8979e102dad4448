package service

import (
	"context"
	"fmt"

	"conduit-backend/internal/domains/profile"
	"conduit-backend/internal/domains/user"
)

type profileService struct {
	users user.Repository
}

func NewProfileService(users user.Repository) profile.Service {
	return &profileService{users: users}
}

func (s *profileService) Get(ctx context.Context, viewerID *int64, username string) (*profile.ProfileResponse, error) {
	target, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	following := false
	if viewerID != nil {
		following, err = s.users.IsFollowing(ctx, *viewerID, target.ID)
		if err != nil {
			return nil, fmt.Errorf("resolve following flag: %w", err)
		}
	}

	resp := profile.NewProfileResponse(target, following)
	return &resp, nil
}

func (s *profileService) Follow(ctx context.Context, viewerID int64, username string) (*profile.ProfileResponse, error) {
	target, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if target.ID == viewerID {
		return nil, profile.ErrSelfFollow
	}

	if err := s.users.Follow(ctx, viewerID, target.ID); err != nil {
		return nil, err
	}

	resp := profile.NewProfileResponse(target, true)
	return &resp, nil
}

func (s *profileService) Unfollow(ctx context.Context, viewerID int64, username string) (*profile.ProfileResponse, error) {
	target, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if target.ID == viewerID {
		return nil, profile.ErrSelfFollow
	}

	if err := s.users.Unfollow(ctx, viewerID, target.ID); err != nil {
		return nil, err
	}

	resp := profile.NewProfileResponse(target, false)
	return &resp, nil
}
