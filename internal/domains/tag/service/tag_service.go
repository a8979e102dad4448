package service

import (
	"context"

	"conduit-backend/internal/domains/tag"
)

type tagService struct {
	repo tag.Repository
}

func NewTagService(repo tag.Repository) tag.Service {
	return &tagService{repo: repo}
}

func (s *tagService) List(ctx context.Context) ([]string, error) {
	return s.repo.List(ctx)
}
