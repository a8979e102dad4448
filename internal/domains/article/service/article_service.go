package service

import (
	"context"
	"fmt"

	"conduit-backend/internal/domains/article"
	"conduit-backend/internal/domains/tag"
	"conduit-backend/internal/shared/utils"
)

type articleService struct {
	articles article.Repository
	tags     tag.Repository
}

func NewArticleService(articles article.Repository, tags tag.Repository) article.Service {
	return &articleService{
		articles: articles,
		tags:     tags,
	}
}

func (s *articleService) Create(ctx context.Context, authorID int64, req article.CreateArticleRequest) (*article.ArticleResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	a := &article.Article{
		AuthorID:    authorID,
		Slug:        utils.Slugify(req.Title),
		Title:       req.Title,
		Description: req.Description,
		Body:        req.Body,
		TagList:     req.TagList,
	}

	if err := s.articles.Create(ctx, a); err != nil {
		return nil, err
	}

	if err := s.tags.SaveAll(ctx, a.TagList); err != nil {
		return nil, fmt.Errorf("record tags: %w", err)
	}

	// Reload to pick up the joined author row.
	return s.project(ctx, a.Slug, &authorID)
}

func (s *articleService) Get(ctx context.Context, viewerID *int64, slug string) (*article.ArticleResponse, error) {
	return s.project(ctx, slug, viewerID)
}

func (s *articleService) List(ctx context.Context, viewerID *int64, params article.ListParams) (*article.ArticlesEnvelope, error) {
	filter := article.NewFilter().
		Limit(params.Limit).
		Offset(params.Offset)
	if params.Author != "" {
		filter.Where(article.ByAuthor(params.Author))
	}
	if params.Tag != "" {
		filter.Where(article.ByTag(params.Tag))
	}
	if params.FavoritedBy != "" {
		filter.Where(article.ByFavoritedBy(params.FavoritedBy))
	}

	articles, err := s.articles.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	envelope := article.NewArticlesEnvelope(articles, viewerID)
	return &envelope, nil
}

func (s *articleService) Feed(ctx context.Context, viewerID int64, params article.FeedParams) (*article.ArticlesEnvelope, error) {
	filter := article.NewFilter().
		Where(article.ByFollowedBy(viewerID)).
		Limit(params.Limit).
		Offset(params.Offset)

	articles, err := s.articles.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	envelope := article.NewArticlesEnvelope(articles, &viewerID)
	return &envelope, nil
}

func (s *articleService) Update(ctx context.Context, viewerID int64, slug string, req article.UpdateArticleRequest) (*article.ArticleResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	a, err := s.articles.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if a.AuthorID != viewerID {
		return nil, article.ErrNotAuthor
	}

	// The slug follows the title: it regenerates only when the title
	// actually changes, so body-only edits keep existing links stable.
	if req.Title != nil && *req.Title != a.Title {
		a.Title = *req.Title
		a.Slug = utils.Slugify(*req.Title)
	}
	if req.Description != nil {
		a.Description = *req.Description
	}
	if req.Body != nil {
		a.Body = *req.Body
	}
	if req.TagList != nil {
		a.TagList = *req.TagList
	}

	if err := s.articles.Update(ctx, a); err != nil {
		return nil, err
	}

	if req.TagList != nil {
		if err := s.tags.SaveAll(ctx, a.TagList); err != nil {
			return nil, fmt.Errorf("record tags: %w", err)
		}
	}

	return s.project(ctx, a.Slug, &viewerID)
}

func (s *articleService) Delete(ctx context.Context, viewerID int64, slug string) error {
	a, err := s.articles.FindBySlug(ctx, slug)
	if err != nil {
		return err
	}
	if a.AuthorID != viewerID {
		return article.ErrNotAuthor
	}

	return s.articles.Delete(ctx, a.ID)
}

func (s *articleService) Favorite(ctx context.Context, viewerID int64, slug string) (*article.ArticleResponse, error) {
	a, err := s.articles.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if err := s.articles.Favorite(ctx, viewerID, a.ID); err != nil {
		return nil, err
	}

	return s.project(ctx, slug, &viewerID)
}

func (s *articleService) Unfavorite(ctx context.Context, viewerID int64, slug string) (*article.ArticleResponse, error) {
	a, err := s.articles.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if err := s.articles.Unfavorite(ctx, viewerID, a.ID); err != nil {
		return nil, err
	}

	return s.project(ctx, slug, &viewerID)
}

// project reloads the article with its relations and renders it for the
// viewer, so every mutation answers with current counts.
func (s *articleService) project(ctx context.Context, slug string, viewerID *int64) (*article.ArticleResponse, error) {
	a, err := s.articles.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	resp := article.NewArticleResponse(a, viewerID)
	return &resp, nil
}
