package service

import (
	"context"

	"conduit-backend/internal/domains/article"
	"conduit-backend/internal/domains/comment"
)

type commentService struct {
	comments comment.Repository
	articles article.Repository
}

func NewCommentService(comments comment.Repository, articles article.Repository) comment.Service {
	return &commentService{
		comments: comments,
		articles: articles,
	}
}

func (s *commentService) Create(ctx context.Context, viewerID int64, slug string, req comment.CreateCommentRequest) (*comment.CommentResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	a, err := s.articles.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	cm := &comment.Comment{
		ArticleID: a.ID,
		AuthorID:  viewerID,
		Body:      req.Body,
	}
	if err := s.comments.Create(ctx, cm); err != nil {
		return nil, err
	}

	// Reload to pick up the joined author row.
	cm, err = s.comments.FindByID(ctx, cm.ID)
	if err != nil {
		return nil, err
	}

	resp := comment.NewCommentResponse(cm, &viewerID)
	return &resp, nil
}

func (s *commentService) ListByArticle(ctx context.Context, viewerID *int64, slug string) (*comment.CommentsEnvelope, error) {
	a, err := s.articles.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	comments, err := s.comments.ListByArticle(ctx, a.ID)
	if err != nil {
		return nil, err
	}

	envelope := comment.NewCommentsEnvelope(comments, viewerID)
	return &envelope, nil
}

func (s *commentService) Delete(ctx context.Context, viewerID int64, slug string, commentID int64) error {
	a, err := s.articles.FindBySlug(ctx, slug)
	if err != nil {
		return err
	}

	cm, err := s.comments.FindByID(ctx, commentID)
	if err != nil {
		return err
	}

	// A comment id under the wrong article slug is treated as absent
	// rather than leaking its existence.
	if cm.ArticleID != a.ID {
		return comment.ErrCommentNotFound
	}
	if cm.AuthorID != viewerID {
		return comment.ErrNotCommentAuthor
	}

	return s.comments.Delete(ctx, cm.ID)
}
