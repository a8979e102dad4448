package comment

import "context"

type Service interface {
	Create(ctx context.Context, viewerID int64, slug string, req CreateCommentRequest) (*CommentResponse, error)
	ListByArticle(ctx context.Context, viewerID *int64, slug string) (*CommentsEnvelope, error)
	Delete(ctx context.Context, viewerID int64, slug string, commentID int64) error
}
