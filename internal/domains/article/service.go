package article

import "context"

type ListParams struct {
	Tag         string
	Author      string
	FavoritedBy string
	Limit       int
	Offset      int
}

type FeedParams struct {
	Limit  int
	Offset int
}

type Service interface {
	Create(ctx context.Context, authorID int64, req CreateArticleRequest) (*ArticleResponse, error)
	Get(ctx context.Context, viewerID *int64, slug string) (*ArticleResponse, error)
	List(ctx context.Context, viewerID *int64, params ListParams) (*ArticlesEnvelope, error)
	Feed(ctx context.Context, viewerID int64, params FeedParams) (*ArticlesEnvelope, error)
	Update(ctx context.Context, viewerID int64, slug string, req UpdateArticleRequest) (*ArticleResponse, error)
	Delete(ctx context.Context, viewerID int64, slug string) error
	Favorite(ctx context.Context, viewerID int64, slug string) (*ArticleResponse, error)
	Unfavorite(ctx context.Context, viewerID int64, slug string) (*ArticleResponse, error)
}
