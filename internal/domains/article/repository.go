package article

import "context"

type Repository interface {
	Create(ctx context.Context, a *Article) error
	FindBySlug(ctx context.Context, slug string) (*Article, error)
	List(ctx context.Context, filter *Filter) ([]*Article, error)
	Update(ctx context.Context, a *Article) error
	Delete(ctx context.Context, id int64) error

	// Favorite and Unfavorite are idempotent; repeated calls are no-ops.
	Favorite(ctx context.Context, userID, articleID int64) error
	Unfavorite(ctx context.Context, userID, articleID int64) error
}
