package comment

import "context"

type Repository interface {
	Create(ctx context.Context, cm *Comment) error
	FindByID(ctx context.Context, id int64) (*Comment, error)
	ListByArticle(ctx context.Context, articleID int64) ([]*Comment, error)
	Delete(ctx context.Context, id int64) error
}
