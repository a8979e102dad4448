package tag

import "context"

// Repository maintains the global tag catalogue. Tags are only ever
// added; deleting an article leaves its tags behind.
type Repository interface {
	SaveAll(ctx context.Context, names []string) error
	List(ctx context.Context) ([]string, error)
}
