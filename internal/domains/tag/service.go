package tag

import "context"

type Service interface {
	List(ctx context.Context) ([]string, error)
}
