package profile

import "context"

// Service resolves public profiles and the follow relation. The viewer is
// nil for anonymous requests, in which case following is always false.
type Service interface {
	Get(ctx context.Context, viewerID *int64, username string) (*ProfileResponse, error)
	Follow(ctx context.Context, viewerID int64, username string) (*ProfileResponse, error)
	Unfollow(ctx context.Context, viewerID int64, username string) (*ProfileResponse, error)
}
