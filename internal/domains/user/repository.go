package user

import "context"

// Repository is the data-access contract for users and the follows
// relation. Keeping it as an interface lets tests run against an in-memory
// stub.
type Repository interface {
	// Create inserts the user and fills in its id and timestamps.
	// Returns ErrEmailAlreadyExists or ErrUsernameAlreadyExists on a
	// unique violation.
	Create(ctx context.Context, u *User) error

	// FindByID returns ErrUserNotFound when the id does not exist.
	FindByID(ctx context.Context, id int64) (*User, error)

	// FindByEmail is used by login and is never served from cache.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// FindByUsername resolves profile routes.
	FindByUsername(ctx context.Context, username string) (*User, error)

	// Update persists email/username/password_hash/bio/image.
	// Returns the same conflict errors as Create.
	Update(ctx context.Context, u *User) error

	// Follow records follower -> followee. Idempotent: following an
	// already-followed user is a no-op.
	Follow(ctx context.Context, followerID, followeeID int64) error

	// Unfollow removes follower -> followee. Idempotent.
	Unfollow(ctx context.Context, followerID, followeeID int64) error

	// IsFollowing reports whether follower -> followee exists.
	IsFollowing(ctx context.Context, followerID, followeeID int64) (bool, error)
}
