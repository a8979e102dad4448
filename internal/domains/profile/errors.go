package profile

import "errors"

var (
	// Both follow and unfollow reject the self pair.
	ErrSelfFollow = errors.New("cannot follow yourself")
)
