package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"conduit-backend/internal/domains/profile"
	"conduit-backend/internal/domains/user"
)

type fakeUserRepo struct {
	byUsername map[string]*user.User
	follows    map[[2]int64]bool
}

func newFakeUserRepo(users ...*user.User) *fakeUserRepo {
	f := &fakeUserRepo{
		byUsername: make(map[string]*user.User),
		follows:    make(map[[2]int64]bool),
	}
	for _, u := range users {
		f.byUsername[u.Username] = u
	}
	return f
}

func (f *fakeUserRepo) Create(_ context.Context, _ *user.User) error { return nil }

func (f *fakeUserRepo) FindByID(_ context.Context, id int64) (*user.User, error) {
	for _, u := range f.byUsername {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, _ string) (*user.User, error) {
	return nil, user.ErrUserNotFound
}

func (f *fakeUserRepo) FindByUsername(_ context.Context, username string) (*user.User, error) {
	u, ok := f.byUsername[username]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) Update(_ context.Context, _ *user.User) error { return nil }

func (f *fakeUserRepo) Follow(_ context.Context, followerID, followeeID int64) error {
	f.follows[[2]int64{followerID, followeeID}] = true
	return nil
}

func (f *fakeUserRepo) Unfollow(_ context.Context, followerID, followeeID int64) error {
	delete(f.follows, [2]int64{followerID, followeeID})
	return nil
}

func (f *fakeUserRepo) IsFollowing(_ context.Context, followerID, followeeID int64) (bool, error) {
	return f.follows[[2]int64{followerID, followeeID}], nil
}

func TestGetProfile(t *testing.T) {
	repo := newFakeUserRepo(
		&user.User{ID: 1, Username: "jake", Bio: "bio", Image: "img"},
		&user.User{ID: 2, Username: "jane"},
	)
	svc := NewProfileService(repo)
	ctx := context.Background()

	t.Run("anonymous viewer never follows", func(t *testing.T) {
		resp, err := svc.Get(ctx, nil, "jake")
		require.NoError(t, err)
		assert.Equal(t, "jake", resp.Username)
		assert.False(t, resp.Following)
	})

	t.Run("unknown username", func(t *testing.T) {
		_, err := svc.Get(ctx, nil, "nobody")
		assert.ErrorIs(t, err, user.ErrUserNotFound)
	})

	t.Run("following flag reflects relation", func(t *testing.T) {
		viewer := int64(2)
		require.NoError(t, repo.Follow(ctx, 2, 1))

		resp, err := svc.Get(ctx, &viewer, "jake")
		require.NoError(t, err)
		assert.True(t, resp.Following)
	})
}

func TestFollowUnfollow(t *testing.T) {
	repo := newFakeUserRepo(
		&user.User{ID: 1, Username: "jake"},
		&user.User{ID: 2, Username: "jane"},
	)
	svc := NewProfileService(repo)
	ctx := context.Background()

	resp, err := svc.Follow(ctx, 2, "jake")
	require.NoError(t, err)
	assert.True(t, resp.Following)

	// Following twice changes nothing.
	resp, err = svc.Follow(ctx, 2, "jake")
	require.NoError(t, err)
	assert.True(t, resp.Following)

	resp, err = svc.Unfollow(ctx, 2, "jake")
	require.NoError(t, err)
	assert.False(t, resp.Following)

	// Unfollowing a non-followed profile is a no-op.
	resp, err = svc.Unfollow(ctx, 2, "jake")
	require.NoError(t, err)
	assert.False(t, resp.Following)
}

func TestSelfFollowRejected(t *testing.T) {
	repo := newFakeUserRepo(&user.User{ID: 1, Username: "jake"})
	svc := NewProfileService(repo)
	ctx := context.Background()

	_, err := svc.Follow(ctx, 1, "jake")
	assert.ErrorIs(t, err, profile.ErrSelfFollow)

	_, err = svc.Unfollow(ctx, 1, "jake")
	assert.ErrorIs(t, err, profile.ErrSelfFollow)
}
