package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"conduit-backend/internal/domains/user"
	"conduit-backend/pkg/cache"
	"conduit-backend/pkg/logger"
)

const (
	userCacheTTL       = 5 * time.Minute
	uniqueViolationSQL = "23505"
)

// postgresRepository implements user.Repository on pgx. User rows are
// cached by id with a short TTL; everything derived per viewer (the follows
// relation) is always read from the store.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) user.Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

func userCacheKey(id int64) string {
	return fmt.Sprintf("user:%d", id)
}

// mapUniqueViolation translates a unique-constraint violation into the
// matching domain error.
func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationSQL {
		switch {
		case strings.Contains(pgErr.ConstraintName, "email"):
			return user.ErrEmailAlreadyExists
		case strings.Contains(pgErr.ConstraintName, "username"):
			return user.ErrUsernameAlreadyExists
		}
	}
	return err
}

func (r *postgresRepository) Create(ctx context.Context, u *user.User) error {
	query := `
		INSERT INTO users (email, username, password_hash, bio, image, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := r.pool.QueryRow(ctx, query,
		u.Email,
		u.Username,
		u.PasswordHash,
		u.Bio,
		u.Image,
		u.CreatedAt,
		u.UpdatedAt,
	).Scan(&u.ID)

	if err != nil {
		return mapUniqueViolation(err)
	}

	return nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*user.User, error) {
	cacheKey := userCacheKey(id)

	var cached user.User
	if r.cache != nil {
		found, err := r.cache.Get(ctx, cacheKey, &cached)
		if err != nil {
			// Cache outage is non-critical; fall through to the store.
			logger.Error("user cache get failed", err)
		} else if found {
			return &cached, nil
		}
	}

	query := `
		SELECT id, email, username, password_hash, bio, image, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	u := &user.User{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&u.ID,
		&u.Email,
		&u.Username,
		&u.PasswordHash,
		&u.Bio,
		&u.Image,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}

	if r.cache != nil {
		if err := r.cache.Set(ctx, cacheKey, u, userCacheTTL); err != nil {
			logger.Error("user cache set failed", err)
		}
	}

	return u, nil
}

func (r *postgresRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	query := `
		SELECT id, email, username, password_hash, bio, image, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	u := &user.User{}
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&u.ID,
		&u.Email,
		&u.Username,
		&u.PasswordHash,
		&u.Bio,
		&u.Image,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}

	return u, nil
}

func (r *postgresRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	query := `
		SELECT id, email, username, password_hash, bio, image, created_at, updated_at
		FROM users
		WHERE username = $1
	`

	u := &user.User{}
	err := r.pool.QueryRow(ctx, query, username).Scan(
		&u.ID,
		&u.Email,
		&u.Username,
		&u.PasswordHash,
		&u.Bio,
		&u.Image,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by username: %w", err)
	}

	return u, nil
}

func (r *postgresRepository) Update(ctx context.Context, u *user.User) error {
	query := `
		UPDATE users
		SET email = $2,
		    username = $3,
		    password_hash = $4,
		    bio = $5,
		    image = $6,
		    updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query,
		u.ID,
		u.Email,
		u.Username,
		u.PasswordHash,
		u.Bio,
		u.Image,
	)
	if err != nil {
		return mapUniqueViolation(err)
	}

	if result.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	if r.cache != nil {
		if err := r.cache.Delete(ctx, userCacheKey(u.ID)); err != nil {
			logger.Error("user cache invalidation failed", err)
		}
	}

	return nil
}

// Follow is idempotent: re-following an already-followed user is a no-op
// thanks to ON CONFLICT DO NOTHING, so concurrent toggles cannot corrupt
// the relation.
func (r *postgresRepository) Follow(ctx context.Context, followerID, followeeID int64) error {
	query := `
		INSERT INTO follows (follower_id, followee_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`

	if _, err := r.pool.Exec(ctx, query, followerID, followeeID); err != nil {
		return fmt.Errorf("follow user: %w", err)
	}
	return nil
}

// Unfollow is idempotent: removing an absent pair affects zero rows and is
// not an error.
func (r *postgresRepository) Unfollow(ctx context.Context, followerID, followeeID int64) error {
	query := `
		DELETE FROM follows
		WHERE follower_id = $1 AND followee_id = $2
	`

	if _, err := r.pool.Exec(ctx, query, followerID, followeeID); err != nil {
		return fmt.Errorf("unfollow user: %w", err)
	}
	return nil
}

func (r *postgresRepository) IsFollowing(ctx context.Context, followerID, followeeID int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM follows WHERE follower_id = $1 AND followee_id = $2
		)
	`

	var following bool
	if err := r.pool.QueryRow(ctx, query, followerID, followeeID).Scan(&following); err != nil {
		return false, fmt.Errorf("check following: %w", err)
	}
	return following, nil
}
