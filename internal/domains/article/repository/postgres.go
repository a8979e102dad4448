package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"

	"conduit-backend/internal/domains/article"
	"conduit-backend/internal/infrastructure/database"
)

const uniqueViolationSQL = "23505"

// baseSelect joins the author row and aggregates the follower and
// favorite sets so the projection layer never has to go back to the
// database.
const baseSelect = `
SELECT a.id, a.author_id, a.slug, a.title, a.description, a.body, a.tag_list,
       a.created_at, a.updated_at,
       u.id, u.username, u.bio, u.image,
       COALESCE((SELECT array_agg(fl.follower_id) FROM follows fl WHERE fl.followee_id = u.id), '{}') AS follower_ids,
       COALESCE((SELECT array_agg(fv.user_id) FROM favorites fv WHERE fv.article_id = a.id), '{}') AS favorited_by
FROM articles a
JOIN users u ON u.id = a.author_id`

type postgresRepository struct {
	db *database.PostgresDB
}

func NewPostgresRepository(db *database.PostgresDB) article.Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) Create(ctx context.Context, a *article.Article) error {
	query := `
		INSERT INTO articles (author_id, slug, title, description, body, tag_list, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id, created_at, updated_at`

	err := r.db.Pool.QueryRow(ctx, query,
		a.AuthorID, a.Slug, a.Title, a.Description, a.Body, pq.Array(a.TagList),
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationSQL {
			return article.ErrDuplicateSlug
		}
		return fmt.Errorf("insert article: %w", err)
	}
	return nil
}

func (r *postgresRepository) FindBySlug(ctx context.Context, slug string) (*article.Article, error) {
	query := baseSelect + ` WHERE a.slug = $1`

	row := r.db.Pool.QueryRow(ctx, query, slug)
	a, err := scanArticle(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, article.ErrArticleNotFound
		}
		return nil, fmt.Errorf("find article by slug: %w", err)
	}
	return a, nil
}

func (r *postgresRepository) List(ctx context.Context, filter *article.Filter) ([]*article.Article, error) {
	clause, args := filter.Build(1)
	query := baseSelect + clause

	rows, err := r.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	defer rows.Close()

	articles := make([]*article.Article, 0)
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan article row: %w", err)
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate articles: %w", err)
	}
	return articles, nil
}

func (r *postgresRepository) Update(ctx context.Context, a *article.Article) error {
	query := `
		UPDATE articles
		SET slug = $1, title = $2, description = $3, body = $4, tag_list = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING updated_at`

	err := r.db.Pool.QueryRow(ctx, query,
		a.Slug, a.Title, a.Description, a.Body, pq.Array(a.TagList), a.ID,
	).Scan(&a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return article.ErrArticleNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationSQL {
			return article.ErrDuplicateSlug
		}
		return fmt.Errorf("update article: %w", err)
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	// Comments and favorites go with it via ON DELETE CASCADE.
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return article.ErrArticleNotFound
	}
	return nil
}

func (r *postgresRepository) Favorite(ctx context.Context, userID, articleID int64) error {
	query := `
		INSERT INTO favorites (user_id, article_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, article_id) DO NOTHING`

	if _, err := r.db.Pool.Exec(ctx, query, userID, articleID); err != nil {
		return fmt.Errorf("favorite article: %w", err)
	}
	return nil
}

func (r *postgresRepository) Unfavorite(ctx context.Context, userID, articleID int64) error {
	query := `DELETE FROM favorites WHERE user_id = $1 AND article_id = $2`

	if _, err := r.db.Pool.Exec(ctx, query, userID, articleID); err != nil {
		return fmt.Errorf("unfavorite article: %w", err)
	}
	return nil
}

func scanArticle(row pgx.Row) (*article.Article, error) {
	var a article.Article
	err := row.Scan(
		&a.ID, &a.AuthorID, &a.Slug, &a.Title, &a.Description, &a.Body,
		pq.Array(&a.TagList), &a.CreatedAt, &a.UpdatedAt,
		&a.Author.ID, &a.Author.Username, &a.Author.Bio, &a.Author.Image,
		pq.Array(&a.Author.FollowerIDs), pq.Array(&a.FavoritedBy),
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
