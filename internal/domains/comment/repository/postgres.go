package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/lib/pq"

	"conduit-backend/internal/domains/comment"
	"conduit-backend/internal/infrastructure/database"
)

const baseSelect = `
SELECT c.id, c.article_id, c.author_id, c.body, c.created_at, c.updated_at,
       u.id, u.username, u.bio, u.image,
       COALESCE((SELECT array_agg(fl.follower_id) FROM follows fl WHERE fl.followee_id = u.id), '{}') AS follower_ids
FROM comments c
JOIN users u ON u.id = c.author_id`

type postgresRepository struct {
	db *database.PostgresDB
}

func NewPostgresRepository(db *database.PostgresDB) comment.Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) Create(ctx context.Context, cm *comment.Comment) error {
	query := `
		INSERT INTO comments (article_id, author_id, body, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id, created_at, updated_at`

	err := r.db.Pool.QueryRow(ctx, query, cm.ArticleID, cm.AuthorID, cm.Body).
		Scan(&cm.ID, &cm.CreatedAt, &cm.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert comment: %w", err)
	}
	return nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*comment.Comment, error) {
	query := baseSelect + ` WHERE c.id = $1`

	row := r.db.Pool.QueryRow(ctx, query, id)
	cm, err := scanComment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, comment.ErrCommentNotFound
		}
		return nil, fmt.Errorf("find comment by id: %w", err)
	}
	return cm, nil
}

func (r *postgresRepository) ListByArticle(ctx context.Context, articleID int64) ([]*comment.Comment, error) {
	query := baseSelect + ` WHERE c.article_id = $1 ORDER BY c.created_at ASC, c.id ASC`

	rows, err := r.db.Pool.Query(ctx, query, articleID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	comments := make([]*comment.Comment, 0)
	for rows.Next() {
		cm, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan comment row: %w", err)
		}
		comments = append(comments, cm)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comments: %w", err)
	}
	return comments, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return comment.ErrCommentNotFound
	}
	return nil
}

func scanComment(row pgx.Row) (*comment.Comment, error) {
	var cm comment.Comment
	err := row.Scan(
		&cm.ID, &cm.ArticleID, &cm.AuthorID, &cm.Body, &cm.CreatedAt, &cm.UpdatedAt,
		&cm.Author.ID, &cm.Author.Username, &cm.Author.Bio, &cm.Author.Image,
		pq.Array(&cm.Author.FollowerIDs),
	)
	if err != nil {
		return nil, err
	}
	return &cm, nil
}
