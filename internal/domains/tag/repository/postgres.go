package repository

import (
	"context"
	"fmt"

	"github.com/lib/pq"

	"conduit-backend/internal/domains/tag"
	"conduit-backend/internal/infrastructure/database"
)

type postgresRepository struct {
	db *database.PostgresDB
}

func NewPostgresRepository(db *database.PostgresDB) tag.Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) SaveAll(ctx context.Context, names []string) error {
	if len(names) == 0 {
		return nil
	}

	query := `
		INSERT INTO tags (name)
		SELECT unnest($1::text[])
		ON CONFLICT (name) DO NOTHING`

	if _, err := r.db.Pool.Exec(ctx, query, pq.Array(names)); err != nil {
		return fmt.Errorf("save tags: %w", err)
	}
	return nil
}

func (r *postgresRepository) List(ctx context.Context) ([]string, error) {
	rows, err := r.db.Pool.Query(ctx, `SELECT name FROM tags ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	defer rows.Close()

	tags := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		tags = append(tags, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tags: %w", err)
	}
	return tags, nil
}
