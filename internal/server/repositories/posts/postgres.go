package posts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dspetrov/flock/internal/common"
	"github.com/dspetrov/flock/internal/dbx"
	"github.com/dspetrov/flock/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, post *models.Post) (*models.Post, error) {

	query :=
		`INSERT INTO posts (author_id, body, image_key)
         VALUES ($1, $2, $3)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		post.AuthorID, post.Text, post.ImageKey).Scan(&post.ID, &post.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return post, nil
}

func (r *PostgresRepository) SelectFeed(ctx context.Context) ([]*models.Post, error) {
	query :=
		`SELECT p.id, p.author_id, p.body, p.image_key, p.created_at, count(l.account_id)
		 FROM posts p
		 LEFT JOIN post_likes l ON l.post_id = p.id
		 GROUP BY p.id
		 ORDER BY p.created_at DESC
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	feed := []*models.Post{}
	for rows.Next() {
		p := &models.Post{}
		if err := rows.Scan(&p.ID, &p.AuthorID, &p.Text, &p.ImageKey, &p.CreatedAt, &p.Likes); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		feed = append(feed, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return feed, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	query :=
		`SELECT p.id, p.author_id, p.body, p.image_key, p.created_at, count(l.account_id)
		 FROM posts p
		 LEFT JOIN post_likes l ON l.post_id = p.id
		 WHERE p.id = $1
		 GROUP BY p.id
		 `

	p := &models.Post{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.AuthorID, &p.Text, &p.ImageKey, &p.CreatedAt, &p.Likes)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return p, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query :=
		`DELETE FROM posts
		 WHERE id = $1
		 `

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) InsertLike(ctx context.Context, postID, accountID string) error {
	query :=
		`INSERT INTO post_likes (post_id, account_id)
		 VALUES ($1, $2)
		 ON CONFLICT DO NOTHING
		 `

	if _, err := r.db.ExecContext(ctx, query, postID, accountID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// DeleteLike reports whether a like was actually removed, which is how the
// service decides between the like and unlike halves of the toggle.
func (r *PostgresRepository) DeleteLike(ctx context.Context, postID, accountID string) (bool, error) {
	query :=
		`DELETE FROM post_likes
		 WHERE post_id = $1 AND account_id = $2
		 `

	res, err := r.db.ExecContext(ctx, query, postID, accountID)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return n > 0, nil
}
