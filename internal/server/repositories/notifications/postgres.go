package notifications

import (
	"context"
	"fmt"

	"github.com/dspetrov/flock/internal/dbx"
	"github.com/dspetrov/flock/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, n *models.Notification) error {

	query :=
		`INSERT INTO notifications (recipient_id, actor_id, kind)
         VALUES ($1, $2, $3)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query, n.To, n.From, n.Kind).Scan(&n.ID, &n.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) ListByRecipient(ctx context.Context, recipientID string) ([]*models.Notification, error) {
	query :=
		`SELECT id, actor_id, recipient_id, kind, is_read, created_at
		 FROM notifications
		 WHERE recipient_id = $1
		 ORDER BY created_at DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, recipientID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	list := []*models.Notification{}
	for rows.Next() {
		n := &models.Notification{}
		if err := rows.Scan(&n.ID, &n.From, &n.To, &n.Kind, &n.Read, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		list = append(list, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return list, nil
}

func (r *PostgresRepository) MarkAllRead(ctx context.Context, recipientID string) error {
	query :=
		`UPDATE notifications SET is_read = true
		 WHERE recipient_id = $1 AND is_read = false
		 `

	if _, err := r.db.ExecContext(ctx, query, recipientID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) DeleteAllForRecipient(ctx context.Context, recipientID string) error {
	query :=
		`DELETE FROM notifications
		 WHERE recipient_id = $1
		 `

	if _, err := r.db.ExecContext(ctx, query, recipientID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
