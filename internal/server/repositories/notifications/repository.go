package notifications

import (
	"context"

	"github.com/dspetrov/flock/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, n *models.Notification) error
	ListByRecipient(ctx context.Context, recipientID string) ([]*models.Notification, error)
	MarkAllRead(ctx context.Context, recipientID string) error
	DeleteAllForRecipient(ctx context.Context, recipientID string) error
}
