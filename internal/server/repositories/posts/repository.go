package posts

import (
	"context"

	"github.com/dspetrov/flock/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, post *models.Post) (*models.Post, error)
	SelectFeed(ctx context.Context) ([]*models.Post, error)
	GetByID(ctx context.Context, id string) (*models.Post, error)
	Delete(ctx context.Context, id string) error
	InsertLike(ctx context.Context, postID, accountID string) error
	DeleteLike(ctx context.Context, postID, accountID string) (bool, error)
}
