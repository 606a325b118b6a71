package accounts

import (
	"context"

	"github.com/dspetrov/flock/internal/server/models"
)

// Repository is the persistence boundary for accounts. Reads never include
// the password hash except GetByUsername, which login needs for verification.
type Repository interface {
	Create(ctx context.Context, account *models.Account) (*models.Account, error)
	GetByUsername(ctx context.Context, username string) (*models.Account, error)
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	GetByID(ctx context.Context, id string) (*models.Account, error)
	FollowerIDs(ctx context.Context, id string) ([]string, error)
	FollowingIDs(ctx context.Context, id string) ([]string, error)
	Follow(ctx context.Context, followerID, followeeID string) error
	Unfollow(ctx context.Context, followerID, followeeID string) (bool, error)
}
