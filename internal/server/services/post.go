package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/dspetrov/flock/internal/common"
	"github.com/dspetrov/flock/internal/dbx"
	"github.com/dspetrov/flock/internal/server/models"
	"github.com/dspetrov/flock/internal/server/repositories/repomanager"
)

// PostService implements the post feed: create, list, delete, like toggle.
type PostService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewPostService(db *sql.DB, m repomanager.RepositoryManager) *PostService {
	return &PostService{db: db, repomanager: m}
}

// Create persists a post for authorID. A post must carry text or an image.
func (s *PostService) Create(ctx context.Context, authorID, text, imageKey string) (*models.Post, error) {

	text = strings.TrimSpace(text)
	if text == "" && imageKey == "" {
		return nil, common.ErrEmptyPost
	}

	repo := s.repomanager.Posts(s.db)

	post, err := repo.Create(ctx, &models.Post{
		AuthorID: authorID,
		Text:     text,
		ImageKey: imageKey,
	})
	if err != nil {
		return nil, common.ErrorInternal
	}

	return post, nil
}

// Feed returns all posts newest-first with like counts.
func (s *PostService) Feed(ctx context.Context) ([]*models.Post, error) {
	repo := s.repomanager.Posts(s.db)

	feed, err := repo.SelectFeed(ctx)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return feed, nil
}

func (s *PostService) Get(ctx context.Context, id string) (*models.Post, error) {
	repo := s.repomanager.Posts(s.db)

	post, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}
	return post, nil
}

// Delete removes a post. Only the author may delete it.
func (s *PostService) Delete(ctx context.Context, id, callerID string) error {
	repo := s.repomanager.Posts(s.db)

	post, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return common.ErrorInternal
	}

	if post.AuthorID != callerID {
		return common.ErrorForbidden
	}

	if err := repo.Delete(ctx, id); err != nil {
		return common.ErrorInternal
	}
	return nil
}

// ToggleLike likes the post on behalf of callerID, or removes an existing
// like. Liking someone else's post notifies the author. Returns true when
// the result is a like.
func (s *PostService) ToggleLike(ctx context.Context, postID, callerID string) (bool, error) {

	post, err := s.repomanager.Posts(s.db).GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return false, common.ErrorNotFound
		}
		return false, common.ErrorInternal
	}

	var liked bool
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Posts(tx)

		removed, err := repo.DeleteLike(ctx, postID, callerID)
		if err != nil {
			return err
		}
		if removed {
			return nil
		}

		if err := repo.InsertLike(ctx, postID, callerID); err != nil {
			return err
		}
		liked = true

		if post.AuthorID == callerID {
			return nil
		}
		return s.repomanager.Notifications(tx).Create(ctx, &models.Notification{
			From: callerID,
			To:   post.AuthorID,
			Kind: models.NotificationLike,
		})
	})
	if err != nil {
		return false, common.ErrorInternal
	}

	return liked, nil
}
