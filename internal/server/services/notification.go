package services

import (
	"context"
	"database/sql"

	"github.com/dspetrov/flock/internal/common"
	"github.com/dspetrov/flock/internal/dbx"
	"github.com/dspetrov/flock/internal/server/models"
	"github.com/dspetrov/flock/internal/server/repositories/repomanager"
)

// NotificationService lists and clears a caller's notifications.
type NotificationService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewNotificationService(db *sql.DB, m repomanager.RepositoryManager) *NotificationService {
	return &NotificationService{db: db, repomanager: m}
}

// List returns the caller's notifications newest-first and marks them read.
// Read and mark run in one transaction so a racing insert is either fully
// listed or left unread for the next call.
func (s *NotificationService) List(ctx context.Context, recipientID string) ([]*models.Notification, error) {

	var list []*models.Notification

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Notifications(tx)

		var err error
		list, err = repo.ListByRecipient(ctx, recipientID)
		if err != nil {
			return err
		}

		return repo.MarkAllRead(ctx, recipientID)
	})
	if err != nil {
		return nil, common.ErrorInternal
	}

	return list, nil
}

// Clear deletes all of the caller's notifications. Idempotent.
func (s *NotificationService) Clear(ctx context.Context, recipientID string) error {
	repo := s.repomanager.Notifications(s.db)

	if err := repo.DeleteAllForRecipient(ctx, recipientID); err != nil {
		return common.ErrorInternal
	}
	return nil
}
