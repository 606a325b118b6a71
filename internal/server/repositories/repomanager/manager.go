// Package repomanager provides a factory for repositories bound to a shared
// connection or transaction handle.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dspetrov/flock/internal/dbx"
	"github.com/dspetrov/flock/internal/server/repositories/accounts"
	"github.com/dspetrov/flock/internal/server/repositories/notifications"
	"github.com/dspetrov/flock/internal/server/repositories/posts"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Accounts(db dbx.DBTX) accounts.Repository
	Notifications(db dbx.DBTX) notifications.Repository
	Posts(db dbx.DBTX) posts.Repository
}
