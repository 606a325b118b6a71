// Package services contains server-side business logic. This file implements
// UserService: signup validation and credential hashing, login verification,
// identity resolution, and follow toggling.
package services

import (
	"context"
	"database/sql"
	"errors"
	"regexp"

	"github.com/dspetrov/flock/internal/common"
	"github.com/dspetrov/flock/internal/dbx"
	"github.com/dspetrov/flock/internal/server/auth"
	"github.com/dspetrov/flock/internal/server/models"
	"github.com/dspetrov/flock/internal/server/repositories/accounts"
	"github.com/dspetrov/flock/internal/server/repositories/repomanager"
)

// Same shape the original frontend validates against: one non-whitespace,
// non-@ run, an @, and a domain containing a dot.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const minPasswordLen = 6

// SignupInput is the validated boundary type for registration.
type SignupInput struct {
	FullName string
	Username string
	Email    string
	Password string
}

// UserService provides account-related operations:
// - Signup: validate, hash, and create accounts
// - Login: verify credentials without leaking which factor failed
// - GetByID: resolve the current caller's account
// - ToggleFollow: follow/unfollow another account
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager) *UserService {
	return &UserService{db: db, repomanager: m}
}

// Signup validates the input, checks both uniqueness dimensions for a
// friendlier error message, hashes the password, and persists the account.
// The pre-checks are UX only: a racing insert surfaces the same conflict
// errors via the store's unique constraints.
func (s *UserService) Signup(ctx context.Context, in SignupInput) (*models.Account, error) {

	if !emailRe.MatchString(in.Email) {
		return nil, common.ErrInvalidEmail
	}

	repo := s.repomanager.Accounts(s.db)

	if _, err := repo.GetByUsername(ctx, in.Username); err == nil {
		return nil, common.ErrUsernameTaken
	} else if !errors.Is(err, common.ErrorNotFound) {
		return nil, common.ErrorInternal
	}

	if _, err := repo.GetByEmail(ctx, in.Email); err == nil {
		return nil, common.ErrEmailTaken
	} else if !errors.Is(err, common.ErrorNotFound) {
		return nil, common.ErrorInternal
	}

	if len(in.Password) < minPasswordLen {
		return nil, common.ErrPasswordTooShort
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, common.ErrorInternal
	}

	account := &models.Account{
		FullName:     in.FullName,
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
	}

	created, err := repo.Create(ctx, account)
	if err != nil {
		if errors.Is(err, common.ErrUsernameTaken) || errors.Is(err, common.ErrEmailTaken) {
			return nil, err
		}
		return nil, common.ErrorInternal
	}

	// A brand-new account has no follow edges yet.
	created.Followers = []string{}
	created.Following = []string{}

	return created, nil
}

// Login verifies username and password. When the username does not resolve,
// the password is still verified against a sentinel hash so both failure
// paths cost one bcrypt comparison and return the same error.
func (s *UserService) Login(ctx context.Context, username, password string) (*models.Account, error) {

	repo := s.repomanager.Accounts(s.db)

	account, err := repo.GetByUsername(ctx, username)
	if err != nil && !errors.Is(err, common.ErrorNotFound) {
		return nil, common.ErrorInternal
	}

	stored := auth.SentinelHash()
	if account != nil {
		stored = account.PasswordHash
	}

	ok := auth.CheckPassword(stored, password)
	if account == nil || !ok {
		return nil, common.ErrInvalidCredentials
	}

	if err := s.attachFollowEdges(ctx, repo, account); err != nil {
		return nil, common.ErrorInternal
	}

	return account, nil
}

// GetByID resolves an account for an already-authenticated caller.
// Returns common.ErrorNotFound when the account was deleted after the
// session token was issued.
func (s *UserService) GetByID(ctx context.Context, id string) (*models.Account, error) {

	repo := s.repomanager.Accounts(s.db)

	account, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}

	if err := s.attachFollowEdges(ctx, repo, account); err != nil {
		return nil, common.ErrorInternal
	}

	return account, nil
}

// ToggleFollow follows followeeID on behalf of followerID, or removes the
// edge if it already exists. Following someone notifies them; unfollowing is
// silent. Returns true when the result is a follow.
func (s *UserService) ToggleFollow(ctx context.Context, followerID, followeeID string) (bool, error) {

	if followerID == followeeID {
		return false, common.ErrorForbidden
	}

	if _, err := s.repomanager.Accounts(s.db).GetByID(ctx, followeeID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return false, common.ErrorNotFound
		}
		return false, common.ErrorInternal
	}

	var followed bool
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Accounts(tx)

		removed, err := repo.Unfollow(ctx, followerID, followeeID)
		if err != nil {
			return err
		}
		if removed {
			return nil
		}

		if err := repo.Follow(ctx, followerID, followeeID); err != nil {
			return err
		}
		followed = true

		return s.repomanager.Notifications(tx).Create(ctx, &models.Notification{
			From: followerID,
			To:   followeeID,
			Kind: models.NotificationFollow,
		})
	})
	if err != nil {
		return false, common.ErrorInternal
	}

	return followed, nil
}

func (s *UserService) attachFollowEdges(ctx context.Context, repo accounts.Repository, account *models.Account) error {

	followers, err := repo.FollowerIDs(ctx, account.ID)
	if err != nil {
		return err
	}
	following, err := repo.FollowingIDs(ctx, account.ID)
	if err != nil {
		return err
	}

	account.Followers = followers
	account.Following = following
	return nil
}
