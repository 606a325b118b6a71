package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dspetrov/flock/internal/common"
	"github.com/dspetrov/flock/internal/server/models"
)

func TestPostCreate_Success(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	s := NewPostService(db, &fakeRepoManager{p: &fakePostsRepo{}})

	got, err := s.Create(context.Background(), "a-1", "  hello world  ", "")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != "p-new" || got.Text != "hello world" || got.AuthorID != "a-1" {
		t.Fatalf("unexpected post: %+v", got)
	}
}

func TestPostCreate_ImageOnly(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	s := NewPostService(db, &fakeRepoManager{p: &fakePostsRepo{}})

	got, err := s.Create(context.Background(), "a-1", "", "images/2026/8/29/key")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ImageKey != "images/2026/8/29/key" {
		t.Fatalf("unexpected post: %+v", got)
	}
}

func TestPostCreate_Empty(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	s := NewPostService(db, &fakeRepoManager{p: &fakePostsRepo{}})

	for _, text := range []string{"", "   ", "\n\t"} {
		_, err := s.Create(context.Background(), "a-1", text, "")
		if !errors.Is(err, common.ErrEmptyPost) {
			t.Fatalf("text %q: want ErrEmptyPost, got %v", text, err)
		}
	}
}

func TestPostCreate_RepoError(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	s := NewPostService(db, &fakeRepoManager{p: &fakePostsRepo{createErr: errBoom{}}})

	_, err := s.Create(context.Background(), "a-1", "hello", "")
	if !errors.Is(err, common.ErrorInternal) {
		t.Fatalf("want ErrorInternal, got %v", err)
	}
}

func TestPostFeed(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{p: &fakePostsRepo{feedOut: []*models.Post{{ID: "p-2"}, {ID: "p-1"}}}}
	s := NewPostService(db, rm)

	got, err := s.Feed(context.Background())
	if err != nil {
		t.Fatalf("Feed error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "p-2" {
		t.Fatalf("unexpected feed: %+v", got)
	}
}

func TestPostGet_NotFound(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	s := NewPostService(db, &fakeRepoManager{p: &fakePostsRepo{getErr: common.ErrorNotFound}})

	_, err := s.Get(context.Background(), "ghost")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}

func TestPostDelete_Success(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{p: &fakePostsRepo{getOut: &models.Post{ID: "p-1", AuthorID: "a-1"}}}
	s := NewPostService(db, rm)

	if err := s.Delete(context.Background(), "p-1", "a-1"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
}

func TestPostDelete_NotAuthor(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{p: &fakePostsRepo{getOut: &models.Post{ID: "p-1", AuthorID: "a-1"}}}
	s := NewPostService(db, rm)

	if err := s.Delete(context.Background(), "p-1", "a-2"); !errors.Is(err, common.ErrorForbidden) {
		t.Fatalf("want ErrorForbidden, got %v", err)
	}
}

func TestPostDelete_NotFound(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	s := NewPostService(db, &fakeRepoManager{p: &fakePostsRepo{getErr: common.ErrorNotFound}})

	if err := s.Delete(context.Background(), "ghost", "a-1"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}

func TestToggleLike_Like_NotifiesAuthor(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectCommit()

	n := &fakeNotificationsRepo{}
	rm := &fakeRepoManager{
		p: &fakePostsRepo{getOut: &models.Post{ID: "p-1", AuthorID: "a-2"}},
		n: n,
	}
	s := NewPostService(db, rm)

	liked, err := s.ToggleLike(context.Background(), "p-1", "a-1")
	if err != nil {
		t.Fatalf("ToggleLike error: %v", err)
	}
	if !liked {
		t.Fatalf("expected liked=true")
	}
	if len(n.created) != 1 || n.created[0].Kind != models.NotificationLike || n.created[0].To != "a-2" {
		t.Fatalf("expected a like notification for the author, got %+v", n.created)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestToggleLike_OwnPost_NoNotification(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectCommit()

	n := &fakeNotificationsRepo{}
	rm := &fakeRepoManager{
		p: &fakePostsRepo{getOut: &models.Post{ID: "p-1", AuthorID: "a-1"}},
		n: n,
	}
	s := NewPostService(db, rm)

	liked, err := s.ToggleLike(context.Background(), "p-1", "a-1")
	if err != nil || !liked {
		t.Fatalf("ToggleLike: liked=%v err=%v", liked, err)
	}
	if len(n.created) != 0 {
		t.Fatalf("own-post like must not notify, got %+v", n.created)
	}
}

func TestToggleLike_Unlike(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectCommit()

	n := &fakeNotificationsRepo{}
	rm := &fakeRepoManager{
		p: &fakePostsRepo{getOut: &models.Post{ID: "p-1", AuthorID: "a-2"}, deleteLikeRemoved: true},
		n: n,
	}
	s := NewPostService(db, rm)

	liked, err := s.ToggleLike(context.Background(), "p-1", "a-1")
	if err != nil {
		t.Fatalf("ToggleLike error: %v", err)
	}
	if liked {
		t.Fatalf("expected liked=false")
	}
	if len(n.created) != 0 {
		t.Fatalf("unlike must be silent, got %+v", n.created)
	}
}

func TestToggleLike_PostMissing(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	s := NewPostService(db, &fakeRepoManager{p: &fakePostsRepo{getErr: common.ErrorNotFound}})

	_, err := s.ToggleLike(context.Background(), "ghost", "a-1")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}
