package posts

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/dspetrov/flock/internal/common"
	"github.com/dspetrov/flock/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+posts\s*\(author_id,\s*body,\s*image_key\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3\)\s*RETURNING\s+id,\s*created_at\s*$`

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "created_at"}).AddRow("p-1", now)
	mock.ExpectQuery(q).
		WithArgs("a-1", "hello", "").
		WillReturnRows(rows)

	got, err := repo.Create(context.Background(), &models.Post{AuthorID: "a-1", Text: "hello"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != "p-1" || !got.CreatedAt.Equal(now) {
		t.Fatalf("unexpected post: %+v", got)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+posts\s*\(author_id,\s*body,\s*image_key\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3\)\s*RETURNING\s+id,\s*created_at\s*$`

	mock.ExpectQuery(q).
		WithArgs("a-1", "hello", "").
		WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.Post{AuthorID: "a-1", Text: "hello"})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestSelectFeed(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+p\.id,\s*p\.author_id,\s*p\.body,\s*p\.image_key,\s*p\.created_at,\s*count\(l\.account_id\)\s+FROM\s+posts\s+p\s+LEFT\s+JOIN\s+post_likes\s+l\s+ON\s+l\.post_id\s*=\s*p\.id\s+GROUP\s+BY\s+p\.id\s+ORDER\s+BY\s+p\.created_at\s+DESC\s*$`

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "author_id", "body", "image_key", "created_at", "count"}).
		AddRow("p-2", "a-1", "newer", "", now, int64(2)).
		AddRow("p-1", "a-2", "older", "images/k", now.Add(-time.Hour), int64(0))
	mock.ExpectQuery(q).WillReturnRows(rows)

	got, err := repo.SelectFeed(context.Background())
	if err != nil {
		t.Fatalf("SelectFeed error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "p-2" || got[0].Likes != 2 || got[1].ImageKey != "images/k" {
		t.Fatalf("unexpected feed: %+v", got)
	}
}

func TestGetByID_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+p\.id,\s*p\.author_id,\s*p\.body,\s*p\.image_key,\s*p\.created_at,\s*count\(l\.account_id\)\s+FROM\s+posts\s+p\s+LEFT\s+JOIN\s+post_likes\s+l\s+ON\s+l\.post_id\s*=\s*p\.id\s+WHERE\s+p\.id\s*=\s*\$1\s+GROUP\s+BY\s+p\.id\s*$`

	rows := sqlmock.NewRows([]string{"id", "author_id", "body", "image_key", "created_at", "count"}).
		AddRow("p-1", "a-1", "hello", "", time.Now(), int64(3))
	mock.ExpectQuery(q).
		WithArgs("p-1").
		WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), "p-1")
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if got.ID != "p-1" || got.Likes != 3 {
		t.Fatalf("unexpected post: %+v", got)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+p\.id,\s*p\.author_id,\s*p\.body,\s*p\.image_key,\s*p\.created_at,\s*count\(l\.account_id\)\s+FROM\s+posts\s+p\s+LEFT\s+JOIN\s+post_likes\s+l\s+ON\s+l\.post_id\s*=\s*p\.id\s+WHERE\s+p\.id\s*=\s*\$1\s+GROUP\s+BY\s+p\.id\s*$`

	mock.ExpectQuery(q).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "ghost")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^DELETE\s+FROM\s+posts\s+WHERE\s+id\s*=\s*\$1\s*$`

	mock.ExpectExec(q).
		WithArgs("p-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), "p-1"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
}

func TestInsertLike(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+post_likes\s*\(post_id,\s*account_id\)\s*VALUES\s*\(\$1,\s*\$2\)\s*ON\s+CONFLICT\s+DO\s+NOTHING\s*$`

	mock.ExpectExec(q).
		WithArgs("p-1", "a-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.InsertLike(context.Background(), "p-1", "a-1"); err != nil {
		t.Fatalf("InsertLike error: %v", err)
	}
}

func TestDeleteLike_Removed(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^DELETE\s+FROM\s+post_likes\s+WHERE\s+post_id\s*=\s*\$1\s+AND\s+account_id\s*=\s*\$2\s*$`

	mock.ExpectExec(q).
		WithArgs("p-1", "a-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	removed, err := repo.DeleteLike(context.Background(), "p-1", "a-1")
	if err != nil {
		t.Fatalf("DeleteLike error: %v", err)
	}
	if !removed {
		t.Fatalf("expected removed=true")
	}
}

func TestDeleteLike_NoLike(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^DELETE\s+FROM\s+post_likes\s+WHERE\s+post_id\s*=\s*\$1\s+AND\s+account_id\s*=\s*\$2\s*$`

	mock.ExpectExec(q).
		WithArgs("p-1", "a-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	removed, err := repo.DeleteLike(context.Background(), "p-1", "a-1")
	if err != nil {
		t.Fatalf("DeleteLike error: %v", err)
	}
	if removed {
		t.Fatalf("expected removed=false")
	}
}
