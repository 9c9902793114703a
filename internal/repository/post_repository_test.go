package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"contentHub/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var postRowColumns = []string{"post_id", "title", "body", "category_id", "date", "thumb_image"}

func TestPostRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostRepository(db)
	categoryID := uuid.New().String()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO posts")).
		WithArgs(sqlmock.AnyArg(), "T", "B", categoryID, sqlmock.AnyArg(), models.DefaultThumbImage).
		WillReturnResult(sqlmock.NewResult(1, 1))

	post := &models.Post{Title: "T", Body: "B", CategoryID: categoryID}
	err := repo.Create(context.Background(), post)

	require.NoError(t, err)
	assert.NotEmpty(t, post.PostID)
	assert.NotNil(t, post.Comments)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_ListByCategory(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostRepository(db)
	categoryID := uuid.New().String()

	mock.ExpectQuery(regexp.QuoteMeta("FROM posts WHERE category_id = $1")).
		WithArgs(categoryID).
		WillReturnRows(sqlmock.NewRows(postRowColumns).
			AddRow(uuid.New().String(), "A", "a", categoryID, time.Now(), "noimage.png").
			AddRow(uuid.New().String(), "B", "b", categoryID, time.Now(), "noimage.png"))

	posts, err := repo.ListByCategory(context.Background(), categoryID)
	require.NoError(t, err)
	assert.Len(t, posts, 2)

	posts, err = repo.ListByCategory(context.Background(), "Fiction")
	require.NoError(t, err)
	assert.Empty(t, posts)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_UpdateMissing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE posts SET")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &models.Post{PostID: uuid.New().String(), Title: "T"})

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_LockForUpdate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostRepository(db)
	id := uuid.New().String()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT post_id FROM posts WHERE post_id = $1 FOR UPDATE")).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"post_id"}).AddRow(id))

	ok, err := repo.LockForUpdate(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.LockForUpdate(context.Background(), "nope")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentRepository_Append(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCommentRepository(db)
	postID := uuid.New().String()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO comments")).
		WithArgs(postID, "Nice", "Bob", "Great read", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"position"}).AddRow(3))

	comment := &models.Comment{PostID: postID, Title: "Nice", Name: "Bob", Body: "Great read"}
	err := repo.Append(context.Background(), comment)

	require.NoError(t, err)
	assert.Equal(t, 3, comment.Position)
	assert.False(t, comment.Date.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentRepository_GetByPostIDs(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCommentRepository(db)
	first, second := uuid.New().String(), uuid.New().String()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM comments WHERE post_id = ANY($1)")).
		WithArgs(pq.Array([]string{first, second})).
		WillReturnRows(sqlmock.NewRows([]string{"post_id", "position", "title", "name", "body", "date"}).
			AddRow(first, 0, "a", "n", "b", now).
			AddRow(first, 1, "c", "n", "d", now).
			AddRow(second, 0, "e", "n", "f", now))

	byPost, err := repo.GetByPostIDs(context.Background(), []string{first, second})

	require.NoError(t, err)
	require.Len(t, byPost[first], 2)
	assert.Equal(t, "c", byPost[first][1].Title)
	assert.Len(t, byPost[second], 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookRepository(db)
	categoryID := uuid.New().String()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO books")).
		WithArgs(sqlmock.AnyArg(), "Dune", categoryID, "Spice", "Herbert", "Chilton", 9.99, models.DefaultCover, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	book := &models.Book{
		Title:       "Dune",
		CategoryID:  categoryID,
		Description: "Spice",
		Author:      "Herbert",
		Publisher:   "Chilton",
		Price:       9.99,
	}
	require.NoError(t, repo.Create(context.Background(), book))
	assert.NotEmpty(t, book.BookID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookRepository_DeleteMalformedID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookRepository(db)

	assert.ErrorIs(t, repo.Delete(context.Background(), "42"), ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsRepository_Counts(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStatsRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("(SELECT COUNT(*) FROM users)")).
		WillReturnRows(sqlmock.NewRows([]string{"users", "categories", "posts", "comments", "books"}).
			AddRow(1, 2, 3, 4, 5))

	stats, err := repo.Counts(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.Stats{Users: 1, Categories: 2, Posts: 3, Comments: 4, Books: 5}, *stats)
	assert.NoError(t, mock.ExpectationsWereMet())
}
