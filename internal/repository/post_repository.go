package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"contentHub/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const postColumns = `post_id, title, body, category_id, date, thumb_image`

type postRepository struct {
	db sqlx.ExtContext
}

func NewPostRepository(db sqlx.ExtContext) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if post.PostID == "" {
		post.PostID = uuid.New().String()
	}
	if post.Date.IsZero() {
		post.Date = time.Now().UTC()
	}
	if post.ThumbImage == "" {
		post.ThumbImage = models.DefaultThumbImage
	}

	query := `
		INSERT INTO posts (post_id, title, body, category_id, date, thumb_image)
		VALUES (:post_id, :title, :body, :category_id, :date, :thumb_image)
	`

	if _, err := sqlx.NamedExecContext(ctx, r.db, query, post); err != nil {
		return fmt.Errorf("create post: %w", err)
	}

	if post.Comments == nil {
		post.Comments = []models.Comment{}
	}

	return nil
}

func (r *postRepository) GetByID(ctx context.Context, postID string) (*models.Post, error) {
	if !validID(postID) {
		return nil, notFound("post", postID)
	}

	var post models.Post
	err := sqlx.GetContext(ctx, r.db, &post, `SELECT `+postColumns+` FROM posts WHERE post_id = $1`, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound("post", postID)
		}
		return nil, fmt.Errorf("get post: %w", err)
	}

	return &post, nil
}

func (r *postRepository) List(ctx context.Context) ([]models.Post, error) {
	posts := []models.Post{}

	err := sqlx.SelectContext(ctx, r.db, &posts, `SELECT `+postColumns+` FROM posts ORDER BY date DESC`)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	return posts, nil
}

func (r *postRepository) ListByCategory(ctx context.Context, categoryID string) ([]models.Post, error) {
	posts := []models.Post{}
	if !validID(categoryID) {
		return posts, nil
	}

	err := sqlx.SelectContext(ctx, r.db, &posts,
		`SELECT `+postColumns+` FROM posts WHERE category_id = $1 ORDER BY date DESC`, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list posts by category: %w", err)
	}

	return posts, nil
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	if !validID(post.PostID) {
		return notFound("post", post.PostID)
	}

	query := `
		UPDATE posts SET
			title = :title,
			body = :body,
			category_id = :category_id,
			date = :date,
			thumb_image = :thumb_image
		WHERE post_id = :post_id
	`

	result, err := sqlx.NamedExecContext(ctx, r.db, query, post)
	if err != nil {
		return fmt.Errorf("update post: %w", err)
	}

	return expectAffected(result, notFound("post", post.PostID))
}

// Delete removes the post; its comments go with it through ON DELETE CASCADE.
func (r *postRepository) Delete(ctx context.Context, postID string) error {
	if !validID(postID) {
		return notFound("post", postID)
	}

	result, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE post_id = $1`, postID)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}

	return expectAffected(result, notFound("post", postID))
}

func (r *postRepository) LockForUpdate(ctx context.Context, postID string) (bool, error) {
	if !validID(postID) {
		return false, nil
	}

	var id string
	err := sqlx.GetContext(ctx, r.db, &id, `SELECT post_id FROM posts WHERE post_id = $1 FOR UPDATE`, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("check post: %w", err)
	}

	return true, nil
}
