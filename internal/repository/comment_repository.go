package repository

import (
	"context"
	"fmt"
	"time"

	"contentHub/internal/models"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const commentColumns = `post_id, position, title, name, body, date`

type commentRepository struct {
	db sqlx.ExtContext
}

func NewCommentRepository(db sqlx.ExtContext) CommentRepository {
	return &commentRepository{db: db}
}

// Append stores the comment after the last one of its post. Callers hold
// the post row lock so concurrent appends cannot pick the same position.
func (r *commentRepository) Append(ctx context.Context, comment *models.Comment) error {
	if comment.Date.IsZero() {
		comment.Date = time.Now().UTC()
	}

	query := `
		INSERT INTO comments (post_id, position, title, name, body, date)
		SELECT $1::uuid, COALESCE(MAX(position) + 1, 0), $2::text, $3::text, $4::text, $5::timestamptz
		FROM comments WHERE post_id = $1::uuid
		RETURNING position
	`

	err := sqlx.GetContext(ctx, r.db, &comment.Position, query,
		comment.PostID, comment.Title, comment.Name, comment.Body, comment.Date)
	if err != nil {
		return fmt.Errorf("append comment: %w", err)
	}

	return nil
}

func (r *commentRepository) GetByPostID(ctx context.Context, postID string) ([]models.Comment, error) {
	comments := []models.Comment{}
	if !validID(postID) {
		return comments, nil
	}

	err := sqlx.SelectContext(ctx, r.db, &comments,
		`SELECT `+commentColumns+` FROM comments WHERE post_id = $1 ORDER BY position`, postID)
	if err != nil {
		return nil, fmt.Errorf("get comments: %w", err)
	}

	return comments, nil
}

func (r *commentRepository) GetByPostIDs(ctx context.Context, postIDs []string) (map[string][]models.Comment, error) {
	byPost := make(map[string][]models.Comment, len(postIDs))
	if len(postIDs) == 0 {
		return byPost, nil
	}

	var comments []models.Comment
	err := sqlx.SelectContext(ctx, r.db, &comments,
		`SELECT `+commentColumns+` FROM comments WHERE post_id = ANY($1) ORDER BY post_id, position`,
		pq.Array(postIDs))
	if err != nil {
		return nil, fmt.Errorf("get comments: %w", err)
	}

	for _, c := range comments {
		byPost[c.PostID] = append(byPost[c.PostID], c)
	}

	return byPost, nil
}
