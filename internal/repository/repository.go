package repository

import (
	"context"
	"fmt"

	"contentHub/internal/auth"
	"contentHub/internal/models"

	"github.com/jmoiron/sqlx"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	VerifyCredentials(ctx context.Context, username, password string) (*models.User, error)
}

type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, categoryID string) (*models.Category, error)
	List(ctx context.Context) ([]models.Category, error)
	Delete(ctx context.Context, categoryID string) error
	// LockShared reports whether the category exists and, inside a
	// transaction, keeps it from being deleted until the transaction ends.
	LockShared(ctx context.Context, categoryID string) (bool, error)
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, postID string) (*models.Post, error)
	List(ctx context.Context) ([]models.Post, error)
	ListByCategory(ctx context.Context, categoryID string) ([]models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, postID string) error
	// LockForUpdate reports whether the post exists and serialises writers
	// to it for the rest of the transaction.
	LockForUpdate(ctx context.Context, postID string) (bool, error)
}

type CommentRepository interface {
	Append(ctx context.Context, comment *models.Comment) error
	GetByPostID(ctx context.Context, postID string) ([]models.Comment, error)
	GetByPostIDs(ctx context.Context, postIDs []string) (map[string][]models.Comment, error)
}

type BookRepository interface {
	Create(ctx context.Context, book *models.Book) error
	GetByID(ctx context.Context, bookID string) (*models.Book, error)
	List(ctx context.Context) ([]models.Book, error)
	Update(ctx context.Context, book *models.Book) error
	Delete(ctx context.Context, bookID string) error
}

type StatsRepository interface {
	Counts(ctx context.Context) (*models.Stats, error)
}

type Repository struct {
	User     UserRepository
	Category CategoryRepository
	Post     PostRepository
	Comment  CommentRepository
	Book     BookRepository
	Stats    StatsRepository

	db     *sqlx.DB
	hasher auth.PasswordHasher
}

func NewRepository(db *sqlx.DB, hasher auth.PasswordHasher) *Repository {
	repo := newRepository(db, hasher)
	repo.db = db
	return repo
}

func newRepository(q sqlx.ExtContext, hasher auth.PasswordHasher) *Repository {
	return &Repository{
		User:     NewUserRepository(q, hasher),
		Category: NewCategoryRepository(q),
		Post:     NewPostRepository(q),
		Comment:  NewCommentRepository(q),
		Book:     NewBookRepository(q),
		Stats:    NewStatsRepository(q),
		hasher:   hasher,
	}
}

// WithinTx runs fn against repositories bound to a single transaction. The
// transaction is committed when fn returns nil and rolled back otherwise.
// Calling it on a repository that is already transactional just runs fn.
func (r *Repository) WithinTx(ctx context.Context, fn func(tx *Repository) error) error {
	if r.db == nil {
		return fn(r)
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(newRepository(tx, r.hasher)); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}
