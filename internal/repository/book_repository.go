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

const bookColumns = `book_id, title, category_id, description, author, publisher, price, cover, created_at`

type bookRepository struct {
	db sqlx.ExtContext
}

func NewBookRepository(db sqlx.ExtContext) BookRepository {
	return &bookRepository{db: db}
}

func (r *bookRepository) Create(ctx context.Context, book *models.Book) error {
	if book.BookID == "" {
		book.BookID = uuid.New().String()
	}
	if book.CreatedAt.IsZero() {
		book.CreatedAt = time.Now().UTC()
	}
	if book.Cover == "" {
		book.Cover = models.DefaultCover
	}

	query := `
		INSERT INTO books (book_id, title, category_id, description, author, publisher, price, cover, created_at)
		VALUES (:book_id, :title, :category_id, :description, :author, :publisher, :price, :cover, :created_at)
	`

	if _, err := sqlx.NamedExecContext(ctx, r.db, query, book); err != nil {
		return fmt.Errorf("create book: %w", err)
	}

	return nil
}

func (r *bookRepository) GetByID(ctx context.Context, bookID string) (*models.Book, error) {
	if !validID(bookID) {
		return nil, notFound("book", bookID)
	}

	var book models.Book
	err := sqlx.GetContext(ctx, r.db, &book, `SELECT `+bookColumns+` FROM books WHERE book_id = $1`, bookID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound("book", bookID)
		}
		return nil, fmt.Errorf("get book: %w", err)
	}

	return &book, nil
}

func (r *bookRepository) List(ctx context.Context) ([]models.Book, error) {
	books := []models.Book{}

	err := sqlx.SelectContext(ctx, r.db, &books, `SELECT `+bookColumns+` FROM books ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}

	return books, nil
}

func (r *bookRepository) Update(ctx context.Context, book *models.Book) error {
	if !validID(book.BookID) {
		return notFound("book", book.BookID)
	}

	query := `
		UPDATE books SET
			title = :title,
			category_id = :category_id,
			description = :description,
			author = :author,
			publisher = :publisher,
			price = :price,
			cover = :cover
		WHERE book_id = :book_id
	`

	result, err := sqlx.NamedExecContext(ctx, r.db, query, book)
	if err != nil {
		return fmt.Errorf("update book: %w", err)
	}

	return expectAffected(result, notFound("book", book.BookID))
}

func (r *bookRepository) Delete(ctx context.Context, bookID string) error {
	if !validID(bookID) {
		return notFound("book", bookID)
	}

	result, err := r.db.ExecContext(ctx, `DELETE FROM books WHERE book_id = $1`, bookID)
	if err != nil {
		return fmt.Errorf("delete book: %w", err)
	}

	return expectAffected(result, notFound("book", bookID))
}
