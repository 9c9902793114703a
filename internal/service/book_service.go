package service

import (
	"context"
	"strings"
	"time"

	"contentHub/internal/models"
	"contentHub/internal/repository"
	"contentHub/internal/storage"
)

// Price is bounded by the NUMERIC(12, 2) column; a nil price is missing.
type BookInput struct {
	Title       string   `json:"title" validate:"required,max=255"`
	CategoryID  string   `json:"categories" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Author      string   `json:"author" validate:"required,max=255"`
	Publisher   string   `json:"publisher" validate:"required,max=255"`
	Price       *float64 `json:"price" validate:"required,gte=0,lte=9999999999.99"`
	PrevCover   string   `json:"prevCover" validate:"max=512"`
	Cover       *Upload  `json:"-"`
}

type BookService interface {
	Create(ctx context.Context, in BookInput) (*models.Book, error)
	Update(ctx context.Context, bookID string, in BookInput) (*models.Book, error)
	Delete(ctx context.Context, bookID string) error
	Get(ctx context.Context, bookID string) (*models.Book, error)
	List(ctx context.Context) ([]models.Book, error)
}

type bookService struct {
	repo  *repository.Repository
	store storage.Storage
	now   func() time.Time
}

func NewBookService(repo *repository.Repository, store storage.Storage) BookService {
	return &bookService{
		repo:  repo,
		store: store,
		now:   time.Now,
	}
}

func (in *BookInput) normalize() {
	in.Title = strings.TrimSpace(in.Title)
	in.CategoryID = strings.TrimSpace(in.CategoryID)
	in.Description = strings.TrimSpace(in.Description)
	in.Author = strings.TrimSpace(in.Author)
	in.Publisher = strings.TrimSpace(in.Publisher)
	in.PrevCover = strings.TrimSpace(in.PrevCover)
}

func (s *bookService) Create(ctx context.Context, in BookInput) (*models.Book, error) {
	in.normalize()
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	book := &models.Book{
		Title:       in.Title,
		CategoryID:  in.CategoryID,
		Description: in.Description,
		Author:      in.Author,
		Publisher:   in.Publisher,
		Price:       *in.Price,
		CreatedAt:   s.now().UTC(),
	}

	var coverRef string
	err := s.repo.WithinTx(ctx, func(tx *repository.Repository) error {
		if err := requireCategory(ctx, tx, in.CategoryID); err != nil {
			return err
		}

		var err error
		if coverRef, err = saveUpload(ctx, s.store, "books", in.Cover); err != nil {
			return err
		}
		book.Cover = coverRef

		return tx.Book.Create(ctx, book)
	})
	if err != nil {
		discardUpload(ctx, s.store, coverRef)
		return nil, err
	}

	return book, nil
}

func (s *bookService) Update(ctx context.Context, bookID string, in BookInput) (*models.Book, error) {
	in.normalize()
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	var (
		book     *models.Book
		coverRef string
	)
	err := s.repo.WithinTx(ctx, func(tx *repository.Repository) error {
		var err error
		if book, err = tx.Book.GetByID(ctx, bookID); err != nil {
			return err
		}
		if err := requireCategory(ctx, tx, in.CategoryID); err != nil {
			return err
		}

		if coverRef, err = saveUpload(ctx, s.store, "books", in.Cover); err != nil {
			return err
		}

		book.Title = in.Title
		book.CategoryID = in.CategoryID
		book.Description = in.Description
		book.Author = in.Author
		book.Publisher = in.Publisher
		book.Price = *in.Price
		switch {
		case coverRef != "":
			book.Cover = coverRef
		case in.PrevCover != "":
			book.Cover = in.PrevCover
		}

		return tx.Book.Update(ctx, book)
	})
	if err != nil {
		discardUpload(ctx, s.store, coverRef)
		return nil, err
	}

	return book, nil
}

func (s *bookService) Delete(ctx context.Context, bookID string) error {
	return s.repo.Book.Delete(ctx, bookID)
}

func (s *bookService) Get(ctx context.Context, bookID string) (*models.Book, error) {
	return s.repo.Book.GetByID(ctx, bookID)
}

func (s *bookService) List(ctx context.Context) ([]models.Book, error) {
	return s.repo.Book.List(ctx)
}
