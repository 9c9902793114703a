package service

import (
	"context"
	"strings"

	"contentHub/internal/models"
	"contentHub/internal/repository"
)

type CategoryInput struct {
	Title string `json:"title" validate:"required,max=200"`
}

type CategoryService interface {
	Create(ctx context.Context, in CategoryInput) (*models.Category, error)
	List(ctx context.Context) ([]models.Category, error)
	// Posts returns the category together with the posts filed under it.
	Posts(ctx context.Context, categoryID string) (*models.Category, []models.Post, error)
	Delete(ctx context.Context, categoryID string) error
}

type categoryService struct {
	repo *repository.Repository
}

func NewCategoryService(repo *repository.Repository) CategoryService {
	return &categoryService{repo: repo}
}

func (s *categoryService) Create(ctx context.Context, in CategoryInput) (*models.Category, error) {
	in.Title = strings.TrimSpace(in.Title)
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	category := &models.Category{Title: in.Title}
	if err := s.repo.Category.Create(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

func (s *categoryService) List(ctx context.Context) ([]models.Category, error) {
	return s.repo.Category.List(ctx)
}

func (s *categoryService) Posts(ctx context.Context, categoryID string) (*models.Category, []models.Post, error) {
	category, err := s.repo.Category.GetByID(ctx, categoryID)
	if err != nil {
		return nil, nil, err
	}

	posts, err := s.repo.Post.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, nil, err
	}

	return category, posts, nil
}

// Delete leaves posts and books that reference the category untouched.
func (s *categoryService) Delete(ctx context.Context, categoryID string) error {
	return s.repo.Category.Delete(ctx, categoryID)
}
