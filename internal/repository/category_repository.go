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

type categoryRepository struct {
	db sqlx.ExtContext
}

func NewCategoryRepository(db sqlx.ExtContext) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	if category.CategoryID == "" {
		category.CategoryID = uuid.New().String()
	}
	if category.CreatedAt.IsZero() {
		category.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO categories (category_id, title, created_at)
		VALUES (:category_id, :title, :created_at)
	`

	if _, err := sqlx.NamedExecContext(ctx, r.db, query, category); err != nil {
		return fmt.Errorf("create category: %w", err)
	}

	return nil
}

func (r *categoryRepository) GetByID(ctx context.Context, categoryID string) (*models.Category, error) {
	if !validID(categoryID) {
		return nil, notFound("category", categoryID)
	}

	var category models.Category
	err := sqlx.GetContext(ctx, r.db, &category,
		`SELECT category_id, title, created_at FROM categories WHERE category_id = $1`, categoryID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound("category", categoryID)
		}
		return nil, fmt.Errorf("get category: %w", err)
	}

	return &category, nil
}

func (r *categoryRepository) List(ctx context.Context) ([]models.Category, error) {
	categories := []models.Category{}

	err := sqlx.SelectContext(ctx, r.db, &categories,
		`SELECT category_id, title, created_at FROM categories ORDER BY title`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	return categories, nil
}

// Delete removes only the category row. Posts and books that reference it
// keep the stale identifier.
func (r *categoryRepository) Delete(ctx context.Context, categoryID string) error {
	if !validID(categoryID) {
		return notFound("category", categoryID)
	}

	result, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE category_id = $1`, categoryID)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}

	return expectAffected(result, notFound("category", categoryID))
}

func (r *categoryRepository) LockShared(ctx context.Context, categoryID string) (bool, error) {
	if !validID(categoryID) {
		return false, nil
	}

	var id string
	err := sqlx.GetContext(ctx, r.db, &id,
		`SELECT category_id FROM categories WHERE category_id = $1 FOR SHARE`, categoryID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("check category: %w", err)
	}

	return true, nil
}

func expectAffected(result sql.Result, missing error) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check affected rows: %w", err)
	}

	if rowsAffected == 0 {
		return missing
	}

	return nil
}
