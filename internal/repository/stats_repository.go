package repository

import (
	"context"
	"fmt"

	"contentHub/internal/models"

	"github.com/jmoiron/sqlx"
)

type statsRepository struct {
	db sqlx.ExtContext
}

func NewStatsRepository(db sqlx.ExtContext) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) Counts(ctx context.Context) (*models.Stats, error) {
	var stats models.Stats

	err := sqlx.GetContext(ctx, r.db, &stats, `
		SELECT
			(SELECT COUNT(*) FROM users)      AS users,
			(SELECT COUNT(*) FROM categories) AS categories,
			(SELECT COUNT(*) FROM posts)      AS posts,
			(SELECT COUNT(*) FROM comments)   AS comments,
			(SELECT COUNT(*) FROM books)      AS books
	`)
	if err != nil {
		return nil, fmt.Errorf("count collections: %w", err)
	}

	return &stats, nil
}
