package service

import (
	"context"

	"contentHub/internal/models"
	"contentHub/internal/repository"
)

type StatsService interface {
	Counts(ctx context.Context) (*models.Stats, error)
}

type statsService struct {
	stats repository.StatsRepository
}

func NewStatsService(stats repository.StatsRepository) StatsService {
	return &statsService{stats: stats}
}

func (s *statsService) Counts(ctx context.Context) (*models.Stats, error) {
	return s.stats.Counts(ctx)
}
