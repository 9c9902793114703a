package service

import (
	"contentHub/internal/auth"
	"contentHub/internal/repository"
	"contentHub/internal/storage"
)

type Service struct {
	Auth     AuthService
	User     UserService
	Category CategoryService
	Post     PostService
	Book     BookService
	Stats    StatsService
}

func NewService(repo *repository.Repository, issuer auth.TokenIssuer, store storage.Storage) *Service {
	return &Service{
		Auth:     NewAuthService(repo.User, issuer, store),
		User:     NewUserService(repo.User),
		Category: NewCategoryService(repo),
		Post:     NewPostService(repo, store),
		Book:     NewBookService(repo, store),
		Stats:    NewStatsService(repo.Stats),
	}
}
