package handlers

import (
	"net/http"

	"contentHub/internal/config"
	"contentHub/internal/service"

	"github.com/gorilla/schema"
)

type Handlers struct {
	AuthService     service.AuthService
	UserService     service.UserService
	CategoryService service.CategoryService
	PostService     service.PostService
	BookService     service.BookService
	StatsService    service.StatsService
	Cfg             *config.Config

	decoder *schema.Decoder
}

func NewHandlers(svc *service.Service, cfg *config.Config) *Handlers {
	return &Handlers{
		AuthService:     svc.Auth,
		UserService:     svc.User,
		CategoryService: svc.Category,
		PostService:     svc.Post,
		BookService:     svc.Book,
		StatsService:    svc.Stats,
		Cfg:             cfg,
		decoder:         newFormDecoder(),
	}
}

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
