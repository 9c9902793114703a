package handlers

import (
	"net/http"

	"contentHub/internal/models"
	"contentHub/internal/service"

	"github.com/go-chi/chi/v5"
)

type CategoryResponse struct {
	Message  string           `json:"message"`
	Category *models.Category `json:"category"`
}

func (h *Handlers) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.CategoryService.List(r.Context())
	if err != nil {
		h.handleError(w, r, err, http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"categories": categories})
}

func (h *Handlers) AddCategory(w http.ResponseWriter, r *http.Request) {
	var req service.CategoryInput
	if err := h.bind(w, r, &req); err != nil {
		h.handleError(w, r, err, http.StatusBadRequest)
		return
	}

	category, err := h.CategoryService.Create(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err, http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusCreated, CategoryResponse{Message: "Category created", Category: category})
}

// ShowCategory lists the posts filed under a category.
func (h *Handlers) ShowCategory(w http.ResponseWriter, r *http.Request) {
	category, posts, err := h.CategoryService.Posts(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleError(w, r, err, http.StatusNotFound)
		return
	}

	summaries := make([]models.PostSummary, 0, len(posts))
	for _, p := range posts {
		summaries = append(summaries, models.SummarizePost(p))
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"category": category,
		"posts":    summaries,
	})
}

func (h *Handlers) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.CategoryService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.handleError(w, r, err, http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, Response{Message: "Category deleted"})
}
