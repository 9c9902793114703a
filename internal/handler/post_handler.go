package handlers

import (
	"net/http"

	"contentHub/internal/models"
	"contentHub/internal/service"

	"github.com/go-chi/chi/v5"
)

// postRequest accepts the category under either of the names clients use.
type postRequest struct {
	Title      string `json:"title"`
	Body       string `json:"body"`
	Categories string `json:"categories"`
	Category   string `json:"category"`
	PrevImage  string `json:"prevImage"`
}

func (p postRequest) input() service.PostInput {
	categoryID := p.Categories
	if categoryID == "" {
		categoryID = p.Category
	}
	return service.PostInput{
		Title:      p.Title,
		Body:       p.Body,
		CategoryID: categoryID,
		PrevImage:  p.PrevImage,
	}
}

type PostResponse struct {
	Message string       `json:"message"`
	Post    *models.Post `json:"post"`
}

func (h *Handlers) GetPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.PostService.List(r.Context())
	if err != nil {
		h.handleError(w, r, err, http.StatusNotFound)
		return
	}

	summaries := make([]models.PostSummary, 0, len(posts))
	for _, p := range posts {
		summaries = append(summaries, models.SummarizePost(p))
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"posts": summaries})
}

func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	post, err := h.PostService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleError(w, r, err, http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, post)
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	refStatus := h.Cfg.Integrity.PostCreateStatus

	in, cleanup, err := h.bindPost(w, r)
	if err != nil {
		h.handleError(w, r, err, refStatus)
		return
	}
	defer cleanup()

	post, err := h.PostService.Create(r.Context(), in)
	if err != nil {
		h.handleError(w, r, err, refStatus)
		return
	}

	writeJSON(w, http.StatusCreated, PostResponse{Message: "Post created", Post: post})
}

func (h *Handlers) UpdatePost(w http.ResponseWriter, r *http.Request) {
	refStatus := h.Cfg.Integrity.PostUpdateStatus

	in, cleanup, err := h.bindPost(w, r)
	if err != nil {
		h.handleError(w, r, err, refStatus)
		return
	}
	defer cleanup()

	post, err := h.PostService.Update(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		h.handleError(w, r, err, refStatus)
		return
	}

	writeJSON(w, http.StatusOK, PostResponse{Message: "Post updated", Post: post})
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	if err := h.PostService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.handleError(w, r, err, http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, Response{Message: "Post deleted"})
}

func (h *Handlers) AddComment(w http.ResponseWriter, r *http.Request) {
	var req service.CommentInput
	if err := h.bind(w, r, &req); err != nil {
		h.handleError(w, r, err, http.StatusNotFound)
		return
	}

	post, err := h.PostService.AddComment(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err, http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusCreated, PostResponse{Message: "Comment created", Post: post})
}

func (h *Handlers) bindPost(w http.ResponseWriter, r *http.Request) (service.PostInput, func(), error) {
	var req postRequest
	if err := h.bind(w, r, &req); err != nil {
		return service.PostInput{}, noop, err
	}

	thumb, cleanup, err := h.formImage(r, "thumbimage")
	if err != nil {
		return service.PostInput{}, noop, err
	}

	in := req.input()
	in.Thumb = thumb
	return in, cleanup, nil
}
