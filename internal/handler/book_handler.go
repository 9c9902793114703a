package handlers

import (
	"net/http"

	"contentHub/internal/models"
	"contentHub/internal/service"

	"github.com/go-chi/chi/v5"
)

type BookResponse struct {
	Message string       `json:"message"`
	Book    *models.Book `json:"book"`
}

func (h *Handlers) GetBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.BookService.List(r.Context())
	if err != nil {
		h.handleError(w, r, err, http.StatusNotFound)
		return
	}

	summaries := make([]models.BookSummary, 0, len(books))
	for _, b := range books {
		summaries = append(summaries, models.SummarizeBook(b))
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"books": summaries})
}

func (h *Handlers) GetBook(w http.ResponseWriter, r *http.Request) {
	book, err := h.BookService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleError(w, r, err, http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, book)
}

func (h *Handlers) CreateBook(w http.ResponseWriter, r *http.Request) {
	refStatus := h.Cfg.Integrity.BookCreateStatus

	in, cleanup, err := h.bindBook(w, r)
	if err != nil {
		h.handleError(w, r, err, refStatus)
		return
	}
	defer cleanup()

	book, err := h.BookService.Create(r.Context(), in)
	if err != nil {
		h.handleError(w, r, err, refStatus)
		return
	}

	writeJSON(w, http.StatusCreated, BookResponse{Message: "Book created", Book: book})
}

func (h *Handlers) UpdateBook(w http.ResponseWriter, r *http.Request) {
	refStatus := h.Cfg.Integrity.BookUpdateStatus

	in, cleanup, err := h.bindBook(w, r)
	if err != nil {
		h.handleError(w, r, err, refStatus)
		return
	}
	defer cleanup()

	book, err := h.BookService.Update(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		h.handleError(w, r, err, refStatus)
		return
	}

	writeJSON(w, http.StatusOK, BookResponse{Message: "Book updated", Book: book})
}

func (h *Handlers) DeleteBook(w http.ResponseWriter, r *http.Request) {
	if err := h.BookService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.handleError(w, r, err, http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, Response{Message: "Book deleted"})
}

func (h *Handlers) bindBook(w http.ResponseWriter, r *http.Request) (service.BookInput, func(), error) {
	var in service.BookInput
	if err := h.bind(w, r, &in); err != nil {
		return service.BookInput{}, noop, err
	}

	cover, cleanup, err := h.formImage(r, "cover")
	if err != nil {
		return service.BookInput{}, noop, err
	}

	in.Cover = cover
	return in, cleanup, nil
}
