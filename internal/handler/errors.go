package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"contentHub/internal/logger"
	"contentHub/internal/service"
)

// Response is the common envelope; entity payloads are added per route.
type Response struct {
	Message string               `json:"message,omitempty"`
	Token   string               `json:"token,omitempty"`
	Errors  []service.FieldError `json:"errors,omitempty"`
}

// requestError is a malformed or oversized body or upload.
type requestError struct {
	msg    string
	status int
}

func (e *requestError) Error() string { return e.msg }

func badRequest(msg string) error {
	return &requestError{msg: msg, status: http.StatusBadRequest}
}

func WriteError(w http.ResponseWriter, message string, statusCode int) {
	writeJSON(w, statusCode, Response{Message: message})
}

func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// handleError maps service errors to responses. refStatus is the status a
// missing category reference answers with on this route.
func (h *Handlers) handleError(w http.ResponseWriter, r *http.Request, err error, refStatus int) {
	var (
		verr   *service.ValidationError
		reqErr *requestError
	)

	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, Response{Message: "Validation failed", Errors: verr.Fields})
	case errors.As(err, &reqErr):
		WriteError(w, reqErr.msg, reqErr.status)
	case errors.Is(err, service.ErrConflict):
		WriteError(w, "Username or email already exists", http.StatusConflict)
	case errors.Is(err, service.ErrInvalidCredentials):
		WriteError(w, "Invalid credentials", http.StatusUnauthorized)
	case errors.Is(err, service.ErrReferenceNotFound):
		WriteError(w, "Category not found", refStatus)
	case errors.Is(err, service.ErrTargetNotFound):
		WriteError(w, "Post not found", http.StatusNotFound)
	case errors.Is(err, service.ErrNotFound):
		WriteError(w, "Not found", http.StatusNotFound)
	default:
		log := logger.FromContext(r.Context())
		log.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		WriteError(w, "Internal server error", http.StatusInternalServerError)
	}
}
