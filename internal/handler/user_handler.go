package handlers

import (
	"net/http"

	"contentHub/internal/auth"
)

func (h *Handlers) Protected(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.SubjectFromContext(r.Context())
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Access granted",
		"userId":  userID,
	})
}

// GetCurrentUser returns the identity the request's token was issued to.
func (h *Handlers) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.SubjectFromContext(r.Context())
	if !ok {
		WriteError(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	user, err := h.UserService.GetUser(r.Context(), userID)
	if err != nil {
		h.handleError(w, r, err, http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (h *Handlers) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.UserService.ListUsers(r.Context())
	if err != nil {
		h.handleError(w, r, err, http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"users": users})
}

func (h *Handlers) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.StatsService.Counts(r.Context())
	if err != nil {
		h.handleError(w, r, err, http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
