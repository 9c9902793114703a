package handlers

import (
	"net/http"

	"contentHub/internal/models"
	"contentHub/internal/service"
)

type RegisterResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    *models.User `json:"user"`
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req service.RegisterInput
	if err := h.bind(w, r, &req); err != nil {
		h.handleError(w, r, err, http.StatusBadRequest)
		return
	}

	image, closeImage, err := h.formImage(r, "profileImage")
	if err != nil {
		h.handleError(w, r, err, http.StatusBadRequest)
		return
	}
	defer closeImage()
	req.Image = image

	user, token, err := h.AuthService.Register(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err, http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusCreated, RegisterResponse{
		Message: "User registered",
		Token:   token,
		User:    user,
	})
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req service.LoginInput
	if err := h.bind(w, r, &req); err != nil {
		h.handleError(w, r, err, http.StatusBadRequest)
		return
	}

	token, err := h.AuthService.Login(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err, http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, Response{Token: token})
}
