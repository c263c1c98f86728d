package handler

import (
	"net/http"

	"github.com/dexterminal/api/internal/middleware"
	"github.com/dexterminal/api/internal/models"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// Register handles user registration
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, user, err := h.svc.Register(req.Username, req.Email, req.Password)
	if err != nil {
		respondServiceError(w, err, "Error creating user")
		return
	}
	respondJSON(w, http.StatusCreated, authResponse{Token: token, User: user})
}

// Login handles user authentication
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, user, err := h.svc.Login(req.Email, req.Password)
	if err != nil {
		respondServiceError(w, err, "Server error")
		return
	}
	respondJSON(w, http.StatusOK, authResponse{Token: token, User: user})
}

// Verify echoes the verified session claims back to the caller.
func (h *Handler) Verify(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, middleware.ClaimsFrom(r.Context()))
}
