package handler

import (
	"net/http"
	"strconv"

	"github.com/dexterminal/api/internal/middleware"
	"github.com/gorilla/mux"
)

type roleRequest struct {
	Role string `json:"role"`
}

// AdminListUsers returns all users' public fields.
func (h *Handler) AdminListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.ListUsers()
	if err != nil {
		respondServiceError(w, err, "Error fetching users")
		return
	}
	respondJSON(w, http.StatusOK, users)
}

// AdminListFavorites returns every favorite with its owner's username.
func (h *Handler) AdminListFavorites(w http.ResponseWriter, r *http.Request) {
	favorites, err := h.svc.ListAllFavorites()
	if err != nil {
		respondServiceError(w, err, "Error fetching favorites")
		return
	}
	respondJSON(w, http.StatusOK, favorites)
}

// AdminStats returns aggregate usage counts.
func (h *Handler) AdminStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats()
	if err != nil {
		respondServiceError(w, err, "Error fetching stats")
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

// AdminDeleteUser deletes a user; self-deletion is rejected.
func (h *Handler) AdminDeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	claims := middleware.ClaimsFrom(r.Context())
	if err := h.svc.DeleteUser(claims.UserID, id); err != nil {
		respondServiceError(w, err, "Error deleting user")
		return
	}
	respondMessage(w, http.StatusOK, "User deleted successfully")
}

// AdminSetRole changes a user's role; self-modification is rejected.
func (h *Handler) AdminSetRole(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	var req roleRequest
	if err := decodeJSON(r, &req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	claims := middleware.ClaimsFrom(r.Context())
	if err := h.svc.SetUserRole(claims.UserID, id, req.Role); err != nil {
		respondServiceError(w, err, "Error updating user role")
		return
	}
	respondMessage(w, http.StatusOK, "User role updated successfully")
}
