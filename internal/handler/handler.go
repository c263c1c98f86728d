package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/dexterminal/api/internal/service"
)

type Handler struct {
	svc *service.Service
}

func NewHandler(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Health reports service liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func respondJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func respondMessage(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"message": message})
}

func decodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// respondServiceError maps service errors to status codes. Unknown
// errors become a 500 with the endpoint's generic message so internal
// detail never reaches the client.
func respondServiceError(w http.ResponseWriter, err error, fallback string) {
	switch e := err.(type) {
	case *service.ValidationError:
		respondMessage(w, http.StatusBadRequest, e.Message)
	case *service.ConflictError:
		respondMessage(w, http.StatusBadRequest, e.Message)
	case *service.AuthError:
		respondMessage(w, http.StatusUnauthorized, e.Message)
	case *service.AuthzError:
		respondMessage(w, http.StatusForbidden, e.Message)
	default:
		respondMessage(w, http.StatusInternalServerError, fallback)
	}
}
