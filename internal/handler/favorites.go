package handler

import (
	"net/http"

	"github.com/dexterminal/api/internal/middleware"
)

type favoriteRequest struct {
	TokenAddress string `json:"tokenAddress"`
	ChainID      string `json:"chainId"`
	TokenName    string `json:"tokenName"`
	TokenSymbol  string `json:"tokenSymbol"`
	TokenLogo    string `json:"tokenLogo"`
}

// ListFavorites returns the caller's favorites.
func (h *Handler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFrom(r.Context())
	favorites, err := h.svc.ListFavorites(claims.UserID)
	if err != nil {
		respondServiceError(w, err, "Error fetching favorites")
		return
	}
	respondJSON(w, http.StatusOK, favorites)
}

// AddFavorite saves a token for the caller. Re-adding an existing
// favorite succeeds and returns the existing id.
func (h *Handler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	var req favoriteRequest
	if err := decodeJSON(r, &req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	claims := middleware.ClaimsFrom(r.Context())
	id, err := h.svc.AddFavorite(claims.UserID, req.TokenAddress, req.ChainID,
		req.TokenName, req.TokenSymbol, req.TokenLogo)
	if err != nil {
		respondServiceError(w, err, "Error adding favorite")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Added to favorites",
		"id":      id,
	})
}

// RemoveFavorite deletes the caller's favorite; absence is a success.
func (h *Handler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	var req favoriteRequest
	if err := decodeJSON(r, &req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	claims := middleware.ClaimsFrom(r.Context())
	if err := h.svc.RemoveFavorite(claims.UserID, req.TokenAddress, req.ChainID); err != nil {
		respondServiceError(w, err, "Error removing favorite")
		return
	}
	respondMessage(w, http.StatusOK, "Removed from favorites")
}

// CheckFavorite reports whether the caller favorited the token.
func (h *Handler) CheckFavorite(w http.ResponseWriter, r *http.Request) {
	var req favoriteRequest
	if err := decodeJSON(r, &req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	claims := middleware.ClaimsFrom(r.Context())
	isFavorite, err := h.svc.IsFavorite(claims.UserID, req.TokenAddress, req.ChainID)
	if err != nil {
		respondServiceError(w, err, "Error checking favorite")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"isFavorite": isFavorite})
}
