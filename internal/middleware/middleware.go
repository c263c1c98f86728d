package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/dexterminal/api/internal/auth"
	"github.com/dexterminal/api/internal/models"
	"github.com/gorilla/mux"
)

// TokenVerifier validates a session token and returns its claims.
// Satisfied by the service layer.
type TokenVerifier interface {
	VerifyToken(token string) (*auth.Claims, error)
}

type contextKey struct{}

var claimsKey contextKey

// AuthMiddleware verifies the bearer token and stores its claims in the
// request context. A missing token yields 401, a failed verification 403.
func AuthMiddleware(verifier TokenVerifier) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := bearerToken(r)
			if tokenString == "" {
				writeError(w, http.StatusUnauthorized, "Access token required")
				return
			}
			claims, err := verifier.VerifyToken(tokenString)
			if err != nil {
				writeError(w, http.StatusForbidden, "Invalid token")
				return
			}
			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin rejects requests whose verified claims do not carry the
// admin role. Must run after AuthMiddleware.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := ClaimsFrom(r.Context())
		if claims == nil || claims.Role != models.RoleAdmin {
			writeError(w, http.StatusForbidden, "Admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ClaimsFrom returns the verified claims stored by AuthMiddleware, or
// nil when the request was not authenticated.
func ClaimsFrom(ctx context.Context) *auth.Claims {
	claims, _ := ctx.Value(claimsKey).(*auth.Claims)
	return claims
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}
