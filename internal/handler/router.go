package handler

import (
	"github.com/dexterminal/api/internal/middleware"
	"github.com/gorilla/mux"
)

// NewRouter wires all routes and their middleware.
func NewRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()

	// Public routes
	r.HandleFunc("/api/auth/register", h.Register).Methods("POST")
	r.HandleFunc("/api/auth/login", h.Login).Methods("POST")
	r.HandleFunc("/api/health", h.Health).Methods("GET")

	// Protected routes
	authRouter := r.PathPrefix("/api").Subrouter()
	authRouter.Use(middleware.AuthMiddleware(h.svc))
	authRouter.HandleFunc("/auth/verify", h.Verify).Methods("GET")
	authRouter.HandleFunc("/favorites", h.ListFavorites).Methods("GET")
	authRouter.HandleFunc("/favorites/add", h.AddFavorite).Methods("POST")
	authRouter.HandleFunc("/favorites/remove", h.RemoveFavorite).Methods("POST")
	authRouter.HandleFunc("/favorites/check", h.CheckFavorite).Methods("POST")

	// Admin routes
	adminRouter := authRouter.PathPrefix("/admin").Subrouter()
	adminRouter.Use(middleware.RequireAdmin)
	adminRouter.HandleFunc("/users", h.AdminListUsers).Methods("GET")
	adminRouter.HandleFunc("/favorites", h.AdminListFavorites).Methods("GET")
	adminRouter.HandleFunc("/stats", h.AdminStats).Methods("GET")
	adminRouter.HandleFunc("/users/{id}", h.AdminDeleteUser).Methods("DELETE")
	adminRouter.HandleFunc("/users/{id}/role", h.AdminSetRole).Methods("PUT")

	return r
}
