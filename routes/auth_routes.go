package routes

import (
	"ember_server/controllers"
	"ember_server/services"

	"github.com/gorilla/mux"
)

// RegisterAuthRoutes sets up routes for identity verification under /api/auth
func RegisterAuthRoutes(r *mux.Router, authService *services.AuthService) {
	controller := controllers.NewAuthController(authService)

	authRouter := r.PathPrefix("/api/auth").Subrouter()
	authRouter.HandleFunc("/google", controller.VerifyGoogleToken).Methods("POST")
}
