package routes

import (
	"ember_server/controllers"
	"ember_server/middleware"
	"ember_server/services"

	"github.com/gorilla/mux"
)

// RegisterMatchRoutes sets up routes for match listing under /api/matches
func RegisterMatchRoutes(r *mux.Router, swipeService *services.SwipeService, verifier services.TokenVerifier) {
	controller := controllers.NewMatchController(swipeService)

	matchRouter := r.PathPrefix("/api/matches").Subrouter()
	matchRouter.HandleFunc("", middleware.RequireAuth(verifier, controller.GetMatches)).Methods("GET")
}
