package routes

import (
	"ember_server/controllers"
	"ember_server/middleware"
	"ember_server/services"

	"github.com/gorilla/mux"
)

// RegisterSwipeRoutes sets up routes for swipe decisions under /api/swipes
func RegisterSwipeRoutes(r *mux.Router, swipeService *services.SwipeService, verifier services.TokenVerifier) {
	controller := controllers.NewSwipeController(swipeService)

	swipeRouter := r.PathPrefix("/api/swipes").Subrouter()
	swipeRouter.HandleFunc("", middleware.RequireAuth(verifier, controller.HandleSwipe)).Methods("POST")
}
