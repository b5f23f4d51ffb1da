package routes

import (
	"ember_server/controllers"
	"ember_server/middleware"
	"ember_server/services"

	"github.com/gorilla/mux"
)

// RegisterStatsRoutes sets up routes for usage reporting under /api/stats
func RegisterStatsRoutes(r *mux.Router, statsService *services.StatsService, verifier services.TokenVerifier) {
	controller := controllers.NewStatsController(statsService)

	statsRouter := r.PathPrefix("/api/stats").Subrouter()
	statsRouter.HandleFunc("", middleware.RequireAuth(verifier, controller.GetUserStats)).Methods("GET")
}
