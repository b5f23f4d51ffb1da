package routes

import (
	"ember_server/controllers"
	"ember_server/middleware"
	"ember_server/services"

	"github.com/gorilla/mux"
)

// RegisterRecommendationRoutes sets up routes under /api/recommendations
func RegisterRecommendationRoutes(r *mux.Router, recommendationService *services.RecommendationService, verifier services.TokenVerifier) {
	controller := controllers.NewRecommendationController(recommendationService)

	recommendationRouter := r.PathPrefix("/api/recommendations").Subrouter()
	recommendationRouter.HandleFunc("", middleware.RequireAuth(verifier, controller.GetRecommendations)).Methods("GET")
}
