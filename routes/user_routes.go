package routes

import (
	"ember_server/controllers"
	"ember_server/middleware"
	"ember_server/services"

	"github.com/gorilla/mux"
)

// RegisterUserRoutes sets up routes for user lookups under /api/users
func RegisterUserRoutes(r *mux.Router, userProfileService *services.UserProfileService, verifier services.TokenVerifier) {
	controller := controllers.NewUserController(userProfileService)

	userRouter := r.PathPrefix("/api/users").Subrouter()
	userRouter.HandleFunc("/batch", controller.GetUsersByIDs).Methods("POST")
	userRouter.HandleFunc("/filter", middleware.RequireAuth(verifier, controller.GetUsersByFilters)).Methods("POST")
}
