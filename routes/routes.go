package routes

import (
	"ember_server/controllers"

	"github.com/gorilla/mux"
)

// RegisterRoutes sets up the base routes for the application
func RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/", controllers.WelcomeHandler).Methods("GET")
	r.HandleFunc("/health", controllers.HealthCheckHandler).Methods("GET")
}
