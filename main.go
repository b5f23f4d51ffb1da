package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"ember_server/models"
	"ember_server/routes"
	"ember_server/services"
	"ember_server/socket"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	// Initialize DynamoDB client and service
	log.Println("Initializing DynamoDB client...")
	dynamoClient := services.InitializeDynamoDBClient()
	dynamoService := &services.DynamoService{Client: dynamoClient}
	log.Println("DynamoDB client initialized.")

	// Socket server for realtime match notifications
	socketServer := socket.NewServer()
	go func() {
		if err := socketServer.IO().Serve(); err != nil {
			log.Printf("Socket server error: %v\n", err)
		}
	}()
	defer socketServer.IO().Close()

	// Initialize Services
	verifier := services.NewTokenVerifierFromEnv()
	limiter := services.NewRateLimiter(models.MaxQueriesPerHour, time.Hour)
	userProfileService := &services.UserProfileService{Dynamo: dynamoService}
	authService := &services.AuthService{Users: userProfileService, Verifier: verifier}
	recommendationService := &services.RecommendationService{
		Dynamo:  dynamoService,
		Users:   userProfileService,
		Limiter: limiter,
	}
	swipeService := &services.SwipeService{
		Dynamo:   dynamoService,
		Users:    userProfileService,
		Notifier: socketServer,
	}
	statsService := &services.StatsService{Dynamo: dynamoService, Limiter: limiter}

	// Set up the server port
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Using server port: %s\n", port)

	// Initialize the router
	r := mux.NewRouter()

	// Register routes
	routes.RegisterRoutes(r)
	routes.RegisterAuthRoutes(r, authService)
	routes.RegisterUserRoutes(r, userProfileService, verifier)
	routes.RegisterRecommendationRoutes(r, recommendationService, verifier)
	routes.RegisterSwipeRoutes(r, swipeService, verifier)
	routes.RegisterMatchRoutes(r, swipeService, verifier)
	routes.RegisterStatsRoutes(r, statsService, verifier)
	r.Handle("/socket.io/", socketServer.IO())

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // Adjust for specific domains if needed
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", port)
	log.Fatal(http.ListenAndServe(":"+port, corsHandler))
}
