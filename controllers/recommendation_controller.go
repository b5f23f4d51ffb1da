package controllers

import (
	"log"
	"net/http"

	"ember_server/apperrors"
	"ember_server/helpers"
	"ember_server/middleware"
	"ember_server/services"
)

// RecommendationController handles recommendation requests
type RecommendationController struct {
	RecommendationService *services.RecommendationService
}

// NewRecommendationController creates a new instance of RecommendationController
func NewRecommendationController(recommendationService *services.RecommendationService) *RecommendationController {
	return &RecommendationController{RecommendationService: recommendationService}
}

// GetRecommendations returns ranked candidate profiles for the caller.
func (c *RecommendationController) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		helpers.WriteError(w, apperrors.Unauthenticated("User must be authenticated"))
		return
	}

	recommendations, err := c.RecommendationService.GetRecommendations(r.Context(), userID)
	if err != nil {
		log.Printf("Error getting recommendations for %s: %v\n", userID, err)
		helpers.WriteError(w, err)
		return
	}

	helpers.WriteJSONResponse(w, http.StatusOK, map[string]interface{}{
		"success":         true,
		"recommendations": recommendations,
		"count":           len(recommendations),
	})
}
