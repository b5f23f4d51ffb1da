package controllers

import (
	"log"
	"net/http"

	"ember_server/apperrors"
	"ember_server/helpers"
	"ember_server/middleware"
	"ember_server/services"
)

// MatchController handles match listing
type MatchController struct {
	SwipeService *services.SwipeService
}

// NewMatchController creates a new instance of MatchController
func NewMatchController(swipeService *services.SwipeService) *MatchController {
	return &MatchController{SwipeService: swipeService}
}

// GetMatches lists the caller's active matches, newest first.
func (c *MatchController) GetMatches(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		helpers.WriteError(w, apperrors.Unauthenticated("User must be authenticated"))
		return
	}

	matches, err := c.SwipeService.GetMatches(r.Context(), userID)
	if err != nil {
		log.Printf("Error getting matches for %s: %v\n", userID, err)
		helpers.WriteError(w, err)
		return
	}

	helpers.WriteJSONResponse(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"matches": matches,
		"count":   len(matches),
	})
}
