package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"ember_server/apperrors"
	"ember_server/helpers"
	"ember_server/middleware"
	"ember_server/services"
)

// SwipeController handles swipe decisions
type SwipeController struct {
	SwipeService *services.SwipeService
}

// NewSwipeController creates a new instance of SwipeController
func NewSwipeController(swipeService *services.SwipeService) *SwipeController {
	return &SwipeController{SwipeService: swipeService}
}

// HandleSwipe records a like/pass decision and reports whether it produced
// a match.
func (c *SwipeController) HandleSwipe(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		helpers.WriteError(w, apperrors.Unauthenticated("User must be authenticated"))
		return
	}

	var payload struct {
		TargetUserID string `json:"target_user_id"`
		IsLike       bool   `json:"is_like"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		helpers.WriteError(w, apperrors.InvalidArg("Invalid request payload"))
		return
	}

	isMatch, err := c.SwipeService.HandleSwipe(r.Context(), userID, payload.TargetUserID, payload.IsLike)
	if err != nil {
		log.Printf("Error handling swipe from %s: %v\n", userID, err)
		helpers.WriteError(w, err)
		return
	}

	helpers.WriteJSONResponse(w, http.StatusOK, map[string]interface{}{
		"success":        true,
		"is_match":       isMatch,
		"swipe_recorded": true,
	})
}
