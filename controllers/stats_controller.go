package controllers

import (
	"log"
	"net/http"

	"ember_server/apperrors"
	"ember_server/helpers"
	"ember_server/middleware"
	"ember_server/services"
)

// StatsController reports usage and rate-limit status
type StatsController struct {
	StatsService *services.StatsService
}

// NewStatsController creates a new instance of StatsController
func NewStatsController(statsService *services.StatsService) *StatsController {
	return &StatsController{StatsService: statsService}
}

// GetUserStats returns the caller's query budget and aggregate counters.
func (c *StatsController) GetUserStats(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		helpers.WriteError(w, apperrors.Unauthenticated("User must be authenticated"))
		return
	}

	stats, err := c.StatsService.GetUserStats(r.Context(), userID)
	if err != nil {
		log.Printf("Error getting stats for %s: %v\n", userID, err)
		helpers.WriteError(w, err)
		return
	}

	helpers.WriteJSONResponse(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"stats":   stats,
	})
}
