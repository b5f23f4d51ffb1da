package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"ember_server/apperrors"
	"ember_server/helpers"
	"ember_server/middleware"
	"ember_server/models"
	"ember_server/services"
)

// UserController handles batch and filtered user lookups
type UserController struct {
	UserProfileService *services.UserProfileService
}

// NewUserController creates a new instance of UserController
func NewUserController(userProfileService *services.UserProfileService) *UserController {
	return &UserController{UserProfileService: userProfileService}
}

// GetUsersByIDs fetches multiple users by id, chunking store lookups to the
// query-width limit. An empty ids array is a valid request.
func (c *UserController) GetUsersByIDs(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		IDs *[]string `json:"ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.IDs == nil {
		helpers.WriteError(w, apperrors.InvalidArg("ids array is required"))
		return
	}

	ids := *payload.IDs
	users, err := c.UserProfileService.GetUsersByIDs(r.Context(), ids)
	if err != nil {
		log.Printf("Error getting users by ids: %v\n", err)
		helpers.WriteError(w, apperrors.Internal("Failed to get users", err))
		return
	}

	log.Printf("Retrieved %d users from %d requested IDs\n", len(users), len(ids))
	helpers.WriteJSONResponse(w, http.StatusOK, map[string]interface{}{
		"success":         true,
		"users":           users,
		"total_requested": len(ids),
		"total_found":     len(users),
	})
}

// GetUsersByFilters returns complete profiles matching the caller's
// criteria, annotated with distance where known.
func (c *UserController) GetUsersByFilters(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		helpers.WriteError(w, apperrors.Unauthenticated("User must be authenticated"))
		return
	}

	var filters models.UserFilters
	if r.Body != nil {
		// An empty or absent body means no filters.
		_ = json.NewDecoder(r.Body).Decode(&filters)
	}

	users, err := c.UserProfileService.GetUsersByFilters(r.Context(), userID, filters)
	if err != nil {
		log.Printf("Error filtering users: %v\n", err)
		helpers.WriteError(w, apperrors.Internal("Failed to filter users", err))
		return
	}

	helpers.WriteJSONResponse(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"users":   users,
		"count":   len(users),
	})
}
