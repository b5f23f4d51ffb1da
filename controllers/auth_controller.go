package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"ember_server/apperrors"
	"ember_server/helpers"
	"ember_server/services"
)

// AuthController handles identity verification requests
type AuthController struct {
	AuthService *services.AuthService
}

// NewAuthController creates a new instance of AuthController
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// VerifyGoogleToken validates a Google ID token and provisions or
// refreshes the user's profile.
func (c *AuthController) VerifyGoogleToken(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		IDToken string `json:"idToken"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		helpers.WriteError(w, apperrors.InvalidArg("Invalid request payload"))
		return
	}

	user, isNewUser, err := c.AuthService.VerifyGoogleToken(r.Context(), payload.IDToken)
	if err != nil {
		log.Printf("Error verifying Google token: %v\n", err)
		helpers.WriteError(w, err)
		return
	}

	helpers.WriteJSONResponse(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"user":      user,
		"isNewUser": isNewUser,
	})
}
