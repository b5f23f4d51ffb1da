package services

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"ember_server/apperrors"
	"ember_server/models"

	"github.com/golang-jwt/jwt/v5"
	"google.golang.org/api/idtoken"
)

// TokenClaims is the identity extracted from a verified token.
type TokenClaims struct {
	UserID  string
	Email   string
	Name    string
	Picture string
}

// TokenVerifier validates an opaque identity token against a trust anchor.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*TokenClaims, error)
}

// GoogleTokenVerifier validates Google ID tokens.
type GoogleTokenVerifier struct {
	Audience string
}

func (v *GoogleTokenVerifier) Verify(ctx context.Context, token string) (*TokenClaims, error) {
	payload, err := idtoken.Validate(ctx, token, v.Audience)
	if err != nil {
		return nil, fmt.Errorf("failed to validate ID token: %w", err)
	}

	claims := &TokenClaims{UserID: payload.Subject}
	if email, ok := payload.Claims["email"].(string); ok {
		claims.Email = email
	}
	if name, ok := payload.Claims["name"].(string); ok {
		claims.Name = name
	}
	if picture, ok := payload.Claims["picture"].(string); ok {
		claims.Picture = picture
	}
	return claims, nil
}

// DevTokenVerifier validates HS256 tokens signed with a shared secret.
// Selected by DEV_AUTH_SECRET for local development and tests only.
type DevTokenVerifier struct {
	Secret []byte
}

func (v *DevTokenVerifier) Verify(_ context.Context, token string) (*TokenClaims, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.Secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("unexpected claims type %T", parsed.Claims)
	}

	subject, err := mapClaims.GetSubject()
	if err != nil || subject == "" {
		return nil, fmt.Errorf("token has no subject")
	}

	claims := &TokenClaims{UserID: subject}
	if email, ok := mapClaims["email"].(string); ok {
		claims.Email = email
	}
	if name, ok := mapClaims["name"].(string); ok {
		claims.Name = name
	}
	if picture, ok := mapClaims["picture"].(string); ok {
		claims.Picture = picture
	}
	return claims, nil
}

// NewTokenVerifierFromEnv picks the dev verifier when DEV_AUTH_SECRET is
// set, otherwise the Google verifier with GOOGLE_CLIENT_ID as audience.
func NewTokenVerifierFromEnv() TokenVerifier {
	if secret := os.Getenv("DEV_AUTH_SECRET"); secret != "" {
		log.Println("DEV_AUTH_SECRET set, using HS256 dev token verifier")
		return &DevTokenVerifier{Secret: []byte(secret)}
	}
	return &GoogleTokenVerifier{Audience: os.Getenv("GOOGLE_CLIENT_ID")}
}

// AuthService verifies federated identities and provisions user records.
type AuthService struct {
	Users    *UserProfileService
	Verifier TokenVerifier
}

// VerifyGoogleToken validates the token, then creates the user profile on
// first sight or refreshes the login metadata of an existing one. The
// second return value reports whether the user is new.
func (as *AuthService) VerifyGoogleToken(ctx context.Context, idToken string) (*models.UserProfile, bool, error) {
	if idToken == "" {
		return nil, false, apperrors.InvalidArg("ID token is required")
	}

	claims, err := as.Verifier.Verify(ctx, idToken)
	if err != nil {
		return nil, false, apperrors.Internal("authentication failed", err)
	}

	profile, err := as.Users.GetUserProfile(ctx, claims.UserID)
	if err != nil {
		return nil, false, apperrors.Internal("failed to look up user", err)
	}

	if profile == nil {
		now := time.Now().UTC()
		newProfile := models.UserProfile{
			UserID:            claims.UserID,
			Email:             claims.Email,
			Name:              claims.Name,
			Picture:           claims.Picture,
			Provider:          "google",
			Interests:         []string{},
			IsProfileComplete: false,
			CreatedAt:         now,
			LastLogin:         now,
		}
		if claims.Picture != "" {
			newProfile.Photos = []string{claims.Picture}
		}

		if err := as.Users.CreateUserProfile(ctx, newProfile); err != nil {
			return nil, false, apperrors.Internal("failed to create user", err)
		}
		log.Printf("Created profile for new user %s\n", claims.UserID)
		return &newProfile, true, nil
	}

	// Existing user: refresh login metadata only, leaving the rest of the
	// profile untouched.
	refreshed, err := as.Users.RefreshLogin(ctx, claims.UserID, claims.Picture)
	if err != nil {
		return nil, false, apperrors.Internal("failed to refresh login", err)
	}
	return refreshed, false, nil
}
