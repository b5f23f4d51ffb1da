package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"ember_server/apperrors"
	"ember_server/models"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// staticVerifier returns canned claims or a canned error.
type staticVerifier struct {
	claims *TokenClaims
	err    error
}

func (v *staticVerifier) Verify(_ context.Context, _ string) (*TokenClaims, error) {
	return v.claims, v.err
}

func newAuthService(client *fakeDynamoClient, verifier TokenVerifier) *AuthService {
	return &AuthService{
		Users:    &UserProfileService{Dynamo: &DynamoService{Client: client}},
		Verifier: verifier,
	}
}

func TestVerifyGoogleTokenRequiresToken(t *testing.T) {
	svc := newAuthService(&fakeDynamoClient{}, &staticVerifier{})

	_, _, err := svc.VerifyGoogleToken(context.Background(), "")
	assert.Equal(t, apperrors.CodeInvalidArgument, apperrors.CodeOf(err))
}

func TestVerifyGoogleTokenVerifierFailure(t *testing.T) {
	verifier := &staticVerifier{err: errors.New("token expired")}
	svc := newAuthService(&fakeDynamoClient{}, verifier)

	_, _, err := svc.VerifyGoogleToken(context.Background(), "bad-token")
	assert.Equal(t, apperrors.CodeInternal, apperrors.CodeOf(err))
}

func TestVerifyGoogleTokenProvisionsNewUser(t *testing.T) {
	verifier := &staticVerifier{claims: &TokenClaims{
		UserID:  "google-123",
		Email:   "alice@example.com",
		Name:    "Alice",
		Picture: "https://example.com/alice.jpg",
	}}
	client := &fakeDynamoClient{}
	svc := newAuthService(client, verifier)

	profile, isNew, err := svc.VerifyGoogleToken(context.Background(), "valid-token")
	require.NoError(t, err)
	assert.True(t, isNew)
	require.NotNil(t, profile)

	assert.Equal(t, "google-123", profile.UserID)
	assert.Equal(t, "alice@example.com", profile.Email)
	assert.Equal(t, "google", profile.Provider)
	assert.False(t, profile.IsProfileComplete)
	assert.NotNil(t, profile.Interests)
	assert.Empty(t, profile.Interests)
	assert.Equal(t, []string{"https://example.com/alice.jpg"}, profile.Photos)
	assert.False(t, profile.CreatedAt.IsZero())

	require.Len(t, client.putsToTable(models.UsersTable), 1)
}

func TestVerifyGoogleTokenRefreshesExistingUser(t *testing.T) {
	verifier := &staticVerifier{claims: &TokenClaims{UserID: "google-123", Picture: "new.jpg"}}

	existing := models.UserProfile{
		UserID:            "google-123",
		Name:              "Alice",
		IsProfileComplete: true,
		CreatedAt:         time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	client := &fakeDynamoClient{}
	client.getFunc = func(input *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
		return &dynamodb.GetItemOutput{Item: mustMarshalMap(t, existing)}, nil
	}
	client.updateFunc = func(input *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
		refreshed := existing
		refreshed.Picture = "new.jpg"
		refreshed.LastLogin = time.Now().UTC()
		return &dynamodb.UpdateItemOutput{Attributes: mustMarshalMap(t, refreshed)}, nil
	}
	svc := newAuthService(client, verifier)

	profile, isNew, err := svc.VerifyGoogleToken(context.Background(), "valid-token")
	require.NoError(t, err)
	assert.False(t, isNew)
	require.NotNil(t, profile)
	assert.Equal(t, "new.jpg", profile.Picture)

	// Existing users get an update, never a fresh put.
	assert.Empty(t, client.putsToTable(models.UsersTable))
	require.Len(t, client.updateInputs, 1)
	update := client.updateInputs[0]
	assert.Contains(t, *update.UpdateExpression, "lastLogin")
	assert.Contains(t, *update.UpdateExpression, "picture")
	assert.Equal(t, "google-123", update.Key["userId"].(*types.AttributeValueMemberS).Value)
}

func signDevToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestDevTokenVerifierRoundtrip(t *testing.T) {
	verifier := &DevTokenVerifier{Secret: []byte("test-secret")}
	token := signDevToken(t, "test-secret", jwt.MapClaims{
		"sub":     "user-1",
		"email":   "bob@example.com",
		"name":    "Bob",
		"picture": "bob.jpg",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	claims, err := verifier.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "bob@example.com", claims.Email)
	assert.Equal(t, "Bob", claims.Name)
	assert.Equal(t, "bob.jpg", claims.Picture)
}

func TestDevTokenVerifierRejectsWrongSecret(t *testing.T) {
	verifier := &DevTokenVerifier{Secret: []byte("right-secret")}
	token := signDevToken(t, "wrong-secret", jwt.MapClaims{"sub": "user-1"})

	_, err := verifier.Verify(context.Background(), token)
	assert.Error(t, err)
}

func TestDevTokenVerifierRejectsMissingSubject(t *testing.T) {
	verifier := &DevTokenVerifier{Secret: []byte("test-secret")}
	token := signDevToken(t, "test-secret", jwt.MapClaims{"email": "bob@example.com"})

	_, err := verifier.Verify(context.Background(), token)
	assert.Error(t, err)
}
