package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"ember_server/models"
	"ember_server/utils"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type UserProfileService struct {
	Dynamo *DynamoService
}

// GetUserProfile retrieves a user profile by ID. Returns (nil, nil) when no
// profile exists.
func (ups *UserProfileService) GetUserProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}

	item, err := ups.Dynamo.GetItem(ctx, models.UsersTable, key)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}

	var profile models.UserProfile
	if err := attributevalue.UnmarshalMap(item, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	return &profile, nil
}

// CreateUserProfile stores a new user profile.
func (ups *UserProfileService) CreateUserProfile(ctx context.Context, profile models.UserProfile) error {
	return ups.Dynamo.PutItem(ctx, models.UsersTable, profile)
}

// RefreshLogin updates the last-login timestamp, and the picture when one
// is provided, returning the profile's new state.
func (ups *UserProfileService) RefreshLogin(ctx context.Context, userID, picture string) (*models.UserProfile, error) {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}

	lastLogin, err := attributevalue.Marshal(time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	updateExpression := "SET lastLogin = :lastLogin"
	expressionAttributeValues := map[string]types.AttributeValue{
		":lastLogin": lastLogin,
	}
	if picture != "" {
		updateExpression += ", picture = :picture"
		expressionAttributeValues[":picture"] = &types.AttributeValueMemberS{Value: picture}
	}

	updatedItem, err := ups.Dynamo.UpdateItem(ctx, models.UsersTable, updateExpression, key, expressionAttributeValues)
	if err != nil {
		return nil, err
	}

	var profile models.UserProfile
	if err := attributevalue.UnmarshalMap(updatedItem, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal updated profile: %w", err)
	}
	return &profile, nil
}

// GetUsersByIDs fetches profiles for the given ids, chunking the key list
// so no single store request exceeds the query-width limit.
func (ups *UserProfileService) GetUsersByIDs(ctx context.Context, ids []string) ([]models.UserProfile, error) {
	if len(ids) == 0 {
		return []models.UserProfile{}, nil
	}

	keys := make([]map[string]types.AttributeValue, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, map[string]types.AttributeValue{
			"userId": &types.AttributeValueMemberS{Value: id},
		})
	}

	items, err := ups.Dynamo.BatchGetItems(ctx, models.UsersTable, keys, models.BatchGetLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users by ids: %w", err)
	}

	var profiles []models.UserProfile
	if err := attributevalue.UnmarshalListOfMaps(items, &profiles); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profiles: %w", err)
	}
	return profiles, nil
}

// GetUsersByFilters scans complete profiles and applies the caller's
// criteria: age bounds and education at the store, interest overlap and
// distance in memory. Results carry the distance to the requester when both
// locations are known.
func (ups *UserProfileService) GetUsersByFilters(ctx context.Context, userID string, filters models.UserFilters) ([]models.FilteredProfile, error) {
	requester, err := ups.GetUserProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 50
	}
	if limit > 100 {
		limit = 100
	}

	maxDistance := models.MaxDistanceKm
	if filters.MaxDistance != nil {
		maxDistance = *filters.MaxDistance
	}

	excluded := make(map[string]struct{}, len(filters.ExcludeIDs)+1)
	excluded[userID] = struct{}{}
	for _, id := range filters.ExcludeIDs {
		excluded[id] = struct{}{}
	}

	filterExpression := "isProfileComplete = :complete"
	expressionAttributeValues := map[string]types.AttributeValue{
		":complete": &types.AttributeValueMemberBOOL{Value: true},
	}
	if filters.AgeMin != nil {
		filterExpression += " AND age >= :ageMin"
		expressionAttributeValues[":ageMin"] = &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", *filters.AgeMin)}
	}
	if filters.AgeMax != nil {
		filterExpression += " AND age <= :ageMax"
		expressionAttributeValues[":ageMax"] = &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", *filters.AgeMax)}
	}
	if filters.Education != nil {
		filterExpression += " AND education = :education"
		expressionAttributeValues[":education"] = &types.AttributeValueMemberS{Value: *filters.Education}
	}

	// Scan more than requested to leave room for the in-memory filters.
	var candidates []models.UserProfile
	err = ups.Dynamo.ScanWithFilter(ctx, models.UsersTable, filterExpression, expressionAttributeValues,
		int32(limit*2), func(item map[string]types.AttributeValue) bool {
			_, skip := excluded[utils.ExtractString(item, "userId")]
			return !skip
		}, &candidates)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch filtered profiles: %w", err)
	}

	results := make([]models.FilteredProfile, 0, limit)
	for i := range candidates {
		candidate := candidates[i]

		if len(filters.Interests) > 0 && !anyInterestShared(filters.Interests, candidate.Interests) {
			continue
		}

		result := models.FilteredProfile{UserProfile: candidate}
		if requester != nil && requester.Location != nil && candidate.Location != nil {
			distance := utils.CalculateDistance(
				requester.Location.Lat, requester.Location.Lng,
				candidate.Location.Lat, candidate.Location.Lng,
			)
			if distance > maxDistance {
				continue
			}
			rounded := math.Round(distance*10) / 10
			result.Distance = &rounded
		}

		results = append(results, result)
		if len(results) >= limit {
			break
		}
	}

	return results, nil
}

func anyInterestShared(wanted, have []string) bool {
	haveSet := make(map[string]struct{}, len(have))
	for _, interest := range have {
		haveSet[interest] = struct{}{}
	}
	for _, interest := range wanted {
		if _, ok := haveSet[interest]; ok {
			return true
		}
	}
	return false
}
