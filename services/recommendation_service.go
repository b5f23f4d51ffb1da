package services

import (
	"context"
	"fmt"
	"math/rand"
	"sort"

	"ember_server/apperrors"
	"ember_server/models"
	"ember_server/utils"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type RecommendationService struct {
	Dynamo  *DynamoService
	Users   *UserProfileService
	Limiter *RateLimiter
}

// GetRecommendations returns up to RecommendationBatchSize candidate
// profiles for userID, best matches first. The top half keeps its rank
// order; the bottom half is shuffled so repeat calls don't always surface
// the same tail.
func (rs *RecommendationService) GetRecommendations(ctx context.Context, userID string) ([]models.ScoredProfile, error) {
	if !rs.Limiter.Allow(userID) {
		return nil, apperrors.ResourceExhausted(
			fmt.Sprintf("Rate limit exceeded. Maximum %d queries per hour.", models.MaxQueriesPerHour))
	}

	requester, err := rs.Users.GetUserProfile(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal("failed to load requester profile", err)
	}
	if requester == nil {
		return nil, apperrors.NotFound("User not found")
	}

	seen, err := rs.seenUserIDs(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal("failed to load swipe history", err)
	}

	candidates, err := rs.fetchCandidates(ctx, userID, seen)
	if err != nil {
		return nil, apperrors.Internal("failed to fetch candidates", err)
	}

	scored := make([]models.ScoredProfile, 0, len(candidates))
	for i := range candidates {
		scored = append(scored, models.ScoredProfile{
			UserProfile:        candidates[i],
			CompatibilityScore: CompatibilityScore(requester, &candidates[i]),
		})
	}

	sort.Slice(scored, func(i, j int) bool {
		return scored[i].CompatibilityScore > scored[j].CompatibilityScore
	})

	if len(scored) > models.RecommendationBatchSize {
		scored = scored[:models.RecommendationBatchSize]
	}

	// Shuffle the bottom half to reduce staleness while keeping the best
	// matches in rank order.
	if len(scored) > 5 {
		bottom := scored[len(scored)/2:]
		rand.Shuffle(len(bottom), func(i, j int) {
			bottom[i], bottom[j] = bottom[j], bottom[i]
		})
	}

	return scored, nil
}

// seenUserIDs builds the set of users the requester has already swiped on.
func (rs *RecommendationService) seenUserIDs(ctx context.Context, userID string) (map[string]struct{}, error) {
	items, err := rs.Dynamo.QueryItems(ctx, models.SwipesTable, "userId = :userId",
		map[string]types.AttributeValue{
			":userId": &types.AttributeValueMemberS{Value: userID},
		}, 0)
	if err != nil {
		return nil, err
	}

	var swipes []models.Swipe
	if err := attributevalue.UnmarshalListOfMaps(items, &swipes); err != nil {
		return nil, fmt.Errorf("failed to unmarshal swipes: %w", err)
	}

	seen := make(map[string]struct{}, len(swipes))
	for _, swipe := range swipes {
		seen[swipe.TargetUserID] = struct{}{}
	}
	return seen, nil
}

// fetchCandidates scans up to CandidateScanLimit complete profiles,
// excluding the requester and anyone already swiped on. The cap trades
// recall for latency: there is no guarantee of exhaustiveness.
func (rs *RecommendationService) fetchCandidates(ctx context.Context, userID string, seen map[string]struct{}) ([]models.UserProfile, error) {
	var candidates []models.UserProfile
	err := rs.Dynamo.ScanWithFilter(ctx, models.UsersTable,
		"isProfileComplete = :complete AND userId <> :self",
		map[string]types.AttributeValue{
			":complete": &types.AttributeValueMemberBOOL{Value: true},
			":self":     &types.AttributeValueMemberS{Value: userID},
		},
		models.CandidateScanLimit,
		func(item map[string]types.AttributeValue) bool {
			id := utils.ExtractString(item, "userId")
			if id == userID {
				return false
			}
			_, swiped := seen[id]
			return !swiped
		}, &candidates)
	if err != nil {
		return nil, err
	}
	return candidates, nil
}
