package services

import (
	"context"

	"ember_server/apperrors"
	"ember_server/models"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"golang.org/x/sync/errgroup"
)

type StatsService struct {
	Dynamo  *DynamoService
	Limiter *RateLimiter
}

// GetUserStats reports the user's rate-limit window (read without
// admitting a call) plus total swipe and match counts. Matches are counted
// from both sides of the pair.
func (sts *StatsService) GetUserStats(ctx context.Context, userID string) (*models.UserStats, error) {
	if userID == "" {
		return nil, apperrors.Unauthenticated("User must be authenticated")
	}

	userValue := map[string]types.AttributeValue{
		":userId": &types.AttributeValueMemberS{Value: userID},
	}

	var swipes, matchesAsUser1, matchesAsUser2 int
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		swipes, err = sts.Dynamo.CountItems(gctx, models.SwipesTable, "", "userId = :userId", userValue)
		return err
	})
	g.Go(func() error {
		var err error
		matchesAsUser1, err = sts.Dynamo.CountItems(gctx, models.MatchesTable, models.MatchUser1Index, "user1Id = :userId", userValue)
		return err
	})
	g.Go(func() error {
		var err error
		matchesAsUser2, err = sts.Dynamo.CountItems(gctx, models.MatchesTable, models.MatchUser2Index, "user2Id = :userId", userValue)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, apperrors.Internal("failed to load user stats", err)
	}

	return &models.UserStats{
		QueriesThisHour:  sts.Limiter.Count(userID),
		QueriesRemaining: sts.Limiter.Remaining(userID),
		TotalSwipes:      swipes,
		TotalMatches:     matchesAsUser1 + matchesAsUser2,
	}, nil
}
