package services

import (
	"context"
	"testing"
	"time"

	"ember_server/apperrors"
	"ember_server/models"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUserStatsRequiresUser(t *testing.T) {
	svc := &StatsService{
		Dynamo:  &DynamoService{Client: &fakeDynamoClient{}},
		Limiter: NewRateLimiter(models.MaxQueriesPerHour, time.Hour),
	}

	_, err := svc.GetUserStats(context.Background(), "")
	assert.Equal(t, apperrors.CodeUnauthenticated, apperrors.CodeOf(err))
}

func TestGetUserStatsAggregatesCounts(t *testing.T) {
	client := &fakeDynamoClient{}
	client.queryFunc = func(input *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
		switch {
		case *input.TableName == models.SwipesTable:
			return &dynamodb.QueryOutput{Count: 12}, nil
		case input.IndexName != nil && *input.IndexName == models.MatchUser1Index:
			return &dynamodb.QueryOutput{Count: 2}, nil
		case input.IndexName != nil && *input.IndexName == models.MatchUser2Index:
			return &dynamodb.QueryOutput{Count: 3}, nil
		}
		return &dynamodb.QueryOutput{}, nil
	}

	limiter := NewRateLimiter(models.MaxQueriesPerHour, time.Hour)
	for i := 0; i < 4; i++ {
		limiter.Allow("anna")
	}

	svc := &StatsService{Dynamo: &DynamoService{Client: client}, Limiter: limiter}

	stats, err := svc.GetUserStats(context.Background(), "anna")
	require.NoError(t, err)

	assert.Equal(t, 12, stats.TotalSwipes)
	assert.Equal(t, 5, stats.TotalMatches)
	assert.Equal(t, 4, stats.QueriesThisHour)
	assert.Equal(t, models.MaxQueriesPerHour-4, stats.QueriesRemaining)

	// Counting stats never consumes rate-limit budget.
	assert.Equal(t, 4, limiter.Count("anna"))
	assert.Len(t, client.queryInputs, 3)
}
