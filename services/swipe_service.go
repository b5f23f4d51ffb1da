package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"ember_server/apperrors"
	"ember_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// MatchNotifier pushes a realtime event to the matched users. Notification
// is best-effort; failures never fail the swipe.
type MatchNotifier interface {
	NotifyMatch(matchID string, userIDs []string)
}

type SwipeService struct {
	Dynamo   *DynamoService
	Users    *UserProfileService
	Notifier MatchNotifier
}

// HandleSwipe records the decision and, for a like, checks whether the
// target already liked the actor. On mutual like it creates the match and
// its conversation. The swipe write happens before the reciprocity check so
// a rapid-fire mutual swipe from the peer can observe it.
func (ss *SwipeService) HandleSwipe(ctx context.Context, userID, targetUserID string, isLike bool) (bool, error) {
	if userID == "" {
		return false, apperrors.Unauthenticated("User must be authenticated")
	}
	if targetUserID == "" {
		return false, apperrors.InvalidArg("target_user_id is required")
	}

	swipe := models.Swipe{
		UserID:       userID,
		TargetUserID: targetUserID,
		IsLike:       isLike,
		CreatedAt:    time.Now().UTC(),
	}

	// Keyed on (userId, targetUserId): a repeat decision overwrites the
	// earlier row instead of appending a duplicate.
	if err := ss.Dynamo.PutItem(ctx, models.SwipesTable, swipe); err != nil {
		return false, apperrors.Internal("failed to record swipe", err)
	}

	if !isLike {
		return false, nil
	}

	reciprocal, err := ss.reciprocalLike(ctx, userID, targetUserID)
	if err != nil {
		return false, apperrors.Internal("failed to check reciprocity", err)
	}
	if !reciprocal {
		return false, nil
	}

	if err := ss.createMatch(ctx, userID, targetUserID); err != nil {
		return false, apperrors.Internal("failed to create match", err)
	}
	return true, nil
}

// reciprocalLike reports whether target has a like-swipe toward user.
func (ss *SwipeService) reciprocalLike(ctx context.Context, userID, targetUserID string) (bool, error) {
	item, err := ss.Dynamo.GetItem(ctx, models.SwipesTable, map[string]types.AttributeValue{
		"userId":       &types.AttributeValueMemberS{Value: targetUserID},
		"targetUserId": &types.AttributeValueMemberS{Value: userID},
	})
	if err != nil {
		return false, err
	}
	if item == nil {
		return false, nil
	}

	var swipe models.Swipe
	if err := attributevalue.UnmarshalMap(item, &swipe); err != nil {
		return false, fmt.Errorf("failed to unmarshal swipe: %w", err)
	}
	return swipe.IsLike, nil
}

// createMatch writes the match conditionally on the canonical pair key, so
// concurrent double-reciprocity detection yields exactly one match row. The
// losing writer still reports a match; only the winner creates the
// conversation and sends the notification.
func (ss *SwipeService) createMatch(ctx context.Context, userID, targetUserID string) error {
	user1, user2 := userID, targetUserID
	if user2 < user1 {
		user1, user2 = user2, user1
	}

	match := models.Match{
		PairID:    models.PairID(userID, targetUserID),
		MatchID:   uuid.NewString(),
		User1ID:   user1,
		User2ID:   user2,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}

	err := ss.Dynamo.PutItemIfAbsent(ctx, models.MatchesTable, match, "pairId")
	if errors.Is(err, ErrConditionFailed) {
		log.Printf("Match for pair %s already exists, skipping create\n", match.PairID)
		return nil
	}
	if err != nil {
		return err
	}

	conversation := models.Conversation{
		ConversationID: uuid.NewString(),
		MatchID:        match.MatchID,
		Participants:   []string{userID, targetUserID},
		CreatedAt:      time.Now().UTC(),
	}
	if err := ss.Dynamo.PutItem(ctx, models.ConversationsTable, conversation); err != nil {
		// The swipe and match are already committed; surface the failure
		// without rolling them back.
		return fmt.Errorf("match %s created but conversation failed: %w", match.MatchID, err)
	}

	if ss.Notifier != nil {
		ss.Notifier.NotifyMatch(match.MatchID, []string{userID, targetUserID})
	}
	return nil
}

// GetMatches lists the user's active matches, newest first, each enriched
// with the other participant's profile. The two direction queries are
// read-only and independent, so they run concurrently.
func (ss *SwipeService) GetMatches(ctx context.Context, userID string) ([]models.MatchWithProfile, error) {
	if userID == "" {
		return nil, apperrors.Unauthenticated("User must be authenticated")
	}

	var asUser1, asUser2 []models.Match
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		asUser1, err = ss.matchesByIndex(gctx, models.MatchUser1Index, "user1Id = :userId", userID)
		return err
	})
	g.Go(func() error {
		var err error
		asUser2, err = ss.matchesByIndex(gctx, models.MatchUser2Index, "user2Id = :userId", userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, apperrors.Internal("failed to load matches", err)
	}

	matches := append(asUser1, asUser2...)
	if len(matches) == 0 {
		return []models.MatchWithProfile{}, nil
	}

	otherIDs := make([]string, 0, len(matches))
	for _, match := range matches {
		otherIDs = append(otherIDs, otherUserID(match, userID))
	}

	profiles, err := ss.Users.GetUsersByIDs(ctx, otherIDs)
	if err != nil {
		return nil, apperrors.Internal("failed to load matched profiles", err)
	}
	profilesByID := make(map[string]models.UserProfile, len(profiles))
	for _, profile := range profiles {
		profilesByID[profile.UserID] = profile
	}

	result := make([]models.MatchWithProfile, 0, len(matches))
	for _, match := range matches {
		otherID := otherUserID(match, userID)
		profile, ok := profilesByID[otherID]
		if !ok {
			// Matched user's profile is gone; skip rather than fail the list.
			continue
		}
		result = append(result, models.MatchWithProfile{
			MatchID:   match.MatchID,
			OtherUser: profile,
			CreatedAt: match.CreatedAt,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (ss *SwipeService) matchesByIndex(ctx context.Context, indexName, keyCondition, userID string) ([]models.Match, error) {
	items, err := ss.Dynamo.QueryItemsWithIndex(ctx, models.MatchesTable, indexName, keyCondition,
		map[string]types.AttributeValue{
			":userId":   &types.AttributeValueMemberS{Value: userID},
			":isActive": &types.AttributeValueMemberBOOL{Value: true},
		}, "isActive = :isActive")
	if err != nil {
		return nil, err
	}

	var matches []models.Match
	if err := attributevalue.UnmarshalListOfMaps(items, &matches); err != nil {
		return nil, fmt.Errorf("failed to unmarshal matches: %w", err)
	}
	return matches, nil
}

func otherUserID(match models.Match, userID string) string {
	if match.User1ID == userID {
		return match.User2ID
	}
	return match.User1ID
}
