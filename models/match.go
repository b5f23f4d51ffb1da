package models

import (
	"strings"
	"time"
)

// Match links two users who liked each other. The table is keyed on the
// canonical pair id, so the pair (A,B) and (B,A) map to the same row.
type Match struct {
	PairID    string    `dynamodbav:"pairId" json:"-"` // Partition Key
	MatchID   string    `dynamodbav:"matchId" json:"match_id"`
	User1ID   string    `dynamodbav:"user1Id" json:"user1_id"` // Used in GSI
	User2ID   string    `dynamodbav:"user2Id" json:"user2_id"` // Used in GSI
	IsActive  bool      `dynamodbav:"isActive" json:"is_active"`
	CreatedAt time.Time `dynamodbav:"createdAt" json:"created_at"`
}

// MatchesTable is the DynamoDB table name for matches
const MatchesTable = "Matches"

// GSI names used to list a user's matches from either side of the pair
const (
	MatchUser1Index = "user1Id-index"
	MatchUser2Index = "user2Id-index"
)

// PairID returns the canonical key for an unordered user pair.
func PairID(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return strings.Join([]string{a, b}, "#")
}
