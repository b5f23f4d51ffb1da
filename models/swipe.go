package models

import "time"

// Swipe records a single like/pass decision. The table is keyed on
// (userId, targetUserId), so re-swiping the same target overwrites the
// previous row instead of appending a duplicate.
type Swipe struct {
	UserID       string    `dynamodbav:"userId" json:"user_id"`             // Partition Key
	TargetUserID string    `dynamodbav:"targetUserId" json:"target_user_id"` // Sort Key
	IsLike       bool      `dynamodbav:"isLike" json:"is_like"`
	CreatedAt    time.Time `dynamodbav:"createdAt" json:"created_at"`
}

// SwipesTable is the DynamoDB table name for swipes
const SwipesTable = "Swipes"
