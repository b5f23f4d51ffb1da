package models

import "time"

// Conversation is created alongside a match, one-to-one, with no messages.
type Conversation struct {
	ConversationID  string     `dynamodbav:"conversationId" json:"conversation_id"` // Partition Key
	MatchID         string     `dynamodbav:"matchId" json:"match_id"`
	Participants    []string   `dynamodbav:"participants" json:"participants"`
	CreatedAt       time.Time  `dynamodbav:"createdAt" json:"created_at"`
	LastMessage     *string    `dynamodbav:"lastMessage" json:"last_message"`
	LastMessageTime *time.Time `dynamodbav:"lastMessageTime" json:"last_message_time"`
}

// ConversationsTable is the DynamoDB table name for conversations
const ConversationsTable = "Conversations"
