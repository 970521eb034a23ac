package repository

import (
	"context"

	messaging "github.com/coderanik/Alumni-Connect/internal/pkg/messaging/application/domain"
)

// MessageRepository defines persistence operations for the messaging domain.
// Conversation lookups take the raw pair; adapters normalize the pair key.
type MessageRepository interface {
	// FindOrCreateConversation returns the single conversation for the pair,
	// creating it when absent. Concurrent first-messages must converge on one
	// row (unique pair key plus create-or-fetch-on-conflict).
	FindOrCreateConversation(ctx context.Context, userA, userB string) (*messaging.Conversation, error)

	// FindConversation returns (nil, nil) when no conversation exists for the pair.
	FindConversation(ctx context.Context, userA, userB string) (*messaging.Conversation, error)

	// SaveMessage persists an immutable message and returns its id.
	SaveMessage(ctx context.Context, m messaging.Message) (string, error)

	// GetMessagesByConversation returns the full history in insertion order, oldest first.
	GetMessagesByConversation(ctx context.Context, conversationID string) ([]messaging.Message, error)
}
