package messaging

import (
	"errors"
	"time"
)

// Message is an immutable log entry between two users. The body is accepted
// as-is, empty included; there is no server-side content validation.
type Message struct {
	ID             string    `db:"id" json:"id"`
	ConversationID string    `db:"conversation_id" json:"-"`
	SenderID       string    `db:"sender_id" json:"senderId"`
	ReceiverID     string    `db:"receiver_id" json:"receiverId"`
	Body           string    `db:"body" json:"message"`
	CreatedAt      time.Time `db:"created_at" json:"createdAt"`
}

var ErrMissingSender = errors.New("messaging: sender id is required")
var ErrMissingReceiver = errors.New("messaging: receiver id is required")

// NewMessage validates identifiers and stamps the creation time.
func NewMessage(conversationID, senderID, receiverID, body string) (*Message, error) {
	if senderID == "" {
		return nil, ErrMissingSender
	}
	if receiverID == "" {
		return nil, ErrMissingReceiver
	}
	if conversationID == "" {
		return nil, ErrMissingParticipant
	}
	return &Message{
		ConversationID: conversationID,
		SenderID:       senderID,
		ReceiverID:     receiverID,
		Body:           body,
		CreatedAt:      time.Now().UTC(),
	}, nil
}
