package messaging

import (
	"errors"
	"time"
)

// Conversation represents the single thread between two users. The pair is
// unordered for lookup purposes, so participants are stored sorted; the
// (ParticipantLow, ParticipantHigh) pair is unique in the store.
type Conversation struct {
	ID              string    `db:"id"`
	ParticipantLow  string    `db:"participant_low"`
	ParticipantHigh string    `db:"participant_high"`
	CreatedAt       time.Time `db:"created_at"`
}

// ErrMissingParticipant signals a conversation lookup or create without both user ids.
var ErrMissingParticipant = errors.New("messaging: both participant ids are required")

// PairKey normalizes an unordered participant pair into its sorted storage key,
// so (A,B) and (B,A) resolve to the same conversation.
func PairKey(userA, userB string) (low, high string) {
	if userA > userB {
		return userB, userA
	}
	return userA, userB
}

// NewConversation builds an unpersisted conversation for the given pair.
func NewConversation(userA, userB string) (*Conversation, error) {
	if userA == "" || userB == "" {
		return nil, ErrMissingParticipant
	}
	low, high := PairKey(userA, userB)
	return &Conversation{
		ParticipantLow:  low,
		ParticipantHigh: high,
		CreatedAt:       time.Now().UTC(),
	}, nil
}

// Includes tells whether userID is one of the two participants.
func (c *Conversation) Includes(userID string) bool {
	return c != nil && (c.ParticipantLow == userID || c.ParticipantHigh == userID)
}
