package messaging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPairKeyIsOrderIndependent(t *testing.T) {
	lowAB, highAB := PairKey("alice", "bob")
	lowBA, highBA := PairKey("bob", "alice")

	assert.Equal(t, lowAB, lowBA)
	assert.Equal(t, highAB, highBA)
	assert.Equal(t, "alice", lowAB)
	assert.Equal(t, "bob", highAB)
}

func TestNewConversationNormalizesParticipants(t *testing.T) {
	conv, err := NewConversation("zoe", "adam")
	require.NoError(t, err)

	assert.Equal(t, "adam", conv.ParticipantLow)
	assert.Equal(t, "zoe", conv.ParticipantHigh)
	assert.False(t, conv.CreatedAt.IsZero())
	assert.True(t, conv.Includes("zoe"))
	assert.True(t, conv.Includes("adam"))
	assert.False(t, conv.Includes("eve"))
}

func TestNewConversationRequiresBothParticipants(t *testing.T) {
	_, err := NewConversation("", "bob")
	assert.ErrorIs(t, err, ErrMissingParticipant)

	_, err = NewConversation("alice", "")
	assert.ErrorIs(t, err, ErrMissingParticipant)
}

func TestNewMessageAcceptsEmptyBody(t *testing.T) {
	msg, err := NewMessage("conv-1", "alice", "bob", "")
	require.NoError(t, err)
	assert.Empty(t, msg.Body)
	assert.False(t, msg.CreatedAt.IsZero())
}

func TestNewMessageValidatesIdentifiers(t *testing.T) {
	_, err := NewMessage("conv-1", "", "bob", "hi")
	assert.ErrorIs(t, err, ErrMissingSender)

	_, err = NewMessage("conv-1", "alice", "", "hi")
	assert.ErrorIs(t, err, ErrMissingReceiver)

	_, err = NewMessage("", "alice", "bob", "hi")
	assert.ErrorIs(t, err, ErrMissingParticipant)
}
