package delivery

import (
	"encoding/json"
	"testing"
	"time"

	messaging "github.com/coderanik/Alumni-Connect/internal/pkg/messaging/application/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNotifier struct {
	online   map[string]bool
	payloads map[string][][]byte
}

func newFakeNotifier(online ...string) *fakeNotifier {
	n := &fakeNotifier{online: map[string]bool{}, payloads: map[string][][]byte{}}
	for _, id := range online {
		n.online[id] = true
	}
	return n
}

func (n *fakeNotifier) NotifyUser(userID string, payload []byte) bool {
	if !n.online[userID] {
		return false
	}
	n.payloads[userID] = append(n.payloads[userID], payload)
	return true
}

func testMessage() messaging.Message {
	return messaging.Message{
		ID:             "msg-1",
		ConversationID: "conv-1",
		SenderID:       "alice",
		ReceiverID:     "bob",
		Body:           "hi",
		CreatedAt:      time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestDeliverPushesToBothConnectedParties(t *testing.T) {
	notifier := newFakeNotifier("alice", "bob")
	d := NewDispatcher(notifier)

	d.Deliver(testMessage())

	require.Len(t, notifier.payloads["alice"], 1)
	require.Len(t, notifier.payloads["bob"], 1)

	var event receiveMessageEvent
	require.NoError(t, json.Unmarshal(notifier.payloads["bob"][0], &event))
	assert.Equal(t, "receiveMessage", event.Type)
	assert.Equal(t, "msg-1", event.Message.ID)
	assert.Equal(t, "alice", event.Message.SenderID)
	assert.Equal(t, "bob", event.Message.ReceiverID)
	assert.Equal(t, "hi", event.Message.Body)
}

func TestDeliverToleratesOfflineReceiver(t *testing.T) {
	notifier := newFakeNotifier("alice")
	d := NewDispatcher(notifier)

	d.Deliver(testMessage())

	assert.Empty(t, notifier.payloads["bob"])
	assert.Len(t, notifier.payloads["alice"], 1)
}

func TestDeliverToleratesBothOffline(t *testing.T) {
	notifier := newFakeNotifier()
	d := NewDispatcher(notifier)

	d.Deliver(testMessage())

	assert.Empty(t, notifier.payloads)
}

func TestDeliverSelfMessagePushesOnce(t *testing.T) {
	notifier := newFakeNotifier("alice")
	d := NewDispatcher(notifier)

	msg := testMessage()
	msg.ReceiverID = "alice"
	d.Deliver(msg)

	assert.Len(t, notifier.payloads["alice"], 1)
}

func TestDeliverWithoutNotifierIsNoop(t *testing.T) {
	d := NewDispatcher(nil)
	d.Deliver(testMessage())
}
