package delivery

import (
	"encoding/json"

	messaging "github.com/coderanik/Alumni-Connect/internal/pkg/messaging/application/domain"
)

// Notifier resolves a user's live connection and pushes a payload to it.
// It reports false when the user is offline or the push failed; both are
// normal outcomes for the dispatcher.
type Notifier interface {
	NotifyUser(userID string, payload []byte) bool
}

// Dispatcher fans a persisted message out to whichever of the two parties
// currently holds a live connection. Delivery is best-effort: no retry, no
// queue, and a miss never affects the send that triggered it.
type Dispatcher struct {
	notifier Notifier
}

func NewDispatcher(n Notifier) *Dispatcher {
	return &Dispatcher{notifier: n}
}

type receiveMessageEvent struct {
	Type    string            `json:"type"`
	Message messaging.Message `json:"message"`
}

// Deliver pushes a receiveMessage event to the receiver's and the sender's
// connections, each resolved independently. Echoing to the sender lets any
// other active session of the sender render the message without relying on
// the HTTP response body.
func (d *Dispatcher) Deliver(msg messaging.Message) {
	if d == nil || d.notifier == nil {
		return
	}
	payload, err := json.Marshal(receiveMessageEvent{Type: "receiveMessage", Message: msg})
	if err != nil {
		return
	}
	d.notifier.NotifyUser(msg.ReceiverID, payload)
	if msg.SenderID != msg.ReceiverID {
		d.notifier.NotifyUser(msg.SenderID, payload)
	}
}
