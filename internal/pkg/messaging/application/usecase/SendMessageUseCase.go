package usecase

import (
	"context"
	"fmt"

	messaging "github.com/coderanik/Alumni-Connect/internal/pkg/messaging/application/domain"
	repository "github.com/coderanik/Alumni-Connect/internal/pkg/messaging/persistence/repository/port"
)

// SendMessageInput carries the data needed to send one direct message.
// SenderID comes from the caller's verified identity, never the request body.
type SendMessageInput struct {
	SenderID   string
	ReceiverID string
	Body       string
}

// Deliverer pushes a persisted message to any live connections. Implementations
// must be fire-and-forget; a miss or push failure never fails the send.
type Deliverer interface {
	Deliver(msg messaging.Message)
}

// SendMessageUseCase orchestrates one send: find-or-create the conversation,
// persist the message, then hand it to the dispatcher.
type SendMessageUseCase struct {
	Repo       repository.MessageRepository
	Dispatcher Deliverer
}

func NewSendMessageUseCase(repo repository.MessageRepository, dispatcher Deliverer) *SendMessageUseCase {
	return &SendMessageUseCase{Repo: repo, Dispatcher: dispatcher}
}

// Execute persists and delivers a new message. The body is accepted as-is,
// empty included. Delivery is attempted only after a successful persist.
func (uc *SendMessageUseCase) Execute(ctx context.Context, in SendMessageInput) (*messaging.Message, error) {
	if in.SenderID == "" {
		return nil, ErrUnauthenticated
	}
	if in.ReceiverID == "" {
		return nil, messaging.ErrMissingReceiver
	}

	conv, err := uc.Repo.FindOrCreateConversation(ctx, in.SenderID, in.ReceiverID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	msg, err := messaging.NewMessage(conv.ID, in.SenderID, in.ReceiverID, in.Body)
	if err != nil {
		return nil, err
	}

	id, err := uc.Repo.SaveMessage(ctx, *msg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	msg.ID = id

	if uc.Dispatcher != nil {
		uc.Dispatcher.Deliver(*msg)
	}
	return msg, nil
}
