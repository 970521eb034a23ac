package usecase

import (
	"context"
	"fmt"

	messaging "github.com/coderanik/Alumni-Connect/internal/pkg/messaging/application/domain"
	repository "github.com/coderanik/Alumni-Connect/internal/pkg/messaging/persistence/repository/port"
)

// GetMessagesInput identifies the unordered pair whose history is requested.
type GetMessagesInput struct {
	UserID      string
	OtherUserID string
}

// GetMessagesUseCase returns the full message history between two users.
type GetMessagesUseCase struct {
	Repo repository.MessageRepository
}

func NewGetMessagesUseCase(repo repository.MessageRepository) *GetMessagesUseCase {
	return &GetMessagesUseCase{Repo: repo}
}

// Execute returns the ordered history, oldest first. A pair with no
// conversation yields an empty slice, not an error.
func (uc *GetMessagesUseCase) Execute(ctx context.Context, in GetMessagesInput) ([]messaging.Message, error) {
	if in.UserID == "" {
		return nil, ErrUnauthenticated
	}
	if in.OtherUserID == "" {
		return nil, messaging.ErrMissingReceiver
	}

	conv, err := uc.Repo.FindConversation(ctx, in.UserID, in.OtherUserID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if conv == nil {
		return []messaging.Message{}, nil
	}

	msgs, err := uc.Repo.GetMessagesByConversation(ctx, conv.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if msgs == nil {
		msgs = []messaging.Message{}
	}
	return msgs, nil
}
