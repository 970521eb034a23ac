package usecase

import (
	"context"
	"fmt"

	events "github.com/coderanik/Alumni-Connect/internal/pkg/events/application/domain"
	repository "github.com/coderanik/Alumni-Connect/internal/pkg/events/persistence/repository/port"
)

// GetEventUseCase fetches a single event posting.
type GetEventUseCase struct {
	Repo repository.EventRepository
}

func NewGetEventUseCase(repo repository.EventRepository) *GetEventUseCase {
	return &GetEventUseCase{Repo: repo}
}

func (uc *GetEventUseCase) Execute(ctx context.Context, id string) (*events.Event, error) {
	if id == "" {
		return nil, fmt.Errorf("event id is required")
	}
	event, err := uc.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if event == nil {
		return nil, ErrNotFound
	}
	return event, nil
}
