package usecase

import (
	"context"
	"fmt"
	"time"

	events "github.com/coderanik/Alumni-Connect/internal/pkg/events/application/domain"
	repository "github.com/coderanik/Alumni-Connect/internal/pkg/events/persistence/repository/port"
)

// ListEventsUseCase returns upcoming events, soonest first.
type ListEventsUseCase struct {
	Repo repository.EventRepository
}

func NewListEventsUseCase(repo repository.EventRepository) *ListEventsUseCase {
	return &ListEventsUseCase{Repo: repo}
}

func (uc *ListEventsUseCase) Execute(ctx context.Context) ([]events.Event, error) {
	out, err := uc.Repo.ListUpcoming(ctx, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if out == nil {
		out = []events.Event{}
	}
	return out, nil
}
