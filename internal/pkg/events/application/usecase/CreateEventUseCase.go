package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	qport "github.com/coderanik/Alumni-Connect/internal/infrastructure/queue/port"
	events "github.com/coderanik/Alumni-Connect/internal/pkg/events/application/domain"
	"github.com/coderanik/Alumni-Connect/internal/pkg/events/application/task"
	repository "github.com/coderanik/Alumni-Connect/internal/pkg/events/persistence/repository/port"
)

// CreateEventInput carries a new event posting.
type CreateEventInput struct {
	Title       string
	Description string
	Location    string
	StartsAt    time.Time
	CreatedBy   string
}

// CreateEventUseCase persists an event and schedules its reminder task.
// Scheduling is best-effort: a queue outage never fails the posting.
type CreateEventUseCase struct {
	Repo  repository.EventRepository
	Queue qport.Client
}

func NewCreateEventUseCase(repo repository.EventRepository, queue qport.Client) *CreateEventUseCase {
	return &CreateEventUseCase{Repo: repo, Queue: queue}
}

func (uc *CreateEventUseCase) Execute(ctx context.Context, in CreateEventInput) (*events.Event, error) {
	event, err := events.NewEvent(in.Title, in.Description, in.Location, in.CreatedBy, in.StartsAt)
	if err != nil {
		return nil, err
	}

	id, err := uc.Repo.SaveEvent(ctx, *event)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	event.ID = id

	uc.scheduleReminder(ctx, event)
	return event, nil
}

func (uc *CreateEventUseCase) scheduleReminder(ctx context.Context, event *events.Event) {
	if uc.Queue == nil {
		return
	}
	at, ok := task.ReminderAt(event.StartsAt, time.Now().UTC())
	if !ok {
		return
	}
	payload, err := json.Marshal(task.EventReminderTaskPayload{EventID: event.ID})
	if err != nil {
		return
	}
	_, err = uc.Queue.Enqueue(ctx, qport.Task{Type: task.EventReminderTaskType, Payload: payload},
		qport.EnqueueOption{Queue: "events", ProcessAt: at, MaxRetry: 3})
	if err != nil {
		log.Printf("events: failed to schedule reminder for %s: %v", event.ID, err)
	}
}
