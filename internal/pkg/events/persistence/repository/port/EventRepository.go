package repository

import (
	"context"
	"time"

	events "github.com/coderanik/Alumni-Connect/internal/pkg/events/application/domain"
)

// EventRepository defines persistence operations for event postings.
type EventRepository interface {
	// SaveEvent persists a new event and returns its id.
	SaveEvent(ctx context.Context, e events.Event) (string, error)

	// FindByID returns (nil, nil) when no event exists with the id.
	FindByID(ctx context.Context, id string) (*events.Event, error)

	// ListUpcoming returns events starting at or after the given instant,
	// soonest first.
	ListUpcoming(ctx context.Context, after time.Time) ([]events.Event, error)
}
