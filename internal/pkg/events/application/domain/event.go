package events

import (
	"errors"
	"time"
)

// Event is a community event posting: a meetup, talk, or reunion.
type Event struct {
	ID          string    `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	Location    string    `db:"location" json:"location"`
	StartsAt    time.Time `db:"starts_at" json:"startsAt"`
	CreatedBy   string    `db:"created_by" json:"createdBy"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

var (
	ErrMissingTitle = errors.New("events: title is required")
	ErrMissingStart = errors.New("events: start time is required")
)

// NewEvent validates the posting and stamps the creation time.
func NewEvent(title, description, location, createdBy string, startsAt time.Time) (*Event, error) {
	if title == "" {
		return nil, ErrMissingTitle
	}
	if startsAt.IsZero() {
		return nil, ErrMissingStart
	}
	return &Event{
		Title:       title,
		Description: description,
		Location:    location,
		StartsAt:    startsAt.UTC(),
		CreatedBy:   createdBy,
		CreatedAt:   time.Now().UTC(),
	}, nil
}
