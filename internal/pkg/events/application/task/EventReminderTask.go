package task

import (
	"context"
	"encoding/json"
	"log"
	"time"

	qport "github.com/coderanik/Alumni-Connect/internal/infrastructure/queue/port"
	repoAdapter "github.com/coderanik/Alumni-Connect/internal/pkg/events/persistence/repository/adapter"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EventReminderTaskType is the queue task name for event reminders.
const EventReminderTaskType = "events:reminder"

// ReminderLeadTime is how long before an event its reminder fires.
const ReminderLeadTime = time.Hour

// EventReminderTaskPayload is the JSON payload transported via the queue.
// Kept decoupled from domain types to avoid tight coupling with JSON tags.
type EventReminderTaskPayload struct {
	EventID string `json:"eventId"`
}

// ReminderAt computes when the reminder for an event should fire. The second
// return value is false when the event has already started and no reminder
// should be scheduled; an event inside the lead window gets an immediate
// reminder.
func ReminderAt(startsAt, now time.Time) (time.Time, bool) {
	if !startsAt.After(now) {
		return time.Time{}, false
	}
	at := startsAt.Add(-ReminderLeadTime)
	if at.Before(now) {
		return now, true
	}
	return at, true
}

// RegisterEventReminderTask binds the reminder handler to the provided server.
// The handler re-reads the event so a posting deleted or changed after
// scheduling is reflected at fire time.
func RegisterEventReminderTask(srv qport.Server, pool *pgxpool.Pool) {
	repo := repoAdapter.NewPgEventRepository(pool)
	srv.Register(EventReminderTaskType, func(ctx context.Context, t qport.Task) error {
		var p EventReminderTaskPayload
		if err := json.Unmarshal(t.Payload, &p); err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		event, err := repo.FindByID(ctx, p.EventID)
		if err != nil {
			return err
		}
		if event == nil {
			// Posting is gone; nothing to remind about.
			return nil
		}

		log.Printf("event reminder: %q starts at %s (%s)", event.Title, event.StartsAt.Format(time.RFC3339), event.Location)
		return nil
	})
}
