package adapter

import (
	"context"
	"errors"
	"time"

	events "github.com/coderanik/Alumni-Connect/internal/pkg/events/application/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgEventRepository struct {
	pool *pgxpool.Pool
}

func NewPgEventRepository(pool *pgxpool.Pool) *PgEventRepository {
	return &PgEventRepository{pool: pool}
}

func (r *PgEventRepository) SaveEvent(ctx context.Context, e events.Event) (string, error) {
	if r == nil || r.pool == nil {
		return "", errors.New("PgEventRepository: nil pool")
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO events (id, title, description, location, starts_at, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, e.ID, e.Title, e.Description, e.Location, e.StartsAt, e.CreatedBy, e.CreatedAt)
	if err != nil {
		return "", err
	}
	return e.ID, nil
}

func (r *PgEventRepository) FindByID(ctx context.Context, id string) (*events.Event, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgEventRepository: nil pool")
	}
	var e events.Event
	err := r.pool.QueryRow(ctx, `
		SELECT id, title, description, location, starts_at, created_by, created_at
		FROM events
		WHERE id = $1
	`, id).Scan(&e.ID, &e.Title, &e.Description, &e.Location, &e.StartsAt, &e.CreatedBy, &e.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *PgEventRepository) ListUpcoming(ctx context.Context, after time.Time) ([]events.Event, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgEventRepository: nil pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, title, description, location, starts_at, created_by, created_at
		FROM events
		WHERE starts_at >= $1
		ORDER BY starts_at ASC
	`, after)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []events.Event
	for rows.Next() {
		var e events.Event
		if err := rows.Scan(&e.ID, &e.Title, &e.Description, &e.Location, &e.StartsAt, &e.CreatedBy, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return out, nil
}
