package adapter

import (
	"context"
	"errors"

	messaging "github.com/coderanik/Alumni-Connect/internal/pkg/messaging/application/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgMessageRepository struct {
	pool *pgxpool.Pool
}

func NewPgMessageRepository(pool *pgxpool.Pool) *PgMessageRepository {
	return &PgMessageRepository{pool: pool}
}

func (r *PgMessageRepository) FindOrCreateConversation(ctx context.Context, userA, userB string) (*messaging.Conversation, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgMessageRepository: nil pool")
	}

	conv, err := r.FindConversation(ctx, userA, userB)
	if err != nil {
		return nil, err
	}
	if conv != nil {
		return conv, nil
	}

	fresh, err := messaging.NewConversation(userA, userB)
	if err != nil {
		return nil, err
	}
	fresh.ID = uuid.NewString()

	// The unique (participant_low, participant_high) constraint makes the
	// create race converge: the loser's insert is a no-op and the re-select
	// picks up the winner's row.
	err = r.pool.QueryRow(ctx, `
		INSERT INTO conversations (id, participant_low, participant_high, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (participant_low, participant_high) DO NOTHING
		RETURNING id, participant_low, participant_high, created_at
	`, fresh.ID, fresh.ParticipantLow, fresh.ParticipantHigh, fresh.CreatedAt).
		Scan(&fresh.ID, &fresh.ParticipantLow, &fresh.ParticipantHigh, &fresh.CreatedAt)
	if err == nil {
		return fresh, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	conv, err = r.FindConversation(ctx, userA, userB)
	if err != nil {
		return nil, err
	}
	if conv == nil {
		return nil, errors.New("PgMessageRepository: conversation vanished after conflict")
	}
	return conv, nil
}

func (r *PgMessageRepository) FindConversation(ctx context.Context, userA, userB string) (*messaging.Conversation, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgMessageRepository: nil pool")
	}
	low, high := messaging.PairKey(userA, userB)

	var conv messaging.Conversation
	err := r.pool.QueryRow(ctx, `
		SELECT id, participant_low, participant_high, created_at
		FROM conversations
		WHERE participant_low = $1 AND participant_high = $2
	`, low, high).Scan(&conv.ID, &conv.ParticipantLow, &conv.ParticipantHigh, &conv.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &conv, nil
}

func (r *PgMessageRepository) SaveMessage(ctx context.Context, m messaging.Message) (string, error) {
	if r == nil || r.pool == nil {
		return "", errors.New("PgMessageRepository: nil pool")
	}
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO messages (id, conversation_id, sender_id, receiver_id, body, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, m.ID, m.ConversationID, m.SenderID, m.ReceiverID, m.Body, m.CreatedAt)
	if err != nil {
		return "", err
	}
	return m.ID, nil
}

func (r *PgMessageRepository) GetMessagesByConversation(ctx context.Context, conversationID string) ([]messaging.Message, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgMessageRepository: nil pool")
	}
	// seq is a bigserial assigned at insert; ordering by it preserves exact
	// send order even when timestamps collide.
	rows, err := r.pool.Query(ctx, `
		SELECT id, conversation_id, sender_id, receiver_id, body, created_at
		FROM messages
		WHERE conversation_id = $1
		ORDER BY seq ASC
	`, conversationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var msgs []messaging.Message
	for rows.Next() {
		var msg messaging.Message
		if err := rows.Scan(&msg.ID, &msg.ConversationID, &msg.SenderID, &msg.ReceiverID, &msg.Body, &msg.CreatedAt); err != nil {
			return nil, err
		}
		msgs = append(msgs, msg)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return msgs, nil
}
