package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/channelchat/channelchat-go/internal/model"
)

type MessageRepo struct {
	pool *pgxpool.Pool
}

func NewMessageRepo(pool *pgxpool.Pool) *MessageRepo {
	return &MessageRepo{pool: pool}
}

// Append adds one message to a session's log.
func (r *MessageRepo) Append(ctx context.Context, m *model.Message) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO messages (id, session_id, role, content, timestamp, images, charts, tool_calls)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		m.ID, m.SessionID, m.Role, m.Content, m.Timestamp, m.Images, m.Charts, m.ToolCalls,
	)
	return err
}

// ListBySession returns a session's messages in insertion order.
func (r *MessageRepo) ListBySession(ctx context.Context, sessionID string) ([]model.Message, error) {
	query := `
		SELECT id, session_id, role, content, timestamp, images, charts, tool_calls
		FROM messages
		WHERE session_id = $1
		ORDER BY timestamp ASC, id ASC`

	rows, err := r.pool.Query(ctx, query, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []model.Message{}
	for rows.Next() {
		var m model.Message
		if err := rows.Scan(&m.ID, &m.SessionID, &m.Role, &m.Content, &m.Timestamp,
			&m.Images, &m.Charts, &m.ToolCalls); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}
