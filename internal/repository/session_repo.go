package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/channelchat/channelchat-go/internal/model"
)

type SessionRepo struct {
	pool *pgxpool.Pool
}

func NewSessionRepo(pool *pgxpool.Pool) *SessionRepo {
	return &SessionRepo{pool: pool}
}

// Create inserts a new session.
func (r *SessionRepo) Create(ctx context.Context, s *model.Session) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO sessions (id, username, agent, title, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		s.ID, s.Username, s.Agent, s.Title, s.CreatedAt,
	)
	return err
}

// FindByID returns a single session by its ID.
func (r *SessionRepo) FindByID(ctx context.Context, id string) (*model.Session, error) {
	query := `
		SELECT id, username, agent, title, created_at
		FROM sessions
		WHERE id = $1`

	var s model.Session
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Username, &s.Agent, &s.Title, &s.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// ListByUsername returns a user's sessions, newest first, with message counts.
func (r *SessionRepo) ListByUsername(ctx context.Context, username string) ([]model.SessionSummary, error) {
	query := `
		SELECT s.id, s.agent, s.title, s.created_at, COUNT(m.id) AS message_count
		FROM sessions s
		LEFT JOIN messages m ON m.session_id = s.id
		WHERE s.username = $1
		GROUP BY s.id
		ORDER BY s.created_at DESC`

	rows, err := r.pool.Query(ctx, query, username)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := []model.SessionSummary{}
	for rows.Next() {
		var s model.SessionSummary
		if err := rows.Scan(&s.ID, &s.Agent, &s.Title, &s.CreatedAt, &s.MessageCount); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

// Rename updates a session's title.
func (r *SessionRepo) Rename(ctx context.Context, id, title string) error {
	tag, err := r.pool.Exec(ctx, `UPDATE sessions SET title = $1 WHERE id = $2`, title, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a session and its messages.
func (r *SessionRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the total number of sessions.
func (r *SessionRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM sessions`).Scan(&count)
	return count, err
}
