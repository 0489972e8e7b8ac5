package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/channelchat/channelchat-go/internal/model"
	"github.com/channelchat/channelchat-go/internal/repository"
)

type SessionService struct {
	sessions *repository.SessionRepo
	messages *repository.MessageRepo
	datasets *DatasetStore
}

func NewSessionService(sessions *repository.SessionRepo, messages *repository.MessageRepo, datasets *DatasetStore) *SessionService {
	return &SessionService{sessions: sessions, messages: messages, datasets: datasets}
}

// Create starts a new session for a user.
func (s *SessionService) Create(ctx context.Context, username string, agent, title *string) (*model.Session, error) {
	session := &model.Session{
		ID:        uuid.NewString(),
		Username:  username,
		Agent:     agent,
		Title:     title,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// List returns a user's sessions, newest first.
func (s *SessionService) List(ctx context.Context, username string) ([]model.SessionSummary, error) {
	return s.sessions.ListByUsername(ctx, username)
}

// Rename updates a session's title.
func (s *SessionService) Rename(ctx context.Context, sessionID, title string) error {
	return s.sessions.Rename(ctx, sessionID, title)
}

// Delete removes a session, its messages and any dataset loaded for it.
func (s *SessionService) Delete(ctx context.Context, sessionID string) error {
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return err
	}
	s.datasets.Drop(ctx, sessionID)
	return nil
}

// AppendMessage records one message in a session's log.
func (s *SessionService) AppendMessage(ctx context.Context, sessionID string, m *model.Message) (*model.Message, error) {
	if _, err := s.sessions.FindByID(ctx, sessionID); err != nil {
		return nil, err
	}

	m.ID = uuid.NewString()
	m.SessionID = sessionID
	if m.Timestamp.IsZero() {
		m.Timestamp = time.Now().UTC()
	}
	if err := s.messages.Append(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// Messages returns a session's messages in insertion order.
func (s *SessionService) Messages(ctx context.Context, sessionID string) ([]model.Message, error) {
	if _, err := s.sessions.FindByID(ctx, sessionID); err != nil {
		return nil, err
	}
	return s.messages.ListBySession(ctx, sessionID)
}
