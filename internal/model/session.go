package model

import (
	"encoding/json"
	"time"
)

// Session is one chat conversation owned by a user.
type Session struct {
	ID        string    `json:"id"`
	Username  string    `json:"-"`
	Agent     *string   `json:"agent"`
	Title     *string   `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
}

// SessionSummary is the API response for session listings.
type SessionSummary struct {
	ID           string    `json:"id"`
	Agent        *string   `json:"agent"`
	Title        *string   `json:"title"`
	CreatedAt    time.Time `json:"createdAt"`
	MessageCount int       `json:"messageCount"`
}

// Message is one entry in a session's append-only message log.
// Images, Charts and ToolCalls are opaque to the backend; they are stored
// and returned verbatim for the frontend to render.
type Message struct {
	ID        string          `json:"id"`
	SessionID string          `json:"-"`
	Role      string          `json:"role"`
	Content   string          `json:"content"`
	Timestamp time.Time       `json:"timestamp"`
	Images    json.RawMessage `json:"images,omitempty"`
	Charts    json.RawMessage `json:"charts,omitempty"`
	ToolCalls json.RawMessage `json:"toolCalls,omitempty"`
}
