package model

import "time"

// User represents a chat user account. PasswordHash is never serialized.
type User struct {
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Email        *string   `json:"email,omitempty"`
	FirstName    *string   `json:"firstName,omitempty"`
	LastName     *string   `json:"lastName,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// LoginResponse is the API response for a successful login.
type LoginResponse struct {
	OK        bool    `json:"ok"`
	Username  string  `json:"username"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
}

// StatusResponse is the API response for the backend status endpoint.
type StatusResponse struct {
	UsersCount    int `json:"usersCount"`
	SessionsCount int `json:"sessionsCount"`
}
