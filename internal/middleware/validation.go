package middleware

import (
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/channelchat/channelchat-go/internal/youtube"
)

// Field length limits matching database schema constraints.
const (
	MaxUsernameLen = 64  // users.username VARCHAR(64)
	MaxHandleLen   = 64  // channel handles are short slugs
	MaxTitleLen    = 200 // sessions.title VARCHAR(200)
	MinPasswordLen = 8
)

var (
	// usernameRe matches account names: alphanumeric, dot, dash, underscore.
	usernameRe = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)
	// handleRe matches YouTube handles after the optional leading @.
	handleRe = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)
)

// ErrorResponse is a helper that returns a standard API error response.
func ErrorResponse(c fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    code,
			"message": message,
		},
	})
}

// ValidateUsername checks that a username is well-formed and within DB limits.
func ValidateUsername(name string) (string, string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", "username is required"
	}
	if len(name) > MaxUsernameLen {
		return "", "username must be at most 64 characters"
	}
	if !usernameRe.MatchString(name) {
		return "", "username contains invalid characters"
	}
	return name, ""
}

// ValidatePassword enforces the minimum password length.
func ValidatePassword(plain string) string {
	if len(plain) < MinPasswordLen {
		return "password must be at least 8 characters"
	}
	return ""
}

// ValidateChannelHandle checks a channel handle, with or without the
// leading @.
func ValidateChannelHandle(handle string) (string, string) {
	handle = strings.TrimSpace(handle)
	if handle == "" {
		return "", "channelHandle is required"
	}
	bare := strings.TrimPrefix(handle, "@")
	if bare == "" || len(bare) > MaxHandleLen {
		return "", "channelHandle must be 1-64 characters"
	}
	if !handleRe.MatchString(bare) {
		return "", "channelHandle contains invalid characters"
	}
	return handle, ""
}

// ValidateSessionID checks that a session ID is a UUID.
func ValidateSessionID(id string) (string, string) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", "sessionId is required"
	}
	if _, err := uuid.Parse(id); err != nil {
		return "", "sessionId must be a UUID"
	}
	return id, ""
}

// ValidateMaxVideos bounds the requested video count. Zero means "use the
// default"; the upstream page ceiling still applies during collection.
func ValidateMaxVideos(n, fallback int) (int, string) {
	if n == 0 {
		return fallback, ""
	}
	if n < 1 || n > 2*youtube.PageSizeCeiling {
		return 0, "maxVideos must be between 1 and 100"
	}
	return n, ""
}
