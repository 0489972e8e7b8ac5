package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/channelchat/channelchat-go/internal/middleware"
	"github.com/channelchat/channelchat-go/internal/model"
	"github.com/channelchat/channelchat-go/internal/repository"
)

type StatusHandler struct {
	users    *repository.UserRepo
	sessions *repository.SessionRepo
}

func NewStatusHandler(users *repository.UserRepo, sessions *repository.SessionRepo) *StatusHandler {
	return &StatusHandler{users: users, sessions: sessions}
}

// Get handles GET /api/status
func (h *StatusHandler) Get(c fiber.Ctx) error {
	usersCount, err := h.users.Count(c.Context())
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to read status")
	}
	sessionsCount, err := h.sessions.Count(c.Context())
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to read status")
	}

	return c.JSON(model.StatusResponse{
		UsersCount:    usersCount,
		SessionsCount: sessionsCount,
	})
}
