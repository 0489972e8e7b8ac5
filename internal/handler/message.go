package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/channelchat/channelchat-go/internal/middleware"
	"github.com/channelchat/channelchat-go/internal/model"
	"github.com/channelchat/channelchat-go/internal/repository"
	"github.com/channelchat/channelchat-go/internal/service"
)

type MessageHandler struct {
	svc *service.SessionService
}

func NewMessageHandler(svc *service.SessionService) *MessageHandler {
	return &MessageHandler{svc: svc}
}

var validRoles = map[string]bool{
	"user":      true,
	"assistant": true,
	"system":    true,
}

// Append handles POST /api/sessions/:sessionId/messages
func (h *MessageHandler) Append(c fiber.Ctx) error {
	sessionID, errMsg := middleware.ValidateSessionID(c.Params("sessionId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	var msg model.Message
	if err := c.Bind().JSON(&msg); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}
	if !validRoles[msg.Role] {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", "role must be user, assistant or system")
	}

	saved, err := h.svc.AppendMessage(c.Context(), sessionID, &msg)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Session not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to save message")
	}

	return c.Status(fiber.StatusCreated).JSON(saved)
}

// List handles GET /api/sessions/:sessionId/messages
func (h *MessageHandler) List(c fiber.Ctx) error {
	sessionID, errMsg := middleware.ValidateSessionID(c.Params("sessionId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	messages, err := h.svc.Messages(c.Context(), sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Session not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list messages")
	}

	return c.JSON(messages)
}
