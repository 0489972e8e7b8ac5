package handler

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/channelchat/channelchat-go/internal/middleware"
	"github.com/channelchat/channelchat-go/internal/repository"
	"github.com/channelchat/channelchat-go/internal/service"
)

type SessionHandler struct {
	svc *service.SessionService
}

func NewSessionHandler(svc *service.SessionService) *SessionHandler {
	return &SessionHandler{svc: svc}
}

type createSessionRequest struct {
	Username string  `json:"username"`
	Agent    *string `json:"agent"`
	Title    *string `json:"title"`
}

type renameSessionRequest struct {
	Title string `json:"title"`
}

// Create handles POST /api/sessions
func (h *SessionHandler) Create(c fiber.Ctx) error {
	var req createSessionRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	username, errMsg := middleware.ValidateUsername(req.Username)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	session, err := h.svc.Create(c.Context(), username, req.Agent, req.Title)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create session")
	}

	return c.Status(fiber.StatusCreated).JSON(session)
}

// List handles GET /api/sessions?username=...
func (h *SessionHandler) List(c fiber.Ctx) error {
	username, errMsg := middleware.ValidateUsername(c.Query("username"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	summaries, err := h.svc.List(c.Context(), username)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list sessions")
	}

	return c.JSON(summaries)
}

// Rename handles PUT /api/sessions/:sessionId
func (h *SessionHandler) Rename(c fiber.Ctx) error {
	sessionID, errMsg := middleware.ValidateSessionID(c.Params("sessionId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	var req renameSessionRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}
	title := strings.TrimSpace(req.Title)
	if title == "" || len(title) > middleware.MaxTitleLen {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", "title must be 1-200 characters")
	}

	if err := h.svc.Rename(c.Context(), sessionID, title); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Session not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to rename session")
	}

	return c.JSON(fiber.Map{"ok": true})
}

// Delete handles DELETE /api/sessions/:sessionId
func (h *SessionHandler) Delete(c fiber.Ctx) error {
	sessionID, errMsg := middleware.ValidateSessionID(c.Params("sessionId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	if err := h.svc.Delete(c.Context(), sessionID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Session not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete session")
	}

	return c.JSON(fiber.Map{"ok": true})
}
