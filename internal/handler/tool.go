package handler

import (
	"encoding/json"

	"github.com/gofiber/fiber/v3"

	"github.com/channelchat/channelchat-go/internal/middleware"
	"github.com/channelchat/channelchat-go/internal/service"
	"github.com/channelchat/channelchat-go/internal/tools"
)

type ToolHandler struct {
	datasets *service.DatasetStore
}

func NewToolHandler(datasets *service.DatasetStore) *ToolHandler {
	return &ToolHandler{datasets: datasets}
}

type toolCallRequest struct {
	SessionID string          `json:"sessionId"`
	Name      string          `json:"name"`
	Args      json.RawMessage `json:"args"`
}

// Call handles POST /api/tools/call. Tool failures are part of the result
// payload, not HTTP errors; only a malformed request gets a non-200.
func (h *ToolHandler) Call(c fiber.Ctx) error {
	var req toolCallRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	sessionID, errMsg := middleware.ValidateSessionID(req.SessionID)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	// An unknown tool name is still a renderable outcome for the chat turn.
	parsed, err := tools.ParseRequest(req.Name, req.Args)
	if err != nil {
		Metrics.ToolCallsTotal.WithLabelValues(req.Name, "error").Inc()
		return c.JSON(tools.ErrorResult{Error: err.Error()})
	}

	ds := h.datasets.Get(c.Context(), sessionID)
	result := tools.Execute(ds, parsed)

	outcome := "ok"
	if _, failed := result.(tools.ErrorResult); failed {
		outcome = "error"
	}
	Metrics.ToolCallsTotal.WithLabelValues(req.Name, outcome).Inc()

	return c.JSON(result)
}
