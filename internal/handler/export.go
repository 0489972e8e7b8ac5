package handler

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/channelchat/channelchat-go/internal/middleware"
	"github.com/channelchat/channelchat-go/internal/service"
)

type ExportHandler struct {
	datasets  *service.DatasetStore
	exportDir string
}

func NewExportHandler(datasets *service.DatasetStore, exportDir string) *ExportHandler {
	return &ExportHandler{datasets: datasets, exportDir: exportDir}
}

// Save handles POST /api/sessions/:sessionId/export
// Writes the session's dataset to the exports directory as a JSON snapshot.
func (h *ExportHandler) Save(c fiber.Ctx) error {
	sessionID, errMsg := middleware.ValidateSessionID(c.Params("sessionId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	ds := h.datasets.Get(c.Context(), sessionID)
	if ds == nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "No dataset loaded for this session")
	}

	if err := os.MkdirAll(h.exportDir, 0o755); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create export directory")
	}

	handle := strings.TrimPrefix(ds.ChannelID, "@")
	name := fmt.Sprintf("%s_%s.json", time.Now().UTC().Format("20060102T150405"), handle)
	path := filepath.Join(h.exportDir, name)

	b, err := json.MarshalIndent(ds, "", "  ")
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to encode dataset")
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to write export file")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"file": name})
}

// Latest handles GET /api/datasets/export
// Serves the most recent dataset snapshot from the exports directory.
func (h *ExportHandler) Latest(c fiber.Ctx) error {
	entries, err := os.ReadDir(h.exportDir)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "No export file available yet")
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".json") {
			files = append(files, e.Name())
		}
	}
	if len(files) == 0 {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "No export file available yet")
	}

	// Filenames carry a UTC timestamp so lexicographic order is
	// chronological.
	sort.Strings(files)
	latest := files[len(files)-1]
	path := filepath.Join(h.exportDir, latest)

	c.Set("Content-Type", "application/json")
	c.Set("Content-Disposition", "attachment; filename="+latest)
	return c.SendFile(path)
}
