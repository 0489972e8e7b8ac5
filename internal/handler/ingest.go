package handler

import (
	"bufio"
	"context"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"

	"github.com/channelchat/channelchat-go/internal/middleware"
	"github.com/channelchat/channelchat-go/internal/service"
	"github.com/channelchat/channelchat-go/internal/stream"
)

type IngestHandler struct {
	svc       *service.IngestService
	datasets  *service.DatasetStore
	maxVideos int
	timeout   time.Duration
}

func NewIngestHandler(svc *service.IngestService, datasets *service.DatasetStore, maxVideos int, timeout time.Duration) *IngestHandler {
	return &IngestHandler{svc: svc, datasets: datasets, maxVideos: maxVideos, timeout: timeout}
}

type downloadRequest struct {
	SessionID     string `json:"sessionId"`
	ChannelHandle string `json:"channelHandle"`
	MaxVideos     int    `json:"maxVideos"`
}

// Download handles POST /api/youtube/download. The response is a
// server-sent-event stream of progress records ending in either an error
// record or a data record carrying the full dataset.
func (h *IngestHandler) Download(c fiber.Ctx) error {
	var req downloadRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	sessionID, errMsg := middleware.ValidateSessionID(req.SessionID)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	handle, errMsg := middleware.ValidateChannelHandle(req.ChannelHandle)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	maxVideos, errMsg := middleware.ValidateMaxVideos(req.MaxVideos, h.maxVideos)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	c.Set("Content-Type", "text/event-stream")
	c.Set("Cache-Control", "no-cache")
	c.Set("Connection", "keep-alive")
	c.Set("X-Accel-Buffering", "no")

	ctx, cancel := context.WithTimeout(context.WithoutCancel(c.Context()), h.timeout)
	events := h.svc.Ingest(ctx, handle, maxVideos)

	start := time.Now()
	return c.SendStreamWriter(func(w *bufio.Writer) {
		defer cancel()

		for ev := range events {
			b, err := stream.Encode(ev)
			if err != nil {
				log.Error().Err(err).Msg("encode stream event")
				continue
			}
			if _, err := w.Write(b); err != nil {
				return
			}
			if err := w.Flush(); err != nil {
				// Client went away. Keep draining so the ingest
				// goroutine can finish and close the channel.
				for range events {
				}
				return
			}

			switch e := ev.(type) {
			case stream.Complete:
				h.datasets.Put(ctx, sessionID, e.Dataset)
				Metrics.IngestionsTotal.WithLabelValues("success").Inc()
				Metrics.IngestionDuration.Observe(time.Since(start).Seconds())
				Metrics.VideosCollected.Add(float64(e.Dataset.VideoCount))
			case stream.Failure:
				Metrics.IngestionsTotal.WithLabelValues("failure").Inc()
			}
		}
	})
}
