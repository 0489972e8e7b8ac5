package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/channelchat/channelchat-go/internal/model"
	"github.com/channelchat/channelchat-go/internal/stream"
	"github.com/channelchat/channelchat-go/internal/youtube"
)

// ChannelProvider fetches channel data from the upstream video platform.
// *youtube.Client satisfies this; tests substitute a fake.
type ChannelProvider interface {
	ResolveHandle(ctx context.Context, handle string) (string, error)
	Collect(ctx context.Context, channelID string, maxVideos int, progress youtube.ProgressFunc) ([]model.VideoRecord, error)
}

// IngestService runs channel downloads and reports progress as a stream of
// events. A nil provider means no API key was configured at startup.
type IngestService struct {
	provider ChannelProvider
	now      func() time.Time
}

func NewIngestService(provider ChannelProvider) *IngestService {
	return &IngestService{provider: provider, now: time.Now}
}

// Ingest downloads up to maxVideos recent videos for a channel handle. The
// returned channel carries progress events followed by exactly one terminal
// event (Failure or Complete), then closes. The caller owns draining it.
func (s *IngestService) Ingest(ctx context.Context, handle string, maxVideos int) <-chan stream.Event {
	events := make(chan stream.Event, 8)
	go func() {
		defer close(events)
		s.run(ctx, handle, maxVideos, events)
	}()
	return events
}

func (s *IngestService) run(ctx context.Context, handle string, maxVideos int, events chan<- stream.Event) {
	if s.provider == nil {
		events <- stream.Failure{Message: "YouTube API key not configured. Set YOUTUBE_API_KEY to enable channel downloads."}
		return
	}

	progress := func(percent int, message string) {
		select {
		case events <- stream.Progress{Percent: percent, Message: message}:
		case <-ctx.Done():
		}
	}

	progress(5, "Searching for channel...")

	channelID, err := s.provider.ResolveHandle(ctx, handle)
	if err != nil {
		if errors.Is(err, youtube.ErrChannelNotFound) {
			events <- stream.Failure{Message: fmt.Sprintf("Channel not found: %s", canonicalHandle(handle))}
		} else {
			events <- stream.Failure{Message: fmt.Sprintf("Failed to resolve channel: %v", err)}
		}
		return
	}

	progress(15, fmt.Sprintf("Found channel: %s", channelID))

	if maxVideos > youtube.PageSizeCeiling {
		progress(15, fmt.Sprintf("Requested %d videos, capping at %d", maxVideos, youtube.PageSizeCeiling))
	}

	videos, err := s.provider.Collect(ctx, channelID, maxVideos, progress)
	if err != nil {
		events <- stream.Failure{Message: fmt.Sprintf("Failed to fetch channel data: %v", err)}
		return
	}

	dataset := &model.ChannelDataset{
		ChannelID:    canonicalHandle(handle),
		ChannelURL:   youtube.ChannelURL(handle),
		DownloadDate: s.now().UTC().Format(time.RFC3339),
		VideoCount:   len(videos),
		Videos:       videos,
	}

	progress(100, "Complete!")
	events <- stream.Complete{Dataset: dataset}
}

// canonicalHandle ensures the leading @ is present.
func canonicalHandle(handle string) string {
	if strings.HasPrefix(handle, "@") {
		return handle
	}
	return "@" + handle
}
