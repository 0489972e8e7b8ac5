package youtube

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/channelchat/channelchat-go/internal/model"
	ytapi "google.golang.org/api/youtube/v3"
)

// Collect retrieves up to min(maxVideos, PageSizeCeiling) videos from the
// channel's uploads listing and normalizes them into VideoRecords, in the
// provider's listing order. Progress milestones are reported through
// progress; the per-video span is interpolated between 50% and 90%.
//
// Channel detail, listing and metadata fetches are fatal; a failed or empty
// captions lookup only downgrades that record's transcript.
func (c *Client) Collect(ctx context.Context, channelID string, maxVideos int, progress ProgressFunc) ([]model.VideoRecord, error) {
	if progress == nil {
		progress = func(int, string) {}
	}

	progress(20, "Fetching channel details...")
	playlistID, err := c.api.uploadsPlaylistID(ctx, channelID)
	if err != nil {
		return nil, err
	}

	limit := int64(maxVideos)
	if limit > PageSizeCeiling {
		limit = PageSizeCeiling
	}

	progress(30, "Fetching videos...")
	videoIDs, err := c.api.playlistVideoIDs(ctx, playlistID, limit)
	if err != nil {
		return nil, err
	}

	progress(50, fmt.Sprintf("Found %d videos, fetching details...", len(videoIDs)))
	if len(videoIDs) == 0 {
		return []model.VideoRecord{}, nil
	}

	items, err := c.api.videosByID(ctx, videoIDs)
	if err != nil {
		return nil, err
	}

	records := make([]model.VideoRecord, 0, len(items))
	span := 40.0 / float64(len(items))
	for i, v := range items {
		title := ""
		if v.Snippet != nil {
			title = v.Snippet.Title
		}
		progress(int(50+float64(i)*span), fmt.Sprintf("Processing: %s...", truncate(title, 50)))

		records = append(records, c.normalize(ctx, v))
	}

	return records, nil
}

// normalize maps one provider video into the internal record shape. Numeric
// fields default to 0 when the provider omits them.
func (c *Client) normalize(ctx context.Context, v *ytapi.Video) model.VideoRecord {
	rec := model.VideoRecord{
		Transcript: model.TranscriptNone,
		VideoURL:   WatchURL(v.Id),
	}

	if v.Snippet != nil {
		rec.Title = v.Snippet.Title
		rec.Description = v.Snippet.Description
		rec.ReleaseDate = v.Snippet.PublishedAt
	}
	if v.ContentDetails != nil {
		rec.Duration = ParseDuration(v.ContentDetails.Duration)
	}
	if v.Statistics != nil {
		rec.ViewCount = int64(v.Statistics.ViewCount)
		rec.LikeCount = int64(v.Statistics.LikeCount)
		rec.CommentCount = int64(v.Statistics.CommentCount)
	}

	// Captions lookup regularly fails for videos without accessible caption
	// tracks; that must never abort collection.
	if ok, err := c.api.hasCaptions(ctx, v.Id); err != nil {
		log.Debug().Err(err).Str("video_id", v.Id).Msg("youtube: captions lookup failed")
	} else if ok {
		rec.Transcript = model.TranscriptAvailable
	}

	return rec
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
