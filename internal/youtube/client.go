// Package youtube wraps the YouTube Data API v3 as the channel metadata
// provider: handle resolution, upload listings, batched video metadata and
// captions-existence lookups.
package youtube

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/api/option"
	ytapi "google.golang.org/api/youtube/v3"
)

// PageSizeCeiling is the provider's hard per-page limit. Requests for more
// videos than this truncate to it.
const PageSizeCeiling = 50

// ErrChannelNotFound is returned when the provider's search yields no
// channel for a handle.
var ErrChannelNotFound = errors.New("channel not found")

// ProgressFunc receives coarse collection milestones, percent 0-100.
type ProgressFunc func(percent int, message string)

// api is the raw provider call surface. It exists so collection logic can be
// exercised against a fake without network access.
type api interface {
	searchChannelID(ctx context.Context, query string) (string, error)
	uploadsPlaylistID(ctx context.Context, channelID string) (string, error)
	playlistVideoIDs(ctx context.Context, playlistID string, limit int64) ([]string, error)
	videosByID(ctx context.Context, ids []string) ([]*ytapi.Video, error)
	hasCaptions(ctx context.Context, videoID string) (bool, error)
}

// Client is the provider-facing entry point used by the ingestion service.
type Client struct {
	api api
}

// NewClient creates a Data API v3 backed client.
func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("api key required")
	}
	svc, err := ytapi.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create youtube service: %w", err)
	}
	return &Client{api: &dataAPI{svc: svc}}, nil
}

// ResolveHandle resolves a channel handle (with or without the leading @) to
// the provider's channel ID. Exactly one search call is made; an empty
// result maps to ErrChannelNotFound.
func (c *Client) ResolveHandle(ctx context.Context, handle string) (string, error) {
	query := strings.TrimPrefix(strings.TrimSpace(handle), "@")

	id, err := c.api.searchChannelID(ctx, query)
	if err != nil {
		return "", err
	}
	if id == "" {
		return "", fmt.Errorf("%w: %s", ErrChannelNotFound, handle)
	}
	return id, nil
}

// WatchURL returns the canonical watch URL for a video ID.
func WatchURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + videoID
}

// ChannelURL returns the canonical channel URL for a handle.
func ChannelURL(handle string) string {
	if !strings.HasPrefix(handle, "@") {
		handle = "@" + handle
	}
	return "https://www.youtube.com/" + handle
}

// dataAPI implements api over a real *ytapi.Service.
type dataAPI struct {
	svc *ytapi.Service
}

func (a *dataAPI) searchChannelID(ctx context.Context, query string) (string, error) {
	resp, err := a.svc.Search.List([]string{"snippet"}).
		Q(query).
		Type("channel").
		MaxResults(1).
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("search channel: %w", err)
	}
	if len(resp.Items) == 0 {
		return "", nil
	}
	return resp.Items[0].Snippet.ChannelId, nil
}

func (a *dataAPI) uploadsPlaylistID(ctx context.Context, channelID string) (string, error) {
	resp, err := a.svc.Channels.List([]string{"contentDetails", "snippet"}).
		Id(channelID).
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("fetch channel details: %w", err)
	}
	if len(resp.Items) == 0 || resp.Items[0].ContentDetails == nil ||
		resp.Items[0].ContentDetails.RelatedPlaylists == nil {
		return "", fmt.Errorf("%w: %s", ErrChannelNotFound, channelID)
	}
	return resp.Items[0].ContentDetails.RelatedPlaylists.Uploads, nil
}

func (a *dataAPI) playlistVideoIDs(ctx context.Context, playlistID string, limit int64) ([]string, error) {
	resp, err := a.svc.PlaylistItems.List([]string{"snippet", "contentDetails"}).
		PlaylistId(playlistID).
		MaxResults(limit).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("fetch playlist items: %w", err)
	}

	ids := make([]string, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.ContentDetails != nil && item.ContentDetails.VideoId != "" {
			ids = append(ids, item.ContentDetails.VideoId)
		}
	}
	return ids, nil
}

func (a *dataAPI) videosByID(ctx context.Context, ids []string) ([]*ytapi.Video, error) {
	resp, err := a.svc.Videos.List([]string{"snippet", "contentDetails", "statistics"}).
		Id(ids...).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("fetch video details: %w", err)
	}
	return resp.Items, nil
}

func (a *dataAPI) hasCaptions(ctx context.Context, videoID string) (bool, error) {
	resp, err := a.svc.Captions.List([]string{"snippet"}, videoID).
		Context(ctx).
		Do()
	if err != nil {
		return false, err
	}
	return len(resp.Items) > 0, nil
}
