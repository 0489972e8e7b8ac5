// Package client is a small Go consumer for the channel download stream,
// usable from CLIs and integration tests.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/channelchat/channelchat-go/internal/model"
	"github.com/channelchat/channelchat-go/internal/stream"
)

// ErrStreamEnded is returned when the stream closes without a data record.
var ErrStreamEnded = errors.New("stream ended without a dataset")

// ProgressFunc receives each progress record as it arrives.
type ProgressFunc func(percent int, message string)

// Client downloads channel data over the streaming endpoint.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

func New(baseURL string, httpClient *http.Client, log zerolog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: baseURL, http: httpClient, log: log}
}

type downloadBody struct {
	SessionID     string `json:"sessionId"`
	ChannelHandle string `json:"channelHandle"`
	MaxVideos     int    `json:"maxVideos"`
}

// Download requests a channel download and consumes the event stream until
// the terminal record. Progress records are delivered to onProgress (which
// may be nil); an error record becomes the returned error.
func (c *Client) Download(ctx context.Context, sessionID, channelHandle string, maxVideos int, onProgress ProgressFunc) (*model.ChannelDataset, error) {
	body, err := json.Marshal(downloadBody{
		SessionID:     sessionID,
		ChannelHandle: channelHandle,
		MaxVideos:     maxVideos,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/youtube/download", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "text/event-stream")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download request failed: %s", resp.Status)
	}

	decoder := stream.NewDecoder(c.log)
	buf := make([]byte, 4096)
	for {
		n, readErr := resp.Body.Read(buf)
		for _, ev := range decoder.Feed(buf[:n]) {
			switch e := ev.(type) {
			case stream.Progress:
				if onProgress != nil {
					onProgress(e.Percent, e.Message)
				}
			case stream.Failure:
				return nil, errors.New(e.Message)
			case stream.Complete:
				return e.Dataset, nil
			}
		}
		if readErr == io.EOF {
			return nil, ErrStreamEnded
		}
		if readErr != nil {
			return nil, readErr
		}
	}
}
