// Package tools implements the chat analytics tools that operate over the
// currently loaded channel dataset: aggregate statistics, time-series
// projection, video selection and the image-generation passthrough.
//
// Tool calls arrive as {name, args} pairs and are decoded once at the
// boundary into a closed set of request variants; dispatch is an exhaustive
// type switch, not string comparison per layer. Failures are never Go errors:
// every operation returns a renderable result, with failures expressed as
// ErrorResult so the chat turn can display them inline.
package tools

import (
	"encoding/json"
	"fmt"
)

// Tool names as exposed to the chat model.
const (
	NameComputeStats  = "compute_stats_json"
	NameMetricVsTime  = "plot_metric_vs_time"
	NamePlayVideo     = "play_video"
	NameGenerateImage = "generateImage"
)

// Request is one tool invocation. The set of variants is closed.
type Request interface {
	isRequest()
}

// StatsRequest asks for aggregate statistics over one numeric field.
type StatsRequest struct {
	Field string `json:"field"`
}

// TimeSeriesRequest asks for a metric-vs-release-date projection.
type TimeSeriesRequest struct {
	MetricField string `json:"metricField"`
}

// PlayVideoRequest asks for a single video card, selected by ordinal word,
// superlative phrase or title keyword.
type PlayVideoRequest struct {
	Selector string `json:"selector"`
}

// ImageRequest asks an external generator for an image; the tool layer only
// validates and forwards the request shape.
type ImageRequest struct {
	Prompt string `json:"prompt"`
	Style  string `json:"style"`
}

func (StatsRequest) isRequest()      {}
func (TimeSeriesRequest) isRequest() {}
func (PlayVideoRequest) isRequest()  {}
func (ImageRequest) isRequest()      {}

// ParseRequest decodes a named tool call into its request variant.
func ParseRequest(name string, args json.RawMessage) (Request, error) {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}

	switch name {
	case NameComputeStats:
		var req StatsRequest
		if err := json.Unmarshal(args, &req); err != nil {
			return nil, fmt.Errorf("decode %s args: %w", name, err)
		}
		return req, nil
	case NameMetricVsTime:
		var req TimeSeriesRequest
		if err := json.Unmarshal(args, &req); err != nil {
			return nil, fmt.Errorf("decode %s args: %w", name, err)
		}
		return req, nil
	case NamePlayVideo:
		var req PlayVideoRequest
		if err := json.Unmarshal(args, &req); err != nil {
			return nil, fmt.Errorf("decode %s args: %w", name, err)
		}
		return req, nil
	case NameGenerateImage:
		var req ImageRequest
		if err := json.Unmarshal(args, &req); err != nil {
			return nil, fmt.Errorf("decode %s args: %w", name, err)
		}
		return req, nil
	}
	return nil, fmt.Errorf("Unknown tool: %s", name)
}
