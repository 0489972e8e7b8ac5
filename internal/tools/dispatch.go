package tools

import (
	"github.com/channelchat/channelchat-go/internal/model"
)

// noDataMessage renders for every tool invoked before a channel dataset
// has been loaded into the session.
const noDataMessage = "No YouTube channel data loaded"

// Execute runs one tool request against the given dataset. It never panics
// and never returns a Go error; failures come back as ErrorResult.
func Execute(ds *model.ChannelDataset, req Request) Result {
	if ds == nil || len(ds.Videos) == 0 {
		return ErrorResult{Error: noDataMessage}
	}

	switch r := req.(type) {
	case StatsRequest:
		return computeStats(ds.Videos, r.Field)
	case TimeSeriesRequest:
		return metricVsTime(ds.Videos, r.MetricField)
	case PlayVideoRequest:
		return selectVideo(ds.Videos, r.Selector)
	case ImageRequest:
		return forwardImage(r)
	}
	// Unreachable for requests produced by ParseRequest.
	return ErrorResult{Error: "unsupported tool request"}
}

// forwardImage validates and forwards the request shape without generating.
func forwardImage(r ImageRequest) Result {
	if r.Prompt == "" {
		return ErrorResult{Error: "prompt is required"}
	}
	style := r.Style
	if style == "" {
		style = "default"
	}
	return ImageResult{
		ChartType:       "generated_image",
		Prompt:          r.Prompt,
		Style:           style,
		NeedsGeneration: true,
	}
}

// numericField extracts the named numeric field from a record. The closed
// record shape means only the four count/duration fields are numeric.
func numericField(v model.VideoRecord, field string) (float64, bool) {
	switch field {
	case "viewCount":
		return float64(v.ViewCount), true
	case "likeCount":
		return float64(v.LikeCount), true
	case "commentCount":
		return float64(v.CommentCount), true
	case "duration":
		return float64(v.Duration), true
	}
	return 0, false
}
