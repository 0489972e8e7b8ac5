package tools

import (
	"encoding/json"
	"testing"

	"github.com/channelchat/channelchat-go/internal/model"
)

func TestParseRequest(t *testing.T) {
	tests := []struct {
		name string
		tool string
		args string
		want Request
	}{
		{"stats", NameComputeStats, `{"field":"viewCount"}`, StatsRequest{Field: "viewCount"}},
		{"time series", NameMetricVsTime, `{"metricField":"likeCount"}`, TimeSeriesRequest{MetricField: "likeCount"}},
		{"play video", NamePlayVideo, `{"selector":"most viewed"}`, PlayVideoRequest{Selector: "most viewed"}},
		{"image", NameGenerateImage, `{"prompt":"a cat","style":"sketch"}`, ImageRequest{Prompt: "a cat", Style: "sketch"}},
		{"empty args", NameComputeStats, "", StatsRequest{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRequest(tt.tool, json.RawMessage(tt.args))
			if err != nil {
				t.Fatalf("ParseRequest: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestParseRequestUnknownTool(t *testing.T) {
	_, err := ParseRequest("summon_demon", json.RawMessage(`{}`))
	if err == nil {
		t.Fatal("expected error for unknown tool")
	}
}

func TestExecuteWithoutDataset(t *testing.T) {
	requests := []Request{
		StatsRequest{Field: "viewCount"},
		TimeSeriesRequest{MetricField: "viewCount"},
		PlayVideoRequest{Selector: "first"},
		ImageRequest{Prompt: "a cat"},
	}

	for _, req := range requests {
		for _, ds := range []*model.ChannelDataset{nil, {}} {
			res := Execute(ds, req)
			errRes, ok := res.(ErrorResult)
			if !ok {
				t.Fatalf("%T: expected ErrorResult, got %T", req, res)
			}
			if errRes.Error != noDataMessage {
				t.Errorf("%T: error = %q, want %q", req, errRes.Error, noDataMessage)
			}
		}
	}
}

func TestExecuteImageDefaults(t *testing.T) {
	ds := &model.ChannelDataset{Videos: []model.VideoRecord{{Title: "v"}}}

	res := Execute(ds, ImageRequest{Prompt: "a sunset"})
	img, ok := res.(ImageResult)
	if !ok {
		t.Fatalf("expected ImageResult, got %T", res)
	}
	if img.ChartType != "generated_image" {
		t.Errorf("chart type = %q, want generated_image", img.ChartType)
	}
	if img.Style != "default" {
		t.Errorf("style = %q, want default", img.Style)
	}
	if !img.NeedsGeneration {
		t.Error("needsGeneration = false, want true")
	}
}

func TestExecuteImageMissingPrompt(t *testing.T) {
	ds := &model.ChannelDataset{Videos: []model.VideoRecord{{Title: "v"}}}

	res := Execute(ds, ImageRequest{})
	if _, ok := res.(ErrorResult); !ok {
		t.Fatalf("expected ErrorResult, got %T", res)
	}
}
