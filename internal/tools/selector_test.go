package tools

import (
	"testing"

	"github.com/channelchat/channelchat-go/internal/model"
)

func selectorVideos() []model.VideoRecord {
	return []model.VideoRecord{
		{Title: "Intro to the channel", ViewCount: 100, LikeCount: 50, CommentCount: 5},
		{Title: "Second tutorial", ViewCount: 900, LikeCount: 10, CommentCount: 40},
		{Title: "Deep dive", ViewCount: 900, LikeCount: 80, CommentCount: 40},
	}
}

func TestSelectVideoOrdinal(t *testing.T) {
	res := selectVideo(selectorVideos(), "third")

	card, ok := res.(VideoCardResult)
	if !ok {
		t.Fatalf("expected VideoCardResult, got %T", res)
	}
	if card.ChartType != "video_card" {
		t.Errorf("chart type = %q, want video_card", card.ChartType)
	}
	if card.Video.Title != "Deep dive" {
		t.Errorf("title = %q, want Deep dive", card.Video.Title)
	}
}

func TestSelectVideoOrdinalBeatsTitleMatch(t *testing.T) {
	// "second" matches the first title as a keyword but must resolve as
	// the ordinal for index 1.
	videos := []model.VideoRecord{
		{Title: "Second thoughts"},
		{Title: "Another one"},
	}
	res := selectVideo(videos, "second")

	card, ok := res.(VideoCardResult)
	if !ok {
		t.Fatalf("expected VideoCardResult, got %T", res)
	}
	if card.Video.Title != "Another one" {
		t.Errorf("title = %q, want Another one (ordinal index 1)", card.Video.Title)
	}
}

func TestSelectVideoOrdinalOutOfRange(t *testing.T) {
	res := selectVideo(selectorVideos(), "tenth")

	if _, ok := res.(ErrorResult); !ok {
		t.Fatalf("expected ErrorResult for out-of-range ordinal, got %T", res)
	}
}

func TestSelectVideoSuperlatives(t *testing.T) {
	tests := []struct {
		selector string
		want     string
	}{
		{"most viewed", "Second tutorial"}, // tie on views, first wins
		{"the most viewed video", "Second tutorial"},
		{"highest views", "Second tutorial"},
		{"least viewed", "Intro to the channel"},
		{"lowest views", "Intro to the channel"},
		{"most liked", "Deep dive"},
		{"least liked", "Second tutorial"},
		{"most commented", "Second tutorial"}, // tie on comments, first wins
	}

	for _, tt := range tests {
		t.Run(tt.selector, func(t *testing.T) {
			res := selectVideo(selectorVideos(), tt.selector)

			card, ok := res.(VideoCardResult)
			if !ok {
				t.Fatalf("expected VideoCardResult, got %T", res)
			}
			if card.Video.Title != tt.want {
				t.Errorf("title = %q, want %q", card.Video.Title, tt.want)
			}
		})
	}
}

func TestSelectVideoTitleKeyword(t *testing.T) {
	res := selectVideo(selectorVideos(), "DEEP")

	card, ok := res.(VideoCardResult)
	if !ok {
		t.Fatalf("expected VideoCardResult, got %T", res)
	}
	if card.Video.Title != "Deep dive" {
		t.Errorf("title = %q, want Deep dive", card.Video.Title)
	}
}

func TestSelectVideoNoMatch(t *testing.T) {
	res := selectVideo(selectorVideos(), "nonexistent topic")

	errRes, ok := res.(ErrorResult)
	if !ok {
		t.Fatalf("expected ErrorResult, got %T", res)
	}
	want := `Could not find video matching "nonexistent topic"`
	if errRes.Error != want {
		t.Errorf("error = %q, want %q", errRes.Error, want)
	}
}
