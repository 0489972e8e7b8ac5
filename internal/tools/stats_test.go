package tools

import (
	"testing"

	"github.com/channelchat/channelchat-go/internal/model"
)

func videosWithViews(counts ...int64) []model.VideoRecord {
	videos := make([]model.VideoRecord, len(counts))
	for i, c := range counts {
		videos[i] = model.VideoRecord{Title: "v", ViewCount: c}
	}
	return videos
}

func TestComputeStats(t *testing.T) {
	res := computeStats(videosWithViews(10, 20, 30), "viewCount")

	stats, ok := res.(StatsResult)
	if !ok {
		t.Fatalf("expected StatsResult, got %T", res)
	}
	if stats.Count != 3 {
		t.Errorf("count = %d, want 3", stats.Count)
	}
	if stats.Mean != 20 {
		t.Errorf("mean = %v, want 20", stats.Mean)
	}
	if stats.Median != 20 {
		t.Errorf("median = %v, want 20", stats.Median)
	}
	if stats.Std != 8.16 {
		t.Errorf("std = %v, want 8.16", stats.Std)
	}
	if stats.Min != 10 || stats.Max != 30 {
		t.Errorf("min/max = %v/%v, want 10/30", stats.Min, stats.Max)
	}
}

func TestComputeStatsEvenMedian(t *testing.T) {
	res := computeStats(videosWithViews(40, 10, 30, 20), "viewCount")

	stats, ok := res.(StatsResult)
	if !ok {
		t.Fatalf("expected StatsResult, got %T", res)
	}
	if stats.Median != 25 {
		t.Errorf("median = %v, want 25", stats.Median)
	}
}

func TestComputeStatsUnknownField(t *testing.T) {
	res := computeStats(videosWithViews(10), "subscriberCount")

	errRes, ok := res.(ErrorResult)
	if !ok {
		t.Fatalf("expected ErrorResult, got %T", res)
	}
	want := `No numeric values found for field "subscriberCount"`
	if errRes.Error != want {
		t.Errorf("error = %q, want %q", errRes.Error, want)
	}
}

func TestComputeStatsSingleValue(t *testing.T) {
	res := computeStats(videosWithViews(42), "viewCount")

	stats, ok := res.(StatsResult)
	if !ok {
		t.Fatalf("expected StatsResult, got %T", res)
	}
	if stats.Mean != 42 || stats.Median != 42 || stats.Std != 0 {
		t.Errorf("mean/median/std = %v/%v/%v, want 42/42/0", stats.Mean, stats.Median, stats.Std)
	}
}
