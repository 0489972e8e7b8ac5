package tools

import (
	"testing"

	"github.com/channelchat/channelchat-go/internal/model"
)

func TestMetricVsTimeSortsAscending(t *testing.T) {
	videos := []model.VideoRecord{
		{Title: "newest", ReleaseDate: "2024-03-01T00:00:00Z", ViewCount: 3},
		{Title: "oldest", ReleaseDate: "2024-01-15T00:00:00Z", ViewCount: 1},
		{Title: "middle", ReleaseDate: "2024-02-10T00:00:00Z", ViewCount: 2},
	}

	res := metricVsTime(videos, "viewCount")
	chart, ok := res.(ChartResult)
	if !ok {
		t.Fatalf("expected ChartResult, got %T", res)
	}
	if chart.ChartType != "metric_vs_time" {
		t.Errorf("chart type = %q, want metric_vs_time", chart.ChartType)
	}
	if chart.MetricField != "viewCount" {
		t.Errorf("metric field = %q, want viewCount", chart.MetricField)
	}

	wantTitles := []string{"oldest", "middle", "newest"}
	for i, want := range wantTitles {
		if chart.Data[i].Title != want {
			t.Errorf("data[%d].title = %q, want %q", i, chart.Data[i].Title, want)
		}
	}
	if chart.Data[0].Date != "Jan 15, 2024" {
		t.Errorf("data[0].date = %q, want Jan 15, 2024", chart.Data[0].Date)
	}
	if chart.Data[0].Value != 1 {
		t.Errorf("data[0].value = %v, want 1", chart.Data[0].Value)
	}
}

func TestMetricVsTimeStableOnEqualDates(t *testing.T) {
	videos := []model.VideoRecord{
		{Title: "a", ReleaseDate: "2024-01-01T00:00:00Z"},
		{Title: "b", ReleaseDate: "2024-01-01T00:00:00Z"},
		{Title: "c", ReleaseDate: "2024-01-01T00:00:00Z"},
	}

	res := metricVsTime(videos, "viewCount")
	chart := res.(ChartResult)

	for i, want := range []string{"a", "b", "c"} {
		if chart.Data[i].Title != want {
			t.Errorf("data[%d].title = %q, want %q", i, chart.Data[i].Title, want)
		}
	}
}

func TestMetricVsTimeUnparseableDateKeptRaw(t *testing.T) {
	videos := []model.VideoRecord{
		{Title: "odd", ReleaseDate: "sometime in 2024", ViewCount: 7},
	}

	res := metricVsTime(videos, "viewCount")
	chart := res.(ChartResult)

	if chart.Data[0].Date != "sometime in 2024" {
		t.Errorf("date = %q, want raw string preserved", chart.Data[0].Date)
	}
}

func TestMetricVsTimeUnknownFieldPlotsZero(t *testing.T) {
	videos := []model.VideoRecord{
		{Title: "v", ReleaseDate: "2024-01-01T00:00:00Z", ViewCount: 99},
	}

	res := metricVsTime(videos, "subscriberCount")
	chart := res.(ChartResult)

	if chart.Data[0].Value != 0 {
		t.Errorf("value = %v, want 0 for unknown field", chart.Data[0].Value)
	}
}
