package tools

import (
	"sort"
	"time"

	"github.com/channelchat/channelchat-go/internal/model"
)

// metricVsTime projects one metric over release dates, ascending. Videos
// whose field is missing plot as 0 rather than being dropped, and videos
// sharing a release date keep their original relative order.
func metricVsTime(videos []model.VideoRecord, metricField string) Result {
	type sample struct {
		at    time.Time
		point TimePoint
	}

	samples := make([]sample, 0, len(videos))
	for _, v := range videos {
		value, _ := numericField(v, metricField)

		at, err := time.Parse(time.RFC3339, v.ReleaseDate)
		date := v.ReleaseDate
		if err == nil {
			date = at.Format("Jan 2, 2006")
		}

		samples = append(samples, sample{
			at: at,
			point: TimePoint{
				Date:  date,
				Value: value,
				Title: v.Title,
			},
		})
	}

	sort.SliceStable(samples, func(i, j int) bool {
		return samples[i].at.Before(samples[j].at)
	})

	data := make([]TimePoint, len(samples))
	for i, s := range samples {
		data[i] = s.point
	}

	return ChartResult{
		ChartType:   "metric_vs_time",
		MetricField: metricField,
		Data:        data,
	}
}
