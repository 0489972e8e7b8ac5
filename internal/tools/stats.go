package tools

import (
	"fmt"
	"math"
	"sort"

	"github.com/channelchat/channelchat-go/internal/model"
)

// computeStats aggregates one numeric field over every video that carries it.
func computeStats(videos []model.VideoRecord, field string) Result {
	values := make([]float64, 0, len(videos))
	for _, v := range videos {
		if x, ok := numericField(v, field); ok && !math.IsNaN(x) && !math.IsInf(x, 0) {
			values = append(values, x)
		}
	}

	if len(values) == 0 {
		return ErrorResult{Error: fmt.Sprintf("No numeric values found for field %q", field)}
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	var sum float64
	for _, x := range values {
		sum += x
	}
	mean := sum / float64(len(values))

	var median float64
	n := len(sorted)
	if n%2 == 0 {
		median = (sorted[n/2-1] + sorted[n/2]) / 2
	} else {
		median = sorted[n/2]
	}

	// Population standard deviation: divide by count, not count-1.
	var variance float64
	for _, x := range values {
		variance += (x - mean) * (x - mean)
	}
	variance /= float64(len(values))

	return StatsResult{
		Field:  field,
		Count:  len(values),
		Mean:   round2(mean),
		Median: round2(median),
		Std:    round2(math.Sqrt(variance)),
		Min:    sorted[0],
		Max:    sorted[n-1],
	}
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
