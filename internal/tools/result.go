package tools

// Result is the renderable outcome of a tool invocation. Chart-producing
// results carry a _chartType discriminator for the frontend.
type Result interface {
	isResult()
}

// ErrorResult renders inline as an error notice in the chat turn.
type ErrorResult struct {
	Error string `json:"error"`
}

// StatsResult carries aggregate statistics over one numeric field.
// Mean, Median and Std are rounded to 2 decimal places; Min and Max are not.
type StatsResult struct {
	Field  string  `json:"field"`
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// TimePoint is one sample of a metric-vs-time projection.
type TimePoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
	Title string  `json:"title"`
}

// ChartResult carries time-series data for a line chart.
type ChartResult struct {
	ChartType   string      `json:"_chartType"`
	MetricField string      `json:"metricField"`
	Data        []TimePoint `json:"data"`
}

// VideoCard is the public subset of a video record shown on a card.
type VideoCard struct {
	Title        string `json:"title"`
	VideoURL     string `json:"videoUrl"`
	ViewCount    int64  `json:"viewCount"`
	LikeCount    int64  `json:"likeCount"`
	CommentCount int64  `json:"commentCount"`
	ReleaseDate  string `json:"releaseDate"`
}

// VideoCardResult carries one selected video for card rendering.
type VideoCardResult struct {
	ChartType string    `json:"_chartType"`
	Video     VideoCard `json:"video"`
}

// ImageResult is the forwarded image-generation request descriptor; actual
// generation happens downstream.
type ImageResult struct {
	ChartType       string `json:"_chartType"`
	Prompt          string `json:"prompt"`
	Style           string `json:"style"`
	NeedsGeneration bool   `json:"needsGeneration"`
}

func (ErrorResult) isResult()     {}
func (StatsResult) isResult()     {}
func (ChartResult) isResult()     {}
func (VideoCardResult) isResult() {}
func (ImageResult) isResult()     {}
