package model

// Transcript placeholder values. Actual caption download requires OAuth,
// which is out of scope; records only note whether captions exist.
const (
	TranscriptNone      = "No transcript available"
	TranscriptAvailable = "Captions available (download requires OAuth)"
)

// VideoRecord is one normalized video from a channel's uploads listing.
// Numeric fields are always non-negative; missing or non-numeric provider
// statistics normalize to 0.
type VideoRecord struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Transcript   string `json:"transcript"`
	Duration     int64  `json:"duration"`
	ReleaseDate  string `json:"releaseDate"`
	ViewCount    int64  `json:"viewCount"`
	LikeCount    int64  `json:"likeCount"`
	CommentCount int64  `json:"commentCount"`
	VideoURL     string `json:"videoUrl"`
}

// ChannelDataset is the immutable result of one ingestion run for one
// channel. ChannelID echoes the user-supplied handle, not the provider's
// internal channel identifier. Videos are in the provider's upload-listing
// order (most recent first) and VideoCount always equals len(Videos).
type ChannelDataset struct {
	ChannelID    string        `json:"channelId"`
	ChannelURL   string        `json:"channelUrl"`
	DownloadDate string        `json:"downloadDate"`
	VideoCount   int           `json:"videoCount"`
	Videos       []VideoRecord `json:"videos"`
}
