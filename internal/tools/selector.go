package tools

import (
	"fmt"
	"strings"

	"github.com/channelchat/channelchat-go/internal/model"
)

var ordinals = []string{
	"first", "second", "third", "fourth", "fifth",
	"sixth", "seventh", "eighth", "ninth", "tenth",
}

// selectVideo picks a single video by, in priority order: exact ordinal word,
// recognized superlative phrase, case-insensitive title substring.
func selectVideo(videos []model.VideoRecord, selector string) Result {
	sel := strings.ToLower(strings.TrimSpace(selector))

	if v, ok := byOrdinal(videos, sel); ok {
		return cardFor(v)
	}
	if v, ok := bySuperlative(videos, sel); ok {
		return cardFor(v)
	}
	if v, ok := byTitleKeyword(videos, sel); ok {
		return cardFor(v)
	}

	return ErrorResult{Error: fmt.Sprintf("Could not find video matching %q", selector)}
}

func byOrdinal(videos []model.VideoRecord, sel string) (model.VideoRecord, bool) {
	for i, word := range ordinals {
		if sel == word && i < len(videos) {
			return videos[i], true
		}
	}
	return model.VideoRecord{}, false
}

// bySuperlative reduces over the full list; ties keep the first occurrence.
func bySuperlative(videos []model.VideoRecord, sel string) (model.VideoRecord, bool) {
	type metric func(model.VideoRecord) int64
	views := func(v model.VideoRecord) int64 { return v.ViewCount }
	likes := func(v model.VideoRecord) int64 { return v.LikeCount }
	comments := func(v model.VideoRecord) int64 { return v.CommentCount }

	var key metric
	var most bool
	switch {
	case strings.Contains(sel, "most viewed") || strings.Contains(sel, "highest views"):
		key, most = views, true
	case strings.Contains(sel, "least viewed") || strings.Contains(sel, "lowest views"):
		key, most = views, false
	case strings.Contains(sel, "most liked"):
		key, most = likes, true
	case strings.Contains(sel, "least liked"):
		key, most = likes, false
	case strings.Contains(sel, "most commented"):
		key, most = comments, true
	default:
		return model.VideoRecord{}, false
	}

	best := videos[0]
	for _, v := range videos[1:] {
		if most && key(v) > key(best) {
			best = v
		}
		if !most && key(v) < key(best) {
			best = v
		}
	}
	return best, true
}

func byTitleKeyword(videos []model.VideoRecord, sel string) (model.VideoRecord, bool) {
	for _, v := range videos {
		if strings.Contains(strings.ToLower(v.Title), sel) {
			return v, true
		}
	}
	return model.VideoRecord{}, false
}

func cardFor(v model.VideoRecord) Result {
	return VideoCardResult{
		ChartType: "video_card",
		Video: VideoCard{
			Title:        v.Title,
			VideoURL:     v.VideoURL,
			ViewCount:    v.ViewCount,
			LikeCount:    v.LikeCount,
			CommentCount: v.CommentCount,
			ReleaseDate:  v.ReleaseDate,
		},
	}
}
