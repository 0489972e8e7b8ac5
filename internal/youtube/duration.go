package youtube

import (
	"regexp"
	"strconv"
)

var durationRe = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?`)

// ParseDuration converts a YouTube ISO-8601 duration code (e.g. "PT1H2M10S")
// to total seconds. Missing units count as zero and malformed input decodes
// to 0; a duration is always derivable.
func ParseDuration(code string) int64 {
	m := durationRe.FindStringSubmatch(code)
	if m == nil {
		return 0
	}

	hours := atoiOrZero(m[1])
	minutes := atoiOrZero(m[2])
	seconds := atoiOrZero(m[3])

	return hours*3600 + minutes*60 + seconds
}

func atoiOrZero(s string) int64 {
	if s == "" {
		return 0
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
