package stream

import (
	"bytes"

	"github.com/rs/zerolog"
)

// Decoder incrementally reassembles SSE records from raw transport chunks.
// A partially received final record stays buffered until a later chunk
// completes it. Records that fail to parse are skipped and counted rather
// than aborting the read; a fragment that later completes into a well-formed
// error event still surfaces as a Failure event.
type Decoder struct {
	buf     bytes.Buffer
	log     zerolog.Logger
	skipped int
}

// NewDecoder creates a decoder that logs skipped records to the given logger.
func NewDecoder(log zerolog.Logger) *Decoder {
	return &Decoder{log: log}
}

// Feed appends a transport chunk and returns every event completed by it.
func (d *Decoder) Feed(chunk []byte) []Event {
	d.buf.Write(chunk)

	var events []Event
	for {
		raw := d.buf.Bytes()
		idx := bytes.IndexByte(raw, '\n')
		if idx < 0 {
			break
		}

		line := make([]byte, idx)
		copy(line, raw[:idx])
		d.buf.Next(idx + 1)

		line = bytes.TrimRight(line, "\r")
		if !bytes.HasPrefix(line, []byte(dataPrefix)) {
			// Blank separator lines and comments are not records.
			continue
		}

		ev, err := decodeRecord(line[len(dataPrefix):])
		if err != nil {
			d.skipped++
			d.log.Warn().Err(err).Msg("stream: skipping unparseable record")
			continue
		}
		events = append(events, ev)
	}
	return events
}

// Skipped reports how many records failed to parse and were dropped.
func (d *Decoder) Skipped() int {
	return d.skipped
}
