package stream

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/channelchat/channelchat-go/internal/model"
)

func newTestDecoder() *Decoder {
	return NewDecoder(zerolog.Nop())
}

func TestDecoder_SingleProgressEvent(t *testing.T) {
	d := newTestDecoder()
	events := d.Feed([]byte("data: {\"progress\":15,\"message\":\"Found channel\"}\n\n"))

	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	p, ok := events[0].(Progress)
	if !ok {
		t.Fatalf("got %T, want Progress", events[0])
	}
	if p.Percent != 15 || p.Message != "Found channel" {
		t.Errorf("got %+v, want {15 Found channel}", p)
	}
}

func TestDecoder_PartialRecordBufferedAcrossChunks(t *testing.T) {
	d := newTestDecoder()

	events := d.Feed([]byte("data: {\"progress\":50,\"mes"))
	if len(events) != 0 {
		t.Fatalf("incomplete record produced %d events, want 0", len(events))
	}

	events = d.Feed([]byte("sage\":\"Fetching videos...\"}\n\n"))
	if len(events) != 1 {
		t.Fatalf("got %d events after completion, want 1", len(events))
	}
	p := events[0].(Progress)
	if p.Percent != 50 || p.Message != "Fetching videos..." {
		t.Errorf("got %+v", p)
	}
}

func TestDecoder_UnparseableRecordIsSkipped(t *testing.T) {
	d := newTestDecoder()

	events := d.Feed([]byte("data: {not json}\ndata: {\"progress\":80,\"message\":\"ok\"}\n\n"))
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1 (bad record skipped)", len(events))
	}
	if d.Skipped() != 1 {
		t.Errorf("skipped = %d, want 1", d.Skipped())
	}
}

func TestDecoder_ErrorEventAfterPartialFragment(t *testing.T) {
	d := newTestDecoder()

	if events := d.Feed([]byte("data: {\"error\":\"Channel not")); len(events) != 0 {
		t.Fatalf("got %d events from fragment, want 0", len(events))
	}

	events := d.Feed([]byte(" found: @ghost\"}\n\n"))
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	f, ok := events[0].(Failure)
	if !ok {
		t.Fatalf("got %T, want Failure", events[0])
	}
	if f.Message != "Channel not found: @ghost" {
		t.Errorf("error message = %q", f.Message)
	}
}

func TestDecoder_DataEventCarriesDataset(t *testing.T) {
	d := newTestDecoder()

	payload := "data: {\"data\":{\"channelId\":\"@veritasium\",\"channelUrl\":\"https://www.youtube.com/@veritasium\",\"downloadDate\":\"2026-01-02T15:04:05Z\",\"videoCount\":1,\"videos\":[{\"title\":\"a\",\"description\":\"\",\"transcript\":\"No transcript available\",\"duration\":60,\"releaseDate\":\"2026-01-01T00:00:00Z\",\"viewCount\":1,\"likeCount\":0,\"commentCount\":0,\"videoUrl\":\"https://www.youtube.com/watch?v=x\"}]}}\n\n"
	events := d.Feed([]byte(payload))
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	c, ok := events[0].(Complete)
	if !ok {
		t.Fatalf("got %T, want Complete", events[0])
	}
	if c.Dataset.ChannelID != "@veritasium" || c.Dataset.VideoCount != 1 {
		t.Errorf("dataset = %+v", c.Dataset)
	}
}

func TestDecoder_NonDataLinesIgnored(t *testing.T) {
	d := newTestDecoder()
	events := d.Feed([]byte(": comment\n\ndata: {\"progress\":5,\"message\":\"m\"}\n\n"))
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if d.Skipped() != 0 {
		t.Errorf("skipped = %d, want 0 (non-data lines are not records)", d.Skipped())
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	ds := &model.ChannelDataset{ChannelID: "@x", VideoCount: 0, Videos: []model.VideoRecord{}}
	cases := []Event{
		Progress{Percent: 42, Message: "Processing"},
		Failure{Message: "boom"},
		Complete{Dataset: ds},
	}

	for _, ev := range cases {
		b, err := Encode(ev)
		if err != nil {
			t.Fatalf("encode %T: %v", ev, err)
		}
		d := newTestDecoder()
		events := d.Feed(b)
		if len(events) != 1 {
			t.Fatalf("decode %T: got %d events", ev, len(events))
		}
		switch want := ev.(type) {
		case Progress:
			got := events[0].(Progress)
			if got != want {
				t.Errorf("got %+v, want %+v", got, want)
			}
		case Failure:
			got := events[0].(Failure)
			if got != want {
				t.Errorf("got %+v, want %+v", got, want)
			}
		case Complete:
			got := events[0].(Complete)
			if got.Dataset.ChannelID != want.Dataset.ChannelID {
				t.Errorf("got %+v, want %+v", got.Dataset, want.Dataset)
			}
		}
	}
}
