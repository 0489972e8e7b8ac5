// Package stream defines the ingestion progress event union and its wire
// form: server-sent event lines of the shape "data: <json>\n\n". Events are
// encoded and decoded once at the transport boundary; everything above it
// works with the typed variants.
package stream

import (
	"encoding/json"
	"fmt"

	"github.com/channelchat/channelchat-go/internal/model"
)

// Event is one unit of the ingestion stream. Exactly one terminal event
// (Failure or Complete) ends a stream; Progress events may appear any number
// of times before it.
type Event interface {
	isEvent()
}

// Progress reports how far an ingestion run has advanced, 0-100.
type Progress struct {
	Percent int
	Message string
}

// Failure is the terminal event of a failed ingestion run.
type Failure struct {
	Message string
}

// Complete is the terminal event of a successful ingestion run.
type Complete struct {
	Dataset *model.ChannelDataset
}

func (Progress) isEvent() {}
func (Failure) isEvent()  {}
func (Complete) isEvent() {}

// envelope is the wire shape shared by all three variants. Which fields are
// set determines the variant.
type envelope struct {
	Progress *int                  `json:"progress,omitempty"`
	Message  string                `json:"message,omitempty"`
	Error    *string               `json:"error,omitempty"`
	Data     *model.ChannelDataset `json:"data,omitempty"`
}

const dataPrefix = "data: "

// Encode renders an event as a single SSE record including the trailing
// blank line.
func Encode(ev Event) ([]byte, error) {
	var env envelope
	switch e := ev.(type) {
	case Progress:
		p := e.Percent
		env.Progress = &p
		env.Message = e.Message
	case Failure:
		msg := e.Message
		env.Error = &msg
	case Complete:
		env.Data = e.Dataset
	default:
		return nil, fmt.Errorf("unknown event type %T", ev)
	}

	b, err := json.Marshal(env)
	if err != nil {
		return nil, err
	}
	return append(append([]byte(dataPrefix), b...), '\n', '\n'), nil
}

// decodeRecord parses one complete "data: ..." payload into an event.
func decodeRecord(payload []byte) (Event, error) {
	var env envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return nil, err
	}

	switch {
	case env.Error != nil:
		return Failure{Message: *env.Error}, nil
	case env.Data != nil:
		return Complete{Dataset: env.Data}, nil
	case env.Progress != nil:
		return Progress{Percent: *env.Progress, Message: env.Message}, nil
	}
	return nil, fmt.Errorf("event has no recognized field")
}
