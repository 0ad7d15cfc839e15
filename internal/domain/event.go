package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Event types sent by the recorder. Only the two stream-start variants
// trigger a notification; everything else is acknowledged and ignored.
const (
	EventTypeStreamStarted  = "StreamStarted"
	EventTypeSessionStarted = "SessionStarted"
)

// ErrDecode wraps any failure to parse a webhook payload.
var ErrDecode = errors.New("invalid event payload")

// Event is a webhook payload from the recorder. The wire uses the
// recorder's PascalCase field names.
type Event struct {
	EventType      string    `json:"EventType"`
	EventTimestamp string    `json:"EventTimestamp"`
	EventID        string    `json:"EventId"`
	EventData      EventData `json:"EventData"`
}

// EventData is the room snapshot nested in every event.
type EventData struct {
	RoomID           int64  `json:"RoomId"`
	ShortID          int64  `json:"ShortId"`
	Name             string `json:"Name"`
	Title            string `json:"Title"`
	AreaNameParent   string `json:"AreaNameParent"`
	AreaNameChild    string `json:"AreaNameChild"`
	Recording        bool   `json:"Recording"`
	Streaming        bool   `json:"Streaming"`
	DanmakuConnected bool   `json:"DanmakuConnected"`
}

// eventWire mirrors Event with pointers on the fields that must be present.
// encoding/json leaves absent fields at their zero value, so presence can
// only be told apart from an explicit zero through a pointer.
type eventWire struct {
	EventType      *string        `json:"EventType"`
	EventTimestamp string         `json:"EventTimestamp"`
	EventID        string         `json:"EventId"`
	EventData      *eventDataWire `json:"EventData"`
}

type eventDataWire struct {
	RoomID           *int64 `json:"RoomId"`
	ShortID          int64  `json:"ShortId"`
	Name             string `json:"Name"`
	Title            string `json:"Title"`
	AreaNameParent   string `json:"AreaNameParent"`
	AreaNameChild    string `json:"AreaNameChild"`
	Recording        bool   `json:"Recording"`
	Streaming        bool   `json:"Streaming"`
	DanmakuConnected bool   `json:"DanmakuConnected"`
}

// IsStreamStart reports whether the event marks the start of a live stream.
func (e *Event) IsStreamStart() bool {
	return e.EventType == EventTypeStreamStarted || e.EventType == EventTypeSessionStarted
}

// DecodeEvent parses a raw webhook body into an Event. Unknown fields are
// ignored. A type mismatch, or a truly absent event type, event data or
// room ID, is a decode failure; explicitly present zero values pass — the
// decoder checks structure, not plausibility. The returned error carries
// the parser's diagnostic.
func DecodeEvent(body []byte) (*Event, error) {
	var wire eventWire
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	switch {
	case wire.EventType == nil:
		return nil, fmt.Errorf("%w: missing field EventType", ErrDecode)
	case wire.EventData == nil:
		return nil, fmt.Errorf("%w: missing field EventData", ErrDecode)
	case wire.EventData.RoomID == nil:
		return nil, fmt.Errorf("%w: missing field EventData.RoomId", ErrDecode)
	}

	return &Event{
		EventType:      *wire.EventType,
		EventTimestamp: wire.EventTimestamp,
		EventID:        wire.EventID,
		EventData: EventData{
			RoomID:           *wire.EventData.RoomID,
			ShortID:          wire.EventData.ShortID,
			Name:             wire.EventData.Name,
			Title:            wire.EventData.Title,
			AreaNameParent:   wire.EventData.AreaNameParent,
			AreaNameChild:    wire.EventData.AreaNameChild,
			Recording:        wire.EventData.Recording,
			Streaming:        wire.EventData.Streaming,
			DanmakuConnected: wire.EventData.DanmakuConnected,
		},
	}, nil
}

// DispatchOutcome describes how an event was handled.
type DispatchOutcome string

const (
	// OutcomeDispatched means a desktop notification was delivered.
	OutcomeDispatched DispatchOutcome = "dispatched"
	// OutcomeSkipped means the event type is not a stream start.
	OutcomeSkipped DispatchOutcome = "skipped"
	// OutcomeFiltered means the room is not in the configured allow list.
	OutcomeFiltered DispatchOutcome = "filtered"
)
