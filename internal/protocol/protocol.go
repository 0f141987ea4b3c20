// Package protocol defines the duel channel's wire format: JSON text frames
// of the form {"event": "...", "data": {...}}.
package protocol

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Event names a frame on the duel channel
type Event string

const (
	// EventAutoJoinOrCreate asks the matchmaker for a duel (client to server)
	EventAutoJoinOrCreate Event = "auto-join-or-create"

	// EventSessionCreated tells the caller a new session is waiting (server to caller)
	EventSessionCreated Event = "session-created"

	// EventSessionUpdated carries the session after a change (server to room)
	EventSessionUpdated Event = "session-updated"

	// EventCancelSession abandons a session (client to server)
	EventCancelSession Event = "cancel-session"

	// EventSessionCancelled tells the room the duel was aborted (server to room)
	EventSessionCancelled Event = "session-cancelled"

	// EventRollResults carries the authoritative roll (server to room)
	EventRollResults Event = "roll-results"

	// EventUpdateResultIndicator is a manual pairing override (client to server, relayed)
	EventUpdateResultIndicator Event = "update-result-indicator"

	// EventRerollDie asks for a die to be rerolled (client to server)
	EventRerollDie Event = "reroll-die"

	// EventDieRerolled carries a committed reroll (server to room)
	EventDieRerolled Event = "die-rerolled"

	// EventSuccessAssignmentUpdated moves a success token (client to server, relayed)
	EventSuccessAssignmentUpdated Event = "success-assignment-updated"

	// EventAcceptanceStateUpdated flips a side's acceptance (client to server, relayed)
	EventAcceptanceStateUpdated Event = "acceptance-state-updated"

	// EventError reports a frame the server could not read (server to caller)
	EventError Event = "error"
)

// ErrEmptyEvent is returned when a frame has no event name
var ErrEmptyEvent = errors.New("frame has no event")

// Envelope is one frame on the channel
type Envelope struct {
	Event Event           `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// NewEnvelope marshals payload into a frame. The payload is copied at this
// point so later changes to it are not sent.
func NewEnvelope(event Event, payload any) (*Envelope, error) {
	env := &Envelope{Event: event}
	if payload == nil {
		return env, nil
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s payload: %w", event, err)
	}
	env.Data = data
	return env, nil
}

// MustEnvelope is NewEnvelope for payloads that always marshal
func MustEnvelope(event Event, payload any) *Envelope {
	env, err := NewEnvelope(event, payload)
	if err != nil {
		panic(err)
	}
	return env
}

// Decode unmarshals the frame's data into v
func (e *Envelope) Decode(v any) error {
	if len(e.Data) == 0 {
		return fmt.Errorf("%s frame has no data", e.Event)
	}
	if err := json.Unmarshal(e.Data, v); err != nil {
		return fmt.Errorf("failed to decode %s payload: %w", e.Event, err)
	}
	return nil
}

// Marshal encodes the whole frame
func (e *Envelope) Marshal() ([]byte, error) {
	return json.Marshal(e)
}

// Parse decodes a raw frame
func Parse(raw []byte) (*Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("failed to parse frame: %w", err)
	}
	if env.Event == "" {
		return nil, ErrEmptyEvent
	}
	return &env, nil
}
