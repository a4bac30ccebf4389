// Package protocol defines the closed set of wire events exchanged
// with clients. Anything outside these schemas is ignored.
package protocol

import (
	"encoding/json"

	"github.com/privacall/privacall/internal/core"
)

// Envelope frames every message in both directions.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

func Decode(frame []byte) (Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(frame, &env); err != nil {
		return Envelope{}, err
	}
	return env, nil
}

func Encode(event string, payload any) (core.Frame, error) {
	env := Envelope{Event: event}
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		env.Data = data
	}
	b, err := json.Marshal(env)
	if err != nil {
		return nil, err
	}
	return core.Frame(b), nil
}
