package orch

import (
	"encoding/json"
	"time"

	"github.com/privacall/privacall/internal/domain"
	"github.com/privacall/privacall/internal/protocol"
)

// SendMessage broadcasts a chat line to the sender's room. Senders
// without a room association are dropped silently.
func (o *Orchestrator) SendMessage(eid domain.EndpointID, text string) {
	roomID, name, ok := o.Registry.Identity(eid)
	if !ok {
		return
	}
	o.Relay.Broadcast(roomID, protocol.EvNewMessage, protocol.NewMessage{
		SenderID:   eid,
		SenderName: name,
		Message:    text,
		Timestamp:  time.Now().UnixMilli(),
	})
}

// RelaySignal forwards an opaque peer-negotiation payload to the
// target endpoint under the same event name. No validation, no queue:
// an offline target simply misses it.
func (o *Orchestrator) RelaySignal(eid domain.EndpointID, event string, targetID domain.EndpointID, payload json.RawMessage) {
	o.Relay.Unicast(targetID, event, protocol.SignalEcho{
		SenderID: eid,
		Payload:  payload,
	})
}
