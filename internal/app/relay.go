package app

import (
	"github.com/rs/zerolog/log"

	"github.com/privacall/privacall/internal/domain"
	"github.com/privacall/privacall/internal/protocol"
)

// Relay delivers encoded events over the registry's connections. It
// never queues or retries: an offline target or a full send buffer
// means the frame is dropped.
type Relay struct {
	reg *Registry
}

func NewRelay(reg *Registry) *Relay {
	return &Relay{reg: reg}
}

func (d *Relay) Unicast(id domain.EndpointID, event string, payload any) {
	frame, err := protocol.Encode(event, payload)
	if err != nil {
		log.Error().Err(err).Str("module", "app.relay").Str("event", event).Msg("encode")
		return
	}
	conn, ok := d.reg.Conn(id)
	if !ok {
		log.Debug().Str("module", "app.relay").Str("endpoint", string(id)).Str("event", event).Msg("target offline, dropped")
		return
	}
	if err := conn.TrySend(frame); err != nil {
		log.Warn().Err(err).Str("module", "app.relay").Str("endpoint", string(id)).Str("event", event).Msg("unicast dropped")
	}
}

func (d *Relay) Broadcast(roomID domain.RoomID, event string, payload any) {
	d.BroadcastExcept(roomID, "", event, payload)
}

// BroadcastExcept fans out to every endpoint in the room except one.
// An empty except id excludes nobody.
func (d *Relay) BroadcastExcept(roomID domain.RoomID, except domain.EndpointID, event string, payload any) {
	frame, err := protocol.Encode(event, payload)
	if err != nil {
		log.Error().Err(err).Str("module", "app.relay").Str("event", event).Msg("encode")
		return
	}
	for _, m := range d.reg.MembersOf(roomID) {
		if m.ID == except {
			continue
		}
		if err := m.Conn.TrySend(frame); err != nil {
			log.Warn().Err(err).Str("module", "app.relay").Str("endpoint", string(m.ID)).Str("event", event).Msg("broadcast dropped")
		}
	}
}
