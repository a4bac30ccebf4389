package signal

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/privacall/privacall/internal/domain"
	"github.com/privacall/privacall/internal/protocol"
)

func (ctl *Controller) handleSendMessage(eid domain.EndpointID, data json.RawMessage) {
	var p protocol.SendMessage
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad send-message payload")
		return
	}
	ctl.Orch.SendMessage(eid, p.Message)
}

func (ctl *Controller) handleSignalRelay(eid domain.EndpointID, event string, data json.RawMessage) {
	var p protocol.Signal
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Str("event", event).Msg("bad signaling payload")
		return
	}
	if p.TargetID == "" {
		log.Warn().Str("module", "signal").Str("event", event).Msg("signaling without target")
		return
	}
	ctl.Orch.RelaySignal(eid, event, domain.EndpointID(p.TargetID), p.Payload)
}
