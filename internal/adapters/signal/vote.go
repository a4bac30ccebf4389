package signal

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/privacall/privacall/internal/domain"
	"github.com/privacall/privacall/internal/protocol"
)

func (ctl *Controller) handleVoteEndCall(eid domain.EndpointID, data json.RawMessage) {
	var p protocol.VoteEndCall
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad vote-end-call payload")
		return
	}
	ctl.Orch.VoteEndCall(eid, domain.RoomID(p.RoomID))
}

func (ctl *Controller) handleRequestModeChange(eid domain.EndpointID, data json.RawMessage) {
	var p protocol.RequestModeChange
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad request-mode-change payload")
		return
	}
	ctl.Orch.RequestModeChange(eid, domain.RoomID(p.RoomID), p.NewMode)
}

func (ctl *Controller) handleVoteModeChange(eid domain.EndpointID, data json.RawMessage) {
	var p protocol.VoteModeChange
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad vote-mode-change payload")
		return
	}
	ctl.Orch.VoteModeChange(eid, domain.RoomID(p.RoomID), p.VoteID, p.Approve)
}
