package signal

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/privacall/privacall/internal/domain"
	"github.com/privacall/privacall/internal/protocol"
)

func (ctl *Controller) handleCreateRoom(eid domain.EndpointID, data json.RawMessage) {
	var p protocol.CreateRoom
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad create-room payload")
		return
	}
	ctl.Orch.CreateRoom(eid, p.RoomName, p.UserName)
}

func (ctl *Controller) handleRequestJoin(eid domain.EndpointID, data json.RawMessage) {
	var p protocol.RequestJoin
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad request-join payload")
		return
	}
	ctl.Orch.RequestJoin(eid, domain.RoomID(p.RoomID), p.UserName)
}

func (ctl *Controller) handleApproveJoin(eid domain.EndpointID, data json.RawMessage) {
	var p protocol.ApproveJoin
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad approve-join payload")
		return
	}
	ctl.Orch.ApproveJoin(eid, domain.RoomID(p.RoomID), domain.EndpointID(p.RequesterID))
}

func (ctl *Controller) handleRejectJoin(eid domain.EndpointID, data json.RawMessage) {
	var p protocol.RejectJoin
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad reject-join payload")
		return
	}
	ctl.Orch.RejectJoin(eid, domain.RoomID(p.RoomID), domain.EndpointID(p.RequesterID))
}
