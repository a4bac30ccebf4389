package orch

import (
	"errors"

	"github.com/privacall/privacall/internal/core"
	"github.com/privacall/privacall/internal/domain"
	"github.com/privacall/privacall/internal/protocol"
)

func (o *Orchestrator) RequestJoin(eid domain.EndpointID, roomID domain.RoomID, userName string) {
	room, ok := o.Rooms.Get(roomID)
	if !ok {
		o.replyError(eid, "Room not found")
		return
	}

	ask, err := room.RequestJoin(eid, userName)
	switch {
	case errors.Is(err, core.ErrAlreadyMember):
		o.replyError(eid, "Already in room")
		return
	case errors.Is(err, core.ErrDuplicateRequest):
		o.replyError(eid, "Join request already pending")
		return
	case err != nil:
		return
	}

	o.Relay.Broadcast(roomID, protocol.EvJoinRequest, protocol.JoinRequestNotice{
		RequesterID:      eid,
		RequesterName:    userName,
		ParticipantCount: ask.ParticipantCount,
	})
	o.Relay.Unicast(eid, protocol.EvJoinRequestSent, protocol.JoinRequestSent{RoomID: roomID})
}

func (o *Orchestrator) ApproveJoin(eid domain.EndpointID, roomID domain.RoomID, requesterID domain.EndpointID) {
	room, ok := o.Rooms.Get(roomID)
	if !ok {
		return
	}

	adm := room.ApproveJoin(eid, requesterID)
	if !adm.Counted {
		return
	}
	if adm.Admitted {
		o.admit(roomID, adm)
		return
	}
	o.Relay.Broadcast(roomID, protocol.EvJoinApprovalProgress, protocol.JoinApprovalProgress{
		RequesterID: requesterID,
		Approvals:   adm.Approvals,
		Required:    adm.Required,
	})
}

func (o *Orchestrator) RejectJoin(eid domain.EndpointID, roomID domain.RoomID, requesterID domain.EndpointID) {
	room, ok := o.Rooms.Get(roomID)
	if !ok {
		return
	}
	if !room.RejectJoin(eid, requesterID) {
		return
	}
	o.Relay.Unicast(requesterID, protocol.EvJoinRejected, protocol.JoinRejected{RoomID: roomID})
	o.Relay.Broadcast(roomID, protocol.EvJoinRequestRejected, protocol.JoinRequestRejected{RequesterID: requesterID})
}
