// Package orch wires inbound endpoint events to room state transitions
// and the resulting notifications. Cross-endpoint coordination happens
// only through notifications; nothing here blocks on another endpoint.
package orch

import (
	"github.com/rs/zerolog/log"

	"github.com/privacall/privacall/internal/app"
	"github.com/privacall/privacall/internal/core"
	"github.com/privacall/privacall/internal/domain"
	"github.com/privacall/privacall/internal/protocol"
)

type Orchestrator struct {
	Registry *app.Registry
	Rooms    *app.RoomStore
	Relay    *app.Relay
}

func (o *Orchestrator) CreateRoom(eid domain.EndpointID, roomName, userName string) {
	room := o.Rooms.Create(roomName, eid, userName)
	o.Registry.SetRoom(eid, room.ID(), userName)
	o.Relay.Unicast(eid, protocol.EvRoomCreated, protocol.RoomCreated{
		RoomID: room.ID(),
		Room:   room.Snapshot(),
	})
}

func (o *Orchestrator) replyError(eid domain.EndpointID, msg string) {
	o.Relay.Unicast(eid, protocol.EvError, protocol.ErrorReply{Message: msg})
}

// OnDisconnect handles abrupt endpoint loss: abandoned join requests,
// membership removal with stale-vote purging, room destruction when
// the last participant leaves, and the re-checks a smaller denominator
// can trigger.
func (o *Orchestrator) OnDisconnect(eid domain.EndpointID) {
	roomID, _, inRoom := o.Registry.Identity(eid)
	o.Registry.Unbind(eid)

	for _, room := range o.Rooms.All() {
		room.AbandonJoin(eid)
	}

	if !inRoom {
		return
	}
	o.removeFromRoom(roomID, eid)
}

// removeFromRoom drops a participant from room state and applies the
// fallout: room destruction when empty, and the end-call, mode-change,
// and admission re-checks a smaller denominator can complete.
func (o *Orchestrator) removeFromRoom(roomID domain.RoomID, eid domain.EndpointID) {
	room, ok := o.Rooms.Get(roomID)
	if !ok {
		return
	}

	rem := room.RemoveParticipant(eid)
	if !rem.Removed {
		return
	}
	if rem.Empty {
		o.Rooms.Delete(roomID)
		return
	}

	o.Relay.Broadcast(roomID, protocol.EvParticipantLeft, protocol.ParticipantLeft{
		ParticipantID: eid,
		Room:          rem.Room,
	})

	if rem.Ended {
		o.endCall(roomID, room)
		return
	}
	for _, mc := range rem.ModeChanges {
		o.Relay.Broadcast(roomID, protocol.EvModeChanged, protocol.ModeChanged{NewMode: mc.Mode})
	}
	for _, adm := range rem.Admissions {
		o.admit(roomID, adm)
	}
}

// endCall broadcasts the termination and then tears the room down,
// clearing every participant's registry association.
func (o *Orchestrator) endCall(roomID domain.RoomID, room *core.Room) {
	o.Relay.Broadcast(roomID, protocol.EvCallEnded, protocol.CallEnded{Reason: "unanimous-vote"})
	for _, p := range room.Snapshot().Participants {
		o.Registry.ClearRoom(p.ID)
	}
	o.Rooms.Delete(roomID)
	log.Info().Str("module", "orch").Str("room", string(roomID)).Msg("call ended by unanimous vote")
}

// admit finalizes an admission: registry binding first so the new
// member receives the room broadcast too. The member is committed to
// room state before the binding, so a requester whose disconnect was
// handled in between is already unbound here; undo the admission then,
// or the room keeps a voterless participant no tally can ever satisfy.
func (o *Orchestrator) admit(roomID domain.RoomID, adm core.Admission) {
	if !o.Registry.SetRoom(adm.Participant.ID, roomID, adm.Participant.Name) {
		log.Warn().Str("module", "orch").
			Str("room", string(roomID)).
			Str("endpoint", string(adm.Participant.ID)).
			Msg("admitted endpoint already disconnected, removing")
		o.removeFromRoom(roomID, adm.Participant.ID)
		return
	}
	o.Relay.Unicast(adm.Participant.ID, protocol.EvJoinApproved, protocol.JoinApproved{
		RoomID:      roomID,
		Room:        adm.Room,
		Participant: adm.Participant,
	})
	o.Relay.Broadcast(roomID, protocol.EvParticipantJoined, protocol.ParticipantJoined{
		Participant: adm.Participant,
		Room:        adm.Room,
	})
}
