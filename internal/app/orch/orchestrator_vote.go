package orch

import (
	"github.com/privacall/privacall/internal/domain"
	"github.com/privacall/privacall/internal/protocol"
)

func (o *Orchestrator) VoteEndCall(eid domain.EndpointID, roomID domain.RoomID) {
	room, ok := o.Rooms.Get(roomID)
	if !ok {
		return
	}

	t := room.VoteEnd(eid)
	if !t.Counted {
		return
	}
	// A lone participant terminates instantly, no tally round.
	if !t.Lone {
		o.Relay.Broadcast(roomID, protocol.EvEndCallVoteUpdate, protocol.EndCallVoteUpdate{
			Votes:    t.Votes,
			Required: t.Required,
			Voters:   t.Voters,
		})
	}
	if t.Ended {
		o.endCall(roomID, room)
	}
}

func (o *Orchestrator) RequestModeChange(eid domain.EndpointID, roomID domain.RoomID, newMode string) {
	room, ok := o.Rooms.Get(roomID)
	if !ok {
		return
	}
	mode, err := domain.ParseMode(newMode)
	if err != nil {
		o.replyError(eid, "Unknown mode")
		return
	}

	p := room.ProposeMode(eid, mode)
	switch {
	case p.SameMode:
		// Already in that mode; tell the initiator only.
		o.Relay.Unicast(eid, protocol.EvModeChanged, protocol.ModeChanged{NewMode: mode})
	case p.Applied:
		o.Relay.Broadcast(roomID, protocol.EvModeChanged, protocol.ModeChanged{NewMode: mode})
	case p.Opened:
		// The initiator already approved implicitly and gets no prompt.
		o.Relay.BroadcastExcept(roomID, eid, protocol.EvModeChangeVote, protocol.ModeChangeVoteNotice{
			VoteID:    p.VoteID,
			NewMode:   p.Mode,
			Initiator: p.Initiator,
			Votes:     p.Votes,
			Required:  p.Required,
		})
	}
}

func (o *Orchestrator) VoteModeChange(eid domain.EndpointID, roomID domain.RoomID, voteID string, approve bool) {
	room, ok := o.Rooms.Get(roomID)
	if !ok {
		return
	}

	v := room.CastModeVote(eid, voteID, approve)
	if !v.Counted {
		return
	}
	if v.Rejected {
		o.Relay.Broadcast(roomID, protocol.EvModeChangeRejected, protocol.ModeChangeRejected{VoteID: voteID})
		return
	}
	o.Relay.Broadcast(roomID, protocol.EvModeChangeVoteUpdate, protocol.ModeChangeVoteUpdate{
		VoteID:   v.VoteID,
		Votes:    v.Votes,
		Required: v.Required,
	})
	if v.Changed {
		o.Relay.Broadcast(roomID, protocol.EvModeChanged, protocol.ModeChanged{NewMode: v.Mode})
	}
}
