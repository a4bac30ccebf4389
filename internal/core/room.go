package core

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/privacall/privacall/internal/domain"
)

// Room is a threadsafe in-memory session aggregate. It owns the
// membership list and all pending consensus ballots; every transition
// re-checks unanimity against the current participant set, never
// against a count captured earlier.
type Room struct {
	mu           sync.Mutex
	id           domain.RoomID
	name         string
	mode         domain.Mode
	participants []domain.Participant
	joinRequests map[domain.EndpointID]*JoinRequest
	endCallVotes map[domain.EndpointID]struct{}
	modeBallots  map[string]*ModeBallot
}

func NewRoom(id domain.RoomID, name string, creatorID domain.EndpointID, creatorName string) *Room {
	return &Room{
		id:   id,
		name: name,
		mode: domain.ModeVideo,
		participants: []domain.Participant{
			{ID: creatorID, Name: creatorName, IsCreator: true},
		},
		joinRequests: make(map[domain.EndpointID]*JoinRequest),
		endCallVotes: make(map[domain.EndpointID]struct{}),
		modeBallots:  make(map[string]*ModeBallot),
	}
}

func (r *Room) ID() domain.RoomID { return r.id }

func (r *Room) MemberCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.participants)
}

func (r *Room) Snapshot() domain.RoomSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshotLocked()
}

func (r *Room) snapshotLocked() domain.RoomSnapshot {
	participants := make([]domain.Participant, len(r.participants))
	copy(participants, r.participants)
	return domain.RoomSnapshot{
		ID:               r.id,
		Name:             r.name,
		Mode:             r.mode,
		Participants:     participants,
		ParticipantCount: len(participants),
	}
}

func (r *Room) isParticipantLocked(id domain.EndpointID) bool {
	for _, p := range r.participants {
		if p.ID == id {
			return true
		}
	}
	return false
}

// ModeChange records a ballot that reached unanimity once a leaver's
// approval stopped being required.
type ModeChange struct {
	VoteID string
	Mode   domain.Mode
}

// Removal describes everything that fell out of removing one
// participant: the post-removal snapshot plus any ballots or join
// requests the smaller denominator retroactively completed.
type Removal struct {
	Removed     bool
	Empty       bool
	Room        domain.RoomSnapshot
	Ended       bool
	ModeChanges []ModeChange
	Admissions  []Admission
}

// RemoveParticipant drops the participant and purges its id from every
// vote set so no stale reference outlives the membership. It then
// re-checks every live ballot, since removing a non-voter can make an
// existing tally unanimous.
func (r *Room) RemoveParticipant(id domain.EndpointID) Removal {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.isParticipantLocked(id) {
		return Removal{}
	}

	kept := r.participants[:0]
	for _, p := range r.participants {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	r.participants = kept

	delete(r.endCallVotes, id)
	for _, b := range r.modeBallots {
		delete(b.approvals, id)
	}
	for _, req := range r.joinRequests {
		delete(req.approvals, id)
	}

	out := Removal{Removed: true}
	if len(r.participants) == 0 {
		out.Empty = true
		log.Info().Str("module", "core.room").Str("room", string(r.id)).Msg("last participant left")
		return out
	}
	out.Room = r.snapshotLocked()

	if len(r.endCallVotes) >= len(r.participants) {
		out.Ended = true
		return out
	}

	for voteID, b := range r.modeBallots {
		if len(b.approvals) >= len(r.participants) {
			r.mode = b.Proposed
			delete(r.modeBallots, voteID)
			out.ModeChanges = append(out.ModeChanges, ModeChange{VoteID: voteID, Mode: b.Proposed})
		}
	}

	pending := make([]domain.EndpointID, 0, len(r.joinRequests))
	for requesterID := range r.joinRequests {
		pending = append(pending, requesterID)
	}
	for _, requesterID := range pending {
		req := r.joinRequests[requesterID]
		if len(req.approvals) >= len(r.participants) {
			p := r.admitLocked(req)
			out.Admissions = append(out.Admissions, Admission{
				Counted:     true,
				Admitted:    true,
				Participant: p,
				Room:        r.snapshotLocked(),
			})
		}
	}

	return out
}
