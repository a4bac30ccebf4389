package core

import (
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/privacall/privacall/internal/domain"
)

var (
	ErrAlreadyMember    = errors.New("already in room")
	ErrDuplicateRequest = errors.New("join request already pending")
)

// JoinRequest is a pending admission request. At most one exists per
// requester. The timestamp is retained for a possible expiry policy;
// none is enforced today.
type JoinRequest struct {
	RequesterID   domain.EndpointID
	RequesterName string
	CreatedAt     time.Time
	approvals     map[domain.EndpointID]struct{}
}

// JoinAsk reports a freshly registered join request. ParticipantCount
// is the approval target at request time; it is re-evaluated on every
// approval, so it is informational only.
type JoinAsk struct {
	ParticipantCount int
}

func (r *Room) RequestJoin(requesterID domain.EndpointID, requesterName string) (JoinAsk, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.isParticipantLocked(requesterID) {
		return JoinAsk{}, ErrAlreadyMember
	}
	if _, ok := r.joinRequests[requesterID]; ok {
		return JoinAsk{}, ErrDuplicateRequest
	}

	r.joinRequests[requesterID] = &JoinRequest{
		RequesterID:   requesterID,
		RequesterName: requesterName,
		CreatedAt:     time.Now(),
		approvals:     make(map[domain.EndpointID]struct{}),
	}
	log.Info().Str("module", "core.room").Str("room", string(r.id)).Str("requester", string(requesterID)).Msg("join requested")
	return JoinAsk{ParticipantCount: len(r.participants)}, nil
}

// Admission is the outcome of one approval. The zero value means the
// approval did not count (unknown request or non-member approver).
type Admission struct {
	Counted     bool
	Admitted    bool
	Participant domain.Participant
	Approvals   int
	Required    int
	Room        domain.RoomSnapshot
}

// ApproveJoin records one approval. Re-approving is idempotent.
// Admission triggers the moment the approval set covers the current
// participant count.
func (r *Room) ApproveJoin(approverID, requesterID domain.EndpointID) Admission {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.isParticipantLocked(approverID) {
		return Admission{}
	}
	req, ok := r.joinRequests[requesterID]
	if !ok {
		return Admission{}
	}

	req.approvals[approverID] = struct{}{}

	if len(req.approvals) >= len(r.participants) {
		p := r.admitLocked(req)
		log.Info().Str("module", "core.room").Str("room", string(r.id)).Str("participant", string(p.ID)).Msg("admitted")
		return Admission{
			Counted:     true,
			Admitted:    true,
			Participant: p,
			Room:        r.snapshotLocked(),
		}
	}
	return Admission{
		Counted:   true,
		Approvals: len(req.approvals),
		Required:  len(r.participants),
	}
}

func (r *Room) admitLocked(req *JoinRequest) domain.Participant {
	p := domain.Participant{ID: req.RequesterID, Name: req.RequesterName}
	r.participants = append(r.participants, p)
	delete(r.joinRequests, req.RequesterID)
	return p
}

// RejectJoin removes a pending request on a single dissent. Any one
// current participant suffices; prior approvals are discarded.
func (r *Room) RejectJoin(rejecterID, requesterID domain.EndpointID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.isParticipantLocked(rejecterID) {
		return false
	}
	if _, ok := r.joinRequests[requesterID]; !ok {
		return false
	}
	delete(r.joinRequests, requesterID)
	log.Info().Str("module", "core.room").Str("room", string(r.id)).Str("requester", string(requesterID)).Msg("join rejected")
	return true
}

// AbandonJoin silently discards the requester's pending request, if
// any. Used when the requester disconnects before resolution.
func (r *Room) AbandonJoin(requesterID domain.EndpointID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.joinRequests[requesterID]; !ok {
		return false
	}
	delete(r.joinRequests, requesterID)
	return true
}
