package core

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/privacall/privacall/internal/domain"
)

// EndTally is the end-call ballot after one vote. Lone marks the
// single-participant shortcut, which terminates without a tally round.
type EndTally struct {
	Counted  bool
	Ended    bool
	Lone     bool
	Votes    int
	Required int
	Voters   []domain.EndpointID
}

// VoteEnd records one vote on the always-active termination ballot.
// Voting twice has no extra effect.
func (r *Room) VoteEnd(voterID domain.EndpointID) EndTally {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.isParticipantLocked(voterID) {
		return EndTally{}
	}

	if len(r.participants) == 1 {
		return EndTally{
			Counted:  true,
			Ended:    true,
			Lone:     true,
			Votes:    1,
			Required: 1,
			Voters:   []domain.EndpointID{voterID},
		}
	}

	r.endCallVotes[voterID] = struct{}{}
	t := EndTally{
		Counted:  true,
		Votes:    len(r.endCallVotes),
		Required: len(r.participants),
		Voters:   r.endVotersLocked(),
	}
	t.Ended = t.Votes >= t.Required
	return t
}

func (r *Room) endVotersLocked() []domain.EndpointID {
	voters := make([]domain.EndpointID, 0, len(r.endCallVotes))
	for id := range r.endCallVotes {
		voters = append(voters, id)
	}
	sort.Slice(voters, func(i, j int) bool { return voters[i] < voters[j] })
	return voters
}

// ModeBallot is a pending mode-change proposal. Several may coexist;
// each resolves independently.
type ModeBallot struct {
	ID          string
	Proposed    domain.Mode
	InitiatorID domain.EndpointID
	approvals   map[domain.EndpointID]struct{}
}

// ModeProposal is the result of proposing a mode change. Exactly one
// of SameMode, Applied, Opened is set when the proposer was allowed to
// act; the zero value means the proposal did not count.
type ModeProposal struct {
	SameMode  bool
	Applied   bool
	Opened    bool
	VoteID    string
	Mode      domain.Mode
	Initiator domain.EndpointID
	Votes     int
	Required  int
}

// ProposeMode opens a mode-change ballot with the initiator already
// counted as an approval. A lone participant switches immediately.
func (r *Room) ProposeMode(initiatorID domain.EndpointID, mode domain.Mode) ModeProposal {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.isParticipantLocked(initiatorID) {
		return ModeProposal{}
	}
	if mode == r.mode {
		return ModeProposal{SameMode: true, Mode: mode, Initiator: initiatorID}
	}
	if len(r.participants) == 1 {
		r.mode = mode
		log.Info().Str("module", "core.room").Str("room", string(r.id)).Str("mode", string(mode)).Msg("mode changed unilaterally")
		return ModeProposal{Applied: true, Mode: mode, Initiator: initiatorID}
	}

	voteID := fmt.Sprintf("%s-%s", mode, uuid.NewString())
	r.modeBallots[voteID] = &ModeBallot{
		ID:          voteID,
		Proposed:    mode,
		InitiatorID: initiatorID,
		approvals:   map[domain.EndpointID]struct{}{initiatorID: {}},
	}
	return ModeProposal{
		Opened:    true,
		VoteID:    voteID,
		Mode:      mode,
		Initiator: initiatorID,
		Votes:     1,
		Required:  len(r.participants),
	}
}

// ModeVote is the outcome of one vote on a mode-change ballot.
type ModeVote struct {
	Counted  bool
	Rejected bool
	Changed  bool
	VoteID   string
	Mode     domain.Mode
	Votes    int
	Required int
}

// CastModeVote counts one vote. A single dissent discards the ballot;
// unanimity of the current participants applies the mode.
func (r *Room) CastModeVote(voterID domain.EndpointID, voteID string, approve bool) ModeVote {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.isParticipantLocked(voterID) {
		return ModeVote{}
	}
	b, ok := r.modeBallots[voteID]
	if !ok {
		return ModeVote{}
	}

	if !approve {
		delete(r.modeBallots, voteID)
		return ModeVote{Counted: true, Rejected: true, VoteID: voteID, Mode: b.Proposed}
	}

	b.approvals[voterID] = struct{}{}
	v := ModeVote{
		Counted:  true,
		VoteID:   voteID,
		Mode:     b.Proposed,
		Votes:    len(b.approvals),
		Required: len(r.participants),
	}
	if v.Votes >= v.Required {
		r.mode = b.Proposed
		delete(r.modeBallots, voteID)
		v.Changed = true
		log.Info().Str("module", "core.room").Str("room", string(r.id)).Str("mode", string(b.Proposed)).Msg("mode changed by unanimous vote")
	}
	return v
}
