package core

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/privacall/privacall/internal/domain"
)

func TestVoteEnd_TallyAndUnanimity(t *testing.T) {
	req := require.New(t)
	r := newTestRoom()
	addMember(t, r, "bob", "Bob")
	addMember(t, r, "carol", "Carol")

	ta := r.VoteEnd("alice")
	req.True(ta.Counted)
	req.False(ta.Ended)
	req.Equal(1, ta.Votes)
	req.Equal(3, ta.Required)

	tb := r.VoteEnd("bob")
	req.Equal(2, tb.Votes)
	req.False(tb.Ended)
	req.ElementsMatch([]domain.EndpointID{"alice", "bob"}, tb.Voters)

	tc := r.VoteEnd("carol")
	req.True(tc.Ended)
	req.False(tc.Lone)
	req.Equal(3, tc.Votes)
}

func TestVoteEnd_Idempotent(t *testing.T) {
	req := require.New(t)
	r := newTestRoom()
	addMember(t, r, "bob", "Bob")

	r.VoteEnd("alice")
	again := r.VoteEnd("alice")
	req.Equal(1, again.Votes)
	req.False(again.Ended)
}

func TestVoteEnd_NonMemberIgnored(t *testing.T) {
	req := require.New(t)
	r := newTestRoom()
	addMember(t, r, "bob", "Bob")

	req.False(r.VoteEnd("mallory").Counted)
}

func TestVoteEnd_LoneParticipantEndsInstantly(t *testing.T) {
	req := require.New(t)
	r := newTestRoom()

	ta := r.VoteEnd("alice")
	req.True(ta.Counted)
	req.True(ta.Ended)
	req.True(ta.Lone)
	req.Equal(1, ta.Votes)
	req.Equal(1, ta.Required)
}

func TestProposeMode_SameModeIsNoop(t *testing.T) {
	req := require.New(t)
	r := newTestRoom()
	addMember(t, r, "bob", "Bob")

	p := r.ProposeMode("alice", domain.ModeVideo)
	req.True(p.SameMode)
	req.False(p.Opened)
	req.Equal(domain.ModeVideo, r.Snapshot().Mode)
}

func TestProposeMode_LoneParticipantSwitchesImmediately(t *testing.T) {
	req := require.New(t)
	r := newTestRoom()

	p := r.ProposeMode("alice", domain.ModeAudio)
	req.True(p.Applied)
	req.False(p.Opened)
	req.Equal(domain.ModeAudio, r.Snapshot().Mode)
}

func TestProposeMode_OpensBallotWithInitiatorCounted(t *testing.T) {
	req := require.New(t)
	r := newTestRoom()
	addMember(t, r, "bob", "Bob")

	p := r.ProposeMode("alice", domain.ModeText)
	req.True(p.Opened)
	req.NotEmpty(p.VoteID)
	req.Equal(1, p.Votes)
	req.Equal(2, p.Required)
	req.Equal(domain.ModeVideo, r.Snapshot().Mode)
}

func TestCastModeVote_UnanimityAppliesMode(t *testing.T) {
	req := require.New(t)
	r := newTestRoom()
	addMember(t, r, "bob", "Bob")
	addMember(t, r, "carol", "Carol")

	p := r.ProposeMode("alice", domain.ModeAudio)

	v := r.CastModeVote("bob", p.VoteID, true)
	req.True(v.Counted)
	req.False(v.Changed)
	req.Equal(2, v.Votes)
	req.Equal(3, v.Required)

	v = r.CastModeVote("carol", p.VoteID, true)
	req.True(v.Changed)
	req.Equal(domain.ModeAudio, r.Snapshot().Mode)

	// Ballot is gone once resolved.
	req.False(r.CastModeVote("bob", p.VoteID, true).Counted)
}

func TestCastModeVote_SingleDissentVetoes(t *testing.T) {
	req := require.New(t)
	r := newTestRoom()
	addMember(t, r, "bob", "Bob")
	addMember(t, r, "carol", "Carol")

	p := r.ProposeMode("alice", domain.ModeAudio)
	r.CastModeVote("bob", p.VoteID, true)

	v := r.CastModeVote("carol", p.VoteID, false)
	req.True(v.Rejected)
	req.Equal(domain.ModeVideo, r.Snapshot().Mode)
	req.False(r.CastModeVote("alice", p.VoteID, true).Counted)
}

func TestCastModeVote_ConcurrentBallotsAreIndependent(t *testing.T) {
	req := require.New(t)
	r := newTestRoom()
	addMember(t, r, "bob", "Bob")

	pa := r.ProposeMode("alice", domain.ModeAudio)
	pt := r.ProposeMode("bob", domain.ModeText)
	req.NotEqual(pa.VoteID, pt.VoteID)

	v := r.CastModeVote("bob", pa.VoteID, false)
	req.True(v.Rejected)

	// The other ballot still resolves on its own.
	v = r.CastModeVote("alice", pt.VoteID, true)
	req.True(v.Changed)
	req.Equal(domain.ModeText, r.Snapshot().Mode)
}

func TestRemoveParticipant_CompletesEndCallVote(t *testing.T) {
	req := require.New(t)
	r := newTestRoom()
	addMember(t, r, "bob", "Bob")
	addMember(t, r, "carol", "Carol")

	r.VoteEnd("alice")
	r.VoteEnd("bob")

	// Carol never voted; her departure satisfies unanimity.
	rem := r.RemoveParticipant("carol")
	req.True(rem.Removed)
	req.True(rem.Ended)
}

func TestRemoveParticipant_CompletesModeBallot(t *testing.T) {
	req := require.New(t)
	r := newTestRoom()
	addMember(t, r, "bob", "Bob")
	addMember(t, r, "carol", "Carol")

	p := r.ProposeMode("alice", domain.ModeAudio)
	r.CastModeVote("bob", p.VoteID, true)

	rem := r.RemoveParticipant("carol")
	req.Len(rem.ModeChanges, 1)
	req.Equal(domain.ModeAudio, rem.ModeChanges[0].Mode)
	req.Equal(domain.ModeAudio, r.Snapshot().Mode)
}

func TestRemoveParticipant_PurgesVoterEverywhere(t *testing.T) {
	req := require.New(t)
	r := newTestRoom()
	addMember(t, r, "bob", "Bob")
	addMember(t, r, "carol", "Carol")

	r.VoteEnd("alice")
	p := r.ProposeMode("alice", domain.ModeAudio)

	// The sole voter leaving must not trip any ballot.
	rem := r.RemoveParticipant("alice")
	req.True(rem.Removed)
	req.False(rem.Ended)
	req.Empty(rem.ModeChanges)
	req.Equal(2, rem.Room.ParticipantCount)

	// Ballot survives, now needing both remaining participants.
	v := r.CastModeVote("bob", p.VoteID, true)
	req.True(v.Counted)
	req.False(v.Changed)
	v = r.CastModeVote("carol", p.VoteID, true)
	req.True(v.Changed)
}
