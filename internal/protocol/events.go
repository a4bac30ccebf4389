package protocol

import (
	"encoding/json"

	"github.com/privacall/privacall/internal/domain"
)

// Inbound event names.
const (
	EvCreateRoom         = "create-room"
	EvRequestJoin        = "request-join"
	EvApproveJoin        = "approve-join"
	EvRejectJoin         = "reject-join"
	EvVoteEndCall        = "vote-end-call"
	EvRequestModeChange  = "request-mode-change"
	EvVoteModeChange     = "vote-mode-change"
	EvSendMessage        = "send-message"
	EvWebRTCOffer        = "webrtc-offer"
	EvWebRTCAnswer       = "webrtc-answer"
	EvWebRTCICECandidate = "webrtc-ice-candidate"
	EvPing               = "ping"
)

// Outbound event names.
const (
	EvRoomCreated          = "room-created"
	EvJoinRequestSent      = "join-request-sent"
	EvJoinRequest          = "join-request"
	EvJoinApprovalProgress = "join-approval-progress"
	EvJoinApproved         = "join-approved"
	EvJoinRejected         = "join-rejected"
	EvJoinRequestRejected  = "join-request-rejected"
	EvParticipantJoined    = "participant-joined"
	EvParticipantLeft      = "participant-left"
	EvEndCallVoteUpdate    = "end-call-vote-update"
	EvCallEnded            = "call-ended"
	EvModeChangeVote       = "mode-change-vote"
	EvModeChangeVoteUpdate = "mode-change-vote-update"
	EvModeChanged          = "mode-changed"
	EvModeChangeRejected   = "mode-change-rejected"
	EvNewMessage           = "new-message"
	EvError                = "error"
	EvPong                 = "pong"
)

// Inbound payloads.

type CreateRoom struct {
	RoomName string `json:"roomName"`
	UserName string `json:"userName"`
}

type RequestJoin struct {
	RoomID   string `json:"roomId"`
	UserName string `json:"userName"`
}

type ApproveJoin struct {
	RoomID      string `json:"roomId"`
	RequesterID string `json:"requesterId"`
}

type RejectJoin struct {
	RoomID      string `json:"roomId"`
	RequesterID string `json:"requesterId"`
}

type VoteEndCall struct {
	RoomID string `json:"roomId"`
}

type RequestModeChange struct {
	RoomID  string `json:"roomId"`
	NewMode string `json:"newMode"`
}

type VoteModeChange struct {
	RoomID  string `json:"roomId"`
	VoteID  string `json:"voteId"`
	Approve bool   `json:"approve"`
}

type SendMessage struct {
	RoomID  string `json:"roomId"`
	Message string `json:"message"`
}

// Signal carries an opaque peer-negotiation payload. The core never
// inspects Payload.
type Signal struct {
	RoomID   string          `json:"roomId"`
	TargetID string          `json:"targetId"`
	Payload  json.RawMessage `json:"payload"`
}

// Outbound payloads.

type RoomCreated struct {
	RoomID domain.RoomID       `json:"roomId"`
	Room   domain.RoomSnapshot `json:"room"`
}

type JoinRequestSent struct {
	RoomID domain.RoomID `json:"roomId"`
}

type JoinRequestNotice struct {
	RequesterID      domain.EndpointID `json:"requesterId"`
	RequesterName    string            `json:"requesterName"`
	ParticipantCount int               `json:"participantCount"`
}

type JoinApprovalProgress struct {
	RequesterID domain.EndpointID `json:"requesterId"`
	Approvals   int               `json:"approvals"`
	Required    int               `json:"required"`
}

type JoinApproved struct {
	RoomID      domain.RoomID       `json:"roomId"`
	Room        domain.RoomSnapshot `json:"room"`
	Participant domain.Participant  `json:"participant"`
}

type JoinRejected struct {
	RoomID domain.RoomID `json:"roomId"`
}

type JoinRequestRejected struct {
	RequesterID domain.EndpointID `json:"requesterId"`
}

type ParticipantJoined struct {
	Participant domain.Participant  `json:"participant"`
	Room        domain.RoomSnapshot `json:"room"`
}

type ParticipantLeft struct {
	ParticipantID domain.EndpointID   `json:"participantId"`
	Room          domain.RoomSnapshot `json:"room"`
}

type EndCallVoteUpdate struct {
	Votes    int                 `json:"votes"`
	Required int                 `json:"required"`
	Voters   []domain.EndpointID `json:"voters"`
}

type CallEnded struct {
	Reason string `json:"reason"`
}

type ModeChangeVoteNotice struct {
	VoteID    string            `json:"voteId"`
	NewMode   domain.Mode       `json:"newMode"`
	Initiator domain.EndpointID `json:"initiator"`
	Votes     int               `json:"votes"`
	Required  int               `json:"required"`
}

type ModeChangeVoteUpdate struct {
	VoteID   string `json:"voteId"`
	Votes    int    `json:"votes"`
	Required int    `json:"required"`
}

type ModeChanged struct {
	NewMode domain.Mode `json:"newMode"`
}

type ModeChangeRejected struct {
	VoteID string `json:"voteId"`
}

type NewMessage struct {
	SenderID   domain.EndpointID `json:"senderId"`
	SenderName string            `json:"senderName"`
	Message    string            `json:"message"`
	Timestamp  int64             `json:"timestamp"`
}

// SignalEcho is the relayed form of Signal delivered to the target.
type SignalEcho struct {
	SenderID domain.EndpointID `json:"senderId"`
	Payload  json.RawMessage   `json:"payload"`
}

type ErrorReply struct {
	Message string `json:"message"`
}
