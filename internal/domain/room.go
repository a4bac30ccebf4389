// Package domain contains entity without logic, just meta-data
package domain

import "errors"

type (
	RoomID string
	Mode   string
)

const (
	ModeVideo Mode = "video"
	ModeAudio Mode = "audio"
	ModeText  Mode = "text"
)

var ErrUnknownMode = errors.New("unknown mode")

// ParseMode validates a client-supplied mode string.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeVideo, ModeAudio, ModeText:
		return Mode(s), nil
	}
	return "", ErrUnknownMode
}

// Participant is a room member. IsCreator is informational only and
// grants no extra weight in any vote.
type Participant struct {
	ID        EndpointID `json:"id"`
	Name      string     `json:"name"`
	IsCreator bool       `json:"isCreator"`
}

// RoomSnapshot is the read-only room view sent to clients.
// Vote-tracking state never appears here.
type RoomSnapshot struct {
	ID               RoomID        `json:"id"`
	Name             string        `json:"name"`
	Mode             Mode          `json:"mode"`
	Participants     []Participant `json:"participants"`
	ParticipantCount int           `json:"participantCount"`
}
