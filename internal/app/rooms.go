package app

import (
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/privacall/privacall/internal/core"
	"github.com/privacall/privacall/internal/domain"
)

// RoomStore owns every live Room aggregate. Deleting a room is total:
// all pending requests and ballots die with it.
type RoomStore struct {
	mu    sync.RWMutex
	rooms map[domain.RoomID]*core.Room
}

func NewRoomStore() *RoomStore {
	return &RoomStore{rooms: make(map[domain.RoomID]*core.Room)}
}

func (s *RoomStore) Create(name string, creatorID domain.EndpointID, creatorName string) *core.Room {
	room := core.NewRoom(domain.RoomID(uuid.NewString()), name, creatorID, creatorName)
	s.mu.Lock()
	s.rooms[room.ID()] = room
	s.mu.Unlock()
	log.Info().Str("module", "app.rooms").Str("room", string(room.ID())).Str("name", name).Msg("room created")
	return room
}

func (s *RoomStore) Get(id domain.RoomID) (*core.Room, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	room, ok := s.rooms[id]
	return room, ok
}

func (s *RoomStore) Delete(id domain.RoomID) {
	s.mu.Lock()
	delete(s.rooms, id)
	s.mu.Unlock()
	log.Info().Str("module", "app.rooms").Str("room", string(id)).Msg("room destroyed")
}

func (s *RoomStore) All() []*core.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*core.Room, 0, len(s.rooms))
	for _, room := range s.rooms {
		out = append(out, room)
	}
	return out
}

// RoomInfo is a lightweight listing entry for the HTTP API.
type RoomInfo struct {
	ID               domain.RoomID `json:"id"`
	Name             string        `json:"name"`
	Mode             domain.Mode   `json:"mode"`
	ParticipantCount int           `json:"participantCount"`
}

func (s *RoomStore) List() []RoomInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]RoomInfo, 0, len(s.rooms))
	for _, room := range s.rooms {
		snap := room.Snapshot()
		out = append(out, RoomInfo{
			ID:               snap.ID,
			Name:             snap.Name,
			Mode:             snap.Mode,
			ParticipantCount: snap.ParticipantCount,
		})
	}
	return out
}
