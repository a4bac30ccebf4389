package app

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/privacall/privacall/internal/core"
	"github.com/privacall/privacall/internal/domain"
)

type endpointEntry struct {
	RoomID domain.RoomID
	Name   string
	Conn   core.SignalConnection
}

// Registry maps connected endpoints to their transport and, once they
// create or get admitted into a room, to that room id and display
// name. It holds back-references only, never the Room aggregate.
type Registry struct {
	mu        sync.RWMutex
	endpoints map[domain.EndpointID]*endpointEntry
}

func NewRegistry() *Registry {
	return &Registry{endpoints: make(map[domain.EndpointID]*endpointEntry)}
}

func (r *Registry) Bind(id domain.EndpointID, conn core.SignalConnection) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.endpoints[id] = &endpointEntry{Conn: conn}
	log.Info().Str("module", "app.registry").Str("endpoint", string(id)).Msg("bound endpoint")
}

func (r *Registry) Unbind(id domain.EndpointID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.endpoints, id)
	log.Info().Str("module", "app.registry").Str("endpoint", string(id)).Msg("unbound endpoint")
}

// SetRoom records the room association created by room creation or a
// successful admission.
func (r *Registry) SetRoom(id domain.EndpointID, roomID domain.RoomID, name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.endpoints[id]
	if !ok {
		return false
	}
	e.RoomID = roomID
	e.Name = name
	log.Info().Str("module", "app.registry").Str("endpoint", string(id)).Str("room", string(roomID)).Msg("joined room")
	return true
}

// ClearRoom drops the room association but keeps the endpoint bound.
func (r *Registry) ClearRoom(id domain.EndpointID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.endpoints[id]; ok {
		e.RoomID = ""
		e.Name = ""
	}
}

// Identity returns the endpoint's room and display name. ok is false
// for unknown endpoints and for endpoints not currently in a room.
func (r *Registry) Identity(id domain.EndpointID) (domain.RoomID, string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.endpoints[id]
	if !ok || e.RoomID == "" {
		return "", "", false
	}
	return e.RoomID, e.Name, true
}

func (r *Registry) Conn(id domain.EndpointID) (core.SignalConnection, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.endpoints[id]
	if !ok {
		return nil, false
	}
	return e.Conn, true
}

// Member pairs an endpoint id with its transport for fan-out.
type Member struct {
	ID   domain.EndpointID
	Conn core.SignalConnection
}

func (r *Registry) MembersOf(roomID domain.RoomID) []Member {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Member, 0, len(r.endpoints))
	for id, e := range r.endpoints {
		if e.RoomID == roomID {
			out = append(out, Member{ID: id, Conn: e.Conn})
		}
	}
	return out
}
