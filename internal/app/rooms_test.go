package app

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoomStore_CreateGetDelete(t *testing.T) {
	req := require.New(t)
	s := NewRoomStore()

	room := s.Create("standup", "alice", "Alice")
	req.NotEmpty(room.ID())
	req.Equal(1, room.MemberCount())

	got, ok := s.Get(room.ID())
	req.True(ok)
	req.Same(room, got)

	s.Delete(room.ID())
	_, ok = s.Get(room.ID())
	req.False(ok)
}

func TestRoomStore_UniqueIDs(t *testing.T) {
	req := require.New(t)
	s := NewRoomStore()

	a := s.Create("one", "alice", "Alice")
	b := s.Create("two", "bob", "Bob")
	req.NotEqual(a.ID(), b.ID())
	req.Len(s.All(), 2)
}

func TestRoomStore_List(t *testing.T) {
	req := require.New(t)
	s := NewRoomStore()
	room := s.Create("standup", "alice", "Alice")

	infos := s.List()
	req.Len(infos, 1)
	req.Equal(room.ID(), infos[0].ID)
	req.Equal("standup", infos[0].Name)
	req.Equal(1, infos[0].ParticipantCount)
}
