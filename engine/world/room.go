package world

import (
	"strings"

	"github.com/nathoo/adventurecore/types"
)

// Exit leads out of a room. RoomID may be one of the reserved sentinels
// (types.ExitReturn, types.ExitSilent). A DoorID of zero means the way
// is never blocked.
type Exit struct {
	Direction string
	RoomID    int
	DoorID    int
	EffectID  int
}

// Room is a location in the adventure. Exits are kept in authoring order
// and keyed by unique direction.
type Room struct {
	ID          int
	Name        string
	Description string
	IsDark      bool
	Exits       []Exit
	Seen        bool
}

// ExitNamed returns the exit in the given direction, or nil.
// Matching is exact first, then unique prefix ("n" finds "north" when no
// exit is literally named "n").
func (r *Room) ExitNamed(direction string) *Exit {
	direction = strings.ToLower(direction)
	for i := range r.Exits {
		if r.Exits[i].Direction == direction {
			return &r.Exits[i]
		}
	}
	var found *Exit
	for i := range r.Exits {
		if strings.HasPrefix(r.Exits[i].Direction, direction) {
			if found != nil {
				return nil // ambiguous
			}
			found = &r.Exits[i]
		}
	}
	return found
}

func newRoom(d types.RoomData) *Room {
	r := &Room{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		IsDark:      d.IsDark,
	}
	for _, e := range d.Exits {
		r.Exits = append(r.Exits, Exit{
			Direction: strings.ToLower(e.Direction),
			RoomID:    e.RoomID,
			DoorID:    e.DoorID,
			EffectID:  e.EffectID,
		})
	}
	return r
}
