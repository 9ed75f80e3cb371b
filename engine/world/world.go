// Package world holds the entity model of an adventure: rooms, artifacts,
// monsters, and effects, their repositories, and the location-union
// movement operations. Entities are built once from a load bundle, mutated
// in place for the session, and never deleted — only marked destroyed.
package world

import (
	"fmt"

	"github.com/nathoo/adventurecore/types"
)

// World aggregates the repositories, the player, and adventure-custom
// key/value data carried through save/restore.
type World struct {
	Adventure types.AdventureData
	Rooms     *RoomRepo
	Artifacts *ArtifactRepo
	Monsters  *MonsterRepo
	Effects   *EffectRepo
	Hints     []types.HintData
	Player    *Monster
	Custom    map[string]string
}

// Build constructs a world from a load bundle. Duplicate ids and missing
// required fields are invariant errors that abort initialization; absent
// optional fields default.
func Build(b *types.Bundle) (*World, error) {
	w := &World{
		Adventure: b.Adventure,
		Rooms:     newRoomRepo(),
		Artifacts: newArtifactRepo(),
		Monsters:  newMonsterRepo(),
		Effects:   newEffectRepo(),
		Hints:     b.Hints,
		Custom:    map[string]string{},
	}

	for _, rd := range b.Rooms {
		if rd.ID <= 0 {
			return nil, fmt.Errorf("room %q: id must be positive", rd.Name)
		}
		if rd.Name == "" {
			return nil, fmt.Errorf("room %d: missing name", rd.ID)
		}
		if w.Rooms.Get(rd.ID) != nil {
			return nil, fmt.Errorf("duplicate room id %d", rd.ID)
		}
		w.Rooms.Add(newRoom(rd))
	}
	if len(w.Rooms.All()) == 0 {
		return nil, fmt.Errorf("adventure has no rooms")
	}

	for _, ad := range b.Artifacts {
		if ad.Name == "" {
			return nil, fmt.Errorf("artifact %d: missing name", ad.ID)
		}
		if ad.ID != 0 && w.Artifacts.Get(ad.ID) != nil {
			return nil, fmt.Errorf("duplicate artifact id %d", ad.ID)
		}
		w.Artifacts.Add(newArtifact(ad))
	}

	for _, ed := range b.Effects {
		if w.Effects.Get(ed.ID) != nil {
			return nil, fmt.Errorf("duplicate effect id %d", ed.ID)
		}
		w.Effects.Add(newEffect(ed))
	}

	for _, md := range b.Monsters {
		if md.Name == "" {
			return nil, fmt.Errorf("monster %d: missing name", md.ID)
		}
		if md.ID != 0 && w.Monsters.Get(md.ID) != nil {
			return nil, fmt.Errorf("duplicate monster id %d", md.ID)
		}
		m := newMonster(md)
		// A zero id is autonumbered; id 0 stays reserved for the player.
		if m.ID == 0 {
			m.ID = w.Monsters.nextID()
		}
		w.Monsters.Add(m)
	}

	start := b.Adventure.FirstRoomID
	if start == 0 {
		start = w.Rooms.All()[0].ID
	}
	if w.Rooms.Get(start) == nil {
		return nil, fmt.Errorf("first room %d does not exist", start)
	}
	w.Player = NewPlayer(b.Player, start)
	w.Monsters.Add(w.Player)

	if err := w.checkReferences(); err != nil {
		return nil, err
	}
	return w, nil
}

// checkReferences verifies cross-references by id. Sentinel exit
// destinations are allowed; everything else must resolve.
func (w *World) checkReferences() error {
	for _, r := range w.Rooms.All() {
		for _, e := range r.Exits {
			if e.RoomID == types.ExitReturn || e.RoomID == types.ExitSilent {
				continue
			}
			if w.Rooms.Get(e.RoomID) == nil {
				return fmt.Errorf("room %d: exit %q leads to unknown room %d", r.ID, e.Direction, e.RoomID)
			}
			if e.DoorID != 0 && w.Artifacts.Get(e.DoorID) == nil {
				return fmt.Errorf("room %d: exit %q references unknown door %d", r.ID, e.Direction, e.DoorID)
			}
		}
	}
	for _, m := range w.Monsters.All() {
		if m.WeaponID > 0 && w.Artifacts.Get(m.WeaponID) == nil {
			return fmt.Errorf("monster %d: unknown weapon %d", m.ID, m.WeaponID)
		}
	}
	return nil
}

// PlayerRoomID returns the id of the room the player occupies, or zero if
// the player has left the world.
func (w *World) PlayerRoomID() int {
	if loc, ok := w.Player.Location().(InRoom); ok {
		return loc.RoomID
	}
	return 0
}

// PlayerRoom returns the player's current room, or nil.
func (w *World) PlayerRoom() *Room {
	return w.Rooms.Get(w.PlayerRoomID())
}

// Refresh recomputes the visible projections for the player's room.
// The orchestrator calls it after every operation that can move entities.
func (w *World) Refresh() {
	roomID := w.PlayerRoomID()
	w.Artifacts.Refresh(roomID)
	w.Monsters.Refresh(roomID)
}

// CarriedBy returns a monster's inventory in id order, worn gear included.
func (w *World) CarriedBy(monsterID int) []*Artifact {
	var out []*Artifact
	for _, a := range w.Artifacts.All() {
		if a.IsCarriedBy(monsterID) {
			out = append(out, a)
		}
	}
	return out
}

// WornBy returns the armor a monster currently wears.
func (w *World) WornBy(monsterID int) []*Artifact {
	var out []*Artifact
	for _, a := range w.Artifacts.All() {
		if a.IsCarriedBy(monsterID) && a.IsWorn {
			out = append(out, a)
		}
	}
	return out
}

// Contents returns the artifacts inside a container. Membership is
// derived from the location union, never stored on the container.
func (w *World) Contents(containerID int) []*Artifact {
	var out []*Artifact
	for _, a := range w.Artifacts.All() {
		if a.IsContainedIn(containerID) {
			out = append(out, a)
		}
	}
	return out
}

// DropAll moves a monster's whole inventory onto the floor of a room.
func (w *World) DropAll(monsterID, roomID int) {
	for _, a := range w.CarriedBy(monsterID) {
		a.IsWorn = false
		a.MoveToRoom(roomID)
	}
}

// LightHere reports whether an active light source is present: lit and
// either in the room or carried by the player.
func (w *World) LightHere() bool {
	roomID := w.PlayerRoomID()
	for _, a := range w.Artifacts.All() {
		if !a.IsLit {
			continue
		}
		if a.IsInRoom(roomID) || a.IsCarriedBy(types.PlayerID) {
			return true
		}
	}
	return false
}

// FindArtifact looks for an artifact by name: player inventory first,
// then the visible room contents, then inside open visible containers.
func (w *World) FindArtifact(name string) *Artifact {
	if a := w.Artifacts.FindCarried(name, types.PlayerID); a != nil {
		return a
	}
	if a := w.Artifacts.FindVisible(name); a != nil {
		return a
	}
	for _, c := range w.Artifacts.Visible() {
		if c.Type != types.Container || !c.IsOpen {
			continue
		}
		for _, inner := range w.Contents(c.ID) {
			if inner.Match(name) {
				return inner
			}
		}
	}
	return nil
}
