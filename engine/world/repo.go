package world

import "sort"

// Repositories are in-memory id-ordered collections with autonumbering
// and a "visible at the current location" projection that the orchestrator
// recomputes between turn phases.

// RoomRepo holds all rooms.
type RoomRepo struct {
	byID map[int]*Room
	ids  []int
}

func newRoomRepo() *RoomRepo { return &RoomRepo{byID: map[int]*Room{}} }

// Add inserts a room. A zero id is autonumbered.
func (r *RoomRepo) Add(room *Room) *Room {
	if room.ID == 0 {
		room.ID = r.nextID()
	}
	r.byID[room.ID] = room
	r.ids = append(r.ids, room.ID)
	sort.Ints(r.ids)
	return room
}

// Get returns the room with the given id, or nil.
func (r *RoomRepo) Get(id int) *Room { return r.byID[id] }

// All returns every room in id order.
func (r *RoomRepo) All() []*Room {
	out := make([]*Room, 0, len(r.ids))
	for _, id := range r.ids {
		out = append(out, r.byID[id])
	}
	return out
}

func (r *RoomRepo) nextID() int {
	max := 0
	for id := range r.byID {
		if id > max {
			max = id
		}
	}
	return max + 1
}

// ArtifactRepo holds all artifacts plus the visible projection.
type ArtifactRepo struct {
	byID    map[int]*Artifact
	ids     []int
	visible []*Artifact
}

func newArtifactRepo() *ArtifactRepo { return &ArtifactRepo{byID: map[int]*Artifact{}} }

// Add inserts an artifact. A zero id is autonumbered.
func (r *ArtifactRepo) Add(a *Artifact) *Artifact {
	if a.ID == 0 {
		a.ID = r.nextID()
	}
	r.byID[a.ID] = a
	r.ids = append(r.ids, a.ID)
	sort.Ints(r.ids)
	return a
}

// Get returns the artifact with the given id, or nil.
func (r *ArtifactRepo) Get(id int) *Artifact { return r.byID[id] }

// All returns every artifact in id order.
func (r *ArtifactRepo) All() []*Artifact {
	out := make([]*Artifact, 0, len(r.ids))
	for _, id := range r.ids {
		out = append(out, r.byID[id])
	}
	return out
}

// Visible returns the artifacts lying in the current room, as of the last
// Refresh. Hidden artifacts are excluded until revealed.
func (r *ArtifactRepo) Visible() []*Artifact { return r.visible }

// Refresh recomputes the visible projection for the given room.
func (r *ArtifactRepo) Refresh(roomID int) {
	r.visible = r.visible[:0]
	for _, id := range r.ids {
		a := r.byID[id]
		if a.IsInRoom(roomID) && !a.IsHidden {
			r.visible = append(r.visible, a)
		}
	}
}

// FindVisible matches a name against visible artifacts.
func (r *ArtifactRepo) FindVisible(name string) *Artifact {
	for _, a := range r.visible {
		if a.Match(name) {
			return a
		}
	}
	return nil
}

// FindCarried matches a name against a monster's inventory, worn
// equipment included.
func (r *ArtifactRepo) FindCarried(name string, monsterID int) *Artifact {
	for _, id := range r.ids {
		a := r.byID[id]
		if a.IsCarriedBy(monsterID) && a.Match(name) {
			return a
		}
	}
	return nil
}

func (r *ArtifactRepo) nextID() int {
	max := 0
	for id := range r.byID {
		if id > max {
			max = id
		}
	}
	return max + 1
}

// MonsterRepo holds all monsters plus the visible projection.
// The player (id 0) is stored here too but excluded from Visible.
type MonsterRepo struct {
	byID    map[int]*Monster
	ids     []int
	visible []*Monster
}

func newMonsterRepo() *MonsterRepo { return &MonsterRepo{byID: map[int]*Monster{}} }

// Add inserts a monster. Ids are assigned by the caller: Build
// autonumbers zero-id bundle monsters, and the player keeps the
// reserved id 0.
func (r *MonsterRepo) Add(m *Monster) *Monster {
	r.byID[m.ID] = m
	r.ids = append(r.ids, m.ID)
	sort.Ints(r.ids)
	return m
}

// Get returns the monster with the given id, or nil.
func (r *MonsterRepo) Get(id int) *Monster { return r.byID[id] }

// All returns every monster in id order, player included.
func (r *MonsterRepo) All() []*Monster {
	out := make([]*Monster, 0, len(r.ids))
	for _, id := range r.ids {
		out = append(out, r.byID[id])
	}
	return out
}

// Visible returns the non-player monsters in the current room, as of the
// last Refresh.
func (r *MonsterRepo) Visible() []*Monster { return r.visible }

// Refresh recomputes the visible projection for the given room.
func (r *MonsterRepo) Refresh(roomID int) {
	r.visible = r.visible[:0]
	for _, id := range r.ids {
		m := r.byID[id]
		if m.IsPlayer() {
			continue
		}
		if m.IsHere(roomID) && m.IsAlive() {
			r.visible = append(r.visible, m)
		}
	}
}

// FindVisible matches a name against visible monsters.
func (r *MonsterRepo) FindVisible(name string) *Monster {
	for _, m := range r.visible {
		if m.Match(name) {
			return m
		}
	}
	return nil
}

func (r *MonsterRepo) nextID() int {
	max := 0
	for id := range r.byID {
		if id > max {
			max = id
		}
	}
	return max + 1
}

// EffectRepo holds all effects.
type EffectRepo struct {
	byID map[int]*Effect
}

func newEffectRepo() *EffectRepo { return &EffectRepo{byID: map[int]*Effect{}} }

// Add inserts an effect.
func (r *EffectRepo) Add(e *Effect) *Effect {
	r.byID[e.ID] = e
	return e
}

// Get returns the effect with the given id, or nil.
func (r *EffectRepo) Get(id int) *Effect { return r.byID[id] }
