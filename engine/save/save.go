// Package save implements the JSON snapshot of a running game. Restoring
// reconstructs the location-union invariants verbatim: current rooms,
// inventories, container contents, and open/lit/worn flags.
package save

import (
	"encoding/json"
	"fmt"

	"github.com/nathoo/adventurecore/engine/world"
	"github.com/nathoo/adventurecore/types"
)

// Location kinds in serialized form.
const (
	kindRoom      = "room"
	kindCarried   = "carried"
	kindContained = "contained"
	kindNowhere   = "nowhere"
)

// LocationData is the serialized form of a location-union value.
type LocationData struct {
	Kind string `json:"kind"`
	ID   int    `json:"id,omitempty"`
}

// RoomState is the mutable slice of a room.
type RoomState struct {
	ID   int  `json:"id"`
	Seen bool `json:"seen"`
}

// ArtifactState is the mutable slice of an artifact.
type ArtifactState struct {
	ID           int          `json:"id"`
	Location     LocationData `json:"location"`
	IsOpen       bool         `json:"is_open"`
	IsLit        bool         `json:"is_lit"`
	IsWorn       bool         `json:"is_worn"`
	IsHidden     bool         `json:"is_hidden"`
	Quantity     int          `json:"quantity"`
	Sides        int          `json:"sides"` // weapons degrade
	MarkingIndex int          `json:"marking_index"`
	Seen         bool         `json:"seen"`
}

// MonsterState is the mutable slice of a monster; player fields ride
// along on monster 0.
type MonsterState struct {
	ID            int            `json:"id"`
	Location      LocationData   `json:"location"`
	Damage        int            `json:"damage"`
	Count         int            `json:"count"`
	MemberWeapons []int          `json:"member_weapons"`
	Reaction      types.Reaction `json:"reaction"`
	WeaponID      int            `json:"weapon_id"`
	Courage       int            `json:"courage"`
	Seen          bool           `json:"seen"`

	Gold               int                      `json:"gold,omitempty"`
	SpellAbilities     map[types.Spell]int      `json:"spell_abilities,omitempty"`
	BaseSpellAbilities map[types.Spell]int      `json:"base_spell_abilities,omitempty"`
	WeaponAbilities    map[types.WeaponType]int `json:"weapon_abilities,omitempty"`
	ArmorExpertise     int                      `json:"armor_expertise,omitempty"`
}

// Meta is the orchestrator state that rides along with the world.
type Meta struct {
	Clock        int   `json:"clock"`
	SpeedTimer   int   `json:"speed_timer"`
	InBattle     bool  `json:"in_battle"`
	DiceSeed     int64 `json:"dice_seed"`
	DicePosition int64 `json:"dice_position"`
}

// Snapshot is the full serializable save format.
type Snapshot struct {
	Version   int               `json:"version"`
	Adventure string            `json:"adventure"`
	Meta      Meta              `json:"meta"`
	Rooms     []RoomState       `json:"rooms"`
	Artifacts []ArtifactState   `json:"artifacts"`
	Monsters  []MonsterState    `json:"monsters"`
	Custom    map[string]string `json:"custom"`
}

// FormatVersion is bumped when the snapshot shape changes.
const FormatVersion = 1

// Capture records the mutable state of the world.
func Capture(w *world.World, meta Meta) *Snapshot {
	s := &Snapshot{
		Version:   FormatVersion,
		Adventure: w.Adventure.Name,
		Meta:      meta,
		Custom:    map[string]string{},
	}
	for k, v := range w.Custom {
		s.Custom[k] = v
	}
	for _, r := range w.Rooms.All() {
		s.Rooms = append(s.Rooms, RoomState{ID: r.ID, Seen: r.Seen})
	}
	for _, a := range w.Artifacts.All() {
		s.Artifacts = append(s.Artifacts, ArtifactState{
			ID:           a.ID,
			Location:     encodeLocation(a.Location()),
			IsOpen:       a.IsOpen,
			IsLit:        a.IsLit,
			IsWorn:       a.IsWorn,
			IsHidden:     a.IsHidden,
			Quantity:     a.Quantity,
			Sides:        a.Sides,
			MarkingIndex: a.MarkingIndex,
			Seen:         a.Seen,
		})
	}
	for _, m := range w.Monsters.All() {
		ms := MonsterState{
			ID:       m.ID,
			Location: encodeLocation(m.Location()),
			Damage:   m.Damage,
			Count:    m.Count,
			Reaction: m.Reaction,
			WeaponID: m.WeaponID,
			Courage:  m.Courage,
			Seen:     m.Seen,
		}
		for _, member := range m.Members {
			ms.MemberWeapons = append(ms.MemberWeapons, member.WeaponID)
		}
		if m.IsPlayer() {
			ms.Gold = m.Gold
			ms.SpellAbilities = m.SpellAbilities
			ms.BaseSpellAbilities = m.BaseSpellAbilities
			ms.WeaponAbilities = m.WeaponAbilities
			ms.ArmorExpertise = m.ArmorExpertise
		}
		s.Monsters = append(s.Monsters, ms)
	}
	return s
}

// Apply writes a snapshot back onto a freshly built world. Unknown ids
// are invariant errors: the snapshot belongs to different content.
func Apply(w *world.World, s *Snapshot) error {
	if s.Adventure != "" && s.Adventure != w.Adventure.Name {
		return fmt.Errorf("snapshot is for %q, not %q", s.Adventure, w.Adventure.Name)
	}
	for _, rs := range s.Rooms {
		r := w.Rooms.Get(rs.ID)
		if r == nil {
			return fmt.Errorf("snapshot references unknown room %d", rs.ID)
		}
		r.Seen = rs.Seen
	}
	for _, as := range s.Artifacts {
		a := w.Artifacts.Get(as.ID)
		if a == nil {
			return fmt.Errorf("snapshot references unknown artifact %d", as.ID)
		}
		a.SetLocation(decodeLocation(as.Location))
		a.IsOpen = as.IsOpen
		a.IsLit = as.IsLit
		a.IsWorn = as.IsWorn
		a.IsHidden = as.IsHidden
		a.Quantity = as.Quantity
		a.Sides = as.Sides
		a.MarkingIndex = as.MarkingIndex
		a.Seen = as.Seen
	}
	for _, ms := range s.Monsters {
		m := w.Monsters.Get(ms.ID)
		if m == nil {
			return fmt.Errorf("snapshot references unknown monster %d", ms.ID)
		}
		m.SetLocation(decodeLocation(ms.Location))
		m.Damage = ms.Damage
		m.Count = ms.Count
		m.Reaction = ms.Reaction
		m.WeaponID = ms.WeaponID
		m.Courage = ms.Courage
		m.Seen = ms.Seen
		m.Members = m.Members[:0]
		for _, wid := range ms.MemberWeapons {
			m.Members = append(m.Members, world.Member{WeaponID: wid})
		}
		if m.IsPlayer() {
			m.Gold = ms.Gold
			if ms.SpellAbilities != nil {
				m.SpellAbilities = ms.SpellAbilities
			}
			if ms.BaseSpellAbilities != nil {
				m.BaseSpellAbilities = ms.BaseSpellAbilities
			}
			if ms.WeaponAbilities != nil {
				m.WeaponAbilities = ms.WeaponAbilities
			}
			m.ArmorExpertise = ms.ArmorExpertise
		}
	}
	w.Custom = map[string]string{}
	for k, v := range s.Custom {
		w.Custom[k] = v
	}
	w.Refresh()
	return nil
}

// Marshal serializes a snapshot to indented JSON.
func Marshal(s *Snapshot) ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// Unmarshal parses snapshot JSON, hardening nil maps.
func Unmarshal(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}
	if s.Custom == nil {
		s.Custom = map[string]string{}
	}
	return &s, nil
}

func encodeLocation(loc world.Location) LocationData {
	switch l := loc.(type) {
	case world.InRoom:
		return LocationData{Kind: kindRoom, ID: l.RoomID}
	case world.Carried:
		return LocationData{Kind: kindCarried, ID: l.MonsterID}
	case world.Contained:
		return LocationData{Kind: kindContained, ID: l.ArtifactID}
	default:
		return LocationData{Kind: kindNowhere}
	}
}

func decodeLocation(d LocationData) world.Location {
	switch d.Kind {
	case kindRoom:
		return world.InRoom{RoomID: d.ID}
	case kindCarried:
		return world.Carried{MonsterID: d.ID}
	case kindContained:
		return world.Contained{ArtifactID: d.ID}
	default:
		return world.Nowhere{}
	}
}
