package world

import (
	"strings"

	"github.com/nathoo/adventurecore/types"
)

// Artifact is any non-monster interactive object: item, weapon, door,
// container, readable, light source, and so on. Its position is held in a
// single Location value; all movement goes through the Move*/PutInto/
// Destroy methods so the location union can never hold two places at once.
type Artifact struct {
	ID          int
	Name        string
	Aliases     []string
	Description string
	Type        types.ArtifactType
	Value       int
	Weight      int

	WeaponType types.WeaponType
	WeaponOdds int
	Dice       int
	Sides      int

	ArmorClass   int
	ArmorPenalty int

	KeyID    int
	IsOpen   bool
	IsHidden bool

	Quantity int // light source fuel; -1 = inexhaustible
	IsLit    bool

	Markings     []string
	MarkingIndex int

	LinkedMonsterID int
	GuardID         int
	HealAmount      int

	IsWorn bool
	Seen   bool

	loc Location
}

// Location reports where the artifact currently is.
func (a *Artifact) Location() Location {
	if a.loc == nil {
		return Nowhere{}
	}
	return a.loc
}

// SetLocation is for restore only; gameplay code uses the movement methods.
func (a *Artifact) SetLocation(loc Location) {
	if loc == nil {
		loc = Nowhere{}
	}
	a.loc = loc
}

// MoveToRoom puts the artifact on the floor of a room.
func (a *Artifact) MoveToRoom(roomID int) {
	a.loc = InRoom{RoomID: roomID}
	a.IsHidden = false
}

// MoveToInventory puts the artifact in a monster's inventory.
func (a *Artifact) MoveToInventory(monsterID int) {
	a.loc = Carried{MonsterID: monsterID}
	a.IsHidden = false
}

// PutInto places the artifact inside a container artifact.
func (a *Artifact) PutInto(containerID int) {
	a.loc = Contained{ArtifactID: containerID}
}

// Destroy removes the artifact from the world. Its id is never reused.
func (a *Artifact) Destroy() {
	a.loc = Nowhere{}
	a.IsWorn = false
	a.IsLit = false
}

// IsInRoom reports whether the artifact lies in the given room.
func (a *Artifact) IsInRoom(roomID int) bool {
	loc, ok := a.Location().(InRoom)
	return ok && loc.RoomID == roomID
}

// IsCarriedBy reports whether the artifact is in the given monster's
// inventory.
func (a *Artifact) IsCarriedBy(monsterID int) bool {
	loc, ok := a.Location().(Carried)
	return ok && loc.MonsterID == monsterID
}

// IsContainedIn reports whether the artifact sits inside the container.
func (a *Artifact) IsContainedIn(containerID int) bool {
	loc, ok := a.Location().(Contained)
	return ok && loc.ArtifactID == containerID
}

// IsWeapon reports whether the artifact can be readied and swung.
func (a *Artifact) IsWeapon() bool {
	return a.Type == types.Weapon || a.Type == types.MagicWeapon
}

// Match reports whether the query names this artifact. Matching is
// case-insensitive against the name and aliases; a query may be a
// leading fragment of the name or the name minus its article.
func (a *Artifact) Match(query string) bool {
	return matchName(query, a.Name, a.Aliases)
}

// NextMarking returns the current marking of a readable artifact and
// advances the index, wrapping at the end.
func (a *Artifact) NextMarking() (string, bool) {
	if len(a.Markings) == 0 {
		return "", false
	}
	m := a.Markings[a.MarkingIndex]
	a.MarkingIndex = (a.MarkingIndex + 1) % len(a.Markings)
	return m, true
}

func matchName(query, name string, aliases []string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return false
	}
	n := strings.ToLower(name)
	if q == n || strings.HasPrefix(n, q) || strings.Contains(n, " "+q) {
		return true
	}
	for _, alias := range aliases {
		al := strings.ToLower(alias)
		if q == al || strings.HasPrefix(al, q) {
			return true
		}
	}
	return false
}

func newArtifact(d types.ArtifactData) *Artifact {
	a := &Artifact{
		ID:              d.ID,
		Name:            d.Name,
		Aliases:         d.Aliases,
		Description:     d.Description,
		Type:            d.Type,
		Value:           d.Value,
		Weight:          d.Weight,
		WeaponType:      d.WeaponType,
		WeaponOdds:      d.WeaponOdds,
		Dice:            d.Dice,
		Sides:           d.Sides,
		ArmorClass:      d.ArmorClass,
		ArmorPenalty:    d.ArmorPenalty,
		KeyID:           d.KeyID,
		IsOpen:          d.IsOpen,
		IsHidden:        d.IsHidden,
		Quantity:        d.Quantity,
		IsLit:           d.IsLit,
		Markings:        d.Markings,
		LinkedMonsterID: d.LinkedMonsterID,
		GuardID:         d.GuardID,
		HealAmount:      d.HealAmount,
		loc:             Nowhere{},
	}
	switch {
	case d.Carried:
		a.loc = Carried{MonsterID: d.MonsterID}
	case d.ContainerID != 0:
		a.loc = Contained{ArtifactID: d.ContainerID}
	case d.RoomID != 0:
		a.loc = InRoom{RoomID: d.RoomID}
	}
	return a
}
