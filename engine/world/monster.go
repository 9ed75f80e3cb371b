package world

import (
	"github.com/nathoo/adventurecore/types"
)

// Member is the per-member state of a group monster. Singleton monsters
// have exactly one member. Members attack individually so each can carry
// (and drop, and break) its own weapon.
type Member struct {
	WeaponID int // 0 = natural weapons
}

// Monster is any creature in the adventure, the player included
// (monster id 0). A group monster collapses several identical combatants
// into one record with a Count and an ordered member list.
type Monster struct {
	ID           int
	Name         string
	Aliases      []string
	Description  string
	Hardiness    int
	Damage       int
	Agility      int
	Friendliness types.Friendliness
	FriendOdds   int
	Reaction     types.Reaction
	CombatCode   types.CombatCode
	Courage      int
	ArmorClass   int
	WeaponID     int // equipped weapon; 0 = natural
	Dice         int // natural attack dice
	Sides        int
	DeadBodyID   int

	Count   int
	Members []Member

	Seen bool

	// Player-only fields; zero-valued for ordinary monsters.
	Gender             string
	Charisma           int
	Gold               int
	SpellAbilities     map[types.Spell]int
	BaseSpellAbilities map[types.Spell]int
	WeaponAbilities    map[types.WeaponType]int
	ArmorExpertise     int

	loc Location
}

// IsPlayer reports whether this monster is the player record.
func (m *Monster) IsPlayer() bool { return m.ID == types.PlayerID }

// IsGroup reports whether the record represents multiple combatants.
func (m *Monster) IsGroup() bool { return len(m.Members) > 1 || m.Count > 1 }

// Location reports where the monster currently is.
func (m *Monster) Location() Location {
	if m.loc == nil {
		return Nowhere{}
	}
	return m.loc
}

// SetLocation is for restore only.
func (m *Monster) SetLocation(loc Location) {
	if loc == nil {
		loc = Nowhere{}
	}
	m.loc = loc
}

// MoveToRoom places the monster in a room.
func (m *Monster) MoveToRoom(roomID int) {
	m.loc = InRoom{RoomID: roomID}
}

// Remove takes the monster out of the world (death, or scripted exit).
func (m *Monster) Remove() {
	m.loc = Nowhere{}
}

// IsHere reports whether the monster is present in the given room.
func (m *Monster) IsHere(roomID int) bool {
	loc, ok := m.Location().(InRoom)
	return ok && loc.RoomID == roomID
}

// IsAlive reports whether any member remains.
func (m *Monster) IsAlive() bool {
	if _, gone := m.Location().(Nowhere); gone {
		return false
	}
	return m.Count > 0
}

// IsHostile reports whether the monster's resolved reaction is hostile.
func (m *Monster) IsHostile() bool { return m.Reaction == types.ReactionHostile }

// IsFriend reports whether the monster's resolved reaction is friendly.
func (m *Monster) IsFriend() bool { return m.Reaction == types.ReactionFriend }

// Match reports whether the query names this monster.
func (m *Monster) Match(query string) bool {
	return matchName(query, m.Name, m.Aliases)
}

// MemberWeapon returns the weapon id the indexed member fights with.
// A group's members track their own weapons; singletons use WeaponID.
func (m *Monster) MemberWeapon(i int) int {
	if i >= 0 && i < len(m.Members) {
		return m.Members[i].WeaponID
	}
	return m.WeaponID
}

// Unready clears every weapon slot holding the given artifact, member
// slots included. Call it whenever an artifact leaves its wielder's hands
// outside combat (dropped, stowed, given away, robbed); combat fumbles go
// through DisarmMember instead.
func (m *Monster) Unready(artifactID int) {
	for i := range m.Members {
		if m.Members[i].WeaponID == artifactID {
			m.Members[i].WeaponID = 0
		}
	}
	if m.WeaponID == artifactID {
		m.WeaponID = 0
	}
}

// DisarmMember clears the indexed member's weapon.
func (m *Monster) DisarmMember(i int) {
	if i >= 0 && i < len(m.Members) {
		m.Members[i].WeaponID = 0
	}
	if !m.IsGroup() || m.WeaponID == m.MemberWeapon(i) {
		m.WeaponID = 0
	}
}

// KillMember removes one member: the count drops by one and accumulated
// damage resets. The record itself survives until the count reaches zero;
// callers handle the final death (inventory drop, dead body, removal).
func (m *Monster) KillMember(i int) {
	if i >= 0 && i < len(m.Members) {
		m.Members = append(m.Members[:i], m.Members[i+1:]...)
	} else if len(m.Members) > 0 {
		m.Members = m.Members[:len(m.Members)-1]
	}
	m.Count--
	if m.Count < 0 {
		m.Count = 0
	}
	m.Damage = 0
}

// InjuryRatio returns accumulated damage as a percentage of hardiness.
func (m *Monster) InjuryRatio() int {
	if m.Hardiness <= 0 {
		return 100
	}
	return m.Damage * 100 / m.Hardiness
}

func newMonster(d types.MonsterData) *Monster {
	count := d.Count
	if count < 1 {
		count = 1
	}
	m := &Monster{
		ID:           d.ID,
		Name:         d.Name,
		Aliases:      d.Aliases,
		Description:  d.Description,
		Hardiness:    d.Hardiness,
		Agility:      d.Agility,
		Friendliness: d.Friendliness,
		FriendOdds:   d.FriendOdds,
		CombatCode:   d.CombatCode,
		Courage:      d.Courage,
		ArmorClass:   d.ArmorClass,
		WeaponID:     d.WeaponID,
		Dice:         d.Dice,
		Sides:        d.Sides,
		DeadBodyID:   d.DeadBodyID,
		Count:        count,
		loc:          Nowhere{},
	}
	if m.Courage == 0 {
		m.Courage = 100
	}
	for i := 0; i < count; i++ {
		m.Members = append(m.Members, Member{WeaponID: d.WeaponID})
	}
	if d.RoomID != 0 {
		m.loc = InRoom{RoomID: d.RoomID}
	}
	return m
}

// NewPlayer builds the player monster (id 0) from the host's player record.
func NewPlayer(d types.PlayerData, startRoom int) *Monster {
	p := &Monster{
		ID:                 types.PlayerID,
		Name:               d.Name,
		Gender:             d.Gender,
		Hardiness:          d.Hardiness,
		Agility:            d.Agility,
		Charisma:           d.Charisma,
		Gold:               d.Gold,
		Courage:            100,
		Friendliness:       types.FriendNeutral,
		Reaction:           types.ReactionNeutral,
		Count:              1,
		Members:            []Member{{}},
		ArmorExpertise:     d.ArmorExpertise,
		SpellAbilities:     map[types.Spell]int{},
		BaseSpellAbilities: map[types.Spell]int{},
		WeaponAbilities:    map[types.WeaponType]int{},
		loc:                InRoom{RoomID: startRoom},
	}
	for sp, v := range d.SpellAbilities {
		p.SpellAbilities[sp] = v
		p.BaseSpellAbilities[sp] = v
	}
	for wt, v := range d.WeaponAbilities {
		p.WeaponAbilities[wt] = v
	}
	return p
}
