// Package types defines the shared data structures for the AdventureCore
// engine. This package contains only type definitions and the adventure
// load-bundle shapes — no logic.
package types

// ArtifactType classifies what an artifact is and which commands apply.
// Values above DeadBody are reserved for adventure-defined extension types.
type ArtifactType int

const (
	Gold ArtifactType = iota
	Treasure
	Weapon
	MagicWeapon
	Container
	LightSource
	Drinkable
	Readable
	Door
	Edible
	BoundMonster
	Wearable
	DisguisedMonster
	DeadBody
	UserType1
	UserType2
	UserType3
)

// WeaponType selects the miss/parry narration table and the player
// proficiency slot used in to-hit calculation.
type WeaponType int

const (
	NaturalWeapon WeaponType = iota // claws, fists
	Axe
	Bow
	Club
	Spear
	Sword
)

// Friendliness is a monster's configured disposition policy.
type Friendliness int

const (
	FriendAlways Friendliness = iota
	FriendNeutral
	FriendNever
	FriendRandom // resolved against FriendOdds at first encounter
)

// Reaction is a monster's resolved, session-specific attitude.
type Reaction int

const (
	ReactionUnknown Reaction = iota
	ReactionFriend
	ReactionNeutral
	ReactionHostile
)

// CombatCode controls whether and how a monster fights.
type CombatCode int

const (
	CombatNormal     CombatCode = iota // uses weapon if carried, else natural
	CombatAttacker                     // attacks on sight, picks up weapons
	CombatNatural                      // never uses artifact weapons
	CombatNonFighter                   // never attacks
)

// Spell identifies one of the player's castable spells.
type Spell string

const (
	SpellBlast Spell = "blast"
	SpellHeal  Spell = "heal"
	SpellSpeed Spell = "speed"
	SpellPower Spell = "power"
)

// Style tags a narration line for the presentation layer. The set is open;
// these are the conventional values.
type Style string

const (
	StyleNormal   Style = "normal"
	StyleWarning  Style = "warning"
	StyleDanger   Style = "danger"
	StyleSuccess  Style = "success"
	StyleSpecial  Style = "special"
	StyleSpecial2 Style = "special2"
	StyleNoSpace  Style = "no-space"
	StyleEmphasis Style = "emphasis"
)

// Line is one unit of narration output.
type Line struct {
	Text  string `json:"text"`
	Style Style  `json:"style"`
}

// Reserved exit destinations.
const (
	// ExitReturn means the player leaves the adventure successfully.
	ExitReturn = -999
	// ExitSilent leaves the adventure without the usual departure text.
	ExitSilent = -998
)

// PlayerID is the monster id reserved for the player.
const PlayerID = 0

// --- Load bundle ---------------------------------------------------------
//
// The bundle is plain data: arrays are positionally independent and
// reference each other only by integer id. Absent optional fields mean
// "use default", never an error.

// Bundle is the full adventure load contract.
type Bundle struct {
	Adventure AdventureData  `json:"adventure"`
	Rooms     []RoomData     `json:"rooms"`
	Artifacts []ArtifactData `json:"artifacts"`
	Effects   []EffectData   `json:"effects"`
	Monsters  []MonsterData  `json:"monsters"`
	Hints     []HintData     `json:"hints"`
	Player    PlayerData     `json:"player"`
}

// AdventureData holds adventure metadata.
type AdventureData struct {
	Name        string `json:"name"`
	Author      string `json:"author"`
	Intro       string `json:"intro"`
	FirstRoomID int    `json:"first_room_id"`
}

// ExitData is one direction out of a room.
type ExitData struct {
	Direction string `json:"direction"`
	RoomID    int    `json:"room_id"`
	DoorID    int    `json:"door_id"`   // blocking door artifact, 0 = none
	EffectID  int    `json:"effect_id"` // effect shown on passage, 0 = none
}

// RoomData defines a room.
type RoomData struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	IsDark      bool       `json:"is_dark"`
	Exits       []ExitData `json:"exits"`
}

// ArtifactData defines an artifact. The location fields follow the source
// data convention: RoomID > 0 in a room, Carried with MonsterID when held,
// ContainerID set when contained; all zero means nowhere.
type ArtifactData struct {
	ID          int          `json:"id"`
	Name        string       `json:"name"`
	Aliases     []string     `json:"aliases"`
	Description string       `json:"description"`
	Type        ArtifactType `json:"type"`
	Value       int          `json:"value"`
	Weight      int          `json:"weight"`

	RoomID      int  `json:"room_id"`
	MonsterID   int  `json:"monster_id"`
	ContainerID int  `json:"container_id"`
	Carried     bool `json:"carried"` // carried by MonsterID (0 = player)

	// Weapon fields.
	WeaponType WeaponType `json:"weapon_type"`
	WeaponOdds int        `json:"weapon_odds"` // to-hit bonus
	Dice       int        `json:"dice"`
	Sides      int        `json:"sides"`

	// Armor / wearable fields.
	ArmorClass   int `json:"armor_class"`
	ArmorPenalty int `json:"armor_penalty"`

	// Container / door fields.
	KeyID    int  `json:"key_id"` // artifact that unlocks, 0 = unlocked
	IsOpen   bool `json:"is_open"`
	IsHidden bool `json:"is_hidden"`

	// Light source fuel; -1 means inexhaustible.
	Quantity int  `json:"quantity"`
	IsLit    bool `json:"is_lit"`

	// Readable markings, shown one per read.
	Markings []string `json:"markings"`

	// BoundMonster / DisguisedMonster / DeadBody linkage.
	LinkedMonsterID int `json:"linked_monster_id"`
	GuardID         int `json:"guard_id"` // monster guarding a bound monster

	// Edible/drinkable healing dice total.
	HealAmount int `json:"heal_amount"`
}

// EffectData is a block of narrative text printed on demand.
type EffectData struct {
	ID    int    `json:"id"`
	Text  string `json:"text"`
	Style Style  `json:"style"`
}

// MonsterData defines a monster or group of identical monsters.
type MonsterData struct {
	ID           int          `json:"id"`
	Name         string       `json:"name"`
	Aliases      []string     `json:"aliases"`
	Description  string       `json:"description"`
	RoomID       int          `json:"room_id"`
	Hardiness    int          `json:"hardiness"`
	Agility      int          `json:"agility"`
	Count        int          `json:"count"` // >1 makes a group monster
	Friendliness Friendliness `json:"friendliness"`
	FriendOdds   int          `json:"friend_odds"` // percent, for FriendRandom
	CombatCode   CombatCode   `json:"combat_code"`
	Courage      int          `json:"courage"` // percent; checked against damage ratio
	ArmorClass   int          `json:"armor_class"`
	WeaponID     int          `json:"weapon_id"` // 0 = natural weapons
	Dice         int          `json:"dice"`      // natural attack dice
	Sides        int          `json:"sides"`
	DeadBodyID   int          `json:"dead_body_id"` // artifact spawned on death, 0 = none
}

// PlayerData is the player record handed in by the host (main hall).
type PlayerData struct {
	Name            string             `json:"name"`
	Gender          string             `json:"gender"`
	Hardiness       int                `json:"hardiness"`
	Agility         int                `json:"agility"`
	Charisma        int                `json:"charisma"`
	Gold            int                `json:"gold"`
	SpellAbilities  map[Spell]int      `json:"spell_abilities"`
	WeaponAbilities map[WeaponType]int `json:"weapon_abilities"`
	ArmorExpertise  int                `json:"armor_expertise"`
}

// HintData is an authored hint, surfaced by the host on request.
type HintData struct {
	ID       int      `json:"id"`
	Question string   `json:"question"`
	Answers  []string `json:"answers"`
}
