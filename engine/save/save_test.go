package save

import (
	"strings"
	"testing"

	"github.com/nathoo/adventurecore/engine/world"
	"github.com/nathoo/adventurecore/types"
)

func buildWorld(t *testing.T) *world.World {
	t.Helper()
	w, err := world.Build(&types.Bundle{
		Adventure: types.AdventureData{Name: "Crypt", FirstRoomID: 1},
		Rooms: []types.RoomData{
			{ID: 1, Name: "Hall", Exits: []types.ExitData{{Direction: "east", RoomID: 2}}},
			{ID: 2, Name: "Vault", Exits: []types.ExitData{{Direction: "west", RoomID: 1}}},
		},
		Artifacts: []types.ArtifactData{
			{ID: 1, Name: "mace", Type: types.Weapon, Dice: 1, Sides: 8, RoomID: 1},
			{ID: 2, Name: "urn", Type: types.Container, RoomID: 2},
			{ID: 3, Name: "ashes", ContainerID: 2},
		},
		Monsters: []types.MonsterData{
			{ID: 1, Name: "wights", RoomID: 2, Hardiness: 6, Agility: 8, Count: 3, WeaponID: 1},
		},
		Player: types.PlayerData{
			Name: "Hero", Hardiness: 14, Agility: 12, Gold: 200,
			SpellAbilities: map[types.Spell]int{types.SpellHeal: 40},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	return w
}

func TestCaptureApplyRoundTrip(t *testing.T) {
	w := buildWorld(t)

	// Mutate the session: move, degrade, fight, learn.
	w.Player.MoveToRoom(2)
	w.Player.Damage = 5
	w.Player.Gold = 150
	w.Player.SpellAbilities[types.SpellHeal] = 20
	w.Rooms.Get(2).Seen = true
	mace := w.Artifacts.Get(1)
	mace.MoveToInventory(types.PlayerID)
	mace.Sides = 6
	w.Artifacts.Get(2).IsOpen = true
	w.Artifacts.Get(3).Destroy()
	wights := w.Monsters.Get(1)
	wights.Reaction = types.ReactionHostile
	wights.KillMember(0)
	w.Custom["torch_lit"] = "yes"

	snap := Capture(w, Meta{Clock: 17, InBattle: true, DiceSeed: 99, DicePosition: 12})
	data, err := Marshal(snap)
	if err != nil {
		t.Fatal(err)
	}
	parsed, err := Unmarshal(data)
	if err != nil {
		t.Fatal(err)
	}

	// Apply onto a pristine world, as load does.
	w2 := buildWorld(t)
	if err := Apply(w2, parsed); err != nil {
		t.Fatal(err)
	}

	if w2.PlayerRoomID() != 2 {
		t.Errorf("player room = %d", w2.PlayerRoomID())
	}
	if w2.Player.Damage != 5 || w2.Player.Gold != 150 {
		t.Errorf("player damage=%d gold=%d", w2.Player.Damage, w2.Player.Gold)
	}
	if w2.Player.SpellAbilities[types.SpellHeal] != 20 {
		t.Errorf("heal ability = %d", w2.Player.SpellAbilities[types.SpellHeal])
	}
	if w2.Player.BaseSpellAbilities[types.SpellHeal] != 40 {
		t.Errorf("base heal ability = %d", w2.Player.BaseSpellAbilities[types.SpellHeal])
	}
	if !w2.Rooms.Get(2).Seen {
		t.Error("room seen flag lost")
	}
	m2 := w2.Artifacts.Get(1)
	if !m2.IsCarriedBy(types.PlayerID) || m2.Sides != 6 {
		t.Errorf("mace loc=%v sides=%d", m2.Location(), m2.Sides)
	}
	if !w2.Artifacts.Get(2).IsOpen {
		t.Error("urn open flag lost")
	}
	if _, gone := w2.Artifacts.Get(3).Location().(world.Nowhere); !gone {
		t.Error("destroyed ashes came back")
	}
	wg2 := w2.Monsters.Get(1)
	if wg2.Count != 2 || len(wg2.Members) != 2 {
		t.Errorf("wights count=%d members=%d", wg2.Count, len(wg2.Members))
	}
	if wg2.Reaction != types.ReactionHostile {
		t.Error("reaction lost")
	}
	if w2.Custom["torch_lit"] != "yes" {
		t.Error("custom data lost")
	}
	if parsed.Meta.Clock != 17 || !parsed.Meta.InBattle || parsed.Meta.DicePosition != 12 {
		t.Errorf("meta = %+v", parsed.Meta)
	}
}

func TestApplyRejectsWrongAdventure(t *testing.T) {
	w := buildWorld(t)
	snap := Capture(w, Meta{})
	snap.Adventure = "Someone Else's Dungeon"
	if err := Apply(buildWorld(t), snap); err == nil ||
		!strings.Contains(err.Error(), "snapshot is for") {
		t.Errorf("err = %v", err)
	}
}

func TestApplyRejectsUnknownIDs(t *testing.T) {
	w := buildWorld(t)

	snap := Capture(w, Meta{})
	snap.Artifacts = append(snap.Artifacts, ArtifactState{ID: 42})
	if err := Apply(buildWorld(t), snap); err == nil ||
		!strings.Contains(err.Error(), "unknown artifact") {
		t.Errorf("artifact err = %v", err)
	}

	snap = Capture(w, Meta{})
	snap.Monsters = append(snap.Monsters, MonsterState{ID: 42})
	if err := Apply(buildWorld(t), snap); err == nil ||
		!strings.Contains(err.Error(), "unknown monster") {
		t.Errorf("monster err = %v", err)
	}

	snap = Capture(w, Meta{})
	snap.Rooms = append(snap.Rooms, RoomState{ID: 42})
	if err := Apply(buildWorld(t), snap); err == nil ||
		!strings.Contains(err.Error(), "unknown room") {
		t.Errorf("room err = %v", err)
	}
}

func TestApplyReplacesCustomData(t *testing.T) {
	w := buildWorld(t)
	snap := Capture(w, Meta{})

	w2 := buildWorld(t)
	w2.Custom["stale"] = "value"
	if err := Apply(w2, snap); err != nil {
		t.Fatal(err)
	}
	if len(w2.Custom) != 0 {
		t.Errorf("custom = %v, want empty", w2.Custom)
	}
}

func TestLocationEncodingRoundTrip(t *testing.T) {
	cases := []world.Location{
		world.InRoom{RoomID: 3},
		world.Carried{MonsterID: 0},
		world.Contained{ArtifactID: 7},
		world.Nowhere{},
	}
	for _, loc := range cases {
		if got := decodeLocation(encodeLocation(loc)); got != loc {
			t.Errorf("round trip %v -> %v", loc, got)
		}
	}
}

func TestUnmarshalHardensNilCustom(t *testing.T) {
	s, err := Unmarshal([]byte(`{"version":1}`))
	if err != nil {
		t.Fatal(err)
	}
	if s.Custom == nil {
		t.Error("Custom must never be nil after Unmarshal")
	}
}
