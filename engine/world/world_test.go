package world

import (
	"strings"
	"testing"

	"github.com/nathoo/adventurecore/types"
)

func minimalBundle() *types.Bundle {
	return &types.Bundle{
		Adventure: types.AdventureData{Name: "Test Cave", FirstRoomID: 1},
		Rooms: []types.RoomData{
			{ID: 1, Name: "Entrance", Exits: []types.ExitData{
				{Direction: "north", RoomID: 2},
				{Direction: "northwest", RoomID: 2},
				{Direction: "south", RoomID: types.ExitReturn},
			}},
			{ID: 2, Name: "Tunnel", IsDark: true, Exits: []types.ExitData{
				{Direction: "south", RoomID: 1},
			}},
		},
		Artifacts: []types.ArtifactData{
			{ID: 1, Name: "golden sword", Aliases: []string{"blade"}, Type: types.Weapon, RoomID: 1},
			{ID: 2, Name: "oak chest", Type: types.Container, IsOpen: true, RoomID: 1},
			{ID: 3, Name: "ruby", Type: types.Treasure, ContainerID: 2},
			{ID: 4, Name: "torch", Type: types.LightSource, Quantity: 10, RoomID: 1},
		},
		Monsters: []types.MonsterData{
			{ID: 1, Name: "orc", RoomID: 1, Hardiness: 8, Agility: 9},
		},
		Player: types.PlayerData{Name: "Hero", Hardiness: 10, Agility: 10},
	}
}

func TestBuildPlacesPlayerInFirstRoom(t *testing.T) {
	w, err := Build(minimalBundle())
	if err != nil {
		t.Fatal(err)
	}
	if w.PlayerRoomID() != 1 {
		t.Errorf("player in room %d, want 1", w.PlayerRoomID())
	}
	if w.Player.ID != types.PlayerID {
		t.Errorf("player id = %d", w.Player.ID)
	}
}

func TestBuildRejectsDuplicateRoomID(t *testing.T) {
	b := minimalBundle()
	b.Rooms = append(b.Rooms, types.RoomData{ID: 1, Name: "Clone"})
	if _, err := Build(b); err == nil || !strings.Contains(err.Error(), "duplicate room id") {
		t.Errorf("err = %v", err)
	}
}

func TestBuildRejectsDuplicateArtifactID(t *testing.T) {
	b := minimalBundle()
	b.Artifacts = append(b.Artifacts, types.ArtifactData{ID: 1, Name: "copy"})
	if _, err := Build(b); err == nil || !strings.Contains(err.Error(), "duplicate artifact id") {
		t.Errorf("err = %v", err)
	}
}

func TestBuildAutonumbersZeroMonsterID(t *testing.T) {
	b := minimalBundle()
	b.Monsters = append(b.Monsters, types.MonsterData{Name: "bat", RoomID: 1, Hardiness: 2, Agility: 4})
	w, err := Build(b)
	if err != nil {
		t.Fatal(err)
	}
	if m := w.Monsters.Get(2); m == nil || m.Name != "bat" {
		t.Errorf("bat not autonumbered to 2: %+v", m)
	}
	// The player still holds the reserved id.
	if w.Monsters.Get(types.PlayerID) != w.Player {
		t.Error("player displaced from id 0")
	}
}

func TestBuildRejectsMissingName(t *testing.T) {
	b := minimalBundle()
	b.Artifacts[0].Name = ""
	if _, err := Build(b); err == nil || !strings.Contains(err.Error(), "missing name") {
		t.Errorf("err = %v", err)
	}
}

func TestBuildRejectsUnknownFirstRoom(t *testing.T) {
	b := minimalBundle()
	b.Adventure.FirstRoomID = 99
	if _, err := Build(b); err == nil || !strings.Contains(err.Error(), "first room") {
		t.Errorf("err = %v", err)
	}
}

func TestBuildRejectsDanglingExit(t *testing.T) {
	b := minimalBundle()
	b.Rooms[1].Exits = append(b.Rooms[1].Exits, types.ExitData{Direction: "down", RoomID: 42})
	if _, err := Build(b); err == nil || !strings.Contains(err.Error(), "unknown room") {
		t.Errorf("err = %v", err)
	}
}

func TestBuildAllowsSentinelExits(t *testing.T) {
	// ExitReturn is already in the fixture; ExitSilent must pass too.
	b := minimalBundle()
	b.Rooms[0].Exits = append(b.Rooms[0].Exits, types.ExitData{Direction: "out", RoomID: types.ExitSilent})
	if _, err := Build(b); err != nil {
		t.Fatal(err)
	}
}

func TestBuildAutonumbersZeroIDs(t *testing.T) {
	b := minimalBundle()
	b.Artifacts = append(b.Artifacts, types.ArtifactData{Name: "pebble", RoomID: 1})
	w, err := Build(b)
	if err != nil {
		t.Fatal(err)
	}
	if a := w.Artifacts.Get(5); a == nil || a.Name != "pebble" {
		t.Errorf("pebble not autonumbered to 5: %+v", a)
	}
}

func TestLocationUnionMovement(t *testing.T) {
	w, err := Build(minimalBundle())
	if err != nil {
		t.Fatal(err)
	}
	sword := w.Artifacts.Get(1)

	if !sword.IsInRoom(1) {
		t.Fatal("sword should start in room 1")
	}
	sword.MoveToInventory(types.PlayerID)
	if !sword.IsCarriedBy(types.PlayerID) || sword.IsInRoom(1) {
		t.Error("sword should be carried, and only carried")
	}
	sword.PutInto(2)
	if !sword.IsContainedIn(2) || sword.IsCarriedBy(types.PlayerID) {
		t.Error("sword should be contained, and only contained")
	}
	sword.Destroy()
	if _, gone := sword.Location().(Nowhere); !gone {
		t.Error("destroyed sword should be nowhere")
	}
}

func TestMoveToRoomUnhides(t *testing.T) {
	w, _ := Build(minimalBundle())
	ruby := w.Artifacts.Get(3)
	ruby.IsHidden = true
	ruby.MoveToRoom(1)
	if ruby.IsHidden {
		t.Error("moving to a room must reveal the artifact")
	}
}

func TestContentsDerivedFromLocation(t *testing.T) {
	w, _ := Build(minimalBundle())
	got := w.Contents(2)
	if len(got) != 1 || got[0].Name != "ruby" {
		t.Fatalf("Contents(2) = %v", got)
	}
	got[0].MoveToInventory(types.PlayerID)
	if len(w.Contents(2)) != 0 {
		t.Error("container membership must follow the location union")
	}
}

func TestCarriedByAndWornBy(t *testing.T) {
	w, _ := Build(minimalBundle())
	sword := w.Artifacts.Get(1)
	torch := w.Artifacts.Get(4)
	sword.MoveToInventory(types.PlayerID)
	torch.MoveToInventory(types.PlayerID)
	torch.IsWorn = true

	if got := w.CarriedBy(types.PlayerID); len(got) != 2 {
		t.Errorf("CarriedBy = %d items, want 2", len(got))
	}
	worn := w.WornBy(types.PlayerID)
	if len(worn) != 1 || worn[0].ID != 4 {
		t.Errorf("WornBy = %v", worn)
	}
}

func TestDropAll(t *testing.T) {
	w, _ := Build(minimalBundle())
	sword := w.Artifacts.Get(1)
	sword.MoveToInventory(types.PlayerID)
	sword.IsWorn = true

	w.DropAll(types.PlayerID, 2)
	if !sword.IsInRoom(2) || sword.IsWorn {
		t.Errorf("sword loc=%v worn=%v", sword.Location(), sword.IsWorn)
	}
}

func TestVisibleProjection(t *testing.T) {
	w, _ := Build(minimalBundle())
	w.Refresh()

	// Ruby is contained, so not visible; the other three room artifacts are.
	if got := len(w.Artifacts.Visible()); got != 3 {
		t.Errorf("visible artifacts = %d, want 3", got)
	}
	if got := len(w.Monsters.Visible()); got != 1 {
		t.Errorf("visible monsters = %d, want 1", got)
	}

	// Hidden artifacts stay out of the projection until revealed.
	w.Artifacts.Get(1).IsHidden = true
	w.Refresh()
	if w.Artifacts.FindVisible("sword") != nil {
		t.Error("hidden sword must not be visible")
	}

	// Dead monsters drop out.
	w.Monsters.Get(1).Remove()
	w.Refresh()
	if len(w.Monsters.Visible()) != 0 {
		t.Error("removed monster must not be visible")
	}
}

func TestVisibleExcludesPlayer(t *testing.T) {
	w, _ := Build(minimalBundle())
	w.Refresh()
	for _, m := range w.Monsters.Visible() {
		if m.IsPlayer() {
			t.Fatal("player must never appear in the visible projection")
		}
	}
}

func TestLightHere(t *testing.T) {
	w, _ := Build(minimalBundle())
	torch := w.Artifacts.Get(4)

	if w.LightHere() {
		t.Error("no lit source, LightHere should be false")
	}
	torch.IsLit = true
	if !w.LightHere() {
		t.Error("lit torch in the room should count")
	}
	torch.MoveToInventory(types.PlayerID)
	if !w.LightHere() {
		t.Error("lit torch carried by the player should count")
	}
	torch.MoveToInventory(1)
	if w.LightHere() {
		t.Error("a torch in the orc's pack lights nothing for the player")
	}
}

func TestFindArtifactSearchOrder(t *testing.T) {
	w, _ := Build(minimalBundle())
	w.Refresh()

	// Inventory first.
	sword := w.Artifacts.Get(1)
	sword.MoveToInventory(types.PlayerID)
	w.Refresh()
	if got := w.FindArtifact("sword"); got != sword {
		t.Errorf("FindArtifact(sword) = %v", got)
	}
	// Then the room, then inside open containers.
	if got := w.FindArtifact("ruby"); got == nil || got.ID != 3 {
		t.Errorf("FindArtifact(ruby) = %v", got)
	}
	// Closed container hides its contents.
	w.Artifacts.Get(2).IsOpen = false
	if w.FindArtifact("ruby") != nil {
		t.Error("ruby in a closed chest must not be findable")
	}
}

func TestMatchNamesAliasesAndFragments(t *testing.T) {
	w, _ := Build(minimalBundle())
	sword := w.Artifacts.Get(1)

	for _, q := range []string{"golden sword", "golden", "sword", "blade", "GOLD"} {
		if !sword.Match(q) {
			t.Errorf("Match(%q) = false", q)
		}
	}
	if sword.Match("ruby") || sword.Match("") {
		t.Error("bogus queries must not match")
	}
}

func TestExitNamedPrefix(t *testing.T) {
	w, _ := Build(minimalBundle())
	room := w.Rooms.Get(1)

	if e := room.ExitNamed("north"); e == nil || e.RoomID != 2 {
		t.Errorf("exact: %v", e)
	}
	// "n" prefixes both north and northwest: ambiguous.
	if e := room.ExitNamed("n"); e != nil {
		t.Errorf("ambiguous prefix should be nil, got %v", e)
	}
	if e := room.ExitNamed("s"); e == nil || e.RoomID != types.ExitReturn {
		t.Errorf("unique prefix: %v", e)
	}
	if e := room.ExitNamed("up"); e != nil {
		t.Errorf("unknown direction: %v", e)
	}
}

func TestGroupMonsterMembers(t *testing.T) {
	b := minimalBundle()
	b.Monsters = append(b.Monsters, types.MonsterData{
		ID: 2, Name: "rats", RoomID: 1, Hardiness: 3, Agility: 6, Count: 3,
	})
	w, err := Build(b)
	if err != nil {
		t.Fatal(err)
	}
	rats := w.Monsters.Get(2)
	if !rats.IsGroup() || len(rats.Members) != 3 {
		t.Fatalf("rats: count=%d members=%d", rats.Count, len(rats.Members))
	}
	rats.Damage = 2
	rats.KillMember(1)
	if rats.Count != 2 || len(rats.Members) != 2 {
		t.Errorf("after kill: count=%d members=%d", rats.Count, len(rats.Members))
	}
	if rats.Damage != 0 {
		t.Error("damage must reset when a member dies")
	}
	rats.KillMember(0)
	rats.KillMember(0)
	if rats.IsAlive() {
		t.Error("zero members left, monster should be dead")
	}
}

func TestUnreadyClearsMemberSlots(t *testing.T) {
	b := minimalBundle()
	b.Monsters = append(b.Monsters, types.MonsterData{
		ID: 2, Name: "bandits", RoomID: 1, Hardiness: 4, Agility: 8, Count: 3, WeaponID: 1,
	})
	w, err := Build(b)
	if err != nil {
		t.Fatal(err)
	}
	bandits := w.Monsters.Get(2)

	bandits.Unready(1)
	if bandits.WeaponID != 0 {
		t.Errorf("WeaponID = %d", bandits.WeaponID)
	}
	for i := range bandits.Members {
		if got := bandits.MemberWeapon(i); got != 0 {
			t.Errorf("member %d weapon = %d", i, got)
		}
	}

	// Unreadying an artifact the monster never held is a no-op.
	orc := w.Monsters.Get(1)
	orc.WeaponID = 1
	orc.Members[0].WeaponID = 1
	orc.Unready(99)
	if orc.WeaponID != 1 || orc.MemberWeapon(0) != 1 {
		t.Error("unrelated unready must not disarm")
	}
}

func TestDisarmMember(t *testing.T) {
	w, _ := Build(minimalBundle())
	orc := w.Monsters.Get(1)
	orc.WeaponID = 1
	orc.Members[0].WeaponID = 1
	orc.DisarmMember(0)
	if orc.MemberWeapon(0) != 0 || orc.WeaponID != 0 {
		t.Errorf("weapon=%d member=%d", orc.WeaponID, orc.MemberWeapon(0))
	}
}

func TestNextMarkingWraps(t *testing.T) {
	a := &Artifact{Markings: []string{"one", "two"}}
	for _, want := range []string{"one", "two", "one"} {
		got, ok := a.NextMarking()
		if !ok || got != want {
			t.Fatalf("got %q ok=%v, want %q", got, ok, want)
		}
	}
	blank := &Artifact{}
	if _, ok := blank.NextMarking(); ok {
		t.Error("no markings should report false")
	}
}
