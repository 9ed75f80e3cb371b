package engine

import (
	"testing"

	"github.com/nathoo/adventurecore/engine/world"
	"github.com/nathoo/adventurecore/types"
)

// combatBundle adds a hostile goblin to the test adventure.
func combatBundle() *types.Bundle {
	b := testBundle()
	b.Monsters = []types.MonsterData{
		{ID: 1, Name: "goblin", Description: "A snarling goblin.", RoomID: 1,
			Hardiness: 5, Agility: 10, Friendliness: types.FriendNever,
			Courage: 100, Dice: 1, Sides: 4},
	}
	return b
}

func TestAttackHitKills(t *testing.T) {
	// Sword readied: odds are 50 + 2*(10-10) + 0/2 + 20/4 = 55.
	// Script: to-hit 20 (hit), damage 8 on the d8, ability check 30
	// (no raise). The goblin dies, so no counterattack follows.
	g := newTestGame(t, combatBundle(), 20, 8, 30)
	g.Start()
	sword := g.World.Artifacts.Get(1)
	sword.MoveToInventory(types.PlayerID)
	g.World.Player.WeaponID = sword.ID
	g.World.Player.Members[0].WeaponID = sword.ID

	res := g.ProcessCommand("attack goblin")
	if !hasLine(res.Lines, "-- a hit!") {
		t.Fatalf("expected a hit: %v", res.Lines)
	}
	if !hasLine(res.Lines, "goblin is dead!") {
		t.Errorf("goblin should die from 8 damage: %v", res.Lines)
	}
	m := g.World.Monsters.Get(1)
	if m.IsAlive() {
		t.Error("goblin still alive")
	}
	if g.InBattle() {
		t.Error("battle flag should clear once no hostiles remain")
	}
}

func TestGiveUnreadiesWeapon(t *testing.T) {
	g := newTestGame(t, combatBundle())
	g.Start()
	sword := g.World.Artifacts.Get(1)
	sword.MoveToInventory(types.PlayerID)
	g.World.Player.WeaponID = sword.ID
	g.World.Player.Members[0].WeaponID = sword.ID

	g.ProcessCommand("give sword to goblin")

	// The next swing must be bare-handed, not with the goblin's sword.
	p := g.World.Player
	if p.WeaponID != 0 || p.MemberWeapon(0) != 0 {
		t.Errorf("weapon=%d member=%d, want unarmed", p.WeaponID, p.MemberWeapon(0))
	}
	if !sword.IsCarriedBy(1) {
		t.Errorf("sword location = %v, want carried by goblin", sword.Location())
	}
}

func TestCriticalFloorAlwaysHits(t *testing.T) {
	// Make the odds hopeless: goblin agility 30 gives odds
	// 50 + 2*(10-30) = 10. A roll of 3 still hits and is critical.
	b := combatBundle()
	b.Monsters[0].Agility = 30
	b.Monsters[0].ArmorClass = 2
	b.Monsters[0].Hardiness = 20

	// Script: to-hit 3 (crit), damage 2, crit band 40 (ignore armor),
	// ability check 1 (no raise), then the goblin's counterattack misses
	// with 96 (goblin odds are 90; natural weapon, so no fumble).
	g := newTestGame(t, b, 3, 2, 40, 1, 96)
	g.Start()
	sword := g.World.Artifacts.Get(1)
	sword.MoveToInventory(types.PlayerID)
	g.World.Player.WeaponID = sword.ID
	g.World.Player.Members[0].WeaponID = sword.ID

	res := g.ProcessCommand("attack goblin")
	if !hasLine(res.Lines, "-- a critical hit!") {
		t.Fatalf("expected critical: %v", res.Lines)
	}
	m := g.World.Monsters.Get(1)
	// Band <=50 ignores armor: full 2 damage lands despite AC 2.
	if m.Damage != 2 {
		t.Errorf("goblin damage = %d, want 2", m.Damage)
	}
}

func TestInstantKillCrit(t *testing.T) {
	b := combatBundle()
	b.Monsters[0].Hardiness = 50
	b.Monsters[0].ArmorClass = 7

	// to-hit 3 (crit), damage 1, crit band 100: lethal through armor.
	// Ability check 1, no counterattack (goblin is dead).
	g := newTestGame(t, b, 3, 1, 100, 1)
	g.Start()
	sword := g.World.Artifacts.Get(1)
	sword.MoveToInventory(types.PlayerID)
	g.World.Player.WeaponID = sword.ID
	g.World.Player.Members[0].WeaponID = sword.ID

	res := g.ProcessCommand("attack goblin")
	if !hasLine(res.Lines, "goblin is dead!") {
		t.Errorf("100 crit must kill outright: %v", res.Lines)
	}
}

func TestAbilityIncrease(t *testing.T) {
	b := combatBundle()
	b.Monsters[0].Hardiness = 50

	// Sword ability starts at 20. Odds: 50 + 0 + 20/4 = 55.
	// to-hit 30 (hit), damage 1, ability check 90 (> 55: raise),
	// counterattack 96 (miss).
	g := newTestGame(t, b, 30, 1, 90, 96)
	g.Start()
	sword := g.World.Artifacts.Get(1)
	sword.MoveToInventory(types.PlayerID)
	g.World.Player.WeaponID = sword.ID
	g.World.Player.Members[0].WeaponID = sword.ID

	res := g.ProcessCommand("attack goblin")
	if !hasLine(res.Lines, "Your weapon ability increases!") {
		t.Fatalf("expected ability raise: %v", res.Lines)
	}
	if got := g.World.Player.WeaponAbilities[types.Sword]; got != 22 {
		t.Errorf("sword ability = %d, want 22", got)
	}
}

func TestFumbleRecovered(t *testing.T) {
	g := fumbleGame(t, 97, 30)
	g.attack(g.World.Player, 0, g.World.Monsters.Get(1))
	lines := g.Out().Drain()
	if !hasLine(lines, "-- a fumble!") || !hasLine(lines, "fumble recovered!") {
		t.Errorf("unexpected output: %v", lines)
	}
	if g.World.Player.WeaponID == 0 {
		t.Error("recovered fumble must keep the weapon")
	}
}

func TestFumbleDropsWeapon(t *testing.T) {
	g := fumbleGame(t, 97, 60)
	g.attack(g.World.Player, 0, g.World.Monsters.Get(1))
	lines := g.Out().Drain()
	if !hasLine(lines, "drops sword!") {
		t.Errorf("unexpected output: %v", lines)
	}
	if g.World.Player.WeaponID != 0 {
		t.Error("dropped weapon must unready")
	}
	if !g.World.Artifacts.Get(1).IsInRoom(1) {
		t.Error("dropped weapon must land in the room")
	}
}

func TestFumbleDamagesWeapon(t *testing.T) {
	g := fumbleGame(t, 97, 90)
	g.attack(g.World.Player, 0, g.World.Monsters.Get(1))
	lines := g.Out().Drain()
	if !hasLine(lines, "the sword is damaged!") {
		t.Errorf("unexpected output: %v", lines)
	}
	if got := g.World.Artifacts.Get(1).Sides; got != 6 {
		t.Errorf("sword sides = %d, want 6 after degradation", got)
	}
}

func TestFumbleDestroysWeapon(t *testing.T) {
	// Band 96-100 destroys; the follow-up Roll(2)=2 spares the attacker.
	g := fumbleGame(t, 97, 96, 2)
	g.attack(g.World.Player, 0, g.World.Monsters.Get(1))
	lines := g.Out().Drain()
	if !hasLine(lines, "the sword is destroyed!") {
		t.Errorf("unexpected output: %v", lines)
	}
	sword := g.World.Artifacts.Get(1)
	if sword.IsInRoom(1) || sword.IsCarriedBy(types.PlayerID) {
		t.Errorf("destroyed weapon must be nowhere, got %v", sword.Location())
	}
	if got := g.World.Player.Courage; got != 50 {
		t.Errorf("courage = %d, want 50 after catastrophic fumble", got)
	}
}

func TestNaturalAttackNeverFumbles(t *testing.T) {
	// Unarmed: a roll of 99 is a plain miss, no fumble sub-roll.
	g := newTestGame(t, combatBundle(), 99)
	g.Start()

	g.attack(g.World.Player, 0, g.World.Monsters.Get(1))
	lines := g.Out().Drain()
	if hasLine(lines, "fumble") {
		t.Errorf("natural attacks must not fumble: %v", lines)
	}
	if !hasLine(lines, "-- a miss!") && !hasLine(lines, "dodged!") {
		t.Errorf("expected a miss: %v", lines)
	}
}

// fumbleGame readies the sword and scripts the given rolls.
func fumbleGame(t *testing.T, rolls ...int) *Game {
	t.Helper()
	g := newTestGame(t, combatBundle(), rolls...)
	g.Start()
	sword := g.World.Artifacts.Get(1)
	sword.MoveToInventory(types.PlayerID)
	g.World.Player.WeaponID = sword.ID
	g.World.Player.Members[0].WeaponID = sword.ID
	return g
}

func TestGroupMonsterLosesOneMember(t *testing.T) {
	b := testBundle()
	b.Monsters = []types.MonsterData{
		{ID: 1, Name: "rat", Description: "A pack of rats.", RoomID: 1,
			Hardiness: 3, Agility: 8, Friendliness: types.FriendNever,
			Courage: 100, Count: 3, Dice: 1, Sides: 2},
	}
	// to-hit 10, damage 4 (kills one member), ability 1.
	g := newTestGame(t, b, 10, 4, 1)
	g.Start()
	sword := g.World.Artifacts.Get(1)
	sword.MoveToInventory(types.PlayerID)
	g.World.Player.WeaponID = sword.ID
	g.World.Player.Members[0].WeaponID = sword.ID

	g.attack(g.World.Player, 0, g.World.Monsters.Get(1))
	lines := g.Out().Drain()
	if !hasLine(lines, "One of the rats is dead!") {
		t.Errorf("unexpected output: %v", lines)
	}
	m := g.World.Monsters.Get(1)
	if m.Count != 2 || len(m.Members) != 2 {
		t.Errorf("count = %d members = %d, want 2/2", m.Count, len(m.Members))
	}
	if m.Damage != 0 {
		t.Error("group damage must reset when a member dies")
	}
	if !m.IsAlive() {
		t.Error("group with survivors must stay alive")
	}
}

func TestPlayerDeathIsTerminal(t *testing.T) {
	g := newTestGame(t, combatBundle())
	g.Start()
	p := g.World.Player
	p.Damage = p.Hardiness - 1

	g.InflictDamage(nil, p, 1, true)
	lines := g.Out().Drain()
	if !hasLine(lines, "You have died.") {
		t.Errorf("unexpected output: %v", lines)
	}
	if g.State() != StateDied {
		t.Fatalf("state = %v, want died", g.State())
	}

	res := g.ProcessCommand("look")
	if !hasLine(res.Lines, "The adventure is over.") {
		t.Errorf("dead game must refuse commands: %v", res.Lines)
	}
}

func TestDeathHookVeto(t *testing.T) {
	g := newTestGame(t, combatBundle())
	g.Hooks.Death = func(g *Game, m *world.Monster) bool {
		g.Out().Say("A strange force revives you!")
		return false
	}
	g.Start()
	p := g.World.Player
	p.Damage = p.Hardiness - 1

	g.InflictDamage(nil, p, 5, true)
	lines := g.Out().Drain()
	if !hasLine(lines, "A strange force revives you!") {
		t.Errorf("unexpected output: %v", lines)
	}
	if g.State() != StateActive {
		t.Errorf("state = %v, want active after veto", g.State())
	}
	if p.Damage != p.Hardiness-1 {
		t.Errorf("damage = %d, want %d (brink of death)", p.Damage, p.Hardiness-1)
	}
}

func TestArmorAbsorbsDamage(t *testing.T) {
	b := combatBundle()
	b.Monsters[0].ArmorClass = 5
	b.Monsters[0].Hardiness = 50
	g := newTestGame(t, b)
	g.Start()

	m := g.World.Monsters.Get(1)
	g.InflictDamage(nil, m, 3, false)
	lines := g.Out().Drain()
	if !hasLine(lines, "The blow bounces off goblin's armor!") {
		t.Errorf("unexpected output: %v", lines)
	}
	if m.Damage != 0 {
		t.Errorf("damage = %d, want 0", m.Damage)
	}
}

func TestToHitOdds(t *testing.T) {
	g := newTestGame(t, combatBundle())
	g.Start()
	p := g.World.Player
	m := g.World.Monsters.Get(1)
	sword := g.World.Artifacts.Get(1)
	sword.WeaponOdds = 40 // capped at 30 in the formula

	// 50 + 2*(10-10) + min(40,30)/2 + 20/4 = 50 + 15 + 5 = 70.
	if got := g.ToHitOdds(p, m, sword); got != 70 {
		t.Errorf("odds = %d, want 70", got)
	}

	// Natural attack by the goblin against the player: 50 + 0 = 50.
	if got := g.ToHitOdds(m, p, nil); got != 50 {
		t.Errorf("odds = %d, want 50", got)
	}
}

func TestKillMonsterDropsInventoryAndBody(t *testing.T) {
	b := combatBundle()
	b.Monsters[0].DeadBodyID = 6
	b.Artifacts = append(b.Artifacts,
		types.ArtifactData{ID: 6, Name: "dead goblin", Type: types.DeadBody},
		types.ArtifactData{ID: 7, Name: "dagger", Type: types.Weapon,
			WeaponType: types.Sword, Dice: 1, Sides: 4, Carried: true, MonsterID: 1},
	)
	g := newTestGame(t, b)
	g.Start()

	m := g.World.Monsters.Get(1)
	g.KillMonster(m)
	if m.IsAlive() {
		t.Error("killed monster must be gone")
	}
	if !g.World.Artifacts.Get(7).IsInRoom(1) {
		t.Error("inventory must drop into the room")
	}
	if !g.World.Artifacts.Get(6).IsInRoom(1) {
		t.Error("dead body must appear in the room")
	}
}
