package engine

import (
	"github.com/nathoo/adventurecore/engine/world"
	"github.com/nathoo/adventurecore/types"
)

// advanceTurn runs the post-command phases of one turn: timers, monster
// battle actions, the endTurn hooks, and the description pass. The command
// itself has already mutated the world.
func (g *Game) advanceTurn() {
	if g.state != StateActive {
		return
	}

	g.tickTimers()
	g.World.Refresh()

	if g.inBattle && !g.skipBattle {
		g.runBattleActions()
	}
	g.skipBattle = false
	if g.state != StateActive {
		return
	}

	g.hookEndTurn()
	g.describeSurroundings()
	if g.state != StateActive {
		return
	}
	g.hookEndTurn2()
	g.clock++
}

// tickTimers advances spell durations, spell-ability recovery, and light
// source fuel.
func (g *Game) tickTimers() {
	p := g.World.Player

	if g.speedTimer > 0 {
		g.speedTimer--
		if g.speedTimer == 0 {
			g.hookSpellExpires(types.SpellSpeed)
			g.out.Say("You feel yourself slowing down.")
		}
	}

	// Spent spell ability creeps back toward its base value.
	for sp, base := range p.BaseSpellAbilities {
		if cur := p.SpellAbilities[sp]; cur < base {
			p.SpellAbilities[sp] = cur + 1
		}
	}

	for _, a := range g.World.Artifacts.All() {
		if !a.IsLit || a.Quantity < 0 {
			continue
		}
		a.Quantity--
		switch {
		case a.Quantity <= 0:
			a.Quantity = 0
			a.IsLit = false
			g.out.StyledF(types.StyleWarning, "Your %s just went out!", a.Name)
		case a.Quantity < 10:
			g.out.StyledF(types.StyleWarning, "Your %s is almost out!", a.Name)
		case a.Quantity < 20:
			g.out.StyledF(types.StyleWarning, "Your %s grows dim!", a.Name)
		}
	}
}

// runBattleActions gives every present, living non-player monster its
// battle step. Visibility is re-derived after each monster acts so a
// monster killed mid-iteration cannot act, and new arrivals (moved in by
// a hook) are picked up.
func (g *Game) runBattleActions() {
	acted := map[int]bool{}
	for {
		g.World.Refresh()
		var next *world.Monster
		for _, m := range g.World.Monsters.Visible() {
			if !acted[m.ID] {
				next = m
				break
			}
		}
		if next == nil {
			return
		}
		acted[next.ID] = true
		g.monsterAction(next)
		if g.state != StateActive {
			return
		}
	}
}

// describeSurroundings renders the room, monsters, and artifacts at the
// player's location. First-time sightings show the full description and
// fire the corresponding see hook; later sightings get a presence notice.
func (g *Game) describeSurroundings() {
	g.World.Refresh()
	room := g.World.PlayerRoom()
	if room == nil {
		return
	}

	if room.IsDark && !g.World.LightHere() {
		g.out.Say("It's too dark to see anything!")
		g.updateBattleFlag()
		return
	}

	if !room.Seen {
		room.Seen = true
		g.out.Styled(room.Name, types.StyleEmphasis)
		g.out.Say(room.Description)
		g.hookSeeRoom(room)
	} else {
		g.out.Styled(room.Name, types.StyleEmphasis)
	}

	for _, m := range g.World.Monsters.Visible() {
		if !m.Seen {
			m.Seen = true
			g.out.Say(m.Description)
			g.hookSeeMonster(m)
			g.resolveReaction(m)
		} else if m.IsGroup() {
			g.out.Sayf("%s are here.", pluralCount(m.Count, m.Name))
		} else {
			g.out.Sayf("%s is here.", m.Name)
		}
	}

	for _, a := range g.World.Artifacts.Visible() {
		if !a.Seen {
			a.Seen = true
			g.out.Say(a.Description)
			g.hookSeeArtifact(a)
		} else {
			g.out.Sayf("You see %s.", a.Name)
		}
	}

	g.updateBattleFlag()
}

// updateBattleFlag recomputes the in-battle flag from visible reactions.
func (g *Game) updateBattleFlag() {
	for _, m := range g.World.Monsters.Visible() {
		if m.IsHostile() && m.CombatCode != types.CombatNonFighter {
			g.inBattle = true
			return
		}
	}
	g.inBattle = false
}

// resolveReaction fixes a monster's session attitude at first encounter.
func (g *Game) resolveReaction(m *world.Monster) {
	if m.Reaction != types.ReactionUnknown {
		return
	}
	switch m.Friendliness {
	case types.FriendAlways:
		m.Reaction = types.ReactionFriend
	case types.FriendNeutral:
		m.Reaction = types.ReactionNeutral
	case types.FriendNever:
		m.Reaction = types.ReactionHostile
	case types.FriendRandom:
		odds := m.FriendOdds + (g.World.Player.Charisma-10)*2
		if g.Dice.Percent() <= odds {
			m.Reaction = types.ReactionFriend
		} else {
			m.Reaction = types.ReactionHostile
		}
	}
}

// monsterAction is one monster's battle step: resolve its attitude, maybe
// flee, maybe grab a weapon, then attack with up to five group members.
func (g *Game) monsterAction(m *world.Monster) {
	g.resolveReaction(m)
	if m.CombatCode == types.CombatNonFighter || m.Reaction == types.ReactionNeutral {
		return
	}

	target := g.pickTarget(m)
	if target == nil {
		return
	}

	// A badly hurt monster loses its nerve and runs.
	if m.Damage > 0 && m.InjuryRatio() >= m.Courage {
		if g.fleeMonster(m) {
			return
		}
	}

	// Attackers scoop up a weapon lying in the room.
	if m.WeaponID == 0 && m.CombatCode == types.CombatAttacker {
		g.pickUpWeapon(m)
	}

	attacks := m.Count
	if attacks > 5 {
		attacks = 5
	}
	for i := 0; i < attacks; i++ {
		if !target.IsAlive() || g.state != StateActive {
			return
		}
		g.attack(m, i, target)
	}
}

// pickTarget chooses who the monster swings at: hostiles fight the player
// and the player's friends; friends fight hostiles.
func (g *Game) pickTarget(m *world.Monster) *world.Monster {
	switch m.Reaction {
	case types.ReactionHostile:
		candidates := []*world.Monster{g.World.Player}
		for _, other := range g.World.Monsters.Visible() {
			if other.IsFriend() && other.IsAlive() {
				candidates = append(candidates, other)
			}
		}
		if len(candidates) == 1 {
			return candidates[0]
		}
		return candidates[g.Dice.Roll(len(candidates))-1]
	case types.ReactionFriend:
		var candidates []*world.Monster
		for _, other := range g.World.Monsters.Visible() {
			if other.IsHostile() && other.IsAlive() {
				candidates = append(candidates, other)
			}
		}
		switch len(candidates) {
		case 0:
			return nil
		case 1:
			return candidates[0]
		}
		return candidates[g.Dice.Roll(len(candidates))-1]
	}
	return nil
}

// fleeMonster moves the monster through a random unblocked exit.
// Returns false when there is nowhere to run.
func (g *Game) fleeMonster(m *world.Monster) bool {
	room := g.World.PlayerRoom()
	if room == nil {
		return false
	}
	var open []world.Exit
	for _, e := range room.Exits {
		if e.RoomID == types.ExitReturn || e.RoomID == types.ExitSilent {
			continue
		}
		if e.DoorID != 0 {
			if door := g.World.Artifacts.Get(e.DoorID); door != nil && !door.IsOpen {
				continue
			}
		}
		open = append(open, e)
	}
	if len(open) == 0 {
		return false
	}
	exit := open[0]
	if len(open) > 1 {
		exit = open[g.Dice.Roll(len(open))-1]
	}
	if m.IsGroup() && m.Count > 1 {
		g.out.Sayf("One of the %ss flees to the %s!", m.Name, exit.Direction)
		m.Count--
		if len(m.Members) > 0 {
			m.Members = m.Members[:len(m.Members)-1]
		}
		return true
	}
	g.out.Sayf("%s flees to the %s!", m.Name, exit.Direction)
	m.MoveToRoom(exit.RoomID)
	return true
}

// pickUpWeapon arms a weaponless attacker from the room floor.
func (g *Game) pickUpWeapon(m *world.Monster) {
	roomID := g.World.PlayerRoomID()
	for _, a := range g.World.Artifacts.Visible() {
		if a.IsWeapon() && a.IsInRoom(roomID) {
			a.MoveToInventory(m.ID)
			m.WeaponID = a.ID
			for i := range m.Members {
				if m.Members[i].WeaponID == 0 {
					m.Members[i].WeaponID = a.ID
					break
				}
			}
			g.out.Sayf("%s picks up %s!", m.Name, a.Name)
			return
		}
	}
}
