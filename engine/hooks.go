package engine

import (
	"github.com/nathoo/adventurecore/engine/world"
	"github.com/nathoo/adventurecore/types"
)

// Hooks is the adventure's extension-point registry: one optional typed
// function per hook name. A nil field means "no hook registered" and
// default engine behavior proceeds unimpeded; boolean-returning hooks
// veto the default by returning false.
//
// Hooks are synchronous and run to completion before the orchestrator
// continues. They may read and mutate any entity and may re-enter the
// engine (narrate, run commands); the engine provides no cycle detection,
// so unbounded recursion into the same hook is a content bug.
type Hooks struct {
	Start         func(g *Game)
	BeforeMove    func(g *Game, dir string, room *world.Room, exit *world.Exit) bool
	AfterMove     func(g *Game, room *world.Room)
	BeforeGet     func(g *Game, a *world.Artifact) bool
	AfterGet      func(g *Game, a *world.Artifact)
	Open          func(g *Game, a *world.Artifact) bool
	BeforeRead    func(g *Game, a *world.Artifact) bool
	Read          func(g *Game, a *world.Artifact)
	Give          func(g *Game, a *world.Artifact, to *world.Monster) bool
	Take          func(g *Game, a *world.Artifact, from *world.Monster) bool
	Use           func(g *Game, a *world.Artifact) bool
	Say           func(g *Game, words string) string
	AttackMonster func(g *Game, target *world.Monster) bool
	AttackDamage  func(g *Game, attacker, defender *world.Monster, damage int) int
	SeeMonster    func(g *Game, m *world.Monster)
	SeeArtifact   func(g *Game, a *world.Artifact)
	SeeRoom       func(g *Game, r *world.Room)
	EndTurn       func(g *Game)
	EndTurn2      func(g *Game)
	Death         func(g *Game, m *world.Monster) bool
	Power         func(g *Game, roll int)
	Exit          func(g *Game) bool
	AfterSell     func(g *Game)
	SpellExpires  func(g *Game, spell types.Spell)
}

// The trigger helpers below encode the "absent hook ⇒ truthy default"
// convention at each call site.

func (g *Game) hookStart() {
	if g.Hooks.Start != nil {
		g.Hooks.Start(g)
	}
}

func (g *Game) hookBeforeMove(dir string, room *world.Room, exit *world.Exit) bool {
	if g.Hooks.BeforeMove != nil {
		return g.Hooks.BeforeMove(g, dir, room, exit)
	}
	return true
}

func (g *Game) hookAfterMove(room *world.Room) {
	if g.Hooks.AfterMove != nil {
		g.Hooks.AfterMove(g, room)
	}
}

func (g *Game) hookBeforeGet(a *world.Artifact) bool {
	if g.Hooks.BeforeGet != nil {
		return g.Hooks.BeforeGet(g, a)
	}
	return true
}

func (g *Game) hookAfterGet(a *world.Artifact) {
	if g.Hooks.AfterGet != nil {
		g.Hooks.AfterGet(g, a)
	}
}

func (g *Game) hookOpen(a *world.Artifact) bool {
	if g.Hooks.Open != nil {
		return g.Hooks.Open(g, a)
	}
	return true
}

func (g *Game) hookBeforeRead(a *world.Artifact) bool {
	if g.Hooks.BeforeRead != nil {
		return g.Hooks.BeforeRead(g, a)
	}
	return true
}

func (g *Game) hookRead(a *world.Artifact) {
	if g.Hooks.Read != nil {
		g.Hooks.Read(g, a)
	}
}

func (g *Game) hookGive(a *world.Artifact, to *world.Monster) bool {
	if g.Hooks.Give != nil {
		return g.Hooks.Give(g, a, to)
	}
	return true
}

func (g *Game) hookTake(a *world.Artifact, from *world.Monster) bool {
	if g.Hooks.Take != nil {
		return g.Hooks.Take(g, a, from)
	}
	return true
}

func (g *Game) hookUse(a *world.Artifact) bool {
	if g.Hooks.Use != nil {
		return g.Hooks.Use(g, a)
	}
	return true
}

func (g *Game) hookSay(words string) string {
	if g.Hooks.Say != nil {
		return g.Hooks.Say(g, words)
	}
	return words
}

func (g *Game) hookAttackMonster(target *world.Monster) bool {
	if g.Hooks.AttackMonster != nil {
		return g.Hooks.AttackMonster(g, target)
	}
	return true
}

func (g *Game) hookAttackDamage(attacker, defender *world.Monster, damage int) int {
	if g.Hooks.AttackDamage != nil {
		return g.Hooks.AttackDamage(g, attacker, defender, damage)
	}
	return damage
}

func (g *Game) hookSeeMonster(m *world.Monster) {
	if g.Hooks.SeeMonster != nil {
		g.Hooks.SeeMonster(g, m)
	}
}

func (g *Game) hookSeeArtifact(a *world.Artifact) {
	if g.Hooks.SeeArtifact != nil {
		g.Hooks.SeeArtifact(g, a)
	}
}

func (g *Game) hookSeeRoom(r *world.Room) {
	if g.Hooks.SeeRoom != nil {
		g.Hooks.SeeRoom(g, r)
	}
}

func (g *Game) hookEndTurn() {
	if g.Hooks.EndTurn != nil {
		g.Hooks.EndTurn(g)
	}
}

func (g *Game) hookEndTurn2() {
	if g.Hooks.EndTurn2 != nil {
		g.Hooks.EndTurn2(g)
	}
}

func (g *Game) hookDeath(m *world.Monster) bool {
	if g.Hooks.Death != nil {
		return g.Hooks.Death(g, m)
	}
	return true
}

func (g *Game) hookPower(roll int) bool {
	if g.Hooks.Power != nil {
		g.Hooks.Power(g, roll)
		return true
	}
	return false
}

func (g *Game) hookExit() bool {
	if g.Hooks.Exit != nil {
		return g.Hooks.Exit(g)
	}
	return true
}

func (g *Game) hookAfterSell() {
	if g.Hooks.AfterSell != nil {
		g.Hooks.AfterSell(g)
	}
}

func (g *Game) hookSpellExpires(sp types.Spell) {
	if g.Hooks.SpellExpires != nil {
		g.Hooks.SpellExpires(g, sp)
	}
}
