package loader

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/nathoo/adventurecore/engine"
	"github.com/nathoo/adventurecore/engine/world"
	"github.com/nathoo/adventurecore/types"
)

// registerAPI installs the scripting globals. The API is imperative:
// scripts register hooks and commands, then poke the live world through
// id-based accessors.
func (h *ScriptHost) registerAPI() {
	L := h.L
	g := h.game

	// on("hook_name", fn) — register an event hook.
	L.SetGlobal("on", L.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)
		fn := L.CheckFunction(2)
		if err := h.bindHook(name, fn); err != nil {
			L.RaiseError("%s", err.Error())
		}
		return 0
	}))

	// add_command("name", {"verb", ...}, fn) — register a custom command.
	// fn(verb, arg) returning a string refuses the command with that
	// message and no clock tick.
	L.SetGlobal("add_command", L.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)
		verbsTbl := L.CheckTable(2)
		fn := L.CheckFunction(3)
		var verbs []string
		verbsTbl.ForEach(func(_, v lua.LValue) {
			verbs = append(verbs, lua.LVAsString(v))
		})
		if len(verbs) == 0 {
			verbs = []string{name}
		}
		g.RegisterCommand(name, verbs, func(g *engine.Game, verb, arg string) error {
			rets := h.call(fn, 1, lua.LString(verb), lua.LString(arg))
			if len(rets) == 1 {
				if msg, ok := rets[0].(lua.LString); ok && msg != "" {
					return engine.ErrCommand(string(msg))
				}
			}
			return nil
		})
		return 0
	}))

	// ask("prompt", fn) — suspend the turn on a modal question; fn(answer)
	// runs when the host resumes.
	L.SetGlobal("ask", L.NewFunction(func(L *lua.LState) int {
		prompt := L.CheckString(1)
		fn := L.CheckFunction(2)
		g.Ask(prompt, func(answer string) {
			h.call(fn, 0, lua.LString(answer))
		})
		return 0
	}))

	// say("text" [, "style"])
	L.SetGlobal("say", L.NewFunction(func(L *lua.LState) int {
		text := L.CheckString(1)
		style := types.StyleNormal
		if L.GetTop() >= 2 {
			style = types.Style(L.CheckString(2))
		}
		g.Out().Styled(text, style)
		return 0
	}))

	// effect(id) — print an authored effect.
	L.SetGlobal("effect", L.NewFunction(func(L *lua.LState) int {
		g.PrintEffect(L.CheckInt(1))
		return 0
	}))

	// Game lifecycle.
	L.SetGlobal("win", L.NewFunction(func(L *lua.LState) int {
		g.Win()
		return 0
	}))
	L.SetGlobal("die", L.NewFunction(func(L *lua.LState) int {
		g.Die()
		return 0
	}))
	L.SetGlobal("clock", L.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LNumber(g.Clock()))
		return 1
	}))
	L.SetGlobal("in_battle", L.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LBool(g.InBattle()))
		return 1
	}))

	// Rolls come from the engine's roller so saves replay exactly.
	L.SetGlobal("roll", L.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LNumber(g.Dice.Roll(L.CheckInt(1))))
		return 1
	}))
	L.SetGlobal("percent", L.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LNumber(g.Dice.Percent()))
		return 1
	}))

	// Custom key/value data; persisted in saves.
	L.SetGlobal("get_data", L.NewFunction(func(L *lua.LState) int {
		v, ok := g.World.Custom[L.CheckString(1)]
		if !ok {
			L.Push(lua.LNil)
		} else {
			L.Push(lua.LString(v))
		}
		return 1
	}))
	L.SetGlobal("set_data", L.NewFunction(func(L *lua.LState) int {
		g.World.Custom[L.CheckString(1)] = L.CheckString(2)
		return 0
	}))

	h.registerWorldAPI()
}

// registerWorldAPI installs the id-based world accessors.
func (h *ScriptHost) registerWorldAPI() {
	L := h.L
	g := h.game

	L.SetGlobal("room_id", L.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LNumber(g.World.PlayerRoomID()))
		return 1
	}))

	L.SetGlobal("move_player", L.NewFunction(func(L *lua.LState) int {
		g.World.Player.MoveToRoom(L.CheckInt(1))
		g.World.Refresh()
		return 0
	}))

	// Artifacts.
	L.SetGlobal("artifact_room", L.NewFunction(func(L *lua.LState) int {
		a := g.World.Artifacts.Get(L.CheckInt(1))
		if a == nil {
			L.Push(lua.LNil)
			return 1
		}
		if loc, ok := a.Location().(world.InRoom); ok {
			L.Push(lua.LNumber(loc.RoomID))
		} else {
			L.Push(lua.LNil)
		}
		return 1
	}))
	L.SetGlobal("player_has", L.NewFunction(func(L *lua.LState) int {
		a := g.World.Artifacts.Get(L.CheckInt(1))
		L.Push(lua.LBool(a != nil && a.IsCarriedBy(types.PlayerID)))
		return 1
	}))
	L.SetGlobal("artifact_to_room", L.NewFunction(func(L *lua.LState) int {
		if a := g.World.Artifacts.Get(L.CheckInt(1)); a != nil {
			a.MoveToRoom(L.CheckInt(2))
			g.World.Refresh()
		}
		return 0
	}))
	L.SetGlobal("artifact_to_player", L.NewFunction(func(L *lua.LState) int {
		if a := g.World.Artifacts.Get(L.CheckInt(1)); a != nil {
			a.MoveToInventory(types.PlayerID)
			g.World.Refresh()
		}
		return 0
	}))
	L.SetGlobal("destroy_artifact", L.NewFunction(func(L *lua.LState) int {
		if a := g.World.Artifacts.Get(L.CheckInt(1)); a != nil {
			a.Destroy()
			g.World.Refresh()
		}
		return 0
	}))
	L.SetGlobal("reveal_artifact", L.NewFunction(func(L *lua.LState) int {
		if a := g.World.Artifacts.Get(L.CheckInt(1)); a != nil {
			a.IsHidden = false
			g.World.Refresh()
		}
		return 0
	}))

	// Monsters.
	L.SetGlobal("monster_here", L.NewFunction(func(L *lua.LState) int {
		m := g.World.Monsters.Get(L.CheckInt(1))
		L.Push(lua.LBool(m != nil && m.IsAlive() && m.IsHere(g.World.PlayerRoomID())))
		return 1
	}))
	L.SetGlobal("monster_to_room", L.NewFunction(func(L *lua.LState) int {
		if m := g.World.Monsters.Get(L.CheckInt(1)); m != nil {
			m.MoveToRoom(L.CheckInt(2))
			g.World.Refresh()
		}
		return 0
	}))
	L.SetGlobal("vanish_monster", L.NewFunction(func(L *lua.LState) int {
		if m := g.World.Monsters.Get(L.CheckInt(1)); m != nil {
			m.Remove()
			g.World.Refresh()
		}
		return 0
	}))
	L.SetGlobal("set_reaction", L.NewFunction(func(L *lua.LState) int {
		m := g.World.Monsters.Get(L.CheckInt(1))
		if m == nil {
			return 0
		}
		switch L.CheckString(2) {
		case "friend":
			m.Reaction = types.ReactionFriend
		case "neutral":
			m.Reaction = types.ReactionNeutral
		case "hostile":
			m.Reaction = types.ReactionHostile
		default:
			L.RaiseError("unknown reaction %q", L.CheckString(2))
		}
		return 0
	}))
	L.SetGlobal("monster_damage", L.NewFunction(func(L *lua.LState) int {
		m := g.World.Monsters.Get(L.CheckInt(1))
		if m == nil {
			L.Push(lua.LNil)
			return 1
		}
		L.Push(lua.LNumber(m.Damage))
		return 1
	}))
	L.SetGlobal("hurt_monster", L.NewFunction(func(L *lua.LState) int {
		if m := g.World.Monsters.Get(L.CheckInt(1)); m != nil {
			g.InflictDamage(nil, m, L.CheckInt(2), true)
		}
		return 0
	}))
	L.SetGlobal("heal_monster", L.NewFunction(func(L *lua.LState) int {
		if m := g.World.Monsters.Get(L.CheckInt(1)); m != nil {
			m.Damage -= L.CheckInt(2)
			if m.Damage < 0 {
				m.Damage = 0
			}
		}
		return 0
	}))
}

// bindHook attaches a Lua function to one typed hook slot. Lua hooks see
// entities by id; only an explicit false return vetoes the default.
func (h *ScriptHost) bindHook(name string, fn *lua.LFunction) error {
	hooks := h.game.Hooks
	switch name {
	case "start":
		hooks.Start = func(*engine.Game) { h.call(fn, 0) }
	case "before_move":
		hooks.BeforeMove = func(_ *engine.Game, dir string, room *world.Room, exit *world.Exit) bool {
			return truthy(h.call(fn, 1, lua.LString(dir), lua.LNumber(room.ID), lua.LNumber(exit.RoomID)))
		}
	case "after_move":
		hooks.AfterMove = func(_ *engine.Game, room *world.Room) {
			h.call(fn, 0, lua.LNumber(room.ID))
		}
	case "before_get":
		hooks.BeforeGet = func(_ *engine.Game, a *world.Artifact) bool {
			return truthy(h.call(fn, 1, lua.LNumber(a.ID)))
		}
	case "after_get":
		hooks.AfterGet = func(_ *engine.Game, a *world.Artifact) {
			h.call(fn, 0, lua.LNumber(a.ID))
		}
	case "open":
		hooks.Open = func(_ *engine.Game, a *world.Artifact) bool {
			return truthy(h.call(fn, 1, lua.LNumber(a.ID)))
		}
	case "before_read":
		hooks.BeforeRead = func(_ *engine.Game, a *world.Artifact) bool {
			return truthy(h.call(fn, 1, lua.LNumber(a.ID)))
		}
	case "read":
		hooks.Read = func(_ *engine.Game, a *world.Artifact) {
			h.call(fn, 0, lua.LNumber(a.ID))
		}
	case "give":
		hooks.Give = func(_ *engine.Game, a *world.Artifact, to *world.Monster) bool {
			return truthy(h.call(fn, 1, lua.LNumber(a.ID), lua.LNumber(to.ID)))
		}
	case "take":
		hooks.Take = func(_ *engine.Game, a *world.Artifact, from *world.Monster) bool {
			return truthy(h.call(fn, 1, lua.LNumber(a.ID), lua.LNumber(from.ID)))
		}
	case "use":
		hooks.Use = func(_ *engine.Game, a *world.Artifact) bool {
			return truthy(h.call(fn, 1, lua.LNumber(a.ID)))
		}
	case "say":
		hooks.Say = func(_ *engine.Game, words string) string {
			rets := h.call(fn, 1, lua.LString(words))
			if len(rets) == 0 || rets[0] == lua.LNil {
				return words
			}
			return lua.LVAsString(rets[0])
		}
	case "attack_monster":
		hooks.AttackMonster = func(_ *engine.Game, target *world.Monster) bool {
			return truthy(h.call(fn, 1, lua.LNumber(target.ID)))
		}
	case "attack_damage":
		hooks.AttackDamage = func(_ *engine.Game, attacker, defender *world.Monster, damage int) int {
			rets := h.call(fn, 1, lua.LNumber(attacker.ID), lua.LNumber(defender.ID), lua.LNumber(damage))
			if len(rets) == 1 {
				if n, ok := rets[0].(lua.LNumber); ok {
					return int(n)
				}
			}
			return damage
		}
	case "see_monster":
		hooks.SeeMonster = func(_ *engine.Game, m *world.Monster) {
			h.call(fn, 0, lua.LNumber(m.ID))
		}
	case "see_artifact":
		hooks.SeeArtifact = func(_ *engine.Game, a *world.Artifact) {
			h.call(fn, 0, lua.LNumber(a.ID))
		}
	case "see_room":
		hooks.SeeRoom = func(_ *engine.Game, r *world.Room) {
			h.call(fn, 0, lua.LNumber(r.ID))
		}
	case "end_turn":
		hooks.EndTurn = func(*engine.Game) { h.call(fn, 0) }
	case "end_turn2":
		hooks.EndTurn2 = func(*engine.Game) { h.call(fn, 0) }
	case "death":
		hooks.Death = func(_ *engine.Game, m *world.Monster) bool {
			return truthy(h.call(fn, 1, lua.LNumber(m.ID)))
		}
	case "power":
		hooks.Power = func(_ *engine.Game, roll int) {
			h.call(fn, 0, lua.LNumber(roll))
		}
	case "exit":
		hooks.Exit = func(*engine.Game) bool {
			return truthy(h.call(fn, 1))
		}
	case "after_sell":
		hooks.AfterSell = func(*engine.Game) { h.call(fn, 0) }
	case "spell_expires":
		hooks.SpellExpires = func(_ *engine.Game, sp types.Spell) {
			h.call(fn, 0, lua.LString(string(sp)))
		}
	default:
		return fmt.Errorf("unknown hook %q", name)
	}
	return nil
}
