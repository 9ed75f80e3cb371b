package engine

import (
	"strings"

	"github.com/nathoo/adventurecore/engine/world"
	"github.com/nathoo/adventurecore/types"
)

var shortDirections = map[string]string{
	"n": "north", "s": "south", "e": "east", "w": "west",
	"ne": "northeast", "nw": "northwest", "se": "southeast", "sw": "southwest",
	"u": "up", "d": "down",
}

// cmdGo moves the player through an exit. A successful move sets the
// skip-battle flag: movement never draws counter-attacks the same turn.
func cmdGo(g *Game, verb, arg string) error {
	dir := verb
	if verb == "go" || verb == "enter" {
		dir = strings.ToLower(strings.TrimSpace(arg))
		if dir == "" {
			return ErrCommand("Go where?")
		}
	}
	if full, ok := shortDirections[dir]; ok {
		dir = full
	}
	return g.movePlayer(dir)
}

func (g *Game) movePlayer(dir string) error {
	room := g.World.PlayerRoom()
	if room == nil {
		return ErrCommand("You can't move right now.")
	}

	exit := room.ExitNamed(dir)
	if exit == nil {
		return ErrCommand("You can't go that way!")
	}

	if exit.DoorID != 0 {
		door := g.World.Artifacts.Get(exit.DoorID)
		if door != nil && !door.IsOpen {
			if door.IsHidden {
				// An unfound secret door reads as a wall.
				return ErrCommand("You can't go that way!")
			}
			return ErrCommand("The " + door.Name + " blocks your way!")
		}
	}

	if !g.hookBeforeMove(dir, room, exit) {
		return nil
	}

	switch exit.RoomID {
	case types.ExitReturn:
		g.exitAdventure(false)
		return nil
	case types.ExitSilent:
		g.exitAdventure(true)
		return nil
	}

	dest := g.World.Rooms.Get(exit.RoomID)
	g.relocatePlayer(dest)
	if exit.EffectID != 0 {
		g.PrintEffect(exit.EffectID)
	}
	g.hookAfterMove(dest)
	return nil
}

// relocatePlayer moves the player and any friendly monsters that follow.
func (g *Game) relocatePlayer(dest *world.Room) {
	from := g.World.PlayerRoomID()
	g.World.Player.MoveToRoom(dest.ID)
	for _, m := range g.World.Monsters.All() {
		if !m.IsPlayer() && m.IsFriend() && m.IsHere(from) && m.IsAlive() {
			m.MoveToRoom(dest.ID)
		}
	}
	g.skipBattle = true
	g.World.Refresh()
}

// exitAdventure ends the adventure through a reserved exit. The exit hook
// may veto; on the normal (loud) exit carried treasure is sold first.
func (g *Game) exitAdventure(silent bool) {
	if !g.hookExit() {
		return
	}
	if !silent {
		g.out.Styled("You successfully ride off into the sunset!", types.StyleSuccess)
		g.sellTreasure()
	}
	g.Win()
}

// sellTreasure converts carried gold and treasure to player gold.
func (g *Game) sellTreasure() {
	total := 0
	for _, a := range g.World.CarriedBy(types.PlayerID) {
		if a.Type == types.Gold || a.Type == types.Treasure {
			total += a.Value
			a.Destroy()
		}
	}
	if total > 0 {
		g.out.StyledF(types.StyleSuccess, "You sell your treasure for %d gold pieces.", total)
		g.World.Player.Gold += total
	}
	g.hookAfterSell()
}

// cmdFlee breaks off a battle through an exit, chosen or random.
func cmdFlee(g *Game, verb, arg string) error {
	if !g.inBattle {
		return ErrCommand("There's nothing to flee from!")
	}
	dir := strings.ToLower(strings.TrimSpace(arg))
	if full, ok := shortDirections[dir]; ok {
		dir = full
	}
	room := g.World.PlayerRoom()
	if dir == "" {
		var open []string
		for _, e := range room.Exits {
			if e.RoomID == types.ExitReturn || e.RoomID == types.ExitSilent {
				continue
			}
			if e.DoorID != 0 {
				if door := g.World.Artifacts.Get(e.DoorID); door != nil && !door.IsOpen {
					continue
				}
			}
			open = append(open, e.Direction)
		}
		switch len(open) {
		case 0:
			return ErrCommand("There's nowhere to run!")
		case 1:
			dir = open[0]
		default:
			dir = open[g.Dice.Roll(len(open))-1]
		}
	}
	g.out.Sayf("You flee to the %s!", dir)
	return g.movePlayer(dir)
}
