package engine

import (
	"strings"

	"github.com/nathoo/adventurecore/engine/world"
	"github.com/nathoo/adventurecore/types"
)

// cmdGet picks up an artifact, or everything in the room with "get all".
func cmdGet(g *Game, verb, arg string) error {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return ErrCommand("Get what?")
	}
	if strings.EqualFold(arg, "all") {
		return getAll(g)
	}

	a := g.findVisibleArtifact(arg)
	if a == nil {
		return ErrCommand("You don't see that here!")
	}
	if a.IsCarriedBy(types.PlayerID) {
		return ErrCommand("You already have it!")
	}
	return g.getArtifact(a)
}

func getAll(g *Game) error {
	visible := append([]*world.Artifact(nil), g.World.Artifacts.Visible()...)
	got := false
	for _, a := range visible {
		if !gettable(a) {
			continue
		}
		if err := g.getArtifact(a); err != nil {
			continue
		}
		got = true
	}
	if !got {
		return ErrCommand("There's nothing here to get!")
	}
	return nil
}

func gettable(a *world.Artifact) bool {
	switch a.Type {
	case types.Door, types.BoundMonster, types.DeadBody:
		return false
	}
	return true
}

func (g *Game) getArtifact(a *world.Artifact) error {
	if !gettable(a) {
		return ErrCommand("You can't get that!")
	}
	if g.carriedWeight()+a.Weight > g.World.Player.Hardiness*10 {
		return ErrCommand("It's too heavy to carry!")
	}
	if !g.hookBeforeGet(a) {
		return nil
	}

	// Picking up a disguised monster springs the surprise.
	if a.Type == types.DisguisedMonster {
		g.revealDisguise(a)
		return nil
	}

	a.MoveToInventory(types.PlayerID)
	g.World.Refresh()
	g.out.Sayf("%s taken.", capitalize(a.Name))
	g.hookAfterGet(a)
	return nil
}

func (g *Game) carriedWeight() int {
	total := 0
	for _, a := range g.World.CarriedBy(types.PlayerID) {
		total += a.Weight
	}
	return total
}

// revealDisguise swaps a disguised-monster artifact for its monster.
func (g *Game) revealDisguise(a *world.Artifact) {
	m := g.World.Monsters.Get(a.LinkedMonsterID)
	a.Destroy()
	if m == nil {
		return
	}
	m.MoveToRoom(g.World.PlayerRoomID())
	m.Reaction = types.ReactionHostile
	g.out.StyledF(types.StyleDanger, "It's %s!", m.Name)
	g.World.Refresh()
	g.updateBattleFlag()
}

// cmdDrop puts a carried artifact on the floor.
func cmdDrop(g *Game, verb, arg string) error {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return ErrCommand("Drop what?")
	}
	a := g.World.Artifacts.FindCarried(arg, types.PlayerID)
	if a == nil {
		return ErrCommand("You aren't carrying that!")
	}
	if a.IsWorn {
		return ErrCommand("You'll have to take it off first.")
	}
	g.World.Player.Unready(a.ID)
	a.MoveToRoom(g.World.PlayerRoomID())
	g.World.Refresh()
	g.out.Sayf("%s dropped.", capitalize(a.Name))
	return nil
}

// cmdPut places a carried artifact into an open container:
// "put <item> into <container>".
func cmdPut(g *Game, verb, arg string) error {
	itemName, contName := splitPreposition(arg, "into", "in")
	if itemName == "" || contName == "" {
		return ErrCommand("Put what into what?")
	}
	a := g.World.Artifacts.FindCarried(itemName, types.PlayerID)
	if a == nil {
		return ErrCommand("You aren't carrying that!")
	}
	cont := g.findVisibleArtifact(contName)
	if cont == nil {
		return ErrCommand("You don't see that here!")
	}
	if cont.Type != types.Container {
		return ErrCommand("You can't put anything into that!")
	}
	if !cont.IsOpen {
		return ErrCommand("The " + cont.Name + " is closed!")
	}
	if a.ID == cont.ID {
		return ErrCommand("You can't put something inside itself!")
	}
	g.World.Player.Unready(a.ID)
	a.PutInto(cont.ID)
	g.World.Refresh()
	g.out.Sayf("You put the %s into the %s.", a.Name, cont.Name)
	return nil
}

// cmdRemove takes an artifact out of a container ("remove <item> from
// <container>") or takes off worn armor ("remove <armor>").
func cmdRemove(g *Game, verb, arg string) error {
	itemName, contName := splitPreposition(arg, "from")
	if itemName == "" {
		return ErrCommand("Remove what?")
	}

	if contName != "" {
		cont := g.findVisibleArtifact(contName)
		if cont == nil {
			cont = g.World.Artifacts.FindCarried(contName, types.PlayerID)
		}
		if cont == nil {
			return ErrCommand("You don't see that here!")
		}
		if !cont.IsOpen {
			return ErrCommand("The " + cont.Name + " is closed!")
		}
		for _, inner := range g.World.Contents(cont.ID) {
			if inner.Match(itemName) {
				inner.MoveToInventory(types.PlayerID)
				g.World.Refresh()
				g.out.Sayf("%s taken.", capitalize(inner.Name))
				return nil
			}
		}
		return ErrCommand("There's no " + itemName + " in there!")
	}

	a := g.World.Artifacts.FindCarried(itemName, types.PlayerID)
	if a == nil {
		return ErrCommand("You aren't carrying that!")
	}
	if !a.IsWorn {
		return ErrCommand("You aren't wearing that!")
	}
	a.IsWorn = false
	g.out.Sayf("You take off the %s.", a.Name)
	return nil
}

// cmdWear puts on a wearable artifact.
func cmdWear(g *Game, verb, arg string) error {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return ErrCommand("Wear what?")
	}
	a := g.World.Artifacts.FindCarried(arg, types.PlayerID)
	if a == nil {
		if a = g.findVisibleArtifact(arg); a != nil {
			// Wearing something on the floor picks it up first.
			if err := g.getArtifact(a); err != nil {
				return err
			}
		}
	}
	if a == nil {
		return ErrCommand("You aren't carrying that!")
	}
	if a.Type != types.Wearable {
		return ErrCommand("You can't wear that!")
	}
	if a.IsWorn {
		return ErrCommand("You're already wearing it!")
	}
	a.IsWorn = true
	g.out.Sayf("You put on the %s.", a.Name)
	return nil
}

// cmdReady equips a carried weapon.
func cmdReady(g *Game, verb, arg string) error {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return ErrCommand("Ready what?")
	}
	a := g.World.Artifacts.FindCarried(arg, types.PlayerID)
	if a == nil {
		return ErrCommand("You aren't carrying that!")
	}
	if !a.IsWeapon() {
		return ErrCommand("That's not a weapon!")
	}
	g.World.Player.WeaponID = a.ID
	if len(g.World.Player.Members) > 0 {
		g.World.Player.Members[0].WeaponID = a.ID
	}
	g.out.Sayf("%s readied.", capitalize(a.Name))
	return nil
}

// cmdGive hands a carried artifact to a monster: "give <item> to <name>".
func cmdGive(g *Game, verb, arg string) error {
	itemName, monsterName := splitPreposition(arg, "to")
	if itemName == "" || monsterName == "" {
		return ErrCommand("Give what to whom?")
	}
	a := g.World.Artifacts.FindCarried(itemName, types.PlayerID)
	if a == nil {
		return ErrCommand("You aren't carrying that!")
	}
	m := g.World.Monsters.FindVisible(monsterName)
	if m == nil {
		return ErrCommand("Nobody here by that name!")
	}
	if !g.hookGive(a, m) {
		return nil
	}
	if a.IsWorn {
		a.IsWorn = false
	}
	g.World.Player.Unready(a.ID)
	a.MoveToInventory(m.ID)
	g.World.Refresh()
	g.out.Sayf("You give the %s to %s.", a.Name, m.Name)

	// A weaponless ally readies a gifted weapon on the spot.
	if a.IsWeapon() && m.WeaponID == 0 && m.Reaction != types.ReactionHostile {
		m.WeaponID = a.ID
		for i := range m.Members {
			if m.Members[i].WeaponID == 0 {
				m.Members[i].WeaponID = a.ID
				break
			}
		}
		g.out.Sayf("%s readies the %s!", m.Name, a.Name)
	}
	return nil
}

// cmdRequest asks a monster for something it carries:
// "request <item> from <name>".
func cmdRequest(g *Game, verb, arg string) error {
	itemName, monsterName := splitPreposition(arg, "from")
	if itemName == "" || monsterName == "" {
		return ErrCommand("Request what from whom?")
	}
	m := g.World.Monsters.FindVisible(monsterName)
	if m == nil {
		return ErrCommand("Nobody here by that name!")
	}
	var a *world.Artifact
	for _, carried := range g.World.CarriedBy(m.ID) {
		if carried.Match(itemName) {
			a = carried
			break
		}
	}
	if a == nil {
		return ErrCommand(m.Name + " doesn't have that!")
	}
	if !g.hookTake(a, m) {
		return nil
	}
	if m.Reaction != types.ReactionFriend {
		return ErrCommand(m.Name + " won't give it to you!")
	}
	m.Unready(a.ID)
	a.IsWorn = false
	a.MoveToInventory(types.PlayerID)
	g.World.Refresh()
	g.out.Sayf("%s gives you the %s.", m.Name, a.Name)
	return nil
}

// splitPreposition splits "x PREP y" on the first matching preposition.
func splitPreposition(arg string, preps ...string) (left, right string) {
	words := strings.Fields(strings.TrimSpace(arg))
	for i, w := range words {
		for _, p := range preps {
			if strings.EqualFold(w, p) {
				return strings.Join(words[:i], " "), strings.Join(words[i+1:], " ")
			}
		}
	}
	return strings.Join(words, " "), ""
}

// findVisibleArtifact looks in the room and in open containers here.
func (g *Game) findVisibleArtifact(name string) *world.Artifact {
	if a := g.World.Artifacts.FindVisible(name); a != nil {
		return a
	}
	for _, c := range g.World.Artifacts.Visible() {
		if c.Type != types.Container || !c.IsOpen {
			continue
		}
		for _, inner := range g.World.Contents(c.ID) {
			if inner.Match(name) {
				return inner
			}
		}
	}
	return nil
}
