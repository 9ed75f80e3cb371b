package engine

import (
	"strings"

	"github.com/nathoo/adventurecore/engine/world"
	"github.com/nathoo/adventurecore/types"
)

// cmdLook re-describes the room, or examines a named thing.
func cmdLook(g *Game, verb, arg string) error {
	arg = strings.TrimSpace(arg)
	room := g.World.PlayerRoom()
	if room == nil {
		return nil
	}

	if arg == "" || strings.EqualFold(arg, "around") {
		// A fresh look always gives the full description.
		room.Seen = false
		return nil
	}

	if room.IsDark && !g.World.LightHere() {
		return ErrCommand("It's too dark to see anything!")
	}

	if m := g.World.Monsters.FindVisible(arg); m != nil {
		g.out.Say(m.Description)
		if m.Damage > 0 {
			g.out.Sayf("%s is %s.", m.Name, injuryWord(m))
		}
		return nil
	}

	a := g.findVisibleArtifact(arg)
	if a == nil {
		a = g.World.Artifacts.FindCarried(arg, types.PlayerID)
	}
	if a == nil {
		return ErrCommand("You see nothing special.")
	}
	g.out.Say(a.Description)
	if a.Type == types.Container && a.IsOpen {
		contents := g.World.Contents(a.ID)
		if len(contents) == 0 {
			g.out.Say("It's empty.")
		} else {
			names := make([]string, len(contents))
			for i, inner := range contents {
				names[i] = inner.Name
			}
			g.out.Sayf("It contains: %s.", strings.Join(names, ", "))
		}
	}
	return nil
}

func injuryWord(m *world.Monster) string {
	switch ratio := m.InjuryRatio(); {
	case ratio < 25:
		return "hardly hurt"
	case ratio < 50:
		return "hurting"
	case ratio < 75:
		return "in pain"
	default:
		return "badly injured"
	}
}

// cmdRead shows a readable artifact's next marking.
func cmdRead(g *Game, verb, arg string) error {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return ErrCommand("Read what?")
	}
	a := g.World.Artifacts.FindCarried(arg, types.PlayerID)
	if a == nil {
		a = g.findVisibleArtifact(arg)
	}
	if a == nil {
		return ErrCommand("You don't see that here!")
	}
	if !g.hookBeforeRead(a) {
		return nil
	}
	if a.Type != types.Readable {
		return ErrCommand("There's nothing to read on that!")
	}
	marking, ok := a.NextMarking()
	if !ok {
		return ErrCommand("It's blank!")
	}
	g.out.Styled(marking, types.StyleSpecial)
	g.hookRead(a)
	return nil
}

// cmdOpen opens a door or container, checking the key.
func cmdOpen(g *Game, verb, arg string) error {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return ErrCommand("Open what?")
	}
	a := g.findVisibleArtifact(arg)
	if a == nil {
		a = g.World.Artifacts.FindCarried(arg, types.PlayerID)
	}
	if a == nil {
		return ErrCommand("You don't see that here!")
	}
	if a.Type != types.Door && a.Type != types.Container {
		return ErrCommand("You can't open that!")
	}
	if a.IsOpen {
		return ErrCommand("It's already open!")
	}
	if a.KeyID != 0 {
		key := g.World.Artifacts.Get(a.KeyID)
		if key == nil || !key.IsCarriedBy(types.PlayerID) {
			return ErrCommand("It's locked and you don't have the key!")
		}
	}
	if !g.hookOpen(a) {
		return nil
	}
	a.IsOpen = true
	g.out.Sayf("You open the %s.", a.Name)
	if a.Type == types.Container {
		for _, inner := range g.World.Contents(a.ID) {
			inner.IsHidden = false
		}
	}
	g.World.Refresh()
	return nil
}

// cmdClose shuts a door or container.
func cmdClose(g *Game, verb, arg string) error {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return ErrCommand("Close what?")
	}
	a := g.findVisibleArtifact(arg)
	if a == nil {
		return ErrCommand("You don't see that here!")
	}
	if a.Type != types.Door && a.Type != types.Container {
		return ErrCommand("You can't close that!")
	}
	if !a.IsOpen {
		return ErrCommand("It's already closed!")
	}
	a.IsOpen = false
	g.out.Sayf("You close the %s.", a.Name)
	return nil
}

// cmdEat consumes an edible artifact, healing if it's restorative.
func cmdEat(g *Game, verb, arg string) error {
	a, err := findConsumable(g, arg, "Eat what?")
	if err != nil {
		return err
	}
	if a.Type != types.Edible {
		return ErrCommand("You can't eat that!")
	}
	a.Destroy()
	g.World.Refresh()
	g.out.Sayf("You eat the %s.", a.Name)
	g.healPlayer(a.HealAmount)
	return nil
}

// cmdDrink drinks from a drinkable artifact; multi-dose artifacts use
// Quantity as remaining doses.
func cmdDrink(g *Game, verb, arg string) error {
	a, err := findConsumable(g, arg, "Drink what?")
	if err != nil {
		return err
	}
	if a.Type != types.Drinkable {
		return ErrCommand("You can't drink that!")
	}
	g.out.Sayf("You drink the %s.", a.Name)
	g.healPlayer(a.HealAmount)
	if a.Quantity > 0 {
		a.Quantity--
	}
	if a.Quantity == 0 {
		a.Destroy()
		g.World.Refresh()
	}
	return nil
}

func findConsumable(g *Game, arg, prompt string) (*world.Artifact, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return nil, ErrCommand(prompt)
	}
	a := g.World.Artifacts.FindCarried(arg, types.PlayerID)
	if a == nil {
		a = g.findVisibleArtifact(arg)
	}
	if a == nil {
		return nil, ErrCommand("You don't see that here!")
	}
	return a, nil
}

func (g *Game) healPlayer(amount int) {
	if amount <= 0 {
		return
	}
	p := g.World.Player
	p.Damage -= amount
	if p.Damage < 0 {
		p.Damage = 0
	}
	g.out.Styled("You feel better!", types.StyleSuccess)
}

// cmdLight lights a light source, or puts out one already burning.
func cmdLight(g *Game, verb, arg string) error {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return ErrCommand("Light what?")
	}
	a := g.World.Artifacts.FindCarried(arg, types.PlayerID)
	if a == nil {
		a = g.findVisibleArtifact(arg)
	}
	if a == nil {
		return ErrCommand("You don't see that here!")
	}
	if a.Type != types.LightSource {
		return ErrCommand("You can't light that!")
	}
	if a.IsLit {
		a.IsLit = false
		g.out.Sayf("You put out the %s.", a.Name)
		return nil
	}
	if a.Quantity == 0 {
		return ErrCommand("It's out of fuel!")
	}
	a.IsLit = true
	g.out.Sayf("You light the %s.", a.Name)
	return nil
}

// cmdFree releases a bound monster, unless a guard objects.
func cmdFree(g *Game, verb, arg string) error {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return ErrCommand("Free whom?")
	}
	a := g.findVisibleArtifact(arg)
	if a == nil || a.Type != types.BoundMonster {
		return ErrCommand("You don't see that here!")
	}
	if guard := g.World.Monsters.Get(a.GuardID); guard != nil &&
		guard.IsAlive() && guard.IsHere(g.World.PlayerRoomID()) {
		return ErrCommand(guard.Name + " won't let you!")
	}
	m := g.World.Monsters.Get(a.LinkedMonsterID)
	a.Destroy()
	if m != nil {
		m.MoveToRoom(g.World.PlayerRoomID())
		g.out.Sayf("You free %s!", m.Name)
	}
	g.World.Refresh()
	return nil
}

// cmdSay speaks words aloud; the say hook can transform or consume them.
func cmdSay(g *Game, verb, arg string) error {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return ErrCommand("Say what?")
	}
	words := g.hookSay(arg)
	if words == "" {
		return nil // hook consumed it
	}
	g.out.Sayf("Okay... \"%s\"", words)
	return nil
}

// cmdUse works an artifact: hook first, then sensible type defaults.
func cmdUse(g *Game, verb, arg string) error {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return ErrCommand("Use what?")
	}
	a := g.World.Artifacts.FindCarried(arg, types.PlayerID)
	if a == nil {
		a = g.findVisibleArtifact(arg)
	}
	if a == nil {
		return ErrCommand("You don't see that here!")
	}
	if !g.hookUse(a) {
		return nil
	}
	switch a.Type {
	case types.Edible:
		return cmdEat(g, "eat", arg)
	case types.Drinkable:
		return cmdDrink(g, "drink", arg)
	case types.Readable:
		return cmdRead(g, "read", arg)
	case types.LightSource:
		return cmdLight(g, "light", arg)
	case types.Weapon, types.MagicWeapon:
		return cmdReady(g, "ready", arg)
	case types.Wearable:
		return cmdWear(g, "wear", arg)
	default:
		g.out.Say("Nothing happens.")
		return nil
	}
}

// cmdInventory lists what the player carries and wears.
func cmdInventory(g *Game, verb, arg string) error {
	p := g.World.Player
	carried := g.World.CarriedBy(p.ID)
	if len(carried) == 0 && p.Gold == 0 {
		g.out.Say("You aren't carrying anything.")
		return nil
	}
	g.out.Say("You are carrying:")
	for _, a := range carried {
		suffix := ""
		if a.IsWorn {
			suffix = " (worn)"
		} else if p.WeaponID == a.ID {
			suffix = " (ready)"
		}
		g.out.Styled("  "+a.Name+suffix, types.StyleNoSpace)
	}
	if p.Gold > 0 {
		g.out.Sayf("You have %d gold pieces.", p.Gold)
	}
	return nil
}

// cmdStatus shows the player's condition.
func cmdStatus(g *Game, verb, arg string) error {
	p := g.World.Player
	g.out.Sayf("%s: HD %d/%d, AG %d, CH %d", p.Name, p.Hardiness-p.Damage, p.Hardiness, p.Agility, p.Charisma)
	if w := g.World.Artifacts.Get(p.WeaponID); w != nil {
		g.out.Sayf("Ready weapon: %s (%dd%d)", w.Name, w.Dice, w.Sides)
	} else {
		g.out.Say("You have no weapon ready!")
	}
	worn := g.World.WornBy(p.ID)
	if len(worn) > 0 {
		names := make([]string, len(worn))
		for i, a := range worn {
			names[i] = a.Name
		}
		g.out.Sayf("Wearing: %s", strings.Join(names, ", "))
	}
	if g.SpeedActive() {
		g.out.Styled("You are moving with unnatural speed!", types.StyleSpecial)
	}
	return nil
}

// cmdWait lets the world act for a turn.
func cmdWait(g *Game, verb, arg string) error {
	g.out.Say("Time passes.")
	return nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
