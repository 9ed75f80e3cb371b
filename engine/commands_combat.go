package engine

import (
	"strings"

	"github.com/nathoo/adventurecore/types"
)

// cmdAttack swings at a monster. Attacking anyone makes them hostile,
// friends included.
func cmdAttack(g *Game, verb, arg string) error {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return ErrCommand("Attack whom?")
	}
	room := g.World.PlayerRoom()
	if room != nil && room.IsDark && !g.World.LightHere() {
		return ErrCommand("You can't see anything to attack!")
	}
	m := g.World.Monsters.FindVisible(arg)
	if m == nil {
		return ErrCommand("Nobody here by that name!")
	}
	if !g.hookAttackMonster(m) {
		return nil
	}
	g.resolveReaction(m)
	if m.Reaction != types.ReactionHostile {
		m.Reaction = types.ReactionHostile
	}
	g.inBattle = true
	g.attack(g.World.Player, 0, m)
	return nil
}

// cmdCast handles the four spells; the verb is the spell name.
func cmdCast(g *Game, verb, arg string) error {
	spell := types.Spell(verb)
	p := g.World.Player

	base := p.BaseSpellAbilities[spell]
	if base <= 0 {
		return ErrCommand("You don't know that spell!")
	}

	current := p.SpellAbilities[spell]
	roll := g.Dice.Percent()
	// Casting strains the caster: current ability halves on each attempt
	// and recovers one point per turn.
	p.SpellAbilities[spell] = current / 2

	if roll > current {
		g.out.Say("Nothing happens.")
		return nil
	}

	switch spell {
	case types.SpellBlast:
		return castBlast(g, arg)
	case types.SpellHeal:
		return castHeal(g, arg)
	case types.SpellSpeed:
		castSpeed(g)
	case types.SpellPower:
		castPower(g)
	}
	return nil
}

func castBlast(g *Game, arg string) error {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return ErrCommand("Blast whom?")
	}
	m := g.World.Monsters.FindVisible(arg)
	if m == nil {
		return ErrCommand("Nobody here by that name!")
	}
	g.resolveReaction(m)
	m.Reaction = types.ReactionHostile
	g.inBattle = true
	g.out.StyledF(types.StyleSpecial, "ZAP! Your blast strikes %s!", m.Name)
	damage := g.Dice.RollDice(1, 6)
	g.InflictDamage(g.World.Player, m, damage, false)
	return nil
}

func castHeal(g *Game, arg string) error {
	arg = strings.TrimSpace(arg)
	target := g.World.Player
	if arg != "" && !strings.EqualFold(arg, "me") {
		m := g.World.Monsters.FindVisible(arg)
		if m == nil {
			return ErrCommand("Nobody here by that name!")
		}
		target = m
	}
	healed := g.Dice.RollDice(1, 10)
	target.Damage -= healed
	if target.Damage < 0 {
		target.Damage = 0
	}
	if target.IsPlayer() {
		g.out.Styled("Some of your wounds heal!", types.StyleSuccess)
	} else {
		g.out.StyledF(types.StyleSuccess, "Some of %s wounds heal!", possessive(target))
	}
	return nil
}

func castSpeed(g *Game) {
	g.speedTimer += 10 + g.Dice.Roll(10)
	g.out.Styled("You feel much faster!", types.StyleSpecial)
}

// castPower is the wildcard spell: its effect belongs to the adventure.
// Without a power hook the default is a harmless boom.
func castPower(g *Game) {
	roll := g.Dice.Percent()
	if g.hookPower(roll) {
		return
	}
	g.out.Styled("You hear a loud sonic boom which echoes all around you!", types.StyleSpecial)
}
