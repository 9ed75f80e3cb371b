package engine

import (
	"github.com/nathoo/adventurecore/engine/world"
	"github.com/nathoo/adventurecore/types"
)

// Combat resolution. All percentage bands here are load-bearing: adventure
// content is balanced against the exact distribution, so the boundaries
// must not be "simplified".

// attack resolves one swing by one member of the attacker against the
// defender: to-hit, critical, fumble, damage, and degradation.
func (g *Game) attack(attacker *world.Monster, member int, defender *world.Monster) {
	var weapon *world.Artifact
	if id := attacker.MemberWeapon(member); id > 0 {
		weapon = g.World.Artifacts.Get(id)
	}

	g.narrateSwing(attacker, defender, weapon)

	odds := g.ToHitOdds(attacker, defender, weapon)
	roll := g.Dice.Percent()

	// Rolls of 1-5 always hit: the guaranteed floor that carries the
	// critical opportunity.
	if roll <= odds || roll <= 5 {
		g.resolveHit(attacker, defender, weapon, roll, odds)
		return
	}

	// 97-100 is a fumble, but only with a real weapon; natural attacks
	// simply miss.
	if roll >= 97 && weapon != nil {
		g.resolveFumble(attacker, member, weapon)
		return
	}

	g.narrateMiss(defender, weapon, roll)
}

// ToHitOdds computes the percentage chance to hit before the 5% floor.
func (g *Game) ToHitOdds(attacker, defender *world.Monster, weapon *world.Artifact) int {
	odds := 50 + 2*(g.effectiveAgility(attacker)-g.effectiveAgility(defender))

	if weapon != nil {
		wo := weapon.WeaponOdds
		if wo > 30 {
			wo = 30
		}
		odds += wo / 2
	}

	if attacker.IsPlayer() {
		wt := types.NaturalWeapon
		if weapon != nil {
			wt = weapon.WeaponType
		}
		prof := attacker.WeaponAbilities[wt]
		if prof > 100 {
			prof = 100
		}
		odds += prof / 4
		odds -= g.armorFactor()
	}
	return odds
}

// effectiveAgility folds the speed spell and armor encumbrance into a
// monster's agility: min(agility × speed, 30) − min(armor class, 7).
func (g *Game) effectiveAgility(m *world.Monster) int {
	ag := m.Agility
	if m.IsPlayer() && g.speedTimer > 0 {
		ag *= 2
	}
	if ag > 30 {
		ag = 30
	}
	ac := g.armorClassOf(m)
	if ac > 7 {
		ac = 7
	}
	return ag - ac
}

// armorClassOf is the monster's natural armor, or for the player the sum
// of worn armor.
func (g *Game) armorClassOf(m *world.Monster) int {
	if !m.IsPlayer() {
		return m.ArmorClass
	}
	ac := 0
	for _, a := range g.World.WornBy(m.ID) {
		ac += a.ArmorClass
	}
	return ac
}

// armorFactor is the player's to-hit penalty for wearing armor beyond
// their expertise, floored at zero.
func (g *Game) armorFactor() int {
	p := g.World.Player
	penalty := 0
	for _, a := range g.World.WornBy(p.ID) {
		penalty += a.ArmorPenalty
	}
	penalty -= p.ArmorExpertise
	if penalty < 0 {
		penalty = 0
	}
	return penalty
}

// resolveHit rolls damage, applies the critical tiers for rolls of 1-5,
// and gives the player the learn-by-doing ability checks.
func (g *Game) resolveHit(attacker, defender *world.Monster, weapon *world.Artifact, roll, odds int) {
	var damage int
	if weapon != nil {
		damage = g.Dice.RollDice(weapon.Dice, weapon.Sides)
	} else {
		damage = g.Dice.RollDice(attacker.Dice, attacker.Sides)
	}

	ignoreArmor := false
	if roll <= 5 {
		g.out.Styled("-- a critical hit!", types.StyleSuccess)
		crit := g.Dice.Percent()
		switch {
		case crit <= 50:
			ignoreArmor = true
		case crit <= 85:
			damage = damage * 3 / 2
		case crit <= 95:
			damage *= 2
		case crit <= 99:
			damage *= 3
		default:
			// Instant kill: lethal damage straight through armor.
			damage = defender.Hardiness - defender.Damage
			if damage < 1 {
				damage = 1
			}
			ignoreArmor = true
		}
	} else {
		g.out.Styled("-- a hit!", types.StyleSuccess)
	}

	if attacker.IsPlayer() {
		g.playerAbilityChecks(weapon, odds)
	}

	g.InflictDamage(attacker, defender, damage, ignoreArmor)
}

// playerAbilityChecks gives a chance to permanently raise the relevant
// weapon proficiency, and armor expertise while fighting encumbered.
func (g *Game) playerAbilityChecks(weapon *world.Artifact, odds int) {
	p := g.World.Player
	wt := types.NaturalWeapon
	if weapon != nil {
		wt = weapon.WeaponType
	}
	if g.Dice.Percent() > odds {
		if prof := p.WeaponAbilities[wt]; prof < 100 {
			prof += 2
			if prof > 100 {
				prof = 100
			}
			p.WeaponAbilities[wt] = prof
			g.out.Styled("Your weapon ability increases!", types.StyleSpecial)
		}
	}
	if g.armorFactor() > 0 && g.Dice.Percent() > p.ArmorExpertise {
		p.ArmorExpertise += 2
		g.out.Styled("Your armor expertise increases!", types.StyleSpecial)
	}
}

// InflictDamage applies damage to a monster, after armor absorption and
// the attackDamage hook (player attacks only). Deaths are resolved here:
// a group monster loses one member; a singleton drops its inventory,
// leaves a dead body if configured, and is removed from the world.
func (g *Game) InflictDamage(attacker, defender *world.Monster, damage int, ignoreArmor bool) {
	if attacker != nil && attacker.IsPlayer() {
		damage = g.hookAttackDamage(attacker, defender, damage)
	}
	if !ignoreArmor {
		damage -= g.armorClassOf(defender)
	}
	if damage <= 0 {
		g.out.Sayf("The blow bounces off %s armor!", possessive(defender))
		return
	}
	defender.Damage += damage
	g.HurtMonster(defender)
}

// HurtMonster checks a monster for death after its damage changed.
func (g *Game) HurtMonster(m *world.Monster) {
	if m.Damage < m.Hardiness {
		return
	}
	if m.IsPlayer() {
		g.Die()
		return
	}
	if m.Count > 1 {
		g.out.StyledF(types.StyleSuccess, "One of the %ss is dead!", m.Name)
		m.KillMember(0)
		return
	}
	g.KillMonster(m)
}

// KillMonster finishes off a monster: inventory drops into its room, a
// configured dead body appears, and the monster leaves the location union.
func (g *Game) KillMonster(m *world.Monster) {
	g.out.StyledF(types.StyleSuccess, "%s is dead!", m.Name)
	roomID := 0
	if loc, ok := m.Location().(world.InRoom); ok {
		roomID = loc.RoomID
	}
	if roomID != 0 {
		g.World.DropAll(m.ID, roomID)
		if body := g.World.Artifacts.Get(m.DeadBodyID); body != nil {
			body.MoveToRoom(roomID)
		}
	}
	m.Count = 0
	m.Members = nil
	m.Remove()
	g.World.Refresh()
}

// resolveFumble plays out a roll of 97-100: the attacker loses control of
// its weapon to one of the fumble bands.
func (g *Game) resolveFumble(attacker *world.Monster, member int, weapon *world.Artifact) {
	g.out.Styled("-- a fumble!", types.StyleWarning)
	sub := g.Dice.Percent()
	switch {
	case sub <= 40:
		g.out.Say("-- fumble recovered!")

	case sub <= 80:
		g.out.StyledF(types.StyleWarning, "%s drops %s!", attacker.Name, weapon.Name)
		if roomID := g.World.PlayerRoomID(); roomID != 0 {
			weapon.MoveToRoom(roomID)
		}
		attacker.DisarmMember(member)

	case sub <= 85:
		g.out.StyledF(types.StyleWarning, "-- the %s rebounds on %s!", weapon.Name, attacker.Name)
		g.InflictDamage(nil, attacker, g.Dice.RollDice(weapon.Dice, weapon.Sides), false)

	case sub <= 95:
		// Damaged: maximum damage drops by two.
		weapon.Sides -= 2
		if weapon.Sides > 0 {
			g.out.StyledF(types.StyleWarning, "-- the %s is damaged!", weapon.Name)
			return
		}
		g.destroyWeapon(attacker, member, weapon)

	default:
		g.destroyWeapon(attacker, member, weapon)
		if g.Dice.Roll(2) == 1 {
			g.out.StyledF(types.StyleDanger, "-- the shattered %s wounds %s!", weapon.Name, attacker.Name)
			g.InflictDamage(nil, attacker, g.Dice.RollDice(weapon.Dice, weapon.Sides), false)
		}
		attacker.Courage /= 2
	}
}

func (g *Game) destroyWeapon(attacker *world.Monster, member int, weapon *world.Artifact) {
	g.out.StyledF(types.StyleDanger, "-- the %s is destroyed!", weapon.Name)
	weapon.Destroy()
	attacker.DisarmMember(member)
}

func (g *Game) narrateSwing(attacker, defender *world.Monster, weapon *world.Artifact) {
	with := ""
	if weapon != nil {
		with = " with " + weapon.Name
	}
	if attacker.IsPlayer() {
		g.out.Sayf("You attack %s%s...", defender.Name, with)
	} else if defender.IsPlayer() {
		g.out.StyledF(types.StyleDanger, "%s attacks you%s...", attacker.Name, with)
	} else {
		g.out.Sayf("%s attacks %s%s...", attacker.Name, defender.Name, with)
	}
}

// narrateMiss picks a miss line keyed by weapon type. The variant is
// derived from the to-hit roll so no extra dice are consumed.
func (g *Game) narrateMiss(defender *world.Monster, weapon *world.Artifact, roll int) {
	lines := missLines(weapon)
	g.out.Say("-- " + lines[roll%len(lines)])
	_ = defender
}

func missLines(weapon *world.Artifact) []string {
	if weapon == nil {
		return []string{"a miss!", "dodged!"}
	}
	switch weapon.WeaponType {
	case types.Axe, types.Club:
		return []string{"a miss!", "dodged!"}
	case types.Bow:
		return []string{"a miss!", "wide of the mark!"}
	case types.Spear, types.Sword:
		return []string{"a miss!", "parried!"}
	default:
		return []string{"a miss!", "dodged!"}
	}
}

func possessive(m *world.Monster) string {
	if m.IsPlayer() {
		return "your"
	}
	return m.Name + "'s"
}
