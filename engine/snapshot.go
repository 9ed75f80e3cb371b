package engine

import (
	"fmt"

	"github.com/nathoo/adventurecore/engine/dice"
	"github.com/nathoo/adventurecore/engine/save"
)

// Snapshot captures the full resumable state of an active game. Saving
// mid-question is refused: the pending continuation is a closure and
// cannot be serialized.
func (g *Game) Snapshot() (*save.Snapshot, error) {
	if g.state != StateActive {
		return nil, fmt.Errorf("only an active game can be saved")
	}
	if g.pending != nil {
		return nil, fmt.Errorf("answer the pending question before saving")
	}
	meta := save.Meta{
		Clock:      g.clock,
		SpeedTimer: g.speedTimer,
		InBattle:   g.inBattle,
	}
	if pos, ok := g.Dice.(dice.Positioned); ok {
		meta.DiceSeed = pos.Seed()
		meta.DicePosition = pos.Position()
	}
	return save.Capture(g.World, meta), nil
}

// RestoreSnapshot rewinds this game to a snapshot taken against the same
// adventure content. The roll stream resumes at its saved position, so a
// restored session replays identically.
func (g *Game) RestoreSnapshot(s *save.Snapshot) error {
	if s.Version != save.FormatVersion {
		return fmt.Errorf("unsupported save version %d", s.Version)
	}
	if err := save.Apply(g.World, s); err != nil {
		return err
	}
	g.clock = s.Meta.Clock
	g.speedTimer = s.Meta.SpeedTimer
	g.inBattle = s.Meta.InBattle
	g.skipBattle = false
	g.pending = nil
	g.state = StateActive
	if s.Meta.DiceSeed != 0 || s.Meta.DicePosition != 0 {
		g.Dice = dice.Restore(s.Meta.DiceSeed, s.Meta.DicePosition)
	}
	return nil
}
