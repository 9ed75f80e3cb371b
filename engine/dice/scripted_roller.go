package dice

// ScriptedRoller replays a fixed sequence of results. Tests use it to
// drive combat through exact to-hit, critical, and fumble bands. When the
// script runs out it keeps returning Fallback (clamped to the die size).
type ScriptedRoller struct {
	Rolls    []int
	Fallback int
	next     int
}

// NewScripted creates a roller that returns the given results in order.
func NewScripted(rolls ...int) *ScriptedRoller {
	return &ScriptedRoller{Rolls: rolls, Fallback: 1}
}

func (s *ScriptedRoller) Roll(sides int) int {
	v := s.Fallback
	if s.next < len(s.Rolls) {
		v = s.Rolls[s.next]
		s.next++
	}
	if v > sides {
		v = sides
	}
	if v < 1 {
		v = 1
	}
	return v
}

func (s *ScriptedRoller) RollDice(count, sides int) int {
	total := 0
	for i := 0; i < count; i++ {
		total += s.Roll(sides)
	}
	return total
}

func (s *ScriptedRoller) Percent() int { return s.Roll(100) }

// Remaining returns how many scripted results are left unconsumed.
func (s *ScriptedRoller) Remaining() int { return len(s.Rolls) - s.next }
