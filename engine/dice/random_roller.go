package dice

import "math/rand"

// randomRoller implements Roller over math/rand with deterministic
// position tracking, so a save can restore the exact RNG state.
type randomRoller struct {
	seed int64
	src  *rand.Rand
	pos  int64
}

// NewRandom creates a seeded roller.
func NewRandom(seed int64) Roller {
	return &randomRoller{seed: seed, src: rand.New(rand.NewSource(seed))}
}

// Restore creates a roller and advances it to the given position,
// reproducing the state a save captured.
func Restore(seed, position int64) Roller {
	r := &randomRoller{seed: seed, src: rand.New(rand.NewSource(seed))}
	for i := int64(0); i < position; i++ {
		r.src.Int63()
	}
	r.pos = position
	return r
}

func (r *randomRoller) Roll(sides int) int {
	if sides < 1 {
		return 0
	}
	// Exactly one source draw per roll, so Restore can replay the
	// stream position without knowing the sides of each past roll.
	r.pos++
	return int(r.src.Int63()%int64(sides)) + 1
}

func (r *randomRoller) RollDice(count, sides int) int {
	total := 0
	for i := 0; i < count; i++ {
		total += r.Roll(sides)
	}
	return total
}

func (r *randomRoller) Percent() int { return r.Roll(100) }

// Seed returns the roller's seed.
func (r *randomRoller) Seed() int64 { return r.seed }

// Position returns the number of draws made since creation.
func (r *randomRoller) Position() int64 { return r.pos }

// Positioned is implemented by rollers whose state can be captured in a
// save as (seed, position).
type Positioned interface {
	Seed() int64
	Position() int64
}
