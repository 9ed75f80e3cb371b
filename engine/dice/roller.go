// Package dice provides the engine's single substitutable source of
// randomness. Injecting a scripted roller gives deterministic replays of
// pre-recorded rolls in tests.
package dice

// Roller is the roll source every rules component draws from.
type Roller interface {
	// Roll returns a uniform integer in [1, sides].
	Roll(sides int) int
	// RollDice returns the sum of count rolls of a sides-sided die.
	RollDice(count, sides int) int
	// Percent returns a uniform integer in [1, 100].
	Percent() int
}
