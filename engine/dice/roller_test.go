package dice

import "testing"

func TestRandomRollerRange(t *testing.T) {
	r := NewRandom(1)
	for i := 0; i < 1000; i++ {
		if v := r.Roll(6); v < 1 || v > 6 {
			t.Fatalf("roll out of range: %d", v)
		}
		if v := r.Percent(); v < 1 || v > 100 {
			t.Fatalf("percent out of range: %d", v)
		}
	}
}

func TestRandomRollerDeterministic(t *testing.T) {
	a := NewRandom(42)
	b := NewRandom(42)
	for i := 0; i < 100; i++ {
		if a.Roll(20) != b.Roll(20) {
			t.Fatal("same seed must produce the same sequence")
		}
	}
}

func TestRestoreReplaysPosition(t *testing.T) {
	a := NewRandom(42)
	for i := 0; i < 57; i++ {
		a.Roll(100)
	}
	pos := a.(Positioned)

	b := Restore(pos.Seed(), pos.Position())
	for i := 0; i < 50; i++ {
		// Mixed die sizes: position must stay aligned regardless.
		if a.Roll(6) != b.Roll(6) {
			t.Fatal("restored roller diverged on d6")
		}
		if a.Percent() != b.Percent() {
			t.Fatal("restored roller diverged on percent")
		}
	}
}

func TestRollDiceSums(t *testing.T) {
	s := NewScripted(3, 4, 5)
	if got := s.RollDice(3, 6); got != 12 {
		t.Errorf("RollDice = %d, want 12", got)
	}
}

func TestScriptedClampsToDie(t *testing.T) {
	s := NewScripted(10)
	if got := s.Roll(6); got != 6 {
		t.Errorf("Roll = %d, want clamped 6", got)
	}
	// Script exhausted: fallback 1.
	if got := s.Roll(6); got != 1 {
		t.Errorf("Roll = %d, want fallback 1", got)
	}
}
