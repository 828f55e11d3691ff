package enigma

import "testing"

func offsets(m *Machine) [3]int {
	return [3]int{m.rotors[0].offset, m.rotors[1].offset, m.rotors[2].offset}
}

func TestStepRightRotorAlwaysAdvances(t *testing.T) {
	m, err := New("AAA", "AAA", "ZZZ")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	m.step()
	if got := offsets(m); got != [3]int{1, 0, 0} {
		t.Errorf("offsets after step = %v, want [1 0 0]", got)
	}
}

func TestStepCarriesIntoMiddleRotor(t *testing.T) {
	// Right rotor at B advances to C, its notch: middle rotor advances.
	// Middle rotor lands on F, short of its notch Z, so the left rotor
	// holds.
	m, err := New("BEA", "AAA", "CZA")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	m.step()
	if got := offsets(m); got != [3]int{2, 5, 0} {
		t.Errorf("offsets after step = %v, want [2 5 0]", got)
	}
}

func TestStepCascadesIntoLeftRotor(t *testing.T) {
	// Right rotor lands on its notch C and the middle rotor's advance
	// lands on its own notch F: all three rotors move in one step.
	m, err := New("BEA", "AAA", "CFA")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	m.step()
	if got := offsets(m); got != [3]int{2, 5, 1} {
		t.Errorf("offsets after step = %v, want [2 5 1]", got)
	}
}

func TestStepDoubleStepAnomaly(t *testing.T) {
	// Right rotor advances to B, one position short of its notch C: the
	// middle rotor advances even though the right rotor did not land on
	// its notch.
	m, err := New("AAA", "AAA", "CAZ")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	m.step()
	if got := offsets(m); got != [3]int{1, 1, 0} {
		t.Errorf("offsets after step = %v, want [1 1 0]", got)
	}
}

func TestStepBranchesAreExclusive(t *testing.T) {
	// When the right rotor lands on its notch, only the carry branch
	// fires: the middle rotor advances exactly once.
	m, err := New("BAA", "AAA", "CZZ")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	m.step()
	if got := offsets(m); got != [3]int{2, 1, 0} {
		t.Errorf("offsets after step = %v, want [2 1 0]", got)
	}
}

func TestStepConsecutiveDoubleStep(t *testing.T) {
	// The anomaly makes the middle rotor move on two consecutive steps:
	// once via the short-of-notch branch, then again via the carry.
	m, err := New("AAA", "AAA", "CAZ")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	m.step()
	if got := offsets(m); got != [3]int{1, 1, 0} {
		t.Errorf("offsets after first step = %v, want [1 1 0]", got)
	}
	m.step()
	if got := offsets(m); got != [3]int{2, 2, 0} {
		t.Errorf("offsets after second step = %v, want [2 2 0]", got)
	}
}

func TestStepWrapsAroundAlphabet(t *testing.T) {
	m, err := New("ZAA", "AAA", "ZZZ")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	m.step()
	if got := offsets(m); got != [3]int{0, 0, 0} {
		t.Errorf("offsets after wrap = %v, want [0 0 0]", got)
	}
}
