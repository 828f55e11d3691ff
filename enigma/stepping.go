package enigma

import "github.com/kbukum/enigmakit/alphabet"

// step advances the rotor offsets. It runs exactly once per input
// character, strictly before that character enters the signal path, so
// even the first character of a message is processed after one step.
//
// The right rotor always advances. Landing on its notch carries into
// the middle rotor, which in turn carries into the left rotor when the
// middle rotor lands on its own notch. Otherwise, if the right rotor
// stopped one position short of its notch, the middle rotor advances
// anyway (the double-step anomaly). At most one of the two
// middle-rotor branches fires per step.
func (m *Machine) step() {
	right, middle, left := m.rotors[0], m.rotors[1], m.rotors[2]

	right.advance()

	if right.atNotch() {
		middle.advance()
		if middle.atNotch() {
			left.advance()
		}
	} else if (right.offset+1)%alphabet.Size == right.notch {
		middle.advance()
	}
}
