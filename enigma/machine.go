package enigma

import (
	"fmt"
	"strings"

	"github.com/kbukum/enigmakit/alphabet"
	"github.com/kbukum/enigmakit/errors"
)

// Machine is a three-rotor cipher machine with a plugboard and
// reflector. Rotor offsets mutate as characters are processed and
// there is no reset operation: reusing one instance for both sides of
// a round trip is invalid. Construct a fresh machine from identical
// settings for each direction.
//
// A Machine is not safe for concurrent use; independent messages need
// independent instances. The wiring, plugboard, reflector, ring
// settings and notches are immutable after construction.
type Machine struct {
	rotors    [settingLength]*rotor
	plugboard *plugboard
	reflector *reflector
}

// New constructs a machine from three 3-letter setting strings: the
// initial rotor offsets, the ring settings, and the notch positions,
// each given rightmost rotor first. Settings are case-insensitive. A
// string that is not exactly 3 letters fails with INVALID_SETTING.
func New(offsets, rings, notches string) (*Machine, error) {
	off, err := parseSetting("offsets", offsets)
	if err != nil {
		return nil, err
	}
	rng, err := parseSetting("rings", rings)
	if err != nil {
		return nil, err
	}
	ntc, err := parseSetting("notches", notches)
	if err != nil {
		return nil, err
	}

	m := &Machine{}
	wirings := [settingLength]string{rotor1Wiring, rotor2Wiring, rotor3Wiring}
	for i := range m.rotors {
		r, err := newRotor(wirings[i], rng[i], ntc[i], off[i])
		if err != nil {
			return nil, err
		}
		m.rotors[i] = r
	}

	pb, err := newPlugboard(plugboardPairs)
	if err != nil {
		return nil, err
	}
	m.plugboard = pb

	ref, err := newReflector(reflectorWiring)
	if err != nil {
		return nil, err
	}
	m.reflector = ref

	return m, nil
}

// Encode passes message through the machine and returns the resulting
// character stream. The input is uppercased and whitespace gaps are
// removed before any character enters the signal path; every remaining
// character must be a letter A-Z, otherwise the whole operation fails
// with INVALID_CHARACTER and no partial output is returned.
//
// Encoding and decoding are the same operation: feeding the output to
// a freshly constructed machine with identical settings yields back
// the normalized input.
func (m *Machine) Encode(message string) (string, error) {
	normalized := alphabet.Normalize(message)

	var out strings.Builder
	out.Grow(len(normalized))
	for i, r := range normalized {
		p, err := alphabet.Position(r)
		if err != nil {
			return "", errors.InvalidCharacter(r, i)
		}

		m.step()

		p = m.plugboard.swap(p)
		p = m.rotors[0].forward(p)
		p = m.rotors[1].forward(p)
		p = m.rotors[2].forward(p)
		p = m.reflector.reflect(p)
		p = m.rotors[2].reverse(p)
		p = m.rotors[1].reverse(p)
		p = m.rotors[0].reverse(p)
		p = m.plugboard.swap(p)

		out.WriteByte(alphabet.Letter(p))
	}
	return out.String(), nil
}

// parseSetting converts a 3-letter setting string into alphabet
// positions, rightmost rotor first.
func parseSetting(field, value string) ([settingLength]int, error) {
	var out [settingLength]int
	runes := []rune(value)
	if len(runes) != settingLength {
		return out, errors.InvalidSetting(field, fmt.Sprintf("must be exactly %d letters (got %d)", settingLength, len(runes)))
	}
	for i, r := range runes {
		p, err := alphabet.Position(r)
		if err != nil {
			return out, errors.InvalidSetting(field, fmt.Sprintf("%q is not a letter", r))
		}
		out[i] = p
	}
	return out, nil
}
