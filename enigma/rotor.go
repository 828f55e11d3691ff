package enigma

import (
	"fmt"

	"github.com/kbukum/enigmakit/alphabet"
	"github.com/kbukum/enigmakit/errors"
)

// rotor applies a fixed wiring permutation shifted by a rotating
// contact offset. The wiring and ring setting are fixed at
// construction; only the offset mutates, and only through advance.
type rotor struct {
	wiring  [alphabet.Size]int
	inverse [alphabet.Size]int
	ring    int
	notch   int
	offset  int
}

// newRotor builds a rotor from a 26-letter wiring string. The wiring
// must be a bijection over the alphabet; the inverse table is computed
// here once and reused for every reverse pass.
func newRotor(wiring string, ring, notch, offset int) (*rotor, error) {
	if len(wiring) != alphabet.Size {
		return nil, errors.InvalidWiring(fmt.Sprintf("rotor wiring must have %d letters (got %d)", alphabet.Size, len(wiring)))
	}
	r := &rotor{ring: ring, notch: notch, offset: offset}
	var seen [alphabet.Size]bool
	for i := 0; i < alphabet.Size; i++ {
		p, err := alphabet.Position(rune(wiring[i]))
		if err != nil {
			return nil, errors.InvalidWiring(fmt.Sprintf("rotor wiring[%d] = %q is not a letter", i, wiring[i]))
		}
		if seen[p] {
			return nil, errors.InvalidWiring(fmt.Sprintf("rotor wiring has duplicate image %c", wiring[i]))
		}
		seen[p] = true
		r.wiring[i] = p
		r.inverse[p] = i
	}
	return r, nil
}

// forward passes a contact position through the rotor towards the
// reflector. The wiring is fixed to the rotor body while the entry and
// exit contacts are rotated by offset relative to the ring setting.
func (r *rotor) forward(p int) int {
	in := mod(p + r.offset - r.ring)
	return mod(r.wiring[in] - r.offset + r.ring)
}

// reverse passes a contact position back through the rotor after the
// reflector, using the precomputed inverse wiring. For a fixed offset
// and ring setting, reverse(forward(p)) == p.
func (r *rotor) reverse(p int) int {
	in := mod(p + r.offset - r.ring)
	return mod(r.inverse[in] - r.offset + r.ring)
}

// advance rotates the rotor by one position. It is the only mutator of
// rotor state.
func (r *rotor) advance() {
	r.offset = (r.offset + 1) % alphabet.Size
}

// atNotch reports whether the rotor currently sits on its notch.
func (r *rotor) atNotch() bool {
	return r.offset == r.notch
}

// mod reduces n into the 0-25 contact range.
func mod(n int) int {
	n %= alphabet.Size
	if n < 0 {
		n += alphabet.Size
	}
	return n
}
