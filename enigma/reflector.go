package enigma

import (
	"fmt"

	"github.com/kbukum/enigmakit/alphabet"
	"github.com/kbukum/enigmakit/errors"
)

// reflector is the fixed substitution at the midpoint of the signal
// path. It covers all 26 letters as 13 disjoint couples: an involution
// with no fixed points, which is what makes the full per-character
// transform self-inverse.
type reflector struct {
	table [alphabet.Size]int
}

// newReflector builds the reflection table from a 26-letter wiring
// string and checks the involution and fixed-point-free invariants.
func newReflector(wiring string) (*reflector, error) {
	if len(wiring) != alphabet.Size {
		return nil, errors.InvalidWiring(fmt.Sprintf("reflector wiring must have %d letters (got %d)", alphabet.Size, len(wiring)))
	}
	ref := &reflector{}
	for i := 0; i < alphabet.Size; i++ {
		p, err := alphabet.Position(rune(wiring[i]))
		if err != nil {
			return nil, errors.InvalidWiring(fmt.Sprintf("reflector wiring[%d] = %q is not a letter", i, wiring[i]))
		}
		if p == i {
			return nil, errors.InvalidWiring(fmt.Sprintf("reflector maps %c to itself", wiring[i]))
		}
		ref.table[i] = p
	}
	for i, p := range ref.table {
		if ref.table[p] != i {
			return nil, errors.InvalidWiring("reflector wiring is not an involution")
		}
	}
	return ref, nil
}

// reflect returns the fixed partner position.
func (r *reflector) reflect(p int) int {
	return r.table[p]
}
