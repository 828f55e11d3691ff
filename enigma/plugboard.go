package enigma

import (
	"fmt"

	"github.com/kbukum/enigmakit/alphabet"
	"github.com/kbukum/enigmakit/errors"
)

// plugboard is the fixed pairwise letter-swap layer applied once at
// signal entry and once at signal exit. Letters without a connection
// map to themselves, so the table is an involution.
type plugboard struct {
	table [alphabet.Size]int
}

// newPlugboard builds the swap table from two-letter pair strings.
// Pairs must be disjoint.
func newPlugboard(pairs []string) (*plugboard, error) {
	pb := &plugboard{}
	for i := range pb.table {
		pb.table[i] = i
	}
	for _, pair := range pairs {
		if len(pair) != 2 {
			return nil, errors.InvalidWiring(fmt.Sprintf("plugboard pair %q must have exactly 2 letters", pair))
		}
		a, err := alphabet.Position(rune(pair[0]))
		if err != nil {
			return nil, errors.InvalidWiring(fmt.Sprintf("plugboard pair %q contains a non-letter", pair))
		}
		b, err := alphabet.Position(rune(pair[1]))
		if err != nil {
			return nil, errors.InvalidWiring(fmt.Sprintf("plugboard pair %q contains a non-letter", pair))
		}
		if a == b {
			return nil, errors.InvalidWiring(fmt.Sprintf("plugboard pair %q connects a letter to itself", pair))
		}
		if pb.table[a] != a || pb.table[b] != b {
			return nil, errors.InvalidWiring(fmt.Sprintf("plugboard pair %q overlaps another pair", pair))
		}
		pb.table[a], pb.table[b] = b, a
	}
	return pb, nil
}

// swap returns the paired position, or p unchanged if unpaired.
func (pb *plugboard) swap(p int) int {
	return pb.table[p]
}
