package alphabet

import (
	"strings"

	"github.com/kbukum/enigmakit/errors"
)

// Size is the number of letters in the alphabet.
const Size = 26

// Position returns the 0-25 position of a letter. Lookup is
// case-insensitive. Any other rune has no position and yields an
// INVALID_CHARACTER error.
func Position(r rune) (int, error) {
	switch {
	case r >= 'A' && r <= 'Z':
		return int(r - 'A'), nil
	case r >= 'a' && r <= 'z':
		return int(r - 'a'), nil
	default:
		return 0, errors.InvalidCharacter(r, -1)
	}
}

// Letter returns the uppercase letter at position i. The position is
// reduced modulo the alphabet size so shift arithmetic can pass
// unreduced values.
func Letter(i int) byte {
	i %= Size
	if i < 0 {
		i += Size
	}
	return byte('A' + i)
}

// Normalize uppercases s and removes whitespace-separated gaps.
// Only whitespace is stripped: digits and punctuation are kept and
// rejected later by position lookup.
func Normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToUpper(s)), "")
}
