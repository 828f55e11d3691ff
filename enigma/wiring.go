package enigma

// Fixed wiring tables. Each wiring string maps input position i to the
// letter at index i; every table is a permutation of the alphabet.
const (
	rotor1Wiring = "EKMFLGDQVZNTOWYHXUSPAIBRCJ" // rightmost rotor, first in the signal path
	rotor2Wiring = "KTSBPOGULRHEFMDWVANQIXJYCZ" // middle rotor
	rotor3Wiring = "SBWPUDHTGFCNEYAROILXKJZMQV" // leftmost rotor

	// reflectorWiring pairs the alphabet into 13 disjoint couples with
	// no fixed points.
	reflectorWiring = "RQPONMLKJIHGFEDCBAZYXWVUTS"
)

// plugboardPairs lists the fixed Steckerbrett connections. Letters not
// listed map to themselves.
var plugboardPairs = []string{"AG", "BK", "CM", "DZ", "EL", "FT", "HV", "IP", "JX", "NQ"}

// settingLength is the number of letters in each machine setting
// string, one per rotor.
const settingLength = 3
