// Package enigma implements a three-rotor electromechanical cipher
// machine with a plugboard and reflector.
//
// The machine is a symmetric, stateful substitution cipher. Rotor
// offsets advance before every character, so two machines built from
// identical settings transform text in lockstep: encrypting with one
// and feeding the result to a freshly constructed second machine
// reproduces the original normalized message. There is no reset
// operation; each side of a round trip must construct its own machine.
//
// # Usage
//
//	m, err := enigma.New("NFC", "GYZ", "DFR")
//	ciphertext, err := m.Encode("HELLO WORLD")
package enigma
