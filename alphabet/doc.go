// Package alphabet provides the 26-letter alphabet index used by the
// cipher engine.
//
// It converts between letters and integer positions 0-25 in O(1) and
// normalizes message text before it enters the signal path.
//
// # Usage
//
//	p, err := alphabet.Position('H') // 7
//	l := alphabet.Letter(7)          // 'H'
package alphabet
