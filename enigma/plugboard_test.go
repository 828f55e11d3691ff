package enigma

import (
	"testing"

	"github.com/kbukum/enigmakit/alphabet"
)

func TestPlugboardInvolution(t *testing.T) {
	pb, err := newPlugboard(plugboardPairs)
	if err != nil {
		t.Fatalf("newPlugboard failed: %v", err)
	}
	for p := 0; p < alphabet.Size; p++ {
		if got := pb.swap(pb.swap(p)); got != p {
			t.Errorf("swap(swap(%d)) = %d", p, got)
		}
	}
}

func TestPlugboardPairs(t *testing.T) {
	pb, err := newPlugboard(plugboardPairs)
	if err != nil {
		t.Fatalf("newPlugboard failed: %v", err)
	}
	tests := []struct {
		in, want byte
	}{
		{'A', 'G'},
		{'G', 'A'},
		{'N', 'Q'},
		{'Q', 'N'},
		// Unpaired letters map to themselves.
		{'O', 'O'},
		{'R', 'R'},
		{'S', 'S'},
		{'U', 'U'},
		{'W', 'W'},
		{'Y', 'Y'},
	}
	for _, tc := range tests {
		got := alphabet.Letter(pb.swap(int(tc.in - 'A')))
		if got != tc.want {
			t.Errorf("swap(%c) = %c, want %c", tc.in, got, tc.want)
		}
	}
}

func TestNewPlugboardRejectsBadPairs(t *testing.T) {
	tests := []struct {
		name  string
		pairs []string
	}{
		{"too long", []string{"ABC"}},
		{"too short", []string{"A"}},
		{"self pair", []string{"AA"}},
		{"overlap", []string{"AB", "BC"}},
		{"non-letter", []string{"A1"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := newPlugboard(tc.pairs); err == nil {
				t.Errorf("newPlugboard(%v) should fail", tc.pairs)
			}
		})
	}
}
