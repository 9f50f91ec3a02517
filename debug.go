package casefold

import (
	"log"

	"github.com/rivo/uniseg"
)

// WARN: DEV ONLY
const debug = false

// const debug = true

// validate panics if the mapping of f is inconsistent with the original
// string s.
func (f *FoldedString) validate(s string) {
	if len(f.graphemes) != len(f.folded)+1 {
		log.Panicf("casefold: %q: mapping has %d entries; want: %d",
			s, len(f.graphemes), len(f.folded)+1)
	}
	for i := 1; i < len(f.graphemes); i++ {
		if f.graphemes[i] < f.graphemes[i-1] {
			log.Panicf("casefold: %q: mapping decreases at index %d: %d < %d",
				s, i, f.graphemes[i], f.graphemes[i-1])
		}
	}
	if n, want := f.NumGraphemes(), uniseg.GraphemeClusterCount(s); n != want {
		log.Panicf("casefold: %q: NumGraphemes() = %d; want: %d", s, n, want)
	}
}
