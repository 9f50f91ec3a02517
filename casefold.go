package casefold

import (
	"strings"

	"github.com/rivo/uniseg"
	"golang.org/x/text/language"

	"github.com/charlievieth/casefold/internal/bytealg"
)

// A FoldedString is a case folded string together with a mapping from each
// byte of the folded string to the grapheme cluster of the original string
// that produced it.
//
// A FoldedString is immutable and safe for concurrent use. The zero value
// is equivalent to the result of folding the empty string.
type FoldedString struct {
	folded string
	// graphemes[i] is the ordinal of the original grapheme cluster that
	// produced folded[i]. It has len(folded)+1 entries, the last being the
	// number of grapheme clusters in the original string.
	graphemes []int
}

// String returns the folded string.
func (f *FoldedString) String() string { return f.folded }

// Len returns the length in bytes of the folded string.
func (f *FoldedString) Len() int { return len(f.folded) }

// NumGraphemes returns the number of grapheme clusters in the original
// string.
func (f *FoldedString) NumGraphemes() int {
	if len(f.graphemes) == 0 {
		return 0
	}
	return f.graphemes[len(f.graphemes)-1]
}

func (f *FoldedString) at(i int) int {
	if f.graphemes == nil {
		return 0 // zero value
	}
	return f.graphemes[i]
}

// GraphemeIndex returns the index of the grapheme cluster in the original
// string that produced byte i of the folded string.
//
// Valid indexes are 0 through f.Len() inclusive. The index f.Len(), one
// past the end of the folded string, maps to f.NumGraphemes() so that the
// end of a match at the end of the string can be converted. Any other index
// returns an *OutOfRangeError.
func (f *FoldedString) GraphemeIndex(i int) (int, error) {
	if uint(i) > uint(len(f.folded)) {
		return -1, &OutOfRangeError{Start: i, End: i, Len: len(f.folded)}
	}
	return f.at(i), nil
}

// GraphemeRange converts the byte range [start, end) of the folded string
// into the range [gstart, gend) of grapheme clusters of the original string
// that produced it. An empty range maps to an empty range at the grapheme
// containing start.
//
// If a range boundary falls inside the folded form of a grapheme (for
// example a match of "s" against the "ss" produced by "ß") the whole
// grapheme is included.
func (f *FoldedString) GraphemeRange(start, end int) (gstart, gend int, err error) {
	if start < 0 || end > len(f.folded) || start > end {
		return -1, -1, &OutOfRangeError{Start: start, End: end, Len: len(f.folded)}
	}
	gstart = f.at(start)
	if start == end {
		return gstart, gstart, nil
	}
	return gstart, f.at(end-1) + 1, nil
}

// Mapping returns a copy of the byte to grapheme mapping. The returned slice
// has f.Len()+1 elements.
func (f *FoldedString) Mapping() []int {
	if f.graphemes == nil {
		return []int{0}
	}
	return append([]int(nil), f.graphemes...)
}

// Fold returns the case folded form of s and a mapping from the bytes of the
// folded string to the grapheme clusters of s. The folding variant is chosen
// by ForLocale(tag).
//
// Each grapheme cluster is folded independently of its neighbors, which is
// valid since case folding (unlike case conversion) is not context
// sensitive.
func Fold(s string, tag language.Tag) *FoldedString {
	return FoldVariant(s, ForLocale(tag))
}

// FoldVariant is like Fold but uses the folding Variant v. Unknown variants
// are treated as Default.
func FoldVariant(s string, v Variant) *FoldedString {
	var f *FoldedString
	if bytealg.IndexNonASCII(s) == -1 {
		f = foldASCII(s, v)
	} else {
		f = foldGraphemes(s, v)
	}
	if debug {
		f.validate(s)
	}
	return f
}

func foldGraphemes(s string, v Variant) *FoldedString {
	t := getFolder(v)
	defer putFolder(v, t)

	var b strings.Builder
	b.Grow(len(s))
	graphemes := make([]int, 0, len(s)+1)

	n := 0
	state := -1
	for rest := s; len(rest) > 0; n++ {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		folded := foldString(t, cluster)
		b.WriteString(folded)
		for i := 0; i < len(folded); i++ {
			graphemes = append(graphemes, n)
		}
	}
	// One past the end so that len(folded) can be looked up.
	graphemes = append(graphemes, n)

	return &FoldedString{folded: b.String(), graphemes: graphemes}
}

// SimpleFold returns the case folded form of s without computing a grapheme
// mapping. It is considerably faster than Fold and should be preferred when
// the mapping is not needed.
func SimpleFold(s string, tag language.Tag) string {
	return SimpleFoldVariant(s, ForLocale(tag))
}

// SimpleFoldVariant is like SimpleFold but uses the folding Variant v.
func SimpleFoldVariant(s string, v Variant) string {
	if bytealg.IndexNonASCII(s) == -1 {
		return simpleFoldASCII(s, v)
	}
	t := getFolder(v)
	out := foldString(t, s)
	putFolder(v, t)
	return out
}
