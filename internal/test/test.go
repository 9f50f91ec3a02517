// Package test contains test tables and helpers shared by the casefold
// package and the casefold command.
package test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/rivo/uniseg"
	"golang.org/x/exp/slices"
	"golang.org/x/text/language"
)

// Folded is the read-only interface of a *casefold.FoldedString.
type Folded interface {
	String() string
	Len() int
	NumGraphemes() int
	Mapping() []int
	GraphemeIndex(i int) (int, error)
}

// FoldFunc folds s for the locale tag.
type FoldFunc func(s string, tag language.Tag) Folded

// SimpleFoldFunc folds s for the locale tag without a mapping.
type SimpleFoldFunc func(s string, tag language.Tag) string

type FoldTest struct {
	In      string
	Tag     language.Tag
	Out     string
	Mapping []int
}

var (
	und     = language.Und
	english = language.English
	turkish = language.Turkish
	azeri   = language.Azerbaijani
)

var FoldTests = []FoldTest{
	{"", und, "", []int{0}},
	{"", turkish, "", []int{0}},
	{"a", und, "a", []int{0, 1}},
	{"Hello", und, "hello", []int{0, 1, 2, 3, 4, 5}},
	{"Hello", turkish, "hello", []int{0, 1, 2, 3, 4, 5}},
	{"HELLO", english, "hello", []int{0, 1, 2, 3, 4, 5}},
	{"a\r\nb", und, "a\r\nb", []int{0, 1, 1, 2, 3}},
	{"\n\r", und, "\n\r", []int{0, 1, 2}},

	// Multi-byte output from a single byte input
	{"I", turkish, "\u0131", []int{0, 0, 1}},
	{"I", azeri, "\u0131", []int{0, 0, 1}},
	{"I", und, "i", []int{0, 1}},
	{"IiI", turkish, "\u0131i\u0131", []int{0, 0, 1, 2, 2, 3}},

	// Dotted capital I
	{"\u0130", und, "i\u0307", []int{0, 0, 0, 1}},
	{"\u0130", english, "i\u0307", []int{0, 0, 0, 1}},
	{"\u0130", turkish, "i", []int{0, 1}},
	{"\u0130", azeri, "i", []int{0, 1}},
	{"\u0131", und, "\u0131", []int{0, 0, 1}},
	{"\u0131", turkish, "\u0131", []int{0, 0, 1}},
	{"D\u0130YARBAKIR", turkish, "diyarbak\u0131r", []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 8, 9, 10}},

	// Expansion
	{"ß", und, "ss", []int{0, 0, 1}},
	{"ß", turkish, "ss", []int{0, 0, 1}},
	{"Straße", und, "strasse", []int{0, 1, 2, 3, 4, 4, 5, 6}},
	{"\u1e9e", und, "ss", []int{0, 0, 1}},         // 'ẞ'
	{"\ufb03", und, "ffi", []int{0, 0, 0, 1}},     // 'ﬃ'
	{"\u0149", und, "\u02bcn", []int{0, 0, 0, 1}}, // 'ŉ'

	// Same encoded length
	{"ΑΒΓ", und, "αβγ", []int{0, 0, 1, 1, 2, 2, 3}},
	{"ΣΑΣ", und, "σασ", []int{0, 0, 1, 1, 2, 2, 3}},
	{"\u00b5", und, "\u03bc", []int{0, 0, 1}}, // micro sign

	// Contraction
	{"\u212a", und, "k", []int{0, 1}}, // Kelvin sign
	{"a\u212a", und, "ak", []int{0, 1, 2}},

	// Multi-rune grapheme clusters
	{"e\u0301", und, "e\u0301", []int{0, 0, 0, 1}},
	{"E\u0301x", und, "e\u0301x", []int{0, 0, 0, 1, 2}},
	{"I\u0307", turkish, "\u0131\u0307", []int{0, 0, 0, 0, 1}},
	{"\U0001f1e9\U0001f1ea", und, "\U0001f1e9\U0001f1ea", []int{0, 0, 0, 0, 0, 0, 0, 0, 1}},
	{"Aß\U0001f1e9\U0001f1eaB", und, "ass\U0001f1e9\U0001f1eab",
		[]int{0, 1, 1, 2, 2, 2, 2, 2, 2, 2, 2, 3, 4}},
}

func (f FoldTest) String() string {
	return fmt.Sprintf("%q/%s", f.In, f.Tag)
}

// Fold runs FoldTests against fn.
func Fold(t *testing.T, fn FoldFunc) {
	// Test the tests
	for _, test := range FoldTests {
		want := uniseg.GraphemeClusterCount(test.In)
		if n := test.Mapping[len(test.Mapping)-1]; n != want {
			t.Errorf("%s: invalid test: sentinel %d; want: %d", test, n, want)
		}
		if len(test.Mapping) != len(test.Out)+1 {
			t.Errorf("%s: invalid test: mapping length %d; want: %d",
				test, len(test.Mapping), len(test.Out)+1)
		}
	}
	if t.Failed() {
		t.Fatal("invalid Fold tests")
		return
	}

	for _, test := range FoldTests {
		f := fn(test.In, test.Tag)
		if got := f.String(); got != test.Out {
			t.Errorf("Fold(%s) = %q; want: %q", test, got, test.Out)
		}
		if got := f.Mapping(); !slices.Equal(got, test.Mapping) {
			t.Errorf("Fold(%s).Mapping() = %v; want: %v", test, got, test.Mapping)
		}
		CheckInvariants(t, test.In, f)
	}
}

// SimpleFold runs FoldTests against fn.
func SimpleFold(t *testing.T, fn SimpleFoldFunc) {
	for _, test := range FoldTests {
		if got := fn(test.In, test.Tag); got != test.Out {
			t.Errorf("SimpleFold(%s) = %q; want: %q", test, got, test.Out)
		}
	}
}

// CheckInvariants checks that the mapping of f is valid for the original
// string s.
func CheckInvariants(t testing.TB, s string, f Folded) {
	t.Helper()

	m := f.Mapping()
	if len(m) != f.Len()+1 || f.Len() != len(f.String()) {
		t.Fatalf("%q: len(Mapping()) = %d; want: %d", s, len(m), len(f.String())+1)
	}
	if !slices.IsSorted(m) {
		t.Errorf("%q: Mapping() is not sorted: %v", s, m)
	}
	n := uniseg.GraphemeClusterCount(s)
	if got := f.NumGraphemes(); got != n {
		t.Errorf("%q: NumGraphemes() = %d; want: %d", s, got, n)
	}
	if got := m[len(m)-1]; got != n {
		t.Errorf("%q: Mapping()[%d] = %d; want: %d", s, len(m)-1, got, n)
	}
	for i, want := range m {
		got, err := f.GraphemeIndex(i)
		if err != nil || got != want {
			t.Errorf("%q: GraphemeIndex(%d) = %d, %v; want: %d, <nil>", s, i, got, err, want)
		}
	}
	for _, i := range []int{-1, len(m), len(m) + 1} {
		if _, err := f.GraphemeIndex(i); err == nil {
			t.Errorf("%q: GraphemeIndex(%d): expected an error", s, i)
		}
	}
	if t.Failed() {
		t.FailNow()
	}
}

// CheckGraphemeRuns checks that each grapheme cluster of s maps to a single
// run of f which contains the result of folding that cluster with fold.
func CheckGraphemeRuns(t testing.TB, s string, f Folded, fold func(string) string) {
	t.Helper()

	m := f.Mapping()
	folded := f.String()
	var b strings.Builder

	start := 0
	gr := uniseg.NewGraphemes(s)
	for g := 0; gr.Next(); g++ {
		cluster := gr.Str()
		want := fold(cluster)
		b.WriteString(want)

		end := start
		for end < len(folded) && m[end] == g {
			end++
		}
		if got := folded[start:end]; got != want {
			t.Fatalf("%q: grapheme %d (%q): folded run = %q; want: %q",
				s, g, cluster, got, want)
		}
		start = end
	}
	if start != len(folded) {
		t.Fatalf("%q: %d trailing bytes are not mapped to a grapheme", s, len(folded)-start)
	}
	if got := b.String(); got != folded {
		t.Fatalf("%q: concatenated grapheme folds = %q; want: %q", s, got, folded)
	}
}
