package casefold

import (
	"math/rand"
	"strings"
	"testing"

	"golang.org/x/exp/slices"
	"golang.org/x/text/language"
)

func TestLowerTable(t *testing.T) {
	for c := 0; c < len(_lower); c++ {
		want := strings.ToLower(string(rune(c)))
		if got := string(rune(_lower[c])); got != want {
			t.Errorf("_lower[%q] = %q; want: %q", c, got, want)
		}
	}
}

func randomASCII(rr *rand.Rand, n int) string {
	const chars = "aAbBiIzZ09 \t\r\n\r\n.~\x00\x7f"
	b := make([]byte, n)
	for i := range b {
		b[i] = chars[rr.Intn(len(chars))]
	}
	return string(b)
}

// The ASCII fast path must be indistinguishable from the general path.
func TestFoldASCII(t *testing.T) {
	check := func(t *testing.T, s string, v Variant) {
		t.Helper()
		got := foldASCII(s, v)
		want := foldGraphemes(s, v)
		if got.folded != want.folded {
			t.Fatalf("foldASCII(%q, %s) = %q; want: %q", s, v, got.folded, want.folded)
		}
		if !slices.Equal(got.graphemes, want.graphemes) {
			t.Fatalf("foldASCII(%q, %s).graphemes = %v; want: %v",
				s, v, got.graphemes, want.graphemes)
		}
		if simple := simpleFoldASCII(s, v); simple != want.folded {
			t.Fatalf("simpleFoldASCII(%q, %s) = %q; want: %q", s, v, simple, want.folded)
		}
	}
	for _, v := range []Variant{Default, Turkic} {
		t.Run(v.String(), func(t *testing.T) {
			for c := 0; c < 128; c++ {
				check(t, string(rune(c)), v)
				for _, d := range []byte{'\n', '\r', 'I', 'a'} {
					check(t, string([]byte{byte(c), d}), v)
				}
			}
			rr := rand.New(rand.NewSource(1))
			for i := 0; i < 2000; i++ {
				check(t, randomASCII(rr, rr.Intn(24)), v)
			}
		})
	}
}

// Unchanged ASCII input is returned as is.
func TestFoldASCIINoAlloc(t *testing.T) {
	const s = "hello, world"
	if got := SimpleFold(s, language.Und); got != s {
		t.Fatalf("SimpleFold(%q) = %q", s, got)
	}
	allocs := testing.AllocsPerRun(100, func() {
		_ = SimpleFoldVariant(s, Default)
	})
	if allocs != 0 {
		t.Errorf("SimpleFold(%q): allocs = %.0f; want: 0", s, allocs)
	}
}

func BenchmarkFoldASCII(b *testing.B) {
	s := strings.Repeat("Hello, World!\r\n", 64)
	b.SetBytes(int64(len(s)))
	for i := 0; i < b.N; i++ {
		_ = foldASCII(s, Default)
	}
}
