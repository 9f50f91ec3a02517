package benchtest

import (
	"flag"
	"strconv"
	"strings"
	"testing"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/charlievieth/casefold"
)

var benchBaseline = flag.Bool("baseline", false,
	"Use golang.org/x/text/cases and strings.ToLower in benchmarks (for comparison)")

var texts = []struct {
	name string
	s    string
}{
	{"ASCII", "The quick brown fox jumps over the lazy dog. "},
	{"Latin", "Falsches Üben von Xylophonmusik quält jeden größeren Zwerg. "},
	{"Turkish", "PİJAMALI HASTA YAĞIZ ŞOFÖRE ÇABUCAK GÜVENDİ. "},
	{"Greek", "ΞΕΣΚΕΠΑΖΩ ΤΗΝ ΨΥΧΟΦΘΟΡΑ ΒΔΕΛΥΓΜΙΑ. "},
	{"Emoji", "👩🏽‍💻 Coding 🇩🇪 Flags 👨‍👩‍👧‍👦 Family. "},
}

func benchSizes(b *testing.B, fn func(b *testing.B, s string)) {
	for _, text := range texts {
		for _, n := range []int{1, 16, 256} {
			s := strings.Repeat(text.s, n)
			b.Run(text.name+"/"+strconv.Itoa(len(s)), func(b *testing.B) {
				b.SetBytes(int64(len(s)))
				fn(b, s)
			})
		}
	}
}

func BenchmarkFold(b *testing.B) {
	benchSizes(b, func(b *testing.B, s string) {
		if *benchBaseline {
			c := cases.Fold()
			for i := 0; i < b.N; i++ {
				c.String(s)
			}
		} else {
			for i := 0; i < b.N; i++ {
				casefold.FoldVariant(s, casefold.Default)
			}
		}
	})
}

func BenchmarkFoldTurkish(b *testing.B) {
	benchSizes(b, func(b *testing.B, s string) {
		for i := 0; i < b.N; i++ {
			casefold.Fold(s, language.Turkish)
		}
	})
}

func BenchmarkSimpleFold(b *testing.B) {
	benchSizes(b, func(b *testing.B, s string) {
		if *benchBaseline {
			for i := 0; i < b.N; i++ {
				strings.ToLower(s)
			}
		} else {
			for i := 0; i < b.N; i++ {
				casefold.SimpleFoldVariant(s, casefold.Default)
			}
		}
	})
}

// Make sure the benchmarks are measuring valid results.
func TestBenchmarkTexts(t *testing.T) {
	c := cases.Fold()
	for _, text := range texts {
		got := casefold.SimpleFoldVariant(text.s, casefold.Default)
		if want := c.String(text.s); got != want {
			t.Errorf("SimpleFold(%q) = %q; want: %q", text.s, got, want)
		}
		if f := casefold.FoldVariant(text.s, casefold.Default); f.String() != got {
			t.Errorf("Fold(%q) = %q; want: %q", text.s, f.String(), got)
		}
	}
}
