package test

import (
	crand "crypto/rand"
	"encoding/binary"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/unicode/rangetable"
)

var exhaustiveFuzz = flag.Bool("exhaustive", false, "Run exhaustive fuzz tests (slow).")

var (
	runesOnce sync.Once
	allRunes  []rune
)

// Runes returns all letters, marks, numbers, punctuation, symbols and
// spaces of the current Unicode version.
func Runes() []rune {
	runesOnce.Do(func() {
		rt := rangetable.Merge(
			unicode.Letter,
			unicode.Mark,
			unicode.Number,
			unicode.Punct,
			unicode.Symbol,
			unicode.Space,
		)
		n := 0
		rangetable.Visit(rt, func(rune) { n++ })
		allRunes = make([]rune, 0, n)
		rangetable.Visit(rt, func(r rune) {
			allRunes = append(allRunes, r)
		})
	})
	return allRunes
}

// Runes that are interesting for folding or segmentation.
var specialRunes = []rune{
	'I', 'i',
	'\u0130', // 'İ'
	'\u0131', // 'ı'
	'\u00df', // 'ß'
	'\u1e9e', // 'ẞ'
	'\ufb03', // 'ﬃ'
	'\u0149', // 'ŉ'
	'\u212a', // Kelvin K
	'\u03a3', // 'Σ'
	'\u03c2', // 'ς'
	'\u0345', // combining ypogegrammeni
	'\u0301', // combining acute
	'\u0307', // combining dot above
	'\u200d', // ZWJ
	'\r', '\n',
	'\U0001f1e9', '\U0001f1ea', // regional indicators D, E
	'\U0001f469', // woman
	'\U0001f3fd', // skin tone modifier
}

// Tags used by the random tests.
var Tags = []language.Tag{
	language.Und,
	language.English,
	language.Turkish,
	language.Azerbaijani,
	language.MustParse("tr-TR"),
	language.MustParse("az-Cyrl"),
}

func randRune(rr *rand.Rand) rune {
	switch n := rr.Intn(100); {
	case n < 30:
		return specialRunes[rr.Intn(len(specialRunes))]
	case n < 80:
		runes := Runes()
		return runes[rr.Intn(len(runes))]
	default:
		return rr.Int31n(128)
	}
}

// RandomString returns a random string of n valid runes.
func RandomString(rr *rand.Rand, n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteRune(randRune(rr))
	}
	return b.String()
}

func cryptoRandInt(t testing.TB) int64 {
	var b [8]byte
	if _, err := io.ReadFull(crand.Reader, b[:]); err != nil {
		if t != nil {
			t.Fatal(err)
		}
		panic(err)
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}

func randomTestSeeds(t *testing.T) []int64 {
	seeds := []int64{
		1,
		time.Now().UnixNano(),
		cryptoRandInt(t),
	}
	if !testing.Short() {
		for i := len(seeds); i < runtime.NumCPU(); i++ {
			seeds = append(seeds, cryptoRandInt(t))
		}
	}
	return seeds
}

func runRandomTest(t *testing.T, fn func(t *testing.T, rr *rand.Rand)) {
	if *exhaustiveFuzz && testing.Short() {
		t.Fatal(`Cannot combine "-short" and "-exhaustive" flags`)
	}
	count := 1_000
	if testing.Short() {
		count /= 4
	}
	seeds := randomTestSeeds(t)
	if *exhaustiveFuzz {
		count = 1_000_000 / len(seeds)
		t.Logf("N: %d", count)
	}
	for _, seed := range seeds {
		seed := seed
		t.Run(fmt.Sprintf("%d", seed), func(t *testing.T) {
			t.Parallel()
			rr := rand.New(rand.NewSource(seed))
			for i := 0; i < count; i++ {
				fn(t, rr)
				if t.Failed() {
					t.Logf("seed: %d iteration: %d", seed, i)
					return
				}
			}
		})
		if t.Failed() && testing.Short() {
			return
		}
	}
}

// FoldFuzz checks fold and simple against random strings. Every grapheme
// cluster must map to a single run that equals the cluster folded on its
// own, and simple must produce the same text as fold.
func FoldFuzz(t *testing.T, fold FoldFunc, simple SimpleFoldFunc) {
	runRandomTest(t, func(t *testing.T, rr *rand.Rand) {
		s := RandomString(rr, rr.Intn(32))
		tag := Tags[rr.Intn(len(Tags))]

		f := fold(s, tag)
		CheckInvariants(t, s, f)
		CheckGraphemeRuns(t, s, f, func(cluster string) string {
			return simple(cluster, tag)
		})
		if got := simple(s, tag); got != f.String() {
			t.Errorf("SimpleFold(%q, %s) = %q; want: %q", s, tag, got, f.String())
		}
	})
}
