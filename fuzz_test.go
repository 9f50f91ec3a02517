// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package casefold

import (
	"testing"
	"unicode/utf8"

	"golang.org/x/exp/slices"

	"github.com/charlievieth/casefold/internal/bytealg"
	"github.com/charlievieth/casefold/internal/test"
)

func FuzzFold(f *testing.F) {
	for _, tt := range test.FoldTests {
		f.Add(tt.In, ForLocale(tt.Tag) == Turkic)
	}
	f.Add("The Quick Brown Fox\r\n", false)
	f.Add("DİYARBAKIR\r\nIĞDIR", true)
	f.Fuzz(func(t *testing.T, s string, turkic bool) {
		if !utf8.ValidString(s) {
			t.Skip("invalid UTF-8")
		}
		v := Default
		if turkic {
			v = Turkic
		}
		fs := FoldVariant(s, v)
		test.CheckInvariants(t, s, fs)
		test.CheckGraphemeRuns(t, s, fs, func(cluster string) string {
			return SimpleFoldVariant(cluster, v)
		})
		if bytealg.IndexNonASCII(s) == -1 {
			want := foldGraphemes(s, v)
			if fs.folded != want.folded || !slices.Equal(fs.graphemes, want.graphemes) {
				t.Fatalf("FoldVariant(%q, %s) = %q %v; want: %q %v",
					s, v, fs.folded, fs.graphemes, want.folded, want.graphemes)
			}
		}
	})
}
