package casefold

import (
	"unicode/utf8"

	"golang.org/x/text/transform"
)

const (
	capitalDottedI = '\u0130' // 'İ'
	smallDotlessI  = '\u0131' // 'ı'
)

// turkicFolder applies the Turkic ('T') mappings from CaseFolding.txt:
//
//	0049; T; 0131 # LATIN CAPITAL LETTER I
//	0130; T; 0069 # LATIN CAPITAL LETTER I WITH DOT ABOVE
//
// All other input is copied unchanged so that it can be chained in front of
// cases.Fold, which performs the remaining (default) folding.
type turkicFolder struct{ transform.NopResetter }

func (turkicFolder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		c := src[nSrc]
		if c < utf8.RuneSelf {
			if c == 'I' {
				if len(dst)-nDst < utf8.RuneLen(smallDotlessI) {
					return nDst, nSrc, transform.ErrShortDst
				}
				nDst += utf8.EncodeRune(dst[nDst:], smallDotlessI)
			} else {
				if nDst == len(dst) {
					return nDst, nSrc, transform.ErrShortDst
				}
				dst[nDst] = c
				nDst++
			}
			nSrc++
			continue
		}
		if !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		r, size := utf8.DecodeRune(src[nSrc:])
		if r == capitalDottedI {
			if nDst == len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = 'i'
			nDst++
		} else {
			if len(dst)-nDst < size {
				return nDst, nSrc, transform.ErrShortDst
			}
			nDst += copy(dst[nDst:], src[nSrc:nSrc+size])
		}
		nSrc += size
	}
	return nDst, nSrc, nil
}
