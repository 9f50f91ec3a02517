// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// Package bytealg contains low-level byte scanning helpers used by the
// casefold fast paths.
package bytealg

import (
	"math/bits"
	"unicode/utf8"
)

const wordSize = 8

const asciiMask = 0x8080808080808080

// IndexNonASCII returns the index of the first byte in s that is not ASCII
// (>= utf8.RuneSelf), or -1 if s is entirely ASCII.
func IndexNonASCII(s string) int {
	i := 0
	for ; i+wordSize <= len(s); i += wordSize {
		// Little-endian order: the lowest set bit marks the first
		// non-ASCII byte regardless of GOARCH.
		w := uint64(s[i]) | uint64(s[i+1])<<8 | uint64(s[i+2])<<16 |
			uint64(s[i+3])<<24 | uint64(s[i+4])<<32 | uint64(s[i+5])<<40 |
			uint64(s[i+6])<<48 | uint64(s[i+7])<<56
		if m := w & asciiMask; m != 0 {
			return i + bits.TrailingZeros64(m)/8
		}
	}
	for ; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return i
		}
	}
	return -1
}

// IndexByteNonASCII is IndexNonASCII for byte slices.
func IndexByteNonASCII(b []byte) int {
	i := 0
	for ; i+wordSize <= len(b); i += wordSize {
		w := uint64(b[i]) | uint64(b[i+1])<<8 | uint64(b[i+2])<<16 |
			uint64(b[i+3])<<24 | uint64(b[i+4])<<32 | uint64(b[i+5])<<40 |
			uint64(b[i+6])<<48 | uint64(b[i+7])<<56
		if m := w & asciiMask; m != 0 {
			return i + bits.TrailingZeros64(m)/8
		}
	}
	for ; i < len(b); i++ {
		if b[i] >= utf8.RuneSelf {
			return i
		}
	}
	return -1
}
