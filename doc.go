// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// Package casefold implements locale-aware Unicode case folding that
// remembers, for every byte of the folded string, which grapheme cluster of
// the original string produced it.
//
// The mapping lets case-insensitive search routines run on the folded text
// and report match boundaries in terms of the user-perceived characters of
// the original text, even though folding may change the length of a
// character (for example "ß" folds to "ss").
//
// Grapheme clusters are determined by [uniseg] and folding is performed by
// [cases.Fold]. Turkish and Azerbaijani locales use the Turkic folding
// variant, which maps 'I' to 'ı' and 'İ' to 'i'.
//
// [uniseg]: https://pkg.go.dev/github.com/rivo/uniseg
// [cases.Fold]: https://pkg.go.dev/golang.org/x/text/cases#Fold
package casefold

// BUG(cvieth): Invalid UTF-8 is passed through to the segmenter and folder
// unchanged, each invalid byte forms its own grapheme cluster.
