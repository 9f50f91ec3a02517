// Package benchtest is used for benchmarking casefold against folding the
// same text with golang.org/x/text/cases directly and against the Go
// stdlib's strings.ToLower.
//
// It is not part of the casefold package since the baselines do not compute
// a grapheme mapping. Instead they are a useful measure of the overhead of
// tracking graphemes.
package benchtest
