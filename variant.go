package casefold

import (
	"strconv"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/transform"
)

// A Variant selects the case folding algorithm.
type Variant uint8

const (
	// Default is locale independent full case folding.
	Default Variant = iota
	// Turkic is full case folding with the special handling of dotted and
	// dotless I used by Turkish and Azerbaijani.
	Turkic
)

func (v Variant) String() string {
	switch v {
	case Default:
		return "default"
	case Turkic:
		return "turkic"
	}
	return "Variant(" + strconv.Itoa(int(v)) + ")"
}

var (
	turkish, _     = language.Turkish.Base()
	azerbaijani, _ = language.Azerbaijani.Base()
)

// ForLocale returns the folding Variant for tag. Tags whose base language is
// Turkish or Azerbaijani, regardless of script or region, select Turkic.
// Every other tag, including language.Und, selects Default.
func ForLocale(tag language.Tag) Variant {
	// Base guesses a language for tags such as "und-TR", only trust
	// explicitly stated languages.
	base, conf := tag.Base()
	if conf != language.Exact {
		return Default
	}
	switch base {
	case turkish, azerbaijani:
		return Turkic
	}
	return Default
}

// A Caser is not safe for concurrent use so keep a pool per variant.
var folders = [...]sync.Pool{
	Default: {New: func() interface{} {
		return cases.Fold()
	}},
	Turkic: {New: func() interface{} {
		return transform.Chain(turkicFolder{}, cases.Fold())
	}},
}

func (v Variant) pool() *sync.Pool {
	if v == Turkic {
		return &folders[Turkic]
	}
	return &folders[Default]
}

// getFolder returns a folding transformer for v, it must be returned with
// putFolder once the caller is done with it.
func getFolder(v Variant) transform.Transformer {
	return v.pool().Get().(transform.Transformer)
}

func putFolder(v Variant, t transform.Transformer) {
	v.pool().Put(t)
}

// foldString folds s with t. transform.String resets t before use.
func foldString(t transform.Transformer, s string) string {
	out, _, _ := transform.String(t, s)
	return out
}
