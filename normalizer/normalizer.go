// Package normalizer unifies Arabic orthographic variants: the alef
// family, taa marbuta, alef maqsura, the hamza carriers, and the tatweel
// (kashida) filler.
//
// All functions are pure and safe for concurrent use.
package normalizer

import (
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/rangetable"
)

// alefVariants covers the alef forms that fold to bare alef.
var alefVariants = runes.In(rangetable.New(
	'آ', // آ ALEF WITH MADDA ABOVE
	'أ', // أ ALEF WITH HAMZA ABOVE
	'إ', // إ ALEF WITH HAMZA BELOW
	'ٱ', // ٱ ALEF WASLA
	'ٲ', // ٲ ALEF WITH WAVY HAMZA ABOVE
	'ٳ', // ٳ ALEF WITH WAVY HAMZA BELOW
))

// hamzaCarriers covers hamza on waw and yeh, folded to the bare hamza.
var hamzaCarriers = runes.In(rangetable.New(
	'ؤ', // ؤ WAW WITH HAMZA ABOVE
	'ئ', // ئ YEH WITH HAMZA ABOVE
))

var tatweelSet = runes.In(rangetable.New(
	'ـ', // ـ ARABIC TATWEEL
))

func mapRunes(s string, f func(rune) rune) string {
	out, _, _ := transform.String(runes.Map(f), s)
	return out
}

// Alef folds every alef variant (أ إ آ ٱ ٲ ٳ) to plain alef (ا).
func Alef(s string) string {
	return mapRunes(s, func(r rune) rune {
		if alefVariants.Contains(r) {
			return 'ا' // ا ALEF
		}
		return r
	})
}

// TaaMarbuta folds taa marbuta (ة) to haa (ه).
func TaaMarbuta(s string) string {
	return mapRunes(s, func(r rune) rune {
		if r == 'ة' { // ة TEH MARBUTA
			return 'ه' // ه HEH
		}
		return r
	})
}

// AlefMaqsura folds alef maqsura (ى) to yeh (ي).
func AlefMaqsura(s string) string {
	return mapRunes(s, func(r rune) rune {
		if r == 'ى' { // ى ALEF MAKSURA
			return 'ي' // ي YEH
		}
		return r
	})
}

// Hamza folds the hamza carriers ؤ and ئ to the bare hamza (ء).
func Hamza(s string) string {
	return mapRunes(s, func(r rune) rune {
		if hamzaCarriers.Contains(r) {
			return 'ء' // ء HAMZA
		}
		return r
	})
}

// RemoveTatweel strips tatweel (kashida) runs from s.
func RemoveTatweel(s string) string {
	out, _, _ := transform.String(runes.Remove(tatweelSet), s)
	return out
}

// Options selects normalization steps for NormalizeWith. The zero value
// performs nothing.
type Options struct {
	Alef        bool // fold alef variants to ا
	TaaMarbuta  bool // fold ة to ه
	AlefMaqsura bool // fold ى to ي
	Tatweel     bool // strip tatweel
	Hamza       bool // fold ؤ and ئ to ء
}

// DefaultOptions folds the alef family and alef maqsura and strips
// tatweel; taa marbuta and the hamza carriers stay untouched, since those
// folds lose real distinctions more often than they help.
var DefaultOptions = Options{Alef: true, AlefMaqsura: true, Tatweel: true}

// Normalize applies the default pipeline (see DefaultOptions).
func Normalize(s string) string {
	return NormalizeWith(s, DefaultOptions)
}

// NormalizeWith applies the selected steps in a fixed order: alef, taa
// marbuta, alef maqsura, tatweel, hamza.
func NormalizeWith(s string, o Options) string {
	if o.Alef {
		s = Alef(s)
	}
	if o.TaaMarbuta {
		s = TaaMarbuta(s)
	}
	if o.AlefMaqsura {
		s = AlefMaqsura(s)
	}
	if o.Tatweel {
		s = RemoveTatweel(s)
	}
	if o.Hamza {
		s = Hamza(s)
	}
	return s
}
